package wallet

import (
	"fmt"
	"strings"
)

// fetchExchangeRates returns, per requested currency, how many units of it
// one EUR buys, from the frankfurter.app mirror of the ECB daily fixing.
// EUR itself is skipped, it is the pivot.
func fetchExchangeRates(currencies []string) (map[string]float64, error) {
	symbols := make([]string, 0, len(currencies))
	for _, c := range currencies {
		if c != "EUR" {
			symbols = append(symbols, c)
		}
	}
	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	addr := "https://api.frankfurter.app/latest?base=EUR&symbols=" + strings.Join(symbols, ",")

	// {"amount":1.0,"base":"EUR","date":"2025-08-29","rates":{"USD":1.0851}}
	var content struct {
		Rates map[string]float64 `json:"rates"`
	}
	// ECB fixes once a day, so query that endpoint at most once a day
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch exchange rates: %w", err)
	}
	return content.Rates, nil
}
