package wallet

import (
	"fmt"
	"strings"
)

// fetchCryptoRates returns the EUR value of one coin for each requested
// cryptocurrency id, from the CoinGecko simple-price endpoint. Ids are
// CoinGecko ids ("bitcoin", "ethereum", ...).
func fetchCryptoRates(ids []string) (map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]float64{}, nil
	}

	addr := "https://api.coingecko.com/api/v3/simple/price?vs_currencies=eur&ids=" + strings.Join(ids, ",")

	// {"bitcoin":{"eur":61234.0},"ethereum":{"eur":2987.5}}
	content := make(map[string]map[string]float64)
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch cryptocurrency rates: %w", err)
	}

	rates := make(map[string]float64, len(content))
	for id, values := range content {
		if eur, ok := values["eur"]; ok {
			rates[id] = eur
		}
	}
	return rates, nil
}
