package wallet

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports that a valuation could not be computed because the
// external data snapshot lacks a required quote or rate. It replaces the
// silent sentinel values a naive implementation would propagate: callers must
// check with errors.Is and render "unavailable", never zero.
var ErrUnavailable = errors.New("market data unavailable")

// ExternalData is a read-only snapshot of externally supplied market data.
// The valuation engine never fetches anything itself; collaborators assemble
// a snapshot (see FetchExternalData) and pass it in.
type ExternalData struct {
	// ExchangeRates holds, per currency code, the number of units of that
	// currency one EUR buys. EUR is the pivot of all conversions.
	ExchangeRates map[string]float64 `json:"exchangeRates"`
	// CryptoRates holds, per cryptocurrency id, the EUR value of one coin.
	CryptoRates map[string]float64 `json:"cryptocurrencyExchangeRates,omitempty"`
	// Quotes holds the latest market value per ticker.
	Quotes map[string]float64 `json:"tickerData,omitempty"`
	// Inflation is the monthly inflation rate series, sorted ascending.
	Inflation []MonthlyRate `json:"monthlyInflationRates,omitempty"`
	// Reference is the dated reference rate series, sorted ascending.
	Reference []DailyRate `json:"monthlyReferenceRates,omitempty"`

	FetchedOn Date `json:"fetchedOn,omitzero"`
}

// QuoteValue returns the latest market value for a ticker.
func (x *ExternalData) QuoteValue(ticker string) (float64, error) {
	v, ok := x.Quotes[ticker]
	if !ok {
		return 0, fmt.Errorf("no quote for ticker %q: %w", ticker, ErrUnavailable)
	}
	return v, nil
}

// CryptoRate returns the EUR value of one coin of the given cryptocurrency.
func (x *ExternalData) CryptoRate(id string) (float64, error) {
	v, ok := x.CryptoRates[id]
	if !ok {
		return 0, fmt.Errorf("no exchange rate for cryptocurrency %q: %w", id, ErrUnavailable)
	}
	return v, nil
}

// rate returns the per-EUR rate for a currency. EUR itself is always 1.
func (x *ExternalData) rate(currency string) (float64, error) {
	if currency == "EUR" {
		return 1, nil
	}
	r, ok := x.ExchangeRates[currency]
	if !ok || r == 0 {
		return 0, fmt.Errorf("no exchange rate for currency %q: %w", currency, ErrUnavailable)
	}
	return r, nil
}

// Convert converts a monetary amount into the given currency, routing through
// the EUR pivot. It fails with ErrUnavailable when either currency is missing
// from the snapshot.
func (x *ExternalData) Convert(m Money, to string) (Money, error) {
	if m.Currency() == to {
		return m, nil
	}
	from, err := x.rate(m.Currency())
	if err != nil {
		return Money{}, err
	}
	dest, err := x.rate(to)
	if err != nil {
		return Money{}, err
	}
	// from-currency to EUR, then EUR to the destination currency.
	eur := m.Div(Q(from))
	return M(eur.value, to).Mul(Q(dest)), nil
}
