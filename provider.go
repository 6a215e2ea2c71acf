package wallet

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Tickers returns the sorted set of tickers referenced by quote-method
// investments.
func Tickers(invs []*Investment) []string {
	set := make(map[string]struct{})
	for _, inv := range invs {
		if m, ok := inv.Method.(QuoteMethod); ok {
			set[m.Ticker] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// CryptoIDs returns the sorted set of cryptocurrency ids referenced by
// crypto-method investments.
func CryptoIDs(invs []*Investment) []string {
	set := make(map[string]struct{})
	for _, inv := range invs {
		if m, ok := inv.Method.(CryptoMethod); ok {
			set[m.CryptoID] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Currencies returns the sorted set of currencies appearing in the
// investments' purchases, plus the given extra currencies (typically the main
// currency).
func Currencies(invs []*Investment, extra ...string) []string {
	set := make(map[string]struct{})
	for _, inv := range invs {
		if inv.Purchase != nil {
			set[inv.Purchase.Currency()] = struct{}{}
		}
	}
	for _, c := range extra {
		set[c] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := slices.Collect(maps.Keys(set))
	slices.Sort(keys)
	return keys
}

// FetchExternalData assembles an external data snapshot for the given
// investments: exchange rates for every purchase currency and the main
// currency, quotes for every referenced ticker, and rates for every
// referenced cryptocurrency.
//
// Provider failures are joined and returned alongside the partial snapshot:
// a missing quote surfaces later as ErrUnavailable on the investments that
// need it, the others remain valuable.
//
// Inflation and reference-rate series come from dedicated providers (see the
// insee and ecb packages) and are merged into the snapshot by the caller.
func FetchExternalData(invs []*Investment, settings Settings) (*ExternalData, error) {
	data := &ExternalData{
		ExchangeRates: make(map[string]float64),
		CryptoRates:   make(map[string]float64),
		Quotes:        make(map[string]float64),
		FetchedOn:     Today(),
	}
	var errs error

	rates, err := fetchExchangeRates(Currencies(invs, settings.MainCurrency))
	if err != nil {
		errs = errors.Join(errs, err)
	} else {
		data.ExchangeRates = rates
	}

	crypto, err := fetchCryptoRates(CryptoIDs(invs))
	if err != nil {
		errs = errors.Join(errs, err)
	} else {
		data.CryptoRates = crypto
	}

	for _, ticker := range Tickers(invs) {
		quote, err := fetchQuote(ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not get quote for %s: %w", ticker, err))
			continue
		}
		data.Quotes[ticker] = quote
	}

	return data, errs
}
