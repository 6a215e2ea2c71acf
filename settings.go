package wallet

// Settings holds the user preferences that drive valuation and reporting.
type Settings struct {
	// MainCurrency is the currency all summary values are converted into.
	MainCurrency string `json:"mainCurrencyId"`
	// IncludeCancellationFees deducts the cancellation fee from investments
	// that can still be cancelled.
	IncludeCancellationFees bool `json:"includeCancellationFees,omitempty"`
	// IncludeIncomeTax deducts income tax on the gain over cost basis.
	IncludeIncomeTax bool `json:"includeIncomeTax,omitempty"`
	// IncomeTaxRate is the tax rate in percent.
	IncomeTaxRate Percent `json:"incomeTaxRate,omitempty"`
}

// DefaultSettings returns the settings used before the user configured any.
func DefaultSettings() Settings {
	return Settings{MainCurrency: "EUR"}
}

// Validate checks the settings for correctness.
func (s Settings) Validate() error {
	return ValidateCurrency(s.MainCurrency)
}
