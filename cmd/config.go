package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	currency    string
	includeFees bool
	includeTax  bool
	taxRate     float64

	set map[string]bool // flags explicitly given on the command line
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the wallet settings" }
func (*configCmd) Usage() string {
	return `wlt config [options]

  Without options, prints the current settings. With options, changes the
  given settings and leaves the others untouched.

Usage Examples:
# Report everything in dollars, after fees and taxes.
$ wlt config -currency USD -include-cancellation-fees -include-income-tax -income-tax-rate 26.375
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Main currency, 3-letter code")
	f.BoolVar(&c.includeFees, "include-cancellation-fees", false, "Deduct cancellation fees from reported values")
	f.BoolVar(&c.includeTax, "include-income-tax", false, "Deduct income tax from reported values")
	f.Float64Var(&c.taxRate, "income-tax-rate", 0, "Income tax rate on gains, in percent")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.set = make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { c.set[fl.Name] = true })

	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	settings, err := store.Settings()
	if err != nil {
		return fail("Error reading settings: %v", err)
	}

	if len(c.set) == 0 {
		fmt.Printf("main currency:             %s\n", settings.MainCurrency)
		fmt.Printf("include cancellation fees: %v\n", settings.IncludeCancellationFees)
		fmt.Printf("include income tax:        %v\n", settings.IncludeIncomeTax)
		fmt.Printf("income tax rate:           %s\n", settings.IncomeTaxRate)
		return subcommands.ExitSuccess
	}

	if c.set["currency"] {
		if err := wallet.ValidateCurrency(c.currency); err != nil {
			return usageErr("Error: %v", err)
		}
		settings.MainCurrency = c.currency
	}
	if c.set["include-cancellation-fees"] {
		settings.IncludeCancellationFees = c.includeFees
	}
	if c.set["include-income-tax"] {
		settings.IncludeIncomeTax = c.includeTax
	}
	if c.set["income-tax-rate"] {
		settings.IncomeTaxRate = wallet.Percent(c.taxRate)
	}

	if err := settings.Validate(); err != nil {
		return usageErr("Error: invalid settings: %v", err)
	}
	if err := store.SaveSettings(settings); err != nil {
		return fail("Error saving settings: %v", err)
	}

	fmt.Println("Settings saved.")
	return subcommands.ExitSuccess
}
