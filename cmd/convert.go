package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	amount float64
	from   string
	to     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `wlt convert -amount <amount> -from <currency> [-to <currency>]

  Converts an amount using the exchange rates of the market data snapshot.
  The target defaults to the main currency. Conversion goes through the euro,
  see 'wlt topic currencies'.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to convert (required)")
	f.StringVar(&c.from, "from", "", "Source currency, 3-letter code (required)")
	f.StringVar(&c.to, "to", "", "Target currency, 3-letter code. Defaults to the main currency.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		return usageErr("Error: -from flag is required.")
	}
	if err := wallet.ValidateCurrency(c.from); err != nil {
		return usageErr("Error: %v", err)
	}

	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	settings, err := store.Settings()
	if err != nil {
		return fail("Error reading settings: %v", err)
	}
	data, err := store.ExternalData()
	if err != nil {
		return fail("Error reading market data: %v", err)
	}

	to := c.to
	if to == "" {
		to = settings.MainCurrency
	}
	if err := wallet.ValidateCurrency(to); err != nil {
		return usageErr("Error: %v", err)
	}

	converted, err := data.Convert(wallet.M(c.amount, c.from), to)
	if errors.Is(err, wallet.ErrUnavailable) {
		return fail("Conversion unavailable: %v\nRun 'wlt update' to refresh market data.", err)
	}
	if err != nil {
		return fail("Error converting: %v", err)
	}

	fmt.Printf("%s = %s (on %s)\n", wallet.M(c.amount, c.from), converted, data.FetchedOn)
	return subcommands.ExitSuccess
}
