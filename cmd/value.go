package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	id   string
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the net value of one investment" }
func (*valueCmd) Usage() string {
	return `wlt value -id <id> [-d <date>]

  Computes the net value of an investment on a date: gross value, minus the
  cancellation fee when the investment can still be cancelled, minus income
  tax on the gain. Interest investments also print the accrual trace.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment to value (required)")
	f.StringVar(&c.date, "d", wallet.Today().String(), "Valuation date. See 'wlt topic dates' for supported formats.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usageErr("Error: -id flag is required.")
	}
	on, err := wallet.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	inv, err := store.Investment(c.id)
	if err != nil {
		return fail("Error: %v", err)
	}
	data, err := store.ExternalData()
	if err != nil {
		return fail("Error reading market data: %v", err)
	}
	settings, err := store.Settings()
	if err != nil {
		return fail("Error reading settings: %v", err)
	}

	v, err := wallet.Value(inv, data, settings, on)
	if errors.Is(err, wallet.ErrUnavailable) || errors.Is(err, wallet.ErrNoStartDate) {
		return fail("Value of %q is unavailable: %v\nRun 'wlt update' to refresh market data.", c.id, err)
	}
	if err != nil {
		return fail("Error valuing %q: %v", c.id, err)
	}

	printMarkdown(renderer.RenderValuation(&v))
	return subcommands.ExitSuccess
}
