package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/ecb"
	"github.com/etnz/wallet/insee"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh the market data snapshot from the online providers"
}
func (*updateCmd) Usage() string {
	return `wlt update

  Fetches exchange rates, cryptocurrency rates, quotes, inflation and
  reference rates for the investments in the wallet, and stores the snapshot
  next to the ledger. Valuations only ever read the snapshot.
`
}
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageErr("no arguments expected")
	}

	store, invs, _, settings, err := loadAll()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}

	data, err := wallet.FetchExternalData(invs, settings)
	if err != nil {
		// Partial snapshots are still worth saving.
		fmt.Fprintf(os.Stderr, "Warning: some providers failed:\n%v\n", err)
	}

	if r, ok := accrualRange(invs); ok {
		inflation, err := insee.FetchInflation(insee.DefaultSeriesID, r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not fetch inflation rates: %v\n", err)
		} else {
			data.Inflation = inflation
		}

		reference, err := ecb.FetchReferenceRates(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not fetch reference rates: %v\n", err)
		} else {
			data.Reference = reference
		}
	}

	if err := store.SaveExternalData(data); err != nil {
		return fail("Error saving market data: %v", err)
	}

	fmt.Printf("Market data updated on %s: %d exchange rates, %d crypto rates, %d quotes, %d inflation months, %d reference rates.\n",
		data.FetchedOn, len(data.ExchangeRates), len(data.CryptoRates), len(data.Quotes), len(data.Inflation), len(data.Reference))
	return subcommands.ExitSuccess
}

// accrualRange returns the date range interest accrual can need: from one
// month before the earliest investment start (accrual reads the inflation
// figure of the month preceding a span start) to today. ok is false when no
// interest investment has a start date.
func accrualRange(invs []*wallet.Investment) (r wallet.Range, ok bool) {
	var earliest wallet.Date
	for _, inv := range invs {
		if _, interest := inv.Method.(wallet.InterestMethod); !interest || inv.Start.IsZero() {
			continue
		}
		if earliest.IsZero() || inv.Start.Before(earliest) {
			earliest = inv.Start
		}
	}
	if earliest.IsZero() {
		return wallet.Range{}, false
	}
	return wallet.NewRange(earliest.AddMonth(-1), wallet.Today()), true
}
