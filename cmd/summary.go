package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	wallet string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display an aggregated wallet summary" }
func (*summaryCmd) Usage() string {
	return `wlt summary [-d <date>] [-w <wallet>]

  Displays a summary of all investments, converted to the main currency, with
  breakdowns by currency, industry and world area. With -w only the
  investments of the named wallet are summarized.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", wallet.Today().String(), "Date for the summary. See 'wlt topic dates' for supported formats.")
	f.StringVar(&c.wallet, "w", "", "Wallet to summarize. Defaults to all investments.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := wallet.ParseDate(c.date)
	if err != nil {
		return usageErr("Error parsing date: %v", err)
	}

	store, invs, data, settings, err := loadAll()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}

	if c.wallet != "" {
		invs, err = walletInvestments(store, invs, c.wallet)
		if err != nil {
			return fail("Error: %v", err)
		}
	}

	s, err := wallet.Summarize(invs, data, settings, on)
	if err != nil {
		return fail("Error summarizing: %v", err)
	}

	printMarkdown(renderer.RenderSummary(s))
	return subcommands.ExitSuccess
}

// walletInvestments filters investments down to the members of one wallet.
func walletInvestments(store *wallet.Store, invs []*wallet.Investment, id string) ([]*wallet.Investment, error) {
	wallets, err := store.Wallets()
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(wallets, func(w *wallet.Wallet) bool { return w.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("unknown wallet %q", id)
	}
	w := wallets[idx]

	var members []*wallet.Investment
	for _, inv := range invs {
		if slices.Contains(w.InvestmentIDs, inv.ID) {
			members = append(members, inv)
		}
	}
	return members, nil
}
