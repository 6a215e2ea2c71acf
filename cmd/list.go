package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the investments tracked in the wallet" }
func (*listCmd) Usage() string {
	return `wlt list

  Lists all investments: id, name, valuation method, purchase value and dates.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	invs, err := store.Investments()
	if err != nil {
		return fail("Error reading investments: %v", err)
	}

	printMarkdown(renderer.RenderInvestments(invs))
	return subcommands.ExitSuccess
}
