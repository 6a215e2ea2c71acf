package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `wlt fmt

  Reads all investments, validates them, and writes them back sorted by id in
  a canonical JSONL form with a stable field order. Hand-edited files come
  out normalized, diffs stay small.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	if err := store.Fmt(); err != nil {
		return fail("Error formatting ledger: %v", err)
	}
	fmt.Println("Ledger formatted.")
	return subcommands.ExitSuccess
}
