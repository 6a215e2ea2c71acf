package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/wallet/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `wlt assist [initial prompt]

  Starts an interactive session with the AI assistant. The assistant can read
  the wallet and search the web to answer questions about your investments.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("Error initializing Gemini's client: %v", err)
	}

	analyst := agent.NewAnalyst()
	accountant := agent.NewAccountant(store)
	a := agent.New(os.Stdout, os.Stdin, analyst, accountant)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail("Agent failed: %v", err)
	}
	return subcommands.ExitSuccess
}
