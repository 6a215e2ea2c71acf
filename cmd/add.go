package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	id   string
	name string

	start string
	end   string

	purchase     string
	method       string
	periods      string
	cancellation string

	capitalization bool
	taxable        bool

	currencies string
	industries string
	areas      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add or update an investment in the wallet" }
func (*addCmd) Usage() string {
	return `wlt add -id <id> -purchase <json> -method <json> [options]

  Adds an investment to the wallet, or updates it when the id already exists.
  The purchase and the value calculation method are given as JSON snippets,
  using the same shapes as the ledger file. See 'wlt topic purchases' and
  'wlt topic methods'.

Usage Examples:
# A savings account of 1000 EUR at 2% a year.
$ wlt add -id savings -start -1y \
    -purchase '{"kind":"money","amount":1000,"currency":"EUR"}' \
    -method '{"kind":"interest"}' \
    -periods '[{"id":"base","repeats":10,"duration":"1y","interestRate":{"additivePercent":2}}]'

# Ten shares of a fund quoted on Tradegate.
$ wlt add -id fund -purchase '{"kind":"units","numUnits":10,"unitPrice":85.5,"currency":"EUR"}' \
    -method '{"kind":"quote","ticker":"IE00B4L5Y983"}'
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Unique investment identifier (required)")
	f.StringVar(&c.name, "name", "", "Human readable name")
	f.StringVar(&c.start, "start", "", "Start date, absolute or relative (e.g. -1y)")
	f.StringVar(&c.end, "end", "", "End date, absolute or relative")
	f.StringVar(&c.purchase, "purchase", "", "Purchase declaration as JSON (required)")
	f.StringVar(&c.method, "method", "", "Value calculation method as JSON (required)")
	f.StringVar(&c.periods, "periods", "", "Interest periods as a JSON array")
	f.StringVar(&c.cancellation, "cancellation", "", "Investment-level cancellation policy as JSON")
	f.BoolVar(&c.capitalization, "capitalization", false, "Compound interest on previously accrued interest")
	f.BoolVar(&c.taxable, "taxable", false, "Income tax applies to this investment's gains")
	f.StringVar(&c.currencies, "currencies", "", "Target currency allocation, e.g. 'EUR:60,USD:40'")
	f.StringVar(&c.industries, "industries", "", "Target industry allocation, e.g. 'tech:80,energy:20'")
	f.StringVar(&c.areas, "areas", "", "Target world area allocation, e.g. 'europe:100'")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.purchase == "" || c.method == "" {
		return usageErr("Error: -id, -purchase and -method flags are required.")
	}

	inv := &wallet.Investment{
		ID:                  c.id,
		Name:                c.name,
		Capitalization:      c.capitalization,
		IncomeTaxApplicable: c.taxable,
	}

	var err error
	if c.start != "" {
		if inv.Start, err = wallet.ParseDate(c.start); err != nil {
			return usageErr("Error parsing start date: %v", err)
		}
	}
	if c.end != "" {
		if inv.End, err = wallet.ParseDate(c.end); err != nil {
			return usageErr("Error parsing end date: %v", err)
		}
	}

	if inv.Purchase, err = wallet.DecodePurchase(json.RawMessage(c.purchase)); err != nil {
		return usageErr("Error parsing purchase: %v", err)
	}
	if inv.Method, err = wallet.DecodeMethod(json.RawMessage(c.method)); err != nil {
		return usageErr("Error parsing method: %v", err)
	}
	if c.periods != "" {
		if err := json.Unmarshal([]byte(c.periods), &inv.InterestPeriods); err != nil {
			return usageErr("Error parsing interest periods: %v", err)
		}
	}
	if c.cancellation != "" {
		inv.Cancellation = &wallet.CancellationPolicy{}
		if err := json.Unmarshal([]byte(c.cancellation), inv.Cancellation); err != nil {
			return usageErr("Error parsing cancellation policy: %v", err)
		}
	}

	if inv.TargetCurrencies, err = parseAllocations(c.currencies); err != nil {
		return usageErr("Error parsing currency allocation: %v", err)
	}
	if inv.TargetIndustries, err = parseAllocations(c.industries); err != nil {
		return usageErr("Error parsing industry allocation: %v", err)
	}
	if inv.TargetWorldAreas, err = parseAllocations(c.areas); err != nil {
		return usageErr("Error parsing world area allocation: %v", err)
	}

	if err := inv.Validate(); err != nil {
		return usageErr("Error: invalid investment:\n%v", err)
	}

	store, err := openStore()
	if err != nil {
		return fail("Error opening wallet: %v", err)
	}
	if err := store.SaveInvestment(inv); err != nil {
		return fail("Error saving investment: %v", err)
	}

	fmt.Printf("Saved investment %q (version %d).\n", inv.ID, inv.Version)
	return subcommands.ExitSuccess
}

// parseAllocations parses a comma-separated list of id:percentage pairs.
func parseAllocations(s string) ([]wallet.Allocation, error) {
	if s == "" {
		return nil, nil
	}
	var allocations []wallet.Allocation
	for _, part := range strings.Split(s, ",") {
		id, pct, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found || id == "" {
			return nil, fmt.Errorf("expected 'id:percentage', got %q", part)
		}
		value, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage in %q: %w", part, err)
		}
		allocations = append(allocations, wallet.Allocation{ID: id, Percent: wallet.Percent(value)})
	}
	return allocations, nil
}
