package agent

import (
	"context"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/docs"
	"github.com/etnz/wallet/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the current worth of the investments
			tracked in his wallet: what each one is worth today, what fees and taxes would
			apply, and how his wealth splits across currencies, industries and world areas.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his investments, check the wallet first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert grounded on web search, for questions about
// markets and institutions that the wallet itself cannot answer.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert financial analyst,
		very well aware of financial products and institutions,
		and of the latest news about funds, companies and interest rates.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst. You can search and find about anything related to
			financial institutions, companies, markets, funds, inflation and central bank rates.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAccountant creates the expert in charge of reading the user's wallet
// through function calls.
func NewAccountant(store *wallet.Store) *Expert {
	lib := []Function{
		listInvestments(store),
		valueInvestment(store),
		walletSummary(store),
	}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's wallet.
		He can list the tracked investments, value any of them on any date, and
		compute the aggregated summary of the user's wealth.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's wallet.
				You know how to use the Tools to extract relevant information about the user's investments and wealth.
				You are part of a team of experts, yours is everything about the user's wallet. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's wallet:
				  - list of tracked investments
				  - net value of one investment
				  - aggregated summary
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// failure wraps an error into a function response.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success wraps a markdown output into a function response.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var dateParameter = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date of the valuation. Today is the default.
	Otherwise it uses a flexible date format based on YYYY-MM-DD:

	` + must(docs.GetTopic("dates")),
}

func listInvestments(store *wallet.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ListInvestments",
			Description: `ListInvestments lists all the investments tracked in the user's wallet:
			their id, name, valuation method, purchase value and dates.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all tracked investments.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			invs, err := store.Investments()
			if err != nil {
				return failure(id, "ListInvestments", err)
			}
			return success(id, "ListInvestments", renderer.RenderInvestments(invs))
		},
	}
}

func valueInvestment(store *wallet.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ValueInvestment",
			Description: `ValueInvestment computes the net value of one investment on a date:
			gross value, cancellation fee, income tax, net value, and the interest
			accrual trace when the investment earns interest.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id": {
						Type:        genai.TypeString,
						Description: "The id of the investment to value.",
					},
					"date": dateParameter,
				},
				Required: []string{"id"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted valuation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			invID, ok := args["id"].(string)
			if !ok {
				return failure(id, "ValueInvestment", fmt.Errorf("argument 'id' is not a string but %T", args["id"]))
			}
			date, err := parseDate(args)
			if err != nil {
				return failure(id, "ValueInvestment", err)
			}
			inv, err := store.Investment(invID)
			if err != nil {
				return failure(id, "ValueInvestment", err)
			}
			data, err := store.ExternalData()
			if err != nil {
				return failure(id, "ValueInvestment", err)
			}
			settings, err := store.Settings()
			if err != nil {
				return failure(id, "ValueInvestment", err)
			}
			v, err := wallet.Value(inv, data, settings, date)
			if err != nil {
				return failure(id, "ValueInvestment", err)
			}
			return success(id, "ValueInvestment", renderer.RenderValuation(&v))
		},
	}
}

func walletSummary(store *wallet.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "WalletSummary",
			Description: `WalletSummary aggregates all investments on a date: net value of
			each investment converted to the main currency, the total, and the
			breakdowns by currency, industry and world area.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateParameter,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			date, err := parseDate(args)
			if err != nil {
				return failure(id, "WalletSummary", err)
			}
			invs, err := store.Investments()
			if err != nil {
				return failure(id, "WalletSummary", err)
			}
			data, err := store.ExternalData()
			if err != nil {
				return failure(id, "WalletSummary", err)
			}
			settings, err := store.Settings()
			if err != nil {
				return failure(id, "WalletSummary", err)
			}
			s, err := wallet.Summarize(invs, data, settings, date)
			if err != nil {
				return failure(id, "WalletSummary", err)
			}
			return success(id, "WalletSummary", renderer.RenderSummary(s))
		},
	}
}

func parseDate(args map[string]any) (wallet.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return wallet.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return wallet.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := wallet.ParseDate(sdate)
	if err != nil {
		return wallet.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}
