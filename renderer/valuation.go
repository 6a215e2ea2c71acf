package renderer

import (
	"fmt"

	"github.com/etnz/wallet"
)

// ValuationView is the template model for a single investment valuation.
type ValuationView struct {
	ID     string
	Name   string
	On     string
	Method string

	Purchase string
	Gross    string
	Fee      string // empty when no fee was deducted
	Tax      string // empty when no tax was deducted
	Net      string

	Trace []TraceRowView
}

// TraceRowView is one accrual span of the interest trace.
type TraceRowView struct {
	Span     string
	Start    string
	End      string
	Status   string
	Rate     string
	Interest string
	Total    string
}

// NewValuationView builds the template model from a computed valuation.
func NewValuationView(v *wallet.Valuation) *ValuationView {
	view := &ValuationView{
		ID:       v.Investment.ID,
		Name:     v.Investment.Name,
		On:       v.On.String(),
		Method:   string(v.Investment.Method.Kind()),
		Purchase: wallet.PurchaseValue(v.Investment.Purchase).String(),
		Gross:    v.Gross.String(),
		Net:      v.Net.String(),
	}
	if !v.Fee.IsZero() {
		view.Fee = v.Fee.String()
	}
	if !v.Tax.IsZero() {
		view.Tax = v.Tax.String()
	}
	for _, t := range v.Trace {
		status := "running"
		if t.Complete {
			status = "complete"
		}
		view.Trace = append(view.Trace, TraceRowView{
			Span:     fmt.Sprintf("%s %d/%d", t.Period.ID, t.Repeat, t.Period.Repeats),
			Start:    t.Start.String(),
			End:      t.End.String(),
			Status:   status,
			Rate:     t.Rate.String(),
			Interest: t.Interest.String(),
			Total:    t.Total.String(),
		})
	}
	return view
}

// RenderValuation renders an investment valuation, with its accrual trace when
// the investment earns interest, to a markdown string.
func RenderValuation(v *wallet.Valuation) string {
	partials := map[string]string{
		"valuation_trace": "valuation_trace.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, NewValuationView(v))
}
