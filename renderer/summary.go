package renderer

import (
	"fmt"

	"github.com/etnz/wallet"
)

// SummaryView is the template model for a wallet summary report.
type SummaryView struct {
	On          string
	Currency    string
	Rows        []SummaryRowView
	Total       string
	Unavailable int

	ByCurrency  []AllocationView
	ByIndustry  []AllocationView
	ByWorldArea []AllocationView
}

// SummaryRowView is one investment line of the summary.
type SummaryRowView struct {
	ID          string
	Name        string
	Method      string
	Value       string // in the investment's valuation currency
	Converted   string // in the summary currency
	Unavailable bool
	Reason      string
}

// AllocationView is one slice of an allocation breakdown.
type AllocationView struct {
	ID    string
	Value string
	Share string // share of the allocated total
}

// NewSummaryView builds the template model from a computed summary.
func NewSummaryView(s *wallet.Summary) *SummaryView {
	view := &SummaryView{
		On:          s.On.String(),
		Currency:    s.Currency,
		Total:       s.Total.String(),
		Unavailable: s.Unavailable,
	}
	for _, row := range s.Rows {
		r := SummaryRowView{
			ID:          row.Investment.ID,
			Name:        row.Investment.Name,
			Method:      string(row.Investment.Method.Kind()),
			Unavailable: row.Unavailable,
			Reason:      row.Reason,
		}
		if !row.Unavailable {
			r.Value = row.Value.String()
			r.Converted = row.Converted.String()
		}
		view.Rows = append(view.Rows, r)
	}
	view.ByCurrency = allocationViews(s.ByCurrency)
	view.ByIndustry = allocationViews(s.ByIndustry)
	view.ByWorldArea = allocationViews(s.ByWorldArea)
	return view
}

func allocationViews(shares []wallet.AllocationShare) []AllocationView {
	var total float64
	for _, s := range shares {
		total += s.Value.Float64()
	}
	views := make([]AllocationView, 0, len(shares))
	for _, s := range shares {
		v := AllocationView{ID: s.ID, Value: s.Value.String()}
		if total != 0 {
			v.Share = fmt.Sprintf("%.1f%%", 100*s.Value.Float64()/total)
		}
		views = append(views, v)
	}
	return views
}

// RenderSummary renders a wallet summary to a markdown string.
func RenderSummary(s *wallet.Summary) string {
	partials := map[string]string{
		"summary_rows":        "summary_rows.md",
		"summary_allocations": "summary_allocations.md",
	}
	return renderTemplate("summary", "summary.md", partials, NewSummaryView(s))
}
