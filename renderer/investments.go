package renderer

import "github.com/etnz/wallet"

// InvestmentRowView is one line of the investments listing.
type InvestmentRowView struct {
	ID       string
	Name     string
	Method   string
	Purchase string
	Start    string
	End      string
}

// InvestmentsView is the template model for the investments listing.
type InvestmentsView struct {
	Rows []InvestmentRowView
}

// NewInvestmentsView builds the template model from a list of investments.
func NewInvestmentsView(invs []*wallet.Investment) *InvestmentsView {
	view := &InvestmentsView{}
	for _, inv := range invs {
		row := InvestmentRowView{
			ID:       inv.ID,
			Name:     inv.Name,
			Method:   string(inv.Method.Kind()),
			Purchase: wallet.PurchaseValue(inv.Purchase).String(),
		}
		if !inv.Start.IsZero() {
			row.Start = inv.Start.String()
		}
		if !inv.End.IsZero() {
			row.End = inv.End.String()
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// RenderInvestments renders the investments listing to a markdown string.
func RenderInvestments(invs []*wallet.Investment) string {
	return renderTemplate("investments", "investments.md", nil, NewInvestmentsView(invs))
}
