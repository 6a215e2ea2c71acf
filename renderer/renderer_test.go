package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/wallet"
	"github.com/shopspring/decimal"
)

func TestRenderSummary(t *testing.T) {
	savings := &wallet.Investment{
		ID:     "savings",
		Name:   "Savings Account",
		Method: wallet.InterestMethod{},
	}
	coins := &wallet.Investment{
		ID:     "coins",
		Name:   "Coin Stash",
		Method: wallet.CryptoMethod{CryptoID: "bitcoin"},
	}

	s := &wallet.Summary{
		On:       wallet.NewDate(2025, 3, 1),
		Currency: "EUR",
		Rows: []wallet.SummaryRow{
			{Investment: savings, Value: wallet.M(1162, "EUR"), Converted: wallet.M(1162, "EUR")},
			{Investment: coins, Unavailable: true, Reason: "market data unavailable"},
		},
		Total:       wallet.M(1162, "EUR"),
		Unavailable: 1,
		ByCurrency: []wallet.AllocationShare{
			{ID: "EUR", Value: wallet.M(1162, "EUR")},
		},
	}

	got := RenderSummary(s)

	for _, want := range []string{
		"# Wallet Summary on 2025-03-01",
		"savings",
		"Savings Account",
		"unavailable",
		"market data unavailable",
		"## By Currency",
		"100.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSummary() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## By Industry") {
		t.Errorf("RenderSummary() rendered an empty industry breakdown:\n%s", got)
	}
}

func TestRenderValuation(t *testing.T) {
	inv := &wallet.Investment{
		ID:       "savings",
		Name:     "Savings Account",
		Start:    wallet.NewDate(2024, 1, 1),
		Purchase: wallet.MoneyPurchase{Amount: decimal.NewFromInt(1000), Cur: "EUR"},
		Method:   wallet.InterestMethod{},
	}
	period := wallet.InterestPeriod{ID: "base", Repeats: 2}
	v := &wallet.Valuation{
		Investment: inv,
		On:         wallet.NewDate(2025, 1, 1),
		Gross:      wallet.M(1040, "EUR"),
		Fee:        wallet.M(10, "EUR"),
		Tax:        wallet.M(7.5, "EUR"),
		Net:        wallet.M(1022.5, "EUR"),
		Trace: []wallet.PeriodInterest{
			{
				Period:   period,
				Repeat:   1,
				Start:    wallet.NewDate(2024, 1, 1),
				End:      wallet.NewDate(2024, 7, 1),
				Complete: true,
				Rate:     wallet.Percent(4),
				Interest: wallet.M(20, "EUR"),
				Total:    wallet.M(20, "EUR"),
			},
			{
				Period:   period,
				Repeat:   2,
				Start:    wallet.NewDate(2024, 7, 1),
				End:      wallet.NewDate(2025, 1, 1),
				Complete: true,
				Rate:     wallet.Percent(4),
				Interest: wallet.M(20, "EUR"),
				Total:    wallet.M(40, "EUR"),
			},
		},
	}

	got := RenderValuation(v)

	for _, want := range []string{
		"# Savings Account (savings) on 2025-01-01",
		"Cancellation Fee",
		"Income Tax",
		"## Interest Accrual",
		"base 1/2",
		"base 2/2",
		"complete",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderValuation() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderValuationWithoutFee(t *testing.T) {
	inv := &wallet.Investment{
		ID:       "fund",
		Name:     "Index Fund",
		Purchase: wallet.UnitPurchase{NumUnits: 10, UnitPrice: decimal.NewFromInt(100), Cur: "EUR"},
		Method:   wallet.QuoteMethod{Ticker: "IE00B4L5Y983"},
	}
	v := &wallet.Valuation{
		Investment: inv,
		On:         wallet.NewDate(2025, 3, 1),
		Gross:      wallet.M(1100, "EUR"),
		Net:        wallet.M(1100, "EUR"),
	}

	got := RenderValuation(v)
	if strings.Contains(got, "Cancellation Fee") {
		t.Errorf("RenderValuation() rendered a zero fee:\n%s", got)
	}
	if strings.Contains(got, "## Interest Accrual") {
		t.Errorf("RenderValuation() rendered an empty trace:\n%s", got)
	}
}

func TestRenderInvestments(t *testing.T) {
	invs := []*wallet.Investment{
		{
			ID:       "fund",
			Name:     "Index Fund",
			Start:    wallet.NewDate(2023, 5, 2),
			Purchase: wallet.UnitPurchase{NumUnits: 10, UnitPrice: decimal.NewFromInt(100), Cur: "EUR"},
			Method:   wallet.QuoteMethod{Ticker: "IE00B4L5Y983"},
		},
	}

	got := RenderInvestments(invs)
	for _, want := range []string{"# Investments", "fund", "Index Fund", "quote", "2023-05-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderInvestments() missing %q in:\n%s", want, got)
		}
	}
}
