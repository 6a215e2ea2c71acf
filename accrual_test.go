package wallet

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// interestInvestment builds a minimal interest investment for accrual tests.
func interestInvestment(t *testing.T, start Date, periods ...InterestPeriod) *Investment {
	t.Helper()
	return &Investment{
		ID:              "savings",
		Start:           start,
		Purchase:        MoneyPurchase{Amount: decimal.NewFromInt(1000), Cur: "EUR"},
		Method:          InterestMethod{},
		InterestPeriods: periods,
	}
}

func yearly(id string, repeats int, percent Percent) InterestPeriod {
	return InterestPeriod{
		ID:       id,
		Repeats:  repeats,
		Duration: Duration{Num: 1, Unit: Years},
		Rate:     InterestRate{AdditivePercent: percent},
	}
}

func TestAccrueSimpleInterest(t *testing.T) {
	inv := interestInvestment(t, NewDate(2024, 1, 1), yearly("base", 2, 2))

	acc, err := Accrue(inv, &ExternalData{}, NewDate(2026, 1, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}

	if want := M(1040, "EUR"); !acc.Value.Equal(want) {
		t.Errorf("Accrue() value = %v, want %v", acc.Value, want)
	}
	if len(acc.Trace) != 2 {
		t.Fatalf("Accrue() trace has %d entries, want 2", len(acc.Trace))
	}
	for i, span := range acc.Trace {
		if !span.Complete {
			t.Errorf("span %d not complete", i)
		}
		if want := M(20, "EUR"); !span.Interest.Equal(want) {
			t.Errorf("span %d interest = %v, want %v", i, span.Interest, want)
		}
	}
	if want := M(40, "EUR"); !acc.Trace[1].Total.Equal(want) {
		t.Errorf("running total = %v, want %v", acc.Trace[1].Total, want)
	}
}

func TestAccrueCapitalization(t *testing.T) {
	inv := interestInvestment(t, NewDate(2024, 1, 1), yearly("base", 2, 2))
	inv.Capitalization = true

	acc, err := Accrue(inv, &ExternalData{}, NewDate(2026, 1, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}

	// Second span compounds on 1020.
	if want := M(20.4, "EUR"); !acc.Trace[1].Interest.Equal(want) {
		t.Errorf("second span interest = %v, want %v", acc.Trace[1].Interest, want)
	}
	if want := M(1040.4, "EUR"); !acc.Value.Equal(want) {
		t.Errorf("Accrue() value = %v, want %v", acc.Value, want)
	}
}

func TestAccrueProRata(t *testing.T) {
	inv := interestInvestment(t, NewDate(2024, 1, 1), yearly("base", 1, 2))

	acc, err := Accrue(inv, &ExternalData{}, NewDate(2024, 7, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}

	if len(acc.Trace) != 1 {
		t.Fatalf("Accrue() trace has %d entries, want 1", len(acc.Trace))
	}
	span := acc.Trace[0]
	if span.Complete {
		t.Error("half-elapsed span reported complete")
	}
	// Half of the yearly 2% on 1000.
	if want := M(10, "EUR"); !span.Interest.Equal(want) {
		t.Errorf("pro-rata interest = %v, want %v", span.Interest, want)
	}
	if want := NewDate(2025, 1, 1); span.End != want {
		t.Errorf("span end = %v, want the scheduled end %v", span.End, want)
	}
}

func TestAccrueFutureSpans(t *testing.T) {
	inv := interestInvestment(t, NewDate(2024, 1, 1), yearly("base", 5, 2))

	// Valuation on the start date: nothing has accrued yet.
	acc, err := Accrue(inv, &ExternalData{}, NewDate(2024, 1, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}
	if want := M(1000, "EUR"); !acc.Value.Equal(want) {
		t.Errorf("Accrue() value = %v, want the purchase value %v", acc.Value, want)
	}
	if len(acc.Trace) != 0 {
		t.Errorf("Accrue() trace has %d entries, want none", len(acc.Trace))
	}
}

func TestAccrueInflation(t *testing.T) {
	period := InterestPeriod{
		ID:       "indexed",
		Repeats:  1,
		Duration: Duration{Num: 1, Unit: Years},
		Rate:     InterestRate{AdditivePercent: 1, AddInflation: true},
	}
	inv := interestInvestment(t, NewDate(2024, 3, 1), period)

	data := &ExternalData{
		Inflation: []MonthlyRate{
			{Year: 2024, Month: time.January, Rate: 3},
			// No February entry: January is the latest published figure.
			{Year: 2024, Month: time.March, Rate: 5},
		},
	}

	acc, err := Accrue(inv, data, NewDate(2025, 3, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}

	// The span starts in March but inflation publishes with a one month
	// delay: February's figure applies, which resolves to January's entry.
	if want := Percent(4); !acc.Trace[0].Rate.Equal(want) {
		t.Errorf("effective rate = %v, want %v", acc.Trace[0].Rate, want)
	}
	if want := M(40, "EUR"); !acc.Trace[0].Interest.Equal(want) {
		t.Errorf("interest = %v, want %v", acc.Trace[0].Interest, want)
	}
}

func TestAccrueReferenceRate(t *testing.T) {
	period := InterestPeriod{
		ID:       "tracker",
		Repeats:  1,
		Duration: Duration{Num: 1, Unit: Years},
		Rate:     InterestRate{AdditivePercent: 0.5, AddReferenceRate: true},
	}
	inv := interestInvestment(t, NewDate(2024, 7, 1), period)

	data := &ExternalData{
		Reference: []DailyRate{
			{Year: 2024, Month: time.June, Day: 12, Rate: 4.25},
			{Year: 2024, Month: time.September, Day: 18, Rate: 3.65},
		},
	}

	acc, err := Accrue(inv, data, NewDate(2025, 7, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}

	// The rate in force when the span starts applies for the whole span.
	if want := Percent(4.75); !acc.Trace[0].Rate.Equal(want) {
		t.Errorf("effective rate = %v, want %v", acc.Trace[0].Rate, want)
	}
}

func TestAccrueNoStartDate(t *testing.T) {
	inv := interestInvestment(t, Date{}, yearly("base", 1, 2))

	_, err := Accrue(inv, &ExternalData{}, NewDate(2025, 1, 1))
	if !errors.Is(err, ErrNoStartDate) {
		t.Errorf("Accrue() error = %v, want ErrNoStartDate", err)
	}
}

func TestAccrueNoPeriods(t *testing.T) {
	inv := interestInvestment(t, Date{})

	acc, err := Accrue(inv, &ExternalData{}, NewDate(2025, 1, 1))
	if err != nil {
		t.Fatalf("Accrue() unexpected error: %v", err)
	}
	if want := M(1000, "EUR"); !acc.Value.Equal(want) {
		t.Errorf("Accrue() value = %v, want the purchase value %v", acc.Value, want)
	}
}
