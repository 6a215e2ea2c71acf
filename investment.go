package wallet

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// InterestRate is the rate formula of an interest period: a fixed percentage,
// optionally increased by the inflation rate and the reference rate in force
// when the period starts.
type InterestRate struct {
	AdditivePercent  Percent `json:"additivePercent"`
	AddInflation     bool    `json:"additiveInflation,omitempty"`
	AddReferenceRate bool    `json:"additiveReferenceRate,omitempty"`
}

// CancellationPolicy defines the fee charged when an investment is cancelled
// before its end date.
type CancellationPolicy struct {
	// FixedPenalty is a flat fee in the purchase currency.
	FixedPenalty decimal.Decimal `json:"fixedPenalty"`
	// PercentOfTotalInterest is charged on the interest earned so far.
	PercentOfTotalInterest Percent `json:"percentOfTotalInterest"`
	// LimitedToTotalInterest caps the fee at the total interest earned.
	LimitedToTotalInterest bool `json:"limitedToTotalInterest,omitempty"`
}

// PeriodCancellationPolicy extends CancellationPolicy with a component scoped
// to the interest earned in the period currently in force.
type PeriodCancellationPolicy struct {
	CancellationPolicy
	PercentOfPeriodInterest Percent `json:"percentOfInterestPeriodInterest"`
	LimitedToPeriodInterest bool    `json:"limitedToInterestPeriodInterest,omitempty"`
}

// InterestPeriod is a repeatable, dated span during which a specific interest
// rate formula applies.
type InterestPeriod struct {
	ID           string                    `json:"id"`
	Repeats      int                       `json:"repeats"`
	Duration     Duration                  `json:"duration"`
	Rate         InterestRate              `json:"interestRate"`
	Cancellation *PeriodCancellationPolicy `json:"cancellationPolicy,omitempty"`
}

// Allocation assigns a percentage of an investment to a currency, industry or
// world area, for reporting breakdowns.
type Allocation struct {
	ID      string  `json:"id"`
	Percent Percent `json:"percentage"`
}

// Investment is a single tracked financial position: a purchase basis, a
// value-calculation method, and the terms needed to value it.
//
// An Investment is immutable for the duration of a valuation: the engine
// never modifies it and holds no state across calls.
type Investment struct {
	ID      string `json:"id"`
	Version int    `json:"version"` // bumped on every update, optimistic versioning
	Name    string `json:"name"`

	Start Date `json:"startDate,omitzero"` // zero when the investment has not started
	End   Date `json:"endDate,omitzero"`   // zero when open-ended

	Purchase Purchase `json:"purchase"`
	Method   Method   `json:"valueCalculationMethod"`

	InterestPeriods []InterestPeriod `json:"interestPeriods,omitempty"`
	// Capitalization makes each period's interest compound on the purchase
	// value plus the interest accrued so far. Without it interest is always
	// computed on the original purchase value.
	Capitalization      bool `json:"capitalization,omitempty"`
	IncomeTaxApplicable bool `json:"incomeTaxApplicable,omitempty"`
	// Cancellation is the investment-level policy, used when there are no
	// interest periods.
	Cancellation *CancellationPolicy `json:"cancellationPolicy,omitempty"`

	TargetCurrencies []Allocation `json:"targetCurrencies,omitempty"`
	TargetIndustries []Allocation `json:"targetIndustries,omitempty"`
	TargetWorldAreas []Allocation `json:"targetWorldAreas,omitempty"`
}

// Validate checks the investment declaration for correctness. It does not
// check market-data availability, only the declaration itself.
func (inv *Investment) Validate() error {
	var errs error
	if inv.ID == "" {
		errs = errors.Join(errs, errors.New("investment id is missing"))
	}
	if inv.Purchase == nil {
		errs = errors.Join(errs, errors.New("purchase declaration is missing"))
	} else if err := ValidateCurrency(inv.Purchase.Currency()); err != nil {
		errs = errors.Join(errs, err)
	}
	if inv.Method == nil {
		errs = errors.Join(errs, errors.New("value calculation method is missing"))
	}
	if _, ok := inv.Method.(InterestMethod); ok && len(inv.InterestPeriods) == 0 {
		errs = errors.Join(errs, errors.New("interest method requires at least one interest period"))
	}
	for i, p := range inv.InterestPeriods {
		if p.Repeats < 1 {
			errs = errors.Join(errs, fmt.Errorf("interest period %d: repeats must be at least 1, got %d", i, p.Repeats))
		}
		if p.Duration.Num < 1 {
			errs = errors.Join(errs, fmt.Errorf("interest period %d: duration must be at least one %s", i, p.Duration.Unit))
		}
	}
	if !inv.Start.IsZero() && !inv.End.IsZero() && inv.End.Before(inv.Start) {
		errs = errors.Join(errs, fmt.Errorf("end date %s is before start date %s", inv.End, inv.Start))
	}
	return errs
}

// MarshalJSON writes the investment in a canonical field order, so the JSONL
// store stays diff-friendly.
func (inv Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", inv.ID)
	w.Append("version", inv.Version)
	w.Optional("name", inv.Name)
	if !inv.Start.IsZero() {
		w.Append("startDate", inv.Start)
	}
	if !inv.End.IsZero() {
		w.Append("endDate", inv.End)
	}
	w.Append("purchase", inv.Purchase)
	w.Append("valueCalculationMethod", inv.Method)
	if len(inv.InterestPeriods) > 0 {
		w.Append("interestPeriods", inv.InterestPeriods)
	}
	w.Optional("capitalization", inv.Capitalization)
	w.Optional("incomeTaxApplicable", inv.IncomeTaxApplicable)
	if inv.Cancellation != nil {
		w.Append("cancellationPolicy", inv.Cancellation)
	}
	if len(inv.TargetCurrencies) > 0 {
		w.Append("targetCurrencies", inv.TargetCurrencies)
	}
	if len(inv.TargetIndustries) > 0 {
		w.Append("targetIndustries", inv.TargetIndustries)
	}
	if len(inv.TargetWorldAreas) > 0 {
		w.Append("targetWorldAreas", inv.TargetWorldAreas)
	}
	return w.MarshalJSON()
}
