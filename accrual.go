package wallet

import "errors"

// PeriodInterest is one entry of the accrual trace: the interest earned by a
// single (period, repeat) span.
type PeriodInterest struct {
	Period InterestPeriod
	Repeat int  // 1-based repeat index within the period
	Start  Date // first day of the span
	End    Date // scheduled last day of the span (may be in the future)
	// Complete is true when the span has fully elapsed. The last incomplete
	// span accrued pro-rata up to the valuation date.
	Complete bool
	// Rate is the effective annual rate applied to this span, after adding
	// inflation and reference-rate components.
	Rate     Percent
	Interest Money
	// Total is the running sum of interest up to and including this span.
	Total Money
}

// Accrual is the result of walking an investment's interest periods: the
// accrued value and the per-span trace. The trace is returned explicitly so
// the cancellation-fee resolver can reuse it within the same valuation
// without hidden shared state.
type Accrual struct {
	// Value is the purchase value plus all accrued interest.
	Value Money
	Trace []PeriodInterest
}

// PeriodInterestNow returns the interest earned by the span currently in
// force, the last one of the trace, or zero when nothing accrued.
func (a Accrual) PeriodInterestNow() Money {
	if len(a.Trace) == 0 {
		return Money{}
	}
	return a.Trace[len(a.Trace)-1].Interest
}

// ErrNoStartDate reports an investment with interest periods but no start
// date. This is a caller error: interest cannot accrue from nowhere, and the
// engine refuses to guess.
var ErrNoStartDate = errors.New("investment has interest periods but no start date")

// Accrue walks the investment's interest periods from its start date up to
// now and returns the accrued value with the per-span interest trace.
//
// Periods run in declaration order, each repeated Repeats times. A span still
// in progress on the valuation date accrues pro-rata. Spans starting on or
// after the valuation date do not accrue at all.
//
// With Capitalization each span's interest compounds on the purchase value
// plus the interest accrued so far; without it every span earns simple
// interest on the original purchase value.
func Accrue(inv *Investment, data *ExternalData, now Date) (Accrual, error) {
	basis := PurchaseValue(inv.Purchase)

	if inv.Start.IsZero() {
		if len(inv.InterestPeriods) == 0 {
			// Not started, nothing accrues.
			return Accrual{Value: basis}, nil
		}
		return Accrual{}, ErrNoStartDate
	}

	total := M(0, basis.Currency())
	var trace []PeriodInterest

	on := inv.Start
walk:
	for _, period := range inv.InterestPeriods {
		for repeat := 1; repeat <= period.Repeats; repeat++ {
			if !on.Before(now) {
				break walk
			}
			end := on.AddDuration(period.Duration)

			effectiveEnd := end
			if now.Before(effectiveEnd) {
				effectiveEnd = now
			}
			years := YearsBetween(on, effectiveEnd)

			rate := period.Rate.AdditivePercent
			if period.Rate.AddInflation {
				// Inflation figures publish with a delay, so the rate in
				// force is always the previous month's.
				stale := on.AddMonth(-1)
				rate += InflationRateOn(data.Inflation, stale.Year(), stale.Month())
			}
			if period.Rate.AddReferenceRate {
				rate += ReferenceRateOn(data.Reference, on)
			}

			base := basis
			if inv.Capitalization {
				base = basis.Add(total)
			}
			interest := base.Mul(Q(float64(rate) / 100 * years))
			total = total.Add(interest)

			trace = append(trace, PeriodInterest{
				Period:   period,
				Repeat:   repeat,
				Start:    on,
				End:      end,
				Complete: !now.Before(end),
				Rate:     rate,
				Interest: interest,
				Total:    total,
			})
			on = end
		}
	}

	return Accrual{Value: basis.Add(total), Trace: trace}, nil
}

// activePeriodPolicy returns the cancellation policy of the first interest
// period span whose end is still in the future, the span in force on the
// given date. It returns nil when no span is in force: all spans elapsed, no
// periods, or no start date.
func activePeriodPolicy(inv *Investment, now Date) *PeriodCancellationPolicy {
	if inv.Start.IsZero() {
		return nil
	}
	on := inv.Start
	for _, period := range inv.InterestPeriods {
		for repeat := 1; repeat <= period.Repeats; repeat++ {
			end := on.AddDuration(period.Duration)
			if now.Before(end) {
				return period.Cancellation
			}
			on = end
		}
	}
	return nil
}
