package wallet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GrossValue computes the investment's value before cancellation fees and
// income tax, dispatching on the value-calculation method.
//
// For the interest method the returned Accrual carries the per-span trace;
// for the other methods it is empty. Missing market data yields an error
// wrapping ErrUnavailable.
func GrossValue(inv *Investment, data *ExternalData, now Date) (Money, Accrual, error) {
	switch m := inv.Method.(type) {
	case ManualMethod:
		return M(m.CurrentValue, inv.Purchase.Currency()), Accrual{}, nil

	case QuoteMethod:
		quote, err := data.QuoteValue(m.Ticker)
		if err != nil {
			return Money{}, Accrual{}, err
		}
		var units Quantity
		switch p := inv.Purchase.(type) {
		case UnitPurchase:
			units = p.Units()
		case DecimalUnitPurchase:
			units = p.Units()
		case WeightPurchase:
			// quotes for weight-based holdings are per weight unit.
			units = Q(p.Weight)
		default:
			return Money{}, Accrual{}, fmt.Errorf("quote pricing of a %q purchase: %w", inv.Purchase.Kind(), ErrUnavailable)
		}
		// Quotes are EUR-denominated (see quotes.go providers).
		return M(quote, "EUR").Mul(units), Accrual{}, nil

	case CryptoMethod:
		rate, err := data.CryptoRate(m.CryptoID)
		if err != nil {
			return Money{}, Accrual{}, err
		}
		var units Quantity
		switch p := inv.Purchase.(type) {
		case UnitPurchase:
			units = p.Units()
		case DecimalUnitPurchase:
			units = p.Units()
		default:
			return Money{}, Accrual{}, fmt.Errorf("cryptocurrency pricing of a %q purchase: %w", inv.Purchase.Kind(), ErrUnavailable)
		}
		return M(rate, "EUR").Mul(units), Accrual{}, nil

	case InterestMethod:
		acc, err := Accrue(inv, data, now)
		if err != nil {
			return Money{}, Accrual{}, err
		}
		return acc.Value, acc, nil

	default:
		return Money{}, Accrual{}, fmt.Errorf("unsupported value calculation method %T", inv.Method)
	}
}

// Valuation is the result of valuing one investment on a date.
type Valuation struct {
	Investment *Investment
	On         Date
	Gross      Money
	Fee        Money // cancellation fee deducted, zero when not applicable
	Tax        Money // income tax deducted, zero when not applicable
	Net        Money
	Trace      []PeriodInterest
}

// Value computes the net value of an investment under the given settings:
// the gross value, minus the cancellation fee when the investment can still
// be cancelled, minus income tax on the remaining gain. Fee before tax, both
// against the running value.
//
// When market data is missing the error wraps ErrUnavailable and no fee or
// tax is computed: an unavailable value must render as unavailable, not as a
// taxed zero.
func Value(inv *Investment, data *ExternalData, settings Settings, now Date) (Valuation, error) {
	gross, acc, err := GrossValue(inv, data, now)
	if err != nil {
		return Valuation{}, err
	}

	v := Valuation{
		Investment: inv,
		On:         now,
		Gross:      gross,
		Net:        gross,
		Trace:      acc.Trace,
	}

	// basis in the gross currency, so gains subtract cleanly even when the
	// gross is quoted in another currency than the purchase.
	basis := PurchaseValue(inv.Purchase)
	if basis.Currency() != gross.Currency() {
		basis, err = data.Convert(basis, gross.Currency())
		if err != nil {
			return Valuation{}, err
		}
	}

	cancellable := inv.End.IsZero() || now.Before(inv.End)
	if settings.IncludeCancellationFees && cancellable {
		v.Fee = cancellationFee(inv, v.Net, basis, acc, now)
		v.Net = v.Net.Sub(v.Fee)
	}

	if settings.IncludeIncomeTax && settings.IncomeTaxRate > 0 && inv.IncomeTaxApplicable {
		v.Tax = incomeTax(v.Net, basis, settings.IncomeTaxRate)
		v.Net = v.Net.Sub(v.Tax)
	}

	return v, nil
}

// cancellationFee resolves the applicable cancellation policy and computes
// the fee against the current value.
//
// With interest periods the policy of the span currently in force applies;
// when all spans have elapsed no fee applies. Without interest periods the
// investment-level policy applies.
func cancellationFee(inv *Investment, value, basis Money, acc Accrual, now Date) Money {
	zero := M(0, value.Currency())
	totalInterest := value.Sub(basis)

	var policy CancellationPolicy
	var periodScoped *PeriodCancellationPolicy
	if len(inv.InterestPeriods) > 0 {
		periodScoped = activePeriodPolicy(inv, now)
		if periodScoped == nil {
			return zero
		}
		policy = periodScoped.CancellationPolicy
	} else {
		if inv.Cancellation == nil {
			return zero
		}
		policy = *inv.Cancellation
	}

	fee := M(policy.FixedPenalty, value.Currency()).
		Add(policy.PercentOfTotalInterest.Of(totalInterest))

	if periodScoped != nil {
		periodInterest := acc.PeriodInterestNow()
		if periodInterest.Currency() == "" {
			periodInterest = M(decimal.Zero, value.Currency())
		}
		fee = fee.Add(periodScoped.PercentOfPeriodInterest.Of(periodInterest))
		if periodScoped.LimitedToPeriodInterest && fee.GreaterThan(periodInterest) {
			fee = periodInterest
		}
	}

	if policy.LimitedToTotalInterest && fee.GreaterThan(totalInterest) {
		fee = totalInterest
	}
	if fee.IsNegative() {
		fee = zero
	}
	return fee
}

// incomeTax computes the tax on the gain over the cost basis. Losses are not
// credited: the tax never goes below zero.
func incomeTax(value, basis Money, rate Percent) Money {
	tax := rate.Of(value.Sub(basis))
	if tax.IsNegative() {
		return M(0, value.Currency())
	}
	return tax
}
