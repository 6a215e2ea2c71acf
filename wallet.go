package wallet

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Wallet groups investments for aggregated reporting.
type Wallet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	InvestmentIDs []string `json:"investments,omitempty"`
}

// MarshalJSON writes the wallet in a canonical field order.
func (w Wallet) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("id", w.ID)
	jw.Optional("name", w.Name)
	if len(w.InvestmentIDs) > 0 {
		jw.Append("investments", w.InvestmentIDs)
	}
	return jw.MarshalJSON()
}

// SummaryRow is the valuation of one investment inside a summary, converted
// to the summary currency.
type SummaryRow struct {
	Investment *Investment
	// Value is the net value in the investment's own valuation currency.
	Value Money
	// Converted is the net value in the summary currency.
	Converted Money
	// Unavailable is true when the valuation could not be computed from the
	// snapshot. Value and Converted are then meaningless and must not be
	// rendered as zero.
	Unavailable bool
	// Reason describes why the valuation is unavailable.
	Reason string
}

// AllocationShare is one slice of an allocation breakdown, in the summary
// currency.
type AllocationShare struct {
	ID    string
	Value Money
}

// Summary is the aggregated view of a set of investments on a date, all
// values converted to a single currency.
type Summary struct {
	On       Date
	Currency string
	Rows     []SummaryRow
	// Total sums the available rows. Unavailable counts the rows excluded
	// from it.
	Total       Money
	Unavailable int

	ByCurrency  []AllocationShare
	ByIndustry  []AllocationShare
	ByWorldArea []AllocationShare
}

// Summarize values every investment under the given settings and aggregates
// the results in the settings' main currency.
//
// Investments whose valuation fails on missing market data are reported as
// unavailable rows; any other valuation error aborts the summary.
func Summarize(invs []*Investment, data *ExternalData, settings Settings, now Date) (*Summary, error) {
	s := &Summary{
		On:       now,
		Currency: settings.MainCurrency,
		Total:    M(0, settings.MainCurrency),
	}

	byCurrency := make(map[string]Money)
	byIndustry := make(map[string]Money)
	byWorldArea := make(map[string]Money)

	for _, inv := range invs {
		v, err := Value(inv, data, settings, now)
		if err == nil {
			var converted Money
			converted, err = data.Convert(v.Net, settings.MainCurrency)
			if err == nil {
				s.Rows = append(s.Rows, SummaryRow{Investment: inv, Value: v.Net, Converted: converted})
				s.Total = s.Total.Add(converted)
				accumulate(byCurrency, inv.TargetCurrencies, converted)
				accumulate(byIndustry, inv.TargetIndustries, converted)
				accumulate(byWorldArea, inv.TargetWorldAreas, converted)
				continue
			}
		}
		if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrNoStartDate) {
			s.Rows = append(s.Rows, SummaryRow{Investment: inv, Unavailable: true, Reason: err.Error()})
			s.Unavailable++
			continue
		}
		return nil, fmt.Errorf("could not value investment %q: %w", inv.ID, err)
	}

	s.ByCurrency = shares(byCurrency)
	s.ByIndustry = shares(byIndustry)
	s.ByWorldArea = shares(byWorldArea)
	return s, nil
}

// accumulate spreads a converted value over an allocation breakdown. The part
// not covered by the declared percentages goes to the "other" bucket.
func accumulate(buckets map[string]Money, allocations []Allocation, value Money) {
	if len(allocations) == 0 {
		return
	}
	var covered Percent
	for _, a := range allocations {
		buckets[a.ID] = buckets[a.ID].Add(a.Percent.Of(value))
		covered += a.Percent
	}
	if rest := 100 - covered; rest > 0 {
		buckets["other"] = buckets["other"].Add(rest.Of(value))
	}
}

// shares flattens a bucket map into a slice sorted by id, for stable
// rendering.
func shares(buckets map[string]Money) []AllocationShare {
	ids := slices.Collect(maps.Keys(buckets))
	slices.Sort(ids)
	result := make([]AllocationShare, 0, len(ids))
	for _, id := range ids {
		result = append(result, AllocationShare{ID: id, Value: buckets[id]})
	}
	return result
}
