package wallet

import "time"

// MonthlyRate is one entry of a monthly time series, such as an inflation
// rate. Series are kept sorted ascending by (year, month).
type MonthlyRate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"` // 1-12
	Rate  Percent    `json:"rate"`
}

// DailyRate is one entry of a dated time series, such as a central-bank
// reference rate. Series are kept sorted ascending by (year, month, day).
type DailyRate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
	Rate  Percent    `json:"rate"`
}

// InflationRateOn returns the rate of the latest series entry effective at or
// before (year, month), or 0 when no entry qualifies.
//
// The series is scanned in order with an early break, which on a sorted
// series is equivalent to a binary search.
func InflationRateOn(series []MonthlyRate, year int, month time.Month) Percent {
	var rate Percent
	var found bool
	for _, e := range series {
		if e.Year > year || (e.Year == year && e.Month > month) {
			break
		}
		rate = e.Rate
		found = true
	}
	if !found {
		return 0
	}
	return rate
}

// ReferenceRateOn returns the rate of the latest series entry effective at or
// before the given date, or 0 when no entry qualifies.
func ReferenceRateOn(series []DailyRate, on Date) Percent {
	var rate Percent
	var found bool
	for _, e := range series {
		if NewDate(e.Year, e.Month, e.Day).After(on) {
			break
		}
		rate = e.Rate
		found = true
	}
	if !found {
		return 0
	}
	return rate
}
