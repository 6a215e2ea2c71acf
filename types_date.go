package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date. The WALLET_TESTING_NOW environment variable
// overrides it, so documentation scenarios run on a stable date.
func Today() Date {
	if now := os.Getenv("WALLET_TESTING_NOW"); now != "" {
		if t, err := time.Parse(DateFormat, now); err == nil {
			return NewDate(t.Date())
		}
	}
	return NewDate(time.Now().Date())
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// DurationUnit is the calendar unit of a Duration.
type DurationUnit string

const (
	// Months is the duration unit for calendar months.
	Months DurationUnit = "m"
	// Years is the duration unit for calendar years.
	Years DurationUnit = "y"
)

// Duration is a calendar duration, a whole number of months or years. It
// marshals as its string form, "6m" or "2y".
type Duration struct {
	Num  int
	Unit DurationUnit
}

func (u Duration) String() string { return fmt.Sprintf("%d%s", u.Num, u.Unit) }

func (u Duration) MarshalJSON() ([]byte, error) { return json.Marshal(u.String()) }

func (u *Duration) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDuration(str)
	if err != nil {
		return err
	}
	*u = d
	return nil
}

// months returns the duration expressed in calendar months.
func (u Duration) months() int {
	if u.Unit == Years {
		return u.Num * 12
	}
	return u.Num
}

// ParseDuration parses a Duration from strings like "6m" or "2y".
func ParseDuration(str string) (Duration, error) {
	str = strings.TrimSpace(str)
	if len(str) < 2 {
		return Duration{}, fmt.Errorf("invalid duration %q: want <num><m|y>", str)
	}
	unit := DurationUnit(str[len(str)-1:])
	if unit != Months && unit != Years {
		return Duration{}, fmt.Errorf("invalid duration unit in %q: want 'm' or 'y'", str)
	}
	num, err := strconv.Atoi(str[:len(str)-1])
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration number in %q: %w", str, err)
	}
	if num < 1 {
		return Duration{}, fmt.Errorf("invalid duration %q: number must be at least 1", str)
	}
	return Duration{Num: num, Unit: unit}, nil
}

// AddDuration returns a new Date with the calendar duration added.
//
// The result is normalized through [time.Date], so a day-of-month overflow
// rolls into the next month: 2024-01-31 plus one month is 2024-03-02. This is
// the one rule used everywhere interest-period boundaries are computed.
func (d Date) AddDuration(u Duration) Date {
	return NewDate(d.y, d.m+time.Month(u.months()), d.d)
}

// YearsBetween returns the time elapsed from start to end as a fraction of
// calendar years.
//
// When both dates fall on the same day-of-month the fraction is the exact
// month difference over twelve, which is immune to leap-year drift. Otherwise
// the elapsed time is prorated against the actual length of the year starting
// at start.
func YearsBetween(start, end Date) float64 {
	if start.d == end.d {
		months := (end.y-start.y)*12 + int(end.m-start.m)
		return float64(months) / 12
	}
	elapsed := end.time().Sub(start.time())
	oneYear := start.AddDuration(Duration{Num: 1, Unit: Years}).time().Sub(start.time())
	return float64(elapsed) / float64(oneYear)
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dmy])$`)

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1", and relative forms like "-3m" or "+1y" anchored on today.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	// Handle "0d" as a special case for today
	if str == "0d" {
		return Today(), nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "m":
			return today.AddMonth(num), nil
		case "y":
			return NewDate(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }
