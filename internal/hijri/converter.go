// Package hijri implements the Hijri (lunar Islamic) calendar as pure
// integer arithmetic over day numbers. A day number counts days from the
// proleptic Gregorian date 0001-01-01 (day 1), which keeps dates totally
// ordered and makes Gregorian interop a fixed offset.
package hijri

import (
	"fmt"
	"sort"
)

// epochDayNumber is 1 Muharram 1 AH in the civil reckoning: Friday,
// 16 July 622 CE (Julian).
const epochDayNumber = 227015

// unixEpochDayNumber is 1970-01-01 Gregorian.
const unixEpochDayNumber = 719163

// DefaultMaxYear bounds the supported era.
const DefaultMaxYear = 1600

// OutOfEraError reports a conversion input outside the supported era.
// Year/Month/Day are set for field-based inputs, DayNumber for day-number
// inputs.
type OutOfEraError struct {
	Year, Month, Day int
	DayNumber        int
}

func (e *OutOfEraError) Error() string {
	if e.DayNumber != 0 {
		return fmt.Sprintf("day number %d outside the supported Hijri era", e.DayNumber)
	}
	return fmt.Sprintf("hijri date %d-%02d-%02d outside the supported era", e.Year, e.Month, e.Day)
}

// Converter converts between (year, month, day) and day numbers under one
// rule set. Conversion is bijective by construction: both directions read
// the same year-start table, itself a running sum of the rule table's
// month lengths.
type Converter struct {
	rules Rules
	// starts[y-1] is the day number of 1 Muharram of year y; the final
	// element is the first day past the era.
	starts []int
}

// NewConverter builds the year-start table for the full era of r.
func NewConverter(r Rules) *Converter {
	n := r.MaxYear()
	starts := make([]int, n+1)
	d := epochDayNumber
	for y := 1; y <= n; y++ {
		starts[y-1] = d
		for m := 1; m <= r.MonthsInYear(y); m++ {
			d += r.DaysInMonth(y, m)
		}
	}
	starts[n] = d
	return &Converter{rules: r, starts: starts}
}

func (c *Converter) Rules() Rules {
	return c.rules
}

// MinDayNumber returns the first day of the era (1 Muharram 1 AH).
func (c *Converter) MinDayNumber() int {
	return c.starts[0]
}

// MaxDayNumber returns the last day of the era.
func (c *Converter) MaxDayNumber() int {
	return c.starts[len(c.starts)-1] - 1
}

// InEra reports whether the day number falls inside the supported era.
func (c *Converter) InEra(n int) bool {
	return n >= c.MinDayNumber() && n <= c.MaxDayNumber()
}

// ToDayNumber converts a Hijri (year, month, day) to its day number.
func (c *Converter) ToDayNumber(year, month, day int) (int, error) {
	if year < 1 || year > c.rules.MaxYear() {
		return 0, &OutOfEraError{Year: year, Month: month, Day: day}
	}
	if month < 1 || month > c.rules.MonthsInYear(year) {
		return 0, &OutOfEraError{Year: year, Month: month, Day: day}
	}
	if day < 1 || day > c.rules.DaysInMonth(year, month) {
		return 0, &OutOfEraError{Year: year, Month: month, Day: day}
	}
	n := c.starts[year-1]
	for m := 1; m < month; m++ {
		n += c.rules.DaysInMonth(year, m)
	}
	return n + day - 1, nil
}

// FromDayNumber converts a day number back to Hijri (year, month, day).
func (c *Converter) FromDayNumber(n int) (year, month, day int, err error) {
	if !c.InEra(n) {
		return 0, 0, 0, &OutOfEraError{DayNumber: n}
	}
	// Smallest index whose year start exceeds n; that index is the year.
	year = sort.SearchInts(c.starts, n+1)
	rem := n - c.starts[year-1]
	month = 1
	for {
		dim := c.rules.DaysInMonth(year, month)
		if rem < dim {
			break
		}
		rem -= dim
		month++
	}
	return year, month, rem + 1, nil
}

func (c *Converter) DaysInMonth(year, month int) int {
	return c.rules.DaysInMonth(year, month)
}

func (c *Converter) MonthsInYear(year int) int {
	return c.rules.MonthsInYear(year)
}

func (c *Converter) IsLeapYear(year int) bool {
	return c.rules.IsLeapYear(year)
}

var defaultConverter = NewConverter(NewTabular(DefaultMaxYear))

// Default returns the converter used by Date accessors and the package
// constructors. It starts as the civil tabular calendar.
func Default() *Converter {
	return defaultConverter
}

// SetDefault swaps the converter behind Date accessors, for hosts that
// load rule adjustments at startup. Call before any dates are built; the
// package is single-threaded by design and the swap is not synchronized.
func SetDefault(c *Converter) {
	defaultConverter = c
}
