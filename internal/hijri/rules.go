package hijri

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules supplies the month-length data for one variant of the Hijri
// calendar, covering years 1 AH through MaxYear inclusive. The conversion
// engine is entirely data-driven so administrative corrections (a month
// observed at 30 days where the cycle says 29) can be applied without
// touching any arithmetic.
type Rules interface {
	DaysInMonth(year, month int) int
	MonthsInYear(year int) int
	IsLeapYear(year int) bool
	MaxYear() int
}

// TabularRules is the civil (tabular) Islamic calendar: a 30-year cycle
// with 11 leap years, months alternating 30 and 29 days, and Dhu al-Hijjah
// extended to 30 days in leap years.
type TabularRules struct {
	maxYear int
}

// NewTabular returns tabular rules covering years 1..maxYear.
func NewTabular(maxYear int) TabularRules {
	return TabularRules{maxYear: maxYear}
}

func (r TabularRules) MaxYear() int {
	return r.maxYear
}

func (r TabularRules) MonthsInYear(int) int {
	return 12
}

// IsLeapYear reports whether the year has 355 days. Leap years fall at
// positions 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29 of the 30-year cycle.
func (r TabularRules) IsLeapYear(year int) bool {
	return (14+11*year)%30 < 11
}

func (r TabularRules) DaysInMonth(year, month int) int {
	if month == 12 && r.IsLeapYear(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

// Adjustment overrides the length of a single month. Days must be 29 or 30.
type Adjustment struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Days  int `yaml:"days"`
}

// AdjustedRules overlays per-month corrections on a base rule set.
type AdjustedRules struct {
	base      Rules
	overrides map[[2]int]int
}

// NewAdjusted validates the adjustments and returns rules that defer to
// base everywhere no override applies.
func NewAdjusted(base Rules, adjs []Adjustment) (AdjustedRules, error) {
	overrides := make(map[[2]int]int, len(adjs))
	for _, a := range adjs {
		if a.Year < 1 || a.Year > base.MaxYear() {
			return AdjustedRules{}, fmt.Errorf("adjustment year %d outside era 1-%d", a.Year, base.MaxYear())
		}
		if a.Month < 1 || a.Month > base.MonthsInYear(a.Year) {
			return AdjustedRules{}, fmt.Errorf("adjustment month %d invalid for year %d", a.Month, a.Year)
		}
		if a.Days != 29 && a.Days != 30 {
			return AdjustedRules{}, fmt.Errorf("adjustment for %d-%02d must be 29 or 30 days, got %d", a.Year, a.Month, a.Days)
		}
		overrides[[2]int{a.Year, a.Month}] = a.Days
	}
	return AdjustedRules{base: base, overrides: overrides}, nil
}

func (r AdjustedRules) MaxYear() int {
	return r.base.MaxYear()
}

func (r AdjustedRules) MonthsInYear(year int) int {
	return r.base.MonthsInYear(year)
}

func (r AdjustedRules) DaysInMonth(year, month int) int {
	if d, ok := r.overrides[[2]int{year, month}]; ok {
		return d
	}
	return r.base.DaysInMonth(year, month)
}

// IsLeapYear is derived from the actual month lengths so overrides are
// reflected, not the base cycle position.
func (r AdjustedRules) IsLeapYear(year int) bool {
	total := 0
	for m := 1; m <= r.MonthsInYear(year); m++ {
		total += r.DaysInMonth(year, m)
	}
	return total == 355
}

type adjustmentsFile struct {
	Adjustments []Adjustment `yaml:"adjustments"`
}

// LoadAdjustments reads a YAML adjustments file of the form:
//
//	adjustments:
//	  - year: 1446
//	    month: 9
//	    days: 30
func LoadAdjustments(path string) ([]Adjustment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f adjustmentsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Adjustments, nil
}
