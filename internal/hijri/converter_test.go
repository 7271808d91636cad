package hijri

import (
	"errors"
	"testing"
	"time"
)

func TestEpoch(t *testing.T) {
	c := Default()

	n, err := c.ToDayNumber(1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != epochDayNumber {
		t.Errorf("expected epoch day %d, got %d", epochDayNumber, n)
	}
	if n != c.MinDayNumber() {
		t.Errorf("expected era to start at the epoch")
	}

	// 1 Muharram 1 AH was a Friday.
	d := Date{n: n}
	if d.Weekday() != 5 {
		t.Errorf("expected Friday (5), got %d", d.Weekday())
	}
}

func TestRoundTripWholeEra(t *testing.T) {
	c := Default()
	for n := c.MinDayNumber(); n <= c.MaxDayNumber(); n++ {
		y, m, d, err := c.FromDayNumber(n)
		if err != nil {
			t.Fatalf("FromDayNumber(%d): %v", n, err)
		}
		back, err := c.ToDayNumber(y, m, d)
		if err != nil {
			t.Fatalf("ToDayNumber(%d,%d,%d): %v", y, m, d, err)
		}
		if back != n {
			t.Fatalf("round trip %d -> (%d,%d,%d) -> %d", n, y, m, d, back)
		}
	}
}

func TestRoundTripFields(t *testing.T) {
	c := Default()
	for _, year := range []int{1, 2, 30, 100, 1446, 1600} {
		for m := 1; m <= c.MonthsInYear(year); m++ {
			for _, day := range []int{1, 15, c.DaysInMonth(year, m)} {
				n, err := c.ToDayNumber(year, m, day)
				if err != nil {
					t.Fatalf("ToDayNumber(%d,%d,%d): %v", year, m, day, err)
				}
				gy, gm, gd, err := c.FromDayNumber(n)
				if err != nil {
					t.Fatalf("FromDayNumber(%d): %v", n, err)
				}
				if gy != year || gm != m || gd != day {
					t.Errorf("(%d,%d,%d) -> %d -> (%d,%d,%d)", year, m, day, n, gy, gm, gd)
				}
			}
		}
	}
}

func TestTabularLeapYears(t *testing.T) {
	r := NewTabular(DefaultMaxYear)

	// 11 leap years per 30-year cycle, at the usual positions.
	leaps := 0
	for y := 1; y <= 30; y++ {
		if r.IsLeapYear(y) {
			leaps++
		}
	}
	if leaps != 11 {
		t.Errorf("expected 11 leap years per cycle, got %d", leaps)
	}

	for _, y := range []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29} {
		if !r.IsLeapYear(y) {
			t.Errorf("expected year %d to be leap", y)
		}
	}
	if r.IsLeapYear(1) || r.IsLeapYear(30) {
		t.Error("years 1 and 30 of the cycle are not leap")
	}
}

func TestTabularMonthLengths(t *testing.T) {
	r := NewTabular(DefaultMaxYear)

	for m := 1; m <= 12; m++ {
		want := 30
		if m%2 == 0 {
			want = 29
		}
		if got := r.DaysInMonth(1, m); got != want {
			t.Errorf("month %d of year 1: expected %d days, got %d", m, want, got)
		}
	}

	// Dhu al-Hijjah stretches to 30 in leap years.
	if r.DaysInMonth(2, 12) != 30 {
		t.Error("expected 30-day Dhu al-Hijjah in leap year 2")
	}
	if r.DaysInMonth(1, 12) != 29 {
		t.Error("expected 29-day Dhu al-Hijjah in common year 1")
	}
}

func TestOutOfEra(t *testing.T) {
	c := Default()

	cases := [][3]int{
		{0, 1, 1},
		{DefaultMaxYear + 1, 1, 1},
		{1446, 13, 1},
		{1446, 0, 5},
		{1446, 2, 30}, // Safar has 29 days
		{1446, 1, 0},
	}
	for _, tc := range cases {
		_, err := c.ToDayNumber(tc[0], tc[1], tc[2])
		var oe *OutOfEraError
		if !errors.As(err, &oe) {
			t.Errorf("ToDayNumber(%v): expected OutOfEraError, got %v", tc, err)
		}
	}

	if _, _, _, err := c.FromDayNumber(c.MinDayNumber() - 1); err == nil {
		t.Error("expected error before era start")
	}
	if _, _, _, err := c.FromDayNumber(c.MaxDayNumber() + 1); err == nil {
		t.Error("expected error past era end")
	}
}

func TestAdjustedRules(t *testing.T) {
	base := NewTabular(DefaultMaxYear)
	adj, err := NewAdjusted(base, []Adjustment{
		{Year: 1446, Month: 2, Days: 30}, // Safar observed at 30
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adj.DaysInMonth(1446, 2) != 30 {
		t.Error("override not applied")
	}
	if adj.DaysInMonth(1446, 4) != base.DaysInMonth(1446, 4) {
		t.Error("unrelated month changed")
	}

	// Conversion downstream of the override shifts by one day.
	c := NewConverter(adj)
	plain := NewConverter(base)
	adjusted, err := c.ToDayNumber(1446, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tabular, err := plain.ToDayNumber(1446, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adjusted != tabular+1 {
		t.Errorf("expected adjusted start %d, got %d", tabular+1, adjusted)
	}

	// Earlier dates are untouched.
	a, _ := c.ToDayNumber(1446, 1, 10)
	b, _ := plain.ToDayNumber(1446, 1, 10)
	if a != b {
		t.Error("dates before the override moved")
	}

	// 1446 is common in the base cycle; the extra day makes it 355 long.
	if base.IsLeapYear(1446) {
		t.Fatal("test premise: 1446 should be common in the tabular cycle")
	}
	if !adj.IsLeapYear(1446) {
		t.Error("expected leap status derived from actual month lengths")
	}
}

func TestAdjustedRulesValidation(t *testing.T) {
	base := NewTabular(DefaultMaxYear)

	if _, err := NewAdjusted(base, []Adjustment{{Year: 1446, Month: 2, Days: 28}}); err == nil {
		t.Error("expected error for 28-day month")
	}
	if _, err := NewAdjusted(base, []Adjustment{{Year: 0, Month: 2, Days: 29}}); err == nil {
		t.Error("expected error for year outside era")
	}
	if _, err := NewAdjusted(base, []Adjustment{{Year: 1446, Month: 13, Days: 29}}); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestGregorianAnchors(t *testing.T) {
	// 1 Muharram 1447 AH (civil) is Friday 27 June 2025.
	d, err := New(1447, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := d.Gregorian()
	if g.Year() != 2025 || g.Month() != time.June || g.Day() != 27 {
		t.Errorf("expected 2025-06-27, got %s", g.Format("2006-01-02"))
	}
	if d.Weekday() != 5 {
		t.Errorf("expected Friday (5), got %d", d.Weekday())
	}
}
