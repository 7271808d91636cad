package hijri

import (
	"fmt"
	"time"
)

// Date is an immutable Hijri calendar day. The only state is the day
// number, so equality, ordering and day arithmetic are plain integer
// operations; calendar fields are decomposed on read through the default
// converter. The zero value means "no date".
type Date struct {
	n int
}

// New builds a Date from Hijri (year, month, day) fields.
func New(year, month, day int) (Date, error) {
	n, err := Default().ToDayNumber(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{n: n}, nil
}

// FromDayNumber builds a Date from a day number inside the era.
func FromDayNumber(n int) (Date, error) {
	if !Default().InEra(n) {
		return Date{}, &OutOfEraError{DayNumber: n}
	}
	return Date{n: n}, nil
}

// FromTime converts the calendar day of t (in its own location) to a Date.
func FromTime(t time.Time) Date {
	// Day count since 1970-01-01, then shift to the day-number epoch.
	y, m, d := t.Date()
	utc := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Date{n: unixEpochDayNumber + int(utc.Unix()/86400)}
}

// Today returns the current day.
func Today() Date {
	return FromTime(time.Now())
}

func (d Date) IsZero() bool {
	return d.n == 0
}

func (d Date) DayNumber() int {
	return d.n
}

// Compare orders dates by day number: -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.n < o.n:
		return -1
	case d.n > o.n:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool {
	return d.n < o.n
}

func (d Date) After(o Date) bool {
	return d.n > o.n
}

// SameDay reports whether both dates are set and fall on the same day.
// A zero value on either side is never the same day as anything.
func (d Date) SameDay(o Date) bool {
	return !d.IsZero() && !o.IsZero() && d.n == o.n
}

// AddDays returns the date n days later (earlier for negative n). Pure
// integer arithmetic; the result may sit outside the era, in which case
// its field accessors return zero.
func (d Date) AddDays(n int) Date {
	return Date{n: d.n + n}
}

// Weekday returns ISO numbering, Monday=1 through Sunday=7, independent of
// any first-day-of-week setting. Day number 1 (0001-01-01 Gregorian) is a
// Monday.
func (d Date) Weekday() int {
	w := (d.n - 1) % 7
	if w < 0 {
		w += 7
	}
	return w + 1
}

func (d Date) fields() (year, month, day int, ok bool) {
	year, month, day, err := Default().FromDayNumber(d.n)
	return year, month, day, err == nil
}

// Year returns the Hijri year, or 0 when the date is zero or out of era.
func (d Date) Year() int {
	y, _, _, _ := d.fields()
	return y
}

// Month returns the Hijri month 1..12, or 0 when out of era.
func (d Date) Month() int {
	_, m, _, _ := d.fields()
	return m
}

// Day returns the day of the month, or 0 when out of era.
func (d Date) Day() int {
	_, _, day, _ := d.fields()
	return day
}

// Gregorian returns the equivalent Gregorian calendar day in UTC.
func (d Date) Gregorian() time.Time {
	return time.Unix(int64(d.n-unixEpochDayNumber)*86400, 0).UTC()
}

// String formats as "1446-09-01" (year-month-day, zero padded), or "" for
// the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	y, m, day, ok := d.fields()
	if !ok {
		return fmt.Sprintf("day#%d", d.n)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}

// Format returns the long form, e.g. "1 Ramadan 1446 AH".
func (d Date) Format() string {
	y, m, day, ok := d.fields()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d AH", day, MonthName(m), y)
}

// MinDate and MaxDate return the era bounds of the default converter.
func MinDate() Date {
	return Date{n: Default().MinDayNumber()}
}

func MaxDate() Date {
	return Date{n: Default().MaxDayNumber()}
}
