package picker

import "hijrical/internal/hijri"

// Constraints is the host-supplied, read-only configuration the controller
// validates selections against and the window generator reads. The engine
// never mutates it.
type Constraints struct {
	// MinDate and MaxDate bound selectable and navigable dates,
	// inclusive. A zero Date means unbounded on that side (the era edge
	// still applies).
	MinDate hijri.Date
	MaxDate hijri.Date

	// Blackout disables individual dates regardless of bounds. Nil means
	// no blackouts.
	Blackout func(hijri.Date) bool

	// WeekendDays are ISO weekday numbers (Monday=1..Sunday=7) styled as
	// weekend by the renderer. Defaults to Friday and Saturday.
	WeekendDays []int

	// FirstDayOfWeek is the ISO weekday the month grid starts on.
	// Defaults to Sunday (7).
	FirstDayOfWeek int

	// WeeksInView is the number of rows in the month grid. Defaults to 6.
	WeeksInView int
}

// normalized fills defaults and clamps bounds to the supported era.
func (c Constraints) normalized() Constraints {
	if c.FirstDayOfWeek < 1 || c.FirstDayOfWeek > 7 {
		c.FirstDayOfWeek = 7
	}
	if c.WeeksInView < 1 {
		c.WeeksInView = DefaultWeeksInView
	}
	if c.WeekendDays == nil {
		c.WeekendDays = []int{5, 6}
	}
	if c.MinDate.IsZero() || c.MinDate.Before(hijri.MinDate()) {
		c.MinDate = hijri.MinDate()
	}
	if c.MaxDate.IsZero() || c.MaxDate.After(hijri.MaxDate()) {
		c.MaxDate = hijri.MaxDate()
	}
	if c.MaxDate.Before(c.MinDate) {
		c.MinDate, c.MaxDate = c.MaxDate, c.MinDate
	}
	return c
}

// withinBounds reports whether d is set and inside [MinDate, MaxDate].
func (c Constraints) withinBounds(d hijri.Date) bool {
	return !d.IsZero() && !d.Before(c.MinDate) && !d.After(c.MaxDate)
}

// allows reports whether d is selectable: in bounds and not blacked out.
func (c Constraints) allows(d hijri.Date) bool {
	if !c.withinBounds(d) {
		return false
	}
	return c.Blackout == nil || !c.Blackout(d)
}

// allowsRange requires both endpoints to be selectable. Bounds are an
// interval, so endpoint checks cover every day in between; blackout days
// strictly inside a span do not invalidate it.
func (c Constraints) allowsRange(r hijri.Range) bool {
	return r.IsComplete() && c.allows(r.Start()) && c.allows(r.End())
}

// IsWeekend reports whether d falls on a configured weekend day.
func (c Constraints) IsWeekend(d hijri.Date) bool {
	if d.IsZero() {
		return false
	}
	w := d.Weekday()
	for _, wd := range c.WeekendDays {
		if wd == w {
			return true
		}
	}
	return false
}
