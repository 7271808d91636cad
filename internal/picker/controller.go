package picker

import "hijrical/internal/hijri"

// Property identifiers passed to change listeners.
const (
	PropSelectedDate   = "selectedDate"
	PropSelectedDates  = "selectedDates"
	PropSelectedRange  = "selectedRange"
	PropSelectedRanges = "selectedRanges"
	PropDisplayDate    = "displayDate"
	PropView           = "view"
)

// ListenerHandle identifies a registered change listener.
type ListenerHandle int

type listener struct {
	handle ListenerHandle
	fn     func(property string)
}

// Controller is the mutation surface of the picker: it owns the selection
// state, the display (anchor) date and the current view, validates every
// change against the constraints, and fans out property-change
// notifications. It is single-threaded by design and does no locking; use
// it only from the goroutine that owns the widget.
type Controller struct {
	constraints Constraints
	sel         Selection
	display     hijri.Date
	view        View
	listeners   []listener
	nextHandle  ListenerHandle
	notifying   bool
}

// NewController builds a controller with the display date anchored at
// today, clamped into the constraint bounds.
func NewController(c Constraints) *Controller {
	c = c.normalized()
	display := hijri.Today()
	if display.Before(c.MinDate) {
		display = c.MinDate
	}
	if display.After(c.MaxDate) {
		display = c.MaxDate
	}
	return &Controller{constraints: c, display: display}
}

func (c *Controller) Constraints() Constraints {
	return c.constraints
}

// Selection exposes the committed selection read-only.
func (c *Controller) Selection() *Selection {
	return &c.sel
}

func (c *Controller) Mode() Mode {
	return c.sel.Mode()
}

func (c *Controller) View() View {
	return c.view
}

// SetView switches the grid granularity; no-op when unchanged.
func (c *Controller) SetView(v View) {
	if v == c.view {
		return
	}
	c.view = v
	c.notify(PropView)
}

func (c *Controller) DisplayDate() hijri.Date {
	return c.display
}

// SetDisplayDate moves the anchor, clamping into the constraint bounds.
// Zero dates are ignored.
func (c *Controller) SetDisplayDate(d hijri.Date) {
	if d.IsZero() {
		return
	}
	if d.Before(c.constraints.MinDate) {
		d = c.constraints.MinDate
	}
	if d.After(c.constraints.MaxDate) {
		d = c.constraints.MaxDate
	}
	if d.SameDay(c.display) {
		return
	}
	c.display = d
	c.notify(PropDisplayDate)
}

func (c *Controller) SelectedDate() hijri.Date {
	return c.sel.Date()
}

// SetSelectedDate commits a single-date selection. A candidate outside the
// bounds or on a blackout date rejects the whole call, leaving prior state
// untouched. The zero Date clears the selection. Setting a date SameDay
// the current one is a no-op and fires nothing.
func (c *Controller) SetSelectedDate(d hijri.Date) {
	if !d.IsZero() && !c.constraints.allows(d) {
		return
	}
	if c.sel.setSingle(d) {
		c.notify(PropSelectedDate)
	}
}

func (c *Controller) SelectedDates() []hijri.Date {
	return c.sel.Dates()
}

// SetSelectedDates replaces the whole multi-date set. Invalid members are
// dropped rather than rejecting the call; duplicates collapse to the first
// occurrence. A semantically equal set (order-insensitive) is a no-op.
func (c *Controller) SetSelectedDates(ds []hijri.Date) {
	var valid []hijri.Date
	for _, d := range ds {
		if c.constraints.allows(d) {
			valid = append(valid, d)
		}
	}
	if c.sel.setMultiple(valid) {
		c.notify(PropSelectedDates)
	}
}

func (c *Controller) SelectedRange() hijri.Range {
	return c.sel.Range()
}

// SetSelectedRange commits a range selection after normalizing reversed
// endpoints. A range with an out-of-bounds or blacked-out endpoint rejects
// the whole call; a structurally equal range is a no-op. Incomplete
// ranges (an anchor without a committed end) are accepted as-is.
func (c *Controller) SetSelectedRange(r hijri.Range) {
	r = hijri.NewRange(r.Start(), r.End())
	if !r.IsZero() && !c.endpointsAllowed(r) {
		return
	}
	if c.sel.setRange(r) {
		c.notify(PropSelectedRange)
	}
}

func (c *Controller) SelectedRanges() []hijri.Range {
	return c.sel.Ranges()
}

// SetSelectedRanges replaces the whole sequence. Members with invalid
// endpoints are dropped; the surviving sequence is compared
// order-sensitively against the current one before committing.
func (c *Controller) SetSelectedRanges(rs []hijri.Range) {
	var valid []hijri.Range
	for _, r := range rs {
		r = hijri.NewRange(r.Start(), r.End())
		if c.constraints.allowsRange(r) {
			valid = append(valid, r)
		}
	}
	if c.sel.setMultiRange(valid) {
		c.notify(PropSelectedRanges)
	}
}

// endpointsAllowed validates whichever endpoints are present.
func (c *Controller) endpointsAllowed(r hijri.Range) bool {
	if s := r.Start(); !s.IsZero() && !c.constraints.allows(s) {
		return false
	}
	if e := r.End(); !e.IsZero() && !c.constraints.allows(e) {
		return false
	}
	return true
}

// ClearSelection empties the current mode's payload.
func (c *Controller) ClearSelection() {
	if !c.sel.clear() {
		return
	}
	switch c.sel.Mode() {
	case MultipleMode:
		c.notify(PropSelectedDates)
	case RangeMode:
		c.notify(PropSelectedRange)
	case MultiRangeMode:
		c.notify(PropSelectedRanges)
	default:
		c.notify(PropSelectedDate)
	}
}

// VisibleDates generates the cells for the current view and anchor.
func (c *Controller) VisibleDates() []hijri.Date {
	return VisibleDates(c.view, c.display, c.constraints.FirstDayOfWeek, c.constraints.WeeksInView)
}

// Forward moves the anchor one view unit later (month, year, or decade
// span). A move that would land past MaxDate or outside the era is a
// no-op and fires nothing.
func (c *Controller) Forward() {
	c.navigate(1)
}

// Backward moves the anchor one view unit earlier, clamped at MinDate.
func (c *Controller) Backward() {
	c.navigate(-1)
}

func (c *Controller) navigate(dir int) {
	target, ok := c.step(dir)
	if !ok {
		return
	}
	if dir > 0 && target.After(c.constraints.MaxDate) {
		return
	}
	if dir < 0 && lastOfUnit(c.view, target).Before(c.constraints.MinDate) {
		return
	}
	// Keep the anchor inside the bounds even when the unit straddles one.
	if target.Before(c.constraints.MinDate) {
		target = c.constraints.MinDate
	}
	c.display = target
	c.notify(PropDisplayDate)
}

// step computes the first day of the adjacent view unit.
func (c *Controller) step(dir int) (hijri.Date, bool) {
	conv := hijri.Default()
	y, m := c.display.Year(), c.display.Month()
	switch c.view {
	case YearView:
		y += dir
		m = 1
	case DecadeView:
		y += 10 * dir
		m = 1
	default:
		m += dir
		if m > conv.MonthsInYear(y) {
			m = 1
			y++
		} else if m < 1 {
			y--
			if y >= 1 {
				m = conv.MonthsInYear(y)
			}
		}
	}
	d, err := hijri.New(y, m, 1)
	if err != nil {
		return hijri.Date{}, false
	}
	return d, true
}

// lastOfUnit returns the last day of the view unit starting at first.
func lastOfUnit(v View, first hijri.Date) hijri.Date {
	conv := hijri.Default()
	y := first.Year()
	switch v {
	case YearView:
		if d, err := hijri.New(y, conv.MonthsInYear(y), conv.DaysInMonth(y, conv.MonthsInYear(y))); err == nil {
			return d
		}
		return first
	case DecadeView:
		ly := y + 9
		if d, err := hijri.New(ly, conv.MonthsInYear(ly), conv.DaysInMonth(ly, conv.MonthsInYear(ly))); err == nil {
			return d
		}
		return hijri.MaxDate()
	default:
		m := first.Month()
		if d, err := hijri.New(y, m, conv.DaysInMonth(y, m)); err == nil {
			return d
		}
		return first
	}
}

// AddListener registers a property-change callback, invoked synchronously
// after a mutation commits, in registration order. The returned handle
// removes it.
func (c *Controller) AddListener(fn func(property string)) ListenerHandle {
	c.nextHandle++
	c.listeners = append(c.listeners, listener{handle: c.nextHandle, fn: fn})
	return c.nextHandle
}

// RemoveListener unregisters a listener. Safe to call from within a
// notification pass: the running pass iterates a snapshot, so removal
// never affects delivery to listeners already registered for that pass.
func (c *Controller) RemoveListener(h ListenerHandle) {
	for i, l := range c.listeners {
		if l.handle == h {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// Close releases all listeners. The controller must not be used after.
func (c *Controller) Close() {
	c.listeners = nil
}

// notify fans out to a snapshot of the listener list. Re-entrant
// mutations from inside a listener commit, but their nested notification
// pass is suppressed by the in-progress flag so a listener that mutates
// on every notification cannot recurse forever.
func (c *Controller) notify(property string) {
	if c.notifying {
		return
	}
	c.notifying = true
	defer func() { c.notifying = false }()

	snapshot := make([]listener, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, l := range snapshot {
		l.fn(property)
	}
}
