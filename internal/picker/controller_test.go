package picker

import (
	"testing"

	"hijrical/internal/hijri"
)

// recorder tracks notifications in order.
type recorder struct {
	props []string
}

func (r *recorder) listen(property string) {
	r.props = append(r.props, property)
}

func newTestController(t *testing.T, c Constraints) (*Controller, *recorder) {
	t.Helper()
	ctrl := NewController(c)
	rec := &recorder{}
	ctrl.AddListener(rec.listen)
	return ctrl, rec
}

func TestSetSelectedDateNotifiesOnce(t *testing.T) {
	ctrl, rec := newTestController(t, Constraints{})
	d := mustDate(t, 1446, 9, 5)

	ctrl.SetSelectedDate(d)
	if len(rec.props) != 1 || rec.props[0] != PropSelectedDate {
		t.Fatalf("expected one %q notification, got %v", PropSelectedDate, rec.props)
	}

	// Same day again: no observable change, no notification.
	ctrl.SetSelectedDate(d)
	if len(rec.props) != 1 {
		t.Errorf("expected idempotent no-op, got %v", rec.props)
	}
}

func TestModeExclusivityThroughController(t *testing.T) {
	ctrl, _ := newTestController(t, Constraints{})
	a := mustDate(t, 1446, 9, 1)
	b := mustDate(t, 1446, 9, 5)

	ctrl.SetSelectedDate(a)
	ctrl.SetSelectedDates([]hijri.Date{a, b})

	if !ctrl.SelectedDate().IsZero() {
		t.Error("selectedDate should read empty after selecting multiple")
	}
	if !ctrl.SelectedRange().IsZero() {
		t.Error("selectedRange should read empty")
	}
	if ctrl.SelectedRanges() != nil {
		t.Error("selectedRanges should read empty")
	}
	if len(ctrl.SelectedDates()) != 2 {
		t.Errorf("expected 2 selected dates, got %d", len(ctrl.SelectedDates()))
	}
}

func TestBoundsRejection(t *testing.T) {
	min := mustDate(t, 1446, 9, 1)
	max := min.AddDays(10)
	ctrl, rec := newTestController(t, Constraints{MinDate: min, MaxDate: max})

	prior := min.AddDays(2)
	ctrl.SetSelectedDate(prior)
	rec.props = nil

	// One day before the lower bound: whole call rejected.
	ctrl.SetSelectedDate(min.AddDays(-1))
	if !ctrl.SelectedDate().SameDay(prior) {
		t.Errorf("expected selection unchanged, got %s", ctrl.SelectedDate())
	}
	if len(rec.props) != 0 {
		t.Errorf("expected no notification, got %v", rec.props)
	}

	ctrl.SetSelectedDate(max.AddDays(1))
	if !ctrl.SelectedDate().SameDay(prior) {
		t.Error("expected selection unchanged past the upper bound")
	}
}

func TestBlackoutRejection(t *testing.T) {
	blocked := mustDate(t, 1446, 9, 7)
	ctrl, rec := newTestController(t, Constraints{
		Blackout: func(d hijri.Date) bool { return d.SameDay(blocked) },
	})

	ctrl.SetSelectedDate(blocked)
	if !ctrl.SelectedDate().IsZero() {
		t.Error("expected blackout date rejected")
	}
	if len(rec.props) != 0 {
		t.Errorf("expected no notification, got %v", rec.props)
	}

	// Collection setters drop invalid members and keep the rest.
	ok := blocked.AddDays(1)
	ctrl.SetSelectedDates([]hijri.Date{blocked, ok})
	dates := ctrl.SelectedDates()
	if len(dates) != 1 || !dates[0].SameDay(ok) {
		t.Errorf("expected only the valid member kept, got %v", dates)
	}
}

func TestRangeNormalizationScenario(t *testing.T) {
	min := mustDate(t, 1446, 9, 1)
	max := min.AddDays(29)
	ctrl, _ := newTestController(t, Constraints{MinDate: min, MaxDate: max})

	day3 := min.AddDays(2)
	day5 := min.AddDays(4)

	ctrl.SetSelectedRange(hijri.NewRange(day5, day3))
	r := ctrl.SelectedRange()
	if !r.Start().SameDay(day3) {
		t.Errorf("expected start %s, got %s", day3, r.Start())
	}
	if !r.End().SameDay(day5) {
		t.Errorf("expected end %s, got %s", day5, r.End())
	}
}

func TestForwardClampAtEraEnd(t *testing.T) {
	ctrl, rec := newTestController(t, Constraints{})
	last := hijri.MaxDate()

	ctrl.SetView(YearView)
	ctrl.SetDisplayDate(last)
	rec.props = nil

	// Already in the last representable year: nothing moves, nothing fires.
	ctrl.Forward()
	if !ctrl.DisplayDate().SameDay(last) {
		t.Errorf("expected display unchanged, got %s", ctrl.DisplayDate())
	}
	if len(rec.props) != 0 {
		t.Errorf("expected no notification, got %v", rec.props)
	}
}

func TestForwardBackwardByViewUnit(t *testing.T) {
	ctrl, _ := newTestController(t, Constraints{})
	start := mustDate(t, 1446, 9, 14)
	ctrl.SetDisplayDate(start)

	ctrl.Forward()
	if d := ctrl.DisplayDate(); d.Year() != 1446 || d.Month() != 10 {
		t.Errorf("expected 1446-10, got %s", d)
	}

	ctrl.SetView(YearView)
	ctrl.Forward()
	if d := ctrl.DisplayDate(); d.Year() != 1447 {
		t.Errorf("expected 1447, got %s", d)
	}

	ctrl.SetView(DecadeView)
	ctrl.Backward()
	if d := ctrl.DisplayDate(); d.Year() != 1437 {
		t.Errorf("expected 1437, got %s", d)
	}
}

func TestBackwardClampAtMinDate(t *testing.T) {
	min := mustDate(t, 1446, 9, 1)
	ctrl, rec := newTestController(t, Constraints{MinDate: min})

	ctrl.SetDisplayDate(min.AddDays(5))
	rec.props = nil

	ctrl.Backward()
	if !ctrl.DisplayDate().SameDay(min.AddDays(5)) {
		t.Errorf("expected display unchanged, got %s", ctrl.DisplayDate())
	}
	if len(rec.props) != 0 {
		t.Errorf("expected no notification, got %v", rec.props)
	}
}

func TestListenerOrderAndSelfRemoval(t *testing.T) {
	ctrl := NewController(Constraints{})
	var order []string

	ctrl.AddListener(func(string) { order = append(order, "first") })
	var second ListenerHandle
	second = ctrl.AddListener(func(string) {
		order = append(order, "second")
		ctrl.RemoveListener(second)
	})
	ctrl.AddListener(func(string) { order = append(order, "third") })

	ctrl.SetSelectedDate(mustDate(t, 1446, 9, 5))
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("expected all three in registration order, got %v", order)
	}

	// The second listener removed itself; the next pass skips it.
	order = nil
	ctrl.SetSelectedDate(mustDate(t, 1446, 9, 6))
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("expected remaining listeners only, got %v", order)
	}
}

func TestReentrantMutationSuppressed(t *testing.T) {
	ctrl := NewController(Constraints{})
	a := mustDate(t, 1446, 9, 5)
	b := mustDate(t, 1446, 9, 6)

	calls := 0
	ctrl.AddListener(func(string) {
		calls++
		// Mutating from inside a notification commits but must not
		// trigger a nested pass.
		ctrl.SetSelectedDate(b)
	})

	ctrl.SetSelectedDate(a)
	if calls != 1 {
		t.Errorf("expected a single notification pass, got %d", calls)
	}
	if !ctrl.SelectedDate().SameDay(b) {
		t.Errorf("expected re-entrant mutation to commit, got %s", ctrl.SelectedDate())
	}
}

func TestSetViewNotifies(t *testing.T) {
	ctrl, rec := newTestController(t, Constraints{})

	ctrl.SetView(YearView)
	if len(rec.props) != 1 || rec.props[0] != PropView {
		t.Fatalf("expected %q, got %v", PropView, rec.props)
	}
	ctrl.SetView(YearView)
	if len(rec.props) != 1 {
		t.Error("setting the same view is a no-op")
	}
}

func TestCloseReleasesListeners(t *testing.T) {
	ctrl, rec := newTestController(t, Constraints{})
	ctrl.Close()
	ctrl.SetSelectedDate(mustDate(t, 1446, 9, 5))
	if len(rec.props) != 0 {
		t.Errorf("expected no notifications after Close, got %v", rec.props)
	}
}

func TestDisplayDateClampsToBounds(t *testing.T) {
	min := mustDate(t, 1446, 9, 1)
	max := min.AddDays(29)
	ctrl, _ := newTestController(t, Constraints{MinDate: min, MaxDate: max})

	ctrl.SetDisplayDate(min.AddDays(-100))
	if !ctrl.DisplayDate().SameDay(min) {
		t.Errorf("expected clamp to min, got %s", ctrl.DisplayDate())
	}
	ctrl.SetDisplayDate(max.AddDays(100))
	if !ctrl.DisplayDate().SameDay(max) {
		t.Errorf("expected clamp to max, got %s", ctrl.DisplayDate())
	}
}
