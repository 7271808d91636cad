package hijri

import "fmt"

// Range is an inclusive span between two dates. Either endpoint may be the
// zero Date; a range missing an endpoint contains nothing (an interactive
// range mid-gesture has an anchor but no committed span). Construction
// normalizes so Start never follows End.
type Range struct {
	start, end Date
}

// NewRange builds a normalized range; reversed endpoints are swapped.
func NewRange(start, end Date) Range {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		start, end = end, start
	}
	return Range{start: start, end: end}
}

func (r Range) Start() Date {
	return r.start
}

func (r Range) End() Date {
	return r.end
}

func (r Range) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool {
	return !r.start.IsZero() && !r.end.IsZero()
}

// Contains reports whether d lies within the range, inclusive of both
// endpoints. False when d is zero or either endpoint is missing.
func (r Range) Contains(d Date) bool {
	if !r.IsComplete() || d.IsZero() {
		return false
	}
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps reports whether two complete ranges share at least one day.
func (r Range) Overlaps(o Range) bool {
	if !r.IsComplete() || !o.IsComplete() {
		return false
	}
	return !r.start.After(o.end) && !o.start.After(r.end)
}

// Equal is structural equality on both endpoints, including zero ones.
func (r Range) Equal(o Range) bool {
	return r.start.n == o.start.n && r.end.n == o.end.n
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}
