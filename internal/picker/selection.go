package picker

import "hijrical/internal/hijri"

// Mode is the exclusive kind of selection currently active.
type Mode int

const (
	SingleMode Mode = iota
	MultipleMode
	RangeMode
	MultiRangeMode
)

func (m Mode) String() string {
	switch m {
	case SingleMode:
		return "single"
	case MultipleMode:
		return "multiple"
	case RangeMode:
		return "range"
	case MultiRangeMode:
		return "multiRange"
	}
	return "unknown"
}

// Selection is a tagged union over the four selection shapes. Exactly one
// payload is populated for the active mode; switching mode clears the
// rest, so a single date and a range can never coexist. Mutated only by
// the Controller.
type Selection struct {
	mode   Mode
	date   hijri.Date
	dates  []hijri.Date
	rng    hijri.Range
	ranges []hijri.Range
}

func (s *Selection) Mode() Mode {
	return s.mode
}

// IsEmpty reports whether no selection of any kind is held.
func (s *Selection) IsEmpty() bool {
	return s.date.IsZero() && len(s.dates) == 0 && s.rng.IsZero() && len(s.ranges) == 0
}

// Date returns the single selection; zero unless the mode is single.
func (s *Selection) Date() hijri.Date {
	return s.date
}

// Dates returns a copy of the multiple selection; nil unless the mode is
// multiple.
func (s *Selection) Dates() []hijri.Date {
	if len(s.dates) == 0 {
		return nil
	}
	out := make([]hijri.Date, len(s.dates))
	copy(out, s.dates)
	return out
}

// Range returns the range selection; zero unless the mode is range.
func (s *Selection) Range() hijri.Range {
	return s.rng
}

// Ranges returns a copy of the multi-range selection; nil unless the mode
// is multiRange.
func (s *Selection) Ranges() []hijri.Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := make([]hijri.Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Includes reports whether d is part of the selection under any mode.
// Renderers use this to highlight cells.
func (s *Selection) Includes(d hijri.Date) bool {
	switch s.mode {
	case SingleMode:
		return s.date.SameDay(d)
	case MultipleMode:
		for _, sd := range s.dates {
			if sd.SameDay(d) {
				return true
			}
		}
	case RangeMode:
		return s.rng.Contains(d) || s.rng.Start().SameDay(d) || s.rng.End().SameDay(d)
	case MultiRangeMode:
		for _, r := range s.ranges {
			if r.Contains(d) || r.Start().SameDay(d) || r.End().SameDay(d) {
				return true
			}
		}
	}
	return false
}

// setSingle replaces the selection with one date, clearing other payloads.
// Reports whether anything observable changed; a bare mode flip with
// nothing held on either side commits silently.
func (s *Selection) setSingle(d hijri.Date) bool {
	if s.mode == SingleMode && sameDate(s.date, d) {
		return false
	}
	if d.IsZero() && s.IsEmpty() {
		s.mode = SingleMode
		return false
	}
	*s = Selection{mode: SingleMode, date: d}
	return true
}

// setMultiple replaces the whole set. Comparison is order-insensitive set
// equality, so reordering the same members is a no-op.
func (s *Selection) setMultiple(ds []hijri.Date) bool {
	ds = dedupe(ds)
	if s.mode == MultipleMode && sameDateSet(s.dates, ds) {
		return false
	}
	if len(ds) == 0 && s.IsEmpty() {
		s.mode = MultipleMode
		return false
	}
	*s = Selection{mode: MultipleMode, dates: ds}
	return true
}

// setRange replaces the range; structural equality (including missing
// endpoints) is a no-op.
func (s *Selection) setRange(r hijri.Range) bool {
	if s.mode == RangeMode && s.rng.Equal(r) {
		return false
	}
	if r.IsZero() && s.IsEmpty() {
		s.mode = RangeMode
		return false
	}
	*s = Selection{mode: RangeMode, rng: r}
	return true
}

// setMultiRange replaces the sequence. Ranges are a sequence, not a set,
// so the comparison is order-sensitive.
func (s *Selection) setMultiRange(rs []hijri.Range) bool {
	if s.mode == MultiRangeMode && sameRangeSeq(s.ranges, rs) {
		return false
	}
	if len(rs) == 0 && s.IsEmpty() {
		s.mode = MultiRangeMode
		return false
	}
	cp := make([]hijri.Range, len(rs))
	copy(cp, rs)
	*s = Selection{mode: MultiRangeMode, ranges: cp}
	return true
}

// clear empties the payload while keeping the mode.
func (s *Selection) clear() bool {
	if s.IsEmpty() {
		return false
	}
	*s = Selection{mode: s.mode}
	return true
}

func sameDate(a, b hijri.Date) bool {
	return a.DayNumber() == b.DayNumber()
}

// dedupe keeps the first occurrence of each day, preserving order, and
// drops zero dates.
func dedupe(ds []hijri.Date) []hijri.Date {
	var out []hijri.Date
	seen := make(map[int]bool, len(ds))
	for _, d := range ds {
		if d.IsZero() || seen[d.DayNumber()] {
			continue
		}
		seen[d.DayNumber()] = true
		out = append(out, d)
	}
	return out
}

func sameDateSet(a, b []hijri.Date) bool {
	if len(a) != len(b) {
		return false
	}
	members := make(map[int]bool, len(a))
	for _, d := range a {
		members[d.DayNumber()] = true
	}
	for _, d := range b {
		if !members[d.DayNumber()] {
			return false
		}
	}
	return true
}

func sameRangeSeq(a, b []hijri.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
