// Package events loads special-date and blackout-date declarations from
// markdown files with YAML frontmatter. Each file declares one date; the
// title comes from the frontmatter or the first H1 of the body.
package events

import (
	"hijrical/internal/hijri"
)

// Event is one dated card.
type Event struct {
	Title    string
	Date     hijri.Date
	Blackout bool // date disabled for selection
	FilePath string
}

// BlackoutPredicate builds the controller's blackout function from the
// scanned events.
func BlackoutPredicate(events []Event) func(hijri.Date) bool {
	blocked := make(map[int]bool)
	for _, e := range events {
		if e.Blackout && !e.Date.IsZero() {
			blocked[e.Date.DayNumber()] = true
		}
	}
	if len(blocked) == 0 {
		return nil
	}
	return func(d hijri.Date) bool {
		return blocked[d.DayNumber()]
	}
}

// SpecialDates returns the non-blackout event dates keyed by day number,
// for renderer highlighting.
func SpecialDates(events []Event) map[int]Event {
	out := make(map[int]Event)
	for _, e := range events {
		if !e.Blackout && !e.Date.IsZero() {
			out[e.Date.DayNumber()] = e
		}
	}
	return out
}
