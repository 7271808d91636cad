// Package picker holds the selection-state engine behind the date-picker
// widget: visible-window generation, the tagged selection union, and the
// observable controller that is the sole mutation surface for both the
// renderer and host code.
package picker

import "hijrical/internal/hijri"

// View is the granularity of the visible grid.
type View int

const (
	MonthView View = iota
	YearView
	DecadeView
)

func (v View) String() string {
	switch v {
	case MonthView:
		return "month"
	case YearView:
		return "year"
	case DecadeView:
		return "decade"
	}
	return "unknown"
}

// ParseView resolves a view name; unknown names fall back to month.
func ParseView(s string) View {
	switch s {
	case "year":
		return YearView
	case "decade":
		return DecadeView
	}
	return MonthView
}

// ViewChangeArgs is the payload a renderer emits when the visible window
// changes. Informational only; the engine never consumes it.
type ViewChangeArgs struct {
	VisibleRange hijri.Range
	View         View
}
