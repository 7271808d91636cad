package picker

import "hijrical/internal/hijri"

// DefaultWeeksInView is the standard six-week month grid.
const DefaultWeeksInView = 6

// DecadeCells is the fixed decade grid size: one leading year, the ten
// decade years, one trailing year.
const DecadeCells = 12

// VisibleDates produces the ordered cells for one view anchored at
// display. The result is pure and deterministic: same inputs, same slice.
//
// Month: weeksInView*7 consecutive days starting at the most recent date
// whose weekday equals firstDayOfWeek, on or before the 1st of display's
// month. Year: the first day of each of the 12 months of display's year.
// Decade: the first day of each year in the 12-year decade window. Year
// and decade cells outside the supported era come back as zero Dates;
// month cells are plain day arithmetic and may precede the era.
func VisibleDates(view View, display hijri.Date, firstDayOfWeek, weeksInView int) []hijri.Date {
	if display.IsZero() {
		return nil
	}
	if firstDayOfWeek < 1 || firstDayOfWeek > 7 {
		firstDayOfWeek = 7
	}
	if weeksInView < 1 {
		weeksInView = DefaultWeeksInView
	}

	switch view {
	case YearView:
		return yearCells(display)
	case DecadeView:
		return decadeCells(display)
	}
	return monthCells(display, firstDayOfWeek, weeksInView)
}

func monthCells(display hijri.Date, firstDayOfWeek, weeksInView int) []hijri.Date {
	first := display.AddDays(1 - display.Day())
	for first.Weekday() != firstDayOfWeek {
		first = first.AddDays(-1)
	}
	cells := make([]hijri.Date, weeksInView*7)
	for i := range cells {
		cells[i] = first.AddDays(i)
	}
	return cells
}

func yearCells(display hijri.Date) []hijri.Date {
	year := display.Year()
	conv := hijri.Default()
	cells := make([]hijri.Date, conv.MonthsInYear(year))
	for m := 1; m <= len(cells); m++ {
		d, err := hijri.New(year, m, 1)
		if err != nil {
			d = hijri.Date{}
		}
		cells[m-1] = d
	}
	return cells
}

// decadeCells anchors the window so display's year sits inside the decade
// [Y-Y%10, Y-Y%10+9], with one context year on each side. A year exactly
// on a decade start therefore yields the window [year-1, year+10].
func decadeCells(display hijri.Date) []hijri.Date {
	year := display.Year()
	start := year - year%10 - 1
	cells := make([]hijri.Date, DecadeCells)
	for i := range cells {
		d, err := hijri.New(start+i, 1, 1)
		if err != nil {
			d = hijri.Date{}
		}
		cells[i] = d
	}
	return cells
}

// InFocalMonth reports whether cell belongs to display's month; leading
// and trailing cells in a month grid fail this and are styled muted.
func InFocalMonth(cell, display hijri.Date) bool {
	if cell.IsZero() || display.IsZero() {
		return false
	}
	return cell.Year() == display.Year() && cell.Month() == display.Month()
}

// InFocalYear reports whether cell belongs to display's year.
func InFocalYear(cell, display hijri.Date) bool {
	if cell.IsZero() || display.IsZero() {
		return false
	}
	return cell.Year() == display.Year()
}

// InFocalDecade reports whether cell's year is inside display's decade
// proper, excluding the leading and trailing context years.
func InFocalDecade(cell, display hijri.Date) bool {
	if cell.IsZero() || display.IsZero() {
		return false
	}
	start := display.Year() - display.Year()%10
	return cell.Year() >= start && cell.Year() < start+10
}

// VisibleRange returns the span of the non-zero cells.
func VisibleRange(cells []hijri.Date) hijri.Range {
	var first, last hijri.Date
	for _, c := range cells {
		if c.IsZero() {
			continue
		}
		if first.IsZero() {
			first = c
		}
		last = c
	}
	return hijri.NewRange(first, last)
}
