package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hijrical/internal/events"
	"hijrical/internal/hijri"
	"hijrical/internal/picker"
)

var weekdayShort = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// PickerModel renders the controller's visible window and translates key
// presses into controller mutations. All picker semantics live in the
// controller; this model only draws and forwards.
type PickerModel struct {
	ctrl        *picker.Controller
	special     map[int]events.Event
	cursor      hijri.Date
	rangeAnchor hijri.Date // pending range start while the user picks an end
	width       int
	height      int
}

func NewPickerModel(ctrl *picker.Controller, special map[int]events.Event) PickerModel {
	return PickerModel{
		ctrl:    ctrl,
		special: special,
		cursor:  ctrl.DisplayDate(),
	}
}

func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m PickerModel) Update(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-m.rowStride())
	case "j", "down":
		m.moveCursor(m.rowStride())
	case "H", "-":
		m.ctrl.Backward()
		m.snapCursorToView()
	case "L", "+", "=":
		m.ctrl.Forward()
		m.snapCursorToView()
	case "v":
		m.zoomOut()
	case "m":
		m.cycleMode()
	case "t":
		m.jumpTo(hijri.Today())
	case "c":
		m.rangeAnchor = hijri.Date{}
		m.ctrl.ClearSelection()
	case "enter", " ":
		m.commit()
	}
	return m, nil
}

// rowStride is the cursor distance of one grid row.
func (m PickerModel) rowStride() int {
	if m.ctrl.View() == picker.MonthView {
		return 7
	}
	return 4 // year and decade grids are 4 columns wide
}

func (m *PickerModel) moveCursor(delta int) {
	switch m.ctrl.View() {
	case picker.MonthView:
		m.trySetCursor(m.cursor.AddDays(delta))
	case picker.YearView:
		y, mo := m.cursor.Year(), m.cursor.Month()
		mo += delta
		for mo > 12 {
			mo -= 12
			y++
		}
		for mo < 1 {
			mo += 12
			y--
		}
		if d, err := hijri.New(y, mo, 1); err == nil {
			m.trySetCursor(d)
		}
	case picker.DecadeView:
		if d, err := hijri.New(m.cursor.Year()+delta, 1, 1); err == nil {
			m.trySetCursor(d)
		}
	}
}

func (m *PickerModel) trySetCursor(d hijri.Date) {
	c := m.ctrl.Constraints()
	if d.Before(c.MinDate) || d.After(c.MaxDate) {
		return
	}
	m.cursor = d
	m.ensureCursorInView()
}

// ensureCursorInView moves the anchor when the cursor walks off the grid.
func (m *PickerModel) ensureCursorInView() {
	display := m.ctrl.DisplayDate()
	switch m.ctrl.View() {
	case picker.MonthView:
		if !picker.InFocalMonth(m.cursor, display) {
			m.ctrl.SetDisplayDate(m.cursor)
		}
	case picker.YearView:
		if !picker.InFocalYear(m.cursor, display) {
			m.ctrl.SetDisplayDate(m.cursor)
		}
	case picker.DecadeView:
		if !picker.InFocalDecade(m.cursor, display) {
			m.ctrl.SetDisplayDate(m.cursor)
		}
	}
}

// snapCursorToView pulls the cursor back onto the grid after navigation.
func (m *PickerModel) snapCursorToView() {
	display := m.ctrl.DisplayDate()
	switch m.ctrl.View() {
	case picker.MonthView:
		if !picker.InFocalMonth(m.cursor, display) {
			m.cursor = display
		}
	case picker.YearView:
		if !picker.InFocalYear(m.cursor, display) {
			m.cursor = display
		}
	case picker.DecadeView:
		if !picker.InFocalDecade(m.cursor, display) {
			m.cursor = display
		}
	}
}

func (m *PickerModel) zoomOut() {
	switch m.ctrl.View() {
	case picker.MonthView:
		m.ctrl.SetView(picker.YearView)
	case picker.YearView:
		m.ctrl.SetView(picker.DecadeView)
	}
}

func (m *PickerModel) cycleMode() {
	m.rangeAnchor = hijri.Date{}
	switch m.ctrl.Mode() {
	case picker.SingleMode:
		m.ctrl.SetSelectedDates(nil)
	case picker.MultipleMode:
		m.ctrl.SetSelectedRange(hijri.Range{})
	case picker.RangeMode:
		m.ctrl.SetSelectedRanges(nil)
	default:
		m.ctrl.SetSelectedDate(hijri.Date{})
	}
}

func (m *PickerModel) jumpTo(d hijri.Date) {
	m.trySetCursor(d)
	m.ctrl.SetDisplayDate(m.cursor)
}

// commit handles enter: drill in on coarse views, select on the month view.
func (m *PickerModel) commit() {
	switch m.ctrl.View() {
	case picker.DecadeView:
		m.ctrl.SetDisplayDate(m.cursor)
		m.ctrl.SetView(picker.YearView)
	case picker.YearView:
		m.ctrl.SetDisplayDate(m.cursor)
		m.ctrl.SetView(picker.MonthView)
	case picker.MonthView:
		m.selectCursor()
	}
}

func (m *PickerModel) selectCursor() {
	switch m.ctrl.Mode() {
	case picker.SingleMode:
		m.ctrl.SetSelectedDate(m.cursor)
	case picker.MultipleMode:
		dates := m.ctrl.SelectedDates()
		toggled := dates[:0:0]
		found := false
		for _, d := range dates {
			if d.SameDay(m.cursor) {
				found = true
				continue
			}
			toggled = append(toggled, d)
		}
		if !found {
			toggled = append(toggled, m.cursor)
		}
		m.ctrl.SetSelectedDates(toggled)
	case picker.RangeMode:
		if m.rangeAnchor.IsZero() {
			m.rangeAnchor = m.cursor
			m.ctrl.SetSelectedRange(hijri.NewRange(m.cursor, hijri.Date{}))
			return
		}
		m.ctrl.SetSelectedRange(hijri.NewRange(m.rangeAnchor, m.cursor))
		m.rangeAnchor = hijri.Date{}
	case picker.MultiRangeMode:
		if m.rangeAnchor.IsZero() {
			m.rangeAnchor = m.cursor
			return
		}
		ranges := append(m.ctrl.SelectedRanges(), hijri.NewRange(m.rangeAnchor, m.cursor))
		m.ctrl.SetSelectedRanges(ranges)
		m.rangeAnchor = hijri.Date{}
	}
}

func (m PickerModel) View() string {
	var content string
	switch m.ctrl.View() {
	case picker.YearView:
		content = m.viewYearGrid()
	case picker.DecadeView:
		content = m.viewDecadeGrid()
	default:
		content = m.viewMonthGrid()
	}
	box := pickerBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m PickerModel) viewMonthGrid() string {
	var s strings.Builder
	display := m.ctrl.DisplayDate()
	c := m.ctrl.Constraints()

	header := fmt.Sprintf("%s %d AH", hijri.MonthName(display.Month()), display.Year())
	s.WriteString(headerStyle.Width(7 * 3).Render(header))
	s.WriteString("\n\n")

	for i := 0; i < 7; i++ {
		w := (c.FirstDayOfWeek-1+i)%7 + 1
		s.WriteString(dayHeaderStyle.Render(weekdayShort[w-1]))
	}
	s.WriteString("\n")

	cells := m.ctrl.VisibleDates()
	for i, cell := range cells {
		label := " "
		if day := cell.Day(); day != 0 {
			label = fmt.Sprintf("%d", day)
		}
		s.WriteString(m.styleMonthCell(cell, display).Render(label))
		if (i+1)%7 == 0 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

// styleMonthCell picks the style by priority: cursor, selection, blackout,
// today, special, outside month, weekend.
func (m PickerModel) styleMonthCell(cell, display hijri.Date) lipgloss.Style {
	c := m.ctrl.Constraints()
	sel := m.ctrl.Selection()

	switch {
	case cell.SameDay(m.cursor):
		return cursorCellStyle
	case !m.rangeAnchor.IsZero() && cell.SameDay(m.rangeAnchor):
		return selectedCellStyle
	case sel.Includes(cell):
		if m.ctrl.Mode() == picker.RangeMode || m.ctrl.Mode() == picker.MultiRangeMode {
			return inRangeCellStyle
		}
		return selectedCellStyle
	case c.Blackout != nil && c.Blackout(cell):
		return blackoutCellStyle
	case cell.SameDay(hijri.Today()):
		return todayCellStyle
	case m.special[cell.DayNumber()].Title != "":
		return specialCellStyle
	case !picker.InFocalMonth(cell, display):
		return outsideCellStyle
	case c.IsWeekend(cell):
		return weekendCellStyle
	}
	return dayCellStyle
}

func (m PickerModel) viewYearGrid() string {
	var s strings.Builder
	display := m.ctrl.DisplayDate()

	s.WriteString(headerStyle.Width(4 * 17).Render(fmt.Sprintf("%d AH", display.Year())))
	s.WriteString("\n\n")

	for i, cell := range m.ctrl.VisibleDates() {
		label := hijri.MonthName(cell.Month())
		style := wideCellStyle
		switch {
		case cell.SameDay(wideCursorTarget(m.cursor, picker.YearView)):
			style = wideCursorStyle
		case m.monthHasSelection(cell):
			style = wideSelectedStyle
		}
		s.WriteString(style.Render(label))
		if (i+1)%4 == 0 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m PickerModel) viewDecadeGrid() string {
	var s strings.Builder
	display := m.ctrl.DisplayDate()
	start := display.Year() - display.Year()%10

	s.WriteString(headerStyle.Width(4 * 17).Render(fmt.Sprintf("%d – %d AH", start, start+9)))
	s.WriteString("\n\n")

	for i, cell := range m.ctrl.VisibleDates() {
		label := " "
		if !cell.IsZero() {
			label = fmt.Sprintf("%d", cell.Year())
		}
		style := wideCellStyle
		switch {
		case cell.SameDay(wideCursorTarget(m.cursor, picker.DecadeView)):
			style = wideCursorStyle
		case !picker.InFocalDecade(cell, display):
			style = wideOutsideStyle
		}
		s.WriteString(style.Render(label))
		if (i+1)%4 == 0 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

// wideCursorTarget maps the cursor onto the representative cell of its
// month or year so grid comparison is a SameDay check.
func wideCursorTarget(cursor hijri.Date, v picker.View) hijri.Date {
	var d hijri.Date
	var err error
	if v == picker.YearView {
		d, err = hijri.New(cursor.Year(), cursor.Month(), 1)
	} else {
		d, err = hijri.New(cursor.Year(), 1, 1)
	}
	if err != nil {
		return hijri.Date{}
	}
	return d
}

// monthHasSelection reports whether the single-date selection sits inside
// cell's month.
func (m PickerModel) monthHasSelection(cell hijri.Date) bool {
	d := m.ctrl.SelectedDate()
	if d.IsZero() || cell.IsZero() {
		return false
	}
	return d.Year() == cell.Year() && d.Month() == cell.Month()
}
