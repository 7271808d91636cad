package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hijrical/internal/events"
	"hijrical/internal/logs"
	"hijrical/internal/picker"
	"hijrical/internal/tui/shared"
	"hijrical/internal/tui/theme"
)

type inputMode int

const (
	calendarInput inputMode = iota
	textEntryInput
)

// AppModel is the root model: the picker grid, the text-entry overlay, the
// help popup and the status bar.
type AppModel struct {
	ctrl       *picker.Controller
	pickerView PickerModel
	entryView  EntryModel
	input      inputMode
	showHelp   bool
	lastChange string // most recent property notification
	width      int
	height     int
	ready      bool
}

// NewAppModel wires the renderer to the controller and subscribes to its
// change notifications for the status line.
func NewAppModel(ctrl *picker.Controller, special map[int]events.Event) *AppModel {
	m := &AppModel{
		ctrl:       ctrl,
		pickerView: NewPickerModel(ctrl, special),
	}
	ctrl.AddListener(func(property string) {
		m.lastChange = property
		logs.Logger.Printf("property changed: %s", property)
	})
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 2 // status bar
		m.pickerView.SetSize(msg.Width, contentHeight)
		m.entryView.SetSize(msg.Width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.input == calendarInput {
				m.ctrl.Close()
				return m, tea.Quit
			}
		case "?":
			if m.input == calendarInput {
				m.showHelp = true
				return m, nil
			}
		}

		if m.input == textEntryInput {
			if msg.String() == "esc" {
				m.input = calendarInput
				return m, nil
			}
			entry, date, done, cmd := m.entryView.Update(msg)
			m.entryView = entry
			if done {
				m.input = calendarInput
				m.pickerView.jumpTo(date)
			}
			return m, cmd
		}

		if msg.String() == "i" {
			m.entryView = NewEntryModel(m.ctrl.SelectedDate())
			m.entryView.SetSize(m.width, m.height-2)
			m.input = textEntryInput
			return m, textEntryBlink()
		}

		var cmd tea.Cmd
		m.pickerView, cmd = m.pickerView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *AppModel) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	var content string
	if m.input == textEntryInput {
		content = m.entryView.View()
	} else {
		content = m.pickerView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.statusBar())
}

func (m *AppModel) statusBar() string {
	cursor := m.pickerView.cursor
	parts := []string{
		statusKeyStyle.Render(m.ctrl.View().String()),
		statusKeyStyle.Render(m.ctrl.Mode().String()),
		statusTextStyle.Render(cursor.Format()),
		statusTextStyle.Render(cursor.Gregorian().Format("Mon 2 Jan 2006")),
		statusTextStyle.Render(m.selectionSummary()),
	}
	if m.lastChange != "" {
		parts = append(parts, statusTextStyle.Render("Δ "+m.lastChange))
	}
	bar := strings.Join(parts, statusTextStyle.Render(" • "))
	hint := HelpStyle.Render("?: help  q: quit")
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBar.Width(m.width).Render(bar + strings.Repeat(" ", gap) + hint)
}

func (m *AppModel) selectionSummary() string {
	sel := m.ctrl.Selection()
	switch sel.Mode() {
	case picker.SingleMode:
		if d := sel.Date(); !d.IsZero() {
			return d.String()
		}
	case picker.MultipleMode:
		if n := len(sel.Dates()); n > 0 {
			return fmt.Sprintf("%d dates", n)
		}
	case picker.RangeMode:
		if r := sel.Range(); !r.IsZero() {
			return r.String()
		}
	case picker.MultiRangeMode:
		if n := len(sel.Ranges()); n > 0 {
			return fmt.Sprintf("%d ranges", n)
		}
	}
	return "no selection"
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Navigate",
			Binds: []shared.HelpBind{
				{Key: "hjkl/arrows", Desc: "move cursor"},
				{Key: "H/L or -/+", Desc: "previous/next month, year or decade"},
				{Key: "v", Desc: "zoom out (month → year → decade)"},
				{Key: "enter", Desc: "drill in / select"},
				{Key: "t", Desc: "jump to today"},
				{Key: "i", Desc: "go to date (text entry)"},
			},
		},
		{
			Title: "Select",
			Binds: []shared.HelpBind{
				{Key: "enter/space", Desc: "select date or range endpoint"},
				{Key: "m", Desc: "cycle selection mode"},
				{Key: "c", Desc: "clear selection"},
			},
		},
		{
			Title: "General",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "toggle this help"},
				{Key: "q", Desc: "quit"},
			},
		},
	}
}
