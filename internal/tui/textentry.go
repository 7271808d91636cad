package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hijrical/internal/hijri"
)

// EntryModel is the text date-entry mode: an absolute Hijri date, a
// day offset, or a fuzzy month name with day and year.
type EntryModel struct {
	textInput textinput.Model
	errMsg    string
	width     int
	height    int
}

func textEntryBlink() tea.Cmd {
	return textinput.Blink
}

func NewEntryModel(current hijri.Date) EntryModel {
	ti := textinput.New()
	ti.Placeholder = "1446-09-01, +5, 27 ram 1446, today"
	ti.Focus()
	ti.CharLimit = 30
	ti.Width = 34
	if !current.IsZero() {
		ti.SetValue(current.String())
	}
	return EntryModel{textInput: ti}
}

func (m *EntryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update consumes key presses. On enter it returns the parsed date and
// done=true; on a parse failure it stays active with an error message.
func (m EntryModel) Update(msg tea.KeyMsg) (EntryModel, hijri.Date, bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		parsed, err := ParseDateInput(m.textInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, hijri.Date{}, false, nil
		}
		return m, parsed, true, nil
	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		m.errMsg = ""
		return m, hijri.Date{}, false, cmd
	}
}

// ParseDateInput resolves user text into a Hijri date. Accepted forms:
// "+5"/"-3" (days from today), "today", "YYYY-MM-DD", "MM-DD" (current
// year), and "<day> <month name> [year]" with fuzzy month matching.
func ParseDateInput(input string) (hijri.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return hijri.Date{}, fmt.Errorf("empty date")
	}

	today := hijri.Today()

	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		days, err := strconv.Atoi(input)
		if err != nil {
			return hijri.Date{}, fmt.Errorf("invalid day offset %q", input)
		}
		return today.AddDays(days), nil
	}

	if strings.EqualFold(input, "today") {
		return today, nil
	}
	if strings.EqualFold(input, "tomorrow") {
		return today.AddDays(1), nil
	}

	// Numeric forms: 1446-09-27 or 09-27 in the current year.
	if parts := strings.Split(input, "-"); len(parts) == 2 || len(parts) == 3 {
		nums := make([]int, 0, 3)
		ok := true
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				ok = false
				break
			}
			nums = append(nums, n)
		}
		if ok {
			if len(nums) == 3 {
				return hijri.New(nums[0], nums[1], nums[2])
			}
			return hijri.New(today.Year(), nums[0], nums[1])
		}
	}

	// "<day> <month name> [year]", e.g. "27 ram" or "27 Ramadan 1446".
	fields := strings.Fields(input)
	if len(fields) >= 2 {
		day, err := strconv.Atoi(fields[0])
		if err != nil {
			return hijri.Date{}, fmt.Errorf("invalid date %q", input)
		}
		year := today.Year()
		nameEnd := len(fields)
		if len(fields) >= 3 {
			if y, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
				year = y
				nameEnd = len(fields) - 1
			}
		}
		month, err := hijri.ParseMonth(strings.Join(fields[1:nameEnd], " "))
		if err != nil {
			return hijri.Date{}, err
		}
		return hijri.New(year, month, day)
	}

	return hijri.Date{}, fmt.Errorf("invalid date %q", input)
}

func (m EntryModel) View() string {
	var s strings.Builder

	s.WriteString(entryTitleStyle.Render("Go to date"))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	if m.errMsg != "" {
		s.WriteString(entryErrorStyle.Render(m.errMsg))
		s.WriteString("\n\n")
	}

	s.WriteString(HelpStyle.Render("enter: go • esc: back to calendar"))
	s.WriteString("\n\n")
	s.WriteString(entryExamplesStyle.Render("Examples: 1446-09-27, 09-27, +5, 27 ram 1446, today"))

	box := pickerBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
