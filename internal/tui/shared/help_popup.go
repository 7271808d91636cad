package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hijrical/internal/tui/theme"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpDismissStyle = lipgloss.NewStyle().Foreground(theme.TextMuted)
)

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	line := func(key, desc string) string {
		return "  " + helpKeyStyle.Width(14).Render(key) + helpDescStyle.Render(desc)
	}

	var content strings.Builder
	for i, section := range sections {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(helpSectionStyle.Render(section.Title))
		content.WriteString("\n")
		for _, bind := range section.Binds {
			content.WriteString(line(bind.Key, bind.Desc))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(helpDismissStyle.Render("Press any key to close"))

	box := theme.ModalBox.Render(strings.TrimRight(content.String(), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
