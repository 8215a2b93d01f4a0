package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpSection is a titled group of bindings in the full help page
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// RenderHelpContent renders the full help page shown in the pager
func RenderHelpContent(sections []HelpSection) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("rangepick Help"))
	content.WriteString("\n")

	for _, s := range sections {
		content.WriteString(sectionStyle.Render(s.Title))
		content.WriteString("\n")
		for _, b := range s.Bindings {
			h := b.Help()
			padded := fmt.Sprintf("%-*s", keyWidth, h.Key)
			content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(padded), descStyle.Render(h.Desc)))
		}
		content.WriteString("\n")
	}

	note := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	content.WriteString(note.Render("  Weekend days cannot start or end a range. They are listed when inside one."))
	content.WriteString("\n")

	return content.String()
}

// SectionsFromHelp turns a help.KeyMap's full help columns into titled sections
func SectionsFromHelp(km help.KeyMap, titles ...string) []HelpSection {
	var sections []HelpSection
	for i, group := range km.FullHelp() {
		title := fmt.Sprintf("Keys %d", i+1)
		if i < len(titles) {
			title = titles[i]
		}
		sections = append(sections, HelpSection{Title: title, Bindings: group})
	}
	return sections
}
