package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	MonthTitle     lipgloss.Style
	WeekdayHeader  lipgloss.Style
	WeekendHeader  lipgloss.Style
	Day            lipgloss.Style
	Weekend        lipgloss.Style
	Today          lipgloss.Style
	Focus          lipgloss.Style
	RangeEdge      lipgloss.Style
	InRange        lipgloss.Style
	InRangeWeekend lipgloss.Style
	Box            lipgloss.Style
	ActiveBox      lipgloss.Style
	PresetItem     lipgloss.Style
	PresetCursor   lipgloss.Style
	PresetActive   lipgloss.Style
	Dim            lipgloss.Style
	Summary        lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		MonthTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		WeekdayHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		WeekendHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Day:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Weekend:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray, not selectable
		Today:          lipgloss.NewStyle().Underline(true),
		Focus:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")), // yellow
		RangeEdge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")),
		InRange:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		InRangeWeekend: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("238")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ActiveBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		PresetItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PresetCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PresetActive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Dim:          lipgloss.NewStyle().Faint(true),
		Summary:      lipgloss.NewStyle().MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
