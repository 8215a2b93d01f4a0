package views

import (
	"fmt"
	"strings"

	"rangepick/internal/domain"
)

// PresetRenderer handles the predefined range list
type PresetRenderer struct {
	styles *Styles
}

// NewPresetRenderer creates a new preset renderer
func NewPresetRenderer(styles *Styles) *PresetRenderer {
	return &PresetRenderer{styles: styles}
}

// Render lists presets with their number shortcut and dates. The highlight
// is shown only while the list has focus.
func (pr *PresetRenderer) Render(state ViewState) string {
	labelWidth := 0
	for _, p := range state.Presets {
		labelWidth = max(labelWidth, len(p.Label))
	}

	lines := []string{pr.styles.MonthTitle.Render("Presets")}
	for i, p := range state.Presets {
		lines = append(lines, pr.renderItem(i, p, labelWidth, state))
	}
	return strings.Join(lines, "\n")
}

func (pr *PresetRenderer) renderItem(i int, p domain.PredefinedRange, labelWidth int, state ViewState) string {
	shortcut := " "
	if i < 9 {
		shortcut = fmt.Sprintf("%d", i+1)
	}
	marker := "  "
	style := pr.styles.PresetItem
	switch {
	case state.PresetMode && i == state.PresetIndex:
		marker = "▸ "
		style = pr.styles.PresetCursor
	case p.Label == state.ActivePreset:
		marker = "✓ "
		style = pr.styles.PresetActive
	}

	label := fmt.Sprintf("%s%s %-*s", marker, shortcut, labelWidth, p.Label)
	dates := pr.styles.Dim.Render(fmt.Sprintf(" %s → %s", p.Start, p.End))
	return style.Render(label) + dates
}
