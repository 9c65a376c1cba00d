package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
)

// Color palette for consistent styling across the TUI
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("212") // Pink/magenta for titles and highlights
	ColorSecondary = lipgloss.Color("62")  // Blue for selection and borders

	// Text colors
	ColorText      = lipgloss.Color("252") // Light gray for normal text
	ColorTextLight = lipgloss.Color("230") // Very light for selected items
	ColorTextWhite = lipgloss.Color("255") // White for input text

	// Border and muted colors
	ColorBorder = lipgloss.Color("240") // Gray for borders and footers
	ColorMuted  = lipgloss.Color("241") // Slightly different gray for hints

	// Semantic colors
	ColorSuccess  = lipgloss.Color("46")  // Green for success
	ColorError    = lipgloss.Color("196") // Red for errors
	ColorWarning  = lipgloss.Color("214") // Orange for warnings
	ColorFavorite = lipgloss.Color("220") // Gold for the favorite star
)

// TemperatureColor tints temperature labels
func TemperatureColor(t colorutil.Temperature) lipgloss.Color {
	switch t {
	case colorutil.Warm:
		return lipgloss.Color("209")
	case colorutil.Cool:
		return lipgloss.Color("75")
	default:
		return ColorMuted
	}
}

// Swatch renders label on a block filled with hex, using the readable text color.
// Invalid hex values render the label unstyled.
func Swatch(hex, label string, width int) string {
	if !colorutil.IsValidHex(hex) {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(colorutil.NormalizeHex(hex))).
		Foreground(lipgloss.Color(colorutil.ContrastColor(hex))).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// Chip is a two-cell swatch for list rows
func Chip(hex string) string {
	return Swatch(hex, "  ", 2)
}

// Gradient renders width cells blending through hexes in Lab space.
// Invalid entries are skipped.
func Gradient(hexes []string, width int) string {
	var stops []colorful.Color
	for _, h := range hexes {
		if c, err := colorful.Hex(colorutil.NormalizeHex(h)); err == nil {
			stops = append(stops, c)
		}
	}
	if len(stops) == 0 || width <= 0 {
		return ""
	}
	if len(stops) == 1 {
		return Swatch(stops[0].Hex(), strings.Repeat(" ", width), width)
	}

	var sb strings.Builder
	segments := float64(len(stops) - 1)
	for i := 0; i < width; i++ {
		pos := 0.0
		if width > 1 {
			pos = float64(i) / float64(width-1) * segments
		}
		idx := int(pos)
		if idx >= len(stops)-1 {
			idx = len(stops) - 2
		}
		c := stops[idx].BlendLab(stops[idx+1], pos-float64(idx)).Clamped()
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return sb.String()
}
