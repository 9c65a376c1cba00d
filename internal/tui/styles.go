package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	App          lipgloss.Style
	ListPanel    lipgloss.Style
	PreviewPanel lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style
	ErrorBar  lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
	MutedItem    lipgloss.Style
	Favorite     lipgloss.Style

	// Preview
	PreviewTitle lipgloss.Style
	PreviewLabel lipgloss.Style
	PreviewValue lipgloss.Style

	// Popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style
	PopupOption lipgloss.Style
	PopupActive lipgloss.Style
	PopupHint   lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputText   lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle(),

		ListPanel: lipgloss.NewStyle().
			Padding(0, 1),

		PreviewPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1),

		ErrorBar: lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(ui.ColorSecondary).
			Foreground(ui.ColorTextLight),

		NormalItem: lipgloss.NewStyle(),

		MutedItem: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		Favorite: lipgloss.NewStyle().
			Foreground(ui.ColorFavorite),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		PreviewLabel: lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Width(12),

		PreviewValue: lipgloss.NewStyle().
			Foreground(ui.ColorText),

		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		PopupOption: lipgloss.NewStyle().
			Foreground(ui.ColorText),

		PopupActive: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true),

		PopupHint: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		InputPrompt: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),

		InputText: lipgloss.NewStyle().
			Foreground(ui.ColorTextWhite),
	}
}
