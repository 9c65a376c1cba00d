package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	Filter      key.Binding
	Folder      key.Binding
	Format      key.Binding
	Copy        key.Binding
	Favorite    key.Binding
	New         key.Binding
	Delete      key.Binding
	AddToFolder key.Binding
	Converter   key.Binding
	Similar     key.Binding
	Share       key.Binding
	Edit        key.Binding
	Refresh     key.Binding
	Quit        key.Binding
	Enter       key.Binding
	Escape      key.Binding
	Yes         key.Binding
	No          key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Folder: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "folder"),
		),
		Format: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "format"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/↵", "copy"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		AddToFolder: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to folder"),
		),
		Converter: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "convert"),
		),
		Similar: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "similar"),
		),
		Share: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "share folder"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit notes"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Folder, k.Format, k.Copy, k.Favorite, k.New, k.Delete, k.AddToFolder, k.Converter, k.Similar, k.Share, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Filter, k.Folder},
		{k.Format, k.Copy, k.Favorite, k.New, k.Delete},
		{k.AddToFolder, k.Converter, k.Similar, k.Share, k.Edit},
		{k.Refresh, k.Quit},
	}
}
