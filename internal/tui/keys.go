// internal/tui/keys.go
//
// Key bindings shared by the menu and the board, plus the help line maps.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the TUI reacts to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Submit  key.Binding
	Delete  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// Keys is the default binding set.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
	Restart: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// menuKeys and boardKeys adapt Keys to help.KeyMap for each screen.
type menuKeys struct{ KeyMap }
type boardKeys struct{ KeyMap }

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Restart, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
