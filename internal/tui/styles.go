// internal/tui/styles.go
//
// Lipgloss styles for tiles, keyboard keys and chrome.
// Colors come from config.Theme via InitStyles.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgame/internal/config"
	"github.com/robalobadob/wordgame/internal/game"
)

var (
	// Tiles
	CorrectTileStyle lipgloss.Style
	PresentTileStyle lipgloss.Style
	AbsentTileStyle  lipgloss.Style
	EmptyTileStyle   lipgloss.Style
	PendingTileStyle lipgloss.Style
	CursorTileStyle  lipgloss.Style

	// Keyboard
	KeyStyle        lipgloss.Style
	PressedKeyStyle lipgloss.Style

	// Chrome
	TitleStyle      lipgloss.Style
	MenuItemStyle   lipgloss.Style
	MenuCursorStyle lipgloss.Style
	MessageStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.Theme) {
	tile := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Text))

	CorrectTileStyle = tile.Background(lipgloss.Color(theme.Correct))
	PresentTileStyle = tile.Background(lipgloss.Color(theme.WrongPosition))
	AbsentTileStyle = tile.Background(lipgloss.Color(theme.Absent))
	EmptyTileStyle = tile.Background(lipgloss.Color(theme.Empty))
	PendingTileStyle = tile.Background(lipgloss.Color(theme.Empty)).
		Underline(true)
	CursorTileStyle = tile.Background(lipgloss.Color(theme.Empty)).
		Foreground(lipgloss.Color(theme.Accent))

	KeyStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Text))

	PressedKeyStyle = KeyStyle.
		Foreground(lipgloss.Color(theme.Accent)).
		Underline(true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text))

	MenuCursorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	MessageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))
}

// tileStyle maps a verdict to its tile style.
func tileStyle(v game.Verdict) lipgloss.Style {
	switch v {
	case game.Correct:
		return CorrectTileStyle
	case game.WrongPosition:
		return PresentTileStyle
	case game.Absent:
		return AbsentTileStyle
	default:
		return EmptyTileStyle
	}
}

// keyStyle colors an on-screen key like the tile it last produced.
func keyStyle(v game.Verdict) lipgloss.Style {
	switch v {
	case game.VerdictNone:
		return KeyStyle
	default:
		return tileStyle(v).Bold(false)
	}
}
