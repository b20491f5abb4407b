// internal/tui/model.go
//
// Terminal front end for one game.
// Responsibilities:
//   - Word length menu, then the board, keyboard, message line and help line.
//   - Forward letters, backspace and enter to the game.
//   - Animate each scored row one tile per tick while holding the game's
//     reveal lock, so input typed mid-animation is dropped by the game itself.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgame/internal/config"
	"github.com/robalobadob/wordgame/internal/game"
)

const messageTTL = 1500 * time.Millisecond

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

type screen int

const (
	menuScreen screen = iota
	boardScreen
)

// Model is the bubbletea model for one game: length menu, then board.
type Model struct {
	game       *game.State
	revealStep time.Duration

	screen     screen
	lengths    []int
	menuCursor int

	// reveal animation
	revealSeq int
	revealRow int // history index being uncovered, -1 when idle
	revealed  int // tiles of revealRow already shown
	pending   game.Result

	message    string
	messageErr bool
	messageSeq int
	shake      bool
	lastKey    rune

	help   help.Model
	width  int
	height int
}

// New builds a Model around g, starting on the length menu with the
// configured default length selected.
func New(g *game.State, cfg config.Config) Model {
	InitStyles(cfg.Theme)

	lengths := game.SupportedLengths()
	cursor := 0
	for i, n := range lengths {
		if n == cfg.DefaultLength {
			cursor = i
		}
	}
	return Model{
		game:       g,
		revealStep: cfg.RevealStep,
		screen:     menuScreen,
		lengths:    lengths,
		menuCursor: cursor,
		revealRow:  -1,
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("wordgame")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case revealTickMsg:
		if msg.seq != m.revealSeq || m.revealRow < 0 {
			return m, nil
		}
		m.revealed++
		if m.revealed < m.game.Config().WordLength {
			return m, m.tick()
		}
		return m.finishReveal()

	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
			m.shake = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Quit) {
		return m, tea.Quit
	}
	switch m.screen {
	case menuScreen:
		return m.handleMenuKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, Keys.Down):
		if m.menuCursor < len(m.lengths)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, Keys.Choose):
		return m.start(m.lengths[m.menuCursor])
	case msg.Type == tea.KeyRunes:
		// digits pick a length directly
		for i, n := range m.lengths {
			if msg.String() == fmt.Sprint(n) {
				m.menuCursor = i
				return m.start(n)
			}
		}
	}
	return m, nil
}

func (m Model) start(length int) (tea.Model, tea.Cmd) {
	if err := m.game.Start(length); err != nil {
		log.Error().Err(err).Int("length", length).Msg("start game")
		return m.flash(err.Error(), true, false)
	}
	log.Info().Int("length", length).Msg("game started")
	m.screen = boardScreen
	m.message = ""
	m.shake = false
	m.lastKey = 0
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Restart):
		m.game.Reset()
		m.revealSeq++
		m.revealRow = -1
		m.screen = menuScreen
		m.message = ""
		m.shake = false
		return m, nil

	case key.Matches(msg, Keys.Submit):
		return m.submit()

	case key.Matches(msg, Keys.Delete):
		m.game.RemoveLetter()
		return m, nil

	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.game.AppendLetter(r).Changed {
				m.lastKey = toUpper(r)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	res := m.game.Submit()
	switch res.Outcome {
	case game.Rejected:
		return m.flash(res.Message(), true, res.Shake)
	case game.Submitted:
		log.Debug().Int("attempt", res.Attempt).Str("status", res.Status.String()).Msg("guess submitted")
		if !m.game.BeginReveal() {
			return m, nil
		}
		m.revealSeq++
		m.revealRow = res.Attempt
		m.revealed = 0
		m.pending = res
		return m, m.tick()
	}
	return m, nil
}

func (m Model) finishReveal() (tea.Model, tea.Cmd) {
	m.game.EndReveal()
	m.revealRow = -1
	res := m.pending
	m.pending = game.Result{}
	if res.Status.Terminal() {
		m.message = res.Message() + "  (ctrl+r to play again)"
		m.messageErr = res.Status == game.Lost
		m.shake = false
		m.messageSeq++
	}
	return m, nil
}

// flash shows a message that clears itself after messageTTL.
func (m Model) flash(text string, isErr, shake bool) (tea.Model, tea.Cmd) {
	m.message = text
	m.messageErr = isErr
	m.shake = shake
	m.messageSeq++
	seq := m.messageSeq
	return m, tea.Tick(messageTTL, func(time.Time) tea.Msg { return clearMessageMsg{seq: seq} })
}

func (m Model) tick() tea.Cmd {
	seq := m.revealSeq
	return tea.Tick(m.revealStep, func(time.Time) tea.Msg { return revealTickMsg{seq: seq} })
}

// ---------------------------------- view -----------------------------------

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("WORD GAME"))
	b.WriteString("\n\n")

	switch m.screen {
	case menuScreen:
		b.WriteString(m.menuView())
		b.WriteString("\n")
		b.WriteString(m.messageView())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(menuKeys{Keys}))
	default:
		b.WriteString(m.boardView())
		b.WriteString("\n")
		b.WriteString(m.keyboardView())
		b.WriteString("\n")
		b.WriteString(m.messageView())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(boardKeys{Keys}))
	}

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) menuView() string {
	var b strings.Builder
	b.WriteString(MenuItemStyle.Render("Choose a word length"))
	b.WriteString("\n\n")
	for i, n := range m.lengths {
		attempts, _ := game.MaxAttempts(n)
		line := fmt.Sprintf("%d letters  (%d guesses)", n, attempts)
		if i == m.menuCursor {
			b.WriteString(MenuCursorStyle.Render("> " + line))
		} else {
			b.WriteString(MenuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) boardView() string {
	cfg := m.game.Config()
	history := m.game.History()
	status := m.game.Status()

	rows := make([]string, 0, cfg.MaxAttempts)
	for i := 0; i < cfg.MaxAttempts; i++ {
		var row string
		switch {
		case i < len(history):
			row = m.scoredRow(i, history[i], status)
		case i == m.game.Attempt() && status == game.InProgress:
			row = m.inputRow(cfg.WordLength)
			if m.shake {
				row = " " + row
			}
		default:
			row = emptyRow(cfg.WordLength)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m Model) scoredRow(i int, a game.Attempt, status game.Status) string {
	tiles := make([]string, len(a.Guess))
	for j := range a.Guess {
		letter := string(a.Guess[j])
		switch {
		case i == m.revealRow && j >= m.revealed:
			tiles[j] = PendingTileStyle.Render(letter)
		case status == game.Lost && i == len(m.game.History())-1 && m.revealRow < 0:
			// the losing row is shown all wrong
			tiles[j] = AbsentTileStyle.Render(letter)
		default:
			tiles[j] = tileStyle(a.Verdicts[j]).Render(letter)
		}
	}
	return strings.Join(tiles, " ")
}

func (m Model) inputRow(n int) string {
	guess := m.game.Guess()
	tiles := make([]string, n)
	for j := 0; j < n; j++ {
		switch {
		case j < len(guess):
			tiles[j] = EmptyTileStyle.Render(string(guess[j]))
		case j == m.game.Cursor():
			tiles[j] = CursorTileStyle.Render("_")
		default:
			tiles[j] = EmptyTileStyle.Render(" ")
		}
	}
	return strings.Join(tiles, " ")
}

func emptyRow(n int) string {
	tiles := make([]string, n)
	for j := range tiles {
		tiles[j] = EmptyTileStyle.Render(" ")
	}
	return strings.Join(tiles, " ")
}

// keyboardView colors keys by everything already uncovered; a row still
// being revealed does not leak into the keyboard early.
func (m Model) keyboardView() string {
	history := m.game.History()
	if m.revealRow >= 0 && m.revealRow < len(history) {
		history = history[:m.revealRow]
	}
	ks := game.FoldKeyboard(history)

	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			st := keyStyle(ks.Get(r))
			if r == m.lastKey && ks.Get(r) == game.VerdictNone {
				st = PressedKeyStyle
			}
			keys = append(keys, st.Render(string(r)))
		}
		lines[i] = strings.Repeat(" ", i) + strings.Join(keys, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) messageView() string {
	if m.message == "" {
		return ""
	}
	if m.messageErr {
		return ErrorStyle.Render(m.message)
	}
	return MessageStyle.Render(m.message)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
