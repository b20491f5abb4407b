// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Verdict: per-letter result of a submitted guess.
//   - Status: lifecycle of a single game.
//   - Config, Attempt, Edit, Result: values handed to presentation adapters.

package game

import "fmt"

// Verdict represents the evaluation result for a single letter in a guess.
// The numeric order is the precedence used by the keyboard aggregator:
// Correct > WrongPosition > Absent > (no verdict).
type Verdict uint8

const (
	VerdictNone Verdict = iota
	Absent
	WrongPosition
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case WrongPosition:
		return "wrong-position"
	case Correct:
		return "correct"
	default:
		return ""
	}
}

// MarshalText renders the verdict as its lowercase name for JSON payloads.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the form produced by MarshalText.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*v = Absent
	case "wrong-position":
		*v = WrongPosition
	case "correct":
		*v = Correct
	case "":
		*v = VerdictNone
	default:
		return fmt.Errorf("game: unknown verdict %q", string(b))
	}
	return nil
}

// Status is the coarse lifecycle state of a game.
type Status uint8

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "not_started"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for _, st := range []Status{NotStarted, InProgress, Won, Lost} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("game: unknown status %q", string(b))
}

// Config is fixed for the lifetime of one game.
type Config struct {
	WordLength  int `json:"wordLength"`
	MaxAttempts int `json:"maxAttempts"`
}

// Attempt is one submitted row of the board.
type Attempt struct {
	Guess    string    `json:"guess"`
	Verdicts []Verdict `json:"verdicts"`
}

// Edit is returned for every letter-change intent.
type Edit struct {
	Changed bool   `json:"changed"`
	Guess   string `json:"guess"`
	Cursor  int    `json:"cursor"`
}

// Outcome classifies what a submit intent did.
type Outcome uint8

const (
	Ignored Outcome = iota
	Rejected
	Submitted
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Submitted:
		return "submitted"
	default:
		return "ignored"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason explains a Rejected outcome.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonIncompleteGuess Reason = "incomplete_guess"
)

// Result is returned for every submit intent.
// Target is only populated once the game is terminal.
type Result struct {
	Outcome  Outcome   `json:"outcome"`
	Reason   Reason    `json:"reason,omitempty"`
	Shake    bool      `json:"shake,omitempty"`
	Guess    string    `json:"guess,omitempty"`
	Verdicts []Verdict `json:"verdicts,omitempty"`
	Attempt  int       `json:"attempt"`
	Status   Status    `json:"status"`
	Target   string    `json:"target,omitempty"`
}

// Message is the transient line a presentation layer shows for a result.
func (r Result) Message() string {
	switch {
	case r.Outcome == Rejected && r.Reason == ReasonIncompleteGuess:
		return "Not enough letters!"
	case r.Outcome != Submitted:
		return ""
	case r.Status == Won:
		return "Congratulations! You won! The word was " + r.Target
	case r.Status == Lost:
		return "Game Over! The word was " + r.Target
	default:
		return ""
	}
}
