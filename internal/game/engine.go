// internal/game/engine.go
//
// State machine for a single game.
// Responsibilities:
//   - Start games with a policy-derived attempt budget and a picked target.
//   - Apply letter edits to the guess buffer.
//   - Score submissions with Evaluate and track playing → won/lost.
//   - Hold the cooperative reveal lock presentation layers use while animating.
//
// A State is owned by exactly one presentation adapter and is not safe for
// concurrent use.
package game

import (
	"slices"
	"strings"
)

// WordPicker supplies target words. words.Picker is the production implementation.
type WordPicker interface {
	Pick(wordLength int) (string, error)
}

// State holds one game. The zero value is not usable; construct with New.
type State struct {
	picker WordPicker

	cfg       Config
	target    string
	attempt   int
	guess     []byte
	status    Status
	revealing bool
	history   []Attempt
	keyboard  KeyboardStatus
}

// New constructs a game in the NotStarted state.
func New(picker WordPicker) *State {
	return &State{picker: picker, keyboard: KeyboardStatus{}}
}

// Start begins a new game of the given word length, discarding any game in flight.
func (s *State) Start(wordLength int) error {
	cfg, err := NewConfig(wordLength)
	if err != nil {
		return err
	}
	if s.picker == nil {
		return noCandidates(wordLength, nil)
	}
	word, err := s.picker.Pick(wordLength)
	if err != nil {
		return noCandidates(wordLength, err)
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != wordLength || !isUpperAlpha(word) {
		return noCandidates(wordLength, nil)
	}

	s.Reset()
	s.cfg = cfg
	s.target = word
	s.guess = make([]byte, 0, wordLength)
	s.status = InProgress
	return nil
}

// Reset returns to NotStarted and clears every field.
func (s *State) Reset() {
	s.cfg = Config{}
	s.target = ""
	s.attempt = 0
	s.guess = nil
	s.status = NotStarted
	s.revealing = false
	s.history = nil
	s.keyboard = KeyboardStatus{}
}

// acceptsInput reports whether edits and submits may mutate state.
func (s *State) acceptsInput() bool {
	return s.status == InProgress && !s.revealing
}

// AppendLetter adds a letter to the guess buffer.
// Non-letters, a full buffer, a finished game and a held reveal lock are ignored.
func (s *State) AppendLetter(ch rune) Edit {
	if !s.acceptsInput() || len(s.guess) >= s.cfg.WordLength {
		return s.edit(false)
	}
	switch {
	case ch >= 'a' && ch <= 'z':
		ch -= 'a' - 'A'
	case ch >= 'A' && ch <= 'Z':
	default:
		return s.edit(false)
	}
	s.guess = append(s.guess, byte(ch))
	return s.edit(true)
}

// RemoveLetter drops the last letter of the guess buffer.
func (s *State) RemoveLetter() Edit {
	if !s.acceptsInput() || len(s.guess) == 0 {
		return s.edit(false)
	}
	s.guess = s.guess[:len(s.guess)-1]
	return s.edit(true)
}

func (s *State) edit(changed bool) Edit {
	return Edit{Changed: changed, Guess: string(s.guess), Cursor: len(s.guess)}
}

// Submit scores the current guess.
//
// State transitions:
//   - exact match → Won.
//   - mismatch on the last attempt → Lost.
//   - otherwise the attempt index advances and the buffer is cleared.
//
// An under-length guess is Rejected without touching state.
func (s *State) Submit() Result {
	if !s.acceptsInput() {
		return Result{Outcome: Ignored, Attempt: s.attempt, Status: s.status}
	}
	if len(s.guess) != s.cfg.WordLength {
		return Result{
			Outcome: Rejected,
			Reason:  ReasonIncompleteGuess,
			Shake:   true,
			Guess:   string(s.guess),
			Attempt: s.attempt,
			Status:  s.status,
		}
	}

	guess := string(s.guess)
	verdicts := Evaluate(guess, s.target)
	s.history = append(s.history, Attempt{Guess: guess, Verdicts: slices.Clone(verdicts)})
	s.keyboard.Record(guess, verdicts)

	used := s.attempt
	switch {
	case guess == s.target:
		s.status = Won
	case s.attempt == s.cfg.MaxAttempts-1:
		s.status = Lost
	default:
		s.attempt++
		s.guess = s.guess[:0]
	}

	res := Result{
		Outcome:  Submitted,
		Guess:    guess,
		Verdicts: verdicts,
		Attempt:  used,
		Status:   s.status,
	}
	if s.status.Terminal() {
		res.Target = s.target
	}
	return res
}

// BeginReveal takes the animation lock. It returns false if the lock is
// already held or no game is in progress.
func (s *State) BeginReveal() bool {
	if s.revealing || s.status == NotStarted {
		return false
	}
	s.revealing = true
	return true
}

// EndReveal releases the animation lock.
func (s *State) EndReveal() { s.revealing = false }

// Revealing reports whether the animation lock is held.
func (s *State) Revealing() bool { return s.revealing }

// Status is the current lifecycle state.
func (s *State) Status() Status { return s.status }

// Config is the word length and attempt budget of the current game.
func (s *State) Config() Config { return s.cfg }

// Attempt is the zero-based index of the row being typed.
func (s *State) Attempt() int { return s.attempt }

// Guess is the in-progress guess buffer.
func (s *State) Guess() string { return string(s.guess) }

// Cursor is the position the next letter goes to.
func (s *State) Cursor() int { return len(s.guess) }

// Remaining is the number of submissions still allowed, including the current one.
func (s *State) Remaining() int {
	if s.status != InProgress {
		return 0
	}
	return s.cfg.MaxAttempts - s.attempt
}

// Target reveals the word once the game is over.
func (s *State) Target() string {
	if !s.status.Terminal() {
		return ""
	}
	return s.target
}

// History returns a deep copy of the submitted attempts.
func (s *State) History() []Attempt {
	out := make([]Attempt, len(s.history))
	for i, a := range s.history {
		out[i] = Attempt{Guess: a.Guess, Verdicts: slices.Clone(a.Verdicts)}
	}
	return out
}

// Keyboard returns a copy of the cumulative keyboard status.
func (s *State) Keyboard() KeyboardStatus { return s.keyboard.Clone() }

// Snapshot is a read-only view of a game for rendering and transport.
type Snapshot struct {
	Config    Config             `json:"config"`
	Status    Status             `json:"status"`
	Attempt   int                `json:"attempt"`
	Guess     string             `json:"guess"`
	Cursor    int                `json:"cursor"`
	Revealing bool               `json:"revealing"`
	History   []Attempt          `json:"history"`
	Keyboard  map[string]Verdict `json:"keyboard"`
	Target    string             `json:"target,omitempty"`
}

// Snapshot copies the presentable parts of the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Config:    s.cfg,
		Status:    s.status,
		Attempt:   s.attempt,
		Guess:     s.Guess(),
		Cursor:    s.Cursor(),
		Revealing: s.revealing,
		History:   s.History(),
		Keyboard:  s.keyboard.Strings(),
		Target:    s.Target(),
	}
}

// isUpperAlpha checks that a string consists only of A–Z.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
