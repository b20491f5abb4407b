// internal/game/keyboard.go
//
// Cumulative per-letter status for the on-screen keyboard.

package game

import "sort"

// KeyboardStatus is the best verdict seen so far for each letter.
// It only ever upgrades: Correct > WrongPosition > Absent.
type KeyboardStatus map[rune]Verdict

// Record folds one submission into the map.
func (ks KeyboardStatus) Record(guess string, verdicts []Verdict) {
	for i, r := range guess {
		if i >= len(verdicts) {
			break
		}
		if verdicts[i] > ks[r] {
			ks[r] = verdicts[i]
		}
	}
}

// Get returns the recorded verdict for a letter, or VerdictNone.
func (ks KeyboardStatus) Get(r rune) Verdict { return ks[r] }

// Keys returns the recorded letters in alphabetical order.
func (ks KeyboardStatus) Keys() []rune {
	out := make([]rune, 0, len(ks))
	for r := range ks {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (ks KeyboardStatus) Clone() KeyboardStatus {
	out := make(KeyboardStatus, len(ks))
	for r, v := range ks {
		out[r] = v
	}
	return out
}

// Strings returns the map keyed by single-letter strings, for JSON payloads.
func (ks KeyboardStatus) Strings() map[string]Verdict {
	out := make(map[string]Verdict, len(ks))
	for r, v := range ks {
		out[string(r)] = v
	}
	return out
}

// FoldKeyboard derives the keyboard status from a full game history.
func FoldKeyboard(history []Attempt) KeyboardStatus {
	ks := KeyboardStatus{}
	for _, a := range history {
		ks.Record(a.Guess, a.Verdicts)
	}
	return ks
}
