// internal/game/policy.go
//
// Attempt budget per supported word length: 3 → 5, 5 → 7, 8 → 9.

package game

import (
	"sort"
)

// attemptPolicy maps a word length to the number of guesses allowed.
var attemptPolicy = map[int]int{
	3: 5,
	5: 7,
	8: 9,
}

// DefaultWordLength is the length preselected when a player starts without choosing.
const DefaultWordLength = 3

// MaxAttempts returns the attempt budget for a word length.
// Lengths without a policy entry are a configuration error.
func MaxAttempts(wordLength int) (int, error) {
	n, ok := attemptPolicy[wordLength]
	if !ok {
		return 0, unsupportedLength(wordLength)
	}
	return n, nil
}

// SupportedLengths lists the word lengths with a policy entry, ascending.
func SupportedLengths() []int {
	out := make([]int, 0, len(attemptPolicy))
	for l := range attemptPolicy {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// NewConfig resolves the per-game configuration for a word length.
func NewConfig(wordLength int) (Config, error) {
	attempts, err := MaxAttempts(wordLength)
	if err != nil {
		return Config{}, err
	}
	return Config{WordLength: wordLength, MaxAttempts: attempts}, nil
}
