// internal/game/evaluate.go
//
// Two-pass guess scoring with per-occurrence letter consumption.

package game

// Evaluate scores guess against target letter by letter.
// Both strings must have the same length; the caller guarantees it.
//
// Pass 1:
//   - Mark exact matches Correct and consume the letter on both sides.
//
// Pass 2:
//   - For each remaining guess letter, left to right, consume the first
//     unconsumed target occurrence and mark WrongPosition; otherwise Absent.
//
// Consuming exactly one occurrence per match keeps the number of non-Absent
// verdicts for a letter bounded by that letter's count in target.
func Evaluate(guess, target string) []Verdict {
	n := len(target)
	out := make([]Verdict, n)
	pool := []byte(target)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			out[i] = Correct
			pool[i] = 0
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Correct {
			continue
		}
		out[i] = Absent
		for j := 0; j < n; j++ {
			if pool[j] == guess[i] {
				out[i] = WrongPosition
				pool[j] = 0
				break
			}
		}
	}
	return out
}
