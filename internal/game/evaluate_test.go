package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	C = Correct
	W = WrongPosition
	A = Absent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Verdict
	}{
		{name: "exact match", guess: "CAT", target: "CAT", want: []Verdict{C, C, C}},
		{name: "nothing shared", guess: "DOG", target: "CAT", want: []Verdict{A, A, A}},
		{name: "anagram", guess: "ACT", target: "CAT", want: []Verdict{W, W, C}},
		{name: "surplus repeats", guess: "LLAMA", target: "ALLOW", want: []Verdict{W, C, W, A, A}},
		{name: "repeated guess letter single in target", guess: "ALLEY", target: "APPLE", want: []Verdict{C, W, A, W, A}},
		{name: "repeat consumed by exact", guess: "EERIE", target: "THERE", want: []Verdict{W, A, W, A, C}},
		{name: "single target letter taken by exact", guess: "SASSY", target: "BLAST", want: []Verdict{A, W, A, C, A}},
		{name: "eight letters", guess: "TRAINERS", target: "STRAINER", want: []Verdict{W, W, W, W, W, W, W, W}},
		{name: "eight letters exact", guess: "ABSOLUTE", target: "ABSOLUTE", want: []Verdict{C, C, C, C, C, C, C, C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.target))
		})
	}
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	guess, target := "LLAMA", "ALLOW"
	_ = Evaluate(guess, target)
	assert.Equal(t, "LLAMA", guess)
	assert.Equal(t, "ALLOW", target)
}

func TestEvaluate_SelfIsAllCorrect(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		w := randomWord(rnd, []int{3, 5, 8}[i%3], "ABCDE")
		for _, v := range Evaluate(w, w) {
			assert.Equal(t, Correct, v, w)
		}
	}
}

// Small alphabets force many repeated letters on both sides.
func TestEvaluate_NeverExceedsTargetLetterCount(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := []int{3, 5, 8}[i%3]
		guess := randomWord(rnd, n, "ABC")
		target := randomWord(rnd, n, "ABC")
		got := Evaluate(guess, target)

		assert.Len(t, got, n)
		hits := map[byte]int{}
		for j, v := range got {
			if v == Correct {
				assert.Equal(t, target[j], guess[j])
			}
			if v != Absent {
				hits[guess[j]]++
			}
		}
		for letter, c := range hits {
			assert.LessOrEqual(t, c, strings.Count(target, string(letter)),
				"guess %s target %s letter %c", guess, target, letter)
		}
	}
}

func randomWord(rnd *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}
