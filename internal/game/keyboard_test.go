package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardStatus_Record(t *testing.T) {
	ks := KeyboardStatus{}
	ks.Record("CAT", []Verdict{Correct, Absent, WrongPosition})
	assert.Equal(t, Correct, ks.Get('C'))
	assert.Equal(t, Absent, ks.Get('A'))
	assert.Equal(t, WrongPosition, ks.Get('T'))
	assert.Equal(t, VerdictNone, ks.Get('Z'))

	// Upgrades apply, downgrades do not.
	ks.Record("ACT", []Verdict{WrongPosition, Absent, Correct})
	assert.Equal(t, Correct, ks.Get('C'))
	assert.Equal(t, WrongPosition, ks.Get('A'))
	assert.Equal(t, Correct, ks.Get('T'))

	assert.Equal(t, []rune{'A', 'C', 'T'}, ks.Keys())
}

func TestKeyboardStatus_DuplicateLettersInOneGuess(t *testing.T) {
	ks := KeyboardStatus{}
	// LLAMA against ALLOW: the surplus A is Absent but the first A is WrongPosition.
	ks.Record("LLAMA", []Verdict{WrongPosition, Correct, WrongPosition, Absent, Absent})
	assert.Equal(t, Correct, ks.Get('L'))
	assert.Equal(t, WrongPosition, ks.Get('A'))
	assert.Equal(t, Absent, ks.Get('M'))
}

func TestKeyboardStatus_NeverDowngradesAcrossGame(t *testing.T) {
	g := startedGame(t, "CRANE")
	prev := KeyboardStatus{}
	for _, w := range []string{"CRONY", "TRACE", "CRAMP", "BRACE", "CRANK"} {
		typeWord(g, w)
		g.Submit()
		cur := g.Keyboard()
		for r, v := range prev {
			assert.GreaterOrEqual(t, cur.Get(r), v, "letter %c after %s", r, w)
		}
		prev = cur
	}
	assert.Equal(t, Correct, prev.Get('C'))
}

func TestFoldKeyboard(t *testing.T) {
	history := []Attempt{
		{Guess: "DOG", Verdicts: []Verdict{Absent, Absent, Absent}},
		{Guess: "COT", Verdicts: []Verdict{Correct, Absent, Correct}},
	}
	ks := FoldKeyboard(history)
	assert.Equal(t, KeyboardStatus{'D': Absent, 'O': Absent, 'G': Absent, 'C': Correct, 'T': Correct}, ks)

	g := startedGame(t, "CAT")
	typeWord(g, "DOG")
	g.Submit()
	typeWord(g, "COT")
	g.Submit()
	assert.Equal(t, FoldKeyboard(g.History()), g.Keyboard())
}

func TestKeyboardStatus_Clone(t *testing.T) {
	ks := KeyboardStatus{'A': Absent}
	cp := ks.Clone()
	cp['A'] = Correct
	assert.Equal(t, Absent, ks.Get('A'))
}
