package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgame/internal/game"
)

func TestNewList_Normalizes(t *testing.T) {
	l := NewList([]string{"cat", " Dog ", "CAT", "c4t", "", "crane", "ab-cd"})
	assert.Equal(t, []string{"CAT", "DOG"}, l[3])
	assert.Equal(t, []string{"CRANE"}, l[5])
	assert.Equal(t, []int{3, 5}, l.Lengths())
	assert.Equal(t, map[int]int{3: 2, 5: 1}, l.Stats())
}

func TestList_WordsMissingLength(t *testing.T) {
	l := NewList([]string{"CAT"})
	_, err := l.Words(5)
	assert.ErrorIs(t, err, ErrNoWords)

	l[8] = nil
	_, err = l.Words(8)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestLoadEmbedded(t *testing.T) {
	l, err := LoadEmbedded()
	require.NoError(t, err)
	for _, length := range game.SupportedLengths() {
		ws, err := l.Words(length)
		require.NoError(t, err, "length %d", length)
		for _, w := range ws {
			assert.Len(t, w, length)
			assert.True(t, isAlpha(w), w)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words3.txt"), []byte("# comment\ncat\n\ndog\ntoolong\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words5.txt"), []byte("crane\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordsX.txt"), []byte("zzz\n"), 0o644))

	l, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG"}, l[3])
	assert.Equal(t, []string{"CRANE"}, l[5])
	assert.Equal(t, []int{3, 5}, l.Lengths())
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestPicker_Deterministic(t *testing.T) {
	l := NewList([]string{"CAT", "DOG", "EEL", "FOX"})
	a := NewPicker(l, rand.New(rand.NewSource(3)))
	b := NewPicker(l, rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		wa, err := a.Pick(3)
		require.NoError(t, err)
		wb, _ := b.Pick(3)
		assert.Equal(t, wa, wb)
		assert.Contains(t, l[3], wa)
	}
}

func TestPicker_CoversList(t *testing.T) {
	l := NewList([]string{"CAT", "DOG", "EEL"})
	p := NewPicker(l, nil)
	seen := map[string]bool{}
	for i := 0; i < 300 && len(seen) < 3; i++ {
		w, err := p.Pick(3)
		require.NoError(t, err)
		seen[w] = true
	}
	assert.Len(t, seen, 3)
}

type constChooser int

func (c constChooser) Intn(int) int { return int(c) }

func TestPicker_OutOfRangeChooserFallsBack(t *testing.T) {
	l := NewList([]string{"CAT", "DOG"})
	w, err := NewPicker(l, constChooser(99)).Pick(3)
	require.NoError(t, err)
	assert.Equal(t, "CAT", w)

	w, _ = NewPicker(l, constChooser(1)).Pick(3)
	assert.Equal(t, "DOG", w)
}

func TestPicker_DrivesGame(t *testing.T) {
	g := game.New(NewPicker(NewList([]string{"CAT"}), nil))
	require.NoError(t, g.Start(3))

	for _, r := range "CAT" {
		g.AppendLetter(r)
	}
	assert.Equal(t, game.Won, g.Submit().Status)

	err := g.Start(5)
	assert.ErrorIs(t, err, game.ErrNoCandidates)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestCryptoChooser(t *testing.T) {
	var c CryptoChooser
	assert.Equal(t, 0, c.Intn(1))
	assert.Equal(t, 0, c.Intn(0))
	for i := 0; i < 50; i++ {
		v := c.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}
