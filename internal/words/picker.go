// internal/words/picker.go
//
// Target selection.
// Responsibilities:
//   - Chooser: the injectable index source (crypto/rand by default).
//   - Picker: game.WordPicker over any Source.

package words

import (
	"crypto/rand"
	"math/big"
)

// Chooser returns an index in [0, n). *math/rand.Rand satisfies it, which is
// how tests get deterministic targets.
type Chooser interface {
	Intn(n int) int
}

// CryptoChooser draws uniformly from crypto/rand.
type CryptoChooser struct{}

// Intn returns a uniform index in [0, n). It falls back to 0 if the system
// randomness source fails.
func (CryptoChooser) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Picker draws target words from a Source. It implements game.WordPicker.
type Picker struct {
	Source  Source
	Chooser Chooser
}

// NewPicker builds a Picker; a nil chooser means CryptoChooser.
func NewPicker(src Source, ch Chooser) *Picker {
	if ch == nil {
		ch = CryptoChooser{}
	}
	return &Picker{Source: src, Chooser: ch}
}

// Pick returns a random word of the given length.
func (p *Picker) Pick(length int) (string, error) {
	ws, err := p.Source.Words(length)
	if err != nil {
		return "", err
	}
	if len(ws) == 0 {
		return "", ErrNoWords
	}
	i := p.Chooser.Intn(len(ws))
	if i < 0 || i >= len(ws) {
		i = 0
	}
	return ws[i], nil
}

// WithChooser returns a copy of p drawing from ch instead.
func (p *Picker) WithChooser(ch Chooser) *Picker {
	return NewPicker(p.Source, ch)
}
