// internal/daily/picker.go
//
// Word of the day per length, on top of any words.Source.

package daily

import (
	"time"

	"github.com/robalobadob/wordgame/internal/words"
)

// Picker implements game.WordPicker with the day's word for each length.
type Picker struct {
	Source words.Source
	Salt   string
	Now    func() time.Time
}

// NewPicker builds a Picker over src keyed by salt and the current UTC date.
func NewPicker(src words.Source, salt string) *Picker {
	return &Picker{Source: src, Salt: salt, Now: time.Now}
}

// Pick returns the word of the day for length.
func (p *Picker) Pick(length int) (string, error) {
	ch := Chooser{Date: p.Now(), Salt: p.Salt, WordLength: length}
	return words.NewPicker(p.Source, ch).Pick(length)
}
