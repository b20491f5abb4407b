// Package daily derives a deterministic target per calendar day, so every
// player of a given day and word length gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date and word length using
// HMAC(salt, YYYY-MM-DD/length) % listLen.
func WordIndex(date time.Time, salt string, wordLength, listLen int) int {
	return Chooser{Date: date, Salt: salt, WordLength: wordLength}.Intn(listLen)
}

// Chooser implements words.Chooser with a date-keyed HMAC instead of randomness.
type Chooser struct {
	Date       time.Time
	Salt       string
	WordLength int
}

// Intn returns the day's index in [0, n).
func (c Chooser) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(c.Salt))
	h.Write([]byte(DateKey(c.Date) + "/" + strconv.Itoa(c.WordLength)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
