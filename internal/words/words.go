// internal/words/words.go
//
// Word list collaborator for the game engine.
//
// Responsibilities:
//   - Hold target words keyed by word length (List).
//   - Load lists from the embedded defaults, a directory of words<N>.txt files,
//     or a SQLite table (see sqlite.go).
//   - Pick a uniformly random word of a given length through an injectable Chooser.
//
// Constraints:
//   • Words must be alphabetic A–Z and exactly the length they are keyed under.
//   • Lists are normalized to uppercase and de-duplicated; invalid lines are dropped.
//
// Environment variables (resolved by internal/config):
//   WORDS_DIR=/path/to/lists   (files words3.txt, words5.txt, words8.txt)
//   WORDS_DB=/path/to/words.db (table words(word, length))
package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordgame/assets"
)

// ErrNoWords is returned when no list exists for a length or the list is empty.
var ErrNoWords = errors.New("words: no words for length")

// Source is a lookup from word length to candidate target words.
type Source interface {
	Words(length int) ([]string, error)
}

// List is an in-memory Source.
type List map[int][]string

// NewList normalizes raw words and groups them by length.
func NewList(raw []string) List {
	l := List{}
	for _, w := range normalize(raw) {
		l[len(w)] = append(l[len(w)], w)
	}
	return l
}

// Words returns the list for a length, or ErrNoWords.
func (l List) Words(length int) ([]string, error) {
	ws := l[length]
	if len(ws) == 0 {
		return nil, fmt.Errorf("%w %d", ErrNoWords, length)
	}
	return ws, nil
}

// Lengths returns the lengths that have at least one word, ascending.
func (l List) Lengths() []int {
	out := lo.Filter(lo.Keys(map[int][]string(l)), func(n int, _ int) bool { return len(l[n]) > 0 })
	sort.Ints(out)
	return out
}

// Stats returns the number of words per length.
func (l List) Stats() map[int]int {
	return lo.MapValues(map[int][]string(l), func(ws []string, _ int) int { return len(ws) })
}

// LoadEmbedded reads the word lists shipped in the assets package.
func LoadEmbedded() (List, error) {
	l := List{}
	for length, name := range assets.Files {
		lines, err := assets.ReadLines(name)
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		l[length] = keepLength(normalize(lines), length)
	}
	return l, nil
}

// LoadDir reads words<N>.txt files from dir. Lengths without a file are skipped.
func LoadDir(dir string) (List, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "words*.txt"))
	if err != nil {
		return nil, err
	}
	l := List{}
	for _, path := range matches {
		var length int
		if _, err := fmt.Sscanf(filepath.Base(path), "words%d.txt", &length); err != nil || length <= 0 {
			continue
		}
		lines, err := readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		l[length] = keepLength(normalize(lines), length)
	}
	if len(l.Lengths()) == 0 {
		return nil, fmt.Errorf("%w: no word files in %s", ErrNoWords, dir)
	}
	return l, nil
}

// readWordFile loads one word per line, skipping blanks and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize uppercases, drops non-alphabetic entries and de-duplicates,
// keeping first-seen order.
func normalize(raw []string) []string {
	upper := lo.Map(raw, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Filter(upper, func(w string, _ int) bool {
		return w != "" && isAlpha(w)
	}))
}

func keepLength(ws []string, n int) []string {
	return lo.Filter(ws, func(w string, _ int) bool { return len(w) == n })
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
