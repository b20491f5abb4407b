// Package assets embeds the default word lists, one file per word length.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words3.txt words5.txt words8.txt
var FS embed.FS

// Files maps each shipped word length to its embedded file.
var Files = map[int]string{
	3: "words3.txt",
	5: "words5.txt",
	8: "words8.txt",
}

// ReadLines returns the non-blank, non-comment lines of an embedded file, uppercased.
func ReadLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}
