// Package words loads the whitespace-separated word lists used as hash table
// keys.
package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/zeebo/errs/v2"
)

// ErrNoWords is returned when the input holds no words at all.
var ErrNoWords = errors.New("no words in input")

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// Read splits r into words separated by spaces, tabs and newlines. Every
// returned word is non-empty.
func Read(r io.Reader) ([]string, error) {
	var out []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		out = append(out, strings.FieldsFunc(line, isSeparator)...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.Wrap(err)
		}
	}
	if len(out) == 0 {
		return nil, errs.Wrap(ErrNoWords)
	}
	return out, nil
}

// Load reads the word list stored at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer f.Close()

	out, err := Read(f)
	if err != nil {
		return nil, errs.Errorf("%s: %w", path, err)
	}
	return out, nil
}
