package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"one", []string{"one"}},
		{"one two\tthree\nfour", []string{"one", "two", "three", "four"}},
		{"  leading and trailing  \n\n", []string{"leading", "and", "trailing"}},
		{"a\t\tb\n\n\nc", []string{"a", "b", "c"}},
		{"dup dup dup", []string{"dup", "dup", "dup"}},
		// only space, tab and newline separate words
		{"carriage\rreturn", []string{"carriage\rreturn"}},
	}

	for _, test := range tests {
		out, err := Read(strings.NewReader(test.input))
		assert.NoError(t, err, "Read(%q)", test.input)
		assert.Equal(t, test.expected, out, "Read(%q)", test.input)
	}
}

func TestReadEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\n\t \n"} {
		_, err := Read(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrNoWords), "Read(%q): %v", input, err)
	}
}

func TestReadLongLine(t *testing.T) {
	// longer than any fixed line buffer
	line := strings.Repeat("word ", 1000)
	out, err := Read(strings.NewReader(line))
	assert.NoError(t, err)
	assert.Len(t, out, 1000)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	assert.NoError(os.WriteFile(path, []byte("apple banana\ncherry\n"), 0o644))

	out, err := Load(path)
	assert.NoError(err)
	assert.Equal([]string{"apple", "banana", "cherry"}, out)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "%v", err)
}
