package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"

	"github.com/grent/Thread-Safe-Hashtable/hashtable"
)

const (
	fullHeader  = "Dump of the hash table (which should be as full as it's gonna get)."
	emptyHeader = "Dump of the hash table (which should be empty!)"
)

func TestRun(t *testing.T) {
	for _, h := range []hashtable.HashFunc{hashtable.CharSum, hashtable.XXH3} {
		assert := assert.New(t)
		var out bytes.Buffer
		res, err := run(config{
			threads:   8,
			maxValues: 20,
			buckets:   13,
			hash:      h,
			words:     strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa"),
		}, &out)
		assert.NoError(err)
		assert.Equal(uint64(160), res.added)
		assert.Equal(uint64(160), res.removed)
		assert.Equal(uint64(0), res.remaining)

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		if assert.Len(lines, 1+160+1) {
			assert.Equal(fullHeader, lines[0])
			assert.Equal(emptyHeader, lines[len(lines)-1])
		}
	}
}

func TestRunSingleWord(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	res, err := run(config{
		threads:   4,
		maxValues: 3,
		buckets:   1,
		hash:      hashtable.CharSum,
		words:     []string{"go"},
	}, &out)
	assert.NoError(err)
	assert.Equal(uint64(0), res.remaining)
	assert.Equal(fullHeader+"\n"+strings.Repeat("go\n", 12)+emptyHeader+"\n", out.String())
}

func TestRunBadConfig(t *testing.T) {
	_, err := run(config{threads: 1, maxValues: 1, buckets: 0, words: []string{"a"}}, &bytes.Buffer{})
	assert.ErrorIs(t, err, hashtable.ErrInvalidSize)

	_, err = run(config{threads: 1, maxValues: 1, buckets: 1}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := CLI{Threads: 1, MaxValues: 1, Buckets: 1}
	assert.NoError(t, ok.Validate())

	for _, c := range []CLI{
		{Threads: 0, MaxValues: 1, Buckets: 1},
		{Threads: 101, MaxValues: 1, Buckets: 1},
		{Threads: 1, MaxValues: 0, Buckets: 1},
		{Threads: 1, MaxValues: 1, Buckets: 0},
	} {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}

func TestHashByName(t *testing.T) {
	assert.Equal(t, hashtable.XXH3("key", 97), hashByName("xxh3")("key", 97))
	assert.Equal(t, hashtable.CharSum("key", 97), hashByName("charsum")("key", 97))
}

func parseArgs(t *testing.T, args ...string) (CLI, error) {
	var cli CLI
	parser, err := newParser(&cli, kong.Exit(func(int) { t.Fatal("parser tried to exit") }))
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}
	_, err = parser.Parse(args)
	return cli, err
}

func TestParseDefaults(t *testing.T) {
	assert := assert.New(t)
	cli, err := parseArgs(t)
	assert.NoError(err)
	assert.Equal(uint64(1), cli.Threads)
	assert.Equal(uint64(10), cli.MaxValues)
	assert.Equal(13, cli.Buckets)
	assert.Equal("charsum", cli.Hash)
	assert.Equal("info", cli.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"error", "warn", "info", "debug", "trace"} {
		cli, err := parseArgs(t, "--log-level", level)
		assert.NoError(t, err, "--log-level %s", level)
		assert.Equal(t, level, cli.LogLevel)
	}

	_, err := parseArgs(t, "--log-level", "loud")
	assert.Error(t, err, "unknown log level accepted")
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"--hash", "md5"},
		{"-t", "0"},
		{"-t", "101"},
		{"-m", "0"},
		{"-s", "0"},
	} {
		_, err := parseArgs(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
