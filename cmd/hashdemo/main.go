package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs/v2"

	"github.com/grent/Thread-Safe-Hashtable/hashtable"
	"github.com/grent/Thread-Safe-Hashtable/logging"
	"github.com/grent/Thread-Safe-Hashtable/words"
)

// Demonstration harness: several threads add words to a shared table, wait
// at a barrier while the main thread dumps it, then remove the same words.

type CLI struct {
	Threads   uint64 `short:"t" help:"Number of threads to start up (1-100)." default:"1"`
	MaxValues uint64 `short:"m" name:"max-values" help:"Number of values for each thread to add to the hashtable." default:"10"`
	Buckets   int    `short:"s" help:"Number of hashtable buckets." default:"13"`
	Words     string `short:"w" help:"Word list to draw keys from." default:"words.txt" type:"path"`
	Hash      string `help:"Hash function used to pick buckets." enum:"charsum,xxh3" default:"charsum"`
	LogLevel  string `name:"log-level" help:"Logging level." enum:"error,warn,info,debug,trace" default:"info"`
	LogFile   string `name:"log-file" help:"If set, log to a file instead of stderr."`
}

func (c *CLI) Validate() error {
	if c.Threads < 1 || c.Threads > 100 {
		return errs.Errorf("--threads must be between 1 and 100, got %d", c.Threads)
	}
	if c.MaxValues < 1 {
		return errs.Errorf("--max-values must be at least 1")
	}
	if c.Buckets < 1 {
		return errs.Errorf("--buckets must be at least 1, got %d", c.Buckets)
	}
	return nil
}

func hashByName(name string) hashtable.HashFunc {
	if name == "xxh3" {
		return hashtable.XXH3
	}
	return hashtable.CharSum
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("hashdemo"),
		kong.Description("Exercise the thread-safe hashtable with concurrent writers."),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		logrus.Fatal(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	if err := logging.Init(cli.LogLevel, cli.LogFile); err != nil {
		logrus.Fatal(err)
	}

	list, err := words.Load(cli.Words)
	if err != nil {
		logrus.WithField("file", cli.Words).Fatalf("can't load words: %v", err)
	}
	logrus.WithField("words", len(list)).Debug("loaded word list")

	_, err = run(config{
		threads:   cli.Threads,
		maxValues: cli.MaxValues,
		buckets:   cli.Buckets,
		hash:      hashByName(cli.Hash),
		words:     list,
	}, os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}
}
