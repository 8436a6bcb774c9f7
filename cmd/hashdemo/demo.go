package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/mwc"

	"github.com/grent/Thread-Safe-Hashtable/concurrent"
	"github.com/grent/Thread-Safe-Hashtable/hashtable"
)

type config struct {
	threads   uint64
	maxValues uint64
	buckets   int
	hash      hashtable.HashFunc
	words     []string
}

type result struct {
	added     uint64
	removed   uint64
	remaining uint64
}

// run fills a table from cfg.threads workers, dumps it to out, lets the
// workers remove what they added, and dumps it again.
func run(cfg config, out io.Writer) (result, error) {
	if len(cfg.words) == 0 {
		return result{}, errs.Errorf("no words to add")
	}
	table, err := hashtable.NewWithHash(cfg.buckets, cfg.hash)
	if err != nil {
		return result{}, err
	}
	defer table.Destroy()

	numWords := uint64(len(cfg.words))
	rng := mwc.Rand()
	starts := make([]uint64, cfg.threads)
	for i := range starts {
		starts[i] = rng.Uint64() % numWords
	}

	barrier := concurrent.NewPhaseBarrier(cfg.threads)
	added := concurrent.NewCounter()
	removed := concurrent.NewCounter()

	handles := concurrent.Spawn(cfg.threads, func(id uint64) {
		log := logrus.WithField("thread", id)
		log.Debug("thread running")
		start := starts[id]
		for i := uint64(0); i < cfg.maxValues; i++ {
			table.Add(cfg.words[(start+i)%numWords])
		}
		added.Add(cfg.maxValues)

		barrier.Arrive()
		barrier.WaitRelease()

		for i := uint64(0); i < cfg.maxValues; i++ {
			word := cfg.words[(start+i)%numWords]
			n := table.Remove(word)
			if n == 0 {
				log.WithField("word", word).Debug("nothing was removed")
			}
			removed.Add(n)
		}
	})

	barrier.WaitArrived()
	fmt.Fprintln(out, "Dump of the hash table (which should be as full as it's gonna get).")
	if err := table.Print(out); err != nil {
		barrier.Release()
		concurrent.JoinAll(handles)
		return result{}, err
	}

	barrier.Release()
	concurrent.JoinAll(handles)

	fmt.Fprintln(out, "Dump of the hash table (which should be empty!)")
	if err := table.Print(out); err != nil {
		return result{}, err
	}

	res := result{
		added:     added.Get(),
		removed:   removed.Get(),
		remaining: table.Len(),
	}
	logrus.WithFields(logrus.Fields{
		"added":     res.added,
		"removed":   res.removed,
		"remaining": res.remaining,
	}).Info("workers finished")
	if res.added-res.removed != res.remaining {
		return res, errs.Errorf("lost entries: added %d, removed %d, %d remain",
			res.added, res.removed, res.remaining)
	}
	return res, nil
}
