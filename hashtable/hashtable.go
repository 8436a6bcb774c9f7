// Package hashtable is a fixed-size chained hash table of string keys that is
// safe for concurrent use.
//
// Each bucket is a sorted list that allows duplicates. One mutex guards the
// whole bucket array, so every Add and Remove is serialized in a single global
// order, regardless of which bucket it touches.
package hashtable

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/errs/v2"
)

// ErrInvalidSize is returned by New when asked for fewer than one bucket.
var ErrInvalidSize = errors.New("bucket count must be at least 1")

// A Table is a fixed array of sorted buckets behind one table-wide lock.
//
// The number of buckets never changes. Keys are never deduplicated: adding
// the same key twice stores two entries.
type Table struct {
	mu      *sync.Mutex
	hash    HashFunc
	buckets []*Bucket
}

func createBuckets(size uint64) []*Bucket {
	var buckets = []*Bucket{}
	for i := uint64(0); i < size; i++ {
		buckets = append(buckets, newBucket())
	}
	return buckets
}

// New creates a table with size empty buckets, hashing keys with CharSum.
func New(size int) (*Table, error) {
	return NewWithHash(size, CharSum)
}

// NewWithHash is like New but routes keys with h.
func NewWithHash(size int, h HashFunc) (*Table, error) {
	if size < 1 {
		return nil, errs.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if h == nil {
		h = CharSum
	}
	return &Table{
		mu:      new(sync.Mutex),
		hash:    h,
		buckets: createBuckets(uint64(size)),
	}, nil
}

// Size returns the number of buckets.
func (t *Table) Size() uint64 {
	t.lock()
	n := uint64(len(t.buckets))
	t.mu.Unlock()
	return n
}

// lock acquires t.mu, releasing it again and panicking if the table was
// destroyed.
func (t *Table) lock() {
	t.mu.Lock()
	if t.buckets == nil {
		t.mu.Unlock()
		panic("hashtable: use of destroyed table")
	}
}

// bucketFor returns the bucket key hashes to. Must hold t.mu.
func (t *Table) bucketFor(key string) *Bucket {
	return t.buckets[t.hash(key, uint64(len(t.buckets)))]
}

// Index returns the bucket index key is routed to.
func (t *Table) Index(key string) uint64 {
	t.lock()
	i := t.hash(key, uint64(len(t.buckets)))
	t.mu.Unlock()
	return i
}

// Add stores a new entry for key. It always succeeds.
func (t *Table) Add(key string) {
	t.lock()
	t.bucketFor(key).Insert(key)
	t.mu.Unlock()
}

// Remove deletes every entry equal to key and returns how many there were.
// Removing an absent key returns 0 and changes nothing.
func (t *Table) Remove(key string) uint64 {
	t.lock()
	n := t.bucketFor(key).RemoveAll(key)
	t.mu.Unlock()
	return n
}

// Count returns how many entries equal key.
func (t *Table) Count(key string) uint64 {
	t.lock()
	n := t.bucketFor(key).Count(key)
	t.mu.Unlock()
	return n
}

// Len returns the total number of entries across all buckets.
func (t *Table) Len() uint64 {
	t.lock()
	var n = uint64(0)
	for _, b := range t.buckets {
		n += b.Len()
	}
	t.mu.Unlock()
	return n
}

// Snapshot returns a copy of every bucket's entries, indexed by bucket. It is
// taken under the table lock, so it reflects a single point in the global
// order of Adds and Removes.
func (t *Table) Snapshot() [][]string {
	t.lock()
	defer t.mu.Unlock()
	out := make([][]string, len(t.buckets))
	for i, b := range t.buckets {
		out[i] = b.Entries()
	}
	return out
}

// Print writes one key per line to w, in bucket order and then in sorted
// order within each bucket.
//
// The output is one consistent Snapshot; the lock is released before anything
// is written to w.
func (t *Table) Print(w io.Writer) error {
	for _, entries := range t.Snapshot() {
		for _, key := range entries {
			if _, err := fmt.Fprintln(w, key); err != nil {
				return errs.Wrap(err)
			}
		}
	}
	return nil
}

// Destroy empties every bucket and releases the bucket array. Any later use of
// the table panics; calling Destroy again does nothing.
//
// Destroy does not wait for other callers. Stop all of them first, or they
// will panic when they next acquire the lock.
func (t *Table) Destroy() {
	t.mu.Lock()
	for _, b := range t.buckets {
		b.Clear()
	}
	t.buckets = nil
	t.mu.Unlock()
}
