package hashtable

import (
	"github.com/goose-lang/primitive"
)

// A Bucket holds the keys that hashed to one slot of a Table, sorted in
// ascending order. Equal keys are kept next to each other.
//
// A Bucket is not safe for concurrent use; the Table's lock protects it.
type Bucket struct {
	entries []string
}

func newBucket() *Bucket {
	return &Bucket{entries: []string{}}
}

// lowerBound returns the index of the first entry that is not less than key,
// or len(entries) if there is none.
func (b *Bucket) lowerBound(key string) uint64 {
	var i = uint64(0)
	var j = uint64(len(b.entries))
	for i < j {
		mid := i + (j-i)/2
		if b.entries[mid] < key {
			i = mid + 1
		} else {
			j = mid
		}
	}
	return i
}

// Insert adds key in sorted position. A duplicate goes in front of the
// entries it is equal to.
func (b *Bucket) Insert(key string) {
	i := b.lowerBound(key)
	b.entries = append(b.entries, "")
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = key
	primitive.Assert(i == 0 || b.entries[i-1] < key)
	primitive.Assert(i+1 == uint64(len(b.entries)) || key <= b.entries[i+1])
}

// RemoveAll deletes every entry equal to target and returns how many were
// deleted. A result of 0 means target was not present.
func (b *Bucket) RemoveAll(target string) uint64 {
	if len(b.entries) == 0 {
		return 0
	}
	start := b.lowerBound(target)
	var end = start
	l := uint64(len(b.entries))
	for end < l && b.entries[end] == target {
		end++
	}
	removed := end - start
	if removed == 0 {
		return 0
	}
	if removed == l {
		// every entry matched
		b.Clear()
		return removed
	}
	n := copy(b.entries[start:], b.entries[end:])
	// drop references so the removed strings can be collected
	for i := start + uint64(n); i < l; i++ {
		b.entries[i] = ""
	}
	b.entries = b.entries[:start+uint64(n)]
	return removed
}

// Clear removes every entry.
func (b *Bucket) Clear() {
	b.entries = []string{}
}

// Len returns the number of entries, counting duplicates.
func (b *Bucket) Len() uint64 {
	return uint64(len(b.entries))
}

// Count returns how many entries equal key.
func (b *Bucket) Count(key string) uint64 {
	var n = uint64(0)
	for i := b.lowerBound(key); i < uint64(len(b.entries)); i++ {
		if b.entries[i] != key {
			break
		}
		n++
	}
	return n
}

// Entries returns a copy of the bucket's contents in order.
func (b *Bucket) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Sorted reports whether the entries are in non-decreasing order.
func (b *Bucket) Sorted() bool {
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i-1] > b.entries[i] {
			return false
		}
	}
	return true
}
