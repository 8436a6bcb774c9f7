package concurrent

import (
	"sync"

	"github.com/goose-lang/std"
)

// A Counter tallies a running total, such as entries added or removed, from
// many threads at once.
type Counter struct {
	total uint64
	mu    *sync.Mutex
}

// NewCounter returns a counter with a total of zero.
func NewCounter() *Counter {
	return &Counter{total: 0, mu: new(sync.Mutex)}
}

// Get returns the total so far.
func (c *Counter) Get() uint64 {
	c.mu.Lock()
	total := c.total
	c.mu.Unlock()
	return total
}

// Add adds n to the total. Adding 0 is allowed and changes nothing, so a
// caller can pass a removal count straight through.
func (c *Counter) Add(n uint64) {
	c.mu.Lock()
	c.total = std.SumAssumeNoOverflow(c.total, n)
	c.mu.Unlock()
}

// Spawn runs f(i) on its own thread for each i in [0, n) and returns the
// handles in order.
func Spawn(n uint64, f func(i uint64)) []*std.JoinHandle {
	var handles []*std.JoinHandle
	for i := uint64(0); i < n; i++ {
		h := std.Spawn(func() {
			f(i)
		})
		handles = append(handles, h)
	}
	return handles
}

// JoinAll waits for every handle to finish.
func JoinAll(handles []*std.JoinHandle) {
	for _, h := range handles {
		h.Join()
	}
}
