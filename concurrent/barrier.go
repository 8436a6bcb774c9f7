package concurrent

import "sync"

// A PhaseBarrier separates two phases of work done by a fixed set of workers,
// with a coordinator in between.
//
// Each worker calls `Arrive()` when it finishes the first phase and then
// `WaitRelease()`. The coordinator calls `WaitArrived()`, does whatever it
// needs while the workers are parked, and then `Release()` starts the second
// phase for everyone.
type PhaseBarrier struct {
	workers  uint64
	arrived  uint64
	released bool
	mu       *sync.Mutex
	cond     *sync.Cond
}

func NewPhaseBarrier(workers uint64) *PhaseBarrier {
	mu := new(sync.Mutex)
	return &PhaseBarrier{workers: workers, mu: mu, cond: sync.NewCond(mu)}
}

// Arrive marks one worker as done with the first phase.
func (b *PhaseBarrier) Arrive() {
	b.mu.Lock()
	if b.arrived == b.workers {
		b.mu.Unlock()
		panic("Arrive() called too many times")
	}
	b.arrived++
	if b.arrived == b.workers {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// WaitArrived blocks until every worker has called `Arrive()`.
func (b *PhaseBarrier) WaitArrived() {
	b.mu.Lock()
	for b.arrived < b.workers {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Release lets all workers blocked in `WaitRelease()` continue, along with any
// that call it later.
func (b *PhaseBarrier) Release() {
	b.mu.Lock()
	b.released = true
	b.cond.Broadcast()
	b.mu.Unlock()
}

// WaitRelease blocks until the coordinator calls `Release()`.
func (b *PhaseBarrier) WaitRelease() {
	b.mu.Lock()
	for !b.released {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
