// Package pool provides the externally-configurable thread pool the
// sorting core fans parallel work out to. It is a thin wrapper around
// golang.org/x/sync/errgroup sized to the hardware thread count, with
// panic recovery so a single worker's panic aborts the whole group
// instead of crashing the process mid-permutation.
package pool

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool bounds the number of goroutines concurrently doing CPU-bound work
// on behalf of the sorting core. Workers is fixed at construction time;
// Go blocks once that many tasks are in flight.
type Pool struct {
	workers int
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool, sized to runtime.GOMAXPROCS(0),
// created lazily on first use. The core falls back to this whenever a
// caller does not supply its own Pool.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New(runtime.GOMAXPROCS(0))
	})
	return defaultPool
}

// New builds a pool with the given worker bound. workers < 1 is treated
// as 1 (a pool of one still gives callers a uniform Group/Wait API for
// serial execution).
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers reports the pool's concurrency bound.
func (p *Pool) Workers() int {
	return p.workers
}

// Group is a bounded fan-out/join unit: Go schedules work up to the
// pool's worker bound, and Wait joins every scheduled task before
// returning, re-raising the first panic observed (after every sibling
// task has drained) rather than swallowing it.
type Group struct {
	eg       *errgroup.Group
	mu       sync.Mutex
	panicked any
}

// NewGroup starts a bounded errgroup against this pool's worker count.
func (p *Pool) NewGroup() *Group {
	eg := new(errgroup.Group)
	eg.SetLimit(p.workers)
	return &Group{eg: eg}
}

// Go schedules fn to run on the group, blocking if the pool's worker
// bound is already saturated. A panic inside fn is recovered and
// remembered; it is re-panicked by Wait once every task has joined, so
// no worker is left holding a scanner-bucket lock or a half-written
// slab when the panic propagates.
func (g *Group) Go(fn func()) {
	g.eg.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("pool worker panic: %v", r)
				g.mu.Lock()
				if g.panicked == nil {
					g.panicked = r
				}
				g.mu.Unlock()
			}
		}()
		fn()
		return nil
	})
}

// Wait blocks until every scheduled task has returned, then re-panics
// with the first recovered worker panic, if any.
func (g *Group) Wait() {
	_ = g.eg.Wait()
	if g.panicked != nil {
		panic(g.panicked)
	}
}
