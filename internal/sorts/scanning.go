package sorts

import (
	"math/rand"
	"sync"

	"go-radixsort/internal/pool"
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

// scanningReadSize bounds how many elements a worker reads out of one
// scanner bucket's chunk before moving on, so one slow bucket can't starve
// the others of a worker's attention.
const scanningReadSize = 16384

// scannerBucket is bucket b's final destination range: a slice of the
// original backing array, a read head marking how much of it has been
// classified into some worker's stash, and a write head marking how much
// has been overwritten with elements that actually belong there.
type scannerBucket[T any] struct {
	mu        sync.Mutex
	chunk     []T
	readHead  int
	writeHead int
}

// Scanning partitions bucket in place by the byte at level, the way
// ApplyPlateaus's swapRanges or Ska's cycle-following do, but cooperatively
// across p's workers instead of a single thread: counts gives every byte
// value b a disjoint destination range within bucket (its future home once
// the level is fully partitioned), and each worker repeatedly scans the 256
// ranges in a rotating order, locking one at a time and skipping any range
// whose lock another worker currently holds. Locking a range that
// still has unread data classifies a batch of it into the worker's local
// stash (256 per-byte buffers); locking a range with stashed elements
// destined for it writes as many of them back as the range's already-read
// prefix has made room for. A range is finished once its write head has
// caught up to its length, and a worker stops once every range looks
// finished from its own vantage point.
//
// This is the in-place, cooperative single-level partition used for very
// large buckets where a second buffer's worth of scratch isn't worth
// allocating: 256 mutex-guarded scanner buckets coordinate the partition
// across a pool.Group instead of a single thread's worth of work.
func Scanning[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level int, counts [256]int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	prefixSums := sortutil.PrefixSums(counts)
	var buckets [256]*scannerBucket[T]
	for b := 0; b < 256; b++ {
		start := prefixSums[b]
		buckets[b] = &scannerBucket[T]{chunk: bucket[start : start+counts[b] : start+counts[b]]}
	}

	workers := 1
	if p != nil {
		workers = p.Workers()
	}
	if workers < 1 {
		workers = 1
	}

	worker := func() { scanOnce(buckets[:], key, level) }

	if workers < 2 {
		worker()
		return
	}

	g := p.NewGroup()
	for w := 0; w < workers; w++ {
		g.Go(worker)
	}
	g.Wait()
}

// scanOnce is the body of a single cooperating worker: it picks a random
// starting bucket so concurrent workers don't all queue on bucket 0 first,
// then cycles the full 256-bucket order, reading and writing back until it
// has personally observed every bucket finished.
func scanOnce[T any](buckets []*scannerBucket[T], key radixkey.Key[T], level int) {
	var stash [256][]T
	var finished [256]bool
	finishedCount := 0

	pivot := rand.Intn(256)
	order := make([]int, 0, 256)
	for i := pivot; i < 256; i++ {
		order = append(order, i)
	}
	for i := 0; i < pivot; i++ {
		order = append(order, i)
	}

	for {
		for _, i := range order {
			if finished[i] {
				continue
			}

			m := buckets[i]
			if !m.mu.TryLock() {
				continue
			}

			if m.writeHead >= len(m.chunk) {
				m.mu.Unlock()
				finished[i] = true
				finishedCount++
				if finishedCount == 256 {
					return
				}
				continue
			}

			if m.readHead < len(m.chunk) {
				toRead := len(m.chunk) - m.readHead
				if toRead > scanningReadSize {
					toRead = scanningReadSize
				}
				readEnd := m.readHead + toRead
				for _, v := range m.chunk[m.readHead:readEnd] {
					target := key.ByteAt(v, level)
					stash[target] = append(stash[target], v)
				}
				m.readHead = readEnd
			}

			toWrite := m.readHead - m.writeHead
			if toWrite > len(stash[i]) {
				toWrite = len(stash[i])
			}
			if toWrite < 1 {
				m.mu.Unlock()
				continue
			}

			split := len(stash[i]) - toWrite
			tail := stash[i][split:]
			writeEnd := m.writeHead + toWrite
			copy(m.chunk[m.writeHead:writeEnd], tail)
			stash[i] = stash[i][:split]
			m.writeHead = writeEnd

			finishedNow := m.writeHead >= len(m.chunk)
			m.mu.Unlock()

			if finishedNow {
				finished[i] = true
				finishedCount++
				if finishedCount == 256 {
					return
				}
			}
		}
	}
}
