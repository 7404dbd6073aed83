// Package radixsort implements an unstable, multi-threaded MSB radix sort
// over fixed-width byte-addressable keys. Callers describe their element
// type's key bytes with a radixkey.Key[T] and hand the core a slice; the
// director recursively partitions it by byte, dispatching each partition
// step to whichever internal/sorts primitive the tuner judges cheapest for
// that size, depth, and distribution.
package radixsort

import (
	"go-radixsort/internal/pool"
	"go-radixsort/radixkey"
)

// Sort sorts data in place, ascending, unstable, using the standard
// (out-of-place-capable) tuning table. It panics if key.Levels() <= 0 — a
// zero-level key is a programming error in the caller's Key[T], not a
// recoverable condition.
func Sort[T any](data []T, key radixkey.Key[T]) {
	SortWithPool(data, key, pool.Default(), false)
}

// SortInPlace sorts data the same way Sort does, but consults the
// in-place tuning table: buckets above 50,000 elements are partitioned by
// the in-place Ska and Regions passes instead of the scratch-buffer
// scatters the standard table uses at those sizes. Buckets of 50,000
// elements or fewer still go through LSB or LR-LSB, which allocate a
// scratch copy of the bucket.
func SortInPlace[T any](data []T, key radixkey.Key[T]) {
	SortWithPool(data, key, pool.Default(), true)
}

// SortWithPool sorts data against a caller-supplied pool instead of the
// lazily-constructed process-wide default, satisfying the "externally
// configured pool" contract: pool lifetime and sizing are the caller's
// responsibility, not the sort's. The Pool type lives in
// go-radixsort/internal/pool, so only packages inside this module can
// build one; a nil p selects the default pool.
func SortWithPool[T any](data []T, key radixkey.Key[T], p *pool.Pool, inPlace bool) {
	if key.Levels() <= 0 {
		panic("radixsort: key.Levels() must be >= 1")
	}
	if len(data) < 2 {
		return
	}
	if p == nil {
		p = pool.Default()
	}

	direct(p, data, key, 0, key.Levels(), len(data), inPlace)
}
