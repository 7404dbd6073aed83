package dataframe

import (
	"math"

	radixsort "go-radixsort"
	"go-radixsort/radixkey"
)

// indexedUint64 pairs a sort key with the row it came from, so that sorting
// a slice of these by key also yields the argsort permutation of that row.
type indexedUint64 struct {
	key uint64
	row int
}

// indexedUint64Key orders indexedUint64 values by their key field, reusing
// the MSB-first byte convention of radixkey.Uint64Key.
type indexedUint64Key struct{}

func (indexedUint64Key) Levels() int { return 8 }

func (indexedUint64Key) ByteAt(v indexedUint64, level int) byte {
	return radixkey.Uint64Key{}.ByteAt(v.key, level)
}

// radixSortInt64 returns the permutation that sorts data, biasing signed
// values into an unsigned key space so their lexicographic byte order
// matches numeric order.
func radixSortInt64(data []int64, ascending bool) []int {
	keys := make([]uint64, len(data))
	for i, v := range data {
		keys[i] = uint64(v) ^ 0x8000000000000000
	}
	return radixArgsortUint64(keys, ascending)
}

// radixSortFloat64 returns the permutation that sorts data, transforming the
// IEEE-754 representation so unsigned comparison matches float order.
func radixSortFloat64(data []float64, ascending bool) []int {
	keys := make([]uint64, len(data))
	for i, v := range data {
		bits := math.Float64bits(v)
		if bits>>63 == 0 {
			keys[i] = bits ^ 0x8000000000000000
		} else {
			keys[i] = ^bits
		}
	}
	return radixArgsortUint64(keys, ascending)
}

// radixArgsortUint64 returns the indices that would sort keys, delegating
// the actual byte-level work to the go-radixsort core. The core sort is
// unstable, so rows with equal keys may come back in a different relative
// order than before; SortByColumn never promised stability across ties.
func radixArgsortUint64(keys []uint64, ascending bool) []int {
	n := len(keys)
	if n == 0 {
		return nil
	}

	items := make([]indexedUint64, n)
	for i, k := range keys {
		items[i] = indexedUint64{key: k, row: i}
	}

	radixsort.Sort(items, indexedUint64Key{})

	indices := make([]int, n)
	if ascending {
		for i, it := range items {
			indices[i] = it.row
		}
	} else {
		for i, it := range items {
			indices[n-1-i] = it.row
		}
	}
	return indices
}

// ParallelRadixSortUint64 sorts keys and returns the argsort permutation.
// The go-radixsort core already picks its own threading strategy per input
// size, so there is no separate serial/parallel entry point to choose
// between here anymore.
func ParallelRadixSortUint64(keys []uint64, ascending bool) []int {
	return radixArgsortUint64(keys, ascending)
}
