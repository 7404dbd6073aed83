package sorts

import "go-radixsort/radixkey"

// Regions partitions bucket in place at level using the byte buckets
// themselves as the movement graph's "equal size" regions — a reasonable
// stand-in in the large, roughly-uniform inputs Regions sort is tuned for,
// where per-byte counts cluster close to n/256 anyway. It scans every
// region once to build a debt graph (debt[b][t] counts how many of region
// b's current elements are destined for region t), then resolves direct
// two-region cycles — debt[b][t] and debt[t][b] both nonzero — with a
// single batched span of pairwise swaps instead of leaving them to a
// single-element sweep. Whatever the 2-cycle pass can't clear (longer
// cycles, or leftover imbalance once the smaller side of a 2-cycle is
// exhausted) falls through to Ska, whose cycle-following swap always
// finishes correctly regardless of what state it's handed.
//
// Graph traversal order beyond resolving 2-cycles first is not exact; the
// only contract is that every element ends up in its destination region.
func Regions[T any](bucket []T, key radixkey.Key[T], level int, prefixSums, endOffsets [256]int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	heads := prefixSums
	var debt [256][256]int
	for b := 0; b < 256; b++ {
		for i := heads[b]; i < endOffsets[b]; i++ {
			t := key.ByteAt(bucket[i], level)
			debt[b][t]++
		}
	}

	for b := 0; b < 256; b++ {
		for t := b + 1; t < 256; t++ {
			k := debt[b][t]
			if debt[t][b] < k {
				k = debt[t][b]
			}
			if k == 0 {
				continue
			}
			swapMismatchedRegions(bucket, key, level, b, t, k, heads, endOffsets)
		}
	}

	Ska(bucket, key, level, heads, endOffsets)
}

// swapMismatchedRegions exchanges up to k elements of region b destined
// for region t with elements of region t destined for region b, scanning
// forward from each region's start. It never moves an element already in
// its home region, and leaves anything it can't pair off for Ska's
// fallback sweep to finish.
func swapMismatchedRegions[T any](bucket []T, key radixkey.Key[T], level int, b, t, k int, starts, ends [256]int) {
	bi := starts[b]
	ti := starts[t]
	moved := 0
	for moved < k {
		for bi < ends[b] && key.ByteAt(bucket[bi], level) != byte(t) {
			bi++
		}
		for ti < ends[t] && key.ByteAt(bucket[ti], level) != byte(b) {
			ti++
		}
		if bi >= ends[b] || ti >= ends[t] {
			return
		}
		bucket[bi], bucket[ti] = bucket[ti], bucket[bi]
		bi++
		ti++
		moved++
	}
}
