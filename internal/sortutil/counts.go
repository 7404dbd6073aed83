// Package sortutil implements the counting, prefix-sum, tiling and
// plateau-detection primitives shared by every bucketing algorithm in
// internal/sorts.
package sortutil

import (
	"go-radixsort/internal/pool"
	"go-radixsort/radixkey"
)

// parallelCountThreshold is the bucket size below which Count falls back
// to the serial path even when a pool is available: below it, spinning up
// goroutines costs more than the serial histogram pass it would replace.
const parallelCountThreshold = 400_000

// tilesPerWorker is the small constant k: the bucket is split into
// threads*k tiles for the parallel counting pass.
const tilesPerWorker = 8

// Count produces the 256-bin histogram of the level-th byte across
// bucket. The inner loop unrolls into four independent accumulators,
// merged at the end, to avoid store-to-load forwarding stalls on
// repeated histogram increments.
func Count[T any](bucket []T, key radixkey.Key[T], level int) [256]int {
	var c0, c1, c2, c3 [256]int

	n := len(bucket)
	i := 0
	for ; i+3 < n; i += 4 {
		c0[key.ByteAt(bucket[i], level)]++
		c1[key.ByteAt(bucket[i+1], level)]++
		c2[key.ByteAt(bucket[i+2], level)]++
		c3[key.ByteAt(bucket[i+3], level)]++
	}
	for ; i < n; i++ {
		c0[key.ByteAt(bucket[i], level)]++
	}

	for b := 0; b < 256; b++ {
		c0[b] += c1[b] + c2[b] + c3[b]
	}
	return c0
}

// ParallelCount splits bucket into threads*tilesPerWorker contiguous
// tiles, counts each on p, and reduces columnwise. Below
// parallelCountThreshold elements, or with a nil/single-worker pool, it
// falls back to the serial Count so small buckets don't pay fork/join
// overhead. The result is deterministic for a given input: tile
// boundaries are a pure function of len(bucket) and the worker count.
func ParallelCount[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level int) [256]int {
	if p == nil || p.Workers() < 2 || len(bucket) < parallelCountThreshold {
		return Count(bucket, key, level)
	}

	tileCounts := TileCounts(p, bucket, key, level, tileSize(len(bucket), p.Workers()))
	return AggregateTileCounts(tileCounts)
}

// tileSize picks ceil(n / (threads*tilesPerWorker)), floored at 1.
func tileSize(n, threads int) int {
	divisor := threads * tilesPerWorker
	if divisor < 1 {
		divisor = 1
	}
	size := cdiv(n, divisor)
	if size < 1 {
		size = 1
	}
	return size
}

func cdiv(a, b int) int {
	return (a + b - 1) / b
}

// IsHomogeneous reports whether at most one of the 256 counts is
// nonzero — every element in the bucket already shares this byte.
func IsHomogeneous(counts [256]int) bool {
	seen := false
	for _, c := range counts {
		if c > 0 {
			if seen {
				return false
			}
			seen = true
		}
	}
	return true
}
