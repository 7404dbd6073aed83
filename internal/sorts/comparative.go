// Package sorts implements the byte-bucketing algorithm family the
// director dispatches to: a comparative fallback for tiny buckets, and
// the LSB/LR-LSB/MT-LSB/Ska/Scanning/Recombinating/Regions family for
// everything else.
package sorts

import (
	"sort"

	"go-radixsort/radixkey"
)

// ComparativeThreshold is the bucket length at or below which Comparative
// is used instead of a radix pass: below it, radix overhead and cache
// pollution dominate the cost of a plain comparison sort.
const ComparativeThreshold = 128

// Comparative sorts bucket in place using a total order over
// concat(ByteAt(v,0), ByteAt(v,1), ..., ByteAt(v,Levels-1)), starting
// comparison at fromLevel (the director has already partitioned on
// levels before fromLevel, so only the remaining levels need comparing).
// It is a plain sort.Slice fallback, generalized to any Key[T] and any
// starting level.
func Comparative[T any](bucket []T, key radixkey.Key[T], fromLevel int) {
	levels := key.Levels()
	sort.Slice(bucket, func(i, j int) bool {
		for l := fromLevel; l < levels; l++ {
			bi := key.ByteAt(bucket[i], l)
			bj := key.ByteAt(bucket[j], l)
			if bi != bj {
				return bi < bj
			}
		}
		return false
	})
}
