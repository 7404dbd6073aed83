package sorts

import (
	"math/rand"

	"go-radixsort/radixkey"
)

// randomUint32s and assertPartitioned are shared by every algorithm test
// in this package: each algorithm partitions a bucket by one byte level,
// and the two properties that must hold afterward are always the same —
// the result is a permutation of the input, and every element sits inside
// the [start, end) range its own byte maps to.

func randomUint32s(n int, seed int64) []uint32 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

func countMultiset(data []uint32) map[uint32]int {
	out := make(map[uint32]int, len(data))
	for _, v := range data {
		out[v]++
	}
	return out
}

// assertPartitioned reports whether, for every byte b, bucket[start:end)
// (as given by prefixSums/endOffsets derived from counts) contains only
// elements whose ByteAt(level) == b.
func assertPartitioned(bucket []uint32, key radixkey.Key[uint32], level int, counts [256]int) bool {
	start := 0
	for b := 0; b < 256; b++ {
		end := start + counts[b]
		for i := start; i < end; i++ {
			if int(key.ByteAt(bucket[i], level)) != b {
				return false
			}
		}
		start = end
	}
	return true
}
