package sorts

import (
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

// LSBPass scatters every element of src into dst according to the
// level-th byte, using prefixSums (mutated in place) as the per-bucket
// write head. This is a single-pass out-of-place scatter over any Key[T].
func LSBPass[T any](src, dst []T, key radixkey.Key[T], level int, prefixSums [256]int) {
	for _, v := range src {
		b := key.ByteAt(v, level)
		dst[prefixSums[b]] = v
		prefixSums[b]++
	}
}

// LSB runs a single LSB pass at level using a freshly allocated scratch
// buffer, then copies the result back into bucket. It partitions by that
// one level only; the director uses it at any depth and recurses into the
// resulting sub-buckets while levels remain.
func LSB[T any](bucket []T, key radixkey.Key[T], level int, counts [256]int) {
	if len(bucket) < 2 {
		return
	}
	scratch := make([]T, len(bucket))
	LSBPass(bucket, scratch, key, level, sortutil.PrefixSums(counts))
	copy(bucket, scratch)
}

// LSBMultiLevel sorts bucket over levels [fromLevel, toLevel] (inclusive,
// LSB-first: fromLevel should be the highest level number, toLevel the
// lowest) by running one LSB pass per level, alternating src/dst buffers
// so no extra copy is needed between passes. After an odd number of
// passes the result lives in the scratch buffer, so a final copy restores
// it to bucket — mirroring mt_lsb_sort_adapter's invert bookkeeping.
func LSBMultiLevel[T any](bucket []T, key radixkey.Key[T], fromLevel, toLevel int) {
	n := len(bucket)
	if n < 2 || fromLevel < toLevel {
		return
	}

	scratch := make([]T, n)
	src, dst := bucket, scratch
	passes := 0

	for level := fromLevel; level >= toLevel; level-- {
		counts := sortutil.Count(src, key, level)
		LSBPass(src, dst, key, level, sortutil.PrefixSums(counts))
		src, dst = dst, src
		passes++
	}

	if passes%2 == 1 {
		copy(bucket, src)
	}
}
