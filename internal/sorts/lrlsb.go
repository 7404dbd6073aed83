package sorts

import (
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

// LRLSB runs a single out-of-place LSB pass like LSB, but scatters from
// both ends of src simultaneously: a left write head (from the prefix
// sums) and a right write head (from the end offsets) advance toward
// each other, filling every output bucket from both directions. This
// keeps the two write heads of any one bucket in separate cache lines
// most of the time, trading a little extra bookkeeping for lower
// last-level latency on medium inputs.
func LRLSB[T any](bucket []T, key radixkey.Key[T], level int, counts [256]int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	prefixSums := sortutil.PrefixSums(counts)
	endOffsets := sortutil.EndOffsets(counts, prefixSums)
	// endOffsets[b] is an exclusive bound; the right write head for
	// bucket b starts one below it.
	var rightHeads [256]int
	for b := 0; b < 256; b++ {
		rightHeads[b] = endOffsets[b] - 1
	}
	leftHeads := prefixSums

	scratch := make([]T, n)

	left := 0
	right := n - 1
	for left < right {
		lb := key.ByteAt(bucket[left], level)
		scratch[leftHeads[lb]] = bucket[left]
		leftHeads[lb]++
		left++

		rb := key.ByteAt(bucket[right], level)
		scratch[rightHeads[rb]] = bucket[right]
		rightHeads[rb]--
		right--
	}
	if left == right {
		b := key.ByteAt(bucket[left], level)
		scratch[leftHeads[b]] = bucket[left]
	}

	copy(bucket, scratch)
}
