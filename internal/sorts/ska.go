package sorts

import "go-radixsort/radixkey"

// Ska sorts bucket in place at level via cycle-following permutation: for
// each bucket b, a write head starts at prefixSums[b] and an end at
// endOffsets[b]. A cursor walks buckets in order; when the bucket at the
// cursor is finished it is skipped, otherwise the element at its write
// head is read, its destination bucket b' is computed, and either the
// write head advances (b' == b) or the element is swapped into b''s
// write head and that head advances instead. This touches each element
// O(1) amortized and needs no scratch buffer.
//
// The cycle-following shape is the same one dataframe/permutation.go's
// inPlacePermuteInt64 and its siblings use (walking a visited bitmap
// following idx[j] chains); here the chain is driven by bucket membership
// instead of a precomputed index array.
func Ska[T any](bucket []T, key radixkey.Key[T], level int, prefixSums, endOffsets [256]int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	writeHeads := prefixSums
	ends := endOffsets

	finished := func(b int) bool { return writeHeads[b] >= ends[b] }

	allDone := func() bool {
		for b := 0; b < 256; b++ {
			if !finished(b) {
				return false
			}
		}
		return true
	}

	for !allDone() {
		for b := 0; b < 256; b++ {
			for !finished(b) {
				v := bucket[writeHeads[b]]
				target := int(key.ByteAt(v, level))
				if target == b {
					writeHeads[b]++
					continue
				}
				// Swap v into target's write head; target's head
				// advances, this bucket's head does not (the slot it
				// just vacated now holds whatever was swapped in, and
				// must be re-examined).
				th := writeHeads[target]
				bucket[writeHeads[b]], bucket[th] = bucket[th], bucket[writeHeads[b]]
				writeHeads[target]++
			}
		}
	}
}
