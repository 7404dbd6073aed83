package sortutil

import "go-radixsort/radixkey"

// Plateau is a contiguous run [Start, End) of elements that all share
// Byte at the level DetectPlateaus was called with.
type Plateau struct {
	Byte  byte
	Start int
	End   int
}

// plateauMinSamples guards against the detection sweep itself costing
// more than the block moves it enables on small buckets.
const plateauMinSamples = 128

// DetectPlateaus samples bucket at stride len>>4 looking for repeated
// bytes, then extends each candidate run left and right until the byte
// changes. Returns nothing if the minimum plateau size would be smaller
// than plateauMinSamples elements.
func DetectPlateaus[T any](bucket []T, key radixkey.Key[T], level int) []Plateau {
	n := len(bucket)
	minSize := n >> 4
	if minSize < plateauMinSamples {
		return nil
	}

	type candidate struct {
		b              byte
		sl, sr, el, er int
	}
	var candidates []candidate

	current := byte(0)
	haveCurrent := false
	start, end := 0, 0
	for i := 0; i < n; i += minSize {
		b := key.ByteAt(bucket[i], level)
		if haveCurrent && b == current {
			end = i
		} else {
			if haveCurrent && start != end {
				candidates = append(candidates, candidate{current, start, start, end, end})
			}
			current = b
			haveCurrent = true
			start = i
			end = i
		}
	}

	var plateaus []Plateau
	for _, c := range candidates {
		sl, sr, el, er := c.sl, c.sr, c.el, c.er

		for i := sl; i > 0; {
			i--
			if key.ByteAt(bucket[i], level) != c.b {
				sl = i + 1
				break
			}
			sl = i
		}

		for i := sr; i < n-1; {
			i++
			if key.ByteAt(bucket[i], level) != c.b {
				sr = i
				break
			}
			sr = i
		}

		if sr > er {
			plateaus = append(plateaus, Plateau{c.b, sl, sr})
			continue
		} else if sr-sl >= minSize {
			plateaus = append(plateaus, Plateau{c.b, sl, sr})
		}

		if el-sr < minSize {
			continue
		}

		for i := el; i > sr; {
			i--
			if key.ByteAt(bucket[i], level) != c.b {
				el = i + 1
				break
			}
			el = i
		}

		for i := er; i < n-1; {
			i++
			if key.ByteAt(bucket[i], level) != c.b {
				er = i
				break
			}
			er = i
		}

		if er-el >= minSize {
			plateaus = append(plateaus, Plateau{c.b, el, er})
		}
	}

	return plateaus
}

// ApplyPlateaus moves each detected plateau directly into its final
// position ahead of the regular scatter pass, handling the three overlap
// relations with its destination range: already in place (skip),
// disjoint (block swap), and partial overlap (swap only the
// non-overlapping tails). A plateau whose range an earlier move has
// already rewritten is skipped. Returns the prefix sums and end offsets,
// advanced past the plateaus it placed, so the caller's subsequent
// scatter pass only needs to handle the remaining elements.
func ApplyPlateaus[T any](bucket []T, counts [256]int, plateaus []Plateau) ([256]int, [256]int) {
	prefixSums := PrefixSums(counts)
	endOffsets := EndOffsets(counts, prefixSums)

	// touched holds every range an earlier move rewrote.
	var touched [][2]int
	for _, pl := range plateaus {
		l, r := pl.Start, pl.End
		stale := false
		for _, t := range touched {
			if l < t[1] && t[0] < r {
				stale = true
				break
			}
		}
		if stale {
			continue
		}
		length := r - l
		writeStart := prefixSums[pl.Byte]
		writeEnd := writeStart + length
		prefixSums[pl.Byte] += length
		touched = append(touched, [2]int{l, r}, [2]int{writeStart, writeEnd})

		switch {
		case l == writeStart && r == writeEnd:
			// already in place
		case r < writeStart || l > writeEnd:
			// disjoint: block swap
			swapRanges(bucket, l, r, writeStart, writeEnd)
		case r < writeEnd:
			// right side of the plateau overlaps the write area
			swapRanges(bucket, l, writeStart, r, writeEnd)
		default:
			// left side of the plateau overlaps the write area
			swapRanges(bucket, writeEnd, r, writeStart, l)
		}
	}

	return prefixSums, endOffsets
}

// swapRanges exchanges bucket[aStart:aEnd] with bucket[bStart:bEnd]; the
// two ranges must be equal length and non-overlapping.
func swapRanges[T any](bucket []T, aStart, aEnd, bStart, bEnd int) {
	length := aEnd - aStart
	if length <= 0 || bEnd-bStart != length {
		return
	}
	tmpA := make([]T, length)
	copy(tmpA, bucket[aStart:aEnd])
	copy(bucket[aStart:aEnd], bucket[bStart:bEnd])
	copy(bucket[bStart:bEnd], tmpA)
}
