package sortutil

// PrefixSums returns, for each bucket i, the sum of counts[0..i): the
// write head for bucket i in an ascending scatter.
func PrefixSums(counts [256]int) [256]int {
	var sums [256]int
	running := 0
	for i, c := range counts {
		sums[i] = running
		running += c
	}
	return sums
}

// EndOffsets returns, for each bucket i, prefixSums[i+1] (closed at
// index 255 with the grand total): the write tail for bucket i.
func EndOffsets(counts [256]int, prefixSums [256]int) [256]int {
	var ends [256]int
	copy(ends[:255], prefixSums[1:256])
	ends[255] = prefixSums[255] + counts[255]
	return ends
}
