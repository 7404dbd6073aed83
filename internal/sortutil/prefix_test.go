package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixSumsStartsAtZero(t *testing.T) {
	var counts [256]int
	counts[0] = 3
	counts[1] = 5
	counts[255] = 2

	sums := PrefixSums(counts)
	assert.Equal(t, 0, sums[0])
	assert.Equal(t, 3, sums[1])
	assert.Equal(t, 8, sums[2])
}

func TestEndOffsetsMatchNextPrefixSum(t *testing.T) {
	var counts [256]int
	counts[10] = 4
	counts[11] = 6
	counts[200] = 9

	sums := PrefixSums(counts)
	ends := EndOffsets(counts, sums)

	total := 0
	for _, c := range counts {
		total += c
	}

	for b := 0; b < 255; b++ {
		assert.Equal(t, sums[b+1], ends[b], "end offset %d should equal prefix sum %d", b, b+1)
	}
	assert.Equal(t, total, ends[255])
}
