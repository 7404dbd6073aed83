package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

func TestRegionsPartitionsInPlace(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(20_000, 60)
	before := countMultiset(data)

	counts := sortutil.Count(data, key, 0)
	prefixSums := sortutil.PrefixSums(counts)
	endOffsets := sortutil.EndOffsets(counts, prefixSums)

	Regions(data, key, 0, prefixSums, endOffsets)

	assert.Equal(t, before, countMultiset(data))
	assert.True(t, assertPartitioned(data, key, 0, counts))
}

func TestRegionsHandlesMutualTwoCycles(t *testing.T) {
	key := radixkey.Uint8Key{}
	// Region 0 holds mostly byte-1 elements and region 1 holds mostly
	// byte-0 elements: a direct 2-cycle in the movement graph.
	data := make([]uint8, 0, 200)
	for i := 0; i < 90; i++ {
		data = append(data, 1)
	}
	for i := 0; i < 10; i++ {
		data = append(data, 0)
	}
	for i := 0; i < 90; i++ {
		data = append(data, 0)
	}
	for i := 0; i < 10; i++ {
		data = append(data, 1)
	}

	before := countMultiset32From8(data)
	var counts [256]int
	for _, v := range data {
		counts[v]++
	}
	prefixSums := sortutil.PrefixSums(counts)
	endOffsets := sortutil.EndOffsets(counts, prefixSums)

	Regions(data, key, 0, prefixSums, endOffsets)

	assert.Equal(t, before, countMultiset32From8(data))
	assert.True(t, assertPartitionedUint8(data, key, 0, counts))
}

func TestRegionsEmptyAndSingleton(t *testing.T) {
	key := radixkey.Uint32Key{}
	var counts [256]int

	empty := []uint32{}
	Regions(empty, key, 0, counts, counts)
	assert.Empty(t, empty)

	single := []uint32{3}
	counts[key.ByteAt(3, 0)] = 1
	prefixSums := sortutil.PrefixSums(counts)
	endOffsets := sortutil.EndOffsets(counts, prefixSums)
	Regions(single, key, 0, prefixSums, endOffsets)
	assert.Equal(t, []uint32{3}, single)
}
