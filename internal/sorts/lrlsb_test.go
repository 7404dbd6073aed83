package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

func TestLRLSBPartitionsByLevel(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(5_001, 13)
	before := countMultiset(data)
	counts := sortutil.Count(data, key, 1)

	LRLSB(data, key, 1, counts)

	assert.Equal(t, before, countMultiset(data))
	assert.True(t, assertPartitioned(data, key, 1, counts))
}

func TestLRLSBOddLength(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(4_001, 14)
	before := countMultiset(data)
	counts := sortutil.Count(data, key, 0)

	LRLSB(data, key, 0, counts)

	assert.Equal(t, before, countMultiset(data))
	assert.True(t, assertPartitioned(data, key, 0, counts))
}

func TestLRLSBEmptyAndSingleton(t *testing.T) {
	key := radixkey.Uint32Key{}
	var counts [256]int

	empty := []uint32{}
	LRLSB(empty, key, 0, counts)
	assert.Empty(t, empty)

	single := []uint32{5}
	counts[key.ByteAt(5, 0)] = 1
	LRLSB(single, key, 0, counts)
	assert.Equal(t, []uint32{5}, single)
}
