package sorts

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/radixkey"
)

func TestComparativeFullyOrdersBucket(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(200, 10)
	before := countMultiset(data)

	Comparative(data, key, 0)

	assert.True(t, sort.SliceIsSorted(data, func(i, j int) bool { return data[i] < data[j] }))
	assert.Equal(t, before, countMultiset(data))
}

func TestComparativeFromNonZeroLevel(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := []uint32{0x01000003, 0x01000001, 0x01000002}
	Comparative(data, key, 1)
	assert.Equal(t, []uint32{0x01000001, 0x01000002, 0x01000003}, data)
}

func TestComparativeEmptyAndSingleton(t *testing.T) {
	key := radixkey.Uint32Key{}
	empty := []uint32{}
	Comparative(empty, key, 0)
	assert.Empty(t, empty)

	single := []uint32{42}
	Comparative(single, key, 0)
	assert.Equal(t, []uint32{42}, single)
}
