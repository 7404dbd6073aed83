package sortutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/pool"
	"go-radixsort/radixkey"
)

func randomUint32s(n int, seed int64) []uint32 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

func TestCountMatchesNaiveHistogram(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(10_000, 1)

	var want [256]int
	for _, v := range data {
		want[key.ByteAt(v, 1)]++
	}

	got := Count(data, key, 1)
	assert.Equal(t, want, got)
}

func TestCountHandlesRemainderNotMultipleOfFour(t *testing.T) {
	key := radixkey.Uint8Key{}
	data := []uint8{1, 2, 3, 1, 2, 1, 7}
	got := Count(data, key, 0)
	assert.Equal(t, 3, got[1])
	assert.Equal(t, 2, got[2])
	assert.Equal(t, 1, got[3])
	assert.Equal(t, 1, got[7])
}

func TestParallelCountMatchesSerialCount(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(500_000, 2)

	want := Count(data, key, 0)
	got := ParallelCount(pool.New(8), data, key, 0)
	assert.Equal(t, want, got)
}

func TestParallelCountFallsBackBelowThreshold(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(100, 3)

	want := Count(data, key, 0)
	got := ParallelCount(pool.New(8), data, key, 0)
	assert.Equal(t, want, got)
}

func TestIsHomogeneous(t *testing.T) {
	var allZero [256]int
	allZero[5] = 10
	assert.True(t, IsHomogeneous(allZero))

	var mixed [256]int
	mixed[5] = 10
	mixed[6] = 1
	assert.False(t, IsHomogeneous(mixed))

	var empty [256]int
	assert.True(t, IsHomogeneous(empty))
}
