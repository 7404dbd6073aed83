package radixkey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bytesOf returns the full byte sequence a Key[T] produces for v, in
// level order — the "concat_levels" comparator the sort's order
// invariant is defined against.
func bytesOf[T any](key Key[T], v T) []byte {
	out := make([]byte, key.Levels())
	for l := 0; l < key.Levels(); l++ {
		out[l] = key.ByteAt(v, l)
	}
	return out
}

func lessBytes(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestUint32KeyOrdersLikeUint32(t *testing.T) {
	key := Uint32Key{}
	pairs := [][2]uint32{{0, 1}, {1, 256}, {0xFFFFFFFF - 1, 0xFFFFFFFF}, {0, 0xFFFFFFFF}}
	for _, p := range pairs {
		assert.True(t, lessBytes(bytesOf[uint32](key, p[0]), bytesOf[uint32](key, p[1])))
	}
}

func TestUint64KeyOrdersLikeUint64(t *testing.T) {
	key := Uint64Key{}
	assert.True(t, lessBytes(bytesOf[uint64](key, 10), bytesOf[uint64](key, 1<<40)))
	assert.False(t, lessBytes(bytesOf[uint64](key, 1<<40), bytesOf[uint64](key, 10)))
}

func TestInt32KeyOrdersAcrossZero(t *testing.T) {
	key := Int32Key{}
	values := []int32{math.MinInt32, -1000, -1, 0, 1, 1000, math.MaxInt32}
	for i := 0; i < len(values)-1; i++ {
		assert.True(t, lessBytes(bytesOf[int32](key, values[i]), bytesOf[int32](key, values[i+1])),
			"expected %d < %d in byte order", values[i], values[i+1])
	}
}

func TestInt64KeyOrdersAcrossZero(t *testing.T) {
	key := Int64Key{}
	values := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	for i := 0; i < len(values)-1; i++ {
		assert.True(t, lessBytes(bytesOf[int64](key, values[i]), bytesOf[int64](key, values[i+1])))
	}
}

func TestFloat32KeyOrdersAcrossZeroAndSign(t *testing.T) {
	key := Float32Key{}
	values := []float32{-100.5, -1, -0.001, 0, 0.001, 1, 100.5}
	for i := 0; i < len(values)-1; i++ {
		assert.True(t, lessBytes(bytesOf[float32](key, values[i]), bytesOf[float32](key, values[i+1])),
			"expected %v < %v in byte order", values[i], values[i+1])
	}
}

func TestFloat64KeyOrdersAcrossZeroAndSign(t *testing.T) {
	key := Float64Key{}
	values := []float64{-100.5, -1, -0.001, 0, 0.001, 1, 100.5}
	for i := 0; i < len(values)-1; i++ {
		assert.True(t, lessBytes(bytesOf[float64](key, values[i]), bytesOf[float64](key, values[i+1])))
	}
}

func TestBytesKeyLevelsMatchesN(t *testing.T) {
	key := BytesKey{N: 4}
	assert.Equal(t, 4, key.Levels())
	v := []byte{1, 2, 3, 4}
	assert.Equal(t, byte(1), key.ByteAt(v, 0))
	assert.Equal(t, byte(4), key.ByteAt(v, 3))
}

func TestUint8KeyIsIdentity(t *testing.T) {
	key := Uint8Key{}
	assert.Equal(t, 1, key.Levels())
	assert.Equal(t, byte(200), key.ByteAt(200, 0))
}
