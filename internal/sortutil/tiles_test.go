package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/pool"
	"go-radixsort/radixkey"
)

func TestTiledCountingConsistency(t *testing.T) {
	key := radixkey.Uint32Key{}

	for _, n := range []int{0, 1, 7, 100, 1_000, 12_345} {
		data := randomUint32s(n, int64(n)+1)
		want := Count(data, key, 2)

		for _, tileSize := range []int{1, 7, 64, 1000} {
			tiles := TileCounts(pool.New(4), data, key, 2, tileSize)
			got := AggregateTileCounts(tiles)
			assert.Equal(t, want, got, "n=%d tileSize=%d", n, tileSize)
		}
	}
}

func TestTileSubOffsetsPartitionsGlobalPrefixSums(t *testing.T) {
	tileCounts := [][256]int{
		{0: 2, 1: 3},
		{0: 1, 1: 4},
		{0: 5, 1: 0},
	}
	global := AggregateTileCounts(tileCounts)
	globalPrefix := PrefixSums(global)

	sub := TileSubOffsets(tileCounts, globalPrefix)

	assert.Equal(t, globalPrefix[0], sub[0][0])
	assert.Equal(t, globalPrefix[0]+2, sub[1][0])
	assert.Equal(t, globalPrefix[0]+2+1, sub[2][0])

	assert.Equal(t, globalPrefix[1], sub[0][1])
	assert.Equal(t, globalPrefix[1]+3, sub[1][1])
	assert.Equal(t, globalPrefix[1]+3+4, sub[2][1])
}

func TestTileSizeFlooredAtOne(t *testing.T) {
	assert.Equal(t, 1, TileSize(0, 8))
	assert.Equal(t, 5, TileSize(5, 0))
	assert.Equal(t, 13, TileSize(100, 8))
}
