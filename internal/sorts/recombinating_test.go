package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/pool"
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

func TestRecombinatingPartitionsByLevel(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(100_000, 50)
	before := countMultiset(data)

	p := pool.New(4)
	tileSize := sortutil.TileSize(len(data), p.Workers())
	tileCounts := sortutil.TileCounts(p, data, key, 1, tileSize)
	counts := sortutil.AggregateTileCounts(tileCounts)

	dst := make([]uint32, len(data))
	Recombinating(p, data, dst, key, 1, tileCounts, tileSize)

	assert.Equal(t, before, countMultiset(dst))
	assert.True(t, assertPartitioned(dst, key, 1, counts))
}

func TestRecombinatingSingleTile(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(500, 51)
	before := countMultiset(data)

	p := pool.New(1)
	tileSize := len(data)
	tileCounts := sortutil.TileCounts(p, data, key, 0, tileSize)
	counts := sortutil.AggregateTileCounts(tileCounts)

	dst := make([]uint32, len(data))
	Recombinating(p, data, dst, key, 0, tileCounts, tileSize)

	assert.Equal(t, before, countMultiset(dst))
	assert.True(t, assertPartitioned(dst, key, 0, counts))
}

func TestRecombinatingEmpty(t *testing.T) {
	key := radixkey.Uint32Key{}
	p := pool.New(4)

	empty := []uint32{}
	dst := []uint32{}
	Recombinating(p, empty, dst, key, 0, nil, 16)
	assert.Empty(t, dst)
}
