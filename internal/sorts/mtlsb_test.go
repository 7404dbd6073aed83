package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-radixsort/internal/pool"
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

func TestMTLSBPartitionsByLevel(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(50_000, 20)
	before := countMultiset(data)

	p := pool.New(4)
	tileSize := sortutil.TileSize(len(data), p.Workers())
	tileCounts := sortutil.TileCounts(p, data, key, 0, tileSize)
	counts := sortutil.AggregateTileCounts(tileCounts)

	dst := make([]uint32, len(data))
	MTLSB(p, data, dst, key, 0, tileCounts, tileSize)

	assert.Equal(t, before, countMultiset(dst))
	assert.True(t, assertPartitioned(dst, key, 0, counts))
}

func TestMTLSBSingleWorkerMatchesMultiWorker(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(20_000, 21)

	run := func(p *pool.Pool) []uint32 {
		tileSize := sortutil.TileSize(len(data), p.Workers())
		tileCounts := sortutil.TileCounts(p, data, key, 0, tileSize)
		dst := make([]uint32, len(data))
		MTLSB(p, data, dst, key, 0, tileCounts, tileSize)
		return dst
	}

	single := run(pool.New(1))
	multi := run(pool.New(8))
	assert.ElementsMatch(t, single, multi)
}

func TestMTLSBAdapterFullySorts(t *testing.T) {
	key := radixkey.Uint32Key{}
	data := randomUint32s(40_000, 22)
	before := countMultiset(data)

	p := pool.New(4)
	tileSize := sortutil.TileSize(len(data), p.Workers())
	MTLSBAdapter(p, data, key, 3, 0, tileSize)

	assert.Equal(t, before, countMultiset(data))
	for i := 0; i < len(data)-1; i++ {
		assert.LessOrEqual(t, data[i], data[i+1])
	}
}

func TestMTLSBAdapterEmptyAndSingleton(t *testing.T) {
	key := radixkey.Uint32Key{}
	p := pool.New(4)

	empty := []uint32{}
	MTLSBAdapter(p, empty, key, 3, 0, 16)
	assert.Empty(t, empty)

	single := []uint32{3}
	MTLSBAdapter(p, single, key, 3, 0, 16)
	assert.Equal(t, []uint32{3}, single)
}
