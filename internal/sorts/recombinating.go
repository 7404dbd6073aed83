package sorts

import (
	"go-radixsort/internal/pool"
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

// Recombinating splits src into tiles of tileSize and, for each tile,
// locally reorders that tile's own elements into 256 contiguous runs
// (using only the tile's own histogram, tileCounts[t]) before copying each
// run directly into its final position in dst. This differs from MTLSB,
// which scatters element by element straight from src into dst: here every
// tile first pays for a small local partition into a tile-sized scratch
// buffer, then moves data only in whole per-byte runs. The local partition
// is the same tile-local-histogram-into-prefix-sums scatter MTLSB performs
// globally, just run once per tile against its own counts; "recombining"
// refers to the second step, where the worker already knows both the
// global prefix sums (from every tile's counts) and its own tile's counts,
// so it can place each of its 256 local runs at the correct global offset
// without any cross-tile coordination.
//
// This is worthwhile when per-element scatter's cache-line traffic (one
// random write per element, as in MTLSB) costs more than a local
// partition pass plus a handful of block copies.
func Recombinating[T any](p *pool.Pool, src, dst []T, key radixkey.Key[T], level int, tileCounts [][256]int, tileSize int) {
	n := len(src)
	if n == 0 {
		return
	}

	global := sortutil.AggregateTileCounts(tileCounts)
	globalPrefix := sortutil.PrefixSums(global)
	subOffsets := sortutil.TileSubOffsets(tileCounts, globalPrefix)

	numTiles := len(tileCounts)

	partitionTile := func(t int) {
		start := t * tileSize
		end := start + tileSize
		if end > n {
			end = n
		}
		if start >= end {
			return
		}
		tile := src[start:end]

		local := make([]T, len(tile))
		localPrefix := sortutil.PrefixSums(tileCounts[t])
		for _, v := range tile {
			b := key.ByteAt(v, level)
			local[localPrefix[b]] = v
			localPrefix[b]++
		}

		offsets := subOffsets[t]
		counts := tileCounts[t]
		runStart := 0
		for b := 0; b < 256; b++ {
			c := counts[b]
			if c == 0 {
				continue
			}
			dstStart := offsets[b]
			copy(dst[dstStart:dstStart+c], local[runStart:runStart+c])
			runStart += c
		}
	}

	if p == nil || p.Workers() < 2 || numTiles < 2 {
		for t := 0; t < numTiles; t++ {
			partitionTile(t)
		}
		return
	}

	g := p.NewGroup()
	for t := 0; t < numTiles; t++ {
		t := t
		g.Go(func() { partitionTile(t) })
	}
	g.Wait()
}
