package sortutil

import (
	"go-radixsort/internal/pool"
	"go-radixsort/radixkey"
)

// TileCounts partitions bucket into ceil(n/tileSize) contiguous tiles and
// returns each tile's 256-histogram, computed in parallel across p. The
// columnar sum of the result equals Count(bucket, key, level) — tiled
// counting consistency.
func TileCounts[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level int, tileSize int) [][256]int {
	if tileSize < 1 {
		tileSize = 1
	}
	n := len(bucket)
	numTiles := cdiv(n, tileSize)
	if numTiles < 1 {
		numTiles = 1
	}
	out := make([][256]int, numTiles)

	if p == nil || p.Workers() < 2 || numTiles < 2 {
		for t := 0; t < numTiles; t++ {
			s, e := tileBounds(t, tileSize, n)
			out[t] = Count(bucket[s:e], key, level)
		}
		return out
	}

	g := p.NewGroup()
	for t := 0; t < numTiles; t++ {
		t := t
		g.Go(func() {
			s, e := tileBounds(t, tileSize, n)
			out[t] = Count(bucket[s:e], key, level)
		})
	}
	g.Wait()
	return out
}

func tileBounds(tile, tileSize, n int) (int, int) {
	start := tile * tileSize
	end := start + tileSize
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	return start, end
}

// AggregateTileCounts sums tile histograms columnwise into a single
// 256-bin histogram.
func AggregateTileCounts(tiles [][256]int) [256]int {
	var out [256]int
	for _, tile := range tiles {
		for b := 0; b < 256; b++ {
			out[b] += tile[b]
		}
	}
	return out
}

// TileSubOffsets computes, for every output byte b and every tile t, the
// starting write offset of tile t's contribution to bucket b inside the
// global destination: the global prefix sum for b, plus the running sum
// of tile counts for b over tiles [0, t). This is the per-tile sub-slab
// layout MT-LSB and Recombinating scatter into, so each worker's tile can
// write its share of every bucket without any cross-thread contention.
func TileSubOffsets(tileCounts [][256]int, globalPrefix [256]int) [][256]int {
	tiles := len(tileCounts)
	out := make([][256]int, tiles)
	for b := 0; b < 256; b++ {
		offset := globalPrefix[b]
		for t := 0; t < tiles; t++ {
			out[t][b] = offset
			offset += tileCounts[t][b]
		}
	}
	return out
}

// TileSize picks ceil(n/threads), floored at 1 — the tile size used by
// the multi-threaded LSB and recombinating algorithms, one tile per
// worker (as opposed to ParallelCount's finer threads*k tiling).
func TileSize(n, threads int) int {
	if threads < 1 {
		threads = 1
	}
	size := cdiv(n, threads)
	if size < 1 {
		size = 1
	}
	return size
}
