package sorts

import (
	"go-radixsort/internal/pool"
	"go-radixsort/internal/sortutil"
	"go-radixsort/radixkey"
)

// MTLSB scatters bucket into dst at level using tileCounts (one
// histogram per source tile of size tileSize), parallel across p: each
// output byte b's destination range is split into per-tile sub-slabs
// whose sizes equal the per-tile counts for b, so every worker writes
// into disjoint memory with no cross-thread contention.
func MTLSB[T any](p *pool.Pool, src, dst []T, key radixkey.Key[T], level int, tileCounts [][256]int, tileSize int) {
	n := len(src)
	if n == 0 {
		return
	}

	global := sortutil.AggregateTileCounts(tileCounts)
	globalPrefix := sortutil.PrefixSums(global)
	subOffsets := sortutil.TileSubOffsets(tileCounts, globalPrefix)

	numTiles := len(tileCounts)

	scatterTile := func(t int) {
		start := t * tileSize
		end := start + tileSize
		if end > n {
			end = n
		}
		if start >= end {
			return
		}
		offsets := subOffsets[t]
		for i := start; i < end; i++ {
			b := key.ByteAt(src[i], level)
			dst[offsets[b]] = src[i]
			offsets[b]++
		}
	}

	if p == nil || p.Workers() < 2 || numTiles < 2 {
		for t := 0; t < numTiles; t++ {
			scatterTile(t)
		}
		return
	}

	g := p.NewGroup()
	for t := 0; t < numTiles; t++ {
		t := t
		g.Go(func() { scatterTile(t) })
	}
	g.Wait()
}

// MTLSBAdapter sorts bucket over levels [fromLevel, toLevel] using MTLSB
// passes, alternating src/dst across levels like LSBMultiLevel, and
// restores the caller's buffer with a final parallel copy if an odd
// number of passes was performed — mirroring mt_lsb_sort_adapter's
// invert/par_chunks_mut copy-back.
func MTLSBAdapter[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], fromLevel, toLevel, tileSize int) {
	n := len(bucket)
	if n < 2 || fromLevel < toLevel {
		return
	}

	scratch := make([]T, n)
	src, dst := bucket, scratch
	passes := 0

	for level := fromLevel; level >= toLevel; level-- {
		tiles := sortutil.TileCounts(p, src, key, level, tileSize)
		MTLSB(p, src, dst, key, level, tiles, tileSize)
		src, dst = dst, src
		passes++
	}

	if passes%2 == 1 {
		parallelCopy(p, bucket, src, tileSize)
	}
}

// parallelCopy copies src into dst tile by tile across p.
func parallelCopy[T any](p *pool.Pool, dst, src []T, tileSize int) {
	n := len(dst)
	if tileSize < 1 {
		tileSize = n
		if tileSize < 1 {
			tileSize = 1
		}
	}
	numTiles := (n + tileSize - 1) / tileSize
	if p == nil || p.Workers() < 2 || numTiles < 2 {
		copy(dst, src)
		return
	}

	g := p.NewGroup()
	for t := 0; t < numTiles; t++ {
		start := t * tileSize
		end := start + tileSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		s, e := start, end
		g.Go(func() { copy(dst[s:e], src[s:e]) })
	}
	g.Wait()
}
