package radixsort

import (
	"go-radixsort/internal/pool"
	"go-radixsort/internal/sorts"
	"go-radixsort/internal/sortutil"
	"go-radixsort/internal/tuner"
	"go-radixsort/radixkey"
)

// parallelRecurseThreshold is the sub-bucket size below which the director
// recurses on the calling goroutine instead of handing the work to the
// pool: below it, goroutine scheduling overhead exceeds the work being
// parallelized.
const parallelRecurseThreshold = 4096

// bounds is a sub-bucket's [start, end) range within the bucket the
// director is currently working on, produced by partitioning at level.
type bounds struct {
	start, end int
}

// direct runs one level of the director's recursive dispatch over bucket:
// count, short-circuit on a homogeneous byte, consult the tuner, run the
// chosen algorithm, then recurse into every non-trivial sub-bucket at
// level+1.
func direct[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level, totalLevels, parentLen int, inPlace bool) {
	n := len(bucket)
	if n <= 1 {
		return
	}

	counts := sortutil.ParallelCount(p, bucket, key, level)

	if sortutil.IsHomogeneous(counts) {
		if level < totalLevels-1 {
			direct(p, bucket, key, level+1, totalLevels, parentLen, inPlace)
		}
		return
	}

	params := tuner.Params{
		Threads:     p.Workers(),
		Level:       level,
		TotalLevels: totalLevels,
		InputLen:    n,
		ParentLen:   parentLen,
		InPlace:     inPlace,
	}
	algo := tuner.Pick(params, counts)

	if algo == tuner.Comparative {
		sorts.Comparative(bucket, key, level)
		return
	}

	subBounds := runAlgorithm(p, bucket, key, level, counts, algo)

	if level == totalLevels-1 {
		return
	}

	recurseSubBuckets(p, bucket, key, level, totalLevels, n, inPlace, subBounds)
}

// runAlgorithm dispatches to the internal/sorts primitive the tuner chose
// and returns the 256 sub-bucket boundaries the next recursion level needs.
// Every non-Comparative algorithm partitions bucket by the byte at level
// and leaves each sub-range independently sortable at level+1; only the
// partitioning technique differs per algorithm.
func runAlgorithm[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level int, counts [256]int, algo tuner.Algorithm) [256]bounds {
	prefixSums := sortutil.PrefixSums(counts)
	endOffsets := sortutil.EndOffsets(counts, prefixSums)

	switch algo {
	case tuner.LrLsb:
		sorts.LRLSB(bucket, key, level, counts)
	case tuner.Lsb:
		sorts.LSB(bucket, key, level, counts)
	case tuner.Ska:
		runInPlace(bucket, key, level, counts, sorts.Ska[T])
	case tuner.Regions:
		runInPlace(bucket, key, level, counts, sorts.Regions[T])
	case tuner.Scanning:
		sorts.Scanning(p, bucket, key, level, counts)
	case tuner.MtLsb:
		runTiled(p, bucket, key, level, counts, sorts.MTLSB[T])
	case tuner.Recombinating:
		runTiled(p, bucket, key, level, counts, sorts.Recombinating[T])
	}

	var out [256]bounds
	for b := 0; b < 256; b++ {
		out[b] = bounds{prefixSums[b], endOffsets[b]}
	}
	return out
}

// runInPlace wires plateau detection into an in-place single-level
// algorithm (Ska, Regions): long coherent runs are block-moved into place
// before the algorithm's own cycle-following sweep, so the sweep only has
// to resolve whatever the plateau pass didn't already place.
func runInPlace[T any](bucket []T, key radixkey.Key[T], level int, counts [256]int, alg func([]T, radixkey.Key[T], int, [256]int, [256]int)) {
	plateaus := sortutil.DetectPlateaus(bucket, key, level)
	prefixSums, endOffsets := sortutil.ApplyPlateaus(bucket, counts, plateaus)
	alg(bucket, key, level, prefixSums, endOffsets)
}

// runTiled wires a tile-counting pre-pass into a tiled, pool-parallel
// single-level algorithm (MT-LSB, Recombinating): both partition by tile
// histograms into a scratch buffer, then copy the result back into bucket.
func runTiled[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level int, counts [256]int, alg func(*pool.Pool, []T, []T, radixkey.Key[T], int, [][256]int, int)) {
	n := len(bucket)
	workers := 1
	if p != nil {
		workers = p.Workers()
	}
	tileSize := sortutil.TileSize(n, workers)
	tileCounts := sortutil.TileCounts(p, bucket, key, level, tileSize)

	scratch := make([]T, n)
	alg(p, bucket, scratch, key, level, tileCounts, tileSize)
	copy(bucket, scratch)
}

// recurseSubBuckets walks the 256 sub-ranges runAlgorithm produced and
// sorts each at level+1, skipping empty and singleton ranges (already
// trivially sorted). Ranges at or above parallelRecurseThreshold are handed to
// the pool when one is available with spare workers; everything else runs
// inline to avoid paying goroutine overhead for small sub-buckets.
func recurseSubBuckets[T any](p *pool.Pool, bucket []T, key radixkey.Key[T], level, totalLevels, parentLen int, inPlace bool, subBounds [256]bounds) {
	nextLevel := level + 1

	useParallel := p != nil && p.Workers() > 1

	var g *pool.Group
	if useParallel {
		g = p.NewGroup()
	}

	for b := 0; b < 256; b++ {
		r := subBounds[b]
		length := r.end - r.start
		if length <= 1 {
			continue
		}
		sub := bucket[r.start:r.end]

		if useParallel && length >= parallelRecurseThreshold {
			g.Go(func() { direct(p, sub, key, nextLevel, totalLevels, parentLen, inPlace) })
			continue
		}
		direct(p, sub, key, nextLevel, totalLevels, parentLen, inPlace)
	}

	if useParallel {
		g.Wait()
	}
}
