// Package tuner picks which algorithm from internal/sorts the director
// should run on a given bucket, given its size, depth, and distribution —
// a pure decision table keyed on input length, recursion depth, and byte
// distribution, with separate standard and in-place tables.
package tuner

// Algorithm names one of the primitives in internal/sorts.
type Algorithm int

const (
	Comparative Algorithm = iota
	LrLsb
	Lsb
	Ska
	MtLsb
	Recombinating
	Regions
	Scanning
)

func (a Algorithm) String() string {
	switch a {
	case Comparative:
		return "comparative"
	case LrLsb:
		return "lr-lsb"
	case Lsb:
		return "lsb"
	case Ska:
		return "ska"
	case MtLsb:
		return "mt-lsb"
	case Recombinating:
		return "recombinating"
	case Regions:
		return "regions"
	case Scanning:
		return "scanning"
	default:
		return "unknown"
	}
}

// Params is everything the decision table conditions on. Threads is
// carried even though the current tables don't branch on it directly,
// since future tuning may want it; InPlace selects which of the two
// tables is consulted.
type Params struct {
	Threads     int
	Level       int
	TotalLevels int
	InputLen    int
	ParentLen   int
	InPlace     bool
}

// comparativeThreshold mirrors sorts.ComparativeThreshold; duplicated here
// as a literal so this package stays decoupled from internal/sorts (the
// director is the only thing that needs to import both).
const comparativeThreshold = 128

// distributionSampleFloor is the input length below which distribution is
// never checked — below it, the cost of computing distribution_threshold
// isn't worth the signal it would give.
const distributionSampleFloor = 5_000

// Pick runs the standard-mode table if !p.InPlace, else the in-place one.
func Pick(p Params, counts [256]int) Algorithm {
	if p.InPlace {
		return pickInPlace(p, counts)
	}
	return pickStandard(p, counts)
}

func depthOf(p Params) int {
	return p.TotalLevels - p.Level - 1
}

// distributed reports whether at least one byte value holds
// (len/256)*2 elements or more — a skewed, distribution-favoring
// histogram.
func distributed(inputLen int, counts [256]int) bool {
	if inputLen < distributionSampleFloor {
		return false
	}
	threshold := (inputLen / 256) * 2
	for _, c := range counts {
		if c >= threshold {
			return true
		}
	}
	return false
}

func pickStandard(p Params, counts [256]int) Algorithm {
	n := p.InputLen
	if n <= comparativeThreshold {
		return Comparative
	}

	depth := depthOf(p)

	if distributed(n, counts) {
		if depth == 0 {
			switch {
			case n <= 200_000:
				return LrLsb
			case n <= 350_000:
				return Ska
			case n <= 4_000_000:
				return MtLsb
			default:
				return Regions
			}
		}
		switch {
		case n <= 200_000:
			return LrLsb
		case n <= 800_000:
			return Ska
		case n <= 5_000_000:
			return Recombinating
		default:
			return Regions
		}
	}

	if depth > 0 {
		switch {
		case n <= 200_000:
			return Lsb
		case n <= 800_000:
			return Ska
		case n <= 50_000_000:
			return Recombinating
		default:
			return Scanning
		}
	}

	switch {
	case n <= 150_000:
		return Lsb
	case n <= 260_000:
		return Ska
	case n <= 50_000_000:
		return Recombinating
	default:
		return Scanning
	}
}

func pickInPlace(p Params, counts [256]int) Algorithm {
	n := p.InputLen
	if n <= comparativeThreshold {
		return Comparative
	}

	if distributed(n, counts) {
		switch {
		case n <= 50_000:
			return LrLsb
		case n <= 1_000_000:
			return Ska
		default:
			return Regions
		}
	}

	switch {
	case n <= 50_000:
		return Lsb
	case n <= 1_000_000:
		return Ska
	default:
		return Regions
	}
}
