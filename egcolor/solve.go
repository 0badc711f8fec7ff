package egcolor

import (
	"fortio.org/log"

	"github.com/katalvlaran/grafix/egroups"
)

// Strategy builds a coloring of eg with at most c colors and reports
// whether it is complete.
type Strategy func(eg *egroups.EdgeGroups, c int) (*EdgeGroupColors, bool)

// defaultLimitFactor bounds the binary-search window at
// limitFactor × LowerBound, preventing unbounded widening on instances a
// heuristic cannot finish.
const defaultLimitFactor = 10

// SolveOptions configures the binary-search driver.
//   - LimitFactor: search ceiling as a multiple of the lower bound
//     (default 10).
//   - Seed: forwarded to randomized strategies.
type SolveOptions struct {
	LimitFactor int
	Seed        int64
}

// normalize fills in defaults.
func (o *SolveOptions) normalize() {
	if o.LimitFactor < 1 {
		o.LimitFactor = defaultLimitFactor
	}
}

// GreedyStrategy, LayeredStrategy and FlowStrategy adapt the deterministic
// strategies to the Strategy signature.
var (
	GreedyStrategy  Strategy = GreedyBounded
	LayeredStrategy Strategy = Layered
	FlowStrategy    Strategy = FlowPalettes
)

// RandomStrategy adapts RandomPalettes with a fixed seed.
func RandomStrategy(seed int64) Strategy {
	return func(eg *egroups.EdgeGroups, c int) (*EdgeGroupColors, bool) {
		return RandomPalettes(eg, c, seed)
	}
}

// Solve binary-searches the smallest color count in
// [LowerBound, LimitFactor·LowerBound] for which strat completes, and
// returns that coloring. When no budget in the window succeeds, the best
// (largest-budget) incomplete coloring comes back with ok == false.
func Solve(eg *egroups.EdgeGroups, strat Strategy, opts SolveOptions) (egc *EdgeGroupColors, colors int, ok bool) {
	opts.normalize()
	lo := LowerBound(eg)
	if lo == 0 { // no edges: the empty coloring is complete
		return New(eg, 0), 0, true
	}
	hi := lo * opts.LimitFactor

	best, bestC := (*EdgeGroupColors)(nil), 0
	for lo < hi {
		mid := lo + (hi-lo)/2
		cand, done := strat(eg, mid)
		log.LogVf("egcolor: solve probe c=%d complete=%v colored=%d/%d",
			mid, done, cand.NumberColored(), eg.Graph().M())
		if done {
			best, bestC = cand, mid
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if best != nil && bestC == lo {
		return best, bestC, true
	}
	cand, done := strat(eg, lo)
	log.LogVf("egcolor: solve final c=%d complete=%v", lo, done)
	if done {
		return cand, lo, true
	}
	if best != nil {
		return best, bestC, true
	}

	return cand, lo, false
}
