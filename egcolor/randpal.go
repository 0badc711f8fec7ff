package egcolor

import (
	"math/rand"

	"github.com/katalvlaran/grafix/egroups"
)

// RandomPalettes deals every group a random palette — fanout-many colors
// drawn without replacement from a per-input shuffle — and then lets
// ColorFromPalettes match colors onto edges at every output.
//
// A cheap randomized baseline: it succeeds often once c comfortably
// exceeds the lower bound, and retries under the binary-search driver are
// independent draws. Returns the coloring and its completeness.
func RandomPalettes(eg *egroups.EdgeGroups, c int, seed int64) (*EdgeGroupColors, bool) {
	egc := New(eg, c)
	g := eg.Graph()
	rng := rand.New(rand.NewSource(seed))

	colors := make([]int, c)
	for i := range colors {
		colors[i] = i + 1
	}
	for u := 1; u <= g.Ni(); u++ {
		rng.Shuffle(c, func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
		idx := 0
		for grp := eg.FirstGroupAt(u); grp != 0; grp = eg.NextGroupAt(u, grp) {
			for k := 0; k < eg.Fanout(grp) && idx < c; k++ {
				if err := egc.Bind(colors[idx], grp); err != nil {
					return egc, false
				}
				idx++
			}
		}
	}

	return egc, egc.ColorFromPalettes()
}
