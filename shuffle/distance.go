package shuffle

import (
	"fmt"
	"math/rand"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/poverlap/interval"
)

// Distance perturbs each record's position by an independent uniform offset
// in [-maxDist, +maxDist], preserving its width.  An offset that would push
// the start below zero is truncated so the record starts at zero instead,
// keeping the width intact.  This deliberately ignores chromosome bounds: it
// is the local-structure-preserving alternative to a genome-wide shuffle.
func Distance(set interval.Set, maxDist int, rng *rand.Rand) (interval.Set, error) {
	if maxDist < 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("shuffle.Distance: distance must be non-negative, got %d", maxDist))
	}
	out := make(interval.Set, len(set))
	for i, r := range set {
		d := rng.Intn(2*maxDist+1) - maxDist
		if r.Start+d < 0 {
			d = -r.Start
		}
		r.Start += d
		r.End += d
		out[i] = r
	}
	return out, nil
}
