package shuffle

import (
	"fmt"
	"math/rand"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/poverlap/interval"
)

// FixlePartition is the fixed/background split of a labeled interval set
// used by the type-swap ("fixle") shuffle, after Haiminen et al., BMC
// Bioinformatics 2008, 9:336.  Rows carrying the query label stay put; each
// trial re-draws the swap label's positions from everything else.
type FixlePartition struct {
	// Fixed holds the rows labeled with the query type.  They are never
	// moved.
	Fixed interval.Set
	// Pool holds every other row: the background the swap type is
	// redistributed over.  Swap rows are part of the pool.
	Pool interval.Set
	// Swap holds the rows labeled with the swap type, in input order.  Its
	// length sets the size of each Draw.
	Swap interval.Set
}

// Fixle partitions set by the label in column labelCol (0-based over the
// whole row, so the first auxiliary column is 3).  Rows labeled keepLabel go
// to Fixed; all remaining rows go to Pool, with the swapLabel subset also
// recorded in Swap.  It is an error if no row is labeled swapLabel, or if
// any row lacks the label column.
func Fixle(set interval.Set, keepLabel, swapLabel string, labelCol int) (FixlePartition, error) {
	var p FixlePartition
	for i, r := range set {
		label, ok := r.Field(labelCol)
		if !ok {
			return FixlePartition{}, errors.E(errors.Invalid,
				fmt.Sprintf("shuffle.Fixle: record %d has no label column %d", i, labelCol))
		}
		if label == keepLabel {
			p.Fixed = append(p.Fixed, r)
			continue
		}
		p.Pool = append(p.Pool, r)
		if label == swapLabel {
			p.Swap = append(p.Swap, r)
		}
	}
	if len(p.Swap) == 0 {
		return FixlePartition{}, errors.E(errors.Invalid,
			fmt.Sprintf("shuffle.Fixle: no intervals found for label %q", swapLabel))
	}
	return p, nil
}

// Draw samples len(Swap) records from the background pool without
// replacement: a positionally shuffled stand-in for the swap-label subset
// under the null hypothesis that those locations are exchangeable with the
// background.
func (p FixlePartition) Draw(rng *rand.Rand) (interval.Set, error) {
	return Sample(p.Pool, len(p.Swap), rng)
}
