// Package overlap defines the overlap-counting collaborator used by the
// permutation test, an embedded interval-tree implementation of it, and
// mask-based region filtering built on top.
package overlap

import (
	"math/rand"

	"github.com/grailbio/poverlap/interval"
)

// Counter answers overlap queries between two interval sets and provides
// genome-aware uniform shuffling.  The permutation engine treats it as a
// black box; TreeCounter is the in-process implementation, but anything that
// honors these contracts (e.g. a bedtools wrapper) can stand in.
type Counter interface {
	// Count returns the number of records in a that overlap at least one
	// record in b.  Intervals are half-open; touching endpoints do not
	// overlap.
	Count(a, b interval.Set) (int, error)
	// Membership returns one flag per record of a, aligned with a, true iff
	// that record overlaps at least one record in b.
	Membership(a, b interval.Set) ([]bool, error)
	// Shuffle places every record of set uniformly at random on the genome,
	// preserving widths and auxiliary columns.  See ShuffleOpts.
	Shuffle(set interval.Set, g *interval.Genome, opts ShuffleOpts) (interval.Set, error)
}

// ShuffleOpts controls Counter.Shuffle.
type ShuffleOpts struct {
	// WithinChrom keeps each record on its own chromosome.
	WithinChrom bool
	// Exclude rejects placements overlapping any of these regions.
	Exclude interval.Set
	// Include rejects placements not overlapping any of these regions, when
	// non-empty.
	Include interval.Set
	// Rand is the random source.  If nil, a time-seeded source is used.
	Rand *rand.Rand
}
