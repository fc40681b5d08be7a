package overlap

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	itree "github.com/biogo/store/interval"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/poverlap/interval"
)

// maxPlacementTries bounds the rejection sampling in Shuffle when exclude or
// include masks (or short chromosomes) make placements fail.
const maxPlacementTries = 1000

// TreeCounter is the embedded Counter implementation.  It indexes the second
// set in per-chromosome interval trees and answers membership queries against
// them.  The zero value is ready to use.
type TreeCounter struct{}

var _ Counter = TreeCounter{}

// entry adapts a Record to the biogo interval-tree interface.  Overlap uses
// half-open semantics: [a, b) and [b, c) do not overlap.
type entry struct {
	start, end int
	id         uintptr
}

func (e entry) Overlap(r itree.IntRange) bool { return e.end > r.Start && e.start < r.End }
func (e entry) ID() uintptr                   { return e.id }
func (e entry) Range() itree.IntRange         { return itree.IntRange{Start: e.start, End: e.end} }

func buildTrees(set interval.Set) (map[string]*itree.IntTree, error) {
	trees := make(map[string]*itree.IntTree)
	for i, r := range set {
		t := trees[r.Chrom]
		if t == nil {
			t = &itree.IntTree{}
			trees[r.Chrom] = t
		}
		if err := t.Insert(entry{start: r.Start, end: r.End, id: uintptr(i)}, false); err != nil {
			return nil, errors.E(err, fmt.Sprintf("overlap: indexing record %s:%d-%d", r.Chrom, r.Start, r.End))
		}
	}
	return trees, nil
}

func overlaps(t *itree.IntTree, start, end int) bool {
	if t == nil {
		return false
	}
	found := false
	t.DoMatching(func(itree.IntInterface) bool {
		found = true
		return true
	}, entry{start: start, end: end, id: uintptr(t.Len())})
	return found
}

// Membership implements Counter.
func (TreeCounter) Membership(a, b interval.Set) ([]bool, error) {
	trees, err := buildTrees(b)
	if err != nil {
		return nil, err
	}
	hits := make([]bool, len(a))
	for i, r := range a {
		hits[i] = overlaps(trees[r.Chrom], r.Start, r.End)
	}
	return hits, nil
}

// Count implements Counter.
func (c TreeCounter) Count(a, b interval.Set) (int, error) {
	hits, err := c.Membership(a, b)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, hit := range hits {
		if hit {
			n++
		}
	}
	return n, nil
}

// chromPicker draws chromosomes with probability proportional to length, so
// placements are uniform over genome positions rather than over chromosomes.
type chromPicker struct {
	chroms []interval.Chrom
	cum    []int64 // cumulative lengths; cum[i] = sum of lengths through i
}

func newChromPicker(g *interval.Genome) chromPicker {
	chroms := g.Chroms()
	cum := make([]int64, len(chroms))
	var total int64
	for i, c := range chroms {
		total += int64(c.Length)
		cum[i] = total
	}
	return chromPicker{chroms: chroms, cum: cum}
}

func (p chromPicker) pick(rng *rand.Rand) interval.Chrom {
	x := rng.Int63n(p.cum[len(p.cum)-1])
	i := sort.Search(len(p.cum), func(i int) bool { return p.cum[i] > x })
	return p.chroms[i]
}

// Shuffle implements Counter.  Each record is independently assigned a
// uniform random position, keeping its width and auxiliary columns.  With
// WithinChrom the record stays on its own chromosome; otherwise the target
// chromosome is drawn with probability proportional to its length.
// Placements overlapping Exclude, or missing a non-empty Include, are redrawn
// up to maxPlacementTries times before the whole shuffle fails.
func (TreeCounter) Shuffle(set interval.Set, g *interval.Genome, opts ShuffleOpts) (interval.Set, error) {
	if g.Empty() {
		return nil, errors.E(errors.Invalid, "overlap.Shuffle: genome description required")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	excludeTrees, err := buildTrees(opts.Exclude)
	if err != nil {
		return nil, err
	}
	includeTrees, err := buildTrees(opts.Include)
	if err != nil {
		return nil, err
	}
	picker := newChromPicker(g)
	out := make(interval.Set, len(set))
	for i, r := range set {
		width := r.Width()
		placed := false
		for try := 0; try < maxPlacementTries; try++ {
			var chrom interval.Chrom
			if opts.WithinChrom {
				length, found := g.Length(r.Chrom)
				if !found {
					return nil, errors.E(errors.Invalid,
						fmt.Sprintf("overlap.Shuffle: chromosome %s not in genome", r.Chrom))
				}
				chrom = interval.Chrom{Name: r.Chrom, Length: length}
			} else {
				chrom = picker.pick(rng)
			}
			if width > chrom.Length {
				continue
			}
			start := rng.Intn(chrom.Length - width + 1)
			if overlaps(excludeTrees[chrom.Name], start, start+width) {
				continue
			}
			if len(opts.Include) > 0 && !overlaps(includeTrees[chrom.Name], start, start+width) {
				continue
			}
			r.Chrom = chrom.Name
			r.Start = start
			r.End = start + width
			out[i] = r
			placed = true
			break
		}
		if !placed {
			return nil, errors.E(errors.Invalid, fmt.Sprintf(
				"overlap.Shuffle: no placement found for %s:%d-%d after %d tries",
				r.Chrom, r.Start, r.End, maxPlacementTries))
		}
	}
	return out, nil
}
