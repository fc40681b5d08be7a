package overlap

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/poverlap/interval"
)

// FilterMode selects what Filter keeps.
type FilterMode int

const (
	// Exclude keeps records with zero overlap against the mask.
	Exclude FilterMode = iota
	// Include keeps records with at least one overlap against the mask.
	Include
)

func (m FilterMode) String() string {
	if m == Exclude {
		return "exclud"
	}
	return "includ"
}

// Filter restricts set by its overlap with mask, preserving record order.
// An empty mask leaves the set unchanged.  A summary of the reduction is
// logged for observability; it does not affect the result.
func Filter(set, mask interval.Set, mode FilterMode, c Counter) (interval.Set, error) {
	if len(mask) == 0 {
		return set, nil
	}
	hits, err := c.Membership(set, mask)
	if err != nil {
		return nil, err
	}
	keep := mode == Include
	out := make(interval.Set, 0, len(set))
	for i, r := range set {
		if hits[i] == keep {
			out = append(out, r)
		}
	}
	pct := 0.0
	if len(set) > 0 {
		pct = 100 * float64(len(set)-len(out)) / float64(len(set))
	}
	log.Printf("overlap.Filter: reduced %d to %d record(s) (%.3f%%) by %sing mask\n",
		len(set), len(out), pct, mode)
	return out, nil
}
