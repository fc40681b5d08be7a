package interval

// Record is one row of a BED-style interval file: a half-open [Start, End)
// range on a named chromosome, plus any auxiliary columns (name, score,
// strand, type label, ...) carried through verbatim in input order.
//
// Start <= End and Start >= 0 always hold for Records produced by this
// package; transformations that could violate the invariant (extension,
// shifting) repair the geometry instead of rejecting the record.
type Record struct {
	Chrom string
	Start int
	End   int
	Aux   []string
}

// Width returns End - Start.
func (r Record) Width() int { return r.End - r.Start }

// Field returns column i of the full row, counting Chrom as column 0, Start
// as 1, End as 2, and auxiliary columns from 3.  The second return value is
// false if the row has no column i.  Start and End are not rendered as text
// here; callers that need them should use the fields directly.
func (r Record) Field(i int) (string, bool) {
	switch {
	case i == 0:
		return r.Chrom, true
	case i == 1 || i == 2:
		return "", false
	case i >= 3 && i-3 < len(r.Aux):
		return r.Aux[i-3], true
	}
	return "", false
}

// Set is an ordered sequence of Records.  Order is input order and is
// preserved by every transformation; functions in this package and its
// siblings treat Sets as read-only values and return new Sets.
type Set []Record

// Clone returns a copy of the set.  Aux slices are shared, which is safe
// because no code in this module mutates them.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}
