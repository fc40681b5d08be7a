package interval

// Extend pads every record by bases/2 (integer division) on each side,
// clamping coordinates at zero.  A negative bases value shrinks the records
// instead.  If the padded start would pass the padded end, both collapse to
// their midpoint, yielding a zero-width record rather than an inverted one.
// Output always satisfies 0 <= start <= end.
func Extend(set Set, bases int) Set {
	half := bases / 2
	out := make(Set, len(set))
	for i, r := range set {
		start := r.Start - half
		if start < 0 {
			start = 0
		}
		end := r.End + half
		if end < 0 {
			end = 0
		}
		if start > end {
			mid := (start + end) / 2
			start, end = mid, mid
		}
		r.Start, r.End = start, end
		out[i] = r
	}
	return out
}
