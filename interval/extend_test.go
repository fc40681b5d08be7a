package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestExtend(t *testing.T) {
	tests := []struct {
		rec   Record
		bases int
		want  Record
	}{
		// Half the padding goes on each side.
		{Record{Chrom: "chr1", Start: 100, End: 200}, 20, Record{Chrom: "chr1", Start: 90, End: 210}},
		// Odd padding rounds the half down.
		{Record{Chrom: "chr1", Start: 100, End: 200}, 5, Record{Chrom: "chr1", Start: 98, End: 202}},
		// Start clamps at zero without shrinking the right side.
		{Record{Chrom: "chr1", Start: 5, End: 10}, 20, Record{Chrom: "chr1", Start: 0, End: 20}},
		// Zero is the identity.
		{Record{Chrom: "chr1", Start: 100, End: 200}, 0, Record{Chrom: "chr1", Start: 100, End: 200}},
		// Negative padding shrinks.
		{Record{Chrom: "chr1", Start: 100, End: 200}, -20, Record{Chrom: "chr1", Start: 110, End: 190}},
		// Shrinking past inversion collapses to the midpoint.
		{Record{Chrom: "chr1", Start: 100, End: 110}, -40, Record{Chrom: "chr1", Start: 105, End: 105}},
	}
	for _, tt := range tests {
		got := Extend(Set{tt.rec}, tt.bases)
		expect.EQ(t, got[0], tt.want)
	}
}

func TestExtendInvariants(t *testing.T) {
	set := Set{
		{Chrom: "chr1", Start: 0, End: 0},
		{Chrom: "chr1", Start: 3, End: 9, Aux: []string{"geneA", "+"}},
		{Chrom: "chr2", Start: 50, End: 51},
		{Chrom: "chrX", Start: 1000, End: 5000},
	}
	for _, bases := range []int{-10000, -11, -1, 0, 1, 7, 100, 10000} {
		out := Extend(set, bases)
		expect.EQ(t, len(out), len(set))
		for i, r := range out {
			expect.GE(t, r.Start, 0)
			expect.LE(t, r.Start, r.End)
			expect.EQ(t, r.Chrom, set[i].Chrom)
			expect.EQ(t, r.Aux, set[i].Aux)
		}
	}
	// The input is never mutated.
	expect.EQ(t, set[1], Record{Chrom: "chr1", Start: 3, End: 9, Aux: []string{"geneA", "+"}})
}
