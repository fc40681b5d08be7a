package shuffle

import (
	"math/rand"
	"testing"

	"github.com/grailbio/poverlap/interval"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestDistance(t *testing.T) {
	set := interval.Set{
		{Chrom: "chr1", Start: 0, End: 40, Aux: []string{"near-edge"}},
		{Chrom: "chr1", Start: 1000000, End: 1000500},
		{Chrom: "chr2", Start: 5, End: 5},
	}
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		out, err := Distance(set, 500, rng)
		assert.NoError(t, err)
		assert.EQ(t, len(out), len(set))
		for i, r := range out {
			expect.EQ(t, r.Chrom, set[i].Chrom)
			expect.EQ(t, r.Aux, set[i].Aux)
			expect.EQ(t, r.Width(), set[i].Width())
			expect.GE(t, r.Start, 0)
			// Offsets stay within the bound (the edge clamp only ever
			// shrinks a negative offset).
			expect.LE(t, r.Start, set[i].Start+500)
			expect.GE(t, r.Start, set[i].Start-500)
		}
	}
	// The input is never mutated.
	expect.EQ(t, set[0], interval.Record{Chrom: "chr1", Start: 0, End: 40, Aux: []string{"near-edge"}})
}

func TestDistanceZero(t *testing.T) {
	set := interval.Set{{Chrom: "chr1", Start: 10, End: 20}}
	out, err := Distance(set, 0, rand.New(rand.NewSource(0)))
	assert.NoError(t, err)
	expect.EQ(t, out, set)
}

func TestDistanceNegative(t *testing.T) {
	if _, err := Distance(nil, -1, rand.New(rand.NewSource(0))); err == nil {
		t.Error("expected error for negative distance")
	}
}
