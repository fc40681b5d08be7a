package interval

import (
	"strings"
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestReadGenome(t *testing.T) {
	g, err := ReadGenome(strings.NewReader("chr1\t248956422\nchr2\t242193529\n\nchrM\t16569\n"))
	assert.NoError(t, err)
	expect.EQ(t, g.Chroms(), []Chrom{
		{Name: "chr1", Length: 248956422},
		{Name: "chr2", Length: 242193529},
		{Name: "chrM", Length: 16569},
	})
	length, found := g.Length("chr2")
	expect.True(t, found)
	expect.EQ(t, length, 242193529)
	_, found = g.Length("chr3")
	expect.False(t, found)
	expect.False(t, g.Empty())
	expect.True(t, (&Genome{}).Empty())
}

func TestReadGenomeErrors(t *testing.T) {
	tests := []string{
		"chr1\n",                 // missing length
		"chr1\tbig\n",            // non-integer length
		"chr1\t0\n",              // non-positive length
		"chr1\t100\nchr1\t200\n", // duplicate chromosome
	}
	for _, in := range tests {
		if _, err := ReadGenome(strings.NewReader(in)); err == nil {
			t.Errorf("ReadGenome(%q): expected error", in)
		}
	}
}

func TestGenomeFromSAMHeader(t *testing.T) {
	ref1, err := sam.NewReference("chr1", "", "", 1000, nil, nil)
	assert.NoError(t, err)
	ref2, err := sam.NewReference("chr2", "", "", 500, nil, nil)
	assert.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{ref1, ref2})
	assert.NoError(t, err)
	g, err := GenomeFromSAMHeader(header)
	assert.NoError(t, err)
	expect.EQ(t, g.Chroms(), []Chrom{{Name: "chr1", Length: 1000}, {Name: "chr2", Length: 500}})
}
