package interval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestReadBED(t *testing.T) {
	in := "chr1\t100\t200\n" +
		"\n" +
		"chr1\t150\t250\tPol2\t960\t+\r\n" +
		"chr2\t0\t0\n"
	set, err := ReadBED(strings.NewReader(in))
	assert.NoError(t, err)
	expect.EQ(t, set, Set{
		{Chrom: "chr1", Start: 100, End: 200},
		{Chrom: "chr1", Start: 150, End: 250, Aux: []string{"Pol2", "960", "+"}},
		{Chrom: "chr2", Start: 0, End: 0},
	})
}

func TestReadBEDErrors(t *testing.T) {
	tests := []string{
		"chr1\t100\n",          // too few columns
		"chr1\tx\t200\n",       // non-integer start
		"chr1\t100\ty\n",       // non-integer end
		"chr1\t-5\t200\n",      // negative start
		"chr1\t200\t100\n",     // inverted
		"chr1 100 200\n",       // space-delimited, not tab
		"ok\t1\t2\nbad\t3\n",   // failure mid-file
	}
	for _, in := range tests {
		if _, err := ReadBED(strings.NewReader(in)); err == nil {
			t.Errorf("ReadBED(%q): expected error", in)
		}
	}
}

func TestWriteBEDRoundTrip(t *testing.T) {
	// Auxiliary columns must survive byte for byte, in order.
	in := "chr1\t100\t200\tsiteA\t3.5\t+\n" +
		"chr10\t0\t50\n" +
		"chr2\t7\t7\tempty\n"
	set, err := ReadBED(strings.NewReader(in))
	assert.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, WriteBED(&buf, set))
	expect.EQ(t, buf.String(), in)
}
