package interval

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/sam"
)

// Chrom is one chromosome of a genome description: a name and its length in
// bases.
type Chrom struct {
	Name   string
	Length int
}

// Genome is an ordered table of chromosome lengths, as found in a
// bedtools-style two-column genome file.  The zero value is an empty genome.
type Genome struct {
	chroms []Chrom
	index  map[string]int
}

// Add appends a chromosome.  Duplicate names and non-positive lengths are
// errors.
func (g *Genome) Add(name string, length int) error {
	if name == "" {
		return fmt.Errorf("interval.Genome: empty chromosome name")
	}
	if length <= 0 {
		return fmt.Errorf("interval.Genome: chromosome %s has non-positive length %d", name, length)
	}
	if _, found := g.index[name]; found {
		return fmt.Errorf("interval.Genome: duplicate chromosome %s", name)
	}
	if g.index == nil {
		g.index = make(map[string]int)
	}
	g.index[name] = len(g.chroms)
	g.chroms = append(g.chroms, Chrom{Name: name, Length: length})
	return nil
}

// Chroms returns the chromosomes in declaration order.  The returned slice
// must not be modified.
func (g *Genome) Chroms() []Chrom { return g.chroms }

// Length returns the length of the named chromosome, and whether the genome
// contains it.
func (g *Genome) Length(name string) (int, bool) {
	i, found := g.index[name]
	if !found {
		return 0, false
	}
	return g.chroms[i].Length, true
}

// Empty reports whether the genome describes no chromosomes.
func (g *Genome) Empty() bool { return g == nil || len(g.chroms) == 0 }

// ReadGenome parses a genome file: one chromosome per line, name and length
// separated by whitespace.  Blank lines are skipped.
func ReadGenome(reader io.Reader) (*Genome, error) {
	g := &Genome{}
	scanner := bufio.NewScanner(reader)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("interval.ReadGenome: line %d has no length column", lineIdx)
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("interval.ReadGenome: bad length %q on line %d", fields[1], lineIdx)
		}
		if err := g.Add(fields[0], length); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadGenomePath is a wrapper for ReadGenome that takes a path.
func ReadGenomePath(path string) (g *Genome, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ReadGenome(infile.Reader(ctx))
}

// GenomeFromSAMHeader builds a genome description from the reference
// sequences of a SAM/BAM header, so an aligned file's header can stand in
// for a genome file.
func GenomeFromSAMHeader(header *sam.Header) (*Genome, error) {
	g := &Genome{}
	for _, ref := range header.Refs() {
		if err := g.Add(ref.Name(), ref.Len()); err != nil {
			return nil, err
		}
	}
	return g, nil
}
