package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/poverlap/interval"
	"github.com/grailbio/poverlap/overlap"
	"github.com/grailbio/poverlap/permtest"
	"github.com/grailbio/poverlap/shuffle"
)

type poverlapFlags struct {
	a, b            *string
	genome          *string
	trials          *int
	chrom           *bool
	exclude         *string
	include         *string
	shuffleBoth     *bool
	overlapDistance *int
	shuffleDistance *int
	parallelism     *int
	seed            *int64
}

// loadGenome reads chromosome sizes from a genome file, or from the header
// of a SAM/BAM file when the path looks like one.
func loadGenome(path string) (*interval.Genome, error) {
	var header *sam.Header
	switch {
	case strings.HasSuffix(path, ".bam"):
		ctx := vcontext.Background()
		in, err := file.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		defer in.Close(ctx) // nolint: errcheck
		br, err := bam.NewReader(in.Reader(ctx), 1)
		if err != nil {
			return nil, err
		}
		defer br.Close() // nolint: errcheck
		header = br.Header()
	case strings.HasSuffix(path, ".sam"):
		ctx := vcontext.Background()
		in, err := file.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		defer in.Close(ctx) // nolint: errcheck
		sr, err := sam.NewReader(in.Reader(ctx))
		if err != nil {
			return nil, err
		}
		header = sr.Header()
	default:
		return interval.ReadGenomePath(path)
	}
	return interval.GenomeFromSAMHeader(header)
}

func poverlapMain(out io.Writer, flags poverlapFlags) error {
	if *flags.a == "" || *flags.b == "" {
		return fmt.Errorf("both -a and -b BED files are required")
	}
	if *flags.genome == "" && *flags.shuffleDistance < 0 {
		return fmt.Errorf("-genome is required unless -shuffle-distance is given")
	}
	a, err := interval.ReadBEDPath(*flags.a)
	if err != nil {
		return err
	}
	b, err := interval.ReadBEDPath(*flags.b)
	if err != nil {
		return err
	}
	counter := overlap.TreeCounter{}

	var exclude, include interval.Set
	if *flags.exclude != "" {
		if exclude, err = interval.ReadBEDPath(*flags.exclude); err != nil {
			return err
		}
	}
	if *flags.include != "" {
		if include, err = interval.ReadBEDPath(*flags.include); err != nil {
			return err
		}
	}
	// Restrict to exclude first, then to include, as the masks may overlap.
	for _, step := range []struct {
		mask interval.Set
		mode overlap.FilterMode
	}{{exclude, overlap.Exclude}, {include, overlap.Include}} {
		if a, err = overlap.Filter(a, step.mask, step.mode, counter); err != nil {
			return err
		}
		if b, err = overlap.Filter(b, step.mask, step.mode, counter); err != nil {
			return err
		}
	}

	if *flags.overlapDistance != 0 {
		a = interval.Extend(a, *flags.overlapDistance)
		b = interval.Extend(b, *flags.overlapDistance)
	}

	var shuffleFn permtest.ShuffleFunc
	if dist := *flags.shuffleDistance; dist >= 0 {
		shuffleFn = func(set interval.Set, rng *rand.Rand) (interval.Set, error) {
			return shuffle.Distance(set, dist, rng)
		}
	} else {
		g, err := loadGenome(*flags.genome)
		if err != nil {
			return err
		}
		opts := overlap.ShuffleOpts{WithinChrom: *flags.chrom, Exclude: exclude, Include: include}
		shuffleFn = func(set interval.Set, rng *rand.Rand) (interval.Set, error) {
			o := opts
			o.Rand = rng
			return counter.Shuffle(set, g, o)
		}
	}

	result, err := permtest.Run(permtest.Opts{
		A:           a,
		B:           b,
		Trials:      *flags.trials,
		Parallelism: *flags.parallelism,
		Shuffle:     shuffleFn,
		ShuffleBoth: *flags.shuffleBoth,
		Counter:     counter,
		Seed:        *flags.seed,
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, result.Summary())
	return err
}
