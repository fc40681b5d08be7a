// Package cmd implements the bio-poverlap command line tool, a thin layer
// over the permtest, shuffle, overlap, and interval packages.
package cmd

import (
	"fmt"
	"log"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdPoverlap() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "poverlap",
		Short: "Permutation test of overlap between two BED files",
		Long: `
Poverlap compares the observed number of intervals in A overlapping B to the
counts obtained after repeatedly shuffling B (and optionally A), and reports
the simulated mean and the one-sided empirical p-value.

By default intervals are shuffled uniformly over the genome, which requires a
genome file (or a SAM/BAM file whose header supplies chromosome lengths).
With -shuffle-distance each interval is instead moved by a bounded random
offset near its original location; -genome, -chrom, -exclude and -include are
then ignored for the shuffle itself.`,
	}
	flags := poverlapFlags{
		a:               cmd.Flags.String("a", "", "First BED file (required)"),
		b:               cmd.Flags.String("b", "", "Second BED file, the one shuffled (required)"),
		genome:          cmd.Flags.String("genome", "", "Genome file of chromosome sizes, or a .sam/.bam whose header is used instead"),
		trials:          cmd.Flags.Int("n", 1000, "Number of shuffles"),
		chrom:           cmd.Flags.Bool("chrom", false, "Shuffle within chromosomes"),
		exclude:         cmd.Flags.String("exclude", "", "Optional BED file of regions to exclude"),
		include:         cmd.Flags.String("include", "", "Optional BED file of regions to include"),
		shuffleBoth:     cmd.Flags.Bool("shuffle-both", false, "Shuffle both A and B, not just B"),
		overlapDistance: cmd.Flags.Int("overlap-distance", 0, "Treat intervals within this distance as overlapping"),
		shuffleDistance: cmd.Flags.Int("shuffle-distance", -1, "Shuffle each interval to within this distance of its location (-1 = genome-wide shuffle)"),
		parallelism:     cmd.Flags.Int("ncpus", 0, "Worker pool size (0 = all CPUs)"),
		seed:            cmd.Flags.Int64("seed", 0, "Random seed (0 = time-seeded)"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("poverlap takes no positional arguments, but got %v", argv)
		}
		return poverlapMain(env.Stdout, flags)
	})
	return cmd
}

func newCmdFixle() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "fixle",
		Short: "Permutation test with fixed-type versus swapped-type intervals",
		Long: `
Fixle tests a labeled BED file (e.g. transcription factor binding sites with
a type column): rows labeled with the query type stay in place, and each
round re-draws as many rows as carry the swap type from the remaining rows at
random.  After Haiminen et al., BMC Bioinformatics 2008, 9:336.`,
	}
	flags := fixleFlags{
		bed:         cmd.Flags.String("bed", "", "BED file with a type column (required)"),
		keepType:    cmd.Flags.String("atype", "", "Query type whose rows stay fixed, e.g. Pol2 (required)"),
		swapType:    cmd.Flags.String("btype", "", "Type to be shuffled, e.g. CTCF (required)"),
		typeCol:     cmd.Flags.Int("type-col", 4, "1-based column listing the types"),
		trials:      cmd.Flags.Int("n", 1000, "Number of shuffles"),
		parallelism: cmd.Flags.Int("ncpus", 0, "Worker pool size (0 = all CPUs)"),
		seed:        cmd.Flags.Int64("seed", 0, "Random seed (0 = time-seeded)"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("fixle takes no positional arguments, but got %v", argv)
		}
		return fixleMain(env.Stdout, flags)
	})
	return cmd
}

func newCmdSample() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bed-sample",
		Short:    "Choose n random lines from a BED file by reservoir sampling",
		ArgsName: "bedfile",
	}
	n := cmd.Flags.Int("n", 1000, "Number of lines to sample")
	seed := cmd.Flags.Int64("seed", 0, "Random seed (0 = time-seeded)")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("bed-sample takes one BED path, but got %v", argv)
		}
		return sampleMain(env.Stdout, argv[0], *n, *seed)
	})
	return cmd
}

func newCmdDistanceShuffle() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "distance-shuffle",
		Short:    "Move each interval to a random location within a distance of its current one",
		ArgsName: "bedfile",
	}
	dist := cmd.Flags.Int("dist", 500000, "Maximum shuffle distance in either direction")
	seed := cmd.Flags.Int64("seed", 0, "Random seed (0 = time-seeded)")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("distance-shuffle takes one BED path, but got %v", argv)
		}
		return distanceShuffleMain(env.Stdout, argv[0], *dist, *seed)
	})
	return cmd
}

// Run is the entry point for the bio-poverlap binary.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-poverlap",
			Short:    "Monte Carlo permutation testing of genomic interval overlap",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdPoverlap(),
				newCmdFixle(),
				newCmdSample(),
				newCmdDistanceShuffle(),
			},
		})
}
