package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/grailbio/poverlap/interval"
	"github.com/grailbio/poverlap/permtest"
	"github.com/grailbio/poverlap/shuffle"
)

type fixleFlags struct {
	bed         *string
	keepType    *string
	swapType    *string
	typeCol     *int
	trials      *int
	parallelism *int
	seed        *int64
}

func fixleMain(out io.Writer, flags fixleFlags) error {
	if *flags.bed == "" || *flags.keepType == "" || *flags.swapType == "" {
		return fmt.Errorf("-bed, -atype and -btype are required")
	}
	if *flags.typeCol < 1 {
		return fmt.Errorf("-type-col is 1-based, got %d", *flags.typeCol)
	}
	set, err := interval.ReadBEDPath(*flags.bed)
	if err != nil {
		return err
	}
	part, err := shuffle.Fixle(set, *flags.keepType, *flags.swapType, *flags.typeCol-1)
	if err != nil {
		return err
	}
	// The observed count scores the swap-type rows in place; each round
	// replaces them with a same-size draw from the background pool.
	result, err := permtest.Run(permtest.Opts{
		A:           part.Fixed,
		B:           part.Swap,
		Trials:      *flags.trials,
		Parallelism: *flags.parallelism,
		Shuffle: func(_ interval.Set, rng *rand.Rand) (interval.Set, error) {
			return part.Draw(rng)
		},
		Seed: *flags.seed,
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, result.Summary())
	return err
}
