// Package permtest runs Monte Carlo permutation tests of interval-set
// overlap: it compares the observed overlap count between two sets to the
// distribution of counts obtained after repeatedly randomizing one (or both)
// of them, yielding a one-sided empirical enrichment p-value.
package permtest

import (
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/poverlap/interval"
	"github.com/grailbio/poverlap/overlap"
	"gonum.org/v1/gonum/stat"
)

// DefaultTrials is the number of randomization rounds used when
// Opts.Trials is left zero.
const DefaultTrials = 1000

// ShuffleFunc produces one randomized variant of a set.  It must not mutate
// its input; the engine calls it from multiple workers concurrently, each
// with its own random source.
type ShuffleFunc func(set interval.Set, rng *rand.Rand) (interval.Set, error)

// Opts configures one permutation test.
type Opts struct {
	// A and B are the two interval sets under test.  B is the shuffled one;
	// A too when ShuffleBoth is set.  Both must be non-empty.
	A, B interval.Set
	// Trials is the number of randomization rounds.  Zero means
	// DefaultTrials; negative values are errors.
	Trials int
	// Parallelism caps the worker pool.  Zero or negative means
	// runtime.NumCPU().
	Parallelism int
	// Shuffle is the randomization strategy.  Required.
	Shuffle ShuffleFunc
	// ShuffleBoth also randomizes A each round, not just B.
	ShuffleBoth bool
	// Counter scores overlap.  Nil means the embedded overlap.TreeCounter.
	Counter overlap.Counter
	// Seed makes the test reproducible.  Zero means time-seeded.  Round i
	// uses an independent source seeded with Seed+i, so results do not
	// depend on scheduling order.
	Seed int64
}

// Result is the outcome of a permutation test.
type Result struct {
	// Observed is the overlap count of the unshuffled inputs.
	Observed int
	// Simulated holds one overlap count per round, indexed by round.
	Simulated []int
	// Mean is the average of Simulated.
	Mean float64
	// P is the one-sided empirical p-value: the fraction of rounds whose
	// count was >= Observed.  Ties count as non-significant.
	P float64
}

// Run executes the test: one observed count, then Opts.Trials independent
// shuffle-and-count rounds on a fixed-size worker pool, reduced to a
// p-value.  Rounds share no mutable state; any round error fails the whole
// test, since a short simulated-count list would bias the p-value.
func Run(opts Opts) (Result, error) {
	if opts.Trials == 0 {
		opts.Trials = DefaultTrials
	}
	if opts.Trials < 0 {
		return Result{}, errors.E(errors.Invalid, fmt.Sprintf("permtest: trial count must be positive, got %d", opts.Trials))
	}
	if opts.Shuffle == nil {
		return Result{}, errors.E(errors.Invalid, "permtest: shuffle function required")
	}
	if len(opts.A) == 0 || len(opts.B) == 0 {
		return Result{}, errors.E(errors.Invalid, "permtest: empty interval set")
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	if opts.Counter == nil {
		opts.Counter = overlap.TreeCounter{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	observed, err := opts.Counter.Count(opts.A, opts.B)
	if err != nil {
		return Result{}, errors.E(err, "permtest: computing observed overlap count")
	}
	log.Printf("permtest: observed %d overlap(s), running %d round(s) on %d worker(s)\n",
		observed, opts.Trials, opts.Parallelism)

	simulated := make([]int, opts.Trials)
	err = traverse.Limit(opts.Parallelism).Each(opts.Trials, func(round int) error {
		rng := rand.New(rand.NewSource(seed + int64(round)))
		b, err := opts.Shuffle(opts.B, rng)
		if err != nil {
			return err
		}
		a := opts.A
		if opts.ShuffleBoth {
			if a, err = opts.Shuffle(opts.A, rng); err != nil {
				return err
			}
		}
		n, err := opts.Counter.Count(a, b)
		if err != nil {
			return err
		}
		simulated[round] = n
		return nil
	})
	if err != nil {
		return Result{}, errors.E(err, "permtest: randomization round failed")
	}

	counts := make([]float64, len(simulated))
	atLeast := 0
	for i, s := range simulated {
		counts[i] = float64(s)
		if s >= observed {
			atLeast++
		}
	}
	return Result{
		Observed:  observed,
		Simulated: simulated,
		Mean:      stat.Mean(counts, nil),
		P:         float64(atLeast) / float64(len(simulated)),
	}, nil
}

// Summary renders the result in the classic poverlap report shape.
func (r Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "> observed number of overlaps: %d\n", r.Observed)
	fmt.Fprintf(&sb, "> simulated overlap mean: %.1f\n", r.Mean)
	fmt.Fprintf(&sb, "> simulated p-value: %.3g\n", r.P)
	fmt.Fprintf(&sb, "> %v\n", r.Simulated)
	return sb.String()
}
