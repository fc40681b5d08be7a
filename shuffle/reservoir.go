// Package shuffle implements the interval randomization strategies of the
// permutation test: uniform reservoir sampling, distance-bounded positional
// shuffling, and the "fixle" type-swap shuffle.  All functions are pure up to
// the supplied random source; callers own seeding.
package shuffle

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	gerrors "github.com/grailbio/base/errors"
	"github.com/grailbio/poverlap/interval"
	"github.com/pkg/errors"
)

// Sample returns a uniform simple random sample of min(k, len(set)) records,
// without replacement, via single-pass reservoir sampling.  Each input record
// has inclusion probability k/n regardless of position.  k <= 0 is an error.
func Sample(set interval.Set, k int, rng *rand.Rand) (interval.Set, error) {
	if k <= 0 {
		return nil, gerrors.E(gerrors.Invalid, fmt.Sprintf("shuffle.Sample: sample size must be positive, got %d", k))
	}
	size := k
	if len(set) < size {
		size = len(set)
	}
	buf := make(interval.Set, 0, size)
	for i, r := range set {
		if i < k {
			buf = append(buf, r)
			continue
		}
		if j := rng.Intn(i + 1); j < k {
			buf[j] = r
		}
	}
	return buf, nil
}

// SampleLines reservoir-samples min(k, number of lines) raw lines from the
// reader without parsing them, for use on BED text where the rows should pass
// through untouched.
func SampleLines(reader io.Reader, k int, rng *rand.Rand) ([]string, error) {
	if k <= 0 {
		return nil, gerrors.E(gerrors.Invalid, fmt.Sprintf("shuffle.SampleLines: sample size must be positive, got %d", k))
	}
	scanner := bufio.NewScanner(reader)
	var buf []string
	i := 0
	for scanner.Scan() {
		line := scanner.Text()
		if i < k {
			buf = append(buf, line)
		} else if j := rng.Intn(i + 1); j < k {
			buf[j] = line
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading sample input")
	}
	return buf, nil
}
