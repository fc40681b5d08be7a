package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/poverlap/interval"
	"github.com/grailbio/poverlap/shuffle"
	"github.com/klauspost/compress/gzip"
)

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func sampleMain(out io.Writer, path string, n int, seed int64) (err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	lines, err := shuffle.SampleLines(reader, n, newRand(seed))
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return
		}
	}
	return nil
}

func distanceShuffleMain(out io.Writer, path string, dist int, seed int64) error {
	set, err := interval.ReadBEDPath(path)
	if err != nil {
		return err
	}
	shuffled, err := shuffle.Distance(set, dist, newRand(seed))
	if err != nil {
		return err
	}
	return interval.WriteBED(out, shuffled)
}
