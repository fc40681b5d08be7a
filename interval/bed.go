package interval

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

// ReadBED parses tab-delimited BED records from the reader.  The first three
// columns are chromosome, start, and end; any further columns are preserved
// as auxiliary fields.  Blank lines are skipped.  Rows with fewer than three
// columns, non-integer coordinates, a negative start, or end < start are
// fatal parse errors.
func ReadBED(reader io.Reader) (set Set, err error) {
	// Scanner does not handle very long lines unless given a bigger buffer in
	// advance; BED lines are short enough in practice.
	scanner := bufio.NewScanner(reader)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			err = fmt.Errorf("interval.ReadBED: line %d has %d column(s), expected at least 3", lineIdx, len(cols))
			return
		}
		var start int
		if start, err = strconv.Atoi(cols[1]); err != nil {
			err = fmt.Errorf("interval.ReadBED: bad start coordinate %q on line %d", cols[1], lineIdx)
			return
		}
		if start < 0 {
			err = fmt.Errorf("interval.ReadBED: negative start coordinate on line %d", lineIdx)
			return
		}
		var end int
		if end, err = strconv.Atoi(cols[2]); err != nil {
			err = fmt.Errorf("interval.ReadBED: bad end coordinate %q on line %d", cols[2], lineIdx)
			return
		}
		if end < start {
			err = fmt.Errorf("interval.ReadBED: end < start on line %d", lineIdx)
			return
		}
		rec := Record{Chrom: cols[0], Start: start, End: end}
		if len(cols) > 3 {
			rec.Aux = cols[3:]
		}
		set = append(set, rec)
	}
	err = scanner.Err()
	return
}

// ReadBEDPath is a wrapper for ReadBED that takes a path instead of an
// io.Reader, decompressing gzipped inputs transparently.
func ReadBEDPath(path string) (set Set, err error) {
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
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadBED(reader)
}

// WriteBED writes the set as tab-delimited BED text, one record per line,
// preserving auxiliary columns byte for byte in their original order.
func WriteBED(w io.Writer, set Set) error {
	tsvw := tsv.NewWriter(w)
	for _, r := range set {
		tsvw.WriteString(r.Chrom)
		tsvw.WriteUint32(uint32(r.Start))
		tsvw.WriteUint32(uint32(r.End))
		for _, aux := range r.Aux {
			tsvw.WriteString(aux)
		}
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

// WriteBEDPath is a wrapper for WriteBED that writes to a path.
func WriteBEDPath(path string, set Set) (err error) {
	ctx := vcontext.Background()
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, out, &err)
	return WriteBED(out.Writer(ctx), set)
}
