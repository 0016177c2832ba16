package main

import (
	"io"

	"github.com/liqingbioinfo/qmplot"
	"github.com/liqingbioinfo/qmplot/sumstats"
)

func readInput(path string, columns sumstats.Layout) ([]sumstats.Marker, sumstats.Report, error) {
	f, _, err := qmplot.Open(path, client)
	if err != nil {
		return nil, sumstats.Report{}, err
	}
	defer f.Close()

	r, err := qmplot.MaybeDecompress(f)
	if err != nil {
		return nil, sumstats.Report{}, err
	}

	delim := qmplot.DetectDelimiter(r)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, sumstats.Report{}, err
	}

	// The decompressed reader cannot seek, so decompress again after the
	// rewind.
	r, err = qmplot.MaybeDecompress(f)
	if err != nil {
		return nil, sumstats.Report{}, err
	}

	return sumstats.Read(r, delim, columns)
}
