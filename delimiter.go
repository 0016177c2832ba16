package qmplot

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the single most likely rune that would delimit the
// values in the reader, sampling only the head of the stream. Summary
// statistics are usually tab-delimited, so tab is the fallback when no
// better guess can be made.
func DetectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(io.LimitReader(r, 64*1024), '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
