package sumstats

import (
	"math"

	"gopkg.in/guregu/null.v3"
)

// Marker is one genetic marker from a GWAS summary-statistics file.
type Marker struct {
	// Chromosome is the label after any leading "chr" has been stripped,
	// e.g. "1" or "X".
	Chromosome string

	// Position is the base-pair coordinate on Chromosome.
	Position int

	// P is the association p-value, in (0, 1].
	P float64

	// ID carries the marker name when an annotation column was requested
	// and populated for this row.
	ID null.String
}

// NegLog10P returns the marker's p-value on the -log10 scale, which is the
// y-axis of both the Manhattan and the Q-Q plot.
func (m Marker) NegLog10P() float64 {
	return -math.Log10(m.P)
}
