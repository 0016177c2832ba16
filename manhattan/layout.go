// Package manhattan lays GWAS markers from all chromosomes onto one shared
// x-axis and renders them as a Manhattan plot.
package manhattan

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/liqingbioinfo/qmplot/sumstats"
)

// Point is one marker placed on the genome-wide x-axis.
type Point struct {
	Marker sumstats.Marker

	// X is the marker's position plus its chromosome's offset.
	X int
}

// Span is one chromosome's stretch of the shared axis.
type Span struct {
	Name string

	// Offset is where the chromosome begins on the shared axis: the sum of
	// the widths of every chromosome drawn before it.
	Offset int

	// Width is the largest marker position observed on the chromosome.
	Width int

	// Points holds the chromosome's markers in input order.
	Points []Point
}

// Center is where the chromosome's axis label belongs.
func (s Span) Center() float64 {
	return float64(s.Offset) + float64(s.Width)/2
}

// Layout places chromosomes end to end, left to right, so that every marker
// in the genome gets a single x coordinate.
type Layout struct {
	Spans []Span

	// DroppedUnknown counts markers discarded because their chromosome was
	// not in the requested set.
	DroppedUnknown int
}

// NewLayout builds the shared axis. When order is nil the observed
// chromosomes are drawn in karyotype order; otherwise exactly the named
// chromosomes are drawn, in the given order, and markers on other
// chromosomes either fail the layout or are dropped and counted, depending
// on dropUnknown. Chromosomes without any markers take no space.
func NewLayout(markers []sumstats.Marker, order []string, dropUnknown bool) (*Layout, error) {
	byChrom := make(map[string][]sumstats.Marker)
	for _, m := range markers {
		byChrom[m.Chromosome] = append(byChrom[m.Chromosome], m)
	}

	if order == nil {
		order = make([]string, 0, len(byChrom))
		for name := range byChrom {
			order = append(order, name)
		}
		SortChromosomes(order)
	}

	l := &Layout{}

	plotted := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, dup := plotted[name]; dup {
			return nil, fmt.Errorf("chromosome %q appears more than once in the plotted set", name)
		}
		plotted[name] = struct{}{}
	}
	for _, m := range markers {
		if _, ok := plotted[m.Chromosome]; !ok {
			if !dropUnknown {
				return nil, fmt.Errorf("chromosome %q is not in the plotted set %v", m.Chromosome, order)
			}
			l.DroppedUnknown++
		}
	}

	offset := 0
	for _, name := range order {
		chromMarkers := byChrom[name]
		if len(chromMarkers) == 0 {
			continue
		}

		width := 0
		for _, m := range chromMarkers {
			if m.Position > width {
				width = m.Position
			}
		}

		span := Span{
			Name:   name,
			Offset: offset,
			Width:  width,
			Points: make([]Point, 0, len(chromMarkers)),
		}
		for _, m := range chromMarkers {
			span.Points = append(span.Points, Point{Marker: m, X: offset + m.Position})
		}

		l.Spans = append(l.Spans, span)
		offset += width
	}

	return l, nil
}

// End returns the far edge of the last chromosome on the shared axis.
func (l *Layout) End() int {
	if len(l.Spans) == 0 {
		return 0
	}

	last := l.Spans[len(l.Spans)-1]
	return last.Offset + last.Width
}

// PointCount returns how many markers were placed.
func (l *Layout) PointCount() int {
	n := 0
	for _, span := range l.Spans {
		n += len(span.Points)
	}

	return n
}

// Significant returns every placed marker with a p-value at or below the
// threshold, in display order.
func (l *Layout) Significant(threshold float64) []Point {
	var out []Point
	for _, span := range l.Spans {
		for _, pt := range span.Points {
			if pt.Marker.P <= threshold {
				out = append(out, pt)
			}
		}
	}

	return out
}

// MaxNegLog10P returns the tallest point on the layout, or 0 when the layout
// is empty.
func (l *Layout) MaxNegLog10P() float64 {
	max := 0.0
	for _, span := range l.Spans {
		for _, pt := range span.Points {
			if y := pt.Marker.NegLog10P(); y > max {
				max = y
			}
		}
	}

	return max
}

// SortChromosomes orders labels the way a karyotype reads: numeric labels
// ascending, then X, Y, and MT, then anything else alphabetically.
func SortChromosomes(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ci, ri := chromosomeRank(names[i])
		cj, rj := chromosomeRank(names[j])
		if ci != cj {
			return ci < cj
		}
		if ci < 2 {
			return ri < rj
		}
		return names[i] < names[j]
	})
}

func chromosomeRank(name string) (class, rank int) {
	if n, err := strconv.Atoi(name); err == nil {
		return 0, n
	}

	switch name {
	case "X":
		return 1, 0
	case "Y":
		return 1, 1
	case "MT", "M":
		return 1, 2
	}

	return 2, 0
}
