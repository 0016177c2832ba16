package sumstats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// ErrMissingValue marks a row whose chromosome, position, or p-value field
// held a null token. Such rows are dropped rather than fatal.
var ErrMissingValue = errors.New("missing value")

// nullTokens are the field values treated as missing data, mirroring the
// conventions of the common GWAS toolchains.
var nullTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"NaN":  {},
	"nan":  {},
	"NULL": {},
	"null": {},
	"N/A":  {},
	"n/a":  {},
	"None": {},
	".":    {},
}

// IsNullToken reports whether a field value stands for missing data.
func IsNullToken(s string) bool {
	_, isNull := nullTokens[s]
	return isNull
}

// Parser maps raw delimited rows onto Markers once its Layout has been
// resolved against a header line.
type Parser struct {
	Layout Layout

	chromCol, posCol, pvCol, annoCol int

	// chrStripped counts rows whose chromosome label arrived with a leading
	// "chr" that the parser removed.
	chrStripped int
}

// NewParser resolves the layout's column names against the header. Every
// named column must be present; the annotation column is only looked up when
// the layout names one.
func NewParser(layout Layout, header []string) (*Parser, error) {
	p := &Parser{
		Layout:   layout,
		chromCol: -1,
		posCol:   -1,
		pvCol:    -1,
		annoCol:  -1,
	}

	for i, name := range header {
		switch name {
		case layout.ChromCol:
			p.chromCol = i
		case layout.PosCol:
			p.posCol = i
		case layout.PValueCol:
			p.pvCol = i
		}
		if layout.AnnotationCol != "" && name == layout.AnnotationCol {
			p.annoCol = i
		}
	}

	for col, name := range map[int]string{
		p.chromCol: layout.ChromCol,
		p.posCol:   layout.PosCol,
		p.pvCol:    layout.PValueCol,
	} {
		if col < 0 {
			return nil, fmt.Errorf("column %q not found in header %v", name, header)
		}
	}
	if layout.AnnotationCol != "" && p.annoCol < 0 {
		return nil, fmt.Errorf("annotation column %q not found in header %v", layout.AnnotationCol, header)
	}

	return p, nil
}

// ParseRow converts one data row into a Marker. Rows with null tokens in any
// required field yield ErrMissingValue; malformed or out-of-range values
// yield a fatal error.
func (p *Parser) ParseRow(row []string) (Marker, error) {
	chrom, pos, pv := row[p.chromCol], row[p.posCol], row[p.pvCol]
	if IsNullToken(chrom) || IsNullToken(pos) || IsNullToken(pv) {
		return Marker{}, ErrMissingValue
	}

	if len(chrom) > 3 && strings.EqualFold(chrom[:3], "chr") {
		chrom = chrom[3:]
		p.chrStripped++
	}

	position, err := strconv.Atoi(pos)
	if err != nil {
		return Marker{}, fmt.Errorf("position %q is not an integer", pos)
	}
	if position < 0 {
		return Marker{}, fmt.Errorf("position %d is negative", position)
	}

	pValue, err := strconv.ParseFloat(pv, 64)
	if err != nil {
		return Marker{}, fmt.Errorf("p-value %q is not a number", pv)
	}
	if !(pValue > 0 && pValue <= 1) {
		return Marker{}, fmt.Errorf("p-value %v is outside (0, 1]", pValue)
	}

	m := Marker{
		Chromosome: chrom,
		Position:   position,
		P:          pValue,
	}

	if p.annoCol >= 0 {
		if id := row[p.annoCol]; !IsNullToken(id) {
			m.ID = null.StringFrom(id)
		}
	}

	return m, nil
}

// ChrPrefixStripped reports how many rows had a leading "chr" removed from
// their chromosome label.
func (p *Parser) ChrPrefixStripped() int {
	return p.chrStripped
}

// Report summarizes one pass over a summary-statistics stream.
type Report struct {
	// Rows counts data rows, excluding the header.
	Rows int

	// Kept counts rows that became Markers.
	Kept int

	// DroppedMissing counts rows discarded for null chromosome, position,
	// or p-value fields.
	DroppedMissing int

	// ChrPrefixStripped counts rows whose chromosome label had a leading
	// "chr" removed.
	ChrPrefixStripped int
}

// Read consumes an entire delimited summary-statistics stream, header line
// first, and returns its markers in input order. Rows with missing required
// fields are dropped and counted in the report; any other malformed row
// aborts the read with its line number.
func Read(r io.Reader, delimiter rune, layout Layout) ([]Marker, Report, error) {
	report := Report{}

	cr := csv.NewReader(r)
	cr.Comma = delimiter

	header, err := cr.Read()
	if err == io.EOF {
		return nil, report, fmt.Errorf("input has no header line")
	} else if err != nil {
		return nil, report, pfx.Err(err)
	}

	parser, err := NewParser(layout, header)
	if err != nil {
		return nil, report, pfx.Err(err)
	}

	var markers []Marker
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			// csv errors already carry their line number.
			return nil, report, pfx.Err(err)
		}

		report.Rows++

		m, err := parser.ParseRow(row)
		if errors.Is(err, ErrMissingValue) {
			report.DroppedMissing++
			continue
		} else if err != nil {
			return nil, report, fmt.Errorf("line %d: %w", line, err)
		}

		report.Kept++
		markers = append(markers, m)
	}

	report.ChrPrefixStripped = parser.ChrPrefixStripped()

	return markers, report, nil
}
