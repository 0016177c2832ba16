package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/liqingbioinfo/qmplot/manhattan"
)

type topSignalRow struct {
	ID          string  `csv:"ID"`
	Chromosome  string  `csv:"CHROM"`
	Position    int     `csv:"POS"`
	P           float64 `csv:"P"`
	NegLog10P   float64 `csv:"NEG_LOG10_P"`
	WindowStart int     `csv:"WINDOW_START"`
}

// writeTopSignalReport saves the selected top signals as a tab-separated
// table next to the plots. With no signals the file still gets its header,
// so downstream tooling can tell "ran, found none" from "never ran".
func writeTopSignalReport(outPrefix string, signals []manhattan.TopSignal) error {
	filename := outPrefix + ".topsnp.tsv"

	rows := make([]*topSignalRow, 0, len(signals))
	for _, sig := range signals {
		rows = append(rows, &topSignalRow{
			ID:          sig.Marker.ID.String,
			Chromosome:  sig.Chromosome,
			Position:    sig.Marker.Position,
			P:           sig.Marker.P,
			NegLog10P:   sig.Marker.NegLog10P(),
			WindowStart: sig.WindowStart,
		})
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if err := gocsv.MarshalFile(&rows, outFile); err != nil {
		return err
	}

	log.Printf("Wrote %d top signals to %s\n", len(rows), filename)

	return nil
}
