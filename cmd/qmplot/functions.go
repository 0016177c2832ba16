package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/liqingbioinfo/qmplot/manhattan"
	"github.com/liqingbioinfo/qmplot/qq"
	"github.com/liqingbioinfo/qmplot/sumstats"
	"github.com/wcharczuk/go-chart/v2"
)

// plotSet carries everything both renderers and the HTTP viewer need, so a
// single pass over the input feeds every output.
type plotSet struct {
	layout   *manhattan.Layout
	signals  []manhattan.TopSignal
	expected []float64
	observed []float64
	lambda   float64

	manhattan manhattan.PlotOptions
	qq        qq.PlotOptions
}

// labeledChromosomes thins the chromosome axis on a whole-genome plot: the
// later human autosomes are too narrow for every name to fit.
var labeledChromosomes = map[string]bool{
	"1": true, "2": true, "3": true, "4": true, "5": true, "6": true,
	"7": true, "8": true, "9": true, "10": true, "11": true, "12": true,
	"13": true, "14": true, "16": true, "18": true, "20": true, "22": true,
	"X": true,
}

// axisLabels decides which chromosome names are printed on the x-axis. A
// plot with few chromosomes has room for all of them; a dense plot falls
// back to the thinned human set, though labels outside the standard human
// karyotype are always printed.
func axisLabels(l *manhattan.Layout) map[string]bool {
	if len(l.Spans) <= 8 {
		return nil
	}

	out := make(map[string]bool, len(l.Spans))
	for _, span := range l.Spans {
		out[span.Name] = labeledChromosomes[span.Name] || !standardChromosome(span.Name)
	}

	return out
}

func standardChromosome(name string) bool {
	if n, err := strconv.Atoi(name); err == nil {
		return n >= 1 && n <= 22
	}

	switch name {
	case "X", "Y", "MT", "M":
		return true
	}

	return false
}

func writePlots(plots *plotSet, outPrefix, outType string) error {
	manhattanFile := fmt.Sprintf("%s.manhattan.%s", outPrefix, outType)
	qqFile := fmt.Sprintf("%s.QQ.%s", outPrefix, outType)

	if outType == "html" {
		if err := renderHTMLToFile(manhattan.HTMLChart(plots.layout, plots.signals, plots.manhattan), manhattanFile); err != nil {
			return err
		}

		return renderHTMLToFile(qq.HTMLChart(plots.expected, plots.observed, plots.lambda, plots.qq), qqFile)
	}

	rp := chart.PNG
	if outType == "svg" {
		rp = chart.SVG
	}

	if err := renderChartToFile(manhattan.Plot(plots.layout, plots.signals, plots.manhattan), rp, manhattanFile); err != nil {
		return err
	}

	return renderChartToFile(qq.Plot(plots.expected, plots.observed, plots.qq), rp, qqFile)
}

func renderChartToFile(graph chart.Chart, rp chart.RendererProvider, filename string) error {
	// Render to a byte buffer first so a failed render never truncates an
	// existing output file.
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(rp, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	log.Println("Wrote", filename)

	return nil
}

type htmlRenderer interface {
	Render(w io.Writer) error
}

func renderHTMLToFile(page htmlRenderer, filename string) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if err := page.Render(outFile); err != nil {
		return err
	}

	log.Println("Wrote", filename)

	return nil
}

// printPValueHistogram sketches the -log10(P) distribution in the terminal.
func printPValueHistogram(markers []sumstats.Marker) {
	if len(markers) == 0 {
		return
	}

	vals := make([]float64, 0, len(markers))
	for _, m := range markers {
		vals = append(vals, m.NegLog10P())
	}

	log.Println("Distribution of -log10(P):")
	hist := histogram.Hist(25, vals)
	if err := histogram.Fprint(os.Stderr, hist, histogram.Linear(5)); err != nil {
		log.Println(err)
	}
}
