// qmplot renders a Manhattan plot and a Q-Q plot from GWAS summary
// statistics. Input is a delimited table with chromosome, position, and
// p-value columns; output is a pair of image files, or an interactive HTML
// page, or a local HTTP viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	_ "github.com/liqingbioinfo/qmplot/buildinfoprint"
	"github.com/liqingbioinfo/qmplot/manhattan"
	"github.com/liqingbioinfo/qmplot/qq"
	"github.com/liqingbioinfo/qmplot/sumstats"
)

// Figure geometry in inches, scaled by -dpi at render time.
const (
	manhattanWidthIn  = 12.0
	manhattanHeightIn = 4.0
	qqSizeIn          = 6.0
)

var client *storage.Client

func main() {
	var input, outPrefix, outType, title string
	var chromCol, posCol, pvalueCol, annotationCol, chromosomes string
	var signP, suggestiveP, dpi float64
	var ldBlockSize, port int
	var dropUnknown, combined, display, verbose bool

	flag.StringVar(&input, "input", "", "Path to the GWAS summary-statistics file. Optionally, may be a google storage URL (gs://). May be compressed (gzip, zip, xz, zlib, or bzip2).")
	flag.StringVar(&outPrefix, "outprefix", "", "Prefix for the output files: <prefix>.manhattan.<ext> and <prefix>.QQ.<ext>")
	flag.StringVar(&outType, "outfiletype", "png", "Output file type: png, svg, or html")
	flag.StringVar(&title, "title", "", "Title to print above each plot")
	flag.StringVar(&chromCol, "chrom", "#CHROM", "Name of the chromosome column in the input header")
	flag.StringVar(&posCol, "pos", "POS", "Name of the base-pair position column in the input header")
	flag.StringVar(&pvalueCol, "pvalue", "P", "Name of the p-value column in the input header")
	flag.StringVar(&annotationCol, "annotation_col", "", "(Optional) Name of the marker-identifier column. Enables top-signal labeling and the <prefix>.topsnp.tsv report.")
	flag.Float64Var(&signP, "sign_pvalue", 5e-8, "Genome-wide significance threshold. Markers at or below it are drawn in red.")
	flag.Float64Var(&suggestiveP, "suggestive_pvalue", 1e-5, "Suggestive threshold for a second dashed line. 0 disables it.")
	flag.IntVar(&ldBlockSize, "ld_block_size", 500000, "Window size in base pairs for top-signal selection")
	flag.Float64Var(&dpi, "dpi", 300, "Resolution for raster output")
	flag.StringVar(&chromosomes, "chromosomes", "", "(Optional) Comma-delimited chromosome labels fixing which chromosomes are drawn, and in what order")
	flag.BoolVar(&dropUnknown, "drop_unknown_chrom", false, "Drop markers whose chromosome is not in -chromosomes instead of failing")
	flag.BoolVar(&combined, "combined", false, "Also write <prefix>.combined.png with the Manhattan plot above the Q-Q plot")
	flag.BoolVar(&display, "display", false, "After writing files, serve the plots over HTTP until interrupted")
	flag.IntVar(&port, "port", 9019, "Port for the HTTP server when -display is set")
	flag.BoolVar(&verbose, "verbose", false, "Print extra progress detail and a terminal histogram of -log10(P)")
	flag.Parse()

	if input == "" {
		flag.Usage()
		log.Fatalln("Must specify an -input file")
	}
	if outPrefix == "" {
		flag.Usage()
		log.Fatalln("Must specify an -outprefix")
	}

	outType = strings.ToLower(outType)
	if outType != "png" && outType != "svg" && outType != "html" {
		log.Fatalf("-outfiletype must be png, svg, or html; got %q\n", outType)
	}
	if !(signP > 0 && signP < 1) {
		log.Fatalf("-sign_pvalue must be within (0, 1); got %v\n", signP)
	}
	if suggestiveP != 0 && !(suggestiveP > 0 && suggestiveP < 1) {
		log.Fatalf("-suggestive_pvalue must be 0 or within (0, 1); got %v\n", suggestiveP)
	}
	if ldBlockSize <= 0 {
		log.Fatalf("-ld_block_size must be positive; got %d\n", ldBlockSize)
	}
	if dpi <= 0 {
		log.Fatalf("-dpi must be positive; got %v\n", dpi)
	}

	if strings.HasPrefix(input, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	columns := sumstats.Layout{
		ChromCol:      chromCol,
		PosCol:        posCol,
		PValueCol:     pvalueCol,
		AnnotationCol: annotationCol,
	}

	markers, report, err := readInput(input, columns)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Read %d data rows: kept %d, dropped %d with missing values\n", report.Rows, report.Kept, report.DroppedMissing)
	if report.ChrPrefixStripped > 0 {
		log.Printf("Warning: stripped a leading 'chr' from the chromosome label of %d rows\n", report.ChrPrefixStripped)
	}
	if len(markers) == 0 {
		log.Println("Warning: no plottable markers remain; the plots will be empty")
	}

	if verbose {
		printPValueHistogram(markers)
	}

	var order []string
	if chromosomes != "" {
		for _, name := range strings.Split(chromosomes, ",") {
			order = append(order, strings.TrimSpace(name))
		}
	}

	genomeLayout, err := manhattan.NewLayout(markers, order, dropUnknown)
	if err != nil {
		log.Fatalln(err)
	}
	if genomeLayout.DroppedUnknown > 0 {
		log.Printf("Warning: dropped %d markers on chromosomes outside %v\n", genomeLayout.DroppedUnknown, order)
	}
	if verbose {
		log.Printf("Placed %d markers across %d chromosomes; the x-axis spans %d positions\n", genomeLayout.PointCount(), len(genomeLayout.Spans), genomeLayout.End())
	}

	var signals []manhattan.TopSignal
	if annotationCol != "" {
		signals = manhattan.TopSignals(genomeLayout, signP, ldBlockSize)
		log.Printf("Selected %d top signals from %d-bp windows\n", len(signals), ldBlockSize)
	}

	pValues := make([]float64, 0, len(markers))
	for _, m := range markers {
		pValues = append(pValues, m.P)
	}
	expected, observed := qq.Points(pValues)

	lambda := 0.0
	if len(pValues) > 0 {
		if lambda, err = qq.Lambda(pValues); err != nil {
			log.Fatalln(err)
		}
		log.Printf("Genomic-control lambda: %.4f\n", lambda)
	}

	manhattanOpts := manhattan.PlotOptions{
		Title:              title,
		Width:              int(manhattanWidthIn * dpi),
		Height:             int(manhattanHeightIn * dpi),
		DPI:                dpi,
		GenomeWideP:        signP,
		SuggestiveP:        suggestiveP,
		LabeledChromosomes: axisLabels(genomeLayout),
	}
	qqOpts := qq.PlotOptions{
		Title:  title,
		Width:  int(qqSizeIn * dpi),
		Height: int(qqSizeIn * dpi),
		DPI:    dpi,
	}

	plots := &plotSet{
		layout:    genomeLayout,
		signals:   signals,
		expected:  expected,
		observed:  observed,
		lambda:    lambda,
		manhattan: manhattanOpts,
		qq:        qqOpts,
	}

	if err := writePlots(plots, outPrefix, outType); err != nil {
		log.Fatalln(err)
	}

	if annotationCol != "" {
		if err := writeTopSignalReport(outPrefix, signals); err != nil {
			log.Fatalln(err)
		}
	}

	if combined {
		if err := writeCombined(plots, outPrefix, dpi); err != nil {
			log.Fatalln(err)
		}
	}

	fmt.Println(">>>>>>>>>>>>>>>>> Create Manhattan and Q-Q plots done <<<<<<<<<<<<<<<<<")

	if display {
		serveViewer(plots, port)
	}
}
