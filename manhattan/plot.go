package manhattan

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colors follow the usual GWAS conventions: two alternating blues for the
// chromosome stripes, red for significant markers, and distinct dashed lines
// for the genome-wide and suggestive thresholds.
var (
	PointColors      = []drawing.Color{drawing.ColorFromHex("3B5488"), drawing.ColorFromHex("53BBD5")}
	SignificantColor = drawing.ColorFromHex("EA4025")
	GenomeWideColor  = drawing.ColorFromHex("D62728")
	SuggestiveColor  = drawing.ColorFromHex("2CA02C")
)

// PlotOptions control the rendered Manhattan chart. Zero values fall back to
// sensible defaults; a zero threshold disables its line.
type PlotOptions struct {
	Title  string
	Width  int
	Height int
	DPI    float64

	// GenomeWideP draws a dashed line at -log10 of this p-value and paints
	// markers at or below it in red.
	GenomeWideP float64

	// SuggestiveP draws a second dashed line at -log10 of this p-value.
	SuggestiveP float64

	// LabeledChromosomes limits which chromosomes get a printed axis label.
	// Every chromosome still gets a tick. Nil labels all of them.
	LabeledChromosomes map[string]bool
}

// dotStyle renders points only, no connecting line.
func dotStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    width,
		DotColor:    col,
	}
}

func dashedLineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor:     col,
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{5.0, 5.0},
	}
}

// Plot assembles the Manhattan chart for a layout: one dot series per
// chromosome in alternating colors, significant markers redrawn on top in
// red, dashed threshold lines, and a text label for each top signal.
func Plot(l *Layout, signals []TopSignal, opt PlotOptions) chart.Chart {
	if opt.Width == 0 {
		opt.Width = 1800
	}
	if opt.Height == 0 {
		opt.Height = 600
	}
	if opt.DPI == 0 {
		opt.DPI = chart.DefaultDPI
	}

	xMax := float64(l.End())
	if xMax <= 0 {
		xMax = 1
	}

	yMax := l.MaxNegLog10P()
	if opt.GenomeWideP > 0 {
		yMax = math.Max(yMax, -math.Log10(opt.GenomeWideP))
	}
	if opt.SuggestiveP > 0 {
		yMax = math.Max(yMax, -math.Log10(opt.SuggestiveP))
	}
	if yMax <= 0 {
		yMax = 1
	}
	yMax *= 1.05

	var series []chart.Series

	for i, span := range l.Spans {
		xs := make([]float64, 0, len(span.Points))
		ys := make([]float64, 0, len(span.Points))
		for _, pt := range span.Points {
			xs = append(xs, float64(pt.X))
			ys = append(ys, pt.Marker.NegLog10P())
		}

		series = append(series, chart.ContinuousSeries{
			Name:    span.Name,
			XValues: xs,
			YValues: ys,
			Style:   dotStyle(PointColors[i%len(PointColors)], 3),
		})
	}

	if opt.GenomeWideP > 0 {
		if sig := l.Significant(opt.GenomeWideP); len(sig) > 0 {
			xs := make([]float64, 0, len(sig))
			ys := make([]float64, 0, len(sig))
			for _, pt := range sig {
				xs = append(xs, float64(pt.X))
				ys = append(ys, pt.Marker.NegLog10P())
			}

			series = append(series, chart.ContinuousSeries{
				Name:    "significant",
				XValues: xs,
				YValues: ys,
				Style:   dotStyle(SignificantColor, 4),
			})
		}
	}

	if opt.GenomeWideP > 0 {
		series = append(series, thresholdLine(opt.GenomeWideP, xMax, GenomeWideColor))
	}
	if opt.SuggestiveP > 0 {
		series = append(series, thresholdLine(opt.SuggestiveP, xMax, SuggestiveColor))
	}

	if len(signals) > 0 {
		annotations := make([]chart.Value2, 0, len(signals))
		for _, sig := range signals {
			annotations = append(annotations, chart.Value2{
				XValue: float64(sig.X),
				YValue: sig.Marker.NegLog10P(),
				Label:  sig.Marker.ID.String,
			})
		}

		series = append(series, chart.AnnotationSeries{
			Annotations: annotations,
			Style: chart.Style{
				StrokeColor: chart.ColorAlternateGray,
				FontSize:    8,
			},
		})
	}

	// go-chart refuses to render a chart with no visible series, so an empty
	// layout gets one series that draws neither stroke nor dots.
	if len(series) == 0 {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, xMax},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    chart.Disabled,
			},
		})
	}

	ticks := make([]chart.Tick, 0, len(l.Spans))
	for _, span := range l.Spans {
		label := span.Name
		if opt.LabeledChromosomes != nil && !opt.LabeledChromosomes[span.Name] {
			label = ""
		}
		ticks = append(ticks, chart.Tick{Value: span.Center(), Label: label})
	}

	graph := chart.Chart{
		Title:  opt.Title,
		Width:  opt.Width,
		Height: opt.Height,
		DPI:    opt.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 25, Left: 15, Right: 15, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Chromosome",
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "-log10(P)",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	if len(ticks) > 0 {
		graph.XAxis.Ticks = ticks
	}

	return graph
}

func thresholdLine(p, xMax float64, col drawing.Color) chart.Series {
	y := -math.Log10(p)

	return chart.ContinuousSeries{
		XValues: []float64{0, xMax},
		YValues: []float64{y, y},
		Style:   dashedLineStyle(col),
	}
}
