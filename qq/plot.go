package qq

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	PointColor    = drawing.ColorFromHex("3B5488")
	IdentityColor = drawing.ColorFromHex("D62728")
)

// PlotOptions control the rendered Q-Q chart. Zero values fall back to a
// square 600x600 canvas at the library's default DPI.
type PlotOptions struct {
	Title  string
	Width  int
	Height int
	DPI    float64
}

// Plot assembles the Q-Q chart: expected versus observed quantiles with the
// identity line underneath. Expected and observed must be the same length.
func Plot(expected, observed []float64, opt PlotOptions) chart.Chart {
	if opt.Width == 0 {
		opt.Width = 600
	}
	if opt.Height == 0 {
		opt.Height = 600
	}
	if opt.DPI == 0 {
		opt.DPI = chart.DefaultDPI
	}

	max := 0.0
	for _, v := range expected {
		max = math.Max(max, v)
	}
	for _, v := range observed {
		max = math.Max(max, v)
	}
	if max <= 0 {
		max = 1
	}
	max *= 1.05

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "identity",
			XValues: []float64{0, max},
			YValues: []float64{0, max},
			Style: chart.Style{
				StrokeColor: IdentityColor,
				StrokeWidth: 1.0,
			},
		},
	}

	if len(expected) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "quantiles",
			XValues: expected,
			YValues: observed,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
				DotColor:    PointColor,
			},
		})
	}

	return chart.Chart{
		Title:  opt.Title,
		Width:  opt.Width,
		Height: opt.Height,
		DPI:    opt.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 25, Left: 15, Right: 15, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "Expected -log10(P)",
			Range: &chart.ContinuousRange{Min: 0, Max: max},
		},
		YAxis: chart.YAxis{
			Name:  "Observed -log10(P)",
			Range: &chart.ContinuousRange{Min: 0, Max: max},
		},
		Series: series,
	}
}
