package qq

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTMLChart builds the interactive echarts rendition of the Q-Q plot. A
// positive lambda is reported in the subtitle.
func HTMLChart(expected, observed []float64, lambda float64, opt PlotOptions) *charts.Scatter {
	subtitle := ""
	if lambda > 0 {
		subtitle = fmt.Sprintf("genomic-control lambda = %.4f", lambda)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "600px",
			Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: opt.Title, Subtitle: subtitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Expected -log10(P)", Type: "value", Min: 0}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Observed -log10(P)", Type: "value", Min: 0}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.ScatterData, 0, len(expected))
	for i := range expected {
		data = append(data, opts.ScatterData{
			Value:      []interface{}{round3(expected[i]), round3(observed[i])},
			SymbolSize: 5,
		})
	}
	scatter.AddSeries("quantiles", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#3B5488"}),
	)

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

	diag := charts.NewLine()
	diag.AddSeries("identity", []opts.LineData{
		{Value: []interface{}{0.0, 0.0}},
		{Value: []interface{}{round3(max), round3(max)}},
	},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#D62728"}),
		charts.WithLineChartOpts(opts.LineChart{Symbol: "none"}),
	)
	scatter.Overlap(diag)

	return scatter
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
