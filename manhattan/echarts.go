package manhattan

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTMLChart builds the interactive echarts rendition of the Manhattan plot.
// Each chromosome becomes its own series so the legend can toggle it, and
// the threshold lines ride along as mark lines on the first series.
func HTMLChart(l *Layout, signals []TopSignal, opt PlotOptions) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "1400px",
			Height: "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: opt.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Chromosome", Type: "value", Min: 0}),
		charts.WithYAxisOpts(opts.YAxis{Name: "-log10(P)", Type: "value", Min: 0}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	for i, span := range l.Spans {
		data := make([]opts.ScatterData, 0, len(span.Points))
		for _, pt := range span.Points {
			data = append(data, opts.ScatterData{
				Value:      []interface{}{pt.X, round3(pt.Marker.NegLog10P())},
				SymbolSize: 5,
			})
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{Color: pointColorHex(i)}),
		}
		if i == 0 {
			seriesOpts = append(seriesOpts, markLines(opt)...)
		}

		scatter.AddSeries(span.Name, data, seriesOpts...)
	}

	if opt.GenomeWideP > 0 {
		if sig := l.Significant(opt.GenomeWideP); len(sig) > 0 {
			data := make([]opts.ScatterData, 0, len(sig))
			for _, pt := range sig {
				name := ""
				if pt.Marker.ID.Valid {
					name = pt.Marker.ID.String
				}
				data = append(data, opts.ScatterData{
					Name:       name,
					Value:      []interface{}{pt.X, round3(pt.Marker.NegLog10P())},
					SymbolSize: 7,
				})
			}

			scatter.AddSeries("significant", data,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: "#EA4025"}),
			)
		}
	}

	if len(signals) > 0 {
		data := make([]opts.ScatterData, 0, len(signals))
		for _, sig := range signals {
			data = append(data, opts.ScatterData{
				Name:       sig.Marker.ID.String,
				Value:      []interface{}{sig.X, round3(sig.Marker.NegLog10P())},
				SymbolSize: 10,
				Symbol:     "diamond",
			})
		}

		scatter.AddSeries("top signals", data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#FFB90F"}),
		)
	}

	return scatter
}

func markLines(opt PlotOptions) []charts.SeriesOpts {
	var out []charts.SeriesOpts

	if opt.GenomeWideP > 0 {
		out = append(out,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "genome-wide",
				YAxis: round3(-math.Log10(opt.GenomeWideP)),
			}),
		)
	}
	if opt.SuggestiveP > 0 {
		out = append(out,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "suggestive",
				YAxis: round3(-math.Log10(opt.SuggestiveP)),
			}),
		)
	}

	return out
}

func pointColorHex(i int) string {
	if i%2 == 0 {
		return "#3B5488"
	}

	return "#53BBD5"
}

// round3 keeps the tooltip values short.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
