package qq

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
)

func TestPlotRendersPNG(t *testing.T) {
	expected, observed := Points([]float64{0.5, 0.01, 0.25, 0.9, 1e-6})

	graph := Plot(expected, observed, PlotOptions{Title: "test trait", Width: 400, Height: 400})

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.PNG, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected PNG bytes")
	}
}

func TestPlotRendersWhenEmpty(t *testing.T) {
	graph := Plot(nil, nil, PlotOptions{Width: 300, Height: 300})

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.SVG, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected SVG bytes")
	}
}

func TestHTMLChartRenders(t *testing.T) {
	expected, observed := Points([]float64{0.5, 0.01, 0.25})
	lambda, err := Lambda([]float64{0.5, 0.01, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	scatter := HTMLChart(expected, observed, lambda, PlotOptions{Title: "test trait"})

	buf := &bytes.Buffer{}
	if err := scatter.Render(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "echarts") {
		t.Error("expected an echarts document")
	}
}
