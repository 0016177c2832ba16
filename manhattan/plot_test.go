package manhattan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/liqingbioinfo/qmplot/sumstats"
	"github.com/wcharczuk/go-chart/v2"
)

func TestPlotRendersPNG(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 100, 1e-9, "rs1"),
		mk("1", 5000, 0.5),
		mk("2", 300, 0.01),
		mk("2", 900, 0.2),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	signals := TopSignals(l, 5e-8, 500000)

	graph := Plot(l, signals, PlotOptions{
		Title:       "test trait",
		Width:       640,
		Height:      320,
		GenomeWideP: 5e-8,
		SuggestiveP: 1e-5,
	})

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.PNG, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected PNG bytes")
	}
}

func TestPlotRendersSVGWhenEmpty(t *testing.T) {
	l, err := NewLayout(nil, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	graph := Plot(l, nil, PlotOptions{Width: 320, Height: 200})

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.SVG, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected SVG bytes")
	}
}

func TestPlotTickLabels(t *testing.T) {
	markers := []sumstats.Marker{
		mk("1", 100, 0.5),
		mk("2", 100, 0.5),
		mk("15", 100, 0.5),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	graph := Plot(l, nil, PlotOptions{
		LabeledChromosomes: map[string]bool{"1": true, "2": true},
	})

	ticks := graph.XAxis.Ticks
	if len(ticks) != 3 {
		t.Fatalf("expected a tick per chromosome, got %d", len(ticks))
	}
	if ticks[0].Label != "1" || ticks[1].Label != "2" {
		t.Errorf("expected labels 1 and 2, got %q and %q", ticks[0].Label, ticks[1].Label)
	}
	if ticks[2].Label != "" {
		t.Errorf("expected chromosome 15 to have a blank label, got %q", ticks[2].Label)
	}
}

func TestHTMLChartRenders(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 100, 1e-9, "rs1"),
		mk("2", 300, 0.01),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	signals := TopSignals(l, 5e-8, 500000)

	scatter := HTMLChart(l, signals, PlotOptions{Title: "test trait", GenomeWideP: 5e-8})

	buf := &bytes.Buffer{}
	if err := scatter.Render(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "echarts") {
		t.Error("expected an echarts document")
	}
}
