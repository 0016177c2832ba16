package manhattan

import (
	"fmt"
	"testing"

	"github.com/liqingbioinfo/qmplot/sumstats"
	"gopkg.in/guregu/null.v3"
)

func annotated(chrom string, pos int, p float64, id string) sumstats.Marker {
	return sumstats.Marker{Chromosome: chrom, Position: pos, P: p, ID: null.StringFrom(id)}
}

func TestTopSignalsPicksWindowMinima(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 10, 1e-9, "rs1"),
		annotated("1", 50, 1e-10, "rs2"),
		annotated("1", 150, 1e-9, "rs3"),
		annotated("1", 250, 0.5, "rs4"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	signals := TopSignals(l, 5e-8, 100)
	if len(signals) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(signals))
	}

	if got := signals[0].Marker.ID.String; got != "rs2" {
		t.Errorf("expected rs2 to win window 0, got %s", got)
	}
	if got := signals[1].Marker.ID.String; got != "rs3" {
		t.Errorf("expected rs3 to win window 1, got %s", got)
	}
	if signals[0].WindowStart != 0 || signals[1].WindowStart != 100 {
		t.Errorf("unexpected window starts: %d, %d", signals[0].WindowStart, signals[1].WindowStart)
	}
}

func TestTopSignalsTieGoesToFirstInInput(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 80, 1e-9, "first"),
		annotated("1", 20, 1e-9, "second"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	signals := TopSignals(l, 5e-8, 100)
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if got := signals[0].Marker.ID.String; got != "first" {
		t.Errorf("expected the tie to go to the first input marker, got %s", got)
	}
}

func TestTopSignalsUnannotatedWinnerSuppressesWindow(t *testing.T) {
	markers := []sumstats.Marker{
		mk("1", 60, 1e-9),
		annotated("1", 70, 1e-8, "runner-up"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	// The window minimum has no ID, so the window yields nothing; the
	// annotated runner-up must not be promoted.
	if signals := TopSignals(l, 5e-8, 100); len(signals) != 0 {
		t.Errorf("expected no signals, got %+v", signals)
	}
}

func TestTopSignalsFollowDisplayOrder(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("2", 10, 1e-9, "chr2hit"),
		annotated("1", 900, 1e-9, "chr1late"),
		annotated("1", 5, 1e-9, "chr1early"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	signals := TopSignals(l, 5e-8, 100)
	got := make([]string, 0, len(signals))
	for _, sig := range signals {
		got = append(got, sig.Marker.ID.String)
	}

	expected := []string{"chr1early", "chr1late", "chr2hit"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}

	for _, sig := range signals {
		if sig.Chromosome == "" {
			t.Errorf("signal %s has no chromosome", sig.Marker.ID.String)
		}
	}
}

func TestTopSignalsOneWinnerPerWindow(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 100, 1e-2, "a"),
		annotated("1", 100200, 1e-9, "b"),
		annotated("2", 50, 0.5, "c"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	// With the threshold wide open, every window reports its minimum.
	signals := TopSignals(l, 1, 100000)
	if len(signals) != 3 {
		t.Fatalf("expected 3 signals, got %d", len(signals))
	}

	if signals[0].Marker.ID.String != "a" || signals[0].WindowStart != 0 {
		t.Errorf("window [0, 100000) should report marker a, got %s at %d", signals[0].Marker.ID.String, signals[0].WindowStart)
	}
	if signals[1].Marker.ID.String != "b" || signals[1].WindowStart != 100000 {
		t.Errorf("window [100000, 200000) should report marker b, got %s at %d", signals[1].Marker.ID.String, signals[1].WindowStart)
	}
	if signals[2].Marker.ID.String != "c" || signals[2].Chromosome != "2" {
		t.Errorf("chromosome 2 should report marker c, got %s on %s", signals[2].Marker.ID.String, signals[2].Chromosome)
	}

	seen := map[string]bool{}
	for _, sig := range signals {
		key := fmt.Sprintf("%s:%d", sig.Chromosome, sig.WindowStart)
		if seen[key] {
			t.Errorf("two signals share chromosome %s window %d", sig.Chromosome, sig.WindowStart)
		}
		seen[key] = true
	}
}

func TestTopSignalsIgnoreInsignificant(t *testing.T) {
	markers := []sumstats.Marker{
		annotated("1", 10, 1e-4, "weak"),
	}

	l, err := NewLayout(markers, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	if signals := TopSignals(l, 5e-8, 100); len(signals) != 0 {
		t.Errorf("expected no signals above the threshold, got %+v", signals)
	}
}
