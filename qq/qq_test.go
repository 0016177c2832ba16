package qq

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestPointsPairing(t *testing.T) {
	expected, observed := Points([]float64{0.5, 0.01, 0.25})

	if len(expected) != 3 || len(observed) != 3 {
		t.Fatalf("expected 3 pairs, got %d and %d", len(expected), len(observed))
	}

	// Rank 1 of 3 pairs the smallest p-value, 0.01, with 1/4.
	wantExpected := []float64{-math.Log10(1.0 / 4), -math.Log10(2.0 / 4), -math.Log10(3.0 / 4)}
	wantObserved := []float64{2, -math.Log10(0.25), -math.Log10(0.5)}
	for i := range wantExpected {
		if math.Abs(expected[i]-wantExpected[i]) > tolerance {
			t.Errorf("expected quantile %d: want %v, got %v", i, wantExpected[i], expected[i])
		}
		if math.Abs(observed[i]-wantObserved[i]) > tolerance {
			t.Errorf("observed quantile %d: want %v, got %v", i, wantObserved[i], observed[i])
		}
	}
}

func TestPointsPermutationInvariant(t *testing.T) {
	a := []float64{0.9, 0.001, 0.3, 0.5, 0.02}
	b := []float64{0.02, 0.3, 0.9, 0.5, 0.001}

	expA, obsA := Points(a)
	expB, obsB := Points(b)

	for i := range expA {
		if math.Abs(expA[i]-expB[i]) > tolerance || math.Abs(obsA[i]-obsB[i]) > tolerance {
			t.Fatalf("pair %d differs between permutations: (%v, %v) vs (%v, %v)", i, expA[i], obsA[i], expB[i], obsB[i])
		}
	}
}

func TestPointsDoesNotMutateInput(t *testing.T) {
	in := []float64{0.9, 0.1, 0.5}
	Points(in)

	if in[0] != 0.9 || in[1] != 0.1 || in[2] != 0.5 {
		t.Errorf("input was reordered: %v", in)
	}
}

func TestPointsEmpty(t *testing.T) {
	expected, observed := Points(nil)
	if expected != nil || observed != nil {
		t.Errorf("expected no pairs for no p-values, got %v and %v", expected, observed)
	}
}

func TestLambdaUniform(t *testing.T) {
	// Median p of 0.5 is exactly the null expectation.
	lambda, err := Lambda([]float64{0.1, 0.3, 0.5, 0.7, 0.9})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lambda-1) > tolerance {
		t.Errorf("expected lambda 1 for a uniform median, got %v", lambda)
	}
}

func TestLambdaInflation(t *testing.T) {
	inflated, err := Lambda([]float64{0.01, 0.02, 0.05, 0.2, 0.4})
	if err != nil {
		t.Fatal(err)
	}
	if inflated <= 1 {
		t.Errorf("expected lambda above 1 when p-values skew small, got %v", inflated)
	}

	deflated, err := Lambda([]float64{0.6, 0.7, 0.8, 0.9, 0.95})
	if err != nil {
		t.Fatal(err)
	}
	if deflated >= 1 {
		t.Errorf("expected lambda below 1 when p-values skew large, got %v", deflated)
	}
}

func TestLambdaEmpty(t *testing.T) {
	if _, err := Lambda(nil); err == nil {
		t.Error("expected an error for no p-values")
	}
}
