// Package qq pairs observed GWAS p-values with their expected quantiles
// under the null and renders the comparison as a Q-Q plot.
package qq

import (
	"math"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Points pairs each p-value with its expected quantile under the uniform
// null. The i-th smallest p-value (1-based rank i out of n) is paired with
// rank/(n+1); both sides come back on the -log10 scale, ordered from the
// smallest p-value to the largest. The input slice is not modified.
func Points(pValues []float64) (expected, observed []float64) {
	n := len(pValues)
	if n == 0 {
		return nil, nil
	}

	sorted := make([]float64, n)
	copy(sorted, pValues)
	sort.Float64s(sorted)

	expected = make([]float64, n)
	observed = make([]float64, n)
	for i, p := range sorted {
		expected[i] = -math.Log10(float64(i+1) / float64(n+1))
		observed[i] = -math.Log10(p)
	}

	return expected, observed
}

// Lambda computes the genomic-control inflation factor: the median observed
// chi-square statistic over the median expected under the null. Values near
// 1 mean the test statistics are well calibrated; values well above 1
// suggest confounding or polygenicity.
func Lambda(pValues []float64) (float64, error) {
	medianP, err := stats.Median(pValues)
	if err != nil {
		return 0, pfx.Err(err)
	}

	chi := distuv.ChiSquared{K: 1}

	return chi.Quantile(1-medianP) / chi.Quantile(0.5), nil
}
