package sumstats

import "fmt"

// Layout names the summary-statistics columns that the plots consume. Columns
// are looked up in the header line by exact name, so the same binary can read
// output from BOLT-LMM, SAIGE, regenie, or anything else with labeled columns.
type Layout struct {
	// ChromCol is the chromosome column name.
	ChromCol string

	// PosCol is the base-pair position column name.
	PosCol string

	// PValueCol is the p-value column name.
	PValueCol string

	// AnnotationCol optionally names a marker-identifier column. When empty,
	// no annotation is read and top-signal labeling is disabled.
	AnnotationCol string
}

// DefaultLayout matches VCF-style GWAS output with a #CHROM/POS/P header.
func DefaultLayout() Layout {
	return Layout{
		ChromCol:  "#CHROM",
		PosCol:    "POS",
		PValueCol: "P",
	}
}

func (l Layout) String() string {
	return fmt.Sprintf("Chrom: %s | Pos: %s | PValue: %s | Annotation: %s", l.ChromCol, l.PosCol, l.PValueCol, l.AnnotationCol)
}
