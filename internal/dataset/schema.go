package dataset

import (
	"github.com/inodb/mavecheck/internal/variant"
)

// Kind selects the dataset flavor being validated. Scores files carry the
// required "score" column; counts files reserve no data columns.
type Kind int

const (
	KindScores Kind = iota + 1
	KindCounts
)

func (k Kind) String() string {
	switch k {
	case KindScores:
		return "scores"
	case KindCounts:
		return "counts"
	default:
		return "dataset"
	}
}

// ScoreColumn is the required data column for scores datasets.
const ScoreColumn = "score"

// HGVSColumnNames lists the recognized HGVS column headers in canonical
// order.
func HGVSColumnNames() []string {
	return []string{
		variant.ColumnNucleotide.Name(),
		variant.ColumnTranscript.Name(),
		variant.ColumnProtein.Name(),
	}
}

func isHGVSColumn(name string) bool {
	for _, c := range HGVSColumnNames() {
		if name == c {
			return true
		}
	}
	return false
}

// Schema fixes the canonical column order for a dataset kind: HGVS columns
// first, the score column next for scores files, then user columns in
// their original order.
type Schema struct {
	rank map[string]int
}

// NewSchema returns the canonical schema for the dataset kind.
func NewSchema(kind Kind) *Schema {
	rank := map[string]int{
		variant.ColumnNucleotide.Name(): 0,
		variant.ColumnTranscript.Name(): 1,
		variant.ColumnProtein.Name():    2,
	}
	if kind == KindScores {
		rank[ScoreColumn] = 3
	}
	return &Schema{rank: rank}
}

// Rank returns the sort rank of a column. Columns without a reserved slot
// share the final rank and keep their original relative order.
func (s *Schema) Rank(column string) int {
	if r, ok := s.rank[column]; ok {
		return r
	}
	return 100
}
