package dataset

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/inodb/mavecheck/internal/variant"
)

// Record is one validated variant row with the score and count values it
// carries downstream.
type Record struct {
	HGVSNt     *string    `json:"hgvs_nt"`
	HGVSSplice *string    `json:"hgvs_splice"`
	HGVSPro    *string    `json:"hgvs_pro"`
	Data       RecordData `json:"data"`
}

// RecordData holds the non-HGVS column values contributed by each file.
// Counts is empty when no counts file was supplied or when its content
// duplicates the scores file.
type RecordData struct {
	Scores map[string]any `json:"scores"`
	Counts map[string]any `json:"counts"`
}

// BuildRecords merges a validated scores dataset and an optional
// validated counts dataset into one record per scores row. Rows are
// grouped by the primary HGVS key in first-seen order and matched
// positionally with the counts rows sharing that key; rows with a null
// primary key are skipped. Both datasets defining the same variants is a
// precondition (see Match); group sizes are still length-checked.
func BuildRecords(scores, counts *Dataset) ([]Record, error) {
	if scores == nil || !scores.IsValid() {
		return nil, fmt.Errorf("scores dataset must be validated before building records")
	}
	if counts != nil && !counts.IsValid() {
		return nil, fmt.Errorf("counts dataset must be validated before building records")
	}

	key := scores.indexColumn
	groups, order := groupRowsByKey(scores.table, key)

	var countGroups map[string][]int
	if counts != nil {
		countGroups, _ = groupRowsByKey(counts.table, key)
	}

	var records []Record
	for _, k := range order {
		scoreRows := groups[k]
		var countRows []int
		if counts != nil {
			countRows = countGroups[k]
			if len(countRows) != len(scoreRows) {
				return nil, fmt.Errorf(
					"variant '%s' has %d scores rows but %d counts rows",
					k, len(scoreRows), len(countRows))
			}
		}
		for i, row := range scoreRows {
			sr := residualData(scores.table, row)
			cr := map[string]any{}
			if counts != nil {
				cr = residualData(counts.table, countRows[i])
			}
			if reflect.DeepEqual(cr, sr) {
				cr = map[string]any{}
			}
			records = append(records, Record{
				HGVSNt:     cellValue(scores.table, row, variant.ColumnNucleotide.Name()),
				HGVSSplice: cellValue(scores.table, row, variant.ColumnTranscript.Name()),
				HGVSPro:    cellValue(scores.table, row, variant.ColumnProtein.Name()),
				Data:       RecordData{Scores: sr, Counts: cr},
			})
		}
	}
	return records, nil
}

// groupRowsByKey groups row indices by the value of the key column,
// skipping null keys. The second return preserves first-seen key order.
func groupRowsByKey(t *Table, key string) (map[string][]int, []string) {
	groups := make(map[string][]int)
	var order []string
	for i, v := range t.data[key] {
		if v == "" {
			continue
		}
		if len(groups[v]) == 0 {
			order = append(order, v)
		}
		groups[v] = append(groups[v], i)
	}
	return groups, order
}

// residualData maps the row's non-HGVS columns to typed values: nulls to
// nil, numerics to float64, everything else to the raw string.
func residualData(t *Table, row int) map[string]any {
	data := make(map[string]any)
	for _, col := range t.columns {
		if isHGVSColumn(col) {
			continue
		}
		cell := t.data[col][row]
		if cell == "" {
			data[col] = nil
			continue
		}
		// Infinities stay strings so records remain JSON-encodable.
		if f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil && !math.IsInf(f, 0) {
			data[col] = f
			continue
		}
		data[col] = cell
	}
	return data
}

// cellValue returns a pointer to the cell value, or nil for null cells.
func cellValue(t *Table, row int, column string) *string {
	cell := t.data[column][row]
	if cell == "" {
		return nil
	}
	v := cell
	return &v
}
