package dataset

import "sort"

// Table is an ordered collection of named string columns parsed from one
// uploaded file. Null cells are canonicalized to empty strings by the
// reader.
type Table struct {
	columns []string
	data    map[string][]string
	nrows   int
}

// NewTable builds a table from an ordered header and row-major cells. Rows
// shorter than the header are padded with nulls; surplus cells are
// dropped.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		data:    make(map[string][]string, len(columns)),
		nrows:   len(rows),
	}
	for i, c := range t.columns {
		cells := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				cells[j] = row[i]
			}
		}
		t.data[c] = cells
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NRows returns the number of data rows.
func (t *Table) NRows() int { return t.nrows }

// NColumns returns the number of columns.
func (t *Table) NColumns() int { return len(t.columns) }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.data[name]
	return ok
}

// Column returns a copy of the named column's cells, or nil for unknown
// columns.
func (t *Table) Column(name string) []string {
	cells, ok := t.data[name]
	if !ok {
		return nil
	}
	return append([]string(nil), cells...)
}

// Cell returns the value at the given row of the named column, or "" when
// the cell is null or out of range.
func (t *Table) Cell(row int, column string) string {
	cells, ok := t.data[column]
	if !ok || row < 0 || row >= len(cells) {
		return ""
	}
	return cells[row]
}

func (t *Table) addNullColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.columns = append(t.columns, name)
	t.data[name] = make([]string, t.nrows)
}

func (t *Table) setColumn(name string, cells []string) {
	if !t.HasColumn(name) || len(cells) != t.nrows {
		return
	}
	t.data[name] = cells
}

func (t *Table) sortColumns(s *Schema) {
	sort.SliceStable(t.columns, func(i, j int) bool {
		return s.Rank(t.columns[i]) < s.Rank(t.columns[j])
	})
}

// columnIsNull reports whether every cell of the column is null. Missing
// columns and empty tables count as fully null.
func (t *Table) columnIsNull(name string) bool {
	for _, c := range t.data[name] {
		if c != "" {
			return false
		}
	}
	return true
}

// columnIsPartiallyNull reports whether the column holds both null and
// non-null cells.
func (t *Table) columnIsPartiallyNull(name string) bool {
	nulls := 0
	for _, c := range t.data[name] {
		if c == "" {
			nulls++
		}
	}
	return nulls > 0 && nulls < t.nrows
}
