package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/inodb/mavecheck/internal/dataset"
)

// WriteDatasetCSV writes a validated dataset back out as CSV with columns
// in canonical order and HGVS cells in their validated form. Null cells
// are written empty.
func WriteDatasetCSV(w io.Writer, d *dataset.Dataset) error {
	if !d.IsValid() {
		return fmt.Errorf("dataset must be valid before writing")
	}

	cw := csv.NewWriter(w)
	cols := d.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}

	t := d.Table()
	for i := 0; i < d.NRows(); i++ {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = t.Cell(i, c)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
