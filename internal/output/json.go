package output

import (
	"encoding/json"
	"io"

	"github.com/inodb/mavecheck/internal/dataset"
)

// WriteRecordsJSON writes the records as an indented JSON array. A nil
// slice writes an empty array.
func WriteRecordsJSON(w io.Writer, records []dataset.Record) error {
	if records == nil {
		records = []dataset.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
