package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/inodb/mavecheck/internal/variant"
)

// ParseError is a CSV structural failure with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv parse error at line %d: %s", e.Line, e.Message)
}

// ReadTable parses comma-delimited content into a Table. Lines starting
// with '#' are comments, quoted fields may contain commas, and a leading
// UTF-8 BOM is dropped. Cells matching the null token set are
// canonicalized to empty strings. Rows shorter than the header are padded
// with nulls; rows longer than the header are an error. Blank and
// duplicate header cells are renamed ("Unnamed: N", "name.N") so header
// validation can reject them by name.
func ReadTable(r io.Reader, nulls *variant.NullValues) (*Table, error) {
	br := bufio.NewReader(r)
	stripBOM(br)

	cr := csv.NewReader(br)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return NewTable(nil, nil), nil
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}
	columns := uniqueColumnNames(header)

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		if len(rec) > len(columns) {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{
				Line:    line,
				Message: fmt.Sprintf("expected %d fields, found %d", len(columns), len(rec)),
			}
		}
		row := make([]string, len(columns))
		for i := range rec {
			if !nulls.IsNull(rec[i]) {
				row[i] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return NewTable(columns, rows), nil
}

func stripBOM(br *bufio.Reader) {
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
}

func wrapCSVError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Line: perr.Line, Message: perr.Err.Error()}
	}
	return err
}

// uniqueColumnNames renames empty header cells to the "Unnamed: N" form
// spreadsheet exports produce and suffixes duplicates with ".N", so every
// column can be addressed by name and header validation can reject the
// renamed ones.
func uniqueColumnNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		name := h
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", name, n)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}
