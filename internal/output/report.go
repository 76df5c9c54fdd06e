// Package output renders validation results and variant records for the
// command line and for files.
package output

import (
	"fmt"
	"io"

	"github.com/inodb/mavecheck/internal/dataset"
)

// ReportWriter writes a human-readable validation report: one section per
// checked file listing its errors, then a summary block.
type ReportWriter struct {
	w io.Writer
}

// NewReportWriter creates a report writer.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: w}
}

// WriteResult renders the full report for one pipeline run.
func (r *ReportWriter) WriteResult(res *dataset.Result) error {
	if err := r.writeFileSection(res.Scores); err != nil {
		return err
	}
	if res.Counts != nil {
		if err := r.writeFileSection(res.Counts); err != nil {
			return err
		}
	}
	if len(res.ConsistencyErrors) > 0 {
		if _, err := fmt.Fprintf(r.w, "cross-file: %d %s\n",
			len(res.ConsistencyErrors), plural("error", len(res.ConsistencyErrors))); err != nil {
			return err
		}
		if err := r.writeErrors(res.ConsistencyErrors); err != nil {
			return err
		}
	}
	return r.writeSummary(res)
}

func (r *ReportWriter) writeFileSection(d *dataset.Dataset) error {
	if d.IsValid() {
		_, err := fmt.Fprintf(r.w, "%s file: OK (%d rows)\n", d.Label(), d.NRows())
		return err
	}
	if _, err := fmt.Fprintf(r.w, "%s file: %d %s\n",
		d.Label(), d.NErrors(), plural("error", d.NErrors())); err != nil {
		return err
	}
	return r.writeErrors(d.Errors())
}

func (r *ReportWriter) writeErrors(errs []string) error {
	for i, e := range errs {
		if _, err := fmt.Fprintf(r.w, "  %d. %s\n", i+1, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *ReportWriter) writeSummary(res *dataset.Result) error {
	result := "INVALID"
	if res.Valid() {
		result = "VALID"
	}

	fmt.Fprintf(r.w, "\nValidation Summary:\n")
	fmt.Fprintf(r.w, "  Scores rows:   %d\n", res.Scores.NRows())
	if res.Counts != nil {
		fmt.Fprintf(r.w, "  Counts rows:   %d\n", res.Counts.NRows())
	}
	fmt.Fprintf(r.w, "  Errors:        %d\n", len(res.AllErrors()))
	fmt.Fprintf(r.w, "  Records built: %d\n", len(res.Records))
	_, err := fmt.Fprintf(r.w, "  Result:        %s\n", result)
	return err
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
