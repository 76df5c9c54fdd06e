package dataset

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/inodb/mavecheck/internal/variant"
)

// MismatchMessage is reported when the scores and counts files do not
// define the same variants.
const MismatchMessage = "Your score and counts files do not define the " +
	"same variants. Check that the hgvs columns in both files match."

// Result carries the outcome of one pipeline run.
type Result struct {
	Scores  *Dataset
	Counts  *Dataset // nil when no counts file was supplied
	Records []Record

	// ConsistencyErrors are cross-file failures: mismatched variants or
	// record construction failures.
	ConsistencyErrors []string
}

// Valid reports whether every stage passed.
func (r *Result) Valid() bool {
	return r.filesValid() && len(r.ConsistencyErrors) == 0
}

func (r *Result) filesValid() bool {
	if r.Scores == nil || !r.Scores.IsValid() {
		return false
	}
	if r.Counts != nil && !r.Counts.IsValid() {
		return false
	}
	return true
}

// AllErrors flattens per-file and cross-file errors into one ordered
// list.
func (r *Result) AllErrors() []string {
	var errs []string
	if r.Scores != nil {
		errs = append(errs, r.Scores.Errors()...)
	}
	if r.Counts != nil {
		errs = append(errs, r.Counts.Errors()...)
	}
	return append(errs, r.ConsistencyErrors...)
}

// Pipeline validates a scores file plus an optional counts file and
// builds variant records from the matched rows.
type Pipeline struct {
	validator *variant.Validator
	logger    *zap.Logger
}

// NewPipeline returns a pipeline using the given validator, or the
// default validator when nil.
func NewPipeline(v *variant.Validator) *Pipeline {
	if v == nil {
		v = variant.NewValidator(nil)
	}
	return &Pipeline{validator: v, logger: zap.NewNop()}
}

// SetLogger sets the logger used by the pipeline.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Run validates the scores file and, when supplied, the counts file,
// checks cross-file consistency and builds records. Records are only
// built when every earlier stage passed; the returned error covers file
// reading failures only.
func (p *Pipeline) Run(scoresFile, countsFile io.Reader, opts ValidateOptions) (*Result, error) {
	scores, err := NewDataset(scoresFile, KindScores, p.validator)
	if err != nil {
		return nil, fmt.Errorf("read scores file: %w", err)
	}
	scores.Validate(opts)
	p.logger.Info("validated scores file",
		zap.Int("rows", scores.NRows()),
		zap.Int("errors", scores.NErrors()))

	res := &Result{Scores: scores}

	if countsFile != nil {
		counts, err := NewDataset(countsFile, KindCounts, p.validator)
		if err != nil {
			return nil, fmt.Errorf("read counts file: %w", err)
		}
		counts.Validate(opts)
		p.logger.Info("validated counts file",
			zap.Int("rows", counts.NRows()),
			zap.Int("errors", counts.NErrors()))
		res.Counts = counts
	}

	if !res.filesValid() {
		return res, nil
	}

	if res.Counts != nil {
		if equal, ok := scores.Match(res.Counts); ok && !equal {
			res.ConsistencyErrors = append(res.ConsistencyErrors, MismatchMessage)
			return res, nil
		}
	}

	records, err := BuildRecords(scores, res.Counts)
	if err != nil {
		res.ConsistencyErrors = append(res.ConsistencyErrors, err.Error())
		return res, nil
	}
	res.Records = records
	p.logger.Info("built variant records", zap.Int("records", len(records)))
	return res, nil
}
