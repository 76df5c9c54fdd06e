// Package dataset validates uploaded MAVE score and count files: header
// checks, HGVS cell validation, numeric coercion, cross-file consistency
// and variant record construction.
package dataset

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/inodb/mavecheck/internal/seq"
	"github.com/inodb/mavecheck/internal/variant"
)

var unnamedColumnRe = regexp.MustCompile(`(?i)^Unnamed: \d+$`)

// ValidateOptions control dataset validation.
type ValidateOptions struct {
	// TargetSeq, when non-empty, checks variant coordinates and reference
	// residues against the target. Protein cells are checked against the
	// translated target when the target is DNA.
	TargetSeq string

	// RelaxedOrdering skips the ascending position requirement on
	// multi-variants.
	RelaxedOrdering bool

	// AllowIndexDuplicates skips duplicate detection on the primary
	// column.
	AllowIndexDuplicates bool
}

// Dataset is one uploaded scores or counts table together with its
// validation state. The zero value is not usable; construct with
// ForScores, ForCounts or NewDataset.
type Dataset struct {
	kind      Kind
	table     *Table
	validator *variant.Validator

	validated   bool
	errs        []string
	indexColumn string
}

// ForScores reads a scores dataset using the default null token set.
func ForScores(r io.Reader) (*Dataset, error) {
	return NewDataset(r, KindScores, nil)
}

// ForCounts reads a counts dataset using the default null token set.
func ForCounts(r io.Reader) (*Dataset, error) {
	return NewDataset(r, KindCounts, nil)
}

// NewDataset reads a dataset of the given kind. A nil validator selects
// the default null token set.
func NewDataset(r io.Reader, kind Kind, v *variant.Validator) (*Dataset, error) {
	if v == nil {
		v = variant.NewValidator(nil)
	}
	table, err := ReadTable(r, v.NullValues())
	if err != nil {
		return nil, err
	}
	return &Dataset{kind: kind, table: table, validator: v}, nil
}

// Label names the dataset kind in error messages.
func (d *Dataset) Label() string { return d.kind.String() }

// Validated reports whether Validate has run.
func (d *Dataset) Validated() bool { return d.validated }

// IsValid reports whether Validate has run and found no errors.
func (d *Dataset) IsValid() bool { return d.validated && len(d.errs) == 0 }

// Errors returns the accumulated validation errors in order.
func (d *Dataset) Errors() []string { return append([]string(nil), d.errs...) }

// NErrors returns the number of accumulated validation errors.
func (d *Dataset) NErrors() int { return len(d.errs) }

// IsEmpty reports whether the table has no data rows.
func (d *Dataset) IsEmpty() bool { return d.table.NRows() == 0 }

// Columns returns the column names in their current order.
func (d *Dataset) Columns() []string { return d.table.Columns() }

// HGVSColumns returns the table's HGVS columns in their current order.
func (d *Dataset) HGVSColumns() []string {
	var cols []string
	for _, c := range d.table.columns {
		if isHGVSColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// NonHGVSColumns returns the table's data columns in their current order.
func (d *Dataset) NonHGVSColumns() []string {
	var cols []string
	for _, c := range d.table.columns {
		if !isHGVSColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// NRows returns the number of data rows.
func (d *Dataset) NRows() int { return d.table.NRows() }

// NColumns returns the number of columns.
func (d *Dataset) NColumns() int { return d.table.NColumns() }

// Table returns the underlying table.
func (d *Dataset) Table() *Table { return d.table }

// IndexColumn returns the primary HGVS column selected during validation,
// or "" while the dataset is unvalidated or invalid.
func (d *Dataset) IndexColumn() string {
	if !d.IsValid() {
		return ""
	}
	return d.indexColumn
}

func (d *Dataset) nulls() *variant.NullValues { return d.validator.NullValues() }

// Validate runs the full validation pass and returns the receiver. Header
// checks run first; variant and index checks only run on a clean header.
// Validate may be called again to revalidate with different options.
func (d *Dataset) Validate(opts ValidateOptions) *Dataset {
	d.errs = nil
	d.validated = true
	d.indexColumn = ""

	d.validateColumns()
	if len(d.errs) == 0 {
		d.normalizeData()
		d.validateGenomicVariants(opts)
		d.validateTranscriptVariants(opts)
		d.validateProteinVariants(opts)
		d.validateIndexColumn(opts.AllowIndexDuplicates)
	}

	if d.IsEmpty() {
		d.errs = append(d.errs, fmt.Sprintf(
			"No variants could be parsed from your %s file. "+
				"Please upload a non-empty file.", d.Label()))
	}
	return d
}

func (d *Dataset) validateColumns() {
	columns := d.table.Columns()

	for _, h := range columns {
		if d.nulls().IsNull(h) || unnamedColumnRe.MatchString(h) {
			d.errs = append(d.errs, fmt.Sprintf(
				"Column names in your %s file cannot be values considered "+
					"null such as the following: %s",
				d.Label(), strings.Join(d.nulls().Readable(), ", ")))
			break
		}
	}

	var named []string
	for _, c := range columns {
		if !d.nulls().IsNull(c) {
			named = append(named, c)
		}
	}
	if len(named) < 1 {
		d.errs = append(d.errs, fmt.Sprintf(
			"No columns could be parsed from your %s file. "+
				"Make sure columns are comma delimited. Column names with "+
				"commas must be escaped by enclosing them in double quotes",
			d.Label()))
	}

	hasRequired := false
	for _, c := range named {
		if c == variant.ColumnNucleotide.Name() || c == variant.ColumnProtein.Name() {
			hasRequired = true
			break
		}
	}
	if !hasRequired {
		d.errs = append(d.errs, fmt.Sprintf(
			"Your %s file must define either a nucleotide hgvs column "+
				"'(%s)' or a protein hgvs column '(%s)'. "+
				"Columns are case-sensitive and must be comma delimited",
			d.Label(), variant.ColumnNucleotide.Name(), variant.ColumnProtein.Name()))
	}

	hasAdditional := false
	for _, c := range named {
		if !isHGVSColumn(c) {
			hasAdditional = true
			break
		}
	}
	if !hasAdditional {
		d.errs = append(d.errs, fmt.Sprintf(
			"Your %s file must define at least one additional column "+
				"different from '%s', '%s' and '%s'",
			d.Label(), variant.ColumnNucleotide.Name(),
			variant.ColumnTranscript.Name(), variant.ColumnProtein.Name()))
	}

	if d.kind == KindScores && !d.table.HasColumn(ScoreColumn) {
		d.errs = append(d.errs, fmt.Sprintf(
			"Your scores dataset is missing the '%s' column. "+
				"Columns are case-sensitive and must be comma delimited",
			ScoreColumn))
	}
}

// normalizeData adds any missing HGVS columns as null columns, puts
// columns in canonical order and coerces the score column for scores
// datasets.
func (d *Dataset) normalizeData() {
	for _, c := range HGVSColumnNames() {
		d.table.addNullColumn(c)
	}
	d.table.sortColumns(NewSchema(d.kind))

	if d.kind == KindScores && d.table.HasColumn(ScoreColumn) {
		d.coerceNumeric(ScoreColumn)
	}
}

// coerceNumeric checks that every non-null cell of the column parses as a
// float. One error is reported per column, carrying the first failure.
func (d *Dataset) coerceNumeric(column string) {
	for _, cell := range d.table.data[column] {
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			d.errs = append(d.errs, fmt.Sprintf("%s: %s", column, err))
			return
		}
	}
}

func (d *Dataset) validateGenomicVariants(opts ValidateOptions) {
	ntCol := variant.ColumnNucleotide.Name()
	if d.table.columnIsNull(ntCol) {
		return
	}
	spliceDefined := !d.table.columnIsNull(variant.ColumnTranscript.Name())

	validated, prefixes, errs := d.validateVariantColumn(ntCol, variant.ColumnNucleotide, variant.Options{
		SpliceDefined:   spliceDefined,
		TargetSeq:       opts.TargetSeq,
		RelaxedOrdering: opts.RelaxedOrdering,
	})

	if (prefixes['c'] || prefixes['n']) && prefixes['g'] {
		d.errs = append(d.errs, fmt.Sprintf(
			"%s: Genomic variants (prefix 'g.') cannot be mixed with "+
				"transcript variants (prefix 'c.' or 'n.')", ntCol))
	}
	if len(prefixes) == 1 && prefixes['g'] && !spliceDefined {
		d.errs = append(d.errs, fmt.Sprintf(
			"Transcript variants ('%s' column) are required when "+
				"specifying genomic variants (prefix 'g.' in the '%s' column)",
			variant.ColumnTranscript.Name(), ntCol))
	}

	d.errs = append(d.errs, errs...)
	if len(d.errs) == 0 {
		d.table.setColumn(ntCol, validated)
	}
	d.indexColumn = ntCol
}

func (d *Dataset) validateTranscriptVariants(opts ValidateOptions) {
	ntCol := variant.ColumnNucleotide.Name()
	txCol := variant.ColumnTranscript.Name()
	definesNt := !d.table.columnIsNull(ntCol)
	definesTx := !d.table.columnIsNull(txCol)

	if definesTx && !definesNt {
		d.errs = append(d.errs, fmt.Sprintf(
			"Genomic variants ('%s' column) must be defined when "+
				"specifying transcript variants ('%s' column)", ntCol, txCol))
	}
	if !definesTx {
		return
	}

	// Transcript variants are not checked against the target sequence;
	// that would need a gene model mapping transcript coordinates onto
	// the target.
	validated, _, errs := d.validateVariantColumn(txCol, variant.ColumnTranscript, variant.Options{
		RelaxedOrdering: opts.RelaxedOrdering,
	})
	d.errs = append(d.errs, errs...)
	if len(d.errs) == 0 {
		d.table.setColumn(txCol, validated)
	}
}

func (d *Dataset) validateProteinVariants(opts ValidateOptions) {
	proCol := variant.ColumnProtein.Name()
	if d.table.columnIsNull(proCol) {
		return
	}
	definesNt := !d.table.columnIsNull(variant.ColumnNucleotide.Name())

	proteinSeq := opts.TargetSeq
	if opts.TargetSeq != "" && seq.InferAlphabet(opts.TargetSeq) == seq.AlphabetDNA {
		translated, remainder := seq.TranslateDNA(opts.TargetSeq)
		proteinSeq = translated
		if remainder != 0 {
			d.errs = append([]string{
				"Protein variants could not be validated because the " +
					"length of your target sequence is not a multiple of 3",
			}, d.errs...)
		}
	}

	validated, _, errs := d.validateVariantColumn(proCol, variant.ColumnProtein, variant.Options{
		TargetSeq:       proteinSeq,
		RelaxedOrdering: opts.RelaxedOrdering,
	})
	d.errs = append(d.errs, errs...)
	if len(d.errs) == 0 {
		d.table.setColumn(proCol, validated)
	}
	if !definesNt {
		d.indexColumn = proCol
	}
}

func (d *Dataset) validateIndexColumn(allowDuplicates bool) {
	if len(d.errs) > 0 {
		return
	}
	if d.indexColumn == "" {
		d.indexColumn = variant.ColumnNucleotide.Name()
	}

	if d.table.columnIsPartiallyNull(d.indexColumn) {
		d.errs = append(d.errs, fmt.Sprintf(
			"Primary column (inferred as '%s') cannot contain any null "+
				"values from %s (case-insensitive)",
			d.indexColumn, strings.Join(d.nulls().Readable(), ", ")))
	}

	if !allowDuplicates {
		if dupes := duplicateSummary(d.table.data[d.indexColumn]); dupes != "" {
			d.errs = append(d.errs, fmt.Sprintf(
				"Primary column (inferred as '%s') contains duplicate "+
					"HGVS variants: %s", d.indexColumn, dupes))
		}
	}
}

// validateVariantColumn runs every cell of the column through the variant
// validator. Null cells validate to "". The prefix set covers every cell
// that parsed, including cells that later failed the column binding
// check.
func (d *Dataset) validateVariantColumn(name string, col variant.Column, opts variant.Options) (validated []string, prefixes map[byte]bool, errs []string) {
	cells := d.table.data[name]
	validated = make([]string, len(cells))
	prefixes = make(map[byte]bool)
	for i, cell := range cells {
		parsed, err := d.validator.Validate(cell, col, opts)
		if parsed != nil {
			prefixes[parsed.Prefix] = true
		}
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if parsed != nil {
			validated[i] = parsed.String()
		}
	}
	return validated, prefixes, errs
}

// duplicateSummary reports values appearing more than once with their
// 1-based row numbers, in first-seen order. Null cells are not counted.
func duplicateSummary(cells []string) string {
	rows := make(map[string][]int)
	var order []string
	for i, c := range cells {
		if c == "" {
			continue
		}
		if len(rows[c]) == 0 {
			order = append(order, c)
		}
		rows[c] = append(rows[c], i+1)
	}

	var parts []string
	for _, v := range order {
		if len(rows[v]) < 2 {
			continue
		}
		nums := make([]string, len(rows[v]))
		for i, n := range rows[v] {
			nums[i] = strconv.Itoa(n)
		}
		parts = append(parts, fmt.Sprintf("%s: [%s]", v, strings.Join(nums, ", ")))
	}
	return strings.Join(parts, ", ")
}

// Match reports whether both datasets define the same variants: the same
// primary index column and, for each HGVS column, the same multiset of
// values. ok is false when either dataset has not validated cleanly, in
// which case equal is meaningless.
func (d *Dataset) Match(other *Dataset) (equal, ok bool) {
	if d == nil || other == nil || !d.IsValid() || !other.IsValid() {
		return false, false
	}
	if d.indexColumn != other.indexColumn {
		return false, true
	}
	for _, col := range HGVSColumnNames() {
		if !multisetEqual(d.table.data[col], other.table.data[col]) {
			return false, true
		}
	}
	return true, true
}

func multisetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
