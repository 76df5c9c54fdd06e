package variant

import (
	"fmt"

	"github.com/inodb/mavecheck/internal/hgvs"
)

// Column identifies the logical dataset column an HGVS token belongs to.
type Column int

const (
	ColumnNucleotide Column = iota + 1
	ColumnTranscript
	ColumnProtein
)

// Name returns the dataset column header for the logical column.
func (c Column) Name() string {
	switch c {
	case ColumnNucleotide:
		return "hgvs_nt"
	case ColumnTranscript:
		return "hgvs_splice"
	case ColumnProtein:
		return "hgvs_pro"
	default:
		return "unknown"
	}
}

// Options adjust how a token is validated.
type Options struct {
	// SpliceDefined marks the transcript column as populated, which binds
	// the nucleotide column to genomic 'g.' prefixes.
	SpliceDefined bool

	// TargetSeq and RelaxedOrdering are forwarded to the grammar layer.
	TargetSeq       string
	RelaxedOrdering bool
}

// Validator validates single HGVS cells against their logical column.
type Validator struct {
	nulls *NullValues
}

// NewValidator builds a validator around the given null token set. A nil
// set selects DefaultNullValues.
func NewValidator(nulls *NullValues) *Validator {
	if nulls == nil {
		nulls = DefaultNullValues()
	}
	return &Validator{nulls: nulls}
}

// NullValues returns the null token set the validator was built with.
func (v *Validator) NullValues() *NullValues {
	return v.nulls
}

// Validate checks one cell against the given logical column. Null tokens
// validate to (nil, nil). When the token parses but its prefix is not legal
// for the column, the parsed variant is returned alongside the error so
// callers can still inspect its prefix. An unknown column is a programmer
// error and panics.
func (v *Validator) Validate(token string, col Column, opts Options) (*hgvs.Variant, error) {
	if v.nulls.IsNull(token) {
		return nil, nil
	}
	if err := sentinelError(token); err != nil {
		return nil, err
	}

	parsed, err := hgvs.ParseWithOptions(token, hgvs.ParseOptions{
		TargetSeq:       opts.TargetSeq,
		RelaxedOrdering: opts.RelaxedOrdering,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %v", token, err)
	}

	if err := checkColumn(parsed, col, opts.SpliceDefined); err != nil {
		return parsed, err
	}
	return parsed, nil
}

func checkColumn(parsed *hgvs.Variant, col Column, spliceDefined bool) error {
	switch col {
	case ColumnNucleotide:
		if spliceDefined {
			if parsed.Prefix != 'g' {
				return fmt.Errorf(
					"%s: '%s' is not a genomic variant (prefix 'g.'). Nucleotide "+
						"variants must be genomic if transcript variants are also present",
					col.Name(), parsed)
			}
		} else if parsed.Prefix != 'c' && parsed.Prefix != 'n' {
			return fmt.Errorf(
				"%s: '%s' is not a transcript variant. The accepted transcript "+
					"variant prefixes are 'c.' or 'n.'",
				col.Name(), parsed)
		}
	case ColumnTranscript:
		if parsed.Prefix != 'c' && parsed.Prefix != 'n' {
			return fmt.Errorf(
				"%s: '%s' is not a transcript variant. The accepted transcript "+
					"variant prefixes are 'c.' or 'n.'",
				col.Name(), parsed)
		}
	case ColumnProtein:
		if parsed.Prefix != 'p' {
			return fmt.Errorf(
				"%s: '%s' is not a protein variant. The accepted protein variant "+
					"prefix is 'p.'",
				col.Name(), parsed)
		}
	default:
		panic(fmt.Sprintf("variant: unknown column %d", col))
	}
	return nil
}
