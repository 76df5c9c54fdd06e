// Package target loads and validates the wild type sequence a dataset is
// scored against, from raw strings, FASTA files or YAML metadata.
package target

import (
	"fmt"
	"strings"

	"github.com/inodb/mavecheck/internal/variant"
)

const (
	dnaLetters = "ATCG"
	aaLetters  = "ABCDEFGHIKLMNPQRSTVWXYZ"
)

var nullValues = variant.DefaultNullValues()

// SequenceType constrains what a target sequence may contain.
type SequenceType int

const (
	TypeInfer SequenceType = iota
	TypeDNA
	TypeProtein
)

func (st SequenceType) String() string {
	switch st {
	case TypeDNA:
		return "dna"
	case TypeProtein:
		return "protein"
	default:
		return "infer"
	}
}

// ParseSequenceType reads a sequence type from its string form. The empty
// string means infer.
func ParseSequenceType(s string) (SequenceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "infer":
		return TypeInfer, nil
	case "dna":
		return TypeDNA, nil
	case "protein":
		return TypeProtein, nil
	default:
		return 0, fmt.Errorf("unknown target sequence type %q", s)
	}
}

// Target is a named wild type sequence. The sequence is stored uppercased.
type Target struct {
	Name     string
	Sequence string
}

// New validates the sequence under the given type constraint and returns
// the target. Sequences must be pure ATCG for DNA targets, pure amino
// acid codes for protein targets, and one or the other when inferring.
func New(name, sequence string, st SequenceType) (*Target, error) {
	if nullValues.IsNull(sequence) {
		return nil, fmt.Errorf("'%s' is not a valid wild type sequence.", sequence)
	}

	upper := strings.ToUpper(strings.TrimSpace(sequence))
	isDNA := lettersOnly(upper, dnaLetters)
	isAA := lettersOnly(upper, aaLetters)

	switch st {
	case TypeDNA:
		if !isDNA {
			return nil, fmt.Errorf("'%s' is not a valid DNA reference sequence.", upper)
		}
	case TypeProtein:
		if !isAA {
			return nil, fmt.Errorf("'%s' is not a valid protein reference sequence.", upper)
		}
	default:
		if !isDNA && !isAA {
			return nil, fmt.Errorf("'%s' is not a valid DNA or protein reference sequence.", upper)
		}
	}

	return &Target{Name: name, Sequence: upper}, nil
}

// IsDNA reports whether the sequence reads as DNA. Sequences of pure ATCG
// are taken as DNA even though they are also valid protein sequences.
func (t *Target) IsDNA() bool {
	return lettersOnly(t.Sequence, dnaLetters)
}

// IsProtein reports whether the sequence reads as protein and not as DNA.
func (t *Target) IsProtein() bool {
	return !t.IsDNA() && lettersOnly(t.Sequence, aaLetters)
}

// Len returns the sequence length.
func (t *Target) Len() int { return len(t.Sequence) }

func lettersOnly(s, letters string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(letters, s[i]) < 0 {
			return false
		}
	}
	return true
}
