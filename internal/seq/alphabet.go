package seq

import "strings"

// Alphabet identifies the residue alphabet of a sequence.
type Alphabet int

const (
	AlphabetUnknown Alphabet = iota
	AlphabetDNA
	AlphabetRNA
	AlphabetProtein
)

func (a Alphabet) String() string {
	switch a {
	case AlphabetDNA:
		return "dna"
	case AlphabetRNA:
		return "rna"
	case AlphabetProtein:
		return "protein"
	default:
		return "unknown"
	}
}

const (
	dnaLetters     = "ACGTN"
	rnaLetters     = "ACGUN"
	proteinLetters = "ACDEFGHIKLMNPQRSTVWY*X"
)

// InferAlphabet infers the alphabet of a sequence from its letters.
// DNA is preferred over RNA over protein when a sequence is ambiguous
// (e.g. "ACG" fits all three). Case-insensitive; empty sequences are
// AlphabetUnknown.
func InferAlphabet(sequence string) Alphabet {
	if sequence == "" {
		return AlphabetUnknown
	}
	upper := strings.ToUpper(sequence)

	if containsOnly(upper, dnaLetters) {
		return AlphabetDNA
	}
	if containsOnly(upper, rnaLetters) {
		return AlphabetRNA
	}
	if containsOnly(upper, proteinLetters) {
		return AlphabetProtein
	}
	return AlphabetUnknown
}

func containsOnly(s, letters string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(letters, s[i]) < 0 {
			return false
		}
	}
	return true
}
