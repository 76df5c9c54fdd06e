package hgvs

import (
	"fmt"

	"github.com/inodb/mavecheck/internal/seq"
)

// checkOrdering requires multi-variant events to be listed in ascending
// position order. Events without a plain numeric position are skipped.
func (v *Variant) checkOrdering() error {
	prev := 0
	for _, e := range v.Events {
		if e.Start == 0 {
			continue
		}
		if e.Start < prev {
			return fmt.Errorf("multi-variant events must be defined in ascending position order")
		}
		prev = e.Start
	}
	return nil
}

// checkTarget validates event positions and stated reference residues
// against a target sequence. Only plainly numeric positions are checked;
// UTR, intronic and uncertain coordinates have no mapping onto the target.
func (v *Variant) checkTarget(target string) error {
	n := len(target)
	for _, e := range v.Events {
		if e.Start == 0 {
			continue
		}
		if e.Start > n {
			return fmt.Errorf(
				"position %d is out of bounds for a target sequence of length %d", e.Start, n)
		}
		if e.End > n {
			return fmt.Errorf(
				"position %d is out of bounds for a target sequence of length %d", e.End, n)
		}
		if e.Ref == "" {
			continue
		}
		if v.Level == LevelProtein {
			if err := checkProteinRef(e, target); err != nil {
				return err
			}
			continue
		}
		if err := checkNucleotideRef(e, target); err != nil {
			return err
		}
	}
	return nil
}

func checkProteinRef(e Event, target string) error {
	want := seq.AminoAcidCode(e.Ref)
	if want == 0 {
		return nil
	}
	found := upperByte(target[e.Start-1])
	if found == want {
		return nil
	}
	foundCode := string(found)
	if three, ok := seq.AminoAcidSingleToThree[found]; ok {
		foundCode = three
	}
	return fmt.Errorf(
		"reference amino acid '%s' does not match target amino acid '%s' at position %d",
		e.Ref, foundCode, e.Start)
}

func checkNucleotideRef(e Event, target string) error {
	ref := upperByte(e.Ref[0])
	// Ambiguity codes cannot be compared to a concrete target base.
	if ref == 'N' || ref == 'X' || ref == 'H' {
		return nil
	}
	found := upperByte(target[e.Start-1])
	if baseEqual(ref, found) {
		return nil
	}
	return fmt.Errorf(
		"reference base '%s' does not match target base '%c' at position %d",
		e.Ref, found, e.Start)
}

// baseEqual compares two uppercase bases treating U and T as equivalent,
// so RNA events check cleanly against DNA targets.
func baseEqual(a, b byte) bool {
	if a == 'U' {
		a = 'T'
	}
	if b == 'U' {
		b = 'T'
	}
	return a == b
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
