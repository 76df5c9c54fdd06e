// Package urn validates MaveDB accessions and generates temporary ones.
//
// Public accessions have the form
// urn:mavedb:<ExperimentSet>-<Experiment>-<ScoreSet>#<Variant>, where
// <ExperimentSet> is a zero-padded eight-digit integer, <Experiment> is a
// lowercase letter run ('aa' follows 'z') or 0, and <ScoreSet> and
// <Variant> are unpadded integers. Records not yet assigned a public
// accession carry a temporary one of the form tmp:<16 alphanumerics>.
package urn

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

const (
	Namespace = "mavedb"

	// ExperimentSetDigits is the zero-padded width of the experiment set
	// number.
	ExperimentSetDigits = 8

	// TmpDigits is the length of the random part of a temporary
	// accession.
	TmpDigits = 16

	// MaxLength bounds any accession string.
	MaxLength = 64
)

var (
	tmpRe           = regexp.MustCompile(`^tmp:[A-Za-z0-9]{16}$`)
	experimentSetRe = regexp.MustCompile(`^urn:mavedb:\d{8}$`)
	experimentRe    = regexp.MustCompile(`^urn:mavedb:\d{8}-([a-z]+|0)$`)
	scoreSetRe      = regexp.MustCompile(`^urn:mavedb:\d{8}-([a-z]+|0)-\d+$`)
	variantRe       = regexp.MustCompile(`^urn:mavedb:\d{8}-([a-z]+|0)-\d+#\d+$`)
)

// Kind is the accession level an URN addresses.
type Kind int

const (
	KindExperimentSet Kind = iota + 1
	KindExperiment
	KindScoreSet
	KindVariant
	KindTmp
)

func (k Kind) String() string {
	switch k {
	case KindExperimentSet:
		return "experiment set"
	case KindExperiment:
		return "experiment"
	case KindScoreSet:
		return "score set"
	case KindVariant:
		return "variant"
	case KindTmp:
		return "temporary"
	default:
		return "unknown"
	}
}

// Classify returns the level of the accession, most specific first.
func Classify(urn string) (Kind, bool) {
	switch {
	case variantRe.MatchString(urn):
		return KindVariant, true
	case scoreSetRe.MatchString(urn):
		return KindScoreSet, true
	case experimentRe.MatchString(urn):
		return KindExperiment, true
	case experimentSetRe.MatchString(urn):
		return KindExperimentSet, true
	case tmpRe.MatchString(urn):
		return KindTmp, true
	default:
		return 0, false
	}
}

// IsTmp reports whether the accession is a temporary one.
func IsTmp(urn string) bool {
	return tmpRe.MatchString(urn)
}

// IsPublic reports whether the accession is a published urn:mavedb one.
func IsPublic(urn string) bool {
	k, ok := Classify(urn)
	return ok && k != KindTmp
}

// Validate accepts any accession level, temporary included.
func Validate(urn string) error {
	if _, ok := Classify(urn); !ok {
		return fmt.Errorf("%s is not a valid urn.", urn)
	}
	return nil
}

// ValidateExperimentSet accepts an experiment set or temporary accession.
func ValidateExperimentSet(urn string) error {
	if !experimentSetRe.MatchString(urn) && !tmpRe.MatchString(urn) {
		return fmt.Errorf("%s is not a valid Experiment Set urn.", urn)
	}
	return nil
}

// ValidateExperiment accepts an experiment or temporary accession.
func ValidateExperiment(urn string) error {
	if !experimentRe.MatchString(urn) && !tmpRe.MatchString(urn) {
		return fmt.Errorf("%s is not a valid Experiment urn.", urn)
	}
	return nil
}

// ValidateScoreSet accepts a score set or temporary accession.
func ValidateScoreSet(urn string) error {
	if !scoreSetRe.MatchString(urn) && !tmpRe.MatchString(urn) {
		return fmt.Errorf("%s is not a valid score set urn.", urn)
	}
	return nil
}

// ValidateVariant accepts a variant or temporary accession.
func ValidateVariant(urn string) error {
	if !variantRe.MatchString(urn) && !tmpRe.MatchString(urn) {
		return fmt.Errorf("%s is not a valid Variant urn.", urn)
	}
	return nil
}

const tmpChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTmp returns a fresh temporary accession of the form tmp:<16 chars>.
func NewTmp() string {
	b := make([]byte, TmpDigits)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("urn: reading random bytes: %v", err))
	}
	for i := range b {
		b[i] = tmpChars[int(b[i])%len(tmpChars)]
	}
	return "tmp:" + string(b)
}
