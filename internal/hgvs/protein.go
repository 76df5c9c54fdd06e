package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

// Protein event grammar for the p. prefix. Amino acids are written as
// three letter codes, single letter codes or "*"/"Ter" for stop. A variant
// wrapped in parentheses ("p.(Trp24Cys)") is a predicted consequence.
var proteinAminoAcid = `(Ala|Arg|Asn|Asp|Cys|Gln|Glu|Gly|His|Ile|Leu|Lys|Met|Phe|Pro|Ser|Thr|Trp|Tyr|Val|Ter|A|R|N|D|C|Q|E|G|H|I|L|K|M|F|P|S|T|W|Y|V|\*)`

var (
	proteinPosition = fmt.Sprintf(`(?:((%s)\d+)|\?)`, proteinAminoAcid)
	proteinInterval = fmt.Sprintf(`(?:((%[1]s)_(%[1]s)))`, proteinPosition)
	proteinChoice   = fmt.Sprintf(`(?:(%[1]s)(\^(%[1]s))+)`, proteinAminoAcid)
)

// Deletion, e.g. "Val7del", "Lys23_Val25del", "Val7=/del".
var proteinDeletion = fmt.Sprintf(
	`(?P<del>`+
		`(`+
		`(?P<interval>%s)`+
		`|`+
		`((?P<position>%s)(?P<mosaic>=/)?)`+
		`)`+
		`del`+
		`)`,
	proteinInterval, proteinPosition)

// Insertion, e.g. "His4_Gln5insAla", "Arg78_Gly79ins23", "Cys28_Lys29insX".
var proteinInsertion = fmt.Sprintf(
	`(?P<ins>`+
		`(?P<interval>%s)`+
		`ins`+
		`(`+
		`(?P<inserted>%s+|%s)`+
		`|`+
		`(?P<length>\d+)`+
		`|`+
		`(?P<unknown>(\(\d+\))|X+)`+
		`)`+
		`)`,
	proteinInterval, proteinAminoAcid, proteinChoice)

// Deletion-insertion, e.g. "Cys28delinsTrpVal", "Cys28_Lys29delins(10)".
var proteinDelins = fmt.Sprintf(
	`(?P<delins>`+
		`(`+
		`(?P<interval>%s)`+
		`|`+
		`(?P<position>%s)`+
		`)`+
		`delins`+
		`(`+
		`(?P<inserted>%s+|%s)`+
		`|`+
		`(?P<length>\d+)`+
		`|`+
		`(?P<unknown>(\(\d+\))|X+)`+
		`)`+
		`)`,
	proteinInterval, proteinPosition, proteinAminoAcid, proteinChoice)

// Substitution, e.g. "Trp24Cys", "Cys188=", "Trp24*", "Trp24?", "0", "?".
var proteinSubstitution = fmt.Sprintf(
	`(?P<sub>`+
		`((?P<no_protein>0)|(?P<not_predicted>\?))`+
		`|`+
		`(`+
		`(?P<ref>%[1]s)(?P<pos>\d+)`+
		`(`+
		`(?P<new>((?P<mosaic>=/)?(%[1]s))|(?P<choice>%[2]s)|(\*))`+
		`|`+
		`(?P<silent>=)`+
		`|`+
		`(?P<unknown>\?)`+
		`)`+
		`)`+
		`)`,
	proteinAminoAcid, proteinChoice)

// Frame shift, e.g. "Arg97Profs*23", "Arg97fs", "Ile327Argfs*?".
var proteinFrameShift = fmt.Sprintf(
	`(?P<fs>`+
		`(?P<left_aa>%[1]s)(?P<position>\d+)(?P<right_aa>%[1]s)?fs`+
		`(?P<shift>`+
		`(`+
		`(%[1]s\d+)`+
		`|`+
		`(\*\?)`+
		`|`+
		`(\*\d+)`+
		`)`+
		`)?`+
		`)`,
	proteinAminoAcid)

var (
	proteinDeletionRe     = regexp.MustCompile(fmt.Sprintf(`^(p\.)?(%s)$`, proteinDeletion))
	proteinInsertionRe    = regexp.MustCompile(fmt.Sprintf(`^(p\.)?(%s)$`, proteinInsertion))
	proteinDelinsRe       = regexp.MustCompile(fmt.Sprintf(`^(p\.)?(%s)$`, proteinDelins))
	proteinSubstitutionRe = regexp.MustCompile(fmt.Sprintf(`^(p\.)?(%s)$`, proteinSubstitution))
	proteinFrameShiftRe   = regexp.MustCompile(fmt.Sprintf(`^(p\.)?(%s)$`, proteinFrameShift))

	proteinAnyEvent = anonymize(fmt.Sprintf(`(%s)`, strings.Join([]string{
		proteinInsertion, proteinDeletion, proteinDelins,
		proteinSubstitution, proteinFrameShift,
	}, "|")))
	proteinPredictedRe = regexp.MustCompile(fmt.Sprintf(`^p\.\((%s)\)$`, proteinAnyEvent))
	proteinMultiRe     = regexp.MustCompile(fmt.Sprintf(`^p\.\[(%[1]s)(;%[1]s)+\]$`, proteinAnyEvent))
)

func parseProteinEvent(kind EventKind, s string) (Event, error) {
	switch kind {
	case KindDelIns:
		return parseProteinDelins(s)
	case KindInsertion:
		return parseProteinInsertion(s)
	case KindDeletion:
		return parseProteinDeletion(s)
	case KindFrameShift:
		return parseProteinFrameShift(s)
	default:
		return parseProteinSubstitution(s)
	}
}

func parseProteinSubstitution(s string) (Event, error) {
	m := proteinSubstitutionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindSubstitution, s)
	}
	ref := group(proteinSubstitutionRe, m, "ref")
	alt := group(proteinSubstitutionRe, m, "new")
	silent := group(proteinSubstitutionRe, m, "silent")
	unknown := group(proteinSubstitutionRe, m, "unknown")
	noProtein := group(proteinSubstitutionRe, m, "no_protein")

	if silent == "" && unknown == "" && noProtein == "" &&
		ref != "" && alt != "" && ref == alt {
		return Event{}, fmt.Errorf(
			"Reference amino acid cannot be the same as the new amino acid for "+
				"variant '%s'. This should be described as a silent variant 'p.%s='.",
			s, ref)
	}

	ev := Event{
		Kind:  KindSubstitution,
		Start: plainInt(group(proteinSubstitutionRe, m, "pos")),
		Ref:   ref,
		Alt:   alt,
	}
	if silent != "" {
		ev.Kind = KindNoChange
	}
	return ev, nil
}

func parseProteinDeletion(s string) (Event, error) {
	m := proteinDeletionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDeletion, s)
	}
	ev := Event{Kind: KindDeletion}
	if interval := group(proteinDeletionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = proteinIntervalBounds(interval)
	} else {
		ev.Start = proteinPositionNumber(group(proteinDeletionRe, m, "position"))
		ev.Ref = proteinPositionResidue(group(proteinDeletionRe, m, "position"))
	}
	return ev, nil
}

func parseProteinInsertion(s string) (Event, error) {
	m := proteinInsertionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindInsertion, s)
	}
	ev := Event{Kind: KindInsertion, Alt: group(proteinInsertionRe, m, "inserted")}
	if interval := group(proteinInsertionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = proteinIntervalBounds(interval)
	}
	return ev, nil
}

func parseProteinDelins(s string) (Event, error) {
	m := proteinDelinsRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDelIns, s)
	}
	ev := Event{Kind: KindDelIns, Alt: group(proteinDelinsRe, m, "inserted")}
	if interval := group(proteinDelinsRe, m, "interval"); interval != "" {
		ev.Start, ev.End = proteinIntervalBounds(interval)
	} else {
		pos := group(proteinDelinsRe, m, "position")
		ev.Start = proteinPositionNumber(pos)
		ev.Ref = proteinPositionResidue(pos)
	}
	return ev, nil
}

func parseProteinFrameShift(s string) (Event, error) {
	m := proteinFrameShiftRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindFrameShift, s)
	}
	right := group(proteinFrameShiftRe, m, "right_aa")
	if right == "Ter" || right == "*" {
		return Event{}, fmt.Errorf(
			"Amino acid '%s' preceding 'fs' in a frame shift cannot be 'Ter' or '*'.", right)
	}
	return Event{
		Kind:  KindFrameShift,
		Start: plainInt(group(proteinFrameShiftRe, m, "position")),
		Ref:   group(proteinFrameShiftRe, m, "left_aa"),
		Alt:   right,
	}, nil
}

// proteinPositionNumber extracts the residue number from a position like
// "Val7". Uncertain positions ("?") yield zero.
func proteinPositionNumber(pos string) int {
	for i := 0; i < len(pos); i++ {
		if pos[i] >= '0' && pos[i] <= '9' {
			return plainInt(pos[i:])
		}
	}
	return 0
}

// proteinPositionResidue extracts the amino acid from a position like
// "Val7".
func proteinPositionResidue(pos string) string {
	for i := 0; i < len(pos); i++ {
		if pos[i] >= '0' && pos[i] <= '9' {
			return pos[:i]
		}
	}
	return ""
}

func proteinIntervalBounds(interval string) (start, end int) {
	i := strings.IndexByte(interval, '_')
	if i < 0 {
		return 0, 0
	}
	return proteinPositionNumber(interval[:i]), proteinPositionNumber(interval[i+1:])
}
