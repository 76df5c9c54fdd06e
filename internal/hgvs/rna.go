package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

// RNA event grammar for the r. prefix. Residues are lowercase and
// insertions may reference a bracketed list of intronic intervals. The
// special tokens "0", "?" and "spl" describe absent, unknown and spliced
// transcripts.
const rnaNucleotides = "augcxnh"

var (
	rnaPosition         = `(?:(\d+)|\?)`
	rnaInterval         = fmt.Sprintf(`(?:((%[1]s)_(%[1]s)))`, rnaPosition)
	rnaFragment         = fmt.Sprintf(`(?:\(%s\))`, rnaInterval)
	rnaIntronicPosition = `(?:((\d+)|\?|\d+([+-]?(\d+|\?))?))`
	rnaIntronicInterval = fmt.Sprintf(`(?:((%[1]s)_(%[1]s)))`, rnaIntronicPosition)
)

// Deletion, e.g. "19del", "=/19_21del", "(19_21)del".
var rnaDeletion = fmt.Sprintf(
	`(?P<del>`+
		`(((=/)|(=//))?(?P<interval>%s)del)`+
		`|`+
		`((?P<fragment>%s)del)`+
		`|`+
		`((?P<position>%s)del(?P<base>[%s])?)`+
		`)`,
	rnaInterval, rnaFragment, rnaPosition, rnaNucleotides)

// Insertion, e.g. "426_427insa", "761_762ins(5)",
// "2949_2950ins[2950-30_2950-12;2950-4_2950-1]".
var rnaInsertion = fmt.Sprintf(
	`(?P<ins>`+
		`((?P<interval>%s)|(?P<fragment>%s))`+
		`ins`+
		`(`+
		`(?P<intronic>\[(%[3]s)(;%[3]s)+\])`+
		`|`+
		`((?P<bases>[%[4]s]+)|(?P<length>\(\d+\)))`+
		`)`+
		`)`,
	rnaInterval, rnaFragment, rnaIntronicInterval, rnaNucleotides)

// Deletion-insertion, e.g. "6775delinsga", "142_144delinsugg".
var rnaDelins = fmt.Sprintf(
	`(?P<delins>`+
		`(`+
		`((?P<interval>%s)delins)`+
		`|`+
		`((?P<position>%s)delins)`+
		`)`+
		`((?P<bases>[%s]+)|(?P<length>\(\d+\)))`+
		`)`,
	rnaInterval, rnaPosition, rnaNucleotides)

// Substitution, e.g. "123a>g", "54=", "0", "spl".
var rnaSubstitution = fmt.Sprintf(
	`(?P<sub>`+
		`(`+
		`(0|\?|spl)`+
		`|`+
		`(`+
		`(?P<position>%s)`+
		`(`+
		`((?P<mosaic>(=/)|(=//))?(?P<ref>[%[2]s])>(?P<new>[%[2]s]))`+
		`|`+
		`(?P<silent>=)`+
		`)`+
		`)`+
		`)`+
		`)`,
	rnaPosition, rnaNucleotides)

var (
	rnaDeletionRe     = regexp.MustCompile(fmt.Sprintf(`^(r\.)?((?P<utr>[*-]))?(%s)$`, rnaDeletion))
	rnaInsertionRe    = regexp.MustCompile(fmt.Sprintf(`^(r\.)?((?P<utr>[*-]))?(%s)$`, rnaInsertion))
	rnaDelinsRe       = regexp.MustCompile(fmt.Sprintf(`^(r\.)?((?P<utr>[*-]))?(%s)$`, rnaDelins))
	rnaSubstitutionRe = regexp.MustCompile(fmt.Sprintf(`^(r\.)?((?P<utr>[*-]))?(%s)$`, rnaSubstitution))

	rnaAnyEvent = anonymize(fmt.Sprintf(`(%s)`,
		strings.Join([]string{rnaInsertion, rnaDeletion, rnaDelins, rnaSubstitution}, "|")))

	// Multi-variants accept semicolon or comma separated event lists.
	rnaMultiRe = regexp.MustCompile(fmt.Sprintf(
		`^r\.((\[(%[1]s)(;%[1]s)+\])|(\[(%[1]s)(,%[1]s)+\]))$`, rnaAnyEvent))
)

func parseRNAEvent(kind EventKind, s string) (Event, error) {
	switch kind {
	case KindDelIns:
		return parseRNADelins(s)
	case KindInsertion:
		return parseRNAInsertion(s)
	case KindDeletion:
		return parseRNADeletion(s)
	case KindSubstitution:
		return parseRNASubstitution(s)
	default:
		return Event{}, fmt.Errorf("'%s' is not a supported HGVS syntax.", s)
	}
}

func parseRNASubstitution(s string) (Event, error) {
	m := rnaSubstitutionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindSubstitution, s)
	}
	ref := group(rnaSubstitutionRe, m, "ref")
	alt := group(rnaSubstitutionRe, m, "new")
	silent := group(rnaSubstitutionRe, m, "silent")
	if silent == "" && ref != "" && alt != "" && ref == alt {
		return Event{}, fmt.Errorf(
			"Reference nucleotide cannot be the same as the new nucleotide for variant '%s'.", s)
	}
	ev := Event{
		Kind:  KindSubstitution,
		Start: plainInt(group(rnaSubstitutionRe, m, "position")),
		Ref:   ref,
		Alt:   alt,
	}
	if silent != "" {
		ev.Kind = KindNoChange
	}
	if group(rnaSubstitutionRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseRNADeletion(s string) (Event, error) {
	m := rnaDeletionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDeletion, s)
	}
	ev := Event{Kind: KindDeletion, Ref: group(rnaDeletionRe, m, "base")}
	if interval := group(rnaDeletionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	} else {
		ev.Start = plainInt(group(rnaDeletionRe, m, "position"))
	}
	if group(rnaDeletionRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseRNAInsertion(s string) (Event, error) {
	m := rnaInsertionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindInsertion, s)
	}
	ev := Event{Kind: KindInsertion, Alt: group(rnaInsertionRe, m, "bases")}
	if interval := group(rnaInsertionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	}
	if group(rnaInsertionRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseRNADelins(s string) (Event, error) {
	m := rnaDelinsRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDelIns, s)
	}
	ev := Event{Kind: KindDelIns, Alt: group(rnaDelinsRe, m, "bases")}
	if interval := group(rnaDelinsRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	} else {
		ev.Start = plainInt(group(rnaDelinsRe, m, "position"))
	}
	if group(rnaDelinsRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}
