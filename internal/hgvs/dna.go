package hgvs

import (
	"fmt"
	"regexp"
	"strings"
)

// DNA event grammar shared by the coding (c.), genomic (g.), noncoding
// (n.) and mitochondrial (m.) prefixes. Positions may be plain integers,
// UTR-anchored ("*123", "-123"), carry intronic offsets ("123+45") or be
// uncertain ("?").
const dnaNucleotides = "ATCGXNH"

var (
	dnaUTR        = `(?P<utr>[*-])`
	dnaPosition   = `(?:((\d+)|\?|([*-]?\d+([+-]?(\d+|\?))?)))`
	dnaInterval   = fmt.Sprintf(`(?:((%[1]s)_(%[1]s)))`, dnaPosition)
	dnaFragment   = fmt.Sprintf(`(?:\(%s\))`, dnaInterval)
	dnaBreakpoint = fmt.Sprintf(`(?:(%[1]s_%[1]s))`, dnaFragment)
)

// Deletion, e.g. "19del", "19_21del", "(4071+1_4072-1)_(5154+1_5155-1)del".
var dnaDeletion = fmt.Sprintf(
	`(?P<del>`+
		`((?P<interval>%s)((=/)|(=//)|(del=//)|(del=/))?del)`+
		`|`+
		`((?P<breakpoint>%s)del)`+
		`|`+
		`((?P<position>%s)del(?P<base>[%s])?)`+
		`)`,
	dnaInterval, dnaBreakpoint, dnaPosition, dnaNucleotides)

// Insertion, e.g. "169_170insA", "32717298_32717299ins(100)".
var dnaInsertion = fmt.Sprintf(
	`(?P<ins>`+
		`(`+
		`((?P<interval>%s)ins)`+
		`|`+
		`((?P<fragment>%s)ins)`+
		`)`+
		`((?P<bases>[%s]+)|(?P<length>\(\d+\)))`+
		`)`,
	dnaInterval, dnaFragment, dnaNucleotides)

// Deletion-insertion, e.g. "6775delinsGA", "9002_9009delins(5)".
var dnaDelins = fmt.Sprintf(
	`(?P<delins>`+
		`(`+
		`((?P<interval>%s)delins)`+
		`|`+
		`((?P<position>%s)delins)`+
		`)`+
		`((?P<bases>[%s]+)|(?P<length>\(\d+\)))`+
		`)`,
	dnaInterval, dnaPosition, dnaNucleotides)

// Substitution, e.g. "123A>G", "54=", "54=/T>C".
var dnaSubstitution = fmt.Sprintf(
	`(?P<sub>`+
		`(?P<position>%s)`+
		`(`+
		`((?P<mosaic>(=/)|(=//))?(?P<ref>[%[2]s])>(?P<new>[%[2]s]))`+
		`|`+
		`(?P<silent>=)`+
		`)`+
		`)`,
	dnaPosition, dnaNucleotides)

var (
	dnaDeletionRe     = regexp.MustCompile(fmt.Sprintf(`^([cngm]\.)?(%s)?(%s)$`, dnaUTR, dnaDeletion))
	dnaInsertionRe    = regexp.MustCompile(fmt.Sprintf(`^([cngm]\.)?(%s)?(%s)$`, dnaUTR, dnaInsertion))
	dnaDelinsRe       = regexp.MustCompile(fmt.Sprintf(`^([cngm]\.)?(%s)?(%s)$`, dnaUTR, dnaDelins))
	dnaSubstitutionRe = regexp.MustCompile(fmt.Sprintf(`^([cngm]\.)?(%s)?(%s)$`, dnaUTR, dnaSubstitution))

	dnaAnyEvent = anonymize(fmt.Sprintf(`(%s)?(%s)`, dnaUTR,
		strings.Join([]string{dnaInsertion, dnaDeletion, dnaDelins, dnaSubstitution}, "|")))
	dnaMultiRe = regexp.MustCompile(fmt.Sprintf(`^[cngm]\.\[(%[1]s)(;%[1]s)+\]$`, dnaAnyEvent))
)

func parseDNAEvent(kind EventKind, s string) (Event, error) {
	switch kind {
	case KindDelIns:
		return parseDNADelins(s)
	case KindInsertion:
		return parseDNAInsertion(s)
	case KindDeletion:
		return parseDNADeletion(s)
	case KindSubstitution:
		return parseDNASubstitution(s)
	default:
		return Event{}, fmt.Errorf("'%s' is not a supported HGVS syntax.", s)
	}
}

func parseDNASubstitution(s string) (Event, error) {
	m := dnaSubstitutionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindSubstitution, s)
	}
	ref := group(dnaSubstitutionRe, m, "ref")
	alt := group(dnaSubstitutionRe, m, "new")
	silent := group(dnaSubstitutionRe, m, "silent")
	if silent == "" && ref != "" && alt != "" && ref == alt {
		return Event{}, fmt.Errorf(
			"Reference nucleotide cannot be the same as the new nucleotide for variant '%s'.", s)
	}
	ev := Event{
		Kind:  KindSubstitution,
		Start: plainInt(group(dnaSubstitutionRe, m, "position")),
		Ref:   ref,
		Alt:   alt,
	}
	if silent != "" {
		ev.Kind = KindNoChange
	}
	if group(dnaSubstitutionRe, m, "utr") != "" {
		// UTR-anchored coordinates do not map onto target positions.
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseDNADeletion(s string) (Event, error) {
	m := dnaDeletionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDeletion, s)
	}
	ev := Event{Kind: KindDeletion, Ref: group(dnaDeletionRe, m, "base")}
	if interval := group(dnaDeletionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	} else {
		ev.Start = plainInt(group(dnaDeletionRe, m, "position"))
	}
	if group(dnaDeletionRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseDNAInsertion(s string) (Event, error) {
	m := dnaInsertionRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindInsertion, s)
	}
	ev := Event{Kind: KindInsertion, Alt: group(dnaInsertionRe, m, "bases")}
	if interval := group(dnaInsertionRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	}
	if group(dnaInsertionRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}

func parseDNADelins(s string) (Event, error) {
	m := dnaDelinsRe.FindStringSubmatch(s)
	if m == nil {
		return Event{}, syntaxError(KindDelIns, s)
	}
	ev := Event{Kind: KindDelIns, Alt: group(dnaDelinsRe, m, "bases")}
	if interval := group(dnaDelinsRe, m, "interval"); interval != "" {
		ev.Start, ev.End = splitInterval(interval)
	} else {
		ev.Start = plainInt(group(dnaDelinsRe, m, "position"))
	}
	if group(dnaDelinsRe, m, "utr") != "" {
		ev.Start, ev.End = 0, 0
	}
	return ev, nil
}
