// Package hgvs parses and validates HGVS variant notation for DNA, RNA and
// protein sequences. It recognizes substitution, deletion, insertion,
// deletion-insertion and frame shift events, both as single variants
// (e.g. "c.123A>G", "p.(Trp24Cys)") and as bracketed multi-variants
// (e.g. "c.[123A>G;19del]").
package hgvs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Legacy sentinel tokens denoting wildtype and synonymous variants. They
// carry no event grammar and always parse successfully.
const (
	Wildtype   = "_wt"
	Synonymous = "_sy"
)

// Level identifies the molecule a variant describes.
type Level int

const (
	LevelDNA Level = iota + 1
	LevelRNA
	LevelProtein
)

func (l Level) String() string {
	switch l {
	case LevelDNA:
		return "dna"
	case LevelRNA:
		return "rna"
	case LevelProtein:
		return "protein"
	default:
		return "unknown"
	}
}

// EventKind tags the closed set of recognized event grammars.
type EventKind int

const (
	KindSubstitution EventKind = iota + 1
	KindDeletion
	KindInsertion
	KindDelIns
	KindFrameShift
	KindNoChange
)

func (k EventKind) String() string {
	switch k {
	case KindSubstitution:
		return "substitution"
	case KindDeletion:
		return "deletion"
	case KindInsertion:
		return "insertion"
	case KindDelIns:
		return "delins"
	case KindFrameShift:
		return "frameshift"
	case KindNoChange:
		return "no-change"
	default:
		return "unknown"
	}
}

// Event is a single decomposed mutation event without its molecule prefix.
// Start and End hold 1-based positions when the event states them as plain
// integers; UTR, intronic and uncertain positions leave them zero.
type Event struct {
	Kind  EventKind
	Raw   string
	Start int
	End   int
	Ref   string
	Alt   string
}

// Variant is a parsed HGVS string.
type Variant struct {
	Prefix    byte // one of 'c', 'g', 'n', 'm', 'r', 'p'
	Level     Level
	Multi     bool
	Predicted bool // protein variant wrapped in p.(...)
	Events    []Event

	raw string
}

// IsSentinel reports whether s is one of the legacy wildtype or synonymous
// tokens.
func IsSentinel(s string) bool {
	return s == Wildtype || s == Synonymous
}

// IsSentinel reports whether the variant was parsed from a legacy sentinel
// token rather than event grammar.
func (v *Variant) IsSentinel() bool {
	return IsSentinel(v.raw)
}

// String returns the canonical form of the variant. Multi-variants are
// normalized to semicolon separators; single variants round-trip unchanged.
func (v *Variant) String() string {
	if v == nil {
		return ""
	}
	if v.Multi {
		parts := make([]string, len(v.Events))
		for i, e := range v.Events {
			parts[i] = e.Raw
		}
		return fmt.Sprintf("%c.[%s]", v.Prefix, strings.Join(parts, ";"))
	}
	return v.raw
}

// ParseOptions control the optional semantic checks applied after a
// variant matches its event grammar.
type ParseOptions struct {
	// TargetSeq, when non-empty, is the reference sequence positions and
	// reference residues are checked against. Nucleotide variants expect a
	// nucleotide sequence, protein variants an amino acid sequence.
	TargetSeq string

	// RelaxedOrdering skips the requirement that multi-variant events be
	// listed in ascending position order.
	RelaxedOrdering bool
}

// Parse parses an HGVS string with strict event ordering and no target
// sequence checks.
func Parse(s string) (*Variant, error) {
	return ParseWithOptions(s, ParseOptions{})
}

// ParseWithOptions parses an HGVS string. Sentinel tokens parse to a
// variant with no events. The returned error carries the reason the
// string was rejected and is suitable for display.
func ParseWithOptions(s string, opts ParseOptions) (*Variant, error) {
	if IsSentinel(s) {
		return &Variant{raw: s}, nil
	}

	level := inferLevel(s)
	if level == 0 {
		return nil, fmt.Errorf("'%s' is not a supported HGVS syntax.", s)
	}

	v := &Variant{Prefix: s[0], Level: level, raw: s}

	var body string
	if len(s) >= 2 && s[1] == '.' {
		body = s[2:]
	}

	switch {
	case body == "=" || (level == LevelProtein && body == "(=)"):
		// Target-identical form, e.g. "c.=" or "p.(=)".
		v.Predicted = body == "(=)"
		v.Events = []Event{{Kind: KindNoChange, Raw: "="}}

	case strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"):
		v.Multi = true
		events, err := parseMulti(s, level)
		if err != nil {
			return nil, err
		}
		v.Events = events

	default:
		ev, predicted, err := parseSingle(s, level)
		if err != nil {
			return nil, err
		}
		v.Predicted = predicted
		v.Events = []Event{ev}
	}

	if v.Multi && !opts.RelaxedOrdering {
		if err := v.checkOrdering(); err != nil {
			return nil, err
		}
	}
	if opts.TargetSeq != "" {
		if err := v.checkTarget(opts.TargetSeq); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// inferLevel inspects the prefix character. Returns the zero Level for
// unsupported prefixes.
func inferLevel(s string) Level {
	if s == "" {
		return 0
	}
	switch s[0] {
	case 'c', 'g', 'n', 'm':
		return LevelDNA
	case 'r':
		return LevelRNA
	case 'p':
		return LevelProtein
	default:
		return 0
	}
}

// inferKind decides which event grammar to try. Delins must be checked
// before insertion and deletion since "delins" contains both of their
// markers as substrings.
func inferKind(s string) EventKind {
	switch {
	case strings.Contains(s, "delins"):
		return KindDelIns
	case strings.Contains(s, "ins"):
		return KindInsertion
	case strings.Contains(s, "del"):
		return KindDeletion
	case strings.Contains(s, "fs"):
		return KindFrameShift
	default:
		return KindSubstitution
	}
}

func parseSingle(s string, level Level) (Event, bool, error) {
	if level == LevelProtein && proteinPredictedRe.MatchString(s) {
		ev, err := parseEvent(level, s[3:len(s)-1])
		return ev, true, err
	}
	ev, err := parseEvent(level, s)
	return ev, false, err
}

func parseMulti(s string, level Level) ([]Event, error) {
	var multiRe *regexp.Regexp
	switch level {
	case LevelDNA:
		multiRe = dnaMultiRe
	case LevelRNA:
		multiRe = rnaMultiRe
	case LevelProtein:
		multiRe = proteinMultiRe
	}
	if !multiRe.MatchString(s) {
		return nil, fmt.Errorf("'%s' is not a supported HGVS syntax.", s)
	}

	body := s[3 : len(s)-1] // strip prefix, dot and brackets
	sep := byte(';')
	if level == LevelRNA && !containsTopLevel(body, ';') {
		// RNA multi-variants may be comma separated.
		sep = ','
	}
	parts := splitTopLevel(body, sep)

	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if _, ok := seen[p]; ok {
			return nil, fmt.Errorf(
				"Multi-variant '%s' has defined the same event more than once.", s)
		}
		seen[p] = struct{}{}
	}

	events := make([]Event, 0, len(parts))
	for _, p := range parts {
		ev, err := parseEvent(level, p)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// parseEvent validates a single event at the given level. The event may
// carry an optional molecule prefix; syntax errors quote s verbatim.
func parseEvent(level Level, s string) (Event, error) {
	kind := inferKind(s)
	var (
		ev  Event
		err error
	)
	switch level {
	case LevelDNA:
		ev, err = parseDNAEvent(kind, s)
	case LevelRNA:
		ev, err = parseRNAEvent(kind, s)
	case LevelProtein:
		ev, err = parseProteinEvent(kind, s)
	}
	if err != nil {
		return Event{}, err
	}
	ev.Raw = stripEventPrefix(s)
	return ev, nil
}

func stripEventPrefix(s string) string {
	if len(s) >= 2 && s[1] == '.' && strings.IndexByte("cgnmrp", s[0]) >= 0 {
		return s[2:]
	}
	return s
}

// group returns the text captured by a named group, or "" when the group
// did not participate in the match.
func group(re *regexp.Regexp, m []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i]
}

// plainInt converts a position capture to an int when it is purely
// numeric. UTR, intronic and uncertain positions yield zero.
func plainInt(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// splitInterval extracts plain start and end positions from an "a_b"
// interval capture.
func splitInterval(s string) (start, end int) {
	i := strings.IndexByte(s, '_')
	if i < 0 {
		return 0, 0
	}
	return plainInt(s[:i]), plainInt(s[i+1:])
}

// splitTopLevel splits s on sep, ignoring separators nested inside square
// brackets (RNA insertions may carry bracketed intronic position lists).
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func containsTopLevel(s string, sep byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				return true
			}
		}
	}
	return false
}

// anonymize rewrites named capture groups to plain groups so event
// patterns can be repeated inside composed multi-variant patterns.
var namedGroupRe = regexp.MustCompile(`\(\?P<\w+>`)

func anonymize(pattern string) string {
	return namedGroupRe.ReplaceAllString(pattern, "(?:")
}

func syntaxError(kind EventKind, s string) error {
	var label string
	switch kind {
	case KindSubstitution:
		label = "substitution"
	case KindDeletion:
		label = "deletion"
	case KindInsertion:
		label = "insertion"
	case KindDelIns:
		label = "deletion-insertion"
	case KindFrameShift:
		label = "frame shift"
	default:
		return fmt.Errorf("'%s' is not a supported HGVS syntax.", s)
	}
	return fmt.Errorf("'%s' is not a supported %s syntax.", s, label)
}
