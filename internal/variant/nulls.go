// Package variant validates individual HGVS dataset cells: null token
// handling, legacy sentinel rejection, grammar parsing and prefix-to-column
// binding.
package variant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inodb/mavecheck/internal/hgvs"
)

// Default null tokens recognized in uploaded cells. Matching is
// case-insensitive and ignores surrounding whitespace.
var defaultNullTokens = []string{
	"nan", "na", "none", "", "undefined", "n/a", "null", "nil", "NA",
}

// NullValues decides whether a raw cell value is a null marker. Construct
// with DefaultNullValues or NewNullValues; the zero value is not usable.
type NullValues struct {
	re       *regexp.Regexp
	readable []string
}

// DefaultNullValues returns the standard null token set.
func DefaultNullValues() *NullValues {
	return NewNullValues(nil)
}

// NewNullValues returns a matcher for the standard null tokens plus any
// extra tokens. Duplicate and empty tokens are dropped.
func NewNullValues(extra []string) *NullValues {
	tokens := make([]string, 0, len(defaultNullTokens)+len(extra))
	tokens = append(tokens, defaultNullTokens...)
	tokens = append(tokens, extra...)

	alts := []string{`\s+`}
	var readable []string
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		lower := strings.ToLower(strings.TrimSpace(t))
		if lower == "" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		alts = append(alts, regexp.QuoteMeta(lower))
		readable = append(readable, fmt.Sprintf("'%s'", lower))
	}
	readable = append(readable, "whitespace")

	return &NullValues{
		re:       regexp.MustCompile(`(?i)^(?:` + strings.Join(alts, "|") + `)$`),
		readable: readable,
	}
}

// IsNull reports whether the value is empty, whitespace-only or one of the
// recognized null tokens.
func (n *NullValues) IsNull(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return true
	}
	return n.re.MatchString(v)
}

// Readable lists the null tokens in a stable order suitable for error
// messages, ending with "whitespace".
func (n *NullValues) Readable() []string {
	return append([]string(nil), n.readable...)
}

// sentinelError rejects the retired wildtype and synonymous tokens with
// replacement guidance. Returns nil for everything else.
func sentinelError(token string) error {
	switch strings.ToLower(token) {
	case hgvs.Synonymous:
		return fmt.Errorf("'_sy' is no longer supported and should be replaced by 'p.(=)'")
	case hgvs.Wildtype:
		return fmt.Errorf("'_wt' is no longer supported and should be replaced by one of 'g.=', 'c.=' or 'n.='")
	}
	return nil
}
