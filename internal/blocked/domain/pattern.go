package domain

import (
	"fmt"
	"strings"
)

// PatternKind defines which shape of blocked server pattern was matched.
//
// exact             - the full address, e.g. "127.0.0.1" or "mc.example.com"
// ipv4_wildcard     - leading octets followed by ".*", e.g. "192.0.*"
// hostname_wildcard - "*." followed by trailing labels, e.g. "*.example.com"
type PatternKind uint8

const (
	// PatternExact matches the address verbatim.
	PatternExact PatternKind = iota
	// PatternIPv4Wildcard matches any address sharing the leading octets.
	PatternIPv4Wildcard
	// PatternHostnameWildcard matches any address sharing the trailing labels.
	PatternHostnameWildcard
)

// String returns a stable string representation of the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatternExact:
		return "exact"
	case PatternIPv4Wildcard:
		return "ipv4_wildcard"
	case PatternHostnameWildcard:
		return "hostname_wildcard"
	default:
		return fmt.Sprintf("PatternKind(%d)", k)
	}
}

// ParsePatternKind converts a string into a PatternKind.
// Accepts: "exact", "ipv4_wildcard", "hostname_wildcard" (case-insensitive).
func ParsePatternKind(s string) (PatternKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return PatternExact, nil
	case "ipv4_wildcard":
		return PatternIPv4Wildcard, nil
	case "hostname_wildcard":
		return PatternHostnameWildcard, nil
	default:
		return 0, fmt.Errorf("unsupported PatternKind: %q", s)
	}
}

// Pattern is a plaintext candidate whose digest may appear in the blocked servers list.
type Pattern struct {
	Text string
	Kind PatternKind
}

// Digest returns the SHA-1 digest of the pattern text.
func (p Pattern) Digest() Digest { return DigestOf(p.Text) }

// VisitCandidates yields the candidate patterns for address in specificity
// order and stops as soon as visit returns false.
//
// The exact address always comes first. IPv4 addresses then yield
// progressively shorter octet prefixes ("a.b.c.*", "a.b.*", "a.*"); every
// other address yields progressively shorter label suffixes ("*.b.c", "*.c").
// A single segment address has no wildcard candidates.
func VisitCandidates(address string, visit func(Pattern) bool) {
	if !visit(Pattern{Text: address, Kind: PatternExact}) {
		return
	}
	parts := SplitAddress(address)
	if ClassifyAddress(parts) == AddressIPv4 {
		for i := len(parts) - 1; i >= 1; i-- {
			p := Pattern{Text: strings.Join(parts[:i], ".") + ".*", Kind: PatternIPv4Wildcard}
			if !visit(p) {
				return
			}
		}
		return
	}
	for i := 1; i < len(parts); i++ {
		p := Pattern{Text: "*." + strings.Join(parts[i:], "."), Kind: PatternHostnameWildcard}
		if !visit(p) {
			return
		}
	}
}

// Candidates returns every candidate pattern for address in specificity order.
func Candidates(address string) []Pattern {
	var out []Pattern
	VisitCandidates(address, func(p Pattern) bool {
		out = append(out, p)
		return true
	})
	return out
}
