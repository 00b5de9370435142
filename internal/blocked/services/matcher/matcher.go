// Package matcher implements blocked server pattern matching against an
// opaque set of SHA-1 digests.
package matcher

import (
	"github.com/haukened/blockedservers/internal/blocked/domain"
)

// HashIndex answers digest membership. domain.HashSet satisfies it.
type HashIndex interface {
	Contains(d domain.Digest) bool
}

// Matcher finds the blocked server pattern, if any, that an address falls under.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	index HashIndex
}

// New returns a Matcher over index. A nil index never matches.
func New(index HashIndex) *Matcher {
	return &Matcher{index: index}
}

// FindBlockedMatch tests the candidate patterns of address in specificity
// order and returns the first listed one.
func (m *Matcher) FindBlockedMatch(address string) (domain.Pattern, bool) {
	var (
		found domain.Pattern
		ok    bool
	)
	if m == nil || m.index == nil {
		return found, false
	}
	domain.VisitCandidates(address, func(p domain.Pattern) bool {
		if m.index.Contains(p.Digest()) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

// FindBlockedPattern returns the matched pattern text. An exact match returns
// address itself; otherwise the synthesized wildcard is returned.
func (m *Matcher) FindBlockedPattern(address string) (string, bool) {
	p, ok := m.FindBlockedMatch(address)
	return p.Text, ok
}

// IsBlocked reports whether any candidate pattern of address is listed.
func (m *Matcher) IsBlocked(address string) bool {
	_, ok := m.FindBlockedMatch(address)
	return ok
}

// Decide returns the match as a BlockDecision.
func (m *Matcher) Decide(address string) domain.BlockDecision {
	if p, ok := m.FindBlockedMatch(address); ok {
		return domain.DecisionFor(p)
	}
	return domain.EmptyDecision()
}
