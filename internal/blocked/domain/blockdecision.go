package domain

// BlockDecision represents the outcome of evaluating an address against the blocked servers list.
// Pure value type, no external dependencies.
type BlockDecision struct {
	Blocked bool        // true if any candidate pattern is listed
	Pattern string      // the matched pattern: the address itself or a synthesized wildcard
	Kind    PatternKind // shape of the matched pattern
}

// IsBlocked is a convenience accessor.
func (d BlockDecision) IsBlocked() bool { return d.Blocked }

// EmptyDecision returns a not-blocked decision.
func EmptyDecision() BlockDecision { return BlockDecision{Blocked: false} }

// DecisionFor builds a blocked decision for a matched pattern.
func DecisionFor(p Pattern) BlockDecision {
	return BlockDecision{Blocked: true, Pattern: p.Text, Kind: p.Kind}
}
