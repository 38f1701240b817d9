package selector

import "fmt"

// Decision is the outcome of evaluating one path.
type Decision struct {
	// Included is false when any rule matched.
	Included bool
	// RuleIndex is the index of the first matching rule, -1 when none matched.
	RuleIndex int
	// Rule is the first matching rule; zero when none matched.
	Rule Rule
}

// Selector applies an ordered exclusion rule set. It holds no mutable state
// and is safe to share.
type Selector struct {
	rules []Rule
}

// New validates rules and returns a Selector owning a private copy of them.
func New(rules []Rule) (*Selector, error) {
	owned := make([]Rule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("exclude[%d] %q: %w", i, r.String(), err)
		}
		owned[i] = r
	}
	return &Selector{rules: owned}, nil
}

// FromPatterns parses legacy pattern strings and builds a Selector.
func FromPatterns(patterns []string) (*Selector, error) {
	rules, err := ParsePatterns(patterns)
	if err != nil {
		return nil, err
	}
	return New(rules)
}

// Rules returns a copy of the rule set in evaluation order.
func (s *Selector) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Decide evaluates path against the rules. The first matching rule wins.
func (s *Selector) Decide(path string) Decision {
	for i, r := range s.rules {
		if r.Matches(path) {
			return Decision{Included: false, RuleIndex: i, Rule: r}
		}
	}
	return Decision{Included: true, RuleIndex: -1}
}

// ShouldInclude reports whether path passes every exclusion rule.
func (s *Selector) ShouldInclude(path string) bool {
	return s.Decide(path).Included
}
