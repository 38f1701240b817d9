package selector

import (
	"fmt"
	"strings"
)

// WildcardMarker is the leading character that turns a legacy pattern string
// into a suffix rule.
const WildcardMarker = "*"

// Kind discriminates exclusion rules.
type Kind uint8

const (
	// KindUnknown is the zero value and never matches.
	KindUnknown Kind = iota
	// KindSuffix matches when the path ends with Value.
	KindSuffix
	// KindContains matches when Value occurs anywhere in the path.
	KindContains
)

func (k Kind) String() string {
	switch k {
	case KindSuffix:
		return "suffix"
	case KindContains:
		return "contains"
	default:
		return "unknown"
	}
}

// Rule is one exclusion rule.
type Rule struct {
	Kind  Kind
	Value string
}

// Suffix builds a rule rejecting paths that end with s.
func Suffix(s string) Rule { return Rule{Kind: KindSuffix, Value: s} }

// Contains builds a rule rejecting paths that contain s.
func Contains(s string) Rule { return Rule{Kind: KindContains, Value: s} }

// ParsePattern converts the legacy string form into a Rule.
//
// A pattern starting with "*" becomes Suffix(rest); anything else becomes
// Contains(pattern). "*" alone is Suffix(""), which matches every path.
func ParsePattern(pattern string) (Rule, error) {
	if pattern == "" {
		return Rule{}, ErrEmptyPattern
	}
	if strings.HasPrefix(pattern, WildcardMarker) {
		return Suffix(strings.TrimPrefix(pattern, WildcardMarker)), nil
	}
	return Contains(pattern), nil
}

// ParsePatterns converts an ordered list of legacy patterns, preserving order.
func ParsePatterns(patterns []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(patterns))
	for i, p := range patterns {
		r, err := ParsePattern(p)
		if err != nil {
			return nil, fmt.Errorf("exclude[%d]: %w", i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Matches reports whether the rule fires for path.
func (r Rule) Matches(path string) bool {
	switch r.Kind {
	case KindSuffix:
		return strings.HasSuffix(path, r.Value)
	case KindContains:
		return strings.Contains(path, r.Value)
	default:
		return false
	}
}

// String renders the rule in its legacy pattern form.
func (r Rule) String() string {
	if r.Kind == KindSuffix {
		return WildcardMarker + r.Value
	}
	return r.Value
}

// Validate checks that the rule can be evaluated.
func (r Rule) Validate() error {
	switch r.Kind {
	case KindSuffix:
		return nil
	case KindContains:
		// An empty substring would reject everything without saying so.
		if r.Value == "" {
			return ErrEmptyPattern
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, r.Kind)
	}
}
