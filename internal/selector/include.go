package selector

import (
	"fmt"
	"path"
	"strings"
)

// IncludeSet is the ordered list of glob-like patterns naming what a mod
// archive is expected to hold. Patterns use "/" separators, path.Match syntax
// per segment, and "**" for any number of segments.
type IncludeSet struct {
	patterns []string
}

// NewIncludeSet validates patterns and returns an IncludeSet.
func NewIncludeSet(patterns []string) (IncludeSet, error) {
	owned := make([]string, 0, len(patterns))
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return IncludeSet{}, fmt.Errorf("include[%d]: %w", i, ErrEmptyPattern)
		}
		for _, seg := range strings.Split(p, "/") {
			if seg == "**" {
				continue
			}
			if _, err := path.Match(seg, ""); err != nil {
				return IncludeSet{}, fmt.Errorf("include[%d] %q: %w", i, p, err)
			}
		}
		owned = append(owned, p)
	}
	return IncludeSet{patterns: owned}, nil
}

// Covering returns the first pattern matching the slash-separated entry name,
// or "" when none does.
func (s IncludeSet) Covering(name string) string {
	for _, p := range s.patterns {
		if matchSegments(strings.Split(p, "/"), strings.Split(name, "/")) {
			return p
		}
	}
	return ""
}

func matchSegments(pattern, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchSegments(rest, name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		ok, err := path.Match(pattern[0], name[0])
		if err != nil || !ok {
			return false
		}
		pattern, name = pattern[1:], name[1:]
	}
	return len(name) == 0
}
