package sweep

import (
	"fmt"
	"regexp"
)

// Matcher selects object names with an ordered list of regular expressions.
// Every pattern is case-insensitive and anchored at the start of the name.
type Matcher struct {
	patterns []string
	compiled []*regexp.Regexp
}

// NewMatcher compiles the provided patterns in order
func NewMatcher(patterns ...string) (*Matcher, error) {
	m := &Matcher{
		patterns: make([]string, 0, len(patterns)),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)^(?:" + p + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
		m.compiled = append(m.compiled, re)
	}
	return m, nil
}

// Match returns the first pattern matching the start of name
func (m *Matcher) Match(name string) (string, bool) {
	for i, re := range m.compiled {
		if re.MatchString(name) {
			return m.patterns[i], true
		}
	}
	return "", false
}

// Patterns returns the patterns in matching order
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}
