// Package gitignore compiles gitignore-style pattern lists into reusable
// path matchers with last-match-wins semantics.
package gitignore

import (
	"os"
	"regexp"
	"strings"
)

// Pattern is a single compiled ignore rule.
type Pattern struct {
	Regex  *regexp.Regexp // Compiled regular expression for the rule.
	Negate bool           // True when the rule un-ignores matching paths.
	Line   string         // Original pattern line.
	LineNo int            // Line number in the source (1-based).
}

// Spec is an ordered collection of compiled ignore rules. A nil *Spec is a
// valid matcher that ignores nothing.
//
// Candidate paths must be relative to the repository root, use forward
// slashes, and carry a trailing slash when they name a directory. Spec never
// touches the filesystem, so one compiled instance can be reused across any
// number of path checks.
type Spec struct {
	patterns []*Pattern
}

// New returns an empty Spec.
func New() *Spec {
	return &Spec{}
}

// CompileLines parses pattern lines into a new Spec, preserving order.
// Blank lines and comments are dropped.
func CompileLines(lines ...string) *Spec {
	s := New()
	s.AddLines(lines...)
	return s
}

// CompileFile reads an ignore file and compiles its lines into a new Spec.
func CompileFile(path string) (*Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CompileLines(strings.Split(string(content), "\n")...), nil
}

// AddLines appends rules parsed from the given lines. Later rules override
// earlier ones for the same path.
func (s *Spec) AddLines(lines ...string) {
	for i, line := range lines {
		re, negate, ok := parsePatternLine(line)
		if !ok {
			continue
		}
		s.patterns = append(s.patterns, &Pattern{
			Regex:  re,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
		})
	}
}

// Len reports the number of compiled rules.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// MatchesPath reports whether the path is ignored under the spec's rules.
func (s *Spec) MatchesPath(path string) bool {
	matched, _ := s.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern evaluates every rule in order and returns the final
// verdict together with the last rule that matched. A plain rule sets the
// verdict to ignored, a negated rule resets it; no match means not ignored.
func (s *Spec) MatchesPathWithPattern(path string) (bool, *Pattern) {
	if s == nil {
		return false, nil
	}

	matched := false
	var last *Pattern
	for _, p := range s.patterns {
		if p.Regex.MatchString(path) {
			matched = !p.Negate
			last = p
		}
	}
	return matched, last
}
