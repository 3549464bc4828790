// Package pattern is the ordered regex-to-Problem matcher library. Most
// entries are single-line regexes paired with a constructor; a few are
// multi-line matchers that consume follow-up lines (Haskell missing
// dependencies, CMake error blocks).
//
// Matchers never error. A regex that fails to compile at package init is a
// bug in this package, not a runtime condition, and is reported by
// panicking with the offending pattern text — the one place this module
// treats a failure as fatal rather than as a vague classification.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quay/buildlog/problem"
)

// Matcher classifies a single log line, possibly consuming following
// lines, into an optional [problem.Problem].
//
// A nil consumed slice means "did not match here." A non-nil consumed
// slice with a nil Problem means "this is the failure line, but it isn't
// one we can classify" — the three-valued outcome spec.md calls out.
type Matcher interface {
	Match(lines []string, i int) (consumed []int, p problem.Problem)
}

// ConstructFunc builds a Problem (or nil, for "known uninteresting match")
// from a regex's submatches.
type ConstructFunc func(m []string) problem.Problem

// SingleLineMatcher matches a single, fully-anchored regex against
// lines[i] with its trailing newline stripped.
type SingleLineMatcher struct {
	re *regexp.Regexp
	fn ConstructFunc
}

// Single builds a [SingleLineMatcher]. pattern is an (unanchored) regex
// body; it's wrapped to match the whole line, mirroring Python's
// re.fullmatch semantics. A compile failure panics, carrying pattern for
// diagnosis — this must only ever happen for a pattern baked into this
// package, never from runtime input.
func Single(pattern string, fn ConstructFunc) *SingleLineMatcher {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		panic(fmt.Sprintf("pattern: invalid regexp %q: %v", pattern, err))
	}
	return &SingleLineMatcher{re: re, fn: fn}
}

// Match implements [Matcher].
func (s *SingleLineMatcher) Match(lines []string, i int) ([]int, problem.Problem) {
	line := strings.TrimRight(lines[i], "\r\n")
	m := s.re.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}
	var p problem.Problem
	if s.fn != nil {
		p = s.fn(m)
	}
	return []int{i}, p
}

// compileSecondary anchors and compiles a regex meant for the secondary
// (vague, unclassified) pass.
func compileSecondary(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		panic(fmt.Sprintf("pattern: invalid secondary regexp %q: %v", pattern, err))
	}
	return re
}

// MatchAny runs each matcher in order against lines[i] and returns the
// first that fires.
func MatchAny(matchers []Matcher, lines []string, i int) (consumed []int, p problem.Problem, ok bool) {
	for _, m := range matchers {
		if c, p := m.Match(lines, i); c != nil {
			return c, p, true
		}
	}
	return nil, nil, false
}
