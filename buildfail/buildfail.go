// Package buildfail locates and classifies the line in a build log section
// that caused sbuild to give up.
package buildfail

import (
	"strings"

	"github.com/quay/buildlog/pattern"
	"github.com/quay/buildlog/problem"
)

// LookBackPrimary is the default number of trailing lines the backward scan
// considers.
const LookBackPrimary = 150

// LookBackSecondary is the default number of trailing lines the forward,
// vague-match scan considers.
const LookBackSecondary = 150

// Match is the result of a failure-finding pass: an absent Offset means
// nothing was found at all.
type Match struct {
	Offset  int // 1-based line number within the input, 0 if not found
	Line    string
	Problem problem.Problem
}

// Found reports whether m represents an actual finding.
func (m Match) Found() bool { return m.Offset > 0 }

// Find runs the full algorithm from the pattern library against lines: a
// bounded backward scan with the primary matchers, then a bounded forward
// scan with the vague secondary list.
func Find(lines []string) Match {
	lines = stripUselessTail(lines)
	if m, ok := scanBackward(lines); ok {
		return m
	}
	return scanForward(lines)
}

func scanBackward(lines []string) (Match, bool) {
	limit := LookBackPrimary
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := 1; i <= limit; i++ {
		lineno := len(lines) - i
		if lineno < 0 {
			break
		}
		if consumed, p, ok := pattern.MatchAny(pattern.Primary, lines, lineno); ok {
			last := consumed[len(consumed)-1]
			return Match{
				Offset:  last + 1,
				Line:    strings.TrimRight(lines[last], "\r\n"),
				Problem: p,
			}, true
		}
	}
	return Match{}, false
}

func scanForward(lines []string) Match {
	limit := LookBackSecondary
	start := len(lines) - limit
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		if pattern.MatchSecondary(lines, i) {
			return Match{Offset: i + 1, Line: strings.TrimRight(lines[i], "\r\n")}
		}
	}
	return Match{}
}

// stripUselessTail drops a "Build finished at " marker found within the
// trailing LookBackPrimary window (together with everything after it and
// its preceding rule line), then drops anything from a "==> config.log <=="
// marker onward, wherever that marker appears. Neither carries diagnostic
// value and both are prone to triggering false secondary matches.
func stripUselessTail(lines []string) []string {
	limit := LookBackPrimary
	start := len(lines) - limit
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "Build finished at ") {
			lines = lines[:i]
			if len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r\n") == strings.Repeat("-", 80) {
				lines = lines[:len(lines)-1]
			}
			break
		}
	}
	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") == "==> config.log <==" {
			lines = lines[:i]
			break
		}
	}
	return lines
}
