// Package preamble classifies the section of a build log that precedes any
// titled banner: source unpacking, dpkg-source, and brz (Breezy VCS)
// errors.
package preamble

import (
	"regexp"
	"strings"

	"github.com/quay/buildlog/problem"
)

// LookBack is the number of trailing lines scanned.
const LookBack = 20

// Match mirrors [buildfail.Match]'s shape.
type Match struct {
	Offset  int
	Line    string
	Problem problem.Problem
}

func (m Match) Found() bool { return m.Offset > 0 }

var (
	dpkgSourceLocalChanges   = regexp.MustCompile(`^dpkg-source: error: aborting due to unexpected upstream changes, see `)
	dpkgSourceLocalModified  = "dpkg-source: info: local changes detected, the modified files are:"
	dpkgSourceCannotRead     = regexp.MustCompile(`^dpkg-source: error: cannot read ((?:.*/)?debian/control): No such file or directory`)
	dpkgSourceNoSpace        = regexp.MustCompile(`^dpkg-source: error: .*: No space left on device`)
	tarNoSpace               = regexp.MustCompile(`^tar: .*: Cannot write: No space left on device`)
	dpkgSourceBinaryChanged  = regexp.MustCompile(`^dpkg-source: error: cannot represent change to (.*): binary file contents changed`)
	dpkgSourceGenericFailure = regexp.MustCompile(`^dpkg-source: error: (.*)`)
	failedToPackageSource    = regexp.MustCompile(`^E: Failed to package source directory (.*)`)
	dpkgSourceUnwantedBinary = regexp.MustCompile(`^dpkg-source: error: detected ([0-9]+) unwanted binary file`)
	brzError                 = "brz: ERROR: "
)

// Find scans the last LookBack lines of a preamble, returning the most
// specific classification found. Unlike [buildfail.Find], a later generic
// "dpkg-source: error: (.*)" can still be reported if nothing more specific
// matches, mirroring the source's "keep scanning, remember the last vague
// hit" behavior.
func Find(lines []string) Match {
	var fallback Match
	limit := LookBack
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := 1; i <= limit; i++ {
		lineno := len(lines) - i
		if lineno < 0 {
			break
		}
		line := strings.TrimRight(lines[lineno], "\r\n")

		if dpkgSourceLocalChanges.MatchString(line) {
			return Match{Offset: lineno + 1, Line: line, Problem: localChanges(lines, lineno)}
		}
		if line == "dpkg-source: error: unrepresentable changes to source" {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgSourceUnrepresentableChanges{}}
		}
		if dpkgSourceUnwantedBinary.MatchString(line) {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgUnwantedBinaryFiles{}}
		}
		if m := dpkgSourceCannotRead.FindStringSubmatch(line); m != nil {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.MissingControlFile{Path: m[1]}}
		}
		if dpkgSourceNoSpace.MatchString(line) || tarNoSpace.MatchString(line) {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.NoSpaceOnDevice{}}
		}
		if m := dpkgSourceBinaryChanged.FindStringSubmatch(line); m != nil {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgBinaryFileChanged{Paths: []string{m[1]}}}
		}
		if m := dpkgSourceGenericFailure.FindStringSubmatch(line); m != nil {
			fallback = Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgSourcePackFailed{Reason: m[1]}}
			continue
		}
		if failedToPackageSource.MatchString(line) {
			fallback = Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgSourcePackFailed{}}
			continue
		}
	}
	if brz, ok := findBrzError(lines, limit); ok {
		return brz
	}
	return fallback
}

// localChanges walks backward from a "dpkg-source: error: aborting..."
// line looking for the preceding "local changes detected" marker that
// lists the changed files. If it isn't found, the files list is left
// empty — the Python original has a dead branch here that references an
// unassigned local; this intentionally skips it rather than reproduce it.
func localChanges(lines []string, lineno int) problem.Problem {
	var files []string
	for j := lineno - 1; j >= 0; j-- {
		line := strings.TrimRight(lines[j], "\r\n")
		if line == dpkgSourceLocalModified {
			reverse(files)
			return problem.DpkgSourceLocalChanges{Files: files}
		}
		files = append(files, strings.TrimSpace(line))
	}
	return problem.DpkgSourceLocalChanges{}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// findBrzError locates a multi-line "brz: ERROR: ..." message within the
// last limit lines, where continuation lines are those starting with
// whitespace.
func findBrzError(lines []string, limit int) (Match, bool) {
	start := len(lines) - limit
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r\n")
		if !strings.HasPrefix(line, brzError) {
			continue
		}
		var b strings.Builder
		b.WriteString(strings.TrimPrefix(line, brzError))
		last := i
		for j := i + 1; j < len(lines); j++ {
			if !strings.HasPrefix(lines[j], " ") {
				break
			}
			b.WriteString(strings.TrimRight(lines[j], "\r\n"))
			last = j
		}
		return Match{Offset: last + 1, Line: line, Problem: nil}, true
	}
	return Match{}, false
}
