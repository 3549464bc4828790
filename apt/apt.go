// Package apt classifies apt-get/dpkg transcripts and dose3 dependency
// reports produced while sbuild installs build dependencies.
package apt

import (
	"regexp"
	"strings"

	"github.com/quay/buildlog/problem"
	"github.com/quay/buildlog/section"
)

// LookBack is the number of trailing lines the backward scan considers.
const LookBack = 50

// Match mirrors [buildfail.Match]'s shape.
type Match struct {
	Offset  int
	Line    string
	Problem problem.Problem
}

func (m Match) Found() bool { return m.Offset > 0 }

var (
	failedToFetch     = regexp.MustCompile(`^E: Failed to fetch ([^ ]+)  (.*)`)
	missingReleaseOne = regexp.MustCompile(`^E: The repository '([^']+)' does not have a Release file\.`)
	dpkgDebNoSpace    = regexp.MustCompile(`^dpkg-deb: error: unable to write file '(.*)': No space left on device`)
	notEnoughSpace    = regexp.MustCompile(`^E: You don't have enough free space in (.*)\.`)
	unableToLocate    = regexp.MustCompile(`^E: Unable to locate package (.*)`)
	dpkgErrorLine     = regexp.MustCompile(`^dpkg: error: (.*)`)
	dpkgProcessing    = regexp.MustCompile(`^dpkg: error processing package (.*) \((.*)\):`)
	copyExtractedData = regexp.MustCompile(`^ cannot copy extracted data for '(.*)' to '(.*)': failed to write \(No space left on device\)`)
	genericNoSpace    = regexp.MustCompile(`^ .*: No space left on device`)
)

// FindFailure implements §4.8's find_apt_get_failure: a bounded backward
// scan over the most specific apt-get/dpkg error forms, falling back to a
// forward scan for late, out-of-order space-exhaustion messages.
func FindFailure(lines []string) Match {
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

		if strings.HasPrefix(line, "E: Failed to fetch ") {
			if m := failedToFetch.FindStringSubmatch(line); m != nil {
				return Match{Offset: lineno + 1, Line: line, Problem: problem.AptFetchFailure{URL: m[1], Error: m[2]}}
			}
			return Match{Offset: lineno + 1, Line: line}
		}
		if line == "E: Broken packages" || line == "E: Unable to correct problems, you have held broken packages." {
			prev := ""
			if lineno > 0 {
				prev = strings.TrimRight(lines[lineno-1], "\r\n")
			}
			return Match{Offset: lineno, Line: prev, Problem: problem.AptBrokenPackages{Description: prev}}
		}
		if m := missingReleaseOne.FindStringSubmatch(line); m != nil {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.AptMissingReleaseFile{URL: m[1]}}
		}
		if dpkgDebNoSpace.MatchString(line) {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.NoSpaceOnDevice{}}
		}
		if notEnoughSpace.MatchString(line) {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.NoSpaceOnDevice{}}
		}
		if fallback.Offset == 0 && strings.HasPrefix(line, "E: ") {
			fallback = Match{Offset: lineno + 1, Line: line}
		}
		if m := unableToLocate.FindStringSubmatch(line); m != nil {
			return Match{Offset: lineno + 1, Line: line, Problem: problem.AptPackageUnknown{Package: m[1]}}
		}
		if m := dpkgErrorLine.FindStringSubmatch(line); m != nil {
			if strings.HasSuffix(m[1], ": No space left on device") {
				return Match{Offset: lineno + 1, Line: line, Problem: problem.NoSpaceOnDevice{}}
			}
			return Match{Offset: lineno + 1, Line: line, Problem: problem.DpkgError{Message: m[1]}}
		}
		if m := dpkgProcessing.FindStringSubmatch(line); m != nil {
			next := ""
			if lineno+1 < len(lines) {
				next = strings.TrimRight(lines[lineno+1], "\r\n")
			}
			return Match{
				Offset:  lineno + 2,
				Line:    next,
				Problem: problem.DpkgError{Message: "processing package " + m[1] + " (" + m[2] + ")"},
			}
		}
	}

	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if copyExtractedData.MatchString(line) || genericNoSpace.MatchString(line) {
			return Match{Offset: i + 1, Line: line, Problem: problem.NoSpaceOnDevice{}}
		}
	}

	return fallback
}

// installDepsSectionTitle matches section titles like "install build
// dependencies (apt-based resolver)" or "install core build dependencies".
var installDepsSectionTitle = regexp.MustCompile(`(?i)install .*build dependencies.*`)

const dose3SectionTitle = "install dose3 build dependencies (aspcud-based resolver)"

// FindInstallDepsFailure implements §4.8's orchestration: try the dose3
// report first, then fall back to the apt-get scan over each
// "install ... build dependencies ..." section, preferring the dose3
// Problem when one was found.
func FindInstallDepsFailure(sections []section.Section) (focus section.Section, m Match, ok bool) {
	var dose3Problem problem.Problem
	if dose3, found := section.Find(sections, dose3SectionTitle); found {
		if report, ok := findCUDFOutput(dose3.Lines); ok {
			dose3Problem, _ = errorFromDose3Report(report)
		}
	}

	for _, s := range section.FindAllMatch(sections, installDepsSectionTitle.MatchString) {
		res := FindFailure(s.Lines)
		if !res.Found() {
			continue
		}
		if dose3Problem != nil {
			res.Problem = dose3Problem
		}
		return s, res, true
	}
	return section.Section{}, Match{}, false
}
