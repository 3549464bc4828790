package pattern

import (
	"regexp"
	"strings"

	"github.com/quay/buildlog/problem"
)

// cmakeErrorMatcher recognizes a "CMake Error at FILE:LINE (MACRO):" header,
// collects the indented (or blank) continuation lines that follow it as the
// error body, and classifies that body against a nested, CMake-specific
// pattern list.
type cmakeErrorMatcher struct{}

var cmakeError Matcher = cmakeErrorMatcher{}

var cmakeErrorHeader = regexp.MustCompile(`\ACMake Error at (.*):([0-9]+) \((.*)\):\z`)

func (cmakeErrorMatcher) Match(lines []string, i int) ([]int, problem.Problem) {
	if !cmakeErrorHeader.MatchString(strings.TrimRight(lines[i], "\r\n")) {
		return nil, nil
	}
	consumed, body := extractCMakeErrorLines(lines, i)
	joined := strings.Join(body, "\n")
	for _, ce := range cmakeErrors {
		m := ce.re.FindStringSubmatch(joined)
		if m == nil {
			continue
		}
		if ce.fn == nil {
			return consumed, nil
		}
		return consumed, ce.fn(m)
	}
	return consumed, nil
}

// extractCMakeErrorLines gathers the blank-or-indented lines immediately
// following the header line, trims trailing blank lines, and dedents the
// remainder by the common leading whitespace.
func extractCMakeErrorLines(lines []string, i int) (consumed []int, body []string) {
	consumed = []int{i}
	var raw []string
	for j := i + 1; j < len(lines); j++ {
		line := strings.TrimRight(lines[j], "\r\n")
		if line != "" && !strings.HasPrefix(lines[j], " ") {
			break
		}
		raw = append(raw, line)
		consumed = append(consumed, j)
	}
	for len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
		consumed = consumed[:len(consumed)-1]
	}
	return consumed, dedent(raw)
}

// dedent strips the longest common leading-whitespace prefix shared by every
// non-blank line.
func dedent(lines []string) []string {
	prefix := ""
	found := false
	for _, l := range lines {
		if l == "" {
			continue
		}
		lead := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if !found {
			prefix, found = lead, true
			continue
		}
		for !strings.HasPrefix(lead, prefix) && prefix != "" {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l, prefix)
	}
	return out
}

// reclassifyCompilerOutput re-runs the primary matcher list, backward from
// the end, over a compiler-invocation transcript embedded inside a CMake
// error block. It mirrors how the top-level build-failure finder works,
// without depending on that package, since this package is its dependency.
func reclassifyCompilerOutput(output string) problem.Problem {
	lines := strings.SplitAfter(output, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if _, p, ok := MatchAny(Primary, lines, i); ok {
			return p
		}
	}
	return nil
}

type cmakeErrorEntry struct {
	re *regexp.Regexp
	fn ConstructFunc
}

func cmakeRe(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\A(?:` + pattern + `)\z`)
}

var cmakeErrors = []cmakeErrorEntry{
	{
		cmakeRe(`--  Package '(.*)', required by '(.*)', not found`),
		func(m []string) problem.Problem { return problem.MissingPkgConfig{Module: m[1]} },
	},
	{
		cmakeRe(`Could NOT find (.*) \(missing: .*\)`),
		func(m []string) problem.Problem { return commandMissing(strings.ToLower(m[1])) },
	},
	{
		cmakeRe(`The (.+) compiler\n\n  "(.*)"\n\nis not able to compile a simple test program\.\n\nIt fails with the following output:\n\n(.*)\n\nCMake will not be able to correctly generate this project\.\n?`),
		func(m []string) problem.Problem { return reclassifyCompilerOutput(m[3]) },
	},
	{
		cmakeRe(`The imported target "(.*)" references the file\n\n\s*"(.*)"\n\nbut this file does not exist\.(?:.*)`),
		func(m []string) problem.Problem { return fileNotFound(m[2]) },
	},
	{
		cmakeRe(`Could not find a configuration file for package "(.*)".*requested version "(.*)"\.`),
		func(m []string) problem.Problem { return problem.MissingPkgConfig{Module: m[1], MinVersion: m[2]} },
	},
	{
		cmakeRe(`.*Could not find a package configuration file provided by "(.*)" with any of the following names:\n\n((?:  .*\n)+)\n.*`),
		func(m []string) problem.Problem {
			var names []string
			for _, l := range strings.Split(strings.TrimRight(m[2], "\n"), "\n") {
				names = append(names, strings.TrimSpace(l))
			}
			return problem.CMakeFilesMissing{Filenames: names}
		},
	},
	{
		cmakeRe(`No CMAKE_(.*)_COMPILER could be found\.\n\nTell CMake where to find the compiler by setting either the environment variable "(.*)" or the CMake cache entry CMAKE_(.*)_COMPILER to the full path to the compiler, or to the compiler name if it is in the PATH\.\n?`),
		func(m []string) problem.Problem { return commandMissing(strings.ToLower(m[1])) },
	},
	{
		cmakeRe(`file INSTALL cannot find\s"(.*)"\.\n?`),
		func(m []string) problem.Problem { return fileNotFound(m[1]) },
	},
	{
		cmakeRe(`file INSTALL cannot copy file\n"(.*)"\sto\s"(.*)":\sNo space left on device\.\n?`),
		func(m []string) problem.Problem { return problem.NoSpaceOnDevice{} },
	},
	{
		cmakeRe(`file INSTALL cannot copy file\n"(.*)"\nto\n"(.*)"\.\n?`),
		nil,
	},
}
