package pattern

import (
	"strconv"
	"strings"

	"github.com/quay/buildlog/problem"
)

// pkgbuildPrefix marks a path as package-internal (sbuild builds inside
// /<<PKGBUILDDIR>>). A MissingFile whose path starts with this is almost
// always an artifact of the package's own build failing to produce it, not
// an environmental problem, so it's deliberately not classified.
const pkgbuildPrefix = "/<<PKGBUILDDIR>>"

// fileNotFound builds a MissingFile, but suppresses the classification for
// package-internal paths per spec.md §4.3.
func fileNotFound(path string) problem.Problem {
	if strings.HasPrefix(path, pkgbuildPrefix) {
		return nil
	}
	return problem.MissingFile{Path: path}
}

// commandMissing builds a MissingCommand, recognizing "./configure" as the
// more specific MissingConfigureScript and refusing to classify any other
// command containing a path separator (a relative or absolute script
// invocation isn't a "missing command" in the PATH sense).
func commandMissing(cmd string) problem.Problem {
	if cmd == "./configure" {
		return problem.MissingConfigureScript{}
	}
	if strings.ContainsRune(cmd, '/') {
		return nil
	}
	return problem.MissingCommand{Command: cmd}
}

// splitVersionConstraint splits a "name >= 1.2" style token on ">=",
// trimming whitespace from both halves. If there's no ">=", the whole
// trimmed string is the name and the version is empty.
func splitVersionConstraint(s string) (name, version string) {
	if i := strings.Index(s, ">="); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+2:])
	}
	return strings.TrimSpace(s), ""
}

// pythonMajorVersion guesses the Python major version an error message was
// produced under, from the conventional prefixes sbuild/tox/pytest logs
// carry.
func pythonMajorVersion(prefix string) int {
	switch {
	case strings.Contains(prefix, "python3"):
		return 3
	case strings.Contains(prefix, "python2"):
		return 2
	case strings.HasPrefix(prefix, "E   "): // pytest plugin import form
		return 2
	default:
		return 0
	}
}

func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func int64OrZero(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func splitFields(s string) []string {
	return strings.Fields(s)
}

func ptrInt(n int) *int { return &n }
