// Package stage reads sbuild's own "Fail-Stage:" declaration out of a
// build log's summary section.
package stage

import (
	"regexp"
	"strings"
)

var failStage = regexp.MustCompile(`^Fail-Stage:\s*(.*)$`)

// Find returns the value of the first "Fail-Stage: <value>" line among
// lines (case-preserving, trimmed), or ("", false) if none is present.
func Find(lines []string) (string, bool) {
	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if m := failStage.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
