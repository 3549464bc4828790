package pattern

import (
	"strings"

	"github.com/quay/buildlog/problem"
)

// haskellMissingDepsMatcher recognizes cabal's "hlibrary.setup: Encountered
// missing or private dependencies:" header and consumes the contiguous
// block of "name constraint" lines that follows it.
type haskellMissingDepsMatcher struct{}

var haskellMissingDeps Matcher = haskellMissingDepsMatcher{}

const haskellMissingDepsHeader = "hlibrary.setup: Encountered missing or private dependencies:"

func (haskellMissingDepsMatcher) Match(lines []string, i int) ([]int, problem.Problem) {
	if strings.TrimRight(lines[i], "\r\n") != haskellMissingDepsHeader {
		return nil, nil
	}
	consumed := []int{i}
	var deps []problem.HaskellDependency
	for j := i + 1; j < len(lines); j++ {
		line := strings.TrimRight(lines[j], "\r\n")
		if line == "" {
			break
		}
		parts := strings.SplitN(line, " ", 2)
		dep := problem.HaskellDependency{Name: parts[0]}
		if len(parts) == 2 {
			dep.Constraint = parts[1]
		}
		deps = append(deps, dep)
		consumed = append(consumed, j)
	}
	return consumed, problem.MissingHaskellDependencies{Deps: deps}
}
