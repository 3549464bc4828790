package buildlog

import "github.com/quay/buildlog/problem"

// Phase is a coarser grouping than Stage, e.g. ("autopkgtest", "some-test")
// for a failure attributable to one test within the autopkgtest run.
type Phase struct {
	Name   string
	Detail string // empty if there's no finer detail
}

// WorkerFailure is the top-level distillation of a build log: which stage
// failed, optionally a finer phase within it, a human description (always
// populated), the typed Problem if one was classified, and the 1-based line
// offset into the original log the description refers to.
//
// WorkerFailure values are pure and immutable once built; compare two with
// [problem.Equal] on their Problem field, the pointed-to values of Phase,
// and ordinary equality on the remaining fields.
type WorkerFailure struct {
	Stage       string // empty if no stage could be determined
	Phase       *Phase
	Description string
	Problem     problem.Problem
	LineOffset  int // 0 if absent
}
