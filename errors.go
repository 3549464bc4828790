// Package buildlog analyzes textual logs produced by Debian
// build-and-test tooling (sbuild and its subordinate stages) and distills
// them into a typed diagnosis of what went wrong.
package buildlog

import (
	"strings"
)

// Error is the buildlog error domain type.
//
// Errors coming from buildlog components should be able to be inspected as
// ([errors.As]) an *Error at some point in the error chain.
//
// Parsing itself never fails: an ambiguous or malformed log yields a vague
// [WorkerFailure], never an error. The parsers in this module do not return
// an *Error: a pattern that fails to compile panics at package init, and a
// dose3 report that doesn't parse is treated as "no problem found".
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrInternal, ErrInvalid:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of errors to be checked against.
type ErrorKind string

// Defined error kinds.
var (
	// ErrInternal marks a bug: a compiled-in pattern failed to compile, or
	// an invariant the parser relies on was violated. It should never be
	// observed outside of this module's own tests.
	ErrInternal = ErrorKind("internal")
	// ErrInvalid marks malformed auxiliary input, such as a dose3 report
	// that isn't shaped the way the analyzer expects. Callers that don't
	// care can ignore it: the enclosing WorkerFailure still carries a
	// usable, if vaguer, result.
	ErrInvalid = ErrorKind("invalid")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
