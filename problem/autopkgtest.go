package problem

import (
	"fmt"
	"strings"
)

// BlameEntry is one space-separated token of an autopkgtest "blame:" line,
// e.g. "deb:bcolz-doc" or "dsc:/path/to/foo_1.0.dsc". Kind is empty for
// entries that don't match a recognized "kind:" prefix.
type BlameEntry struct {
	Kind string // "deb", "arg", "dsc", or "" if unrecognized
	Arg  string
}

// AutopkgtestDepsUnsatisfiable reports a "FAIL badpkg" whose accompanying
// "badpkg:"/"blame:" lines indicate unsatisfiable test dependencies.
type AutopkgtestDepsUnsatisfiable struct {
	Args []BlameEntry
}

func (p AutopkgtestDepsUnsatisfiable) Kind() string   { return "badpkg" }
func (p AutopkgtestDepsUnsatisfiable) IsGlobal() bool { return false }
func (p AutopkgtestDepsUnsatisfiable) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		if a.Kind == "" {
			parts[i] = a.Arg
		} else {
			parts[i] = a.Kind + ":" + a.Arg
		}
	}
	return fmt.Sprintf("Test dependencies unsatisfiable: %s", strings.Join(parts, " "))
}

// AutopkgtestTimedOut reports that a test, or the whole run, hit its time
// limit.
type AutopkgtestTimedOut struct{}

func (p AutopkgtestTimedOut) Kind() string   { return "timed-out" }
func (p AutopkgtestTimedOut) IsGlobal() bool { return true }
func (p AutopkgtestTimedOut) String() string { return "Timed out" }

// AutopkgtestTestbedFailure reports a generic "testbed failure: REASON"
// message that didn't match one of the more specific recursive cases.
type AutopkgtestTestbedFailure struct {
	Reason string
}

func (p AutopkgtestTestbedFailure) Kind() string   { return "testbed-failure" }
func (p AutopkgtestTestbedFailure) IsGlobal() bool { return true }
func (p AutopkgtestTestbedFailure) String() string { return p.Reason }

// AutopkgtestDepChrootDisappeared reports that the testbed's chroot
// vanished mid-test (detected via a "Failed to stat file" stderr message).
type AutopkgtestDepChrootDisappeared struct{}

func (p AutopkgtestDepChrootDisappeared) Kind() string   { return "testbed-chroot-disappeared" }
func (p AutopkgtestDepChrootDisappeared) IsGlobal() bool { return true }
func (p AutopkgtestDepChrootDisappeared) String() string { return "Testbed chroot disappeared" }

// AutopkgtestErroneousPackage reports an "erroneous package: REASON"
// message whose cause wasn't resolvable to a build failure.
type AutopkgtestErroneousPackage struct {
	Reason string
}

func (p AutopkgtestErroneousPackage) Kind() string   { return "erroneous-package" }
func (p AutopkgtestErroneousPackage) IsGlobal() bool { return false }
func (p AutopkgtestErroneousPackage) String() string {
	return fmt.Sprintf("Erroneous package: %s", p.Reason)
}

// AutopkgtestStderrFailure reports a "FAIL stderr: ..." summary line whose
// stderr bucket didn't recurse into a classifiable build failure.
type AutopkgtestStderrFailure struct {
	Line string
}

func (p AutopkgtestStderrFailure) Kind() string   { return "autopkgtest-stderr-failure" }
func (p AutopkgtestStderrFailure) IsGlobal() bool { return false }
func (p AutopkgtestStderrFailure) String() string {
	return fmt.Sprintf("Stderr output: %s", p.Line)
}

// AutopkgtestTestbedSetupFailure reports that a setup command the testbed
// runs before tests failed with a given exit status and stderr.
type AutopkgtestTestbedSetupFailure struct {
	Command string
	Exit    int
	Stderr  string
}

func (p AutopkgtestTestbedSetupFailure) Kind() string   { return "testbed-setup-failure" }
func (p AutopkgtestTestbedSetupFailure) IsGlobal() bool { return true }
func (p AutopkgtestTestbedSetupFailure) String() string {
	return fmt.Sprintf("Testbed setup failure: %s (exit status %d): %s", p.Command, p.Exit, p.Stderr)
}

// ChrootNotFound reports that the named schroot/chroot doesn't exist at
// all, the more specific cousin of AutopkgtestTestbedSetupFailure.
type ChrootNotFound struct {
	Name string
}

func (p ChrootNotFound) Kind() string   { return "chroot-not-found" }
func (p ChrootNotFound) IsGlobal() bool { return true }
func (p ChrootNotFound) String() string { return fmt.Sprintf("Chroot not found: %s", p.Name) }
