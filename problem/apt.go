package problem

import "fmt"

// AptFetchFailure reports that apt-get couldn't fetch one of its index or
// package files.
type AptFetchFailure struct {
	URL   string
	Error string
}

func (p AptFetchFailure) Kind() string   { return "apt-fetch-failure" }
func (p AptFetchFailure) IsGlobal() bool { return true }
func (p AptFetchFailure) String() string {
	if p.URL == "" {
		return fmt.Sprintf("Apt fetch failure: %s", p.Error)
	}
	return fmt.Sprintf("Apt fetch failure: %s: %s", p.URL, p.Error)
}

// AptMissingReleaseFile reports that a configured repository has no
// Release file.
type AptMissingReleaseFile struct {
	URL string
}

func (p AptMissingReleaseFile) Kind() string   { return "missing-release-file" }
func (p AptMissingReleaseFile) IsGlobal() bool { return true }
func (p AptMissingReleaseFile) String() string {
	return fmt.Sprintf("Missing release file: %s", p.URL)
}

// AptPackageUnknown reports that apt-get has no knowledge of a requested
// package name at all.
type AptPackageUnknown struct {
	Package string
}

func (p AptPackageUnknown) Kind() string   { return "apt-package-unknown" }
func (p AptPackageUnknown) IsGlobal() bool { return false }
func (p AptPackageUnknown) String() string {
	return fmt.Sprintf("Unknown package: %s", p.Package)
}

// AptBrokenPackages reports that apt-get refused to proceed because of
// held-broken packages, carrying apt's own explanation.
type AptBrokenPackages struct {
	Description string
}

func (p AptBrokenPackages) Kind() string   { return "apt-broken-packages" }
func (p AptBrokenPackages) IsGlobal() bool { return true }
func (p AptBrokenPackages) String() string {
	return fmt.Sprintf("Broken packages: %s", p.Description)
}

// DpkgError reports a generic "dpkg: error: ..." message that didn't match
// a more specific pattern.
type DpkgError struct {
	Message string
}

func (p DpkgError) Kind() string   { return "dpkg-error" }
func (p DpkgError) IsGlobal() bool { return false }
func (p DpkgError) String() string { return fmt.Sprintf("dpkg error: %s", p.Message) }

// UnsatisfiedDependencies reports the dose3/apt-derived set of Depends
// relations that couldn't be satisfied.
type UnsatisfiedDependencies struct {
	Relations Relation
}

func (p UnsatisfiedDependencies) Kind() string   { return "unsatisfied-dependencies" }
func (p UnsatisfiedDependencies) IsGlobal() bool { return false }
func (p UnsatisfiedDependencies) String() string {
	return fmt.Sprintf("Unsatisfied dependencies: %s", p.Relations.String())
}

// UnsatisfiedConflicts reports the dose3/apt-derived set of Conflicts
// relations that triggered the failure.
type UnsatisfiedConflicts struct {
	Relations Relation
}

func (p UnsatisfiedConflicts) Kind() string   { return "unsatisfied-conflicts" }
func (p UnsatisfiedConflicts) IsGlobal() bool { return false }
func (p UnsatisfiedConflicts) String() string {
	return fmt.Sprintf("Unsatisfied conflicts: %s", p.Relations.String())
}

func joinRelations(rs []Relation) string {
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = r.String()
	}
	out := ""
	for i, v := range s {
		if i > 0 {
			out += "; "
		}
		out += v
	}
	return out
}
