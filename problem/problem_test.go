package problem_test

import (
	"testing"

	"github.com/quay/buildlog/problem"
)

// knownKinds pins the wire-stable Kind() strings for a selection of the
// Problems in the taxonomy. A failure here means a Kind string changed or a type's Kind
// collided with another — either is a wire-compatibility break for callers
// that persist the discriminant.
func knownKinds() map[string]problem.Problem {
	return map[string]problem.Problem{
		"missing-file":               problem.MissingFile{},
		"no-space-on-device":         problem.NoSpaceOnDevice{},
		"insufficient-disk-space":    problem.InsufficientDiskSpace{},
		"chroot-not-found":           problem.ChrootNotFound{},
		"missing-perl-module":        problem.MissingPerlModule{},
		"missing-ruby-gem":           problem.MissingRubyGem{},
		"cmake-files-missing":        problem.CMakeFilesMissing{},
		"apt-fetch-failure":          problem.AptFetchFailure{},
		"apt-package-unknown":        problem.AptPackageUnknown{},
		"apt-broken-packages":        problem.AptBrokenPackages{},
		"missing-release-file":       problem.AptMissingReleaseFile{},
		"dpkg-error":                 problem.DpkgError{},
		"timed-out":                  problem.AutopkgtestTimedOut{},
		"testbed-failure":            problem.AutopkgtestTestbedFailure{},
		"testbed-chroot-disappeared": problem.AutopkgtestDepChrootDisappeared{},
		"erroneous-package":          problem.AutopkgtestErroneousPackage{},
		"autopkgtest-stderr-failure": problem.AutopkgtestStderrFailure{},
		"testbed-setup-failure":      problem.AutopkgtestTestbedSetupFailure{},
		"badpkg":                     problem.AutopkgtestDepsUnsatisfiable{},
		"patch-application-failed":   problem.PatchApplicationFailed{},
		"patch-file-missing":         problem.PatchFileMissing{},
		"source-format-unbuildable":  problem.SourceFormatUnbuildable{},
		"unsupported-source-format":  problem.SourceFormatUnsupported{},
		"arch-not-in-list":           problem.ArchitectureNotInList{},
		"missing-revision":           problem.MissingRevision{},
	}
}

func TestKindStability(t *testing.T) {
	seen := map[string]bool{}
	for want, p := range knownKinds() {
		got := p.Kind()
		if got != want {
			t.Errorf("%T.Kind() = %q, want %q", p, got, want)
		}
		if seen[got] {
			t.Errorf("duplicate Kind %q", got)
		}
		seen[got] = true
	}
}

func TestEqualNil(t *testing.T) {
	if !problem.Equal(nil, nil) {
		t.Errorf("Equal(nil, nil) = false, want true")
	}
	if problem.Equal(problem.MissingFile{Path: "/a"}, nil) {
		t.Errorf("Equal(MissingFile{}, nil) = true, want false")
	}
}

func TestEqualSameTypeSameFields(t *testing.T) {
	a := problem.MissingFile{Path: "/usr/share/foo"}
	b := problem.MissingFile{Path: "/usr/share/foo"}
	if !problem.Equal(a, b) {
		t.Errorf("Equal(%#v, %#v) = false, want true", a, b)
	}
}

func TestEqualSameTypeDifferentFields(t *testing.T) {
	a := problem.MissingFile{Path: "/usr/share/foo"}
	b := problem.MissingFile{Path: "/usr/share/bar"}
	if problem.Equal(a, b) {
		t.Errorf("Equal(%#v, %#v) = true, want false", a, b)
	}
}

func TestEqualDifferentTypes(t *testing.T) {
	a := problem.MissingFile{Path: "/usr/share/foo"}
	b := problem.AptPackageUnknown{Package: "/usr/share/foo"}
	if problem.Equal(a, b) {
		t.Errorf("Equal across distinct types = true, want false")
	}
}

func TestVersionConstraintSatisfies(t *testing.T) {
	c := &problem.VersionConstraint{Operator: ">=", Version: "1.2.3-1"}
	ok, err := c.Satisfies("1.2.3-2")
	if err != nil {
		t.Fatalf("Satisfies: %v", err)
	}
	if !ok {
		t.Errorf("1.2.3-2 should satisfy >= 1.2.3-1")
	}

	ok, err = c.Satisfies("1.0.0-1")
	if err != nil {
		t.Fatalf("Satisfies: %v", err)
	}
	if ok {
		t.Errorf("1.0.0-1 should not satisfy >= 1.2.3-1")
	}

	if ok, err := (*problem.VersionConstraint)(nil).Satisfies("anything"); err != nil || !ok {
		t.Errorf("nil constraint should always be satisfied, got ok=%v err=%v", ok, err)
	}
}

func TestIsGlobal(t *testing.T) {
	if !(problem.NoSpaceOnDevice{}).IsGlobal() {
		t.Errorf("NoSpaceOnDevice.IsGlobal() = false, want true")
	}
	if (problem.MissingFile{Path: "/x"}).IsGlobal() {
		t.Errorf("MissingFile.IsGlobal() = true, want false")
	}
}
