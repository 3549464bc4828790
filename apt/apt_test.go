package apt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/apt"
	"github.com/quay/buildlog/problem"
)

func TestFindFailureFetchFailure(t *testing.T) {
	lines := []string{
		`Get:1 http://janitor.debian.net/blah InRelease`,
		`E: Failed to fetch http://janitor.debian.net/blah/Packages.xz  File has unexpected size (3385796 != 3385720). Mirror sync in progress? [IP]`,
	}
	m := apt.FindFailure(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.AptFetchFailure{
		URL:   "http://janitor.debian.net/blah/Packages.xz",
		Error: "File has unexpected size (3385796 != 3385720). Mirror sync in progress? [IP]",
	}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
	if m.Offset != 2 {
		t.Errorf("offset = %d, want 2", m.Offset)
	}
}

func TestFindFailureUnableToLocate(t *testing.T) {
	lines := []string{
		`Reading package lists...`,
		`Building dependency tree...`,
		`E: Unable to locate package libfoo-dev`,
	}
	m := apt.FindFailure(lines)
	want := problem.AptPackageUnknown{Package: "libfoo-dev"}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFailureBrokenPackages(t *testing.T) {
	lines := []string{
		`Some packages could not be installed. This may mean that you have`,
		`requested an impossible situation or if you are using the unstable`,
		`distribution that some required packages have not yet been created`,
		`E: Broken packages`,
	}
	m := apt.FindFailure(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	if _, ok := m.Problem.(problem.AptBrokenPackages); !ok {
		t.Errorf("problem = %#v, want AptBrokenPackages", m.Problem)
	}
}

func TestFindFailureNoMatchFallsBackEmpty(t *testing.T) {
	lines := []string{"ordinary output", "nothing to see here"}
	m := apt.FindFailure(lines)
	if m.Found() {
		t.Errorf("expected no match, got %#v", m)
	}
}
