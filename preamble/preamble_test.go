package preamble_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/preamble"
	"github.com/quay/buildlog/problem"
)

func TestFindDpkgSourceLocalChanges(t *testing.T) {
	lines := []string{
		`dpkg-source: info: local changes detected, the modified files are:`,
		` foo/bar.c`,
		` foo/baz.c`,
		`dpkg-source: error: aborting due to unexpected upstream changes, see /tmp/foo.diff`,
	}
	m := preamble.Find(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.DpkgSourceLocalChanges{Files: []string{"foo/bar.c", "foo/baz.c"}}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestFindMissingControlFile(t *testing.T) {
	lines := []string{
		`dpkg-source: error: cannot read debian/control: No such file or directory`,
	}
	m := preamble.Find(lines)
	want := problem.MissingControlFile{Path: "debian/control"}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestFindGenericFallsBackToVague(t *testing.T) {
	lines := []string{
		`dpkg-source: error: some unusual condition`,
	}
	m := preamble.Find(lines)
	want := problem.DpkgSourcePackFailed{Reason: "some unusual condition"}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestFindBrzError(t *testing.T) {
	lines := []string{
		`brz: ERROR: Not a branch: "/build/foo/".`,
	}
	m := preamble.Find(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	if m.Problem != nil {
		t.Errorf("problem = %#v, want nil", m.Problem)
	}
}
