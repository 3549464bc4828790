package autopkgtest_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/autopkgtest"
	"github.com/quay/buildlog/problem"
)

func TestFindBadpkgWithBlame(t *testing.T) {
	lines := strings.Split(
		`autopkgtest [12:00:00]: @@@@@@@@@@@@@@@@@@@@ summary
python-bcolz         FAIL badpkg
badpkg: Test dependencies are unsatisfiable. A common reason is that your testbed is out of date
blame: arg:/tmp/bcolz-doc_1.2.1-1_all.deb deb:bcolz-doc dsc:/tmp/bcolz_1.2.1-1.dsc`, "\n")

	res := autopkgtest.Find(lines)
	if !res.Found() {
		t.Fatalf("expected a match")
	}
	if res.TestName != "python-bcolz" {
		t.Errorf("test name = %q, want python-bcolz", res.TestName)
	}
	if !strings.HasPrefix(res.Description, "Test python-bcolz failed: Test dependencies are unsatisfiable.") {
		t.Errorf("description = %q, want prefix %q", res.Description, "Test python-bcolz failed: Test dependencies are unsatisfiable.")
	}
	want := problem.AutopkgtestDepsUnsatisfiable{Args: []problem.BlameEntry{
		{Kind: "arg", Arg: "/tmp/bcolz-doc_1.2.1-1_all.deb"},
		{Kind: "deb", Arg: "bcolz-doc"},
		{Kind: "dsc", Arg: "/tmp/bcolz_1.2.1-1.dsc"},
	}}
	if diff := cmp.Diff(want, res.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
	if res.Offset != 2 {
		t.Errorf("offset = %d, want 2", res.Offset)
	}
}

func TestFindTimedOut(t *testing.T) {
	lines := strings.Split(
		`autopkgtest [12:00:00]: @@@@@@@@@@@@@@@@@@@@ summary
mytest               FAIL timed out`, "\n")

	res := autopkgtest.Find(lines)
	if !res.Found() {
		t.Fatalf("expected a match")
	}
	if _, ok := res.Problem.(problem.AutopkgtestTimedOut); !ok {
		t.Errorf("problem = %#v, want AutopkgtestTimedOut", res.Problem)
	}
	if res.TestName != "mytest" {
		t.Errorf("test name = %q, want mytest", res.TestName)
	}
}

func TestFindAuxverbExitCode255RecursesIntoBuildfail(t *testing.T) {
	lines := strings.Split(
		`autopkgtest [12:00:00]: test mytest: [-----------------------
gcc -c foo.c
make[1]: *** No rule to make target '/usr/share/blah/blah', needed by 'x'.  Stop.
autopkgtest [12:00:01]: ERROR: testbed failure: testbed auxverb failed with exit code 255`, "\n")

	res := autopkgtest.Find(lines)
	if !res.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.MissingFile{Path: "/usr/share/blah/blah"}
	if diff := cmp.Diff(want, res.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
	if res.Offset != 3 {
		t.Errorf("offset = %d, want 3", res.Offset)
	}
}

func TestFindDefaultFallbackRecursesIntoAptFailure(t *testing.T) {
	lines := strings.Split(
		`autopkgtest [12:00:00]: test mytest: [-----------------------
Get:1 http://example/ InRelease
E: Failed to fetch http://example/Packages.xz  File has unexpected size (1 != 2).
autopkgtest [12:00:01]: ERROR: something else went wrong`, "\n")

	res := autopkgtest.Find(lines)
	if !res.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.AptFetchFailure{URL: "http://example/Packages.xz", Error: "File has unexpected size (1 != 2)."}
	if diff := cmp.Diff(want, res.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
	if res.Offset != 3 {
		t.Errorf("offset = %d, want 3", res.Offset)
	}
}

func TestFindTestbedSetupFailureChrootNotFound(t *testing.T) {
	lines := []string{
		`[/usr/share/autopkgtest/setup-commands/setup-testbed] failed (exit status 1, stderr 'E: mychroot: Chroot not found\n')`,
	}
	res := autopkgtest.FindTestbedSetupFailure(lines)
	if !res.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.ChrootNotFound{Name: "mychroot"}
	if diff := cmp.Diff(want, res.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}
