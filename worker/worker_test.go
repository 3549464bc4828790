package worker_test

import (
	"strings"
	"testing"

	"github.com/quay/buildlog/apt"
	"github.com/quay/buildlog/problem"
	"github.com/quay/buildlog/section"
	"github.com/quay/buildlog/worker"
)

func sections(t *testing.T, log string) []section.Section {
	t.Helper()
	return section.ParseSections(strings.NewReader(log))
}

func TestWorkerFailureFromSectionsBuild(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|Build                                                                        |
+------------------------------------------------------------------------------+
gcc -c foo.c
make[1]: *** No rule to make target '/usr/share/blah/blah', needed by 'x'.  Stop.
+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Fail-Stage: build
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	if wf.Stage != "build" {
		t.Errorf("stage = %q, want build", wf.Stage)
	}
	want := problem.MissingFile{Path: "/usr/share/blah/blah"}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsAptGetUpdate(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|Update chroot                                                                |
+------------------------------------------------------------------------------+
Get:1 http://example/ InRelease
E: Failed to fetch http://example/Packages.xz  File has unexpected size (1 != 2).
+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Fail-Stage: apt-get-update
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	if wf.Stage != "apt-get-update" {
		t.Errorf("stage = %q, want apt-get-update", wf.Stage)
	}
	want := problem.AptFetchFailure{URL: "http://example/Packages.xz", Error: "File has unexpected size (1 != 2)."}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsArchCheck(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|Check architectures                                                          |
+------------------------------------------------------------------------------+
E: dsc: mypkg not in arch list or does not match any arch wildcards: amd64 -- skipping
+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Fail-Stage: arch-check
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	want := problem.ArchitectureNotInList{Arch: "mypkg", ArchList: "amd64"}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsCheckSpace(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|Cleanup                                                                      |
+------------------------------------------------------------------------------+
E: Disk space is probably not sufficient for building.
I: Source needs 102400 KiB, while 51200 KiB is free.
+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Fail-Stage: check-space
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	want := problem.InsufficientDiskSpace{Needed: 102400, Free: 51200}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsPreambleOnly(t *testing.T) {
	log := `dpkg-source: error: cannot read debian/control: No such file or directory
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	if wf.Stage != "unpack" {
		t.Errorf("stage = %q, want unpack", wf.Stage)
	}
	want := problem.MissingControlFile{Path: "debian/control"}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsGenericPreambleFallback(t *testing.T) {
	log := `Patch debian/patches/0001-fix.patch does not apply (enforce with -f)
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	want := problem.PatchApplicationFailed{Name: "0001-fix.patch"}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
	if wf.Phase == nil || wf.Phase.Name != "buildenv" {
		t.Errorf("phase = %#v, want buildenv", wf.Phase)
	}
}

func TestWorkerFailureFromSectionsInstallDeps(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|install dose3 build dependencies (aspcud-based resolver)                    |
+------------------------------------------------------------------------------+
output-version: 1.0
report:
- package: sbuild-build-depends-main-dummy
  status: broken
  reasons:
  - missing:
      pkg:
        unsat-dependency: "libfoo-dev (>= 1.0)"
+------------------------------------------------------------------------------+
|install build dependencies (apt-based resolver)                             |
+------------------------------------------------------------------------------+
Reading package lists...
E: Unable to locate package libfoo-dev
+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Fail-Stage: install-deps
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	if wf.Stage != "install-deps" {
		t.Errorf("stage = %q, want install-deps", wf.Stage)
	}
	want := problem.UnsatisfiedDependencies{Relations: apt.ParseRelation("libfoo-dev (>= 1.0)")}
	if !problem.Equal(wf.Problem, want) {
		t.Errorf("problem = %#v, want %#v", wf.Problem, want)
	}
}

func TestWorkerFailureFromSectionsNoFailStage(t *testing.T) {
	log := `+------------------------------------------------------------------------------+
|Summary                                                                      |
+------------------------------------------------------------------------------+
Build Architecture: amd64
`
	wf := worker.WorkerFailureFromSections(t.Context(), sections(t, log))
	if wf.Description != "build failed" {
		t.Errorf("description = %q, want %q", wf.Description, "build failed")
	}
}
