package apt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/problem"
)

func TestFindCUDFOutput(t *testing.T) {
	lines := []string{
		`some preceding noise`,
		`output-version: 1.0`,
		`report:`,
		`- package: sbuild-build-depends-main-dummy`,
		`  status: broken`,
		`  reasons:`,
		`  - missing:`,
		`      pkg:`,
		`        unsat-dependency: "libfoo-dev (>= 1.0)"`,
	}
	report, ok := findCUDFOutput(lines)
	if !ok {
		t.Fatalf("expected a CUDF document")
	}
	if len(report) != 1 || report[0].Package != "sbuild-build-depends-main-dummy" || report[0].Status != "broken" {
		t.Fatalf("unexpected report: %#v", report)
	}
}

func TestErrorFromDose3ReportMissing(t *testing.T) {
	report := []dose3Report{
		{
			Package: "sbuild-build-depends-main-dummy",
			Status:  "broken",
			Reasons: []dose3ReasonEntry{
				{Missing: &dose3PkgRef{Pkg: &dose3PkgDetail{UnsatDependency: "libfoo-dev (>= 1.0)"}}},
			},
		},
	}
	p, ok := errorFromDose3Report(report)
	if !ok {
		t.Fatalf("expected a Problem")
	}
	want := problem.UnsatisfiedDependencies{Relations: ParseRelation("libfoo-dev (>= 1.0)")}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorFromDose3ReportConflict(t *testing.T) {
	report := []dose3Report{
		{
			Package: "sbuild-build-depends-main-dummy",
			Status:  "broken",
			Reasons: []dose3ReasonEntry{
				{Conflict: &dose3PkgRef{Pkg1: &dose3PkgDetail{UnsatConflict: "libbar"}}},
			},
		},
	}
	p, ok := errorFromDose3Report(report)
	if !ok {
		t.Fatalf("expected a Problem")
	}
	want := problem.UnsatisfiedConflicts{Relations: ParseRelation("libbar")}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorFromDose3ReportIgnoresOtherPackages(t *testing.T) {
	report := []dose3Report{
		{Package: "some-other-package", Status: "broken"},
	}
	if _, ok := errorFromDose3Report(report); ok {
		t.Errorf("expected no Problem for a non-dummy package")
	}
}

func TestErrorFromDose3ReportIgnoresSatisfiedStatus(t *testing.T) {
	report := []dose3Report{
		{Package: "sbuild-build-depends-main-dummy", Status: "ok"},
	}
	if _, ok := errorFromDose3Report(report); ok {
		t.Errorf("expected no Problem for a non-broken status")
	}
}
