package apt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/apt"
	"github.com/quay/buildlog/problem"
)

func TestParseRelationMultiAlternativeVersioned(t *testing.T) {
	got := apt.ParseRelation(`libfoo-dev (>= 1.2.3) | libfoo1-dev (<< 2~), libbar-dev:any [amd64 arm64]`)
	want := problem.Relation{
		problem.Group{
			problem.Atom{Name: "libfoo-dev", Version: &problem.VersionConstraint{Operator: ">=", Version: "1.2.3"}},
			problem.Atom{Name: "libfoo1-dev", Version: &problem.VersionConstraint{Operator: "<<", Version: "2~"}},
		},
		problem.Group{
			problem.Atom{Name: "libbar-dev", ArchQual: "any", Arch: []string{"amd64", "arm64"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("relation mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRelationEmpty(t *testing.T) {
	if got := apt.ParseRelation("   "); got != nil {
		t.Errorf("ParseRelation(whitespace) = %#v, want nil", got)
	}
}

func TestParseRelationBuildProfileRestriction(t *testing.T) {
	got := apt.ParseRelation(`libbaz-dev <!nocheck>`)
	want := problem.Relation{
		problem.Group{
			problem.Atom{Name: "libbaz-dev", Restrictions: [][]string{{"!nocheck"}}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("relation mismatch (-want +got):\n%s", diff)
	}
}
