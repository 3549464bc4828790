package buildfail_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/buildfail"
	"github.com/quay/buildlog/problem"
)

func TestFindMissingFile(t *testing.T) {
	lines := []string{
		`gcc -c -o foo.o foo.c`,
		`make[1]: *** No rule to make target '/usr/share/blah/blah', needed by 'dan-nno.autopgen.bin'.  Stop.`,
		`make[1]: Leaving directory '/build'`,
	}
	m := buildfail.Find(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	want := problem.MissingFile{Path: "/usr/share/blah/blah"}
	if diff := cmp.Diff(want, m.Problem); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestFindStripsUselessTail(t *testing.T) {
	lines := []string{
		`make[1]: *** No rule to make target '/usr/share/blah/blah', needed by 'dan-nno.autopgen.bin'.  Stop.`,
		`--------------------------------------------------------------------------------`,
		`Build finished at 20230101-0101`,
	}
	m := buildfail.Find(lines)
	if !m.Found() {
		t.Fatalf("expected a match")
	}
	if m.Offset != 1 {
		t.Errorf("offset = %d, want 1", m.Offset)
	}
}

func TestFindNoMatch(t *testing.T) {
	lines := []string{"this is a perfectly ordinary line", "so is this one"}
	m := buildfail.Find(lines)
	if m.Found() {
		t.Errorf("expected no match, got %#v", m)
	}
}
