package pattern_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/buildlog/pattern"
	"github.com/quay/buildlog/problem"
)

func matchLast(t *testing.T, lines []string) problem.Problem {
	t.Helper()
	_, p, ok := pattern.MatchAny(pattern.Primary, lines, len(lines)-1)
	if !ok {
		t.Fatalf("no primary matcher fired for %q", lines[len(lines)-1])
	}
	return p
}

func TestMakeMissingRule(t *testing.T) {
	lines := []string{
		`make[1]: *** No rule to make target '/usr/share/blah/blah', needed by 'dan-nno.autopgen.bin'.  Stop.`,
	}
	got := matchLast(t, lines)
	want := problem.MissingFile{Path: "/usr/share/blah/blah"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestPerlModuleMissing(t *testing.T) {
	lines := []string{
		`Can't locate String/Interpolate.pm in @INC (you may need to install the String::Interpolate module) (@INC contains: /etc/perl /usr/local/lib/x86_64-linux-gnu/perl/5.36 /usr/share/perl5 /usr/lib/x86_64-linux-gnu/perl-base) at ../bin/ledger2beancount line 23.`,
	}
	got := matchLast(t, lines)
	want := problem.MissingPerlModule{
		Filename: "String/Interpolate.pm",
		Module:   "String::Interpolate",
		Inc: []string{
			"/etc/perl",
			"/usr/local/lib/x86_64-linux-gnu/perl/5.36",
			"/usr/share/perl5",
			"/usr/lib/x86_64-linux-gnu/perl-base",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestCMakeMissingConfigFiles(t *testing.T) {
	lines := []string{
		`CMake Error at foo/CMakeLists.txt:10 (find_package):`,
		`  Could not find a package configuration file provided by "sensor_msgs" with any of the following names:`,
		``,
		`    sensor_msgsConfig.cmake`,
		`    sensor_msgs-config.cmake`,
		``,
		`  Add the installation prefix of "sensor_msgs" to CMAKE_PREFIX_PATH`,
	}
	_, p, ok := pattern.MatchAny(pattern.Primary, lines, 0)
	if !ok {
		t.Fatalf("no primary matcher fired for CMake error header")
	}
	want := problem.CMakeFilesMissing{Filenames: []string{"sensor_msgsConfig.cmake", "sensor_msgs-config.cmake"}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingRubyGemWithVersion(t *testing.T) {
	lines := []string{
		`Could not find gem 'childprocess (~> 0.5)', which is required by gem 'selenium-webdriver', in any of the sources.`,
	}
	got := matchLast(t, lines)
	want := problem.MissingRubyGem{Gem: "childprocess", Version: "0.5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("problem mismatch (-want +got):\n%s", diff)
	}
}
