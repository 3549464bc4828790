package pattern

import (
	"strings"

	"github.com/quay/buildlog/problem"
)

// Primary is the ordered list of primary matchers the build-failure finder
// scans backward against. Order matters: a generic pattern that would
// subsume a more specific one is always placed after it.
var Primary = []Matcher{
	haskellMissingDeps,
	cmakeError,

	Single(`make\[[0-9]+\]: \*\*\* No rule to make target '(.*)', needed by '.*'\.  Stop\.`,
		func(m []string) problem.Problem { return fileNotFound(m[1]) }),
	Single(`[^:]+:[0-9]+: (.*): No such file or directory`,
		func(m []string) problem.Problem { return fileNotFound(m[1]) }),
	Single(`(?:/usr/bin/)?install: cannot create regular file '(.*)': No such file or directory`,
		func(m []string) problem.Problem { return nil }),
	Single(`python[0-9.]*: can't open file '(.*)': \[Errno 2\] No such file or directory`,
		func(m []string) problem.Problem { return fileNotFound(m[1]) }),
	Single(`OSError: No such file (.*)`,
		func(m []string) problem.Problem { return fileNotFound(m[1]) }),

	// Python.
	Single(`/usr/bin/python3: No module named (.*)`,
		func(m []string) problem.Problem {
			return problem.MissingPythonModule{Module: m[1], PyVersion: ptrInt(3)}
		}),
	Single(`ModuleNotFoundError: No module named '(.*)'`,
		func(m []string) problem.Problem {
			return problem.MissingPythonModule{Module: m[1], PyVersion: ptrInt(3)}
		}),
	Single(`E   ModuleNotFoundError: No module named '(.*)'`,
		func(m []string) problem.Problem {
			return problem.MissingPythonModule{Module: m[1], PyVersion: ptrInt(3)}
		}),
	Single(`ImportError: No module named (.*)`,
		func(m []string) problem.Problem {
			return problem.MissingPythonModule{Module: m[1], PyVersion: ptrInt(2)}
		}),
	Single(`E   ImportError: No module named (.*)`,
		func(m []string) problem.Problem {
			return problem.MissingPythonModule{Module: m[1], PyVersion: ptrInt(2)}
		}),
	Single(`django.core.exceptions.ImproperlyConfigured: Error loading .* module: No module named '(.*)'`,
		func(m []string) problem.Problem { return problem.MissingPythonModule{Module: m[1]} }),
	Single(`pkg_resources.DistributionNotFound: The '([^']+)' distribution was not found and is required by (.*)`,
		func(m []string) problem.Problem { return problem.MissingPythonDistribution{Name: m[1]} }),

	// Go.
	Single(`.*: cannot find package "(.*)" in any of:`,
		func(m []string) problem.Problem { return problem.MissingGoPackage{Package: m[1]} }),

	// C/C++.
	Single(`[^:]+:[0-9]+:[0-9]+: fatal error: (.+\.h|.+\.hpp): No such file or directory`,
		func(m []string) problem.Problem { return problem.MissingCHeader{Header: m[1]} }),
	Single(`[^:]+\.[ch]:[0-9]+:[0-9]+: fatal error: (.+): No such file or directory`,
		func(m []string) problem.Problem { return problem.MissingCHeader{Header: m[1]} }),
	Single(`/usr/bin/ld: cannot find -l(.*)`,
		func(m []string) problem.Problem { return problem.MissingLibrary{Name: m[1]} }),

	// Node / JS.
	Single(`\s*Error: Cannot find module '(.*)'`,
		func(m []string) problem.Problem { return problem.MissingNodeModule{Module: m[1]} }),
	Single(`>> Error: Cannot find module '(.*)'`,
		func(m []string) problem.Problem { return problem.MissingNodeModule{Module: m[1]} }),
	Single(`Error: pkg-config not found!`,
		func(m []string) problem.Problem { return problem.MissingCommand{Command: "pkg-config"} }),

	// Perl.
	Single(`.*Can't locate (.*)\.pm in @INC \(you may need to install the (.*) module\) \(@INC contains: (.*)\) at .+ line [0-9]+\.`,
		func(m []string) problem.Problem {
			return problem.MissingPerlModule{Filename: m[1] + ".pm", Module: m[2], Inc: splitFields(m[3])}
		}),
	Single(`.*Can't locate (.*) in @INC \(@INC contains: (.*)\) at .+ line [0-9]+\.`,
		func(m []string) problem.Problem {
			return problem.MissingPerlFile{Filename: m[1], Inc: splitFields(m[2])}
		}),
	Single(`Can't find author dependency (.*) at (.*) line [0-9]+\.`,
		func(m []string) problem.Problem { return problem.MissingPerlModule{Module: m[1]} }),
	Single(`Required plugin bundle ([^ ]+) isn't installed\.`,
		func(m []string) problem.Problem { return problem.MissingPerlModule{Module: m[1]} }),
	Single(`Required plugin ([^ ]+) isn't installed\.`,
		func(m []string) problem.Problem { return problem.MissingPerlModule{Module: m[1]} }),
	Single(`Could not open '(.*)': No such file or directory at /usr/share/perl/[0-9.]+/ExtUtils/MM_Unix\.pm line [0-9]+\.`,
		func(m []string) problem.Problem { return problem.MissingPerlFile{Filename: m[1]} }),
	Single(`Can't open perl script "(.*)": No such file or directory`,
		func(m []string) problem.Problem { return problem.MissingPerlFile{Filename: m[1]} }),

	// Ruby.
	Single(`Could not find gem '([^ ]+) \(([^)]+)\)', which is required by gem.*`,
		func(m []string) problem.Problem { return rubyMissingGem(m[1], m[2]) }),
	Single(`Could not find gem '([^ ']+)', which is required by gem.*`,
		func(m []string) problem.Problem { return problem.MissingRubyGem{Gem: m[1]} }),
	Single(`[^:]+:[0-9]+:in \x60to_specs': Could not find '(.*)' \(([^)]+)\) among [0-9]+ total gem\(s\) \(Gem::MissingSpecError\)`,
		func(m []string) problem.Problem { return rubyMissingGem(m[1], m[2]) }),
	Single(`[^:]+:[0-9]+:in \x60find_spec_for_exe': can't find gem (.*) \(([^)]+)\) with executable (.*) \(Gem::GemNotFoundException\)`,
		func(m []string) problem.Problem { return rubyMissingGem(m[1], m[2]) }),

	// pkg-config / autotools.
	Single(`configure: error: [a-z0-9_-]+-pkg-config (.*) couldn't be found`,
		func(m []string) problem.Problem { pkg, ver := splitVersionConstraint(m[1]); return problem.MissingPkgConfig{Module: pkg, MinVersion: ver} }),
	Single(`pkg-config cannot find (.*)`,
		func(m []string) problem.Problem { pkg, ver := splitVersionConstraint(m[1]); return problem.MissingPkgConfig{Module: pkg, MinVersion: ver} }),
	Single(`configure: error: Package requirements \(([^)]+)\) were not met:`,
		func(m []string) problem.Problem { pkg, ver := splitVersionConstraint(m[1]); return problem.MissingPkgConfig{Module: pkg, MinVersion: ver} }),

	// JDK / JVM.
	Single(`> Could not find (.*)\. Please check that (.*) contains a valid JDK installation\.`,
		func(m []string) problem.Problem { return problem.MissingJDKFile{JDKPath: m[2], Filename: m[1]} }),

	// Maven.
	Single(mavenErrorPrefix+`Failed to execute goal on project .*: Could not resolve dependencies for project .*: The following artifacts could not be resolved: (.*): Cannot access central \(https://repo\.maven\.apache\.org/maven2\) in offline mode and the artifact .* has not been downloaded from it before\..*`,
		func(m []string) problem.Problem { return maven(m[1]) }),
	Single(mavenErrorPrefix+`Failed to execute goal on project .*: Could not resolve dependencies for project .*: Cannot access central \(https://repo\.maven\.apache\.org/maven2\) in offline mode and the artifact (.*) has not been downloaded from it before\..*`,
		func(m []string) problem.Problem { return maven(m[1]) }),

	// Java / PHP.
	Single(`Caused by: java\.lang\.ClassNotFoundException: (.*)`,
		func(m []string) problem.Problem { return problem.MissingJavaClass{Name: m[1]} }),
	Single(`PHP Fatal error:  Uncaught Error: Class '(.*)' not found in (.*):[0-9]+`,
		func(m []string) problem.Problem { return problem.MissingPhpClass{Name: m[1]} }),

	// debhelper / dh.
	Single(`dh_missing: (?:warning: )?(.*) exists in debian/.* but is not installed to anywhere`,
		func(m []string) problem.Problem { return problem.DhMissingUninstalled{Path: m[1]} }),
	Single(`dh_link: link destination (.*) is a directory`,
		func(m []string) problem.Problem { return problem.DhLinkDestinationIsDirectory{Path: m[1]} }),
	Single(`dh: Unknown sequence --(.*) \(options should not come before the sequence\)`,
		func(m []string) problem.Problem { return problem.DhWithOrderIncorrect{} }),
	Single(`dh: The --until option is not supported any longer \(#932537\)\.`,
		func(m []string) problem.Problem { return problem.DhUntilUnsupported{} }),
	Single(`dh: Compatibility levels before [0-9]+ are no longer supported \(level [0-9]+ requested\)`,
		func(m []string) problem.Problem { return nil }),

	// ccache / misc tooling.
	Single(`ccache: error: (.*)`,
		func(m []string) problem.Problem { return problem.CcacheError{Message: m[1]} }),
	Single(`I/O error : Attempt to load network entity (.*)`,
		func(m []string) problem.Problem { return problem.MissingXmlEntity{URL: m[1]} }),

	// disk space.
	Single(`.*: .*: No space left on device`,
		func(m []string) problem.Problem { return problem.NoSpaceOnDevice{} }),
	Single(`No space left on device\.`,
		func(m []string) problem.Problem { return problem.NoSpaceOnDevice{} }),

	// dpkg-source (used both from the build section and the preamble).
	Single(`dpkg-source: error: cannot represent change to (.*): binary file contents changed`,
		func(m []string) problem.Problem { return problem.DpkgSourceUnrepresentableChanges{} }),
	Single(`dpkg-source: error: detected ([0-9]+) unwanted binary file.*`,
		func(m []string) problem.Problem { return problem.DpkgUnwantedBinaryFiles{} }),
	Single(`dpkg-source: error: aborting due to unexpected upstream changes, see /.*`,
		func(m []string) problem.Problem { return problem.DpkgSourceLocalChanges{} }),
	Single(`dpkg-source: error: (.*)`,
		func(m []string) problem.Problem { return problem.DpkgSourcePackFailed{Reason: m[1]} }),

	// Patches.
	Single(`Patch (.*) does not apply \(enforce with -f\)`,
		func(m []string) problem.Problem { return problem.PatchApplicationFailed{Name: m[1]} }),
	Single(`cannot find file to patch.*`,
		func(m []string) problem.Problem { return nil }),
}

const mavenErrorPrefix = `\[ERROR\] `

func rubyMissingGem(gem, constraints string) problem.Problem {
	var minimum string
	for _, grp := range strings.Split(constraints, ",") {
		grp = strings.TrimSpace(grp)
		parts := strings.SplitN(grp, " ", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case ">=":
			return problem.MissingRubyGem{Gem: gem, Version: parts[1]}
		case "~>":
			minimum = parts[1]
		}
	}
	return problem.MissingRubyGem{Gem: gem, Version: minimum}
}

func maven(artifacts string) problem.Problem {
	parts := strings.Split(artifacts, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return problem.MissingMavenArtifacts{Artifacts: parts}
}
