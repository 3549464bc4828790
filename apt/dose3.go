package apt

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quay/buildlog/problem"
)

// dose3Report is the small strict subset of dose3's aspcud-resolver YAML
// report this module consumes.
type dose3Report struct {
	Package string            `yaml:"package"`
	Status  string            `yaml:"status"`
	Reasons []dose3ReasonEntry `yaml:"reasons"`
}

type dose3ReasonEntry struct {
	Missing  *dose3PkgRef `yaml:"missing"`
	Conflict *dose3PkgRef `yaml:"conflict"`
}

type dose3PkgRef struct {
	Pkg  *dose3PkgDetail `yaml:"pkg"`
	Pkg1 *dose3PkgDetail `yaml:"pkg1"`
}

type dose3PkgDetail struct {
	UnsatDependency string `yaml:"unsat-dependency"`
	UnsatConflict   string `yaml:"unsat-conflict"`
}

// findCUDFOutput extracts the "output-version: ..." document embedded in a
// dose3 section: it starts at the last "output-version: " line and runs
// until the next blank line.
func findCUDFOutput(lines []string) ([]dose3Report, bool) {
	start := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "output-version: ") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}
	var doc []string
	for i := start; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		doc = append(doc, lines[i])
	}

	var parsed struct {
		Report []dose3Report `yaml:"report"`
	}
	if err := yaml.Unmarshal([]byte(strings.Join(doc, "\n")), &parsed); err != nil {
		return nil, false
	}
	return parsed.Report, true
}

// errorFromDose3Report implements §4.8's dose3 analyzer: only the package
// named "sbuild-build-depends-main-dummy" is inspected, and only if its
// status is "broken".
func errorFromDose3Report(report []dose3Report) (problem.Problem, bool) {
	if len(report) != 1 || report[0].Package != "sbuild-build-depends-main-dummy" {
		return nil, false
	}
	if report[0].Status != "broken" {
		return nil, false
	}

	var missing, conflict problem.Relation
	for _, reason := range report[0].Reasons {
		if reason.Missing != nil && reason.Missing.Pkg != nil {
			missing = append(missing, ParseRelation(reason.Missing.Pkg.UnsatDependency)...)
		}
		if reason.Conflict != nil && reason.Conflict.Pkg1 != nil {
			conflict = append(conflict, ParseRelation(reason.Conflict.Pkg1.UnsatConflict)...)
		}
	}
	if len(missing) > 0 {
		return problem.UnsatisfiedDependencies{Relations: missing}, true
	}
	if len(conflict) > 0 {
		return problem.UnsatisfiedConflicts{Relations: conflict}, true
	}
	return nil, false
}
