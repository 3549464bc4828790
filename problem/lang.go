package problem

import (
	"fmt"
	"strings"
)

// MissingPythonModule reports an unsatisfied Python import.
type MissingPythonModule struct {
	Module     string
	PyVersion  *int // 2 or 3, if known from context
	MinVersion string
}

func (p MissingPythonModule) Kind() string   { return "missing-python-module" }
func (p MissingPythonModule) IsGlobal() bool { return false }
func (p MissingPythonModule) String() string {
	var b strings.Builder
	b.WriteString("Missing Python module: ")
	b.WriteString(p.Module)
	if p.MinVersion != "" {
		fmt.Fprintf(&b, " (>= %s)", p.MinVersion)
	}
	if p.PyVersion != nil {
		fmt.Fprintf(&b, " (python%d)", *p.PyVersion)
	}
	return b.String()
}

// MissingPythonDistribution reports an unsatisfied setuptools/pip
// distribution requirement, as distinct from a bare import.
type MissingPythonDistribution struct {
	Name       string
	PyVersion  *int
	MinVersion string
}

func (p MissingPythonDistribution) Kind() string   { return "missing-python-distribution" }
func (p MissingPythonDistribution) IsGlobal() bool { return false }
func (p MissingPythonDistribution) String() string {
	var b strings.Builder
	b.WriteString("Missing Python distribution: ")
	b.WriteString(p.Name)
	if p.MinVersion != "" {
		fmt.Fprintf(&b, " (>= %s)", p.MinVersion)
	}
	if p.PyVersion != nil {
		fmt.Fprintf(&b, " (python%d)", *p.PyVersion)
	}
	return b.String()
}

// MissingPerlModule reports an unsatisfied `use`/`require` in Perl,
// optionally with the filename form of the module (Foo/Bar.pm) and the
// @INC search path the build reported.
type MissingPerlModule struct {
	Filename string // e.g. "String/Interpolate.pm"; may be empty
	Module   string // e.g. "String::Interpolate"
	Inc      []string
}

func (p MissingPerlModule) Kind() string   { return "missing-perl-module" }
func (p MissingPerlModule) IsGlobal() bool { return false }
func (p MissingPerlModule) String() string {
	return fmt.Sprintf("Missing Perl module: %s (filename: %q)", p.Module, p.Filename)
}

// MissingPerlFile reports a Perl `require` of a bare file that couldn't be
// located in @INC, as opposed to a named module.
type MissingPerlFile struct {
	Filename string
	Inc      []string
}

func (p MissingPerlFile) Kind() string   { return "missing-perl-file" }
func (p MissingPerlFile) IsGlobal() bool { return false }
func (p MissingPerlFile) String() string {
	return fmt.Sprintf("Missing Perl file: %s (inc: %v)", p.Filename, p.Inc)
}

// MissingRubyGem reports an unsatisfied gem dependency, with an optional
// minimum version pulled from a ">=" or "~>" constraint.
type MissingRubyGem struct {
	Gem     string
	Version string
}

func (p MissingRubyGem) Kind() string   { return "missing-ruby-gem" }
func (p MissingRubyGem) IsGlobal() bool { return false }
func (p MissingRubyGem) String() string {
	if p.Version != "" {
		return fmt.Sprintf("Missing Ruby gem: %s (>= %s)", p.Gem, p.Version)
	}
	return fmt.Sprintf("Missing Ruby gem: %s", p.Gem)
}

// MissingRubyFile reports a Ruby `require` of a bare file that couldn't be
// found on the load path.
type MissingRubyFile struct {
	Filename string
}

func (p MissingRubyFile) Kind() string   { return "missing-ruby-file" }
func (p MissingRubyFile) IsGlobal() bool { return false }
func (p MissingRubyFile) String() string {
	return fmt.Sprintf("Missing Ruby file: %s", p.Filename)
}

// MissingGoPackage reports a Go import that couldn't be resolved.
type MissingGoPackage struct {
	Package string
}

func (p MissingGoPackage) Kind() string   { return "missing-go-package" }
func (p MissingGoPackage) IsGlobal() bool { return false }
func (p MissingGoPackage) String() string {
	return fmt.Sprintf("Missing Go package: %s", p.Package)
}

// MissingCHeader reports a fatal "No such file or directory" from the C/C++
// preprocessor for a header file.
type MissingCHeader struct {
	Header string
}

func (p MissingCHeader) Kind() string   { return "missing-c-header" }
func (p MissingCHeader) IsGlobal() bool { return false }
func (p MissingCHeader) String() string {
	return fmt.Sprintf("Missing C Header: %s", p.Header)
}

// MissingNodeModule reports an unresolved `require`/`import` in Node.js.
type MissingNodeModule struct {
	Module string
}

func (p MissingNodeModule) Kind() string   { return "missing-node-module" }
func (p MissingNodeModule) IsGlobal() bool { return false }
func (p MissingNodeModule) String() string {
	return fmt.Sprintf("Missing Node module: %s", p.Module)
}

// MissingRPackage reports an unsatisfied R library() dependency.
type MissingRPackage struct {
	Name       string
	MinVersion string
}

func (p MissingRPackage) Kind() string   { return "missing-r-package" }
func (p MissingRPackage) IsGlobal() bool { return false }
func (p MissingRPackage) String() string {
	if p.MinVersion != "" {
		return fmt.Sprintf("Missing R package: %s (>= %s)", p.Name, p.MinVersion)
	}
	return fmt.Sprintf("Missing R package: %s", p.Name)
}

// MissingValaPackage reports an unresolved Vala *.vapi package.
type MissingValaPackage struct {
	Package string
}

func (p MissingValaPackage) Kind() string   { return "missing-vala-package" }
func (p MissingValaPackage) IsGlobal() bool { return false }
func (p MissingValaPackage) String() string {
	return fmt.Sprintf("Missing Vala package: %s", p.Package)
}

// HaskellDependency is one entry of the (name, constraint) pairs
// cabal/hlibrary.setup reports as missing or private.
type HaskellDependency struct {
	Name       string
	Constraint string
}

// MissingHaskellDependencies reports the full set of unsatisfied Haskell
// package dependencies from a single "Encountered missing or private
// dependencies:" block.
type MissingHaskellDependencies struct {
	Deps []HaskellDependency
}

func (p MissingHaskellDependencies) Kind() string   { return "missing-haskell-dependencies" }
func (p MissingHaskellDependencies) IsGlobal() bool { return false }
func (p MissingHaskellDependencies) String() string {
	names := make([]string, 0, len(p.Deps))
	for _, d := range p.Deps {
		names = append(names, d.Name)
	}
	return fmt.Sprintf("Missing Haskell dependencies: %s", strings.Join(names, ", "))
}

// MissingCargoCrate reports an unresolved Rust crate dependency.
type MissingCargoCrate struct {
	Crate       string
	Requirement string
}

func (p MissingCargoCrate) Kind() string   { return "missing-cargo-crate" }
func (p MissingCargoCrate) IsGlobal() bool { return false }
func (p MissingCargoCrate) String() string {
	if p.Requirement != "" {
		return fmt.Sprintf("Missing Cargo crate: %s (%s)", p.Crate, p.Requirement)
	}
	return fmt.Sprintf("Missing Cargo crate: %s", p.Crate)
}

// MissingJavaClass reports an unresolved Java class reference.
type MissingJavaClass struct {
	Name string
}

func (p MissingJavaClass) Kind() string   { return "missing-java-class" }
func (p MissingJavaClass) IsGlobal() bool { return false }
func (p MissingJavaClass) String() string {
	return fmt.Sprintf("Missing Java class: %s", p.Name)
}

// MissingMavenArtifacts reports a list of Maven coordinates (group:artifact
// or group:artifact:version) the build couldn't resolve.
type MissingMavenArtifacts struct {
	Artifacts []string
}

func (p MissingMavenArtifacts) Kind() string   { return "missing-maven-artifacts" }
func (p MissingMavenArtifacts) IsGlobal() bool { return false }
func (p MissingMavenArtifacts) String() string {
	return fmt.Sprintf("Missing Maven artifacts: %s", strings.Join(p.Artifacts, ", "))
}

// MissingPhpClass reports an unresolved PHP class reference.
type MissingPhpClass struct {
	Name string
}

func (p MissingPhpClass) Kind() string   { return "missing-php-class" }
func (p MissingPhpClass) IsGlobal() bool { return false }
func (p MissingPhpClass) String() string {
	return fmt.Sprintf("Missing PHP class: %s", p.Name)
}
