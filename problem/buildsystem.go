package problem

import (
	"fmt"
	"strings"
)

// MissingPkgConfig reports an unsatisfied pkg-config module requirement.
type MissingPkgConfig struct {
	Module     string
	MinVersion string
}

func (p MissingPkgConfig) Kind() string   { return "missing-pkg-config-package" }
func (p MissingPkgConfig) IsGlobal() bool { return false }
func (p MissingPkgConfig) String() string {
	if p.MinVersion != "" {
		return fmt.Sprintf("Missing pkg-config module: %s (>= %s)", p.Module, p.MinVersion)
	}
	return fmt.Sprintf("Missing pkg-config module: %s", p.Module)
}

// MissingAutoconfMacro reports an autoconf macro (e.g. AM_PATH_GTK) that
// wasn't defined, usually because an -dev package providing the .m4 file
// isn't installed.
type MissingAutoconfMacro struct {
	Macro string
}

func (p MissingAutoconfMacro) Kind() string   { return "missing-autoconf-macro" }
func (p MissingAutoconfMacro) IsGlobal() bool { return false }
func (p MissingAutoconfMacro) String() string {
	return fmt.Sprintf("Missing autoconf macro: %s", p.Macro)
}

// MissingAutomakeInput reports that automake couldn't find a Makefile.am
// counterpart file.
type MissingAutomakeInput struct {
	Path string
}

func (p MissingAutomakeInput) Kind() string   { return "missing-automake-input" }
func (p MissingAutomakeInput) IsGlobal() bool { return false }
func (p MissingAutomakeInput) String() string {
	return fmt.Sprintf("Missing automake input: %s", p.Path)
}

// MissingConfigStatusInput reports that config.status couldn't find a
// template (.in) file it was generated to expect.
type MissingConfigStatusInput struct {
	Path string
}

func (p MissingConfigStatusInput) Kind() string   { return "missing-config.status-input" }
func (p MissingConfigStatusInput) IsGlobal() bool { return false }
func (p MissingConfigStatusInput) String() string {
	return fmt.Sprintf("Missing config.status input: %s", p.Path)
}

// CMakeFilesMissing reports that none of a set of candidate *Config.cmake
// filenames could be found for a requested package.
type CMakeFilesMissing struct {
	Filenames []string
}

func (p CMakeFilesMissing) Kind() string   { return "cmake-files-missing" }
func (p CMakeFilesMissing) IsGlobal() bool { return false }
func (p CMakeFilesMissing) String() string {
	return fmt.Sprintf("Missing CMake files: %s", strings.Join(p.Filenames, ", "))
}

// GnomeCommonMissing reports that the gnome-common package/tooling isn't
// present.
type GnomeCommonMissing struct{}

func (p GnomeCommonMissing) Kind() string   { return "missing-gnome-common" }
func (p GnomeCommonMissing) IsGlobal() bool { return false }
func (p GnomeCommonMissing) String() string { return "gnome-common not installed" }

// MissingGnomeCommonDependency reports a specific gnome-common-invoked
// dependency (e.g. gnome-doc-utils) that's missing, with its minimum
// version.
type MissingGnomeCommonDependency struct {
	Package    string
	MinVersion string
}

func (p MissingGnomeCommonDependency) Kind() string   { return "missing-gnome-common-dependency" }
func (p MissingGnomeCommonDependency) IsGlobal() bool { return false }
func (p MissingGnomeCommonDependency) String() string {
	return fmt.Sprintf("Missing gnome-common dependency: %s (>= %s)", p.Package, p.MinVersion)
}

// MissingXfceDependency reports a missing xfce4 build dependency.
type MissingXfceDependency struct {
	Package string
}

func (p MissingXfceDependency) Kind() string   { return "missing-xfce-dependency" }
func (p MissingXfceDependency) IsGlobal() bool { return false }
func (p MissingXfceDependency) String() string {
	return fmt.Sprintf("Missing XFCE build dependency: %s", p.Package)
}
