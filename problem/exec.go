package problem

import "fmt"

// MissingCommand is a bare executable name (no path separators) that the
// build tried to invoke but couldn't find on PATH.
type MissingCommand struct {
	Command string
}

func (p MissingCommand) Kind() string   { return "command-missing" }
func (p MissingCommand) IsGlobal() bool { return false }
func (p MissingCommand) String() string { return fmt.Sprintf("Missing command: %s", p.Command) }

// MissingConfigureScript is the specific, common case of MissingCommand
// where the missing executable was "./configure".
type MissingConfigureScript struct{}

func (p MissingConfigureScript) Kind() string   { return "missing-configure" }
func (p MissingConfigureScript) IsGlobal() bool { return false }
func (p MissingConfigureScript) String() string { return "Missing configure script" }

// MissingJavaScriptRuntime reports that no JS runtime (node, etc.) could be
// found.
type MissingJavaScriptRuntime struct{}

func (p MissingJavaScriptRuntime) Kind() string   { return "javascript-runtime-missing" }
func (p MissingJavaScriptRuntime) IsGlobal() bool { return false }
func (p MissingJavaScriptRuntime) String() string { return "Missing JavaScript Runtime" }

// MissingJDKFile reports that a specific file expected inside a JDK
// installation wasn't found.
type MissingJDKFile struct {
	JDKPath  string
	Filename string
}

func (p MissingJDKFile) Kind() string   { return "missing-jdk-file" }
func (p MissingJDKFile) IsGlobal() bool { return false }
func (p MissingJDKFile) String() string {
	return fmt.Sprintf("Missing JDK file %s at %s", p.Filename, p.JDKPath)
}

// MissingJVM reports that no JVM could be found at all.
type MissingJVM struct{}

func (p MissingJVM) Kind() string   { return "missing-jvm" }
func (p MissingJVM) IsGlobal() bool { return false }
func (p MissingJVM) String() string { return "Missing JVM" }

// JvmInvalid reports that a JVM was found but isn't usable (e.g. it's a JRE
// when a JDK is needed).
type JvmInvalid struct {
	Path   string
	Reason string
}

func (p JvmInvalid) Kind() string   { return "invalid-jvm" }
func (p JvmInvalid) IsGlobal() bool { return false }
func (p JvmInvalid) String() string { return fmt.Sprintf("Invalid JVM at %s: %s", p.Path, p.Reason) }

// MissingFortranCompiler reports that no Fortran compiler could be found.
type MissingFortranCompiler struct{}

func (p MissingFortranCompiler) Kind() string   { return "missing-fortran-compiler" }
func (p MissingFortranCompiler) IsGlobal() bool { return false }
func (p MissingFortranCompiler) String() string { return "No Fortran compiler found" }

// MissingCSharpCompiler reports that no C# compiler could be found.
type MissingCSharpCompiler struct{}

func (p MissingCSharpCompiler) Kind() string   { return "missing-c#-compiler" }
func (p MissingCSharpCompiler) IsGlobal() bool { return false }
func (p MissingCSharpCompiler) String() string { return "No C# compiler found" }
