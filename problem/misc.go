package problem

import "fmt"

// CcacheError reports a ccache wrapper failure distinct from the
// underlying compiler failure.
type CcacheError struct {
	Message string
}

func (p CcacheError) Kind() string   { return "ccache-error" }
func (p CcacheError) IsGlobal() bool { return false }
func (p CcacheError) String() string { return fmt.Sprintf("ccache error: %s", p.Message) }

// ImageMagickDelegateMissing reports that ImageMagick couldn't find an
// external delegate binary (e.g. "gs" for postscript) it needed.
type ImageMagickDelegateMissing struct {
	Delegate string
}

func (p ImageMagickDelegateMissing) Kind() string   { return "imagemagick-delegate-missing" }
func (p ImageMagickDelegateMissing) IsGlobal() bool { return false }
func (p ImageMagickDelegateMissing) String() string {
	return fmt.Sprintf("Missing ImageMagick delegate: %s", p.Delegate)
}

// MissingXmlEntity reports that an XML document referenced an external
// entity (typically a DTD) that couldn't be fetched.
type MissingXmlEntity struct {
	URL string
}

func (p MissingXmlEntity) Kind() string   { return "missing-xml-entity" }
func (p MissingXmlEntity) IsGlobal() bool { return false }
func (p MissingXmlEntity) String() string { return fmt.Sprintf("Missing XML entity: %s", p.URL) }

// MissingLibrary reports a missing shared library, typically from a
// linker "cannot find -lfoo" message.
type MissingLibrary struct {
	Name string
}

func (p MissingLibrary) Kind() string   { return "missing-library" }
func (p MissingLibrary) IsGlobal() bool { return false }
func (p MissingLibrary) String() string { return fmt.Sprintf("Missing library: %s", p.Name) }

// MissingSprocketsFile reports a Rails asset pipeline file Sprockets
// couldn't locate.
type MissingSprocketsFile struct {
	Name        string
	ContentType string
}

func (p MissingSprocketsFile) Kind() string   { return "missing-sprockets-file" }
func (p MissingSprocketsFile) IsGlobal() bool { return false }
func (p MissingSprocketsFile) String() string {
	return fmt.Sprintf("Missing sprockets file: %s (type: %s)", p.Name, p.ContentType)
}

// FailedGoTest reports a named Go test that failed during the build (as
// opposed to the build itself failing to compile).
type FailedGoTest struct {
	Name string
}

func (p FailedGoTest) Kind() string   { return "failed-go-test" }
func (p FailedGoTest) IsGlobal() bool { return false }
func (p FailedGoTest) String() string { return fmt.Sprintf("Failed Go test: %s", p.Name) }

// UpstartFilePresent reports that an obsolete upstart job file was found
// where the packaging no longer expects one.
type UpstartFilePresent struct {
	File string
}

func (p UpstartFilePresent) Kind() string   { return "upstart-file-present" }
func (p UpstartFilePresent) IsGlobal() bool { return false }
func (p UpstartFilePresent) String() string {
	return fmt.Sprintf("Upstart file present: %s", p.File)
}
