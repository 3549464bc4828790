package problem

import (
	"fmt"
	"strings"
)

// DpkgSourceLocalChanges reports that `dpkg-source` found local changes
// against the upstream tarball that aren't recorded as a patch.
type DpkgSourceLocalChanges struct {
	Files []string // may be empty: dpkg-source didn't enumerate them
}

func (p DpkgSourceLocalChanges) Kind() string   { return "unexpected-local-upstream-changes" }
func (p DpkgSourceLocalChanges) IsGlobal() bool { return false }
func (p DpkgSourceLocalChanges) String() string {
	if len(p.Files) == 0 {
		return "Tree has local changes"
	}
	return fmt.Sprintf("Tree has local changes: %s", strings.Join(p.Files, ", "))
}

// DpkgSourceUnrepresentableChanges reports changes dpkg-source's chosen
// source format can't represent as a patch at all (e.g. a changed symlink).
type DpkgSourceUnrepresentableChanges struct{}

func (p DpkgSourceUnrepresentableChanges) Kind() string   { return "unrepresentable-local-changes" }
func (p DpkgSourceUnrepresentableChanges) IsGlobal() bool { return false }
func (p DpkgSourceUnrepresentableChanges) String() string {
	return "Tree has unrepresentable changes"
}

// DpkgUnwantedBinaryFiles reports that the source tree contains binary
// files dpkg-source refuses to include.
type DpkgUnwantedBinaryFiles struct{}

func (p DpkgUnwantedBinaryFiles) Kind() string   { return "unwanted-binary-files" }
func (p DpkgUnwantedBinaryFiles) IsGlobal() bool { return false }
func (p DpkgUnwantedBinaryFiles) String() string { return "Tree has unwanted binary files" }

// DpkgBinaryFileChanged reports the specific binary files that changed
// against the .orig tarball.
type DpkgBinaryFileChanged struct {
	Paths []string
}

func (p DpkgBinaryFileChanged) Kind() string   { return "binary-file-changed" }
func (p DpkgBinaryFileChanged) IsGlobal() bool { return false }
func (p DpkgBinaryFileChanged) String() string {
	return fmt.Sprintf("Binary files changed: %s", strings.Join(p.Paths, ", "))
}

// MissingControlFile reports that debian/control (or another expected
// control file) doesn't exist.
type MissingControlFile struct {
	Path string
}

func (p MissingControlFile) Kind() string   { return "missing-control-file" }
func (p MissingControlFile) IsGlobal() bool { return false }
func (p MissingControlFile) String() string {
	return fmt.Sprintf("Missing control file: %s", p.Path)
}

// UnableToFindUpstreamTarball reports that the .orig tarball for a given
// package/version couldn't be located anywhere searched.
type UnableToFindUpstreamTarball struct {
	Package string
	Version string
}

func (p UnableToFindUpstreamTarball) Kind() string   { return "unable-to-find-upstream-tarball" }
func (p UnableToFindUpstreamTarball) IsGlobal() bool { return false }
func (p UnableToFindUpstreamTarball) String() string {
	return fmt.Sprintf("Unable to find upstream tarball for %s %s", p.Package, p.Version)
}

// PatchApplicationFailed reports that a named quilt/dpkg-source patch
// failed to apply.
type PatchApplicationFailed struct {
	Name string
}

func (p PatchApplicationFailed) Kind() string   { return "patch-application-failed" }
func (p PatchApplicationFailed) IsGlobal() bool { return false }
func (p PatchApplicationFailed) String() string {
	return fmt.Sprintf("Patch application failed: %s", p.Name)
}

// PatchFileMissing reports that a patch referenced from debian/patches/series
// doesn't exist on disk.
type PatchFileMissing struct {
	Path string
}

func (p PatchFileMissing) Kind() string   { return "patch-file-missing" }
func (p PatchFileMissing) IsGlobal() bool { return false }
func (p PatchFileMissing) String() string {
	return fmt.Sprintf("Patch file missing: %s", p.Path)
}

// SourceFormatUnbuildable reports that the source package's declared
// Format: is unbuildable in this environment.
type SourceFormatUnbuildable struct {
	Format string
}

func (p SourceFormatUnbuildable) Kind() string   { return "source-format-unbuildable" }
func (p SourceFormatUnbuildable) IsGlobal() bool { return false }
func (p SourceFormatUnbuildable) String() string {
	return fmt.Sprintf("Source format %s unbuildable", p.Format)
}

// SourceFormatUnsupported reports a declared Format: dpkg-source itself
// doesn't recognize.
type SourceFormatUnsupported struct {
	Format string
}

func (p SourceFormatUnsupported) Kind() string   { return "unsupported-source-format" }
func (p SourceFormatUnsupported) IsGlobal() bool { return false }
func (p SourceFormatUnsupported) String() string {
	return fmt.Sprintf("Unsupported source format %s", p.Format)
}

// InconsistentSourceFormat reports that debian/source/format disagrees
// with what the .dsc (or vice versa) declares.
type InconsistentSourceFormat struct{}

func (p InconsistentSourceFormat) Kind() string   { return "inconsistent-source-format" }
func (p InconsistentSourceFormat) IsGlobal() bool { return false }
func (p InconsistentSourceFormat) String() string { return "Inconsistent source format" }

// UpstreamMetadataFileParseError reports that debian/upstream/metadata
// couldn't be parsed.
type UpstreamMetadataFileParseError struct {
	Path   string
	Reason string
}

func (p UpstreamMetadataFileParseError) Kind() string   { return "upstream-metadata-file-parse-error" }
func (p UpstreamMetadataFileParseError) IsGlobal() bool { return false }
func (p UpstreamMetadataFileParseError) String() string {
	return fmt.Sprintf("Unable to parse %s: %s", p.Path, p.Reason)
}

// DpkgSourcePackFailed reports a generic dpkg-source packing failure whose
// cause wasn't one of the more specific kinds above.
type DpkgSourcePackFailed struct {
	Reason string
}

func (p DpkgSourcePackFailed) Kind() string   { return "dpkg-source-pack-failed" }
func (p DpkgSourcePackFailed) IsGlobal() bool { return false }
func (p DpkgSourcePackFailed) String() string {
	if p.Reason == "" {
		return "dpkg-source failed to pack source directory"
	}
	return fmt.Sprintf("dpkg-source failed to pack source directory: %s", p.Reason)
}

// DebianVersionRejected reports that a proposed Debian version string is
// malformed or otherwise rejected by dpkg.
type DebianVersionRejected struct {
	Version string
}

func (p DebianVersionRejected) Kind() string   { return "debian-version-rejected" }
func (p DebianVersionRejected) IsGlobal() bool { return false }
func (p DebianVersionRejected) String() string {
	return fmt.Sprintf("Debian version %s rejected", p.Version)
}

// NeedPgBuildExtUpdateControl reports that pg_buildext noticed
// debian/control is out of date relative to its template and that
// `pg_buildext updatecontrol` needs to be run.
type NeedPgBuildExtUpdateControl struct {
	Generated string
	Template  string
}

func (p NeedPgBuildExtUpdateControl) Kind() string   { return "need-pg-buildext-updatecontrol" }
func (p NeedPgBuildExtUpdateControl) IsGlobal() bool { return false }
func (p NeedPgBuildExtUpdateControl) String() string {
	return fmt.Sprintf("Need to run 'pg_buildext updatecontrol' to update %s from %s",
		p.Generated, p.Template)
}

// DhWithOrderIncorrect reports that a dh sequence was passed before the
// --with argument on the command line.
type DhWithOrderIncorrect struct{}

func (p DhWithOrderIncorrect) Kind() string   { return "debhelper-argument-order" }
func (p DhWithOrderIncorrect) IsGlobal() bool { return false }
func (p DhWithOrderIncorrect) String() string { return "dh argument order is incorrect" }

// DhUntilUnsupported reports use of the removed dh --until flag.
type DhUntilUnsupported struct{}

func (p DhUntilUnsupported) Kind() string   { return "dh-until-unsupported" }
func (p DhUntilUnsupported) IsGlobal() bool { return false }
func (p DhUntilUnsupported) String() string { return "dh --until is no longer supported" }

// DhAddonLoadFailure reports that a debhelper sequence addon couldn't be
// loaded.
type DhAddonLoadFailure struct {
	Name string
	Path string
}

func (p DhAddonLoadFailure) Kind() string   { return "dh-addon-load-failure" }
func (p DhAddonLoadFailure) IsGlobal() bool { return false }
func (p DhAddonLoadFailure) String() string {
	return fmt.Sprintf("dh addon %s failed to load (from %s)", p.Name, p.Path)
}

// DhMissingUninstalled reports files debhelper expected to be installed
// into a package that weren't.
type DhMissingUninstalled struct {
	Path string
}

func (p DhMissingUninstalled) Kind() string   { return "dh-missing-uninstalled" }
func (p DhMissingUninstalled) IsGlobal() bool { return false }
func (p DhMissingUninstalled) String() string {
	return fmt.Sprintf("File not installed: %s", p.Path)
}

// DhLinkDestinationIsDirectory reports that dh_link was asked to create a
// symlink whose destination is an existing directory.
type DhLinkDestinationIsDirectory struct {
	Path string
}

func (p DhLinkDestinationIsDirectory) Kind() string   { return "dh-link-destination-is-directory" }
func (p DhLinkDestinationIsDirectory) IsGlobal() bool { return false }
func (p DhLinkDestinationIsDirectory) String() string {
	return fmt.Sprintf("Link destination %s is a directory", p.Path)
}

// DebhelperPatternNotFound reports that a debhelper install pattern (e.g.
// in debian/package.install) matched nothing in the searched directories.
type DebhelperPatternNotFound struct {
	Pattern string
	Tool    string
	Dirs    []string
}

func (p DebhelperPatternNotFound) Kind() string   { return "debhelper-pattern-not-found" }
func (p DebhelperPatternNotFound) IsGlobal() bool { return false }
func (p DebhelperPatternNotFound) String() string {
	return fmt.Sprintf("%s: pattern %s not found in %s", p.Tool, p.Pattern, strings.Join(p.Dirs, ", "))
}

// MissingDHCompatLevel reports that a debhelper command was run without a
// compat level being set anywhere.
type MissingDHCompatLevel struct {
	Command string
}

func (p MissingDHCompatLevel) Kind() string   { return "missing-dh-compat-level" }
func (p MissingDHCompatLevel) IsGlobal() bool { return false }
func (p MissingDHCompatLevel) String() string {
	return fmt.Sprintf("Missing DH Compat Level (command: %s)", p.Command)
}

// DuplicateDHCompatLevel reports that the compat level was specified more
// than once (e.g. both debian/compat and X-DH-Compat).
type DuplicateDHCompatLevel struct {
	Command string
}

func (p DuplicateDHCompatLevel) Kind() string   { return "duplicate-dh-compat-level" }
func (p DuplicateDHCompatLevel) IsGlobal() bool { return false }
func (p DuplicateDHCompatLevel) String() string {
	return fmt.Sprintf("DH Compat Level specified twice (command: %s)", p.Command)
}

// UpstreamPGPSignatureVerificationFailed reports that uscan or a similar
// tool couldn't verify the upstream release's PGP signature.
type UpstreamPGPSignatureVerificationFailed struct{}

func (p UpstreamPGPSignatureVerificationFailed) Kind() string {
	return "upstream-pgp-signature-verification-failed"
}
func (p UpstreamPGPSignatureVerificationFailed) IsGlobal() bool { return false }
func (p UpstreamPGPSignatureVerificationFailed) String() string {
	return "Upstream PGP signature verification failed"
}

// UScanFailed reports a generic uscan failure fetching a URL.
type UScanFailed struct {
	URL    string
	Reason string
}

func (p UScanFailed) Kind() string   { return "uscan-failed" }
func (p UScanFailed) IsGlobal() bool { return false }
func (p UScanFailed) String() string {
	return fmt.Sprintf("uscan failed: %s (%s)", p.URL, p.Reason)
}

// UScanRequestVersionMissing reports that uscan's watch file requested a
// specific version that wasn't published upstream.
type UScanRequestVersionMissing struct {
	Version string
}

func (p UScanRequestVersionMissing) Kind() string   { return "uscan-requested-version-missing" }
func (p UScanRequestVersionMissing) IsGlobal() bool { return false }
func (p UScanRequestVersionMissing) String() string {
	return fmt.Sprintf("uscan: requested version %s missing", p.Version)
}

// UnknownMercurialExtraFields reports that debian/watch (or similar)
// referenced an hg extra-field uscan doesn't understand.
type UnknownMercurialExtraFields struct {
	Field string
}

func (p UnknownMercurialExtraFields) Kind() string   { return "unknown-mercurial-extra-fields" }
func (p UnknownMercurialExtraFields) IsGlobal() bool { return false }
func (p UnknownMercurialExtraFields) String() string {
	return fmt.Sprintf("Unknown Mercurial extra fields: %s", p.Field)
}

// DebcargoFailure reports that debcargo (Rust packaging helper) failed.
type DebcargoFailure struct {
	Reason string
}

func (p DebcargoFailure) Kind() string   { return "debcargo-failed" }
func (p DebcargoFailure) IsGlobal() bool { return false }
func (p DebcargoFailure) String() string {
	return fmt.Sprintf("Debcargo failed: %s", p.Reason)
}

// MissingRevision reports that a VCS revision referenced by the packaging
// (e.g. in Vcs-Git) couldn't be found.
type MissingRevision struct {
	RevisionID string
}

func (p MissingRevision) Kind() string   { return "missing-revision" }
func (p MissingRevision) IsGlobal() bool { return false }
func (p MissingRevision) String() string {
	return fmt.Sprintf("Missing revision: %s", p.RevisionID)
}

// ArchitectureNotInList reports that the source package's build
// Architecture doesn't include the host architecture.
type ArchitectureNotInList struct {
	Arch     string
	ArchList string
}

func (p ArchitectureNotInList) Kind() string   { return "arch-not-in-list" }
func (p ArchitectureNotInList) IsGlobal() bool { return false }
func (p ArchitectureNotInList) String() string {
	return fmt.Sprintf("Architecture %s not in arch list: %s", p.Arch, p.ArchList)
}
