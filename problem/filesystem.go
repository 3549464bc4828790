package problem

import "fmt"

// MissingFile is a reference to a path that the build expected to exist
// but didn't.
type MissingFile struct {
	Path string
}

func (p MissingFile) Kind() string   { return "missing-file" }
func (p MissingFile) IsGlobal() bool { return false }
func (p MissingFile) String() string { return fmt.Sprintf("Missing file: %s", p.Path) }

// DirectoryNonExistent is a reference to a directory the build expected to
// exist but didn't.
type DirectoryNonExistent struct {
	Path string
}

func (p DirectoryNonExistent) Kind() string   { return "local-directory-not-existing" }
func (p DirectoryNonExistent) IsGlobal() bool { return false }
func (p DirectoryNonExistent) String() string {
	return fmt.Sprintf("Directory does not exist: %s", p.Path)
}

// NoSpaceOnDevice means the build ran out of disk space in the chroot. It's
// the canonical global/environmental Problem.
type NoSpaceOnDevice struct{}

func (p NoSpaceOnDevice) Kind() string   { return "no-space-on-device" }
func (p NoSpaceOnDevice) IsGlobal() bool { return true }
func (p NoSpaceOnDevice) String() string { return "No space on device" }

// InsufficientDiskSpace reports the specific shortfall sbuild's own
// pre-flight check logged before even starting the build.
type InsufficientDiskSpace struct {
	Needed int64 // KiB required
	Free   int64 // KiB available
}

func (p InsufficientDiskSpace) Kind() string   { return "insufficient-disk-space" }
func (p InsufficientDiskSpace) IsGlobal() bool { return true }
func (p InsufficientDiskSpace) String() string {
	return fmt.Sprintf("Insufficient disk space for build. Need: %d KiB, free: %d KiB", p.Needed, p.Free)
}
