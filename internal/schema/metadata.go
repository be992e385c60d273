package schema

import (
	"golang.org/x/sys/unix"
)

// Metadata is the principal structure holding the metadata of an element on
// the filesystem, as gathered without following symbolic links.
type Metadata struct {
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       uint64
	IsDir      bool
	IsRegular  bool
	IsSymlink  bool
	SymlinkTo  string
}
