package filesystem

import (
	"fmt"

	"github.com/desertwitch/pathkit/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	unixBasePerms = 0o7777
)

// GetMetadata gathers the [schema.Metadata] of the element at a path. Symbolic
// links are not followed, their target is recorded instead.
func (f *Handler) GetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat %s: %w", path, err)
	}

	metadata := statToMetadata(&stat)

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-metadata) failed to readlink: %w", err)
		}
		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}

// GetTargetMetadata gathers the [schema.Metadata] of the element at a path,
// following any symbolic links to their final target.
func (f *Handler) GetTargetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to stat %s: %w", path, err)
	}

	return statToMetadata(&stat), nil
}

func statToMetadata(stat *unix.Stat_t) *schema.Metadata {
	return &schema.Metadata{
		Perms:      stat.Mode & unixBasePerms,
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       handleSize(stat.Size),
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsRegular:  (stat.Mode & unix.S_IFMT) == unix.S_IFREG,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}
}

// handleSize converts a int64 filesize to a uint64 filesize (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
