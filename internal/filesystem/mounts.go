package filesystem

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// IsMount checks if a path is a mount point, meaning that the path resides on
// another device than its parent directory, or that it is the same element as
// its parent directory (the root). A symbolic link is never a mount point.
// Any failure to inspect the path or its parent, including the path not
// existing, results in false.
func (f *Handler) IsMount(path string) bool {
	var stat unix.Stat_t
	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return false
	}

	if (stat.Mode & unix.S_IFMT) == unix.S_IFLNK {
		return false
	}

	// Resolved by the kernel, not lexically, as path may pass symbolic links.
	var parent unix.Stat_t
	if err := f.unixHandler.Lstat(path+string(filepath.Separator)+"..", &parent); err != nil {
		return false
	}

	if stat.Dev != parent.Dev {
		return true
	}

	return stat.Ino == parent.Ino
}
