// Package io implements the operations mutating trees on the filesystem:
// recursive removal, recursive copying, moving (renaming with a copying
// fallback across devices) and the setting of timestamps. All operations are
// synchronous and operate directly on the host filesystem, without any
// locking or transactional guarantees across the elements of a tree.
package io

import (
	"os"

	"github.com/desertwitch/pathkit/internal/schema"
	"golang.org/x/sys/unix"
)

type fsProvider interface {
	GetMetadata(path string) (*schema.Metadata, error)
	GetTargetMetadata(path string) (*schema.Metadata, error)
	IsDir(path string) (bool, error)
	LExists(path string) (bool, error)
}

type osProvider interface {
	CreateTemp(dir, pattern string) (*os.File, error)
	Lstat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Chown(path string, uid, gid int) error
	Lchown(path string, uid, gid int) error
	Lutimes(path string, times []unix.Timespec) error
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	UtimesNano(path string, times []unix.Timespec) error
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	fsHandler   fsProvider
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new IO [Handler].
func NewHandler(fsHandler fsProvider, osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		fsHandler:   fsHandler,
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
