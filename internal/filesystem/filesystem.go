// Package filesystem implements the stat-like queries answered about a
// location on the filesystem: existence (with or without following symbolic
// links), the kind of element found there, mount point detection and the
// gathering of [schema.Metadata]. Nothing in this package mutates the
// filesystem.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Lstat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Readlink(name string) (string, error)
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem queries.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
