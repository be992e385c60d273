// Package pathing provides [Path], an immutable value naming a location on the
// filesystem. Next to the usual path algebra, a [Path] offers the queries and
// recursive tree operations needed to set up and tear down test fixtures:
// removing, copying and moving whole trees, setting timestamps and checking
// for existence (including broken symbolic links) and mount points.
//
// A [Path] never holds any resources. The filesystem is only consulted when
// one of the querying or mutating methods is called, which delegate to the
// package's default [Handler] built on the operating system. A [Handler] can
// also be constructed explicitly, with its own filesystem and IO handlers.
package pathing

import (
	"os"
	"time"

	"github.com/desertwitch/pathkit/internal/filesystem"
	"github.com/desertwitch/pathkit/internal/io"
	"github.com/desertwitch/pathkit/internal/schema"
)

type fsProvider interface {
	Exists(path string) (bool, error)
	IsDir(path string) (bool, error)
	IsFile(path string) (bool, error)
	IsMount(path string) bool
	IsSymlink(path string) (bool, error)
	LExists(path string) (bool, error)
}

type ioProvider interface {
	CopyTree(src, dst string, opts io.CopyOptions) error
	MoveTree(src, dst string) error
	RemoveTree(path string, opts io.RemoveOptions) error
	SetTimes(path string, atime, mtime time.Time) error
}

type osProvider interface {
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Handler is the principal implementation of the filesystem operations
// offered on a [Path].
type Handler struct {
	fsHandler fsProvider
	ioHandler ioProvider
	osHandler osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(fsHandler fsProvider, ioHandler ioProvider, osHandler osProvider) *Handler {
	return &Handler{
		fsHandler: fsHandler,
		ioHandler: ioHandler,
		osHandler: osHandler,
	}
}

//nolint:gochecknoglobals
var defaultHandler = newOSHandler()

// newOSHandler returns a [Handler] operating on the real operating system.
func newOSHandler() *Handler {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)
	ioHandler := io.NewHandler(fsHandler, osProvider, unixProvider)

	return NewHandler(fsHandler, ioHandler, osProvider)
}

// Default returns the [Handler] that the methods of [Path] delegate to.
func Default() *Handler {
	return defaultHandler
}
