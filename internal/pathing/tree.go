package pathing

import (
	"time"

	"github.com/desertwitch/pathkit/internal/io"
)

// Op identifies the operation that failed while removing a tree.
type Op = io.Op

const (
	OpLstat   = io.OpLstat
	OpReadDir = io.OpReadDir
	OpRemove  = io.OpRemove
	OpRmdir   = io.OpRmdir
)

//nolint:gochecknoglobals
var (
	ErrConflictingOptions = io.ErrConflictingOptions
	ErrDestinationExists  = io.ErrDestinationExists
	ErrMoveIntoSelf       = io.ErrMoveIntoSelf
	ErrSourceNotDirectory = io.ErrSourceNotDirectory
	ErrSymlinkRoot        = io.ErrSymlinkRoot
)

// RemoveOption configures [Path.RemoveTree].
type RemoveOption func(*io.RemoveOptions)

// WithIgnoreErrors suppresses all errors during a tree removal.
func WithIgnoreErrors() RemoveOption {
	return func(o *io.RemoveOptions) {
		o.IgnoreErrors = true
	}
}

// WithOnError routes every error during a tree removal to fn instead of
// aborting. It cannot be combined with [WithIgnoreErrors].
func WithOnError(fn func(op Op, path string, err error)) RemoveOption {
	return func(o *io.RemoveOptions) {
		o.OnError = fn
	}
}

// CopyOption configures [Path.CopyTree].
type CopyOption func(*io.CopyOptions)

// WithPreserveSymlinks recreates symbolic links as such in the copy, instead of
// copying what they point to.
func WithPreserveSymlinks() CopyOption {
	return func(o *io.CopyOptions) {
		o.PreserveSymlinks = true
	}
}

// RemoveTree removes the file or directory tree at the [Path].
func (h *Handler) RemoveTree(p Path, opts ...RemoveOption) error {
	var options io.RemoveOptions
	for _, opt := range opts {
		opt(&options)
	}

	return h.ioHandler.RemoveTree(p.String(), options)
}

// CopyTree recursively copies the directory at the [Path] to dst.
func (h *Handler) CopyTree(p Path, dst Path, opts ...CopyOption) error {
	var options io.CopyOptions
	for _, opt := range opts {
		opt(&options)
	}

	return h.ioHandler.CopyTree(p.String(), dst.String(), options)
}

// MoveTree moves the file or directory at the [Path] to dst.
func (h *Handler) MoveTree(p Path, dst Path) error {
	return h.ioHandler.MoveTree(p.String(), dst.String())
}

// SetTimes sets the access and modification timestamps at the [Path].
func (h *Handler) SetTimes(p Path, atime, mtime time.Time) error {
	return h.ioHandler.SetTimes(p.String(), atime, mtime)
}

// RemoveTree removes the file or directory at the [Path] and, for a directory,
// everything it contains. The first error aborts the removal and is returned,
// unless [WithIgnoreErrors] or [WithOnError] is given. A symbolic link is
// refused with [ErrSymlinkRoot].
func (p Path) RemoveTree(opts ...RemoveOption) error {
	return defaultHandler.RemoveTree(p, opts...)
}

// CopyTree recursively copies the directory at the [Path] to dst, creating dst
// and its missing parents. It fails with [ErrDestinationExists] if dst already
// exists. Symbolic links are followed unless [WithPreserveSymlinks] is given.
func (p Path) CopyTree(dst Path, opts ...CopyOption) error {
	return defaultHandler.CopyTree(p, dst, opts...)
}

// MoveTree moves the file or directory at the [Path] to dst, into dst if that
// is an existing directory. Across devices it falls back to copying and
// removing the source.
func (p Path) MoveTree(dst Path) error {
	return defaultHandler.MoveTree(p, dst)
}

// Move is the same as [Path.MoveTree].
func (p Path) Move(dst Path) error {
	return p.MoveTree(dst)
}

// SetTimes sets the access and modification timestamps at the [Path]. A zero
// [time.Time] leaves that timestamp unchanged.
func (p Path) SetTimes(atime, mtime time.Time) error {
	return defaultHandler.SetTimes(p, atime, mtime)
}

// SetTimesNow sets both the access and modification timestamps at the [Path]
// to the current time.
func (p Path) SetTimesNow() error {
	now := time.Now()

	return defaultHandler.SetTimes(p, now, now)
}
