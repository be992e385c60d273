package io

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Op identifies the operation that failed while removing a tree.
type Op int

const (
	// OpLstat is the inspection of the root of the tree.
	OpLstat Op = iota
	// OpReadDir is the listing of a directory's contents.
	OpReadDir
	// OpRemove is the removal of a file or symbolic link.
	OpRemove
	// OpRmdir is the removal of an (emptied) directory.
	OpRmdir
)

func (op Op) String() string {
	switch op {
	case OpLstat:
		return "lstat"
	case OpReadDir:
		return "readdir"
	case OpRemove:
		return "remove"
	case OpRmdir:
		return "rmdir"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// ErrorCallback receives every error that occurs during a tree removal, along
// with the failed operation and the path it failed on.
type ErrorCallback func(op Op, path string, err error)

// RemoveOptions controls the error handling of [Handler.RemoveTree]. At most
// one of the two fields may be set.
type RemoveOptions struct {
	// IgnoreErrors suppresses all errors, removing as much as possible.
	IgnoreErrors bool

	// OnError routes all errors to the callback, removing as much as possible.
	OnError ErrorCallback
}

type treeRemover struct {
	handler *Handler
	opts    RemoveOptions
}

// RemoveTree removes the file or directory at path and, for a directory, all
// of its contents depth-first. Without options the first error aborts the
// removal and is returned. With [RemoveOptions.IgnoreErrors] or
// [RemoveOptions.OnError] errors are suppressed or routed to the callback and
// the removal continues with the next element. Setting both returns
// [ErrConflictingOptions] without touching the filesystem.
func (i *Handler) RemoveTree(path string, opts RemoveOptions) error {
	if opts.IgnoreErrors && opts.OnError != nil {
		return fmt.Errorf("(io-rmtree) %w", ErrConflictingOptions)
	}

	r := &treeRemover{
		handler: i,
		opts:    opts,
	}

	info, err := i.osHandler.Lstat(path)
	if err != nil {
		return r.fail(OpLstat, path, err)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return r.fail(OpLstat, path, &fs.PathError{Op: "rmtree", Path: path, Err: ErrSymlinkRoot})
	}

	if !info.IsDir() {
		if err := i.osHandler.Remove(path); err != nil {
			return r.fail(OpRemove, path, err)
		}

		return nil
	}

	return r.removeDir(path)
}

func (r *treeRemover) removeDir(path string) error {
	entries, err := r.handler.osHandler.ReadDir(path)
	if err != nil {
		if err := r.fail(OpReadDir, path, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			if err := r.removeDir(child); err != nil {
				return err
			}

			continue
		}

		if err := r.handler.osHandler.Remove(child); err != nil {
			if err := r.fail(OpRemove, child, err); err != nil {
				return err
			}
		}
	}

	if err := r.handler.unixHandler.Rmdir(path); err != nil {
		return r.fail(OpRmdir, path, &fs.PathError{Op: "rmdir", Path: path, Err: err})
	}

	return nil
}

// fail handles an error according to the [RemoveOptions], returning a non-nil
// error only if the removal is to be aborted.
func (r *treeRemover) fail(op Op, path string, err error) error {
	switch {
	case r.opts.IgnoreErrors:
		return nil

	case r.opts.OnError != nil:
		r.opts.OnError(op, path, err)

		return nil

	default:
		return fmt.Errorf("(io-rmtree) failed to %s: %w", op, err)
	}
}
