package io

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrConflictingOptions is an error that occurs when a tree removal is
	// requested to both ignore all errors and report them to a callback.
	ErrConflictingOptions = errors.New("ignoring errors and an error callback are mutually exclusive")

	// ErrSymlinkRoot is an error that occurs when a tree removal is requested
	// on a symbolic link, which would otherwise remove the link's target tree.
	ErrSymlinkRoot = errors.New("cannot remove tree of a symbolic link")

	// ErrDestinationExists is an error that occurs when the destination of a
	// tree copy or tree move already exists. It matches [fs.ErrExist].
	ErrDestinationExists = fmt.Errorf("destination %w", fs.ErrExist)

	// ErrSourceNotDirectory is an error that occurs when the source of a tree
	// copy is not a directory.
	ErrSourceNotDirectory = errors.New("source is not a directory")

	// ErrUnsupportedType is an error that occurs when an element of a tree is
	// neither a regular file, a directory nor a symbolic link.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrMoveIntoSelf is an error that occurs when a directory is requested to
	// be moved into itself or one of its own subdirectories.
	ErrMoveIntoSelf = errors.New("cannot move a directory into itself")

	// ErrHashMismatch is an error that occurs when there is a source/destination hash
	// mismatch, this usually means that there are underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRenameExists is an error that occurs when the intermediate file is to be renamed
	// to its final filename, but that final filename already exists.
	ErrRenameExists = errors.New("rename destination already exists")
)
