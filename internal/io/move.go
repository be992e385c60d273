package io

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// MoveTree moves the file or directory at src to dst, much like the Unix "mv"
// command. If dst is an existing directory, src is moved into it under its own
// base name. The move is a rename where possible, an existing file at dst is
// replaced according to the rename semantics. Across devices the element is
// instead copied and the source removed afterwards, which is not atomic and
// can leave partial state behind on failure.
func (i *Handler) MoveTree(src, dst string) error {
	realDst := dst

	dstIsDir, err := i.fsHandler.IsDir(dst)
	if err != nil {
		return fmt.Errorf("(io-move) failed to check destination: %w", err)
	}

	if dstIsDir {
		realDst = filepath.Join(dst, filepath.Base(src))

		exists, err := i.fsHandler.LExists(realDst)
		if err != nil {
			return fmt.Errorf("(io-move) failed to check destination existence: %w", err)
		}
		if exists {
			return fmt.Errorf("(io-move) %w: %s", ErrDestinationExists, realDst)
		}
	}

	metadata, err := i.fsHandler.GetMetadata(src)
	if err != nil {
		return fmt.Errorf("(io-move) %w", err)
	}

	if metadata.IsDir {
		inside, err := isWithin(src, realDst)
		if err != nil {
			return fmt.Errorf("(io-move) %w", err)
		}
		if inside {
			return fmt.Errorf("(io-move) %w: %s -> %s", ErrMoveIntoSelf, src, realDst)
		}
	}

	err = i.osHandler.Rename(src, realDst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("(io-move) failed to rename: %w", err)
	}

	slog.Debug("Moving across devices, falling back to copying:",
		"src", src,
		"dst", realDst,
	)

	switch {
	case metadata.IsSymlink:
		if err := i.unixHandler.Symlink(metadata.SymlinkTo, realDst); err != nil {
			return fmt.Errorf("(io-move) failed to symlink %s: %w", realDst, err)
		}
		if err := i.osHandler.Remove(src); err != nil {
			return fmt.Errorf("(io-move) failed to remove src after move: %w", err)
		}

	case metadata.IsDir:
		if err := i.CopyTree(src, realDst, CopyOptions{PreserveSymlinks: true}); err != nil {
			return fmt.Errorf("(io-move) failed to copy tree: %w", err)
		}
		if err := i.RemoveTree(src, RemoveOptions{}); err != nil {
			return fmt.Errorf("(io-move) failed to remove src after move: %w", err)
		}

	case metadata.IsRegular:
		if _, err := i.copyFile(src, realDst, metadata, true); err != nil {
			return fmt.Errorf("(io-move) failed to copy file: %w", err)
		}
		if err := i.osHandler.Remove(src); err != nil {
			return fmt.Errorf("(io-move) failed to remove src after move: %w", err)
		}

	default:
		return fmt.Errorf("(io-move) %w: %s", ErrUnsupportedType, src)
	}

	return nil
}

// isWithin checks if the path dst is the directory src or lies within it.
func isWithin(src, dst string) (bool, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	absDst, err := filepath.Abs(dst)
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if absSrc == absDst {
		return true, nil
	}

	return strings.HasPrefix(absDst, absSrc+string(filepath.Separator)), nil
}
