package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/pathkit/internal/schema"
	"github.com/zeebo/blake3"
)

const (
	tmpSuffix = ".pathkit"
)

// copyFile copies the regular file src to dst, verifying the written content
// against the source by hash. The content is written to a temporary file next
// to dst under a unique name, which is renamed into place only once verified.
// Unless overwrite is set, an existing dst results in [ErrRenameExists].
// Permissions and timestamps are taken over from the given (source) metadata.
func (i *Handler) copyFile(src, dst string, metadata *schema.Metadata, overwrite bool) (uint64, error) {
	var transferComplete bool

	srcFile, err := i.osHandler.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := i.osHandler.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*"+tmpSuffix)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file for %s: %w", dst, err)
	}
	defer dstFile.Close()

	tmpPath := dstFile.Name()
	defer func() {
		if !transferComplete {
			i.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	srcHasher := blake3.New()

	n, err := io.Copy(dstFile, io.TeeReader(srcFile, srcHasher))
	if err != nil {
		return 0, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync destination fs: %w", err)
	}

	dstChecksum, err := i.hashFile(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to hash destination file: %w", err)
	}

	if srcChecksum := srcHasher.Sum(nil); !bytes.Equal(srcChecksum, dstChecksum) {
		return 0, fmt.Errorf("%w: %x (src) != %x (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if !overwrite {
		if _, err := i.osHandler.Lstat(dst); err == nil {
			return 0, fmt.Errorf("%w: %s", ErrRenameExists, dst)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("failed to check rename destination existence: %w", err)
		}
	}

	if err := i.osHandler.Rename(tmpPath, dst); err != nil {
		return 0, fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	if err := i.ensurePermissions(dst, metadata); err != nil {
		return 0, err
	}

	if err := i.ensureTimestamp(dst, metadata); err != nil {
		return 0, err
	}

	return handleSize(n), nil
}

func (i *Handler) hashFile(path string) ([]byte, error) {
	f, err := i.osHandler.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, err
	}

	return hasher.Sum(nil), nil
}

// copySymlink recreates the symbolic link src as dst, pointing at the same
// (unresolved) target.
func (i *Handler) copySymlink(src, dst string) error {
	metadata, err := i.fsHandler.GetMetadata(src)
	if err != nil {
		return err
	}

	if err := i.unixHandler.Symlink(metadata.SymlinkTo, dst); err != nil {
		return fmt.Errorf("failed to symlink %s: %w", dst, err)
	}

	if err := i.ensureLinkPermissions(dst, metadata); err != nil {
		return err
	}

	if err := i.ensureLinkTimestamp(dst, metadata); err != nil {
		slog.Warn("Failure taking over symlink timestamps (skipped)",
			"path", dst,
			"err", err,
		)
	}

	return nil
}

// handleSize converts a int64 size to a uint64 size (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
