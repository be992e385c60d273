package io

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// CopyOptions controls the behavior of [Handler.CopyTree].
type CopyOptions struct {
	// PreserveSymlinks recreates symbolic links within the source tree as
	// symbolic links, instead of copying the content they point to.
	PreserveSymlinks bool
}

// CopyTree recursively copies the directory src to dst, which must not yet
// exist. Missing parent directories of dst are created. File contents are
// verified, permissions and timestamps are taken over. An error with a single
// element does not stop the copy, instead all such errors are collected and
// returned together once the traversal is complete.
func (i *Handler) CopyTree(src, dst string, opts CopyOptions) error {
	report, err := i.copyTree(src, dst, opts)
	if report != nil {
		report.logSummary(src, dst)
	}

	return err
}

func (i *Handler) copyTree(src, dst string, opts CopyOptions) (*copyReport, error) {
	if exists, err := i.fsHandler.LExists(dst); err != nil {
		return nil, fmt.Errorf("(io-copytree) failed to check destination existence: %w", err)
	} else if exists {
		return nil, fmt.Errorf("(io-copytree) %w: %s", ErrDestinationExists, dst)
	}

	isDir, err := i.fsHandler.IsDir(src)
	if err != nil {
		return nil, fmt.Errorf("(io-copytree) failed to check source: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("(io-copytree) %w: %s", ErrSourceNotDirectory, src)
	}

	report := &copyReport{}

	if err := i.copyDir(src, dst, opts, report); err != nil {
		return report, fmt.Errorf("(io-copytree) %w", err)
	}

	return report, nil
}

func (i *Handler) copyDir(src, dst string, opts CopyOptions, report *copyReport) error {
	metadata, err := i.fsHandler.GetTargetMetadata(src)
	if err != nil {
		return err
	}

	entries, err := i.osHandler.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to readdir: %w", err)
	}

	if err := i.osHandler.MkdirAll(dst, fs.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	report.DirsCreated++

	var errs []error

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if err := i.copyEntry(srcPath, dstPath, entry, opts, report); err != nil {
			errs = append(errs, err)
		}
	}

	if err := i.ensurePermissions(dst, metadata); err != nil {
		errs = append(errs, err)
	} else if err := i.ensureTimestamp(dst, metadata); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (i *Handler) copyEntry(src, dst string, entry fs.DirEntry, opts CopyOptions, report *copyReport) error {
	if entry.Type()&fs.ModeSymlink != 0 && opts.PreserveSymlinks {
		if err := i.copySymlink(src, dst); err != nil {
			return err
		}
		report.SymlinksCreated++

		return nil
	}

	metadata, err := i.fsHandler.GetTargetMetadata(src)
	if err != nil {
		return err
	}

	if metadata.IsDir {
		return i.copyDir(src, dst, opts, report)
	}

	if !metadata.IsRegular {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, src)
	}

	n, err := i.copyFile(src, dst, metadata, false)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	report.FilesCopied++
	report.BytesCopied += n

	return nil
}
