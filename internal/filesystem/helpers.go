package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
)

// Exists is a helper function checking if a path exists, following symbolic
// links. A broken symbolic link does not exist by this definition.
func (f *Handler) Exists(path string) (bool, error) {
	if _, err := f.osHandler.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-exists) %w", err)
	}

	return true, nil
}

// LExists is a helper function checking if a path exists without following
// symbolic links, meaning that also a broken symbolic link exists.
func (f *Handler) LExists(path string) (bool, error) {
	if _, err := f.osHandler.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-lexists) %w", err)
	}

	return true, nil
}

// IsDir checks if a path is a directory, following symbolic links.
func (f *Handler) IsDir(path string) (bool, error) {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isdir) %w", err)
	}

	return info.IsDir(), nil
}

// IsFile checks if a path is a regular file, following symbolic links.
func (f *Handler) IsFile(path string) (bool, error) {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isfile) %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// IsSymlink checks if a path is itself a symbolic link.
func (f *Handler) IsSymlink(path string) (bool, error) {
	info, err := f.osHandler.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-issymlink) %w", err)
	}

	return info.Mode()&fs.ModeSymlink != 0, nil
}

// IsEmptyFolder is a helper function checking if a path is an empty folder.
func (f *Handler) IsEmptyFolder(path string) (bool, error) {
	entries, err := f.osHandler.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("(fs-isempty) failed to readdir: %w", err)
	}

	return len(entries) == 0, nil
}
