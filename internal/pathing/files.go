package pathing

import (
	"fmt"
	"os"
	"sort"
)

const (
	defaultFilePerms = 0o644
)

// Mkdir creates the directory at the [Path].
func (h *Handler) Mkdir(p Path, perm os.FileMode) error {
	if err := h.osHandler.Mkdir(p.String(), perm); err != nil {
		return fmt.Errorf("(pathing-mkdir) %w", err)
	}

	return nil
}

// MkdirAll creates the directory at the [Path] along with any missing parents.
func (h *Handler) MkdirAll(p Path, perm os.FileMode) error {
	if err := h.osHandler.MkdirAll(p.String(), perm); err != nil {
		return fmt.Errorf("(pathing-mkdirall) %w", err)
	}

	return nil
}

// ReadFile returns the contents of the file at the [Path].
func (h *Handler) ReadFile(p Path) ([]byte, error) {
	data, err := h.osHandler.ReadFile(p.String())
	if err != nil {
		return nil, fmt.Errorf("(pathing-read) %w", err)
	}

	return data, nil
}

// WriteFile writes data to the file at the [Path], creating or truncating it.
func (h *Handler) WriteFile(p Path, data []byte, perm os.FileMode) error {
	if err := h.osHandler.WriteFile(p.String(), data, perm); err != nil {
		return fmt.Errorf("(pathing-write) %w", err)
	}

	return nil
}

// ReadDir returns the paths of the elements contained in the directory at the
// [Path], sorted by name.
func (h *Handler) ReadDir(p Path) ([]Path, error) {
	entries, err := h.osHandler.ReadDir(p.String())
	if err != nil {
		return nil, fmt.Errorf("(pathing-readdir) %w", err)
	}

	paths := make([]Path, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, p.Join(entry.Name()))
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i].String() < paths[j].String()
	})

	return paths, nil
}

// Remove removes the file or empty directory at the [Path].
func (h *Handler) Remove(p Path) error {
	if err := h.osHandler.Remove(p.String()); err != nil {
		return fmt.Errorf("(pathing-remove) %w", err)
	}

	return nil
}

// Mkdir creates the directory at the [Path].
func (p Path) Mkdir(perm os.FileMode) error {
	return defaultHandler.Mkdir(p, perm)
}

// MkdirAll creates the directory at the [Path] and any missing parents.
func (p Path) MkdirAll(perm os.FileMode) error {
	return defaultHandler.MkdirAll(p, perm)
}

// ReadFile returns the contents of the file at the [Path].
func (p Path) ReadFile() ([]byte, error) {
	return defaultHandler.ReadFile(p)
}

// WriteFile writes data to the file at the [Path].
func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return defaultHandler.WriteFile(p, data, perm)
}

// ReadText returns the contents of the file at the [Path] as a string.
func (p Path) ReadText() (string, error) {
	data, err := p.ReadFile()

	return string(data), err
}

// WriteText writes s to the file at the [Path], with default permissions for a
// newly created file.
func (p Path) WriteText(s string) error {
	return p.WriteFile([]byte(s), defaultFilePerms)
}

// ReadDir returns the sorted paths of the elements in the directory.
func (p Path) ReadDir() ([]Path, error) {
	return defaultHandler.ReadDir(p)
}

// Remove removes the file or empty directory at the [Path].
func (p Path) Remove() error {
	return defaultHandler.Remove(p)
}
