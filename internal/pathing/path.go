package pathing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Path is an immutable value naming a location on the filesystem, regardless
// of whether anything exists at that location. Two paths are equal if their
// (cleaned) textual representation is equal, which also holds for comparing
// with ==. The zero value names the current directory, every [Path] naming
// "." is the zero value.
type Path struct {
	path string
}

// New returns a [Path] from the given elements, joined with the separator of
// the operating system and cleaned.
func New(elem ...string) Path {
	path := filepath.Join(elem...)
	if path == "." {
		path = ""
	}

	return Path{path: path}
}

// String returns the textual representation of the [Path].
func (p Path) String() string {
	if p.path == "" {
		return "."
	}

	return p.path
}

// Join returns a new [Path] with the given elements appended.
func (p Path) Join(elem ...string) Path {
	return New(append([]string{p.String()}, elem...)...)
}

// Parent returns the [Path] of the containing directory.
func (p Path) Parent() Path {
	return New(filepath.Dir(p.String()))
}

// Base returns the last element of the [Path].
func (p Path) Base() string {
	return filepath.Base(p.String())
}

// Ext returns the file name extension of the last element, including the dot.
func (p Path) Ext() string {
	return filepath.Ext(p.String())
}

// Stem returns the last element without its file name extension.
func (p Path) Stem() string {
	return strings.TrimSuffix(p.Base(), p.Ext())
}

// WithSuffix returns a new [Path] with the file name extension of the last
// element replaced by ext. An empty ext removes the extension.
func (p Path) WithSuffix(ext string) Path {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return New(strings.TrimSuffix(p.String(), p.Ext()) + ext)
}

// IsAbs reports whether the [Path] is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(p.String())
}

// Absolute returns an absolute representation of the [Path], resolved against
// the current working directory if relative.
func (p Path) Absolute() (Path, error) {
	abs, err := filepath.Abs(p.String())
	if err != nil {
		return Path{}, fmt.Errorf("(pathing-abs) %w", err)
	}

	return New(abs), nil
}

// Rel returns a relative [Path] leading from p to target.
func (p Path) Rel(target Path) (Path, error) {
	rel, err := filepath.Rel(p.String(), target.String())
	if err != nil {
		return Path{}, fmt.Errorf("(pathing-rel) %w", err)
	}

	return New(rel), nil
}

// Parts returns the elements of the [Path]. An absolute path's first element
// is the separator itself.
func (p Path) Parts() []string {
	s := p.String()

	var parts []string
	if filepath.IsAbs(s) {
		parts = append(parts, string(filepath.Separator))
		s = strings.TrimLeft(s, string(filepath.Separator))
	}

	if s == "" {
		return parts
	}

	return append(parts, strings.Split(s, string(filepath.Separator))...)
}

// Equal reports whether two paths are textually equal.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// IsZero reports whether the [Path] is the zero value, naming the current
// directory.
func (p Path) IsZero() bool {
	return p.path == ""
}
