package fs

import "strings"

// DirSuffix is appended to the display name of directory entries.
const DirSuffix = "/"

// Entry is a single child of a listed directory. Entries are never mutated
// after ListDirectory returns them.
type Entry struct {
	Name      string // display name, DirSuffix appended for directories
	Path      string // absolute path
	IsDir     bool   // resolved through symlinks at listing time
	IsSymlink bool
}

// BaseName returns the display name without the directory suffix.
func (e Entry) BaseName() string {
	if e.IsDir {
		return strings.TrimSuffix(e.Name, DirSuffix)
	}
	return e.Name
}

// IsHidden reports whether the entry should be rendered as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Path, e.BaseName())
}
