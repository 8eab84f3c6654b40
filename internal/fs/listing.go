package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// statFn is overridable in tests.
var statFn = os.Stat

// ReadDirectory lists dirPath sorted by display name, byte-wise ascending.
// Entries whose type cannot be determined are kept as plain files.
func ReadDirectory(dirPath string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)

		isSymlink := e.Type()&os.ModeSymlink != 0
		isDir := e.IsDir()
		if isSymlink {
			if info, err := statFn(fullPath); err == nil {
				isDir = info.IsDir()
			}
		}

		name := norm.NFC.String(rawName)
		if isDir {
			name += DirSuffix
		}

		entries = append(entries, Entry{
			Name:      name,
			Path:      fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
		})
	}

	SortEntries(entries)
	return entries, nil
}

// ListDirectory is ReadDirectory with read failures collapsed into an empty
// listing. Permission errors and vanished paths are routine while browsing.
func ListDirectory(dirPath string) []Entry {
	entries, err := ReadDirectory(dirPath)
	if err != nil {
		return []Entry{}
	}
	return entries
}

// SortEntries orders entries by display name using plain byte comparison, so
// uppercase names sort before lowercase ones.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// IndexOfPath returns the index of the entry whose Path equals path, or -1.
func IndexOfPath(entries []Entry, path string) int {
	path = filepath.Clean(path)
	for i, e := range entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}
