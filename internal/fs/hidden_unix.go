//go:build !windows

package fs

import "strings"

// IsHidden reports dotfiles. They are listed like any other entry and only
// drawn dimmed.
func IsHidden(_ string, name string) bool {
	return strings.HasPrefix(name, ".")
}
