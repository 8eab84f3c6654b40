//go:build windows

package fs

import (
	"os"
	"syscall"
)

const fileAttributeHidden = 0x02

// getFileAttributes resolves Windows file attributes for fullPath, retrying
// with the bare name when the full path no longer exists.
func getFileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err == nil {
		return attrs, nil
	}
	if !os.IsNotExist(err) || fullPath == "" || fullPath == name {
		return 0, err
	}

	alt, convErr := syscall.UTF16PtrFromString(name)
	if convErr != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(alt)
}
