package utils

import (
	"os"
	"runtime"
)

// IsPermissive reports whether path is readable or writable by anyone
// other than its owner. Always false on Windows.
func IsPermissive(path string) (os.FileMode, bool) {
	info, err := os.Stat(path)
	if err != nil || runtime.GOOS == "windows" {
		return 0, false
	}
	perm := info.Mode().Perm()
	return perm, perm&0077 != 0
}
