package util

import (
	"os"
)

const defaultFileMode os.FileMode = 0o644

// WriteFilePreservePerms overwrites path with data, keeping the mode of an
// existing file. New files are created with 0644.
func WriteFilePreservePerms(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
		if mode == 0 {
			mode = defaultFileMode
		}
	}
	return os.WriteFile(path, data, mode)
}
