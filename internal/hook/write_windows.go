//go:build windows

package hook

import (
	"os"
)

// writeMessage rewrites the file in place. git on Windows may hold the
// message file open, so it is not replaced by rename.
func writeMessage(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}
