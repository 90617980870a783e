//go:build !windows

package hook

import (
	"github.com/google/renameio/v2"
)

// writeMessage replaces the file atomically, keeping the mode git gave it.
func writeMessage(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644, renameio.WithExistingPermissions())
}
