package config

import (
	"os"
	"path/filepath"
)

const baseName = "devmoji.config"

// Extensions lists the supported config formats in discovery priority order.
var Extensions = []string{".json", ".js", ".mjs", ".ts", ".mts", ".toml", ".yaml", ".yml"}

// FileNames returns the candidate config file names in priority order.
func FileNames() []string {
	names := make([]string, len(Extensions))
	for i, ext := range Extensions {
		names[i] = baseName + ext
	}
	return names
}

// FindConfig searches startDir and then each ancestor directory for a config
// file. The first candidate found at the nearest level wins.
func FindConfig(startDir string) (string, bool, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}

	// If a file path is passed, start from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	names := FileNames()
	cur := filepath.Clean(abs)
	for {
		for _, name := range names {
			candidate := filepath.Join(cur, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", false, nil
		}
		cur = parent
	}
}
