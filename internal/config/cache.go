package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultCacheTTL = 30 * 24 * time.Hour

type CachedConfig struct {
	Hash      string          `json:"hash"`
	Source    string          `json:"source"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
}

// Cache stores evaluated script configs keyed by the hash of their source.
type Cache struct {
	cacheDir string
	ttl      time.Duration
}

func NewCache(cacheDir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}

	cache := &Cache{
		cacheDir: cacheDir,
		ttl:      ttl,
	}

	_ = cache.CleanExpired()

	return cache, nil
}

// FindCacheDir returns node_modules/.cache/devmoji under the nearest
// node_modules directory above the config file.
func FindCacheDir(configPath string) (string, bool) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", false
	}

	cur := filepath.Dir(abs)
	for {
		nm := filepath.Join(cur, "node_modules")
		if info, err := os.Stat(nm); err == nil && info.IsDir() {
			return filepath.Join(nm, ".cache", "devmoji"), true
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", false
		}
		cur = parent
	}
}

// GenerateHash returns the SHA256 of content
func (c *Cache) GenerateHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Get returns the cached config for hash
func (c *Cache) Get(hash string) (json.RawMessage, bool, error) {
	filePath := filepath.Join(c.cacheDir, hash+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error reading cache: %w", err)
	}

	var cached CachedConfig
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("error decoding cache: %w", err)
	}

	if cached.Hash != hash {
		return nil, false, nil
	}

	if time.Since(cached.CreatedAt) > c.ttl {
		_ = os.Remove(filePath)
		return nil, false, nil
	}

	return cached.Config, true, nil
}

// Set stores an evaluated config under hash
func (c *Cache) Set(hash, source string, config json.RawMessage) error {
	cached := CachedConfig{
		Hash:      hash,
		Source:    source,
		Config:    config,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding cache: %w", err)
	}

	filePath := filepath.Join(c.cacheDir, hash+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}

	return nil
}

// CleanExpired removes expired cache files
func (c *Cache) CleanExpired() error {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return fmt.Errorf("error reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		filePath := filepath.Join(c.cacheDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) > c.ttl {
			_ = os.Remove(filePath)
		}
	}

	return nil
}
