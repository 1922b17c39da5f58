package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/justlaunchdoom/jld/internal/scanner"
	"github.com/spf13/afero"
)

// ErrNotCached is returned when no scan result exists for a directory list
var ErrNotCached = errors.New("no cached scan result")

// ScanResult represents the cached results of a pwad scan
type ScanResult struct {
	Directories []string           `json:"directories"`
	ScannedAt   time.Time          `json:"scanned_at"`
	Count       int                `json:"count"`
	Files       []scanner.PwadFile `json:"files"`
}

// Cache manages scan result caching
type Cache struct {
	fs       afero.Fs
	cacheDir string
}

// New creates a cache in the user's cache directory
func New(fs afero.Fs) (*Cache, error) {
	return NewAt(fs, DefaultDir())
}

// NewAt creates a cache rooted at dir
func NewAt(fs afero.Fs, dir string) (*Cache, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{fs: fs, cacheDir: dir}, nil
}

// DefaultDir returns the platform-appropriate cache directory
func DefaultDir() string {
	return filepath.Join(xdg.CacheHome, "jld")
}

// Save stores the files found by scanning directories
func (c *Cache) Save(directories []string, files []scanner.PwadFile) error {
	result := ScanResult{
		Directories: directories,
		ScannedAt:   time.Now(),
		Count:       len(files),
		Files:       files,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan result: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.FilePath(directories), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Load returns the cached scan of directories, or ErrNotCached
func (c *Cache) Load(directories []string) (*ScanResult, error) {
	data, err := afero.ReadFile(c.fs, c.FilePath(directories))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var result ScanResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache file: %w", err)
	}
	return &result, nil
}

// Has reports whether a scan of directories is cached
func (c *Cache) Has(directories []string) bool {
	ok, err := afero.Exists(c.fs, c.FilePath(directories))
	return err == nil && ok
}

// FilePath returns the cache file for a directory list. The order of the
// list is part of the key since scan output follows it.
func (c *Cache) FilePath(directories []string) string {
	hash := sha256.Sum256([]byte(strings.Join(directories, "\n")))
	hashStr := hex.EncodeToString(hash[:])
	return filepath.Join(c.cacheDir, fmt.Sprintf("scan_%s.json", hashStr[:16]))
}

// Dir returns the cache directory path
func (c *Cache) Dir() string {
	return c.cacheDir
}

// Clear removes all cached scan results
func (c *Cache) Clear() error {
	entries, err := afero.ReadDir(c.fs, c.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			filePath := filepath.Join(c.cacheDir, entry.Name())
			if err := c.fs.Remove(filePath); err != nil {
				return fmt.Errorf("failed to remove cache file %s: %w", filePath, err)
			}
		}
	}
	return nil
}
