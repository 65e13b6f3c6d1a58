// ABOUTME: File-backed Store keeping one file per key in the XDG config directory
// ABOUTME: Credential data lands here, so files are 0600 and the directory 0700

package storage

import (
	"os"
	"path/filepath"
)

// FileStore persists each key as a small file under a config directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first write, so a read-only environment can still Read.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultConfigDir returns the config directory following the XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "skillserve")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "skillserve")
}

// Dir returns the directory backing the store.
func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key)
}

// Read returns the value for key, or ErrNotFound if it was never written.
func (fs *FileStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write stores value under key, creating the config directory if needed.
func (fs *FileStore) Write(key string, value []byte) error {
	if err := os.MkdirAll(fs.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(fs.path(key), value, 0600)
}

// Delete removes the value for key. Deleting an absent key is not an error.
func (fs *FileStore) Delete(key string) error {
	err := os.Remove(fs.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
