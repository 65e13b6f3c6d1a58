// ABOUTME: Manages the recent document paths list for the TUI document picker
// ABOUTME: Persists paths through the same storage the session uses

package recentfiles

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

// MaxRecentFiles is the maximum number of recent documents to keep
const MaxRecentFiles = 5

// storageKey is where the list lives in the persisted storage
const storageKey = "recent_documents"

// RecentFiles manages the list of recently uploaded document paths
type RecentFiles struct {
	store storage.Store
	files []string
}

type recentData struct {
	Files []string `json:"files"`
}

// New creates a new RecentFiles manager backed by the given storage
func New(store storage.Store) *RecentFiles {
	return &RecentFiles{
		store: store,
		files: nil,
	}
}

// Load reads the recent documents list from storage
// Filters out files that no longer exist
func (rf *RecentFiles) Load() ([]string, error) {
	data, err := rf.store.Read(storageKey)
	if errors.Is(err, storage.ErrNotFound) {
		rf.files = []string{}
		return rf.files, nil
	}
	if err != nil {
		return nil, err
	}

	var recent recentData
	if err := json.Unmarshal(data, &recent); err != nil {
		// Invalid JSON, start fresh
		rf.files = []string{}
		return rf.files, nil
	}

	// Filter out files that no longer exist
	rf.files = make([]string, 0, len(recent.Files))
	for _, path := range recent.Files {
		if _, err := os.Stat(path); err == nil {
			rf.files = append(rf.files, path)
		}
	}

	return rf.files, nil
}

// Save writes the recent documents list to storage
func (rf *RecentFiles) Save(files []string) error {
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}

	rf.files = files

	data, err := json.Marshal(recentData{Files: files})
	if err != nil {
		return err
	}

	return rf.store.Write(storageKey, data)
}

// Add adds a document path to the recent list (moves to front if exists)
func (rf *RecentFiles) Add(path string) error {
	if rf.files == nil {
		if _, err := rf.Load(); err != nil {
			rf.files = []string{}
		}
	}

	newFiles := make([]string, 0, len(rf.files)+1)
	newFiles = append(newFiles, path)
	for _, f := range rf.files {
		if f != path {
			newFiles = append(newFiles, f)
		}
	}

	return rf.Save(newFiles)
}

// List returns the current list of recent documents
func (rf *RecentFiles) List() []string {
	if rf.files == nil {
		rf.Load()
	}
	return rf.files
}
