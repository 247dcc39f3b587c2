// Package cache persists per-path content digests between batch runs so
// unchanged files can be skipped in incremental mode.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DB maps relative paths to xxhash64 content digests (hex).
type DB struct {
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	// prefer .git so the cache never gets committed by accident
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "bytesiftcache.json")
	}
	return filepath.Join(root, ".bytesiftcache.json")
}

// Load reads the cache for root; a missing or corrupt cache yields an empty
// DB along with the error.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

// Save writes the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}
