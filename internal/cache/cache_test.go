package cache

import (
	"testing"
)

func TestLoadMissing(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing cache")
	}
	if db.Entries == nil {
		t.Fatal("Load must always return usable Entries")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := DB{Entries: map[string]string{"a.txt": "00ff00ff00ff00ff"}}
	if err := Save(dir, db); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Entries["a.txt"] != "00ff00ff00ff00ff" {
		t.Fatalf("entries = %#v", got.Entries)
	}
}

func TestSaveNilEntries(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error saving nil entries")
	}
}
