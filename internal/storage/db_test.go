package storage

import (
	"path/filepath"
	"testing"
)

func TestOpen_InitializesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'attempts'`).Scan(&name)
	if err != nil {
		t.Fatalf("attempts table missing: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Re-opening an existing database must not fail on the schema.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	db.Close()
}
