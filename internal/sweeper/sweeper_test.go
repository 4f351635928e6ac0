package sweeper

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSweep_RemovesOldUploads(t *testing.T) {
	uploadDir := t.TempDir()

	oldDir := filepath.Join(uploadDir, "old-upload")
	freshDir := filepath.Join(uploadDir, "fresh-upload")
	for _, dir := range []string{oldDir, freshDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "clip.wav"), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}

	past := time.Now().Add(-100 * time.Hour)
	if err := os.Chtimes(oldDir, past, past); err != nil {
		t.Fatalf("Failed to age directory: %v", err)
	}

	s := New(uploadDir, nil, 72*time.Hour, time.Minute)
	if err := s.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if _, err := os.Stat(oldDir); !os.IsNotExist(err) {
		t.Error("Expected old upload to be removed")
	}
	if _, err := os.Stat(freshDir); err != nil {
		t.Errorf("Expected fresh upload to survive: %v", err)
	}
}

func TestSweep_MissingUploadDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"), nil, time.Hour, time.Minute)
	if err := s.Sweep(context.Background()); err != nil {
		t.Errorf("Expected missing upload dir to be a no-op, got %v", err)
	}
}

func TestStartStop(t *testing.T) {
	s := New(t.TempDir(), nil, time.Hour, 10*time.Millisecond)
	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop() // must not hang or panic
}
