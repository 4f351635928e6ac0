package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	return path
}

func TestLoad_SkipsHeader(t *testing.T) {
	path := writeCatalog(t, "title,url\nIntro,https://youtu.be/abc\nVowels,https://youtu.be/def\nStress,https://youtu.be/ghi\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// 4 rows including header -> 3 entries
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Title != "Intro" || entries[0].URL != "https://youtu.be/abc" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCatalog(t, "title,url\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestLoad_IgnoresShortRows(t *testing.T) {
	path := writeCatalog(t, "title,url\nonlytitle\nOk,https://example.com/v\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Ok" {
		t.Errorf("Unexpected entry: %+v", entries[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")

	if err := Append(path, VideoEntry{Title: "Intro", URL: "https://youtu.be/abc"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := Append(path, VideoEntry{Title: "Vowels", URL: "https://youtu.be/def"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Title != "Vowels" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestAppend_NoTrailingNewline(t *testing.T) {
	path := writeCatalog(t, "title,url\nIntro,https://youtu.be/abc")

	if err := Append(path, VideoEntry{Title: "Vowels", URL: "https://youtu.be/def"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].URL != "https://youtu.be/abc" {
		t.Errorf("Existing entry corrupted: %+v", entries[0])
	}
	if entries[1].Title != "Vowels" || entries[1].URL != "https://youtu.be/def" {
		t.Errorf("Unexpected appended entry: %+v", entries[1])
	}
}

func TestAppend_RejectsEmptyURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")
	if err := Append(path, VideoEntry{Title: "No URL"}); err == nil {
		t.Error("Expected error for empty URL")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"simple", "<html><head><title>A Lesson</title></head></html>", "A Lesson"},
		{"attributes", `<title data-x="1">  Spaced  </title>`, "Spaced"},
		{"missing", "<html><body>nothing</body></html>", ""},
		{"multiline", "<title>\nLine\n</title>", "Line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.html); got != tt.want {
				t.Errorf("extractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	if !isYouTubeURL("https://www.youtube.com/watch?v=abc") {
		t.Error("Expected youtube.com URL to be detected")
	}
	if !isYouTubeURL("https://youtu.be/abc") {
		t.Error("Expected youtu.be URL to be detected")
	}
	if isYouTubeURL("https://example.com/video") {
		t.Error("Did not expect example.com to be detected")
	}
}
