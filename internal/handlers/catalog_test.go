package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"talkcoach/internal/catalog"
)

func TestList_ReturnsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")
	content := "title,url\nIntro,https://youtu.be/abc\nVowels,https://youtu.be/def\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	h := NewCatalogHandler(path, catalog.NewImporter())

	req := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var entries []catalog.VideoEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
}

func TestImport_WithExplicitTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")
	h := NewCatalogHandler(path, catalog.NewImporter())

	body := strings.NewReader(`{"url":"https://example.com/v","title":"Lesson One"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/videos", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Import(c); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	entries, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Lesson One" {
		t.Errorf("Unexpected catalog after import: %+v", entries)
	}
}

func TestImport_RequiresURL(t *testing.T) {
	h := NewCatalogHandler(filepath.Join(t.TempDir(), "videos.csv"), catalog.NewImporter())

	body := strings.NewReader(`{"title":"No URL"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/videos", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Import(c); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
