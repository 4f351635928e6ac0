package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"talkcoach/internal/catalog"
	"talkcoach/web/components"
)

// CatalogHandler handles the learn page and the video catalog API.
type CatalogHandler struct {
	csvPath  string
	importer *catalog.Importer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(csvPath string, importer *catalog.Importer) *CatalogHandler {
	return &CatalogHandler{csvPath: csvPath, importer: importer}
}

// Home renders the learn page with the video list.
// GET /
func (h *CatalogHandler) Home(c echo.Context) error {
	entries, err := catalog.Load(h.csvPath)
	if err != nil {
		// a missing catalog renders an empty list rather than a 500
		entries = nil
	}
	return render(c, components.Learn(entries))
}

// List returns the video catalog as JSON.
// GET /api/videos
func (h *CatalogHandler) List(c echo.Context) error {
	entries, err := catalog.Load(h.csvPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if entries == nil {
		entries = []catalog.VideoEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// ImportRequest is the request body for adding a catalog entry.
type ImportRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Import resolves a video URL to a title if needed and appends the
// entry to the catalog CSV.
// POST /api/videos
func (h *CatalogHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}

	title := req.Title
	if title == "" {
		resolved, err := h.importer.ResolveTitle(ctx, req.URL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to resolve title: " + err.Error()})
		}
		title = resolved
	}

	entry := catalog.VideoEntry{Title: title, URL: req.URL}
	if err := catalog.Append(h.csvPath, entry); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, entry)
}
