package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"talkcoach/internal/analysis"
	"talkcoach/internal/audio"
	"talkcoach/internal/feedback"
	"talkcoach/internal/storage"
	"talkcoach/web/components"
)

// PracticeHandler handles the practice page and its upload endpoint.
type PracticeHandler struct {
	uploadDir   string
	analyzer    analysis.Analyzer
	mapper      *feedback.Mapper
	attemptRepo *storage.AttemptRepository
}

// NewPracticeHandler creates a new PracticeHandler. attemptRepo may be
// nil to disable history.
func NewPracticeHandler(
	uploadDir string,
	analyzer analysis.Analyzer,
	mapper *feedback.Mapper,
	attemptRepo *storage.AttemptRepository,
) *PracticeHandler {
	return &PracticeHandler{
		uploadDir:   uploadDir,
		analyzer:    analyzer,
		mapper:      mapper,
		attemptRepo: attemptRepo,
	}
}

// Page renders the practice page.
// GET /practice
func (h *PracticeHandler) Page(c echo.Context) error {
	return render(c, components.Practice())
}

// PracticeResponse is the JSON body returned for a practice upload.
type PracticeResponse struct {
	Metadata analysis.Metadata `json:"metadata"`
	Feedback string            `json:"feedback"`
}

// Upload accepts an audio clip, analyzes it and returns the metadata
// mapping with derived feedback.
// POST /api/practice
func (h *PracticeHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file uploaded"})
	}

	contentType := fh.Header.Get("Content-Type")
	if !audio.IsAllowedContentType(contentType) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("unsupported content type: %s (expected audio/wav or audio/mpeg)", contentType),
		})
	}

	// Save the upload under its own directory
	id := uuid.New().String()
	dir := filepath.Join(h.uploadDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create upload directory"})
	}

	filename := filepath.Base(fh.Filename)
	destPath := filepath.Join(dir, filename)
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to open file"})
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save file"})
	}
	_, err = io.Copy(dest, src)
	dest.Close()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save file"})
	}

	// Normalize to 16kHz mono WAV for the model
	wavPath := filepath.Join(dir, "normalized.wav")
	if err := audio.Normalize(destPath, wavPath); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to normalize audio: " + err.Error()})
	}

	metadata, err := h.analyzer.Analyze(ctx, wavPath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "analysis failed: " + err.Error()})
	}

	fb := h.mapper.Feedback(metadata)

	if h.attemptRepo != nil {
		metadataJSON, _ := json.Marshal(metadata)
		attempt := &storage.Attempt{
			ID:       id,
			Filename: filename,
			AudioDir: dir,
			Metadata: string(metadataJSON),
			Feedback: fb,
		}
		if err := h.attemptRepo.Create(ctx, attempt); err != nil {
			// history is best effort; the response is complete without it
			c.Logger().Errorf("failed to save attempt: %v", err)
		}
	}

	return c.JSON(http.StatusOK, PracticeResponse{Metadata: metadata, Feedback: fb})
}

// Attempts returns recent practice attempts.
// GET /api/attempts
func (h *PracticeHandler) Attempts(c echo.Context) error {
	if h.attemptRepo == nil {
		return c.JSON(http.StatusOK, []storage.Attempt{})
	}

	attempts, err := h.attemptRepo.ListRecent(c.Request().Context(), 50)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if attempts == nil {
		attempts = []storage.Attempt{}
	}
	return c.JSON(http.StatusOK, attempts)
}

// AttemptsPage renders the attempt history page.
// GET /attempts
func (h *PracticeHandler) AttemptsPage(c echo.Context) error {
	var views []components.AttemptView
	if h.attemptRepo != nil {
		attempts, err := h.attemptRepo.ListRecent(c.Request().Context(), 50)
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		for _, a := range attempts {
			var md analysis.Metadata
			_ = json.Unmarshal([]byte(a.Metadata), &md)
			views = append(views, components.AttemptView{
				Filename:   a.Filename,
				Transcript: md.Get(analysis.KeyTranscript),
				Feedback:   a.Feedback,
				CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}
	return render(c, components.Attempts(views))
}
