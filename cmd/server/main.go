package main

import (
	"context"
	"fmt"
	"log"

	"talkcoach/internal/analysis"
	"talkcoach/internal/catalog"
	"talkcoach/internal/config"
	"talkcoach/internal/feedback"
	"talkcoach/internal/handlers"
	"talkcoach/internal/storage"
	"talkcoach/internal/sweeper"
	"talkcoach/internal/version"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cfg := config.Load()

	// Database for attempt history
	db, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	attemptRepo := storage.NewAttemptRepository(db)

	// Speech-analysis model
	analyzer, err := analysis.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	defer analyzer.Close()

	// Feedback phrasing
	phrases := feedback.DefaultPhrases()
	if cfg.FeedbackRulesPath != "" {
		phrases, err = feedback.LoadPhrases(cfg.FeedbackRulesPath)
		if err != nil {
			log.Fatalf("Failed to load feedback rules: %v", err)
		}
	}
	mapper := feedback.NewMapper(phrases)

	importer := catalog.NewImporter()
	defer importer.Close()

	practiceHandler := handlers.NewPracticeHandler(cfg.UploadDir(), analyzer, mapper, attemptRepo)
	catalogHandler := handlers.NewCatalogHandler(cfg.CatalogPath(), importer)

	// Retention sweep for uploaded audio and old attempts
	sw := sweeper.New(cfg.UploadDir(), attemptRepo, cfg.Retention, cfg.SweepInterval)
	sw.Start(context.Background())
	defer sw.Stop()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Pages
	e.GET("/", catalogHandler.Home)
	e.GET("/practice", practiceHandler.Page)
	e.GET("/attempts", practiceHandler.AttemptsPage)

	// API
	e.POST("/api/practice", practiceHandler.Upload)
	e.GET("/api/attempts", practiceHandler.Attempts)
	e.GET("/api/videos", catalogHandler.List)
	e.POST("/api/videos", catalogHandler.Import)

	// The catalog CSV doubles as a frontend asset
	e.GET("/static/videos.csv", func(c echo.Context) error {
		return c.File(cfg.CatalogPath())
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "ok",
			"version": version.Version,
		})
	})

	log.Printf("Starting TalkCoach v%s on port %s", version.Version, cfg.Port)
	if err := e.Start(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
