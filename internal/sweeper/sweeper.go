package sweeper

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"talkcoach/internal/storage"
)

// Sweeper deletes uploaded audio and attempt rows older than the
// retention window. There is no other cleanup path: uploads would
// otherwise accumulate forever.
type Sweeper struct {
	uploadDir   string
	attemptRepo *storage.AttemptRepository
	retention   time.Duration
	interval    time.Duration
	stop        chan struct{}
	wg          sync.WaitGroup
}

// New creates a Sweeper. attemptRepo may be nil when the server runs
// without a database; only files are swept then.
func New(uploadDir string, attemptRepo *storage.AttemptRepository, retention, interval time.Duration) *Sweeper {
	return &Sweeper{
		uploadDir:   uploadDir,
		attemptRepo: attemptRepo,
		retention:   retention,
		interval:    interval,
		stop:        make(chan struct{}),
	}
}

// Start begins sweeping in the background.
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
	log.Println("Sweeper started")
}

// Stop gracefully stops the sweeper.
func (s *Sweeper) Stop() {
	close(s.stop)
	s.wg.Wait()
	log.Println("Sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Printf("Sweep error: %v", err)
			}
		}
	}
}

// Sweep runs one retention pass.
func (s *Sweeper) Sweep(ctx context.Context) error {
	cutoff := time.Now().Add(-s.retention)

	removed, err := s.sweepUploads(cutoff)
	if err != nil {
		return err
	}

	if s.attemptRepo != nil {
		dirs, err := s.attemptRepo.CleanupOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		for _, dir := range dirs {
			if err := os.RemoveAll(dir); err != nil {
				log.Printf("Failed to remove %s: %v", dir, err)
			}
		}
		removed += len(dirs)
	}

	if removed > 0 {
		log.Printf("Sweep removed %d expired entries", removed)
	}
	return nil
}

// sweepUploads removes upload directories whose modification time is
// before the cutoff.
func (s *Sweeper) sweepUploads(cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.uploadDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("Failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}
	return removed, nil
}
