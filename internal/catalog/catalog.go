package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// VideoEntry is one row of the video catalog.
type VideoEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Load reads the catalog CSV. The first row is a header and is
// skipped; rows with fewer than two columns are ignored. The file is
// read on every call so edits show up without a restart.
func Load(path string) ([]VideoEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	var entries []VideoEntry
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(record) < 2 {
			continue
		}
		entries = append(entries, VideoEntry{Title: record[0], URL: record[1]})
	}

	return entries, nil
}

// Append adds an entry to the catalog CSV, creating the file with a
// header row if it does not exist yet.
func Append(path string, entry VideoEntry) error {
	if entry.URL == "" {
		return fmt.Errorf("entry has no URL")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat catalog: %w", err)
	}
	if info.Size() > 0 {
		// A file missing its trailing newline would merge the new
		// record into the last row.
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
		if last[0] != '\n' {
			if _, err := f.WriteAt([]byte("\n"), info.Size()); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}
		}
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek catalog: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write([]string{"title", "url"}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := w.Write([]string{entry.Title, entry.URL}); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	w.Flush()
	return w.Error()
}
