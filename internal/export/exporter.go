// Package export writes finished entries to the output directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Exporter saves entry text as .txt files with unique names. A failed
// save affects only that entry; the caller decides whether to continue
// a batch.
type Exporter struct {
	dir    string
	prefix string
}

// New creates an exporter, making sure the output directory exists.
func New(dir, prefix string) (*Exporter, error) {
	if prefix == "" {
		prefix = "journal"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Exporter{dir: dir, prefix: prefix}, nil
}

// Save writes the entry and returns the file path. Empty text is
// refused rather than leaving empty files around.
func (e *Exporter) Save(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("refusing to save empty entry")
	}
	path := filepath.Join(e.dir, e.filename(time.Now()))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to save entry: %w", err)
	}
	return path, nil
}

// filename combines a second-resolution timestamp with a short random
// suffix so entries saved in the same second never collide.
func (e *Exporter) filename(now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.txt",
		e.prefix, now.Format("20060102_150405"), uuid.NewString()[:8])
}
