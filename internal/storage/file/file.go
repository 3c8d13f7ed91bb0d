// Package file stores the journal document as a pretty-printed JSON file on
// local disk. It is the zero-configuration default backend and the local
// fallback tier behind the database backends.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jodavila/long-journey/internal/models"
)

// Store reads and writes one JSON document at a fixed path.
type Store struct {
	path string
}

// New creates the parent directory if needed and returns a file store for
// the given path.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Load returns the stored document, or the default empty document when the
// file does not exist yet.
func (s *Store) Load(ctx context.Context) (*models.JournalDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	doc, err := models.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

// Save writes the document pretty-printed, the same format the export
// download uses, so the data file stays hand-readable.
func (s *Store) Save(ctx context.Context, doc *models.JournalDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode journal document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}
