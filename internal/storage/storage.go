package storage

import (
	"context"

	"github.com/jodavila/long-journey/internal/models"
)

// DocumentStore is the persistence contract for the journal document: one
// aggregate in, one aggregate out.
//
// Load returns the default empty document (not an error) when nothing has
// been stored yet; an error means the store itself is unreachable or the
// stored data is unreadable. Save overwrites whatever was stored before.
type DocumentStore interface {
	Load(ctx context.Context) (*models.JournalDocument, error)
	Save(ctx context.Context, doc *models.JournalDocument) error
	Close() error
}
