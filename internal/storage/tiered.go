package storage

import (
	"context"
	"log"

	"github.com/jodavila/long-journey/internal/models"
)

// Tiered layers a primary store over a secondary local fallback. Reads try
// the primary, then the secondary, then give up and return the default empty
// document. Writes go to the primary; when that fails the document is written
// to the secondary instead, and the caller never sees an error either way.
// In-memory state is favored over write durability.
type Tiered struct {
	primary   DocumentStore
	secondary DocumentStore
}

// NewTiered builds a two-tier store. secondary may be nil, in which case
// there is no fallback beyond the default document.
func NewTiered(primary, secondary DocumentStore) *Tiered {
	return &Tiered{primary: primary, secondary: secondary}
}

// Load never fails: any unreachable tier is logged and skipped.
func (t *Tiered) Load(ctx context.Context) (*models.JournalDocument, error) {
	doc, err := t.primary.Load(ctx)
	if err == nil {
		return doc, nil
	}
	log.Printf("⚠️  Primary store load failed: %v", err)

	if t.secondary != nil {
		doc, err = t.secondary.Load(ctx)
		if err == nil {
			log.Println("Loaded journal document from local fallback store")
			return doc, nil
		}
		log.Printf("⚠️  Fallback store load failed: %v", err)
	}

	return models.DefaultDocument(), nil
}

// Save is best-effort and never returns an error; failures are logged.
func (t *Tiered) Save(ctx context.Context, doc *models.JournalDocument) error {
	err := t.primary.Save(ctx, doc)
	if err == nil {
		return nil
	}
	log.Printf("⚠️  Primary store save failed: %v", err)

	if t.secondary != nil {
		if err := t.secondary.Save(ctx, doc); err != nil {
			log.Printf("⚠️  Fallback store save failed: %v", err)
		} else {
			log.Println("Saved journal document to local fallback store")
		}
	}
	return nil
}

// Close closes both tiers, returning the first error seen.
func (t *Tiered) Close() error {
	err := t.primary.Close()
	if t.secondary != nil {
		if cerr := t.secondary.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
