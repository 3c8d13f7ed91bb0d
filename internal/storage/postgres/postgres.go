// Package postgres stores the journal document in a single-row JSONB table.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/jodavila/long-journey/internal/models"
)

// The document is a single aggregate, so the table holds exactly one row.
const schema = `CREATE TABLE IF NOT EXISTS journal_documents (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	doc JSONB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

// Store persists the journal document in PostgreSQL.
type Store struct {
	db *sql.DB
}

// Connect opens the connection pool, verifies it, and ensures the table
// exists.
func Connect(postgresURI string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal_documents table: %w", err)
	}

	log.Println("✅ Connected to PostgreSQL")
	return &Store{db: db}, nil
}

// Load returns the stored document, or the default empty document when the
// row does not exist yet.
func (s *Store) Load(ctx context.Context) (*models.JournalDocument, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM journal_documents WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal document: %w", err)
	}

	doc, err := models.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored journal document: %w", err)
	}
	return doc, nil
}

// Save upserts the single document row.
func (s *Store) Save(ctx context.Context, doc *models.JournalDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode journal document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO journal_documents (id, doc, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, data)
	if err != nil {
		return fmt.Errorf("failed to save journal document: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
