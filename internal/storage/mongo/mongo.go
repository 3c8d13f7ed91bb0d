// Package mongo stores the journal document as a single MongoDB document.
package mongo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jodavila/long-journey/internal/models"
)

const (
	defaultDatabase = "longjourney"
	collectionName  = "journal"
	documentKey     = "journal-document"
)

// Store persists the journal document in MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// record is the stored shape: the aggregate nested under one well-known _id.
type record struct {
	ID        string                 `bson:"_id"`
	Doc       models.JournalDocument `bson:"doc"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

// Connect connects with Atlas-friendly timeouts and pings before returning.
func Connect(mongoURI string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return &Store{
		client: client,
		coll:   client.Database(databaseName(mongoURI)).Collection(collectionName),
	}, nil
}

// databaseName extracts the database from the URI path, defaulting to
// "longjourney" when the URI does not name one.
func databaseName(mongoURI string) string {
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		name := strings.Split(parts[len(parts)-1], "?")[0]
		if name != "" {
			return name
		}
	}
	return defaultDatabase
}

// Load returns the stored document, or the default empty document when
// nothing has been stored yet.
func (s *Store) Load(ctx context.Context) (*models.JournalDocument, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": documentKey}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal document: %w", err)
	}

	doc := rec.Doc
	doc.Normalize()
	return &doc, nil
}

// Save upserts the single stored document.
func (s *Store) Save(ctx context.Context, doc *models.JournalDocument) error {
	rec := record{ID: documentKey, Doc: *doc, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": documentKey}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save journal document: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
