// Package rediscache decorates a DocumentStore with a Redis read-through
// cache, so repeated loads skip the durable backend.
package rediscache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jodavila/long-journey/internal/models"
	"github.com/jodavila/long-journey/internal/storage"
)

const (
	// cacheKey is the single Redis key holding the cached document.
	cacheKey = "cache:journal:document"
	// DefaultTTL bounds how stale the cache can get if invalidation is missed.
	DefaultTTL = 8 * time.Hour
)

// Store wraps an inner DocumentStore with a Redis cache. Cache faults are
// never fatal: a miss or a failed cache write just falls through to the
// inner store.
type Store struct {
	inner  storage.DocumentStore
	client *redis.Client
	ttl    time.Duration
}

// Wrap connects to Redis and returns the caching decorator. The inner store
// stays the source of truth.
func Wrap(inner storage.DocumentStore, redisURI string) (*Store, error) {
	opt, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 5
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	log.Println("✅ Connected to Redis")
	return &Store{inner: inner, client: client, ttl: DefaultTTL}, nil
}

// Load serves from cache when possible, otherwise loads from the inner store
// and fills the cache best-effort.
func (s *Store) Load(ctx context.Context) (*models.JournalDocument, error) {
	if data, err := s.client.Get(ctx, cacheKey).Bytes(); err == nil {
		var doc models.JournalDocument
		if err := json.Unmarshal(data, &doc); err == nil {
			doc.Normalize()
			return &doc, nil
		}
		// Unreadable cache entry; fall through to the inner store.
		s.client.Del(ctx, cacheKey)
	}

	doc, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, doc)
	return doc, nil
}

// Save writes through to the inner store first; the cache is only refreshed
// after a durable write succeeds.
func (s *Store) Save(ctx context.Context, doc *models.JournalDocument) error {
	if err := s.inner.Save(ctx, doc); err != nil {
		return err
	}
	s.fill(ctx, doc)
	return nil
}

func (s *Store) fill(ctx context.Context, doc *models.JournalDocument) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, cacheKey, data, s.ttl).Err(); err != nil {
		log.Printf("⚠️  Failed to cache journal document: %v", err)
	}
}

// Close closes the Redis client and the inner store.
func (s *Store) Close() error {
	err := s.client.Close()
	if cerr := s.inner.Close(); err == nil {
		err = cerr
	}
	return err
}
