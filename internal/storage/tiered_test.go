package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jodavila/long-journey/internal/models"
)

// fakeStore is a scriptable DocumentStore for exercising the fallback order.
type fakeStore struct {
	doc      *models.JournalDocument
	loadErr  error
	saveErr  error
	saves    int
	closed   bool
}

func (f *fakeStore) Load(ctx context.Context) (*models.JournalDocument, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.doc == nil {
		return models.DefaultDocument(), nil
	}
	return f.doc.Clone(), nil
}

func (f *fakeStore) Save(ctx context.Context, doc *models.JournalDocument) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.doc = doc.Clone()
	return nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

func docWithPoints(points int) *models.JournalDocument {
	doc := models.DefaultDocument()
	doc.Stats.TotalPoints = points
	return doc
}

func TestTieredLoadPrefersPrimary(t *testing.T) {
	primary := &fakeStore{doc: docWithPoints(10)}
	secondary := &fakeStore{doc: docWithPoints(20)}

	doc, err := NewTiered(primary, secondary).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, doc.Stats.TotalPoints)
}

func TestTieredLoadFallsBackToSecondary(t *testing.T) {
	primary := &fakeStore{loadErr: errors.New("connection refused")}
	secondary := &fakeStore{doc: docWithPoints(20)}

	doc, err := NewTiered(primary, secondary).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, doc.Stats.TotalPoints)
}

func TestTieredLoadDefaultsWhenBothFail(t *testing.T) {
	primary := &fakeStore{loadErr: errors.New("connection refused")}
	secondary := &fakeStore{loadErr: errors.New("disk error")}

	doc, err := NewTiered(primary, secondary).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDocument(), doc)
}

func TestTieredLoadDefaultsWithoutSecondary(t *testing.T) {
	primary := &fakeStore{loadErr: errors.New("connection refused")}

	doc, err := NewTiered(primary, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDocument(), doc)
}

func TestTieredSaveWritesPrimary(t *testing.T) {
	primary := &fakeStore{}
	secondary := &fakeStore{}

	require.NoError(t, NewTiered(primary, secondary).Save(context.Background(), docWithPoints(5)))
	assert.Equal(t, 1, primary.saves)
	assert.Equal(t, 0, secondary.saves)
}

func TestTieredSaveFallsBackToSecondary(t *testing.T) {
	primary := &fakeStore{saveErr: errors.New("connection refused")}
	secondary := &fakeStore{}

	require.NoError(t, NewTiered(primary, secondary).Save(context.Background(), docWithPoints(5)))
	assert.Equal(t, 1, secondary.saves)
	assert.Equal(t, 5, secondary.doc.Stats.TotalPoints)
}

func TestTieredSaveNeverErrors(t *testing.T) {
	primary := &fakeStore{saveErr: errors.New("connection refused")}
	secondary := &fakeStore{saveErr: errors.New("disk full")}

	assert.NoError(t, NewTiered(primary, secondary).Save(context.Background(), docWithPoints(5)))
	assert.NoError(t, NewTiered(primary, nil).Save(context.Background(), docWithPoints(5)))
}

func TestTieredCloseClosesBothTiers(t *testing.T) {
	primary := &fakeStore{}
	secondary := &fakeStore{}

	require.NoError(t, NewTiered(primary, secondary).Close())
	assert.True(t, primary.closed)
	assert.True(t, secondary.closed)
}
