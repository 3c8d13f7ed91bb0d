package journal

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jodavila/long-journey/internal/models"
	"github.com/jodavila/long-journey/internal/storage"
)

// Display formats matching the document's locale-style strings.
const (
	timeDisplayLayout = "3:04:05 PM"
	dateDisplayLayout = "1/2/2006"
)

// Sink receives a fresh view snapshot after every mutation. Implementations
// must not block; delivery is one-way and best-effort.
type Sink interface {
	Publish(state ViewState)
}

// Store owns the one live JournalDocument for the process. Every mutation
// goes through it and follows the same sequence: mutate, recompute stats,
// persist, notify the sink. Mutations are serialized by a mutex so HTTP
// handlers can call in concurrently while the model stays single-writer.
//
// Persistence is best-effort: a failed save is logged and the in-memory
// document stays authoritative. It is never rolled back.
type Store struct {
	mu           sync.Mutex
	doc          *models.JournalDocument
	docs         storage.DocumentStore
	sink         Sink
	now          func() time.Time
	lastPrayerID int64
}

// NewStore loads the current document from the given store and returns a
// Store ready for mutations. A nil sink disables notifications.
func NewStore(ctx context.Context, docs storage.DocumentStore, sink Sink) (*Store, error) {
	doc, err := docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.DefaultDocument()
	}
	doc.Normalize()
	return &Store{
		doc:  doc,
		docs: docs,
		sink: sink,
		now:  time.Now,
	}, nil
}

// SetActivityFlag sets one of the three daily activity flags for the given
// date, creating the day record if needed. Setting a flag to its current
// value is a no-op in effect but still persists and notifies.
func (s *Store) SetActivityFlag(ctx context.Context, date, activity string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch activity {
	case models.ActivityBibleChapters:
		s.dayRecord(date).BibleChapters = value
	case models.ActivityDailyLesson:
		s.dayRecord(date).DailyLesson = value
	case models.ActivityDevotional:
		s.dayRecord(date).Devotional = value
	default:
		return validationErrorf("unknown activity %q", activity)
	}

	s.finish(ctx)
	return nil
}

// LogChapterReading appends a chapter entry for the given date and forces the
// bibleChapters flag on. The text must be non-empty after trimming.
func (s *Store) LogChapterReading(ctx context.Context, date, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return validationErrorf("chapter text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.dayRecord(date)
	rec.Chapters = append(rec.Chapters, models.ChapterEntry{
		Text: text,
		Time: s.now().Format(timeDisplayLayout),
	})
	rec.BibleChapters = true

	s.finish(ctx)
	return nil
}

// RemoveChapterEntry removes the chapter at index for the given date. When
// the last entry goes, the bibleChapters flag is reset to false.
func (s *Store) RemoveChapterEntry(ctx context.Context, date string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.doc.DailyActivities[date]
	if !ok || rec == nil || index < 0 || index >= len(rec.Chapters) {
		length := 0
		if ok && rec != nil {
			length = len(rec.Chapters)
		}
		return &IndexError{Index: index, Len: length}
	}

	rec.Chapters = append(rec.Chapters[:index], rec.Chapters[index+1:]...)
	if len(rec.Chapters) == 0 {
		rec.BibleChapters = false
	}

	s.finish(ctx)
	return nil
}

// RecordSession logs a prayer or study session at the current time. Points
// depend on the session type and on whether the local hour falls in the
// morning window; they are added to the running total.
func (s *Store) RecordSession(ctx context.Context, sessionType string) (models.Session, error) {
	if sessionType != models.SessionPrayer && sessionType != models.SessionStudy {
		return models.Session{}, validationErrorf("unknown session type %q", sessionType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	isMorning := IsMorningHour(now.Hour())
	session := models.Session{
		Type:      sessionType,
		Date:      now.Format(DateLayout),
		Time:      now.Format(timeDisplayLayout),
		Timestamp: now.UTC().Format(time.RFC3339),
		IsMorning: isMorning,
		Points:    PointsFor(sessionType, isMorning),
	}

	s.doc.Sessions = append(s.doc.Sessions, session)
	s.doc.Stats.TotalPoints += session.Points

	s.finish(ctx)
	return session, nil
}

// AddPrayerRequest appends an unanswered prayer request. Ids are derived from
// the creation instant but bumped past the previous id, so rapid successive
// calls still get unique, strictly increasing ids.
func (s *Store) AddPrayerRequest(ctx context.Context, text string) (models.PrayerRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.PrayerRequest{}, validationErrorf("prayer request text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prayer := models.PrayerRequest{
		ID:        s.nextPrayerID(now),
		Text:      text,
		Date:      now.Format(dateDisplayLayout),
		Timestamp: now.UTC().Format(time.RFC3339),
		Answered:  false,
	}
	s.doc.PrayerList = append(s.doc.PrayerList, prayer)

	s.finish(ctx)
	return prayer, nil
}

// MarkPrayerAnswered transitions a prayer request to answered and records the
// date. Unknown ids and already-answered requests are silent no-ops.
func (s *Store) MarkPrayerAnswered(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.PrayerList {
		p := &s.doc.PrayerList[i]
		if p.ID != id || p.Answered {
			continue
		}
		p.Answered = true
		p.AnsweredDate = s.now().Format(dateDisplayLayout)
		s.finish(ctx)
		return nil
	}
	return nil
}

// DeletePrayerRequest removes the prayer request with the given id, if any.
func (s *Store) DeletePrayerRequest(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.doc.PrayerList {
		if p.ID != id {
			continue
		}
		s.doc.PrayerList = append(s.doc.PrayerList[:i], s.doc.PrayerList[i+1:]...)
		s.finish(ctx)
		return nil
	}
	return nil
}

// ReplaceDocument swaps the whole document, the import path. Only the shape
// is checked: the four top-level fields must be present. Stats are recomputed
// from the imported data before the swap is persisted.
func (s *Store) ReplaceDocument(ctx context.Context, doc *models.JournalDocument) error {
	if doc == nil || doc.DailyActivities == nil || doc.Sessions == nil || doc.PrayerList == nil {
		return validationErrorf("journal document is missing required fields")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	s.doc.Normalize()
	s.finish(ctx)
	return nil
}

// Snapshot returns a deep copy of the current document, safe for the caller
// to encode or mutate.
func (s *Store) Snapshot() *models.JournalDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// dayRecord returns the record for date, creating an all-false one if absent.
// Callers must hold s.mu.
func (s *Store) dayRecord(date string) *models.DayRecord {
	rec, ok := s.doc.DailyActivities[date]
	if !ok || rec == nil {
		rec = models.NewDayRecord()
		s.doc.DailyActivities[date] = rec
	}
	return rec
}

// finish runs the shared tail of every mutation with s.mu held: recompute the
// cached stats, persist best-effort, notify the sink.
func (s *Store) finish(ctx context.Context) {
	s.recomputeStats()
	if err := s.docs.Save(ctx, s.doc); err != nil {
		// In-memory state stays authoritative; the save is retried on the
		// next mutation.
		log.Printf("⚠️  Failed to persist journal document: %v", err)
	}
	if s.sink != nil {
		s.sink.Publish(s.viewStateLocked())
	}
}

func (s *Store) recomputeStats() {
	today := s.now()
	s.doc.Stats.StreakDays = ComputeStreak(s.doc.DailyActivities, today)
	lastActive := today.Format(DateLayout)
	s.doc.Stats.LastActiveDate = &lastActive
}

// nextPrayerID derives an id from the creation instant in milliseconds,
// bumped when needed so ids stay strictly increasing within the process.
// Callers must hold s.mu.
func (s *Store) nextPrayerID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastPrayerID {
		id = s.lastPrayerID + 1
	}
	s.lastPrayerID = id
	return id
}
