package models

import (
	"encoding/json"
	"fmt"
)

// Session types.
const (
	SessionPrayer = "prayer"
	SessionStudy  = "study"
)

// Daily activity flag names, as they appear in the persisted document.
const (
	ActivityBibleChapters = "bibleChapters"
	ActivityDailyLesson   = "dailyLesson"
	ActivityDevotional    = "devotional"
)

// ChapterEntry is one logged scripture reading within a day.
type ChapterEntry struct {
	Text string `bson:"text" json:"text"`
	Time string `bson:"time" json:"time"`
}

// DayRecord holds the three daily activity flags plus the chapters read that
// day. BibleChapters is true exactly when Chapters is non-empty; the journal
// store maintains that invariant, storage does not enforce it.
type DayRecord struct {
	BibleChapters bool           `bson:"bibleChapters" json:"bibleChapters"`
	Chapters      []ChapterEntry `bson:"chapters" json:"chapters"`
	DailyLesson   bool           `bson:"dailyLesson" json:"dailyLesson"`
	Devotional    bool           `bson:"devotional" json:"devotional"`
}

// Session is a single timed prayer or study session. Sessions are immutable
// once created; they are only ever replaced wholesale by a document import.
type Session struct {
	Type      string `bson:"type" json:"type"`
	Date      string `bson:"date" json:"date"` // YYYY-MM-DD
	Time      string `bson:"time" json:"time"` // display string
	Timestamp string `bson:"timestamp" json:"timestamp"`
	IsMorning bool   `bson:"isMorning" json:"isMorning"`
	Points    int    `bson:"points" json:"points"`
}

// PrayerRequest is one entry in the prayer list. Answered is a one-way
// transition; there is no un-answer operation.
type PrayerRequest struct {
	ID           int64  `bson:"id" json:"id"`
	Text         string `bson:"text" json:"text"`
	Date         string `bson:"date" json:"date"` // display string
	Timestamp    string `bson:"timestamp" json:"timestamp"`
	Answered     bool   `bson:"answered" json:"answered"`
	AnsweredDate string `bson:"answeredDate,omitempty" json:"answeredDate,omitempty"`
}

// Stats is the derived/cached summary. It is recomputed after every mutation
// and is never independently authoritative.
type Stats struct {
	TotalPoints    int     `bson:"totalPoints" json:"totalPoints"`
	StreakDays     int     `bson:"streakDays" json:"streakDays"`
	LastActiveDate *string `bson:"lastActiveDate" json:"lastActiveDate"`
}

// JournalDocument is the single persisted aggregate: everything the app knows
// about one user's journey.
type JournalDocument struct {
	DailyActivities map[string]*DayRecord `bson:"dailyActivities" json:"dailyActivities"`
	Sessions        []Session             `bson:"sessions" json:"sessions"`
	PrayerList      []PrayerRequest       `bson:"prayerList" json:"prayerList"`
	Stats           Stats                 `bson:"stats" json:"stats"`
}

// requiredFields are the top-level keys an imported document must carry.
var requiredFields = []string{"dailyActivities", "sessions", "prayerList", "stats"}

// DefaultDocument returns the empty document served when nothing is stored yet.
func DefaultDocument() *JournalDocument {
	return &JournalDocument{
		DailyActivities: map[string]*DayRecord{},
		Sessions:        []Session{},
		PrayerList:      []PrayerRequest{},
		Stats:           Stats{},
	}
}

// NewDayRecord returns a DayRecord with all flags false and no chapters.
func NewDayRecord() *DayRecord {
	return &DayRecord{Chapters: []ChapterEntry{}}
}

// ParseDocument decodes a journal document from JSON and checks that all four
// required top-level fields are present. The check is shape-only; field
// contents are not validated beyond what decoding requires.
func ParseDocument(data []byte) (*JournalDocument, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid journal document: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := probe[field]; !ok {
			return nil, fmt.Errorf("journal document is missing required field %q", field)
		}
	}

	var doc JournalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid journal document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Normalize replaces nil collections with empty ones so that encoding always
// produces {}/[] rather than null, matching the wire format.
func (d *JournalDocument) Normalize() {
	if d.DailyActivities == nil {
		d.DailyActivities = map[string]*DayRecord{}
	}
	if d.Sessions == nil {
		d.Sessions = []Session{}
	}
	if d.PrayerList == nil {
		d.PrayerList = []PrayerRequest{}
	}
	for _, rec := range d.DailyActivities {
		if rec != nil && rec.Chapters == nil {
			rec.Chapters = []ChapterEntry{}
		}
	}
}

// Clone returns a deep copy of the document.
func (d *JournalDocument) Clone() *JournalDocument {
	out := &JournalDocument{
		DailyActivities: make(map[string]*DayRecord, len(d.DailyActivities)),
		Sessions:        append([]Session{}, d.Sessions...),
		PrayerList:      append([]PrayerRequest{}, d.PrayerList...),
		Stats:           d.Stats,
	}
	if d.Stats.LastActiveDate != nil {
		date := *d.Stats.LastActiveDate
		out.Stats.LastActiveDate = &date
	}
	for date, rec := range d.DailyActivities {
		if rec == nil {
			out.DailyActivities[date] = nil
			continue
		}
		cp := *rec
		cp.Chapters = append([]ChapterEntry{}, rec.Chapters...)
		out.DailyActivities[date] = &cp
	}
	return out
}
