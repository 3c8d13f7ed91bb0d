package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jodavila/long-journey/internal/models"
)

func TestPointsFor(t *testing.T) {
	testCases := []struct {
		name        string
		sessionType string
		isMorning   bool
		expected    int
	}{
		{name: "morning prayer", sessionType: models.SessionPrayer, isMorning: true, expected: 15},
		{name: "daytime prayer", sessionType: models.SessionPrayer, isMorning: false, expected: 10},
		{name: "morning study", sessionType: models.SessionStudy, isMorning: true, expected: 20},
		{name: "daytime study", sessionType: models.SessionStudy, isMorning: false, expected: 15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PointsFor(tc.sessionType, tc.isMorning))
		})
	}
}

func TestIsMorningHour(t *testing.T) {
	testCases := []struct {
		name     string
		hour     int
		expected bool
	}{
		{name: "window start is inclusive", hour: 4, expected: true},
		{name: "last morning hour", hour: 9, expected: true},
		{name: "window end is exclusive", hour: 10, expected: false},
		{name: "before the window", hour: 3, expected: false},
		{name: "midnight", hour: 0, expected: false},
		{name: "evening", hour: 20, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsMorningHour(tc.hour))
		})
	}
}

func TestDayCompletion(t *testing.T) {
	testCases := []struct {
		name     string
		rec      *models.DayRecord
		expected int
	}{
		{name: "absent record", rec: nil, expected: 0},
		{name: "nothing done", rec: &models.DayRecord{}, expected: 0},
		{
			name:     "one of three",
			rec:      &models.DayRecord{BibleChapters: true},
			expected: 33,
		},
		{
			name:     "two of three",
			rec:      &models.DayRecord{DailyLesson: true, Devotional: true},
			expected: 67,
		},
		{
			name:     "full day",
			rec:      &models.DayRecord{BibleChapters: true, DailyLesson: true, Devotional: true},
			expected: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DayCompletion(tc.rec))
		})
	}
}
