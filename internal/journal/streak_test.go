package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jodavila/long-journey/internal/models"
)

func TestComputeStreak(t *testing.T) {
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, -offset).Format(DateLayout)
	}
	active := func() *models.DayRecord {
		return &models.DayRecord{Devotional: true}
	}

	testCases := []struct {
		name       string
		activities map[string]*models.DayRecord
		expected   int
	}{
		{
			name:       "no history",
			activities: map[string]*models.DayRecord{},
			expected:   0,
		},
		{
			name: "three consecutive days",
			activities: map[string]*models.DayRecord{
				day(0): active(),
				day(1): active(),
				day(2): active(),
			},
			expected: 3,
		},
		{
			name: "all-false day ends the streak",
			activities: map[string]*models.DayRecord{
				day(0): active(),
				day(1): {},
				day(2): active(),
			},
			expected: 1,
		},
		{
			name: "missing day ends the streak",
			activities: map[string]*models.DayRecord{
				day(0): active(),
				day(2): active(),
				day(3): active(),
			},
			expected: 1,
		},
		{
			name: "no record for today means zero regardless of history",
			activities: map[string]*models.DayRecord{
				day(1): active(),
				day(2): active(),
				day(3): active(),
			},
			expected: 0,
		},
		{
			name: "today all-false means zero",
			activities: map[string]*models.DayRecord{
				day(0): {},
				day(1): active(),
			},
			expected: 0,
		},
		{
			name: "earlier longer run is not picked up",
			activities: map[string]*models.DayRecord{
				day(0): active(),
				day(1): active(),
				day(3): active(),
				day(4): active(),
				day(5): active(),
			},
			expected: 2,
		},
		{
			name: "any single flag qualifies the day",
			activities: map[string]*models.DayRecord{
				day(0): {BibleChapters: true},
				day(1): {DailyLesson: true},
				day(2): {Devotional: true},
			},
			expected: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeStreak(tc.activities, today))
		})
	}
}
