package journal

import (
	"time"

	"github.com/jodavila/long-journey/internal/models"
)

// DateLayout is the calendar-date key format used throughout the document.
const DateLayout = "2006-01-02"

// ComputeStreak counts the consecutive run of qualifying days ending at
// today. A day qualifies when it has a record with at least one activity flag
// set. The walk starts at today and stops at the first missing day or
// all-false day, so a gap ends the streak even if earlier runs were longer.
// If today itself has no qualifying record the streak is 0.
func ComputeStreak(activities map[string]*models.DayRecord, today time.Time) int {
	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		rec, ok := activities[day.Format(DateLayout)]
		if !ok || rec == nil {
			break
		}
		if !rec.BibleChapters && !rec.DailyLesson && !rec.Devotional {
			break
		}
		streak++
	}
	return streak
}
