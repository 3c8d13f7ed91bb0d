package journal

import (
	"math"

	"github.com/jodavila/long-journey/internal/models"
)

// Morning window is [4:00, 10:00) in local hour-of-day. Sessions inside it
// earn the morning bonus.
const (
	morningStartHour = 4
	morningEndHour   = 10
)

// Base and morning point values per session type.
const (
	prayerPoints        = 10
	prayerMorningPoints = 15
	studyPoints         = 15
	studyMorningPoints  = 20
)

// activityCount is how many daily activity flags make up a full day.
const activityCount = 3

// IsMorningHour reports whether the given local hour falls in the morning
// bonus window. Inclusive at 4, exclusive at 10.
func IsMorningHour(hour int) bool {
	return hour >= morningStartHour && hour < morningEndHour
}

// PointsFor returns the points earned for a session of the given type.
func PointsFor(sessionType string, isMorning bool) int {
	if sessionType == models.SessionStudy {
		if isMorning {
			return studyMorningPoints
		}
		return studyPoints
	}
	if isMorning {
		return prayerMorningPoints
	}
	return prayerPoints
}

// DayCompletion returns the completion percentage for a day: how many of the
// three activity flags are set, rounded to a whole percent. An absent record
// counts as 0.
func DayCompletion(rec *models.DayRecord) int {
	if rec == nil {
		return 0
	}
	completed := 0
	if rec.BibleChapters {
		completed++
	}
	if rec.DailyLesson {
		completed++
	}
	if rec.Devotional {
		completed++
	}
	return int(math.Round(float64(completed) / activityCount * 100))
}
