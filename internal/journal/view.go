package journal

import (
	"sort"

	"github.com/jodavila/long-journey/internal/models"
)

// ViewState is the derived state a display needs after a mutation: the stat
// counters plus today's detail lists. It carries copies, never live document
// slices.
type ViewState struct {
	Date            string                 `json:"date"`
	TotalPoints     int                    `json:"totalPoints"`
	StreakDays      int                    `json:"streakDays"`
	AnsweredPrayers int                    `json:"answeredPrayers"`
	DayCompletion   int                    `json:"dayCompletion"`
	TodayChapters   []models.ChapterEntry  `json:"todayChapters"`
	TodaySessions   []models.Session       `json:"todaySessions"`
	PrayerList      []models.PrayerRequest `json:"prayerList"`
}

// ViewState builds the current derived state for rendering.
func (s *Store) ViewState() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewStateLocked()
}

func (s *Store) viewStateLocked() ViewState {
	today := s.now().Format(DateLayout)

	state := ViewState{
		Date:          today,
		TotalPoints:   s.doc.Stats.TotalPoints,
		StreakDays:    s.doc.Stats.StreakDays,
		DayCompletion: DayCompletion(s.doc.DailyActivities[today]),
		TodayChapters: []models.ChapterEntry{},
		TodaySessions: []models.Session{},
		PrayerList:    sortedPrayers(s.doc.PrayerList),
	}

	if rec := s.doc.DailyActivities[today]; rec != nil {
		state.TodayChapters = append(state.TodayChapters, rec.Chapters...)
	}
	for _, session := range s.doc.Sessions {
		if session.Date == today {
			state.TodaySessions = append(state.TodaySessions, session)
		}
	}
	for _, p := range s.doc.PrayerList {
		if p.Answered {
			state.AnsweredPrayers++
		}
	}
	return state
}

// sortedPrayers copies the prayer list with unanswered requests first,
// preserving insertion order within each group.
func sortedPrayers(prayers []models.PrayerRequest) []models.PrayerRequest {
	out := append([]models.PrayerRequest{}, prayers...)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Answered && out[j].Answered
	})
	return out
}
