package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type UpdateActivityRequest struct {
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Activity string `json:"activity"`       // bibleChapters, dailyLesson or devotional
	Value    bool   `json:"value"`
}

type AddChapterRequest struct {
	Date string `json:"date,omitempty"`
	Text string `json:"text"`
}

// UpdateActivity sets one daily activity flag, creating the day record if it
// does not exist yet. Idempotent.
func UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = todayDate()
	}

	if err := journalStore.SetActivityFlag(r.Context(), req.Date, req.Activity, req.Value); err != nil {
		writeMutationError(w, err)
		return
	}
	writeMutationOK(w, "Activity updated")
}

// AddChapter logs a chapter reading for the given day and forces the
// bibleChapters flag on.
func AddChapter(w http.ResponseWriter, r *http.Request) {
	var req AddChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = todayDate()
	}

	if err := journalStore.LogChapterReading(r.Context(), req.Date, req.Text); err != nil {
		writeMutationError(w, err)
		return
	}
	writeMutationOK(w, "Chapter logged")
}

// RemoveChapter deletes one chapter entry by index. Query parameters: date
// (defaults to today) and index. Removing the last entry resets the
// bibleChapters flag.
func RemoveChapter(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = todayDate()
	}

	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index query parameter is required")
		return
	}

	if err := journalStore.RemoveChapterEntry(r.Context(), date, index); err != nil {
		writeMutationError(w, err)
		return
	}
	writeMutationOK(w, "Chapter removed")
}
