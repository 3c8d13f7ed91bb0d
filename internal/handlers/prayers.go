package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jodavila/long-journey/internal/journal"
	"github.com/jodavila/long-journey/internal/models"
)

type AddPrayerRequest struct {
	Text string `json:"text"`
}

type AddPrayerResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Prayer  *models.PrayerRequest `json:"prayer,omitempty"`
	Summary *journal.ViewState    `json:"summary,omitempty"`
}

type AnswerPrayerRequest struct {
	ID int64 `json:"id"`
}

// AddPrayer appends a new unanswered prayer request.
func AddPrayer(w http.ResponseWriter, r *http.Request) {
	var req AddPrayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prayer, err := journalStore.AddPrayerRequest(r.Context(), req.Text)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	summary := journalStore.ViewState()
	writeJSON(w, http.StatusCreated, AddPrayerResponse{
		Success: true,
		Message: "Prayer request added",
		Prayer:  &prayer,
		Summary: &summary,
	})
}

// AnswerPrayer marks a prayer request answered. Unknown ids are a quiet
// success; the transition is one-way.
func AnswerPrayer(w http.ResponseWriter, r *http.Request) {
	var req AnswerPrayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := journalStore.MarkPrayerAnswered(r.Context(), req.ID); err != nil {
		writeMutationError(w, err)
		return
	}
	writeMutationOK(w, "Prayer request updated")
}

// DeletePrayer removes a prayer request by id (query parameter). Unknown ids
// are a quiet success.
func DeletePrayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	if err := journalStore.DeletePrayerRequest(r.Context(), id); err != nil {
		writeMutationError(w, err)
		return
	}
	writeMutationOK(w, "Prayer request deleted")
}
