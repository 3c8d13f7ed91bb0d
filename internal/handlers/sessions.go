package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jodavila/long-journey/internal/journal"
	"github.com/jodavila/long-journey/internal/models"
)

type RecordSessionRequest struct {
	Type string `json:"type"` // prayer or study
}

type RecordSessionResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Session *models.Session    `json:"session,omitempty"`
	Summary *journal.ViewState `json:"summary,omitempty"`
}

// RecordSession logs a prayer or study session at the current time and
// returns both the created session and the refreshed summary.
func RecordSession(w http.ResponseWriter, r *http.Request) {
	var req RecordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := journalStore.RecordSession(r.Context(), req.Type)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	summary := journalStore.ViewState()
	writeJSON(w, http.StatusCreated, RecordSessionResponse{
		Success: true,
		Message: "Session recorded",
		Session: &session,
		Summary: &summary,
	})
}
