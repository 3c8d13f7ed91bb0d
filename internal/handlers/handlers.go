package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jodavila/long-journey/internal/journal"
	"github.com/jodavila/long-journey/internal/services"
)

// Package-level collaborators, wired once at startup from main.
var (
	journalStore *journal.Store
	viewHub      *services.ViewHub
)

// Init wires the journal store and display hub into the handler package.
// Must be called before the router starts serving.
func Init(store *journal.Store, hub *services.ViewHub) {
	journalStore = store
	viewHub = hub
}

// StatusResponse is the shared success/error envelope for mutation routes.
type StatusResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Summary *journal.ViewState `json:"summary,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, StatusResponse{Success: false, Message: message})
}

// writeMutationError maps the journal error taxonomy onto HTTP statuses:
// rejected input is the client's fault, anything else is ours.
func writeMutationError(w http.ResponseWriter, err error) {
	var validationErr *journal.ValidationError
	var indexErr *journal.IndexError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &indexErr):
		writeError(w, http.StatusBadRequest, indexErr.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

// writeMutationOK responds with the post-mutation summary so clients can
// re-render without a second request.
func writeMutationOK(w http.ResponseWriter, message string) {
	summary := journalStore.ViewState()
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: message, Summary: &summary})
}

// todayDate is the default date for mutations that omit one.
func todayDate() string {
	return time.Now().Format(journal.DateLayout)
}
