package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jodavila/long-journey/internal/journal"
	"github.com/jodavila/long-journey/internal/models"
)

// maxDocumentSize caps /api/data uploads; a journal document is small and
// anything near this limit is not one.
const maxDocumentSize = 8 << 20

// GetData returns the full journal document. A fresh install gets the
// default empty document, never a 404.
func GetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, journalStore.Snapshot())
}

// SaveData replaces the journal document wholesale; this is the import path. The
// body must be a JSON document carrying all four top-level fields; the check
// is shape-only.
func SaveData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, err := models.ParseDocument(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := journalStore.ReplaceDocument(r.Context(), doc); err != nil {
		var validationErr *journal.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save data")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Data saved successfully"})
}

// ExportData serves the document as a pretty-printed JSON download named
// after today's date.
func ExportData(w http.ResponseWriter, r *http.Request) {
	data, err := json.MarshalIndent(journalStore.Snapshot(), "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export data")
		return
	}

	filename := fmt.Sprintf("spiritual-journey-%s.json", todayDate())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
