package handlers

import "net/http"

// GetSummary returns the derived view state: totals, streak, answered count,
// completion percentage, and today's detail lists.
func GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, journalStore.ViewState())
}
