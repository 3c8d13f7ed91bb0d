package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jodavila/long-journey/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Full-document load/save (the import path) and export download
	r.Get("/api/data", handlers.GetData)
	r.Post("/api/data", handlers.SaveData)
	r.Get("/api/export", handlers.ExportData)

	// Daily activity routes
	r.Put("/api/activities", handlers.UpdateActivity)
	r.Post("/api/activities/chapters", handlers.AddChapter)
	r.Delete("/api/activities/chapters", handlers.RemoveChapter)

	// Session routes
	r.Post("/api/sessions", handlers.RecordSession)

	// Prayer list routes
	r.Post("/api/prayers", handlers.AddPrayer)
	r.Put("/api/prayers/answered", handlers.AnswerPrayer)
	r.Delete("/api/prayers", handlers.DeletePrayer)

	// Derived view state
	r.Get("/api/summary", handlers.GetSummary)

	// WebSocket endpoint streaming view state to displays
	r.Get("/ws/journal", handlers.JournalWebSocket)
}
