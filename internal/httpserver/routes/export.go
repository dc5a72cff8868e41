package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerExport) }

func registerExport(r chi.Router, d deps.Deps) {
	r.Get("/export", handlers.ExportState(d))
	r.Delete("/export", handlers.CloseExport(d))
	r.Post("/export/crm", handlers.StartCRMExport(d))
	r.Post("/export/download", handlers.StartDownload(d))
	r.Get("/downloads/{id}", handlers.Download(d))
}
