package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerSelection) }

func registerSelection(r chi.Router, d deps.Deps) {
	r.Get("/selection", handlers.Selection(d))
	r.Delete("/selection", handlers.ClearSelection(d))
	r.Put("/selection/{companyID}", handlers.Select(d))
	r.Delete("/selection/{companyID}", handlers.Unselect(d))
}
