package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerAlerts) }

func registerAlerts(r chi.Router, d deps.Deps) {
	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", handlers.Alerts(d))
		r.Post("/", handlers.CreateAlert(d))
		r.Get("/types", handlers.AlertTypes(d))

		// static segments before {id}
		r.Post("/deletion/confirm", handlers.ConfirmAlertDeletion(d))
		r.Delete("/deletion", handlers.CancelAlertDeletion(d))

		r.Get("/{id}", handlers.Alert(d))
		r.Put("/{id}", handlers.UpdateAlert(d))
		r.Patch("/{id}/enabled", handlers.ToggleAlert(d))
		r.Post("/{id}/duplicate", handlers.DuplicateAlert(d))
		r.Post("/{id}/deletion", handlers.RequestAlertDeletion(d))
	})
}
