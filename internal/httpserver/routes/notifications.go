package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerNotifications) }

func registerNotifications(r chi.Router, d deps.Deps) {
	r.Get("/notifications", handlers.Notifications(d))
}
