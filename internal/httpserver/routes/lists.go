package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerLists) }

func registerLists(r chi.Router, d deps.Deps) {
	r.Route("/lists", func(r chi.Router) {
		r.Get("/", handlers.Lists(d))
		r.Post("/", handlers.CreateList(d))
		r.Get("/{id}", handlers.List(d))
		r.Patch("/{id}", handlers.RenameList(d))
		r.Delete("/{id}", handlers.DeleteList(d))
		r.Get("/{id}/companies", handlers.ListCompanies(d))
		r.Post("/{id}/companies", handlers.AddToList(d))
		r.Post("/{id}/export", handlers.OpenExport(d))
	})
}
