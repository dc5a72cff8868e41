package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/handlers"
)

func init() { RegisterAPI(registerCompanies) }

func registerCompanies(r chi.Router, d deps.Deps) {
	r.Get("/facets", handlers.Facets(d))
	r.Get("/companies", handlers.Companies(d))
	r.Get("/companies/{id}", handlers.Company(d))
	r.Post("/search", handlers.Search(d))
}
