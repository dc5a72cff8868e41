package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

type companiesResponse struct {
	Companies []domain.Company `json:"companies"`
	Total     int              `json:"total"`
}

type searchRequest struct {
	Query domain.SearchQuery `json:"query"`
	Sort  string             `json:"sort,omitempty"`
}

type searchResponse struct {
	Companies []domain.Company `json:"companies"`
	Total     int              `json:"total"`
	Sort      domain.SortKey   `json:"sort"`
}

// Facets returns the industry and county options of the catalog.
func Facets(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Catalog.Facets())
	}
}

func Companies(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		companies := s.Workspace.Companies()
		writeJSON(w, http.StatusOK, companiesResponse{Companies: companies, Total: len(companies)})
	})
}

func Company(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		c, err := s.Workspace.Company(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	})
}

// Search filters and sorts the session's companies.
func Search(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req searchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, d, err)
			return
		}
		key, err := domain.ParseSortKey(req.Sort)
		if err != nil {
			writeError(w, d, err)
			return
		}

		result := s.Workspace.Search(req.Query, key)
		writeJSON(w, http.StatusOK, searchResponse{Companies: result, Total: len(result), Sort: key})
	})
}
