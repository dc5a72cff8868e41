package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

type selectionResponse struct {
	CompanyIDs []string `json:"companyIds"`
	Count      int      `json:"count"`
}

func selection(s *session.Session) selectionResponse {
	ids := s.Workspace.Selection()
	if ids == nil {
		ids = []string{}
	}
	return selectionResponse{CompanyIDs: ids, Count: len(ids)}
}

func Selection(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		writeJSON(w, http.StatusOK, selection(s))
	})
}

func Select(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		if err := s.Workspace.Select(chi.URLParam(r, "companyID")); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, selection(s))
	})
}

func Unselect(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		s.Workspace.Unselect(chi.URLParam(r, "companyID"))
		writeJSON(w, http.StatusOK, selection(s))
	})
}

func ClearSelection(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		s.Workspace.ClearSelection()
		writeJSON(w, http.StatusOK, selection(s))
	})
}
