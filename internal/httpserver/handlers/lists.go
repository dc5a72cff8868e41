package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
	"github.com/MrSnakeDoc/leadscout/internal/workspace"
)

type listNameRequest struct {
	Name string `json:"name"`
}

type listsResponse struct {
	Lists []domain.SavedList `json:"lists"`
}

type createListResponse struct {
	List   domain.SavedList `json:"list"`
	Export export.State     `json:"export"`
}

type addToListResponse struct {
	workspace.AddResult
	Export *export.State `json:"export,omitempty"`
}

// openExport shows list in the session's export view.
func openExport(s *session.Session, list domain.SavedList) (export.State, error) {
	companies, err := s.Workspace.ListCompanies(list.ID)
	if err != nil {
		return export.State{}, err
	}
	s.Export.Open(list, companies)
	return s.Export.State(), nil
}

func Lists(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		writeJSON(w, http.StatusOK, listsResponse{Lists: s.Workspace.Lists()})
	})
}

func List(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		l, err := s.Workspace.List(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, l)
	})
}

// CreateList saves the selection as a new list and opens it for export.
func CreateList(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req listNameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, d, err)
			return
		}
		l, err := s.Workspace.SaveAsNewList(req.Name)
		if err != nil {
			writeError(w, d, err)
			return
		}
		state, err := openExport(s, l)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, createListResponse{List: l, Export: state})
	})
}

// AddToList merges the selection into an existing list.
func AddToList(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		res, err := s.Workspace.AddToExistingList(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		resp := addToListResponse{AddResult: res}
		if res.Applied {
			state, err := openExport(s, res.List)
			if err != nil {
				writeError(w, d, err)
				return
			}
			resp.Export = &state
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

func RenameList(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req listNameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, d, err)
			return
		}
		l, err := s.Workspace.RenameList(chi.URLParam(r, "id"), req.Name)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, l)
	})
}

func DeleteList(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		if err := s.Workspace.DeleteList(chi.URLParam(r, "id")); err != nil {
			writeError(w, d, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCompanies(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		companies, err := s.Workspace.ListCompanies(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, companiesResponse{Companies: companies, Total: len(companies)})
	})
}

// OpenExport shows an existing list in the export view.
func OpenExport(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		l, err := s.Workspace.List(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		state, err := openExport(s, l)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	})
}
