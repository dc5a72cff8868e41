package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

// alertView is an alert as the alerts screen shows it.
type alertView struct {
	domain.AlertTrigger
	ListName        string `json:"listName"`
	TypeLabel       string `json:"typeLabel"`
	PendingDeletion bool   `json:"pendingDeletion,omitempty"`
}

type alertsResponse struct {
	Alerts          []alertView `json:"alerts"`
	PendingDeletion string      `json:"pendingDeletion,omitempty"`
}

type alertTypeView struct {
	Type  domain.TriggerType `json:"type"`
	Label string             `json:"label"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled"`
}

func viewAlert(s *session.Session, a domain.AlertTrigger) alertView {
	pending, _ := s.Workspace.PendingDeletion()
	return alertView{
		AlertTrigger:    a,
		ListName:        s.Workspace.ListName(a.ListID),
		TypeLabel:       a.Type.Label(),
		PendingDeletion: pending == a.ID,
	}
}

func Alerts(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		alerts := s.Workspace.Alerts()
		resp := alertsResponse{Alerts: make([]alertView, 0, len(alerts))}
		for _, a := range alerts {
			resp.Alerts = append(resp.Alerts, viewAlert(s, a))
		}
		resp.PendingDeletion, _ = s.Workspace.PendingDeletion()
		writeJSON(w, http.StatusOK, resp)
	})
}

// AlertTypes lists the trigger kinds in display order.
func AlertTypes(d deps.Deps) http.HandlerFunc {
	types := domain.TriggerTypes()
	out := make([]alertTypeView, 0, len(types))
	for _, t := range types {
		out = append(out, alertTypeView{Type: t, Label: t.Label()})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, out)
	}
}

func Alert(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		a, err := s.Workspace.Alert(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, viewAlert(s, a))
	})
}

func CreateAlert(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var draft domain.AlertDraft
		if err := decodeJSON(r, &draft); err != nil {
			writeError(w, d, err)
			return
		}
		a, err := s.Workspace.CreateAlert(draft)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, viewAlert(s, a))
	})
}

func UpdateAlert(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var draft domain.AlertDraft
		if err := decodeJSON(r, &draft); err != nil {
			writeError(w, d, err)
			return
		}
		a, err := s.Workspace.UpdateAlert(chi.URLParam(r, "id"), draft)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, viewAlert(s, a))
	})
}

func ToggleAlert(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req toggleRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, d, err)
			return
		}
		if req.Enabled == nil {
			writeError(w, d, &domain.ValidationError{Field: "enabled", Message: "enabled is required"})
			return
		}
		a, err := s.Workspace.ToggleAlert(chi.URLParam(r, "id"), *req.Enabled)
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, viewAlert(s, a))
	})
}

func DuplicateAlert(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		a, err := s.Workspace.DuplicateAlert(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusCreated, viewAlert(s, a))
	})
}

// RequestAlertDeletion marks an alert; ConfirmAlertDeletion removes it.
func RequestAlertDeletion(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		a, err := s.Workspace.RequestAlertDeletion(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, viewAlert(s, a))
	})
}

func ConfirmAlertDeletion(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		a, err := s.Workspace.ConfirmAlertDeletion()
		if err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	})
}

func CancelAlertDeletion(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		s.Workspace.CancelAlertDeletion()
		w.WriteHeader(http.StatusNoContent)
	})
}
