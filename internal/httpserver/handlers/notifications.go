package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

type notificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Dropped       int                   `json:"dropped,omitempty"`
}

// Notifications drains the session inbox.
func Notifications(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		writeJSON(w, http.StatusOK, notificationsResponse{
			Notifications: s.Inbox.Drain(),
			Dropped:       s.Inbox.Dropped(),
		})
	})
}
