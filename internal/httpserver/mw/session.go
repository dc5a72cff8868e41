package mw

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/session"
)

const (
	// SessionHeader carries the session id in requests and responses.
	SessionHeader = "X-Session-ID"
	// SessionCookie is the cookie alternative to SessionHeader.
	SessionCookie = "leadscout_session"

	persistTimeout = 2 * time.Second
)

// Session resolves the caller's session from SessionHeader or
// SessionCookie, creating one when neither names a live session. The id is
// echoed in both. After a state-changing request the session snapshot is
// persisted, detached from the request deadline.
func Session(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					id = c.Value
				}
			}

			s, _ := sessions.Open(r.Context(), id)

			w.Header().Set(SessionHeader, s.ID())
			if id != s.ID() {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    s.ID(),
					Path:     "/",
					MaxAge:   int(sessions.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), persistTimeout)
				sessions.Persist(ctx, s)
				cancel()
			}
		})
	}
}
