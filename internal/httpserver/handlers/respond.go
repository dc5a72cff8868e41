package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

const maxBodyBytes = 1 << 20

var errNoSession = errors.New("request has no session")

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes. Anything unknown is a 500
// and gets logged.
func writeError(w http.ResponseWriter, d deps.Deps, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoPendingDeletion), errors.Is(err, export.ErrNoExportView):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		d.Logger.Error("request failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

// decodeJSON reads a single JSON document into v. An empty body leaves v
// untouched; trailing data after the document is rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &domain.ValidationError{Field: "body", Message: err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &domain.ValidationError{Field: "body", Message: "request body must hold a single JSON document"}
	}
	return nil
}

// current returns the session injected by mw.Session.
func current(r *http.Request) (*session.Session, error) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return s, nil
}

// withSession adapts a session-scoped handler.
func withSession(d deps.Deps, fn func(w http.ResponseWriter, r *http.Request, s *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := current(r)
		if err != nil {
			writeError(w, d, err)
			return
		}
		fn(w, r, s)
	}
}
