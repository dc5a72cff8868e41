package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

var errFileNotFound = fmt.Errorf("file %w", domain.ErrNotFound)

func ExportState(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		writeJSON(w, http.StatusOK, s.Export.State())
	})
}

func CloseExport(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		s.Export.Close()
		writeJSON(w, http.StatusOK, s.Export.State())
	})
}

// StartCRMExport schedules the CRM export of the open list. Completion is
// reported through the notification inbox.
func StartCRMExport(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		if err := d.Exporter.StartCRM(s.Export, s.Sink()); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusAccepted, s.Export.State())
	})
}

// StartDownload schedules the CSV rendering of the open list.
func StartDownload(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		if err := d.Exporter.StartDownload(s.Export, s.Sink()); err != nil {
			writeError(w, d, err)
			return
		}
		writeJSON(w, http.StatusAccepted, s.Export.State())
	})
}

// Download serves a file rendered for the calling session.
func Download(d deps.Deps) http.HandlerFunc {
	return withSession(d, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		f, ok := d.Files.GetFor(s.ID(), chi.URLParam(r, "id"))
		if !ok {
			writeError(w, d, errFileNotFound)
			return
		}
		w.Header().Set("Content-Type", f.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(f.Data)
	})
}
