package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	CompaniesCount *int   `json:"companies_loaded,omitempty"`
	SessionsCount  *int   `json:"sessions_active,omitempty"`
	StoredSessions *int64 `json:"sessions_stored,omitempty"`
	LastReload     string `json:"last_reload,omitempty"`
	Source         string `json:"source,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies := d.Catalog.Count()
		lastReload := d.Catalog.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}
		sessions := d.Sessions.Count()

		components := map[string]componentStatus{
			"dataset": {
				OK:             companies > 0,
				CompaniesCount: &companies,
				LastReload:     lastReloadStr,
				Source:         d.Catalog.Source(),
			},
			"sessions": {
				OK:            true,
				SessionsCount: &sessions,
			},
			"redis": checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if ds, ok := components["dataset"]; ok && !ds.OK {
		return "critical" // nothing to search
	}
	if rs, ok := components["redis"]; ok && !rs.OK && rs.Mode != "disabled" {
		return "degraded" // sessions do not survive a restart
	}
	return "operational"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Snapshots == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "sessions-memory-only",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Snapshots.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "sessions-memory-only",
			Error:  err.Error(),
		}
	}

	stored, err := d.Snapshots.Count(ctx)
	if err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "sessions-memory-only",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:             true,
		Mode:           "optimal",
		Impact:         "sessions-persisted",
		StoredSessions: &stored,
	}
}
