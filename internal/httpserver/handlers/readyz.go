package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready     bool `json:"ready"`
	Companies int  `json:"companies"`
}

// Readyz is ready once a dataset has been loaded.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := d.Catalog.Count()
		status := http.StatusOK
		if n == 0 {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{Ready: n > 0, Companies: n})
	}
}
