package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/leadscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/leadscout/internal/httpserver/mw"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var (
	registry    []entry // mounted at the root
	apiRegistry []entry // mounted under /api, behind rate limit and session
)

// Register a root registrar with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{reg: reg, mws: mws})
}

// RegisterAPI adds a registrar to the session-scoped /api group.
func RegisterAPI(reg Registrar, mws ...Middleware) {
	apiRegistry = append(apiRegistry, entry{reg: reg, mws: mws})
}

// Called once from httpserver.NewRouter()
func RegisterAll(r chi.Router, d deps.Deps) {
	mount(r, d, registry)

	r.Route("/api", func(api chi.Router) {
		api.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateBurst,
			RefillPerIPPerMin: d.RateRefillPerMin,
			TrustProxy:        d.TrustProxy,
		}))
		api.Use(mw.Session(d.Sessions))
		mount(api, d, apiRegistry)
	})
}

func mount(r chi.Router, d deps.Deps, entries []entry) {
	for _, e := range entries {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		sub := r.With(e.mws...) // apply per-route middlewares
		e.reg(sub, d)
	}
}
