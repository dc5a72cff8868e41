package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestMatchHost(t *testing.T) {
	tests := []struct {
		host, pattern string
		want          bool
	}{
		{"leads.example.com", "leads.example.com", true},
		{"leads.example.com:8080", "leads.example.com", true},
		{"leads.example.com:8080", "leads.example.com:9090", false},
		{"api.example.com", "*.example.com", true},
		{"example.com", "*.example.com", false},
		{"evil.com", "leads.example.com", false},
	}
	for _, tt := range tests {
		if got := matchHost(tt.host, tt.pattern); got != tt.want {
			t.Errorf("matchHost(%q, %q) = %v, want %v", tt.host, tt.pattern, got, tt.want)
		}
	}
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"Leads.Example.com"}, logger.Nop())(okHandler)

	r := httptest.NewRequest(http.MethodPost, "/reload", nil)
	r.Host = "leads.example.com"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r.Host = "other.example.com"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, logger.Nop())(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/infra", nil)
	r.RemoteAddr = "10.1.2.3:4567"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r.RemoteAddr = "192.0.2.1:4567"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimitRefills(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newLimiter(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 60})
	l.now = func() time.Time { return now }
	h := rateLimit(l)(okHandler)

	call := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
		r.RemoteAddr = "192.0.2.1:1000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusOK, call().Code)
	w := call()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = call()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call().Code)
}

func TestRateLimitIsPerClient(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1})
	h := rateLimit(l)(okHandler)

	for _, ip := range []string{"192.0.2.1:1", "192.0.2.2:1"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = ip
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code, ip)
	}
}

func TestLimiterSweepDropsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1, IdleTTL: time.Minute, SweepInterval: time.Minute})
	l.now = func() time.Time { return now }
	l.lastSweep = now

	l.take("a")
	now = now.Add(2 * time.Minute)
	l.take("b")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}

type emptyCatalog struct{}

func (emptyCatalog) Companies() []domain.Company { return nil }

func (emptyCatalog) Seed() ([]domain.SavedList, []domain.AlertTrigger) { return nil, nil }

func TestSessionMiddleware(t *testing.T) {
	sessions := session.NewManager(session.Config{}, emptyCatalog{}, nil, logger.Nop())

	var seen string
	h := Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, found := session.FromContext(r.Context())
		require.True(t, found)
		seen = s.ID()
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lists", nil))
	id := w.Header().Get(SessionHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)

	// header reuse
	r := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	r.Header.Set(SessionHeader, id)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, id, w.Header().Get(SessionHeader))
	assert.Empty(t, w.Result().Cookies())

	// cookie reuse
	r = httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, id, w.Header().Get(SessionHeader))

	assert.Equal(t, 1, sessions.Count())
}
