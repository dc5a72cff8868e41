package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/notify"
	"github.com/MrSnakeDoc/leadscout/internal/workspace"
)

// ErrSnapshotNotFound is returned by a SnapshotStore for unknown ids.
var ErrSnapshotNotFound = errors.New("session snapshot not found")

const DefaultTTL = 2 * time.Hour

// Catalog supplies the data a new session starts from.
type Catalog interface {
	Companies() []domain.Company
	Seed() ([]domain.SavedList, []domain.AlertTrigger)
}

// SnapshotStore persists workspace snapshots between process restarts.
// Entries expire after ttl unless saved or touched again.
type SnapshotStore interface {
	Save(ctx context.Context, id string, snap workspace.Snapshot, ttl time.Duration) error
	Load(ctx context.Context, id string) (workspace.Snapshot, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Config tunes new sessions.
type Config struct {
	TTL         time.Duration
	InboxSize   int
	UnknownList domain.UnknownListPolicy
	Collation   language.Tag
}

// Manager creates, restores and evicts sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg     Config
	catalog Catalog
	store   SnapshotStore // nil when persistence is disabled
	log     logger.Logger
	now     func() time.Time
}

// NewManager creates a manager. store may be nil.
func NewManager(cfg Config, catalog Catalog, store SnapshotStore, log logger.Logger) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		catalog:  catalog,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Open returns the session for id, restoring it from the snapshot store
// when it is not in memory. Missing, malformed or expired ids get a fresh
// session; created reports that case.
func (m *Manager) Open(ctx context.Context, id string) (s *Session, created bool) {
	now := m.now()

	if s, ok := m.Get(id); ok {
		s.touch(now)
		return s, false
	}

	if _, err := uuid.Parse(id); err == nil && m.store != nil {
		snap, err := m.store.Load(ctx, id)
		switch {
		case err == nil:
			s := m.build(id, now)
			s.Workspace.Restore(snap)
			s.savedRev, s.savedAt, s.persisted = snap.Revision, now, true
			m.log.Info("Session restored", logger.String("session_id", id))
			return m.register(s), false
		case !errors.Is(err, ErrSnapshotNotFound):
			m.log.Warn("Failed to load session snapshot", logger.String("session_id", id), logger.Error(err))
		}
	}

	s = m.build(uuid.NewString(), now)
	m.log.Debug("Session created", logger.String("session_id", s.id))
	return m.register(s), true
}

// Get returns a session held in memory.
func (m *Manager) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Count returns the number of sessions in memory.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// TTL returns the idle timeout.
func (m *Manager) TTL() time.Duration { return m.cfg.TTL }

// Persist writes the session snapshot when the workspace changed since the
// last write, and otherwise refreshes the stored entry's expiry now and
// then. Failures are logged only.
func (m *Manager) Persist(ctx context.Context, s *Session) {
	if m.store == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	now := m.now()
	rev := s.Workspace.Revision()

	if s.persisted && rev == s.savedRev {
		if now.Sub(s.savedAt) < m.cfg.TTL/4 {
			return
		}
		if err := m.store.Touch(ctx, s.id, m.cfg.TTL); err != nil {
			m.log.Warn("Failed to refresh session snapshot", logger.String("session_id", s.id), logger.Error(err))
			return
		}
		s.savedAt = now
		return
	}

	snap := s.Workspace.Snapshot()
	if err := m.store.Save(ctx, s.id, snap, m.cfg.TTL); err != nil {
		m.log.Warn("Failed to save session snapshot", logger.String("session_id", s.id), logger.Error(err))
		return
	}
	s.savedRev, s.savedAt, s.persisted = snap.Revision, now, true
}

// EvictIdle drops every session unused for longer than the TTL and deletes
// its snapshot. It returns the number of evicted sessions.
func (m *Manager) EvictIdle(ctx context.Context) int {
	cutoff := m.now().Add(-m.cfg.TTL)

	m.mu.Lock()
	var idle []string
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			idle = append(idle, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	if m.store != nil {
		for _, id := range idle {
			if err := m.store.Delete(ctx, id); err != nil {
				m.log.Warn("Failed to delete session snapshot", logger.String("session_id", id), logger.Error(err))
			}
		}
	}
	return len(idle)
}

func (m *Manager) build(id string, now time.Time) *Session {
	lists, alerts := m.catalog.Seed()
	inbox := notify.NewInbox(m.cfg.InboxSize)
	sink := notify.Multi(inbox, notify.NewLogSink(m.log, id))

	s := &Session{
		id:        id,
		createdAt: now,
		Export:    export.NewView(id),
		Inbox:     inbox,
		sink:      sink,
		Workspace: workspace.New(workspace.Options{
			Companies:   m.catalog.Companies(),
			Lists:       lists,
			Alerts:      alerts,
			Sink:        sink,
			Log:         m.log.With(logger.String("session_id", id)),
			Now:         m.now,
			UnknownList: m.cfg.UnknownList,
			Collation:   m.cfg.Collation,
		}),
	}
	s.touch(now)
	return s
}

// register stores s unless a concurrent request registered the same id
// first, in which case that session wins.
func (m *Manager) register(s *Session) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[s.id]; ok {
		return existing
	}
	m.sessions[s.id] = s
	return s
}
