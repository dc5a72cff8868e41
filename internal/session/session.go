// Package session maps client session ids to their workspaces.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/notify"
	"github.com/MrSnakeDoc/leadscout/internal/workspace"
)

// Session is one client's isolated state.
type Session struct {
	id        string
	createdAt time.Time
	lastSeen  atomic.Int64 // unix nanos

	Workspace *workspace.Workspace
	Export    *export.View
	Inbox     *notify.Inbox

	sink notify.Sink

	// persistMu guards the bookkeeping of the last snapshot write.
	persistMu sync.Mutex
	savedRev  uint64
	savedAt   time.Time
	persisted bool
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session was created or restored.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Sink returns where notifications of this session go.
func (s *Session) Sink() notify.Sink { return s.sink }

// LastSeen returns the time of the last request that used the session.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}
