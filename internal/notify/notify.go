// Package notify delivers user-facing notifications.
// Delivery is fire-and-forget: sinks never report failures to the caller.
package notify

import (
	"sync"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
)

// Sink accepts notifications.
type Sink interface {
	Notify(n domain.Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(n domain.Notification)

func (f SinkFunc) Notify(n domain.Notification) { f(n) }

// Discard drops every notification.
var Discard Sink = SinkFunc(func(domain.Notification) {})

// DefaultInboxSize bounds the per-session backlog.
const DefaultInboxSize = 50

// Inbox buffers notifications until the client drains them.
// When full, the oldest entry is dropped.
type Inbox struct {
	mu      sync.Mutex
	items   []domain.Notification
	max     int
	dropped int
}

// NewInbox creates an inbox holding at most size notifications.
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{max: size}
}

func (in *Inbox) Notify(n domain.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if len(in.items) >= in.max {
		in.items = in.items[1:]
		in.dropped++
	}
	in.items = append(in.items, n)
}

// Drain returns the buffered notifications oldest first and empties the inbox.
func (in *Inbox) Drain() []domain.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := in.items
	in.items = nil
	if out == nil {
		out = []domain.Notification{}
	}
	return out
}

// Len returns the number of pending notifications.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return len(in.items)
}

// Dropped returns how many notifications were discarded for lack of room.
func (in *Inbox) Dropped() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.dropped
}

// LogSink writes notifications to the structured log at debug level.
type LogSink struct {
	log     logger.Logger
	session string
}

// NewLogSink creates a sink tagging each line with the session id.
func NewLogSink(log logger.Logger, session string) *LogSink {
	return &LogSink{log: log, session: session}
}

func (s *LogSink) Notify(n domain.Notification) {
	s.log.Debug("notification",
		logger.String("session_id", s.session),
		logger.String("severity", string(n.Severity)),
		logger.String("title", n.Title),
		logger.String("description", n.Description))
}

// Multi fans a notification out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(n domain.Notification) {
		for _, s := range sinks {
			s.Notify(n)
		}
	})
}
