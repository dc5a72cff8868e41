package notify

import (
	"testing"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
)

func TestInboxDrain(t *testing.T) {
	inbox := NewInbox(10)
	inbox.Notify(domain.Notification{Title: "first"})
	inbox.Notify(domain.Notification{Title: "second"})

	if inbox.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", inbox.Len())
	}

	got := inbox.Drain()
	if len(got) != 2 || got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("Drain() = %+v", got)
	}
	if again := inbox.Drain(); len(again) != 0 || again == nil {
		t.Errorf("second Drain() = %#v, want empty non-nil slice", again)
	}
}

func TestInboxDropsOldest(t *testing.T) {
	inbox := NewInbox(2)
	for _, title := range []string{"a", "b", "c"} {
		inbox.Notify(domain.Notification{Title: title})
	}

	got := inbox.Drain()
	if len(got) != 2 || got[0].Title != "b" || got[1].Title != "c" {
		t.Errorf("Drain() = %+v, want [b c]", got)
	}
	if inbox.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", inbox.Dropped())
	}
}

func TestNewInboxDefaultSize(t *testing.T) {
	inbox := NewInbox(0)
	for i := 0; i < DefaultInboxSize+5; i++ {
		inbox.Notify(domain.Notification{})
	}
	if inbox.Len() != DefaultInboxSize {
		t.Errorf("Len() = %d, want %d", inbox.Len(), DefaultInboxSize)
	}
}

func TestMulti(t *testing.T) {
	a, b := NewInbox(5), NewInbox(5)
	sink := Multi(a, b, NewLogSink(logger.Nop(), "s1"), Discard)
	sink.Notify(domain.Notification{Title: "hello"})

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("Multi() delivered %d and %d, want 1 and 1", a.Len(), b.Len())
	}
}
