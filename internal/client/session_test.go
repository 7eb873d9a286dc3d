package client

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/manago/client/internal/config"
	"github.com/manago/client/internal/core/event"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Dialect = "tmwathena"
	s, err := New(cfg, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSubmitRunsCommandOnTick(t *testing.T) {
	s := newTestSession(t)

	var notices []event.Notice
	event.Subscribe(s.bus, func(n event.Notice) { notices = append(notices, n) })

	// any goroutine may queue a line; nothing runs until the tick
	s.Submit("/nosuchcommand")
	if len(notices) != 0 {
		t.Fatalf("command ran before the tick: %v", notices)
	}

	s.runner.Tick(10 * time.Millisecond)
	if len(notices) != 1 {
		t.Fatalf("notices = %v, want the unknown-command reply", notices)
	}
}

func TestSubmitDrainsAllPendingLines(t *testing.T) {
	s := newTestSession(t)

	var notices []event.Notice
	event.Subscribe(s.bus, func(n event.Notice) { notices = append(notices, n) })

	s.Submit("/one")
	s.Submit("/two")
	s.Submit("/three")
	s.runner.Tick(10 * time.Millisecond)

	if len(notices) != 3 {
		t.Fatalf("got %d replies, want 3", len(notices))
	}
}
