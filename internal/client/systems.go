package client

import (
	"time"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/core/system"
	"github.com/manago/client/internal/world"
)

// inputSystem drains user command lines and the connection's inbound
// queue, dispatching each decoded frame. Runs first so every handler's
// mutations land before events and movement.
type inputSystem struct {
	s *Session
}

func (*inputSystem) Phase() system.Phase { return system.PhaseInput }

func (sys *inputSystem) Update(time.Duration) {
commands:
	for {
		select {
		case line := <-sys.s.input:
			sys.s.Execute(line)
		default:
			break commands
		}
	}

	conn := sys.s.conn
	if conn == nil {
		return
	}
	for {
		select {
		case frame, ok := <-conn.InQueue:
			if !ok {
				return
			}
			if err := sys.s.reg.Dispatch(frame); err != nil {
				sys.s.log.Warn("message dispatch failed", zap.Error(err))
			}
		default:
			return
		}
	}
}

// eventSystem publishes last tick's events to subscribers.
type eventSystem struct {
	bus *event.Bus
}

func (*eventSystem) Phase() system.Phase { return system.PhaseEvents }

func (sys *eventSystem) Update(time.Duration) {
	sys.bus.SwapBuffers()
	sys.bus.DispatchAll()
}

// movementSystem advances position interpolation.
type movementSystem struct {
	world *world.Manager
}

func (*movementSystem) Phase() system.Phase { return system.PhaseUpdate }

func (sys *movementSystem) Update(dt time.Duration) {
	sys.world.Logic(dt)
}

// cleanupSystem flushes deferred actor destruction at tick end.
type cleanupSystem struct {
	world *world.Manager
}

func (*cleanupSystem) Phase() system.Phase { return system.PhaseCleanup }

func (sys *cleanupSystem) Update(time.Duration) {
	sys.world.FlushScheduled()
}
