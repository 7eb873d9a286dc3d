package system

import "time"

// Phase defines execution ordering within one logic tick.
type Phase int

const (
	PhaseInput   Phase = iota // 0: drain and dispatch decoded messages
	PhaseEvents               // 1: deliver last tick's events
	PhaseUpdate               // 2: advance interpolation and animation
	PhaseCleanup              // 3: flush scheduled entity destruction
)

// System is one per-tick pass over client state. Systems run on the logic
// goroutine only.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
