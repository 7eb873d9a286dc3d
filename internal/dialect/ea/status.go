package ea

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/world"
)

// Athena carries status effects in four option words. opt1 holds one
// stun-family mode matched by value; opt0, opt2 and opt3 are bitmasks.
// The status-effect table maps each channel to effect ids.

func applyStun(d *dialect.Deps, b *world.Being, mode int) {
	prev, changed := b.SetStunMode(mode)
	if !changed {
		return
	}
	values := d.Statuses.Opt1Values()
	if id, ok := values[uint16(prev)]; ok {
		setEffect(d, b, id, false)
	}
	if id, ok := values[uint16(mode)]; ok {
		setEffect(d, b, id, true)
	}
}

func applyOptionBits(d *dialect.Deps, b *world.Being, bits uint16, table map[uint16]int) {
	for bit, id := range table {
		setEffect(d, b, id, bits&bit != 0)
	}
}

// applyStatusWord applies the combined 32-bit mask: opt2 in the low
// half, the option word in the high half.
func applyStatusWord(d *dialect.Deps, b *world.Being, opt2, option uint16) {
	applyOptionBits(d, b, opt2, d.Statuses.Opt2Bits())
	applyOptionBits(d, b, option, d.Statuses.Opt0Bits())
}

func setEffect(d *dialect.Deps, b *world.Being, effectID int, active bool) {
	if !b.SetStatusEffect(effectID, active) {
		return
	}
	event.Emit(d.Bus, event.StatusEffectChanged{
		BeingID:  b.ActorID(),
		EffectID: effectID,
		Active:   active,
	})
	if d.World.Player() != b {
		return
	}
	if e := d.Statuses.Get(effectID); e != nil {
		msg := e.MessageOff
		if active {
			msg = e.MessageOn
		}
		if msg != "" {
			d.Notice(event.NoticeServer, msg)
		}
	}
}
