package manaserv

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

type playerHandler struct {
	d *dialect.Deps
}

func newPlayerHandler(d *dialect.Deps) *playerHandler { return &playerHandler{d: d} }

func (h *playerHandler) IDs() []uint16 {
	return []uint16{
		GPMSG_PLAYER_MAP_CHANGE,
		GPMSG_PLAYER_ATTRIBUTE_CHANGE,
		GPMSG_PLAYER_EXP_CHANGE,
		GPMSG_LEVELUP,
		GPMSG_LEVEL_PROGRESS,
	}
}

func (h *playerHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case GPMSG_PLAYER_MAP_CHANGE:
		h.mapChange(r)
	case GPMSG_PLAYER_ATTRIBUTE_CHANGE:
		h.attributeChange(r)
	case GPMSG_PLAYER_EXP_CHANGE:
		h.expChange(r)
	case GPMSG_LEVELUP:
		h.levelUp(r)
	case GPMSG_LEVEL_PROGRESS:
		h.levelProgress(r)
	}
}

func (h *playerHandler) mapChange(r *packet.Reader) {
	name := r.ReadString(-1)
	x := r.ReadInt16()
	y := r.ReadInt16()
	if r.Truncated() {
		return
	}
	h.d.World.Clear()
	if p := h.d.World.Player(); p != nil {
		p.SetPosition(float64(x), float64(y))
		p.SetAction(world.ActionStand)
	}
	h.d.Log.Info("map changed", zap.String("map", name), zap.Int("x", x), zap.Int("y", y))
	event.Emit(h.d.Bus, event.MapChanged{Map: name, X: x, Y: y})
}

func (h *playerHandler) attributeChange(r *packet.Reader) {
	for r.Unread() > 0 {
		attr := r.ReadInt16()
		r.Skip(4) // base value, fixed point
		value := r.ReadInt32()
		if r.Truncated() {
			return
		}
		// fixed-point with a 256 denominator
		event.Emit(h.d.Bus, event.StatChanged{
			Stat:  fmt.Sprintf("attribute %d", attr),
			Value: value / 256,
		})
	}
}

func (h *playerHandler) expChange(r *packet.Reader) {
	for r.Unread() > 0 {
		skill := r.ReadInt16()
		current := r.ReadInt32()
		r.Skip(4) // exp needed for next level
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.StatChanged{
			Stat:  fmt.Sprintf("exp %d", skill),
			Value: current,
		})
	}
}

func (h *playerHandler) levelUp(r *packet.Reader) {
	level := r.ReadInt16()
	r.Skip(4) // character and correction points
	if r.Truncated() {
		return
	}
	if p := h.d.World.Player(); p != nil {
		p.Level = level
	}
	event.Emit(h.d.Bus, event.StatChanged{Stat: "level", Value: level})
	h.d.Notice(event.NoticeServer, fmt.Sprintf("You reached level %d!", level))
}

func (h *playerHandler) levelProgress(r *packet.Reader) {
	percent := r.ReadInt8()
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.StatChanged{Stat: "level progress", Value: percent})
}
