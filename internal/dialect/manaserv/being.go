package manaserv

import (
	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

func wireAction(code int) world.Action {
	switch code {
	case actionWalk:
		return world.ActionWalk
	case actionAttack:
		return world.ActionAttack
	case actionSit:
		return world.ActionSit
	case actionDead:
		return world.ActionDead
	default:
		return world.ActionStand
	}
}

// The wire direction bits match the facing bitmask directly.
func wireDirection(code int) world.Direction {
	return world.Direction(code) & (world.DirDown | world.DirLeft | world.DirUp | world.DirRight)
}

// beingHandler maintains the world set. ManaServ already speaks in
// pixels, so positions pass through unconverted.
type beingHandler struct {
	d *dialect.Deps
}

func newBeingHandler(d *dialect.Deps) *beingHandler { return &beingHandler{d: d} }

func (h *beingHandler) IDs() []uint16 {
	return []uint16{
		GPMSG_BEING_ENTER,
		GPMSG_BEING_LEAVE,
		GPMSG_BEINGS_MOVE,
		GPMSG_BEING_ATTACK,
		GPMSG_BEINGS_DAMAGE,
		GPMSG_BEING_ACTION_CHANGE,
		GPMSG_BEING_DIR_CHANGE,
		GPMSG_BEING_LOOKS_CHANGE,
	}
}

func (h *beingHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case GPMSG_BEING_ENTER:
		h.enter(r)
	case GPMSG_BEING_LEAVE:
		h.leave(r)
	case GPMSG_BEINGS_MOVE:
		h.move(r)
	case GPMSG_BEING_ATTACK:
		h.attack(r)
	case GPMSG_BEINGS_DAMAGE:
		h.damage(r)
	case GPMSG_BEING_ACTION_CHANGE:
		h.actionChange(r)
	case GPMSG_BEING_DIR_CHANGE:
		h.dirChange(r)
	case GPMSG_BEING_LOOKS_CHANGE:
		h.looksChange(r)
	}
}

func (h *beingHandler) enter(r *packet.Reader) {
	typ := r.ReadInt8()
	id := r.ReadInt16()
	action := r.ReadInt8()
	px := r.ReadInt16()
	py := r.ReadInt16()
	dir := r.ReadInt8()
	if r.Truncated() {
		return
	}

	var b *world.Being
	switch typ {
	case objectCharacter:
		name := r.ReadString(-1)
		if p := h.d.World.Player(); p != nil && p.Name == name {
			b = p
		} else if b = h.d.World.Being(id); b == nil {
			var err error
			b, err = h.d.World.CreateBeing(id, world.ActorPlayer, 0)
			if err != nil {
				h.d.Log.Warn("being create failed", zap.Int("id", id), zap.Error(err))
				return
			}
			b.Name = name
			event.Emit(h.d.Bus, event.BeingSpawned{ID: id, Name: name})
		}
		hairStyle := r.ReadInt8()
		hairColor := r.ReadInt8()
		b.SetHair(hairStyle, hairColor)
		if r.ReadInt8() == 0 {
			b.Gender = world.GenderMale
		} else {
			b.Gender = world.GenderFemale
		}
		h.looks(r, b)
	case objectMonster, objectNPC:
		subType := r.ReadInt16()
		name := r.ReadString(-1)
		if b = h.d.World.Being(id); b == nil {
			at := world.ActorMonster
			if typ == objectNPC {
				at = world.ActorNPC
			}
			var err error
			b, err = h.d.World.CreateBeing(id, at, subType)
			if err != nil {
				h.d.Log.Warn("being create failed", zap.Int("id", id), zap.Error(err))
				return
			}
			event.Emit(h.d.Bus, event.BeingSpawned{ID: id, Name: name})
		}
		if name != "" {
			b.Name = name
		}
	default:
		return
	}
	if r.Truncated() {
		return
	}

	b.SetPosition(float64(px), float64(py))
	b.SetFacing(wireDirection(dir))
	b.SetAction(wireAction(action))
}

func (h *beingHandler) leave(r *packet.Reader) {
	id := r.ReadInt16()
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		if h.d.World.Target() == b {
			h.d.World.SetTarget(nil)
		}
		h.d.World.ScheduleDestroy(id)
		event.Emit(h.d.Bus, event.BeingRemoved{ID: id})
	}
}

func (h *beingHandler) move(r *packet.Reader) {
	for r.Unread() > 0 {
		id := r.ReadInt16()
		flags := r.ReadInt8()
		if r.Truncated() || flags < 0 {
			return
		}
		var sx, sy, dx, dy, speed int
		if flags&movingPosition != 0 {
			sx = r.ReadInt16()
			sy = r.ReadInt16()
		}
		if flags&movingDestination != 0 {
			dx = r.ReadInt16()
			dy = r.ReadInt16()
			speed = r.ReadInt8()
		}
		if r.Truncated() {
			return
		}

		b := h.d.World.Being(id)
		if b == nil {
			continue
		}
		if speed > 0 {
			// transferred as tiles per second, times ten to fit a byte
			b.SetMoveSpeed(float64(speed) / 10 * world.TileSize)
		}
		if b == h.d.World.Player() {
			// local movement is client-driven
			continue
		}
		if flags&movingPosition != 0 {
			b.ReconcilePosition(float64(sx), float64(sy), h.d.PositionTolerance)
		}
		if flags&movingDestination != 0 {
			b.SetDestination(float64(dx), float64(dy))
			event.Emit(h.d.Bus, event.BeingMoved{ID: id, DestX: dx, DestY: dy})
		}
	}
}

func (h *beingHandler) attack(r *packet.Reader) {
	id := r.ReadInt16()
	dir := r.ReadInt8()
	r.Skip(1) // attack id
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.SetFacing(wireDirection(dir))
		b.SetAction(world.ActionAttack)
	}
}

func (h *beingHandler) damage(r *packet.Reader) {
	for r.Unread() > 0 {
		id := r.ReadInt16()
		damage := r.ReadInt16()
		if r.Truncated() {
			return
		}
		if b := h.d.World.Being(id); b != nil {
			event.Emit(h.d.Bus, event.DamageTaken{VictimID: id, Amount: damage})
		}
	}
}

func (h *beingHandler) actionChange(r *packet.Reader) {
	id := r.ReadInt16()
	action := r.ReadInt8()
	if r.Truncated() {
		return
	}
	b := h.d.World.Being(id)
	if b == nil {
		return
	}
	a := wireAction(action)
	b.SetAction(a)
	if a == world.ActionDead {
		event.Emit(h.d.Bus, event.BeingDied{ID: id})
		if b == h.d.World.Player() {
			h.d.Notice(event.NoticeServer, "You are dead. Press respawn to continue.")
		}
	}
}

func (h *beingHandler) dirChange(r *packet.Reader) {
	id := r.ReadInt16()
	dir := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.SetFacing(wireDirection(dir))
	}
}

func (h *beingHandler) looksChange(r *packet.Reader) {
	id := r.ReadInt16()
	if r.Truncated() {
		return
	}
	b := h.d.World.Being(id)
	if b == nil || b.ActorType() != world.ActorPlayer {
		return
	}
	h.looks(r, b)
}

// looks reads the variable-size sprite slot list.
func (h *beingHandler) looks(r *packet.Reader, b *world.Being) {
	n := r.ReadInt8()
	for i := 0; i < n; i++ {
		slot := r.ReadInt8()
		item := r.ReadInt16()
		if r.Truncated() {
			return
		}
		// equipment layers start right after the base sprite
		b.SetSprite(world.SpriteShoe+slot, item)
	}
}
