package ea

import (
	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// Athena job ids double as being classifiers.
const (
	jobPortal      = 45
	jobMonsterBase = 1002
	ghostIDFloor   = 110000000
	defaultWalkMs  = 150
)

// wireDirs maps the 8-value direction byte, counting clockwise from
// south.
var wireDirs = [8]world.Direction{
	world.DirDown,
	world.DirDown | world.DirLeft,
	world.DirLeft,
	world.DirLeft | world.DirUp,
	world.DirUp,
	world.DirUp | world.DirRight,
	world.DirRight,
	world.DirRight | world.DirDown,
}

// packedDirs maps the 2-bit direction carried in packed coordinates.
var packedDirs = [4]world.Direction{
	world.DirDown,
	world.DirLeft,
	world.DirUp,
	world.DirRight,
}

func jobToType(job int) world.ActorType {
	switch {
	case job <= 25 || (job >= 4001 && job <= 4049):
		return world.ActorPlayer
	case job == jobPortal:
		return world.ActorPortal
	case job >= 46 && job <= 1000:
		return world.ActorNPC
	case job > 1000 && job <= 2000:
		return world.ActorMonster
	default:
		return world.ActorUnknown
	}
}

// BeingHandler maintains the world set from being traffic.
type BeingHandler struct {
	d *dialect.Deps
}

func NewBeingHandler(d *dialect.Deps) *BeingHandler { return &BeingHandler{d: d} }

func (h *BeingHandler) IDs() []uint16 {
	return []uint16{
		SMSG_BEING_VISIBLE,
		SMSG_BEING_MOVE,
		SMSG_BEING_SPAWN,
		SMSG_BEING_REMOVE,
		SMSG_BEING_ACTION,
		SMSG_BEING_CHANGE_DIRECTION,
		SMSG_BEING_NAME_RESPONSE,
		SMSG_BEING_STATUS_CHANGE,
		SMSG_BEING_STATUS_CHANGE_2,
		SMSG_BEING_RESURRECT,
		SMSG_PLAYER_UPDATE_1,
		SMSG_PLAYER_UPDATE_2,
		SMSG_PLAYER_MOVE,
	}
}

func (h *BeingHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_BEING_VISIBLE, SMSG_PLAYER_UPDATE_1:
		h.visibleOrMove(r, false, false)
	case SMSG_PLAYER_UPDATE_2:
		h.visibleOrMove(r, false, true)
	case SMSG_BEING_MOVE, SMSG_PLAYER_MOVE:
		h.visibleOrMove(r, true, false)
	case SMSG_BEING_SPAWN:
		h.spawn(r)
	case SMSG_BEING_REMOVE:
		h.remove(r)
	case SMSG_BEING_ACTION:
		h.action(r)
	case SMSG_BEING_CHANGE_DIRECTION:
		h.changeDirection(r)
	case SMSG_BEING_NAME_RESPONSE:
		h.nameResponse(r)
	case SMSG_BEING_STATUS_CHANGE:
		h.statusChange(r)
	case SMSG_BEING_STATUS_CHANGE_2:
		h.statusChange2(r)
	case SMSG_BEING_RESURRECT:
		h.resurrect(r)
	}
}

// lookupOrCreate resolves the being for an update, creating it when the
// server introduces a new one. A nil return means the update should be
// dropped: ghosts of dead chars, portals, and unclassifiable jobs.
func (h *BeingHandler) lookupOrCreate(id, job int) *world.Being {
	if b := h.d.World.Being(id); b != nil {
		return b
	}
	if job == 0 && id >= ghostIDFloor {
		return nil
	}
	typ := jobToType(job)
	if typ == world.ActorUnknown || typ == world.ActorPortal {
		return nil
	}
	subType := 0
	if typ == world.ActorMonster {
		subType = job - jobMonsterBase
	}
	b, err := h.d.World.CreateBeing(id, typ, subType)
	if err != nil {
		h.d.Log.Warn("being create failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	event.Emit(h.d.Bus, event.BeingSpawned{ID: id})
	if typ == world.ActorPlayer {
		// players are announced nameless; ask
		h.d.Out.Send(RequestName(id))
	}
	return b
}

func (h *BeingHandler) visibleOrMove(r *packet.Reader, moving, spawnLike bool) {
	id := r.ReadInt32()
	speed := r.ReadInt16()
	stun := r.ReadInt16()
	opt2 := r.ReadInt16()
	option := r.ReadInt16()
	job := r.ReadInt16()

	b := h.lookupOrCreate(id, job)
	if b == nil {
		return
	}

	if speed <= 0 {
		speed = defaultWalkMs
	}
	b.SetWalkDelay(speed)

	hairStyle := r.ReadInt16()
	weapon := r.ReadInt16()
	headBottom := r.ReadInt16()
	if moving {
		r.Skip(4) // server tick
	}
	shield := r.ReadInt16()
	headTop := r.ReadInt16()
	headMid := r.ReadInt16()
	hairColor := r.ReadInt16()
	r.Skip(2)
	r.Skip(2) // shoes
	r.Skip(2) // gloves
	r.Skip(4) // guild id
	r.Skip(2) // guild emblem
	r.Skip(2) // manner
	opt3 := r.ReadInt16()
	r.Skip(1) // karma
	gender := r.ReadInt8()

	if r.Truncated() {
		return
	}

	b.SetSprite(world.SpriteWeapon, weapon)
	b.SetSprite(world.SpriteShield, shield)
	b.SetSprite(world.SpriteBottom, headBottom)
	b.SetSprite(world.SpriteHat, headTop)
	b.SetSprite(world.SpriteTop, headMid)
	b.SetHair(hairStyle, hairColor)
	if b.ActorType() == world.ActorPlayer {
		if gender == 0 {
			b.Gender = world.GenderFemale
		} else {
			b.Gender = world.GenderMale
		}
	}

	applyStun(h.d, b, stun)
	applyStatusWord(h.d, b, uint16(opt2), uint16(option))
	applyOptionBits(h.d, b, uint16(opt3), h.d.Statuses.Opt3Bits())

	if moving {
		srcX, srcY, dstX, dstY := r.ReadCoordinatePair()
		if r.Truncated() {
			return
		}
		px, py := world.TileCenter(srcX, srcY)
		b.ReconcilePosition(px, py, h.d.PositionTolerance)
		b.SetTileDestination(dstX, dstY)
		dpx, dpy := world.TileCenter(dstX, dstY)
		event.Emit(h.d.Bus, event.BeingMoved{ID: id, DestX: int(dpx), DestY: int(dpy)})
		return
	}

	x, y, dir := r.ReadCoordinates()
	if r.Truncated() {
		return
	}
	b.SetTilePosition(x, y)
	b.SetFacing(packedDirs[dir&0x03])
	if spawnLike {
		r.Skip(2)
		return
	}
	r.Skip(2)
	if r.ReadInt8() == 2 {
		b.SetAction(world.ActionSit)
	}
}

func (h *BeingHandler) spawn(r *packet.Reader) {
	id := r.ReadInt32()
	speed := r.ReadInt16()
	stun := r.ReadInt16()
	opt2 := r.ReadInt16()
	option := r.ReadInt16()
	job := r.ReadInt16()

	b := h.lookupOrCreate(id, job)
	if b == nil {
		return
	}
	if speed <= 0 {
		speed = defaultWalkMs
	}
	b.SetWalkDelay(speed)
	applyStun(h.d, b, stun)
	applyStatusWord(h.d, b, uint16(opt2), uint16(option))

	r.Skip(r.Unread() - 3)
	x, y, dir := r.ReadCoordinates()
	if r.Truncated() {
		return
	}
	b.SetTilePosition(x, y)
	b.SetFacing(packedDirs[dir&0x03])
}

func (h *BeingHandler) remove(r *packet.Reader) {
	id := r.ReadInt32()
	dead := r.ReadInt8() == 1
	if r.Truncated() {
		return
	}
	b := h.d.World.Being(id)
	if b == nil {
		return
	}

	if dead {
		// the body stays for its death animation
		b.SetAction(world.ActionDead)
		event.Emit(h.d.Bus, event.BeingDied{ID: id})
		return
	}
	if h.d.World.Target() == b {
		h.d.World.SetTarget(nil)
	}
	h.d.World.ScheduleDestroy(id)
	event.Emit(h.d.Bus, event.BeingRemoved{ID: id})
}

// action types on the wire
const (
	actionHit      = 0x00
	actionSit      = 0x02
	actionStand    = 0x03
	actionReflect  = 0x04
	actionAttack   = 0x08
	actionCritical = 0x0a
	actionFlee     = 0x0b
)

func (h *BeingHandler) action(r *packet.Reader) {
	srcID := r.ReadInt32()
	dstID := r.ReadInt32()
	r.Skip(4) // server tick
	r.Skip(4) // src speed
	r.Skip(4) // dst speed
	damage := r.ReadInt16()
	r.Skip(2)
	typ := r.ReadInt8()
	r.Skip(2)
	if r.Truncated() {
		return
	}

	src := h.d.World.Being(srcID)
	dst := h.d.World.Being(dstID)

	switch typ {
	case actionHit, actionAttack, actionCritical, actionReflect, actionFlee:
		if src != nil {
			src.SetAction(world.ActionAttack)
		}
		if dst != nil && damage > 0 {
			event.Emit(h.d.Bus, event.DamageTaken{
				VictimID:   dstID,
				AttackerID: srcID,
				Amount:     damage,
			})
		}
	case actionSit:
		if src != nil {
			src.SetAction(world.ActionSit)
		}
	case actionStand:
		if src != nil {
			src.SetAction(world.ActionStand)
		}
	}
}

func (h *BeingHandler) changeDirection(r *packet.Reader) {
	id := r.ReadInt32()
	r.Skip(2) // head direction
	dir := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.SetFacing(wireDirs[dir&0x07])
	}
}

func (h *BeingHandler) nameResponse(r *packet.Reader) {
	id := r.ReadInt32()
	name := r.ReadString(24)
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.Name = name
	}
}

func (h *BeingHandler) statusChange(r *packet.Reader) {
	id := r.ReadInt32()
	stun := r.ReadInt16()
	opt2 := r.ReadInt16()
	option := r.ReadInt16()
	r.Skip(1)
	if r.Truncated() {
		return
	}
	b := h.d.World.Being(id)
	if b == nil {
		return
	}
	applyStun(h.d, b, stun)
	applyStatusWord(h.d, b, uint16(opt2), uint16(option))
}

func (h *BeingHandler) statusChange2(r *packet.Reader) {
	effectID := r.ReadInt16()
	id := r.ReadInt32()
	active := r.ReadInt8() != 0
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		setEffect(h.d, b, effectID, active)
	}
}

func (h *BeingHandler) resurrect(r *packet.Reader) {
	id := r.ReadInt32()
	r.Skip(2)
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.SetAction(world.ActionStand)
	}
}
