package ea

import (
	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// Athena stat ids carried by the two stat-update messages.
const (
	statWalkSpeed   = 0x0000
	statExp         = 0x0001
	statJobExp      = 0x0002
	statKarma       = 0x0003
	statManner      = 0x0004
	statHP          = 0x0005
	statMaxHP       = 0x0006
	statMP          = 0x0007
	statMaxMP       = 0x0008
	statCharPoints  = 0x0009
	statLevel       = 0x000b
	statSkillPoints = 0x000c
	statWeight      = 0x0018
	statMaxWeight   = 0x0019
	statGP          = 0x0014
	statJobLevel    = 0x0037
)

var statNames = map[int]string{
	statWalkSpeed:   "walk speed",
	statExp:         "exp",
	statJobExp:      "job exp",
	statKarma:       "karma",
	statManner:      "manner",
	statHP:          "hp",
	statMaxHP:       "max hp",
	statMP:          "mp",
	statMaxMP:       "max mp",
	statCharPoints:  "char points",
	statLevel:       "level",
	statSkillPoints: "skill points",
	statWeight:      "weight",
	statMaxWeight:   "max weight",
	statGP:          "money",
	statJobLevel:    "job level",
}

// PlayerHandler tracks the local player: map entry, warps, movement
// acknowledgements and stat updates.
type PlayerHandler struct {
	d *dialect.Deps
}

func NewPlayerHandler(d *dialect.Deps) *PlayerHandler { return &PlayerHandler{d: d} }

func (h *PlayerHandler) IDs() []uint16 {
	return []uint16{
		SMSG_MAP_LOGIN_SUCCESS,
		SMSG_WALK_RESPONSE,
		SMSG_PLAYER_STOP,
		SMSG_PLAYER_WARP,
		SMSG_PLAYER_STAT_UPDATE_1,
		SMSG_PLAYER_STAT_UPDATE_2,
		SMSG_PLAYER_ATTACK_RANGE,
		SMSG_MAP_QUIT_RESPONSE,
		SMSG_PLAYER_GUILD_PARTY_INFO,
	}
}

func (h *PlayerHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_MAP_LOGIN_SUCCESS:
		h.mapLogin(r)
	case SMSG_WALK_RESPONSE:
		h.walkResponse(r)
	case SMSG_PLAYER_STOP:
		h.stop(r)
	case SMSG_PLAYER_WARP:
		h.warp(r)
	case SMSG_PLAYER_STAT_UPDATE_1, SMSG_PLAYER_STAT_UPDATE_2:
		h.statUpdate(r)
	case SMSG_PLAYER_ATTACK_RANGE:
		h.attackRange(r)
	case SMSG_MAP_QUIT_RESPONSE:
		h.quitResponse(r)
	case SMSG_PLAYER_GUILD_PARTY_INFO:
		h.guildPartyInfo(r)
	}
}

func (h *PlayerHandler) mapLogin(r *packet.Reader) {
	r.Skip(4) // server tick
	x, y, dir := r.ReadCoordinates()
	if r.Truncated() {
		return
	}
	p := h.d.World.Player()
	if p == nil {
		h.d.Log.Warn("map login before player setup")
		return
	}
	p.SetTilePosition(x, y)
	p.SetFacing(packedDirs[dir&0x03])
	h.d.Out.Send(MapLoaded())
}

func (h *PlayerHandler) walkResponse(r *packet.Reader) {
	r.Skip(4) // server tick
	srcX, srcY, dstX, dstY := r.ReadCoordinatePair()
	if r.Truncated() {
		return
	}
	p := h.d.World.Player()
	if p == nil {
		return
	}
	px, py := world.TileCenter(srcX, srcY)
	p.ReconcilePosition(px, py, h.d.PositionTolerance)
	p.SetTileDestination(dstX, dstY)
}

func (h *PlayerHandler) stop(r *packet.Reader) {
	id := r.ReadInt32()
	x := r.ReadInt16()
	y := r.ReadInt16()
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.SetTilePosition(x, y)
	}
}

func (h *PlayerHandler) warp(r *packet.Reader) {
	mapName := r.ReadString(16)
	x := r.ReadInt16()
	y := r.ReadInt16()
	if r.Truncated() {
		return
	}

	h.d.World.Clear()
	if p := h.d.World.Player(); p != nil {
		p.SetTilePosition(x, y)
		p.SetAction(world.ActionStand)
	}
	event.Emit(h.d.Bus, event.MapChanged{Map: mapName, X: x, Y: y})
	h.d.Log.Info("map changed", zap.String("map", mapName), zap.Int("x", x), zap.Int("y", y))
	h.d.Out.Send(MapLoaded())
}

func (h *PlayerHandler) statUpdate(r *packet.Reader) {
	typ := r.ReadInt16()
	value := r.ReadInt32()
	if r.Truncated() {
		return
	}
	name, ok := statNames[typ]
	if !ok {
		h.d.Log.Debug("unknown stat update", zap.Int("type", typ), zap.Int("value", value))
		return
	}
	if name == "level" {
		if p := h.d.World.Player(); p != nil {
			p.Level = value
		}
	}
	event.Emit(h.d.Bus, event.StatChanged{Stat: name, Value: value})
}

func (h *PlayerHandler) attackRange(r *packet.Reader) {
	rng := r.ReadInt16()
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.StatChanged{Stat: "attack range", Value: rng})
}

func (h *PlayerHandler) quitResponse(r *packet.Reader) {
	if r.ReadInt16() == 0 {
		h.d.Notice(event.NoticeServer, "Map quit acknowledged.")
	}
}

func (h *PlayerHandler) guildPartyInfo(r *packet.Reader) {
	id := r.ReadInt32()
	party := r.ReadString(24)
	guild := r.ReadString(24)
	r.ReadString(24) // guild position
	r.ReadString(24) // unused
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		b.PartyName = party
		b.GuildName = guild
	}
}
