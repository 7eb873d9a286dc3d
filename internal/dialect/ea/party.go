package ea

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// PartyHandler maintains the party roster and party chat.
type PartyHandler struct {
	d *dialect.Deps
}

func NewPartyHandler(d *dialect.Deps) *PartyHandler { return &PartyHandler{d: d} }

func (h *PartyHandler) IDs() []uint16 {
	return []uint16{
		SMSG_PARTY_CREATE,
		SMSG_PARTY_INFO,
		SMSG_PARTY_INVITED,
		SMSG_PARTY_SETTINGS,
		SMSG_PARTY_LEAVE,
		SMSG_PARTY_UPDATE_HP,
		SMSG_PARTY_UPDATE_COORDS,
		SMSG_PARTY_MESSAGE,
	}
}

func (h *PartyHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_PARTY_CREATE:
		h.created(r)
	case SMSG_PARTY_INFO:
		h.info(r)
	case SMSG_PARTY_INVITED:
		h.invited(r)
	case SMSG_PARTY_SETTINGS:
		h.settings(r)
	case SMSG_PARTY_LEAVE:
		h.leave(r)
	case SMSG_PARTY_UPDATE_HP:
		h.updateHP(r)
	case SMSG_PARTY_UPDATE_COORDS:
		h.updateCoords(r)
	case SMSG_PARTY_MESSAGE:
		h.message(r)
	}
}

func (h *PartyHandler) created(r *packet.Reader) {
	switch r.ReadInt8() {
	case 0:
		h.d.Notice(event.NoticeServer, "Party successfully created.")
	default:
		h.d.Notice(event.NoticeError, "Could not create party.")
	}
}

func (h *PartyHandler) info(r *packet.Reader) {
	length := r.ReadInt16()
	name := r.ReadString(24)
	if r.Truncated() {
		return
	}
	h.d.Party.Name = name
	h.d.Party.Clear()

	n := (length - 28) / 46
	for i := 0; i < n; i++ {
		id := r.ReadInt32()
		nick := r.ReadString(24)
		mapName := r.ReadString(16)
		leader := r.ReadInt8() == 0
		online := r.ReadInt8() == 0
		if r.Truncated() {
			return
		}
		m := h.d.Party.Upsert(id, nick)
		m.Map = mapName
		m.Leader = leader
		m.Online = online
		event.Emit(h.d.Bus, event.PartyMemberUpdated{
			ID: id, Name: nick, Map: mapName, Leader: leader, Online: online,
		})
	}
}

func (h *PartyHandler) invited(r *packet.Reader) {
	id := r.ReadInt32()
	partyName := r.ReadString(24)
	if r.Truncated() {
		return
	}
	h.d.PartyInviter = id
	nick := ""
	if b := h.d.World.Being(id); b != nil {
		nick = b.Name
	}
	event.Emit(h.d.Bus, event.PromptRequested{
		Kind: event.PromptPartyInvite,
		From: nick,
		Text: fmt.Sprintf("%s invites you to join the %s party.", nick, partyName),
	})
}

func (h *PartyHandler) settings(r *packet.Reader) {
	exp := r.ReadInt16()
	r.Skip(2) // item sharing, never used by the servers
	if r.Truncated() {
		return
	}
	switch exp {
	case 0:
		h.d.Notice(event.NoticeServer, "Experience sharing disabled.")
	case 1:
		h.d.Notice(event.NoticeServer, "Experience sharing enabled.")
	case 0xffff:
		h.d.Notice(event.NoticeError, "Experience sharing not possible.")
	default:
		h.d.Log.Info("unknown party exp option", zap.Int("exp", exp))
	}
}

func (h *PartyHandler) leave(r *packet.Reader) {
	id := r.ReadInt32()
	nick := r.ReadString(24)
	r.Skip(1)
	if r.Truncated() {
		return
	}
	h.d.Party.Remove(id)
	event.Emit(h.d.Bus, event.PartyMemberUpdated{ID: id, Name: nick, Removed: true})

	p := h.d.World.Player()
	if p != nil && p.ActorID() == id {
		h.d.Party.Leave()
		h.d.Notice(event.NoticeServer, "You have left the party.")
		return
	}
	h.d.Notice(event.NoticeServer, fmt.Sprintf("%s has left your party.", nick))
}

func (h *PartyHandler) updateHP(r *packet.Reader) {
	id := r.ReadInt32()
	hp := r.ReadInt16()
	maxHP := r.ReadInt16()
	if r.Truncated() {
		return
	}
	m := h.d.Party.Member(id)
	if m == nil {
		return
	}
	m.HP = hp
	m.MaxHP = maxHP
	event.Emit(h.d.Bus, event.PartyMemberUpdated{ID: id, Name: m.Name, Map: m.Map, Leader: m.Leader, Online: m.Online})
}

func (h *PartyHandler) updateCoords(r *packet.Reader) {
	id := r.ReadInt32()
	x := r.ReadInt16()
	y := r.ReadInt16()
	if r.Truncated() {
		return
	}
	if b := h.d.World.Being(id); b != nil {
		px, py := world.TileCenter(x, y)
		b.ReconcilePosition(px, py, h.d.PositionTolerance)
	}
}

func (h *PartyHandler) message(r *packet.Reader) {
	length := r.ReadInt16()
	id := r.ReadInt32()
	text := r.ReadString(length - 8)
	if r.Truncated() {
		return
	}
	sender := ""
	if m := h.d.Party.Member(id); m != nil {
		sender = m.Name
	}
	event.Emit(h.d.Bus, event.ChatMessage{Source: event.ChatParty, Sender: sender, Text: text})
}
