package ea

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// GuildHandler covers the slice of the guild protocol these servers
// actually speak. Rosters never arrive on this family; the registry
// only learns the guild the player belongs to.
type GuildHandler struct {
	d *dialect.Deps
}

func NewGuildHandler(d *dialect.Deps) *GuildHandler { return &GuildHandler{d: d} }

func (h *GuildHandler) IDs() []uint16 {
	return []uint16{
		SMSG_GUILD_CREATE_RESPONSE,
		SMSG_GUILD_INVITE_ACK,
		SMSG_GUILD_INVITE,
		SMSG_GUILD_POSITION_INFO,
	}
}

func (h *GuildHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_GUILD_CREATE_RESPONSE:
		h.createResponse(r)
	case SMSG_GUILD_INVITE_ACK:
		h.inviteAck(r)
	case SMSG_GUILD_INVITE:
		h.invite(r)
	case SMSG_GUILD_POSITION_INFO:
		h.positionInfo(r)
	}
}

func (h *GuildHandler) createResponse(r *packet.Reader) {
	flag := r.ReadInt8()
	if r.Truncated() {
		return
	}
	switch flag {
	case 0:
		h.d.Notice(event.NoticeServer, "Guild created.")
	case 1:
		h.d.Notice(event.NoticeError, "You are already in a guild.")
	case 2:
		h.d.Notice(event.NoticeError, "You can't have a guild with that name.")
	case 3:
		h.d.Notice(event.NoticeError, "You lack the item needed to found a guild.")
	default:
		h.d.Log.Warn("unknown guild create flag", zap.Int("flag", flag))
	}
}

func (h *GuildHandler) inviteAck(r *packet.Reader) {
	flag := r.ReadInt8()
	if r.Truncated() {
		return
	}
	switch flag {
	case 0:
		h.d.Notice(event.NoticeError, "Could not invite the player to your guild.")
	case 1:
		h.d.Notice(event.NoticeServer, "Your guild invitation was rejected.")
	case 2:
		h.d.Notice(event.NoticeServer, "Your guild invitation was accepted.")
	case 3:
		h.d.Notice(event.NoticeError, "The guild is full.")
	default:
		h.d.Log.Warn("unknown guild invite flag", zap.Int("flag", flag))
	}
}

func (h *GuildHandler) invite(r *packet.Reader) {
	guildID := r.ReadInt32()
	guildName := r.ReadString(24)
	if r.Truncated() {
		return
	}
	h.d.GuildInviter = guildID
	event.Emit(h.d.Bus, event.PromptRequested{
		Kind: event.PromptGuildInvite,
		Text: fmt.Sprintf("You have been invited to join the %s guild.", guildName),
	})
}

func (h *GuildHandler) positionInfo(r *packet.Reader) {
	guildID := r.ReadInt32()
	emblem := r.ReadInt32()
	mode := r.ReadInt32()
	r.Skip(5)
	name := r.ReadString(24)
	if r.Truncated() {
		return
	}
	h.d.Guilds.Join(guildID, name)
	if p := h.d.World.Player(); p != nil {
		p.GuildName = name
	}
	h.d.Log.Debug("guild position info",
		zap.Int("guild", guildID),
		zap.Int("emblem", emblem),
		zap.Int("mode", mode))
}
