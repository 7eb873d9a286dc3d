package manaserv

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// guildHandler keeps the guild rosters in step with the chat server.
// Members here are identified by name; ids exist only locally.
type guildHandler struct {
	d *dialect.Deps
}

func newGuildHandler(d *dialect.Deps) *guildHandler { return &guildHandler{d: d} }

func (h *guildHandler) IDs() []uint16 {
	return []uint16{
		CPMSG_GUILD_CREATE_RESPONSE,
		CPMSG_GUILD_INVITE_RESPONSE,
		CPMSG_GUILD_ACCEPT_RESPONSE,
		CPMSG_GUILD_GET_MEMBERS_RESPONSE,
		CPMSG_GUILD_UPDATE_LIST,
		CPMSG_GUILD_QUIT_RESPONSE,
		CPMSG_GUILD_PROMOTE_MEMBER_RESPONSE,
		CPMSG_GUILD_INVITED,
		CPMSG_GUILD_REJOIN,
	}
}

func (h *guildHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case CPMSG_GUILD_CREATE_RESPONSE:
		h.createResponse(r)
	case CPMSG_GUILD_INVITE_RESPONSE:
		h.inviteResponse(r)
	case CPMSG_GUILD_ACCEPT_RESPONSE:
		h.acceptResponse(r)
	case CPMSG_GUILD_GET_MEMBERS_RESPONSE:
		h.memberList(r)
	case CPMSG_GUILD_UPDATE_LIST:
		h.updateList(r)
	case CPMSG_GUILD_QUIT_RESPONSE:
		h.quitResponse(r)
	case CPMSG_GUILD_PROMOTE_MEMBER_RESPONSE:
		h.promoteResponse(r)
	case CPMSG_GUILD_INVITED:
		h.invited(r)
	case CPMSG_GUILD_REJOIN:
		h.joined(r)
	}
}

func (h *guildHandler) createResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code != errOK {
		h.d.Notice(event.NoticeError, "Error creating guild.")
		return
	}
	h.d.Notice(event.NoticeServer, "Guild created.")
	h.joined(r)
}

func (h *guildHandler) inviteResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code == errOK {
		h.d.Notice(event.NoticeServer, "Invite sent.")
	}
}

func (h *guildHandler) acceptResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code == errOK {
		h.joined(r)
	}
}

// joined records a guild the player is now a member of and immediately
// asks for its roster.
func (h *guildHandler) joined(r *packet.Reader) {
	name := r.ReadString(-1)
	id := r.ReadInt16()
	rights := r.ReadInt16()
	r.Skip(2) // channel id; guild chat arrives as an ordinary channel
	topic := r.ReadString(-1)
	if r.Truncated() {
		return
	}
	g := h.d.Guilds.Join(id, name)
	g.CanInvite = rights != 0
	if topic != "" {
		h.d.Notice(event.NoticeServer, fmt.Sprintf("Topic: %s", topic))
	}
	w := packet.NewWriter(PCMSG_GUILD_GET_MEMBERS, order)
	w.WriteInt16(id)
	h.d.Out.Send(w)
}

func (h *guildHandler) memberList(r *packet.Reader) {
	code := r.ReadInt8()
	id := r.ReadInt16()
	if r.Truncated() || code != errOK {
		return
	}
	g := h.d.Guilds.Guild(id)
	if g == nil {
		return
	}
	g.ClearMembers()
	for r.Unread() > 0 {
		name := r.ReadString(-1)
		online := r.ReadInt8() != 0
		if r.Truncated() {
			return
		}
		if name == "" {
			continue
		}
		g.UpsertByName(name).Online = online
		event.Emit(h.d.Bus, event.GuildMemberUpdated{
			GuildID: id,
			Name:    name,
			Online:  online,
		})
	}
}

func (h *guildHandler) updateList(r *packet.Reader) {
	id := r.ReadInt16()
	name := r.ReadString(-1)
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	g := h.d.Guilds.Guild(id)
	if g == nil {
		return
	}
	up := event.GuildMemberUpdated{GuildID: id, Name: name}
	switch code {
	case guildEventNew:
		g.UpsertByName(name).Online = true
		up.Online = true
	case guildEventLeft:
		g.RemoveByName(name)
		up.Removed = true
	case guildEventOnline:
		if m := g.MemberByName(name); m != nil {
			m.Online = true
		}
		up.Online = true
	case guildEventOffline:
		if m := g.MemberByName(name); m != nil {
			m.Online = false
		}
	default:
		h.d.Log.Warn("invalid guild event", zap.Int("code", code))
		return
	}
	event.Emit(h.d.Bus, up)
}

func (h *guildHandler) quitResponse(r *packet.Reader) {
	code := r.ReadInt8()
	id := r.ReadInt16()
	if r.Truncated() || code != errOK {
		return
	}
	h.d.Guilds.Quit(id)
	h.d.Notice(event.NoticeServer, "You have left the guild.")
}

func (h *guildHandler) promoteResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code == errOK {
		h.d.Notice(event.NoticeServer, "Member was promoted successfully.")
	} else {
		h.d.Notice(event.NoticeError, "Failed to promote member.")
	}
}

func (h *guildHandler) invited(r *packet.Reader) {
	inviter := r.ReadString(-1)
	guildName := r.ReadString(-1)
	id := r.ReadInt16()
	if r.Truncated() {
		return
	}
	h.d.GuildInviter = id
	event.Emit(h.d.Bus, event.PromptRequested{
		Kind: event.PromptGuildInvite,
		From: inviter,
		Text: fmt.Sprintf("%s has invited you to join the %s guild.", inviter, guildName),
	})
}
