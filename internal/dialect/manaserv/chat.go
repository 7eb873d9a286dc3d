package manaserv

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

type chatHandler struct {
	d *dialect.Deps
}

func newChatHandler(d *dialect.Deps) *chatHandler { return &chatHandler{d: d} }

func (h *chatHandler) IDs() []uint16 {
	return []uint16{
		GPMSG_SAY,
		CPMSG_PUBMSG,
		CPMSG_PRIVMSG,
		CPMSG_ANNOUNCEMENT,
		CPMSG_ERROR,
	}
}

func (h *chatHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case GPMSG_SAY:
		h.say(r)
	case CPMSG_PUBMSG:
		h.channelMessage(r)
	case CPMSG_PRIVMSG:
		h.privateMessage(r)
	case CPMSG_ANNOUNCEMENT:
		h.announcement(r)
	case CPMSG_ERROR:
		h.chatError(r)
	}
}

// say is overhead speech on the game server; the sender is a being id.
func (h *chatHandler) say(r *packet.Reader) {
	id := r.ReadInt16()
	text := r.ReadString(-1)
	if r.Truncated() || text == "" {
		return
	}
	b := h.d.World.Being(id)
	if b == nil {
		return
	}
	self := b == h.d.World.Player()
	if !self && b.ActorType() == world.ActorPlayer &&
		!h.d.Relations.Permitted(b.Name, world.PermitSpeech) {
		return
	}
	event.Emit(h.d.Bus, event.ChatMessage{
		Source: event.ChatGeneral,
		Sender: b.Name,
		Text:   text,
		Self:   self,
	})
}

func (h *chatHandler) channelMessage(r *packet.Reader) {
	channel := r.ReadInt16()
	user := r.ReadString(-1)
	text := r.ReadString(-1)
	if r.Truncated() {
		return
	}
	if !h.d.Relations.Permitted(user, world.PermitSpeech) {
		return
	}
	event.Emit(h.d.Bus, event.ChatMessage{
		Source:  event.ChatChannel,
		Sender:  user,
		Text:    text,
		Channel: channel,
	})
}

func (h *chatHandler) privateMessage(r *packet.Reader) {
	user := r.ReadString(-1)
	text := r.ReadString(-1)
	if r.Truncated() {
		return
	}
	if !h.d.Relations.Permitted(user, world.PermitWhisper) {
		return
	}
	event.Emit(h.d.Bus, event.ChatMessage{
		Source: event.ChatWhisper,
		Sender: user,
		Text:   text,
	})
}

func (h *chatHandler) announcement(r *packet.Reader) {
	text := r.ReadString(-1)
	if r.Truncated() || text == "" {
		return
	}
	h.d.Notice(event.NoticeGM, text)
}

func (h *chatHandler) chatError(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	h.d.Notice(event.NoticeError, errorText(code))
}
