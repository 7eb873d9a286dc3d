package manaserv

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

type npcHandler struct {
	d *dialect.Deps
}

func newNpcHandler(d *dialect.Deps) *npcHandler { return &npcHandler{d: d} }

func (h *npcHandler) IDs() []uint16 {
	return []uint16{
		GPMSG_NPC_MESSAGE,
		GPMSG_NPC_CHOICE,
		GPMSG_NPC_CLOSE,
		GPMSG_NPC_NUMBER,
		GPMSG_NPC_STRING,
		GPMSG_NPC_ERROR,
	}
}

func (h *npcHandler) Handle(r *packet.Reader) {
	id := r.ReadInt16()
	if r.Truncated() {
		return
	}
	switch r.ID() {
	case GPMSG_NPC_MESSAGE:
		text := r.ReadString(r.Unread())
		event.Emit(h.d.Bus, event.NpcDialog{NpcID: id, Text: text})
	case GPMSG_NPC_CHOICE:
		var choices []string
		for r.Unread() > 0 {
			if c := r.ReadString(-1); c != "" {
				choices = append(choices, c)
			}
		}
		event.Emit(h.d.Bus, event.NpcChoice{NpcID: id, Choices: choices})
	case GPMSG_NPC_CLOSE:
		event.Emit(h.d.Bus, event.NpcDialogClosed{NpcID: id})
	case GPMSG_NPC_NUMBER:
		event.Emit(h.d.Bus, event.NpcInputRequested{NpcID: id, Numeric: true})
	case GPMSG_NPC_STRING:
		event.Emit(h.d.Bus, event.NpcInputRequested{NpcID: id})
	case GPMSG_NPC_ERROR:
		h.d.Notice(event.NoticeError, "The NPC does not respond.")
		event.Emit(h.d.Bus, event.NpcDialogClosed{NpcID: id})
	}
}
