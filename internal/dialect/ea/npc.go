package ea

import (
	"strings"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// NpcHandler drives the scripted NPC dialog flow.
type NpcHandler struct {
	d *dialect.Deps
}

func NewNpcHandler(d *dialect.Deps) *NpcHandler { return &NpcHandler{d: d} }

func (h *NpcHandler) IDs() []uint16 {
	return []uint16{
		SMSG_NPC_MESSAGE,
		SMSG_NPC_NEXT,
		SMSG_NPC_CLOSE,
		SMSG_NPC_CHOICE,
		SMSG_NPC_INT_INPUT,
		SMSG_NPC_STR_INPUT,
	}
}

func (h *NpcHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_NPC_MESSAGE:
		length := r.ReadInt16()
		id := r.ReadInt32()
		text := r.ReadString(length - 8)
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.NpcDialog{NpcID: id, Text: text})
	case SMSG_NPC_NEXT:
		id := r.ReadInt32()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.NpcDialogNext{NpcID: id})
	case SMSG_NPC_CLOSE:
		id := r.ReadInt32()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.NpcDialogClosed{NpcID: id})
	case SMSG_NPC_CHOICE:
		length := r.ReadInt16()
		id := r.ReadInt32()
		menu := r.ReadString(length - 8)
		if r.Truncated() {
			return
		}
		// the menu arrives as one ":"-separated string
		choices := strings.Split(menu, ":")
		out := choices[:0]
		for _, c := range choices {
			if c != "" {
				out = append(out, c)
			}
		}
		event.Emit(h.d.Bus, event.NpcChoice{NpcID: id, Choices: out})
	case SMSG_NPC_INT_INPUT:
		id := r.ReadInt32()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.NpcInputRequested{NpcID: id, Numeric: true})
	case SMSG_NPC_STR_INPUT:
		id := r.ReadInt32()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.NpcInputRequested{NpcID: id})
	}
}
