package tmwa

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// questHandler mirrors the server-side quest variable store. The server
// sends the whole set on map entry and single patches afterwards.
type questHandler struct {
	d *dialect.Deps
}

func newQuestHandler(d *dialect.Deps) *questHandler { return &questHandler{d: d} }

func (h *questHandler) IDs() []uint16 {
	return []uint16{SMSG_QUEST_SET_VAR, SMSG_QUEST_PLAYER_VARS}
}

func (h *questHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_QUEST_SET_VAR:
		key := r.ReadInt16()
		value := r.ReadInt32()
		if r.Truncated() {
			return
		}
		h.d.QuestVars.Set(key, value)
		event.Emit(h.d.Bus, event.QuestVarChanged{Key: key, Value: value})
	case SMSG_QUEST_PLAYER_VARS:
		length := r.ReadInt16()
		n := (length - 4) / 6
		vars := make(map[int]int, max(n, 0))
		for i := 0; i < n; i++ {
			key := r.ReadInt16()
			value := r.ReadInt32()
			if r.Truncated() {
				return
			}
			vars[key] = value
		}
		h.d.QuestVars.Replace(vars)
		for key, value := range vars {
			event.Emit(h.d.Bus, event.QuestVarChanged{Key: key, Value: value})
		}
	}
}
