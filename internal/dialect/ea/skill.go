package ea

import (
	"fmt"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// SkillHandler tracks the player skill list and skill failures.
type SkillHandler struct {
	d *dialect.Deps
}

func NewSkillHandler(d *dialect.Deps) *SkillHandler { return &SkillHandler{d: d} }

func (h *SkillHandler) IDs() []uint16 {
	return []uint16{
		SMSG_PLAYER_SKILLS,
		SMSG_SKILL_FAILED,
	}
}

func (h *SkillHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_PLAYER_SKILLS:
		h.skills(r)
	case SMSG_SKILL_FAILED:
		h.failed(r)
	}
}

func (h *SkillHandler) skills(r *packet.Reader) {
	length := r.ReadInt16()
	n := (length - 4) / 37
	for i := 0; i < n; i++ {
		r.ReadInt16() // skill id
		r.Skip(2)     // target type
		r.Skip(2)
		r.ReadInt16() // level
		r.Skip(2)     // mp cost
		r.Skip(2)     // range
		r.ReadString(24)
		r.Skip(1) // upgradable
		if r.Truncated() {
			return
		}
	}
	event.Emit(h.d.Bus, event.SkillsUpdated{})
}

func (h *SkillHandler) failed(r *packet.Reader) {
	skillID := r.ReadInt16()
	r.Skip(2)
	r.Skip(2)
	r.Skip(1)
	reason := r.ReadInt8()
	if r.Truncated() {
		return
	}
	var why string
	switch reason {
	case 0:
		why = "Insufficient MP."
	case 1:
		why = "Insufficient HP."
	case 2:
		why = "No memos."
	case 3:
		why = "Skill not usable in this area."
	case 4:
		why = "There is no ammunition."
	default:
		why = "Skill failed."
	}
	h.d.Notice(event.NoticeError,
		fmt.Sprintf("%s: %s", h.d.Skills.Name(skillID), why))
}
