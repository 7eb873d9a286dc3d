package ea

import (
	"go.uber.org/zap"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// FloorItemHandler tracks items lying on the map.
type FloorItemHandler struct {
	d *dialect.Deps
}

func NewFloorItemHandler(d *dialect.Deps) *FloorItemHandler { return &FloorItemHandler{d: d} }

func (h *FloorItemHandler) IDs() []uint16 {
	return []uint16{
		SMSG_ITEM_VISIBLE,
		SMSG_ITEM_DROPPED,
		SMSG_ITEM_REMOVE,
	}
}

func (h *FloorItemHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_ITEM_VISIBLE:
		h.visible(r)
	case SMSG_ITEM_DROPPED:
		h.dropped(r)
	case SMSG_ITEM_REMOVE:
		h.remove(r)
	}
}

func (h *FloorItemHandler) visible(r *packet.Reader) {
	id := r.ReadInt32()
	itemID := r.ReadInt16()
	r.Skip(1) // identify
	x := r.ReadInt16()
	y := r.ReadInt16()
	amount := r.ReadInt16()
	if r.Truncated() {
		return
	}
	h.create(id, itemID, amount, x, y)
}

// dropped differs from visible only in trailing field order.
func (h *FloorItemHandler) dropped(r *packet.Reader) {
	id := r.ReadInt32()
	itemID := r.ReadInt16()
	r.Skip(1) // identify
	x := r.ReadInt16()
	y := r.ReadInt16()
	r.Skip(2) // sub-tile offsets
	amount := r.ReadInt16()
	if r.Truncated() {
		return
	}
	h.create(id, itemID, amount, x, y)
}

func (h *FloorItemHandler) create(id, itemID, amount, x, y int) {
	if _, err := h.d.World.CreateFloorItem(id, itemID, amount, x, y); err != nil {
		h.d.Log.Warn("floor item create failed", zap.Int("id", id), zap.Error(err))
	}
}

func (h *FloorItemHandler) remove(r *packet.Reader) {
	id := r.ReadInt32()
	if r.Truncated() {
		return
	}
	h.d.World.ScheduleDestroy(id)
}
