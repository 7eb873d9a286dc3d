package manaserv

import (
	"go.uber.org/zap"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// itemHandler tracks floor items. The wire carries no item instance id,
// only a position, so the pixel position doubles as the actor key.
type itemHandler struct {
	d *dialect.Deps
}

func newItemHandler(d *dialect.Deps) *itemHandler { return &itemHandler{d: d} }

func (h *itemHandler) IDs() []uint16 {
	return []uint16{GPMSG_ITEMS, GPMSG_ITEM_APPEAR}
}

// floorItemBase keeps packed floor-item keys out of the 16-bit being id
// range, so destroying an item at pixel x=0 cannot hit a being.
const floorItemBase = 1 << 30

func floorItemKey(px, py int) int { return floorItemBase | (px&0x7fff)<<15 | py&0x7fff }

func floorItemPos(key int) (px, py int) { return (key >> 15) & 0x7fff, key & 0x7fff }

func (h *itemHandler) Handle(r *packet.Reader) {
	for r.Unread() > 0 {
		itemID := r.ReadInt16()
		px := r.ReadInt16()
		py := r.ReadInt16()
		if r.Truncated() {
			return
		}
		key := floorItemKey(px, py)
		if itemID == 0 {
			h.d.World.ScheduleDestroy(key)
			continue
		}
		if h.d.World.FloorItem(key) != nil {
			continue
		}
		_, err := h.d.World.CreateFloorItem(key, itemID, 1, px/world.TileSize, py/world.TileSize)
		if err != nil {
			h.d.Log.Warn("floor item create failed", zap.Int("item", itemID), zap.Error(err))
		}
	}
}
