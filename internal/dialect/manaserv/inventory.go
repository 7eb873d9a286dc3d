package manaserv

import (
	"fmt"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

type inventoryHandler struct {
	d *dialect.Deps
}

func newInventoryHandler(d *dialect.Deps) *inventoryHandler { return &inventoryHandler{d: d} }

func (h *inventoryHandler) IDs() []uint16 {
	return []uint16{
		GPMSG_INVENTORY_FULL,
		GPMSG_INVENTORY,
		GPMSG_EQUIP,
		GPMSG_PICKUP_RESPONSE,
		GPMSG_USE_RESPONSE,
	}
}

func (h *inventoryHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case GPMSG_INVENTORY_FULL:
		h.full(r)
	case GPMSG_INVENTORY:
		h.delta(r)
	case GPMSG_EQUIP:
		h.equip(r)
	case GPMSG_PICKUP_RESPONSE:
		h.pickupResponse(r)
	case GPMSG_USE_RESPONSE:
		h.useResponse(r)
	}
}

// full replaces the whole inventory after login or a map server change.
func (h *inventoryHandler) full(r *packet.Reader) {
	count := r.ReadInt16()
	if r.Truncated() {
		return
	}
	for i := 0; i < count && r.Unread() > 0; i++ {
		slot := r.ReadInt16()
		itemID := r.ReadInt16()
		amount := r.ReadInt16()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, ItemID: itemID, Amount: amount})
	}
}

// delta carries slot updates; an item id of zero empties the slot.
func (h *inventoryHandler) delta(r *packet.Reader) {
	for r.Unread() > 0 {
		slot := r.ReadInt16()
		itemID := r.ReadInt16()
		amount := 0
		if itemID != 0 {
			amount = r.ReadInt16()
		}
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, ItemID: itemID, Amount: amount})
	}
}

func (h *inventoryHandler) equip(r *packet.Reader) {
	itemID := r.ReadInt16()
	count := r.ReadInt8()
	if r.Truncated() {
		return
	}
	for i := 0; i < count && r.Unread() > 0; i++ {
		slot := r.ReadInt8()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.EquipmentChanged{Slot: slot, ItemID: itemID, Equipped: itemID != 0})
	}
}

func (h *inventoryHandler) pickupResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code != errOK {
		h.d.Notice(event.NoticeError, fmt.Sprintf("Unable to pick up item: %s", errorText(code)))
	}
}

func (h *inventoryHandler) useResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if code != errOK {
		h.d.Notice(event.NoticeError, "Unable to use this item.")
	}
}
