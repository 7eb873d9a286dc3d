package ea

import (
	"fmt"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// InventoryHandler mirrors the server-authoritative inventory.
type InventoryHandler struct {
	d *dialect.Deps
}

func NewInventoryHandler(d *dialect.Deps) *InventoryHandler { return &InventoryHandler{d: d} }

func (h *InventoryHandler) IDs() []uint16 {
	return []uint16{
		SMSG_PLAYER_INVENTORY,
		SMSG_PLAYER_EQUIPMENT,
		SMSG_PLAYER_INVENTORY_ADD,
		SMSG_PLAYER_INVENTORY_REMOVE,
		SMSG_ITEM_USE_RESPONSE,
		SMSG_PLAYER_EQUIP,
		SMSG_PLAYER_UNEQUIP,
	}
}

func (h *InventoryHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_PLAYER_INVENTORY:
		h.list(r)
	case SMSG_PLAYER_EQUIPMENT:
		h.equipmentList(r)
	case SMSG_PLAYER_INVENTORY_ADD:
		h.add(r)
	case SMSG_PLAYER_INVENTORY_REMOVE:
		h.remove(r)
	case SMSG_ITEM_USE_RESPONSE:
		h.useResponse(r)
	case SMSG_PLAYER_EQUIP:
		h.equip(r, true)
	case SMSG_PLAYER_UNEQUIP:
		h.equip(r, false)
	}
}

func (h *InventoryHandler) list(r *packet.Reader) {
	length := r.ReadInt16()
	n := (length - 4) / 18
	for i := 0; i < n; i++ {
		slot := r.ReadInt16()
		itemID := r.ReadInt16()
		r.Skip(1) // item type
		r.Skip(1) // identified
		amount := r.ReadInt16()
		r.Skip(2) // arrows flag
		r.Skip(8) // cards
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, ItemID: itemID, Amount: amount})
	}
}

func (h *InventoryHandler) equipmentList(r *packet.Reader) {
	length := r.ReadInt16()
	n := (length - 4) / 20
	for i := 0; i < n; i++ {
		slot := r.ReadInt16()
		itemID := r.ReadInt16()
		r.Skip(1) // item type
		r.Skip(1) // identified
		r.Skip(2) // equip point
		equipped := r.ReadInt16() != 0
		r.Skip(1) // attribute
		r.Skip(1) // refine
		r.Skip(8) // cards
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, ItemID: itemID, Amount: 1, Equip: true})
		if equipped {
			event.Emit(h.d.Bus, event.EquipmentChanged{Slot: slot, ItemID: itemID, Equipped: true})
		}
	}
}

func (h *InventoryHandler) add(r *packet.Reader) {
	slot := r.ReadInt16()
	amount := r.ReadInt16()
	itemID := r.ReadInt16()
	r.Skip(1) // identified
	r.Skip(1) // attribute
	r.Skip(1) // refine
	r.Skip(8) // cards
	r.Skip(2) // equip point
	r.Skip(1) // item type
	fail := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if fail != 0 {
		h.d.Notice(event.NoticeError, "Unable to pick up item.")
		return
	}
	event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, ItemID: itemID, Amount: amount})
	h.d.Notice(event.NoticeServer,
		fmt.Sprintf("You picked up %dx %s.", amount, h.d.Items.Name(itemID)))
}

func (h *InventoryHandler) remove(r *packet.Reader) {
	slot := r.ReadInt16()
	amount := r.ReadInt16()
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, Amount: -amount})
}

func (h *InventoryHandler) useResponse(r *packet.Reader) {
	slot := r.ReadInt16()
	amount := r.ReadInt16()
	ok := r.ReadInt8() != 0
	if r.Truncated() {
		return
	}
	if !ok {
		h.d.Notice(event.NoticeError, "Failed to use item.")
		return
	}
	event.Emit(h.d.Bus, event.InventoryChanged{Slot: slot, Amount: amount})
}

func (h *InventoryHandler) equip(r *packet.Reader, on bool) {
	slot := r.ReadInt16()
	r.Skip(2) // equip point
	ok := r.ReadInt8() != 0
	if r.Truncated() {
		return
	}
	if !ok {
		h.d.Notice(event.NoticeError, "Unable to equip.")
		return
	}
	event.Emit(h.d.Bus, event.EquipmentChanged{Slot: slot, Equipped: on})
}
