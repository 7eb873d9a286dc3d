package ea

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// BuySellHandler drives NPC shop traffic.
type BuySellHandler struct {
	d *dialect.Deps
}

func NewBuySellHandler(d *dialect.Deps) *BuySellHandler { return &BuySellHandler{d: d} }

func (h *BuySellHandler) IDs() []uint16 {
	return []uint16{
		SMSG_NPC_BUY_SELL_CHOICE,
		SMSG_NPC_BUY,
		SMSG_NPC_SELL,
		SMSG_NPC_BUY_RESPONSE,
		SMSG_NPC_SELL_RESPONSE,
	}
}

func (h *BuySellHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_NPC_BUY_SELL_CHOICE:
		id := r.ReadInt32()
		if r.Truncated() {
			return
		}
		event.Emit(h.d.Bus, event.ShopOpened{NpcID: id})
	case SMSG_NPC_BUY:
		h.buyList(r)
	case SMSG_NPC_SELL:
		h.sellList(r)
	case SMSG_NPC_BUY_RESPONSE:
		switch r.ReadInt8() {
		case 0:
			h.d.Notice(event.NoticeServer, "Thanks for buying.")
		default:
			h.d.Notice(event.NoticeError, "Unable to buy.")
		}
	case SMSG_NPC_SELL_RESPONSE:
		switch r.ReadInt8() {
		case 0:
			h.d.Notice(event.NoticeServer, "Thanks for selling.")
		default:
			h.d.Notice(event.NoticeError, "Unable to sell.")
		}
	}
}

func (h *BuySellHandler) buyList(r *packet.Reader) {
	length := r.ReadInt16()
	n := (length - 4) / 11
	items := make([]event.ShopEntry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		price := r.ReadInt32()
		r.Skip(4) // discounted price
		r.Skip(1) // item type
		itemID := r.ReadInt16()
		items = append(items, event.ShopEntry{ItemID: itemID, Price: price})
	}
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.ShopListing{Buying: true, Items: items})
}

func (h *BuySellHandler) sellList(r *packet.Reader) {
	length := r.ReadInt16()
	n := (length - 4) / 10
	items := make([]event.ShopEntry, 0, max(n, 0))
	for i := 0; i < n; i++ {
		slot := r.ReadInt16()
		price := r.ReadInt32()
		r.Skip(4) // overcharge price
		items = append(items, event.ShopEntry{Slot: slot, Price: price})
	}
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.ShopListing{Buying: false, Items: items})
}
