package ea

import (
	"fmt"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// TradeHandler drives the trade window lifecycle. Every failure code
// becomes a notice; raw codes never reach the surface.
type TradeHandler struct {
	d       *dialect.Deps
	partner string
}

func NewTradeHandler(d *dialect.Deps) *TradeHandler { return &TradeHandler{d: d} }

func (h *TradeHandler) IDs() []uint16 {
	return []uint16{
		SMSG_TRADE_REQUEST,
		SMSG_TRADE_RESPONSE,
		SMSG_TRADE_ITEM_ADD,
		SMSG_TRADE_ITEM_ADD_RESPONSE,
		SMSG_TRADE_OK,
		SMSG_TRADE_CANCEL,
		SMSG_TRADE_COMPLETE,
	}
}

func (h *TradeHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_TRADE_REQUEST:
		h.request(r)
	case SMSG_TRADE_RESPONSE:
		h.response(r)
	case SMSG_TRADE_ITEM_ADD:
		h.itemAdd(r)
	case SMSG_TRADE_ITEM_ADD_RESPONSE:
		h.itemAddResponse(r)
	case SMSG_TRADE_OK:
		h.confirmed(r)
	case SMSG_TRADE_CANCEL:
		h.state(event.TradeCancelled, "Trade cancelled.")
	case SMSG_TRADE_COMPLETE:
		h.state(event.TradeDone, "Trade completed.")
	}
}

func (h *TradeHandler) request(r *packet.Reader) {
	nick := r.ReadString(24)
	if r.Truncated() {
		return
	}
	if !h.d.Relations.Permitted(nick, world.PermitTrade) {
		// decline silently, the partner just sees a refusal
		h.d.Out.Send(TradeResponse(false))
		return
	}
	h.partner = nick
	event.Emit(h.d.Bus, event.TradeStateChanged{State: event.TradeRequested, Partner: nick})
	event.Emit(h.d.Bus, event.PromptRequested{
		Kind: event.PromptTradeRequest,
		From: nick,
		Text: fmt.Sprintf("%s wants to trade with you.", nick),
	})
}

func (h *TradeHandler) response(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	switch code {
	case 0:
		h.state(event.TradeCancelled, "Trading isn't possible. Trade partner is too far away.")
	case 1:
		h.state(event.TradeCancelled, "Trading isn't possible. Character doesn't exist.")
	case 2:
		h.state(event.TradeCancelled, "Trade cancelled due to an unknown reason.")
	case 3:
		if h.partner != "" {
			h.d.Notice(event.NoticeServer, fmt.Sprintf("Trade with %s...", h.partner))
		}
		event.Emit(h.d.Bus, event.TradeStateChanged{State: event.TradeOpen, Partner: h.partner})
	case 4:
		h.state(event.TradeCancelled, fmt.Sprintf("Trade with %s cancelled.", h.partner))
	default:
		// notice only; an unrecognized code must not touch window state
		h.d.Notice(event.NoticeServer, "Unhandled trade cancel packet.")
	}
}

func (h *TradeHandler) itemAdd(r *packet.Reader) {
	amount := r.ReadInt32()
	itemID := r.ReadInt16()
	if r.Truncated() {
		return
	}
	// zero item id means the partner added money
	if itemID == 0 {
		event.Emit(h.d.Bus, event.TradeGoldAdded{Amount: amount})
		return
	}
	event.Emit(h.d.Bus, event.TradeItemAdded{ItemID: itemID, Amount: amount})
}

func (h *TradeHandler) itemAddResponse(r *packet.Reader) {
	r.Skip(2) // inventory slot
	amount := r.ReadInt16()
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	switch code {
	case 0:
		event.Emit(h.d.Bus, event.TradeItemAdded{Amount: amount, FromSelf: true})
	case 1:
		h.d.Notice(event.NoticeError, "Failed adding item. Trade partner is over weighted.")
	case 2:
		h.d.Notice(event.NoticeError, "Failed adding item. Trade partner has no free slot.")
	case 3:
		h.d.Notice(event.NoticeError, "Failed adding item. You can't trade this item.")
	default:
		h.d.Notice(event.NoticeError, "Failed adding item for unknown reason.")
	}
}

func (h *TradeHandler) confirmed(r *packet.Reader) {
	who := r.ReadInt8()
	if r.Truncated() {
		return
	}
	if who == 0 {
		h.d.Notice(event.NoticeServer, "Trade accepted.")
	}
	event.Emit(h.d.Bus, event.TradeStateChanged{State: event.TradeConfirmed, Partner: h.partner})
}

func (h *TradeHandler) state(s event.TradeState, notice string) {
	event.Emit(h.d.Bus, event.TradeStateChanged{State: s, Partner: h.partner})
	if notice != "" {
		h.d.Notice(event.NoticeServer, notice)
	}
	if s == event.TradeCancelled || s == event.TradeDone {
		h.partner = ""
	}
}
