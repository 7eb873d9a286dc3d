package ea

import (
	"testing"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

func tradeRequestMsg(nick string) []byte {
	w := packet.NewWriter(SMSG_TRADE_REQUEST, order)
	w.WriteString(nick, 24)
	return w.Bytes()
}

func TestTradeRequestPrompts(t *testing.T) {
	d, _, reg := newTestDeps(t)
	dispatch(t, reg, tradeRequestMsg("Merchant"))

	prompts := collect[event.PromptRequested](d)
	if len(prompts) != 1 || prompts[0].From != "Merchant" {
		t.Fatalf("prompts = %v", prompts)
	}
}

func TestTradeRequestFromIgnoredAutoDeclines(t *testing.T) {
	d, out, reg := newTestDeps(t)
	d.Relations.Set("Pest", world.RelationIgnored)
	dispatch(t, reg, tradeRequestMsg("Pest"))

	if prompts := collect[event.PromptRequested](d); len(prompts) != 0 {
		t.Errorf("ignored player's request prompted: %v", prompts)
	}
	ids := out.ids()
	if len(ids) != 1 || ids[0] != CMSG_TRADE_RESPONSE {
		t.Errorf("sent = %#v, want one trade refusal", ids)
	}
}

func TestTradeResponseCodes(t *testing.T) {
	tests := []struct {
		code int
		want event.TradeState
	}{
		{0, event.TradeCancelled},
		{1, event.TradeCancelled},
		{2, event.TradeCancelled},
		{3, event.TradeOpen},
		{4, event.TradeCancelled},
	}
	for _, tt := range tests {
		d, _, reg := newTestDeps(t)
		w := packet.NewWriter(SMSG_TRADE_RESPONSE, order)
		w.WriteInt8(tt.code)
		dispatch(t, reg, w.Bytes())

		states := collect[event.TradeStateChanged](d)
		if len(states) != 1 || states[0].State != tt.want {
			t.Errorf("code %d: states = %v, want %v", tt.code, states, tt.want)
		}
	}
}

func TestTradeResponseUnknownCodeNoticeOnly(t *testing.T) {
	d, _, reg := newTestDeps(t)
	dispatch(t, reg, tradeRequestMsg("Merchant"))
	collect[event.TradeStateChanged](d)

	var states []event.TradeStateChanged
	var notices []event.Notice
	event.Subscribe(d.Bus, func(ev event.TradeStateChanged) { states = append(states, ev) })
	event.Subscribe(d.Bus, func(ev event.Notice) { notices = append(notices, ev) })

	w := packet.NewWriter(SMSG_TRADE_RESPONSE, order)
	w.WriteInt8(9)
	dispatch(t, reg, w.Bytes())
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()

	if len(states) != 0 {
		t.Fatalf("unknown code changed trade state: %v", states)
	}
	if len(notices) != 1 {
		t.Fatalf("notices = %v, want exactly one", notices)
	}

	// the partner survives: a later cancel still names it
	w = packet.NewWriter(SMSG_TRADE_CANCEL, order)
	dispatch(t, reg, w.Bytes())
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()
	if len(states) != 1 || states[0].Partner != "Merchant" {
		t.Fatalf("states = %v, want cancel with partner kept", states)
	}
}

func TestTradeItemAddResponseCodes(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1, "Failed adding item. Trade partner is over weighted."},
		{2, "Failed adding item. Trade partner has no free slot."},
		{3, "Failed adding item. You can't trade this item."},
		{8, "Failed adding item for unknown reason."},
	}
	for _, tt := range tests {
		d, _, reg := newTestDeps(t)
		w := packet.NewWriter(SMSG_TRADE_ITEM_ADD_RESPONSE, order)
		w.WriteInt16(0) // slot
		w.WriteInt16(1) // amount
		w.WriteInt8(tt.code)
		dispatch(t, reg, w.Bytes())

		notices := collect[event.Notice](d)
		if len(notices) != 1 || notices[0].Text != tt.want {
			t.Errorf("code %d: notices = %v, want %q", tt.code, notices, tt.want)
		}
	}
}

func TestTradeItemAddGoldVersusItem(t *testing.T) {
	d, _, reg := newTestDeps(t)

	w := packet.NewWriter(SMSG_TRADE_ITEM_ADD, order)
	w.WriteInt32(500)
	w.WriteInt16(0)
	dispatch(t, reg, w.Bytes())

	gold := collect[event.TradeGoldAdded](d)
	if len(gold) != 1 || gold[0].Amount != 500 {
		t.Fatalf("gold events = %v", gold)
	}

	w = packet.NewWriter(SMSG_TRADE_ITEM_ADD, order)
	w.WriteInt32(3)
	w.WriteInt16(512)
	dispatch(t, reg, w.Bytes())

	items := collect[event.TradeItemAdded](d)
	if len(items) != 1 || items[0].ItemID != 512 || items[0].Amount != 3 {
		t.Fatalf("item events = %v", items)
	}
}

func TestTradeCompleteClearsPartner(t *testing.T) {
	d, _, reg := newTestDeps(t)
	dispatch(t, reg, tradeRequestMsg("Merchant"))
	collect[event.TradeStateChanged](d)

	w := packet.NewWriter(SMSG_TRADE_COMPLETE, order)
	dispatch(t, reg, w.Bytes())
	done := collect[event.TradeStateChanged](d)
	if len(done) != 1 || done[0].State != event.TradeDone || done[0].Partner != "Merchant" {
		t.Fatalf("states = %v", done)
	}

	// a later cancel reports no stale partner
	w = packet.NewWriter(SMSG_TRADE_CANCEL, order)
	dispatch(t, reg, w.Bytes())
	cancelled := collect[event.TradeStateChanged](d)
	if len(cancelled) != 1 || cancelled[0].Partner != "" {
		t.Fatalf("states = %v", cancelled)
	}
}
