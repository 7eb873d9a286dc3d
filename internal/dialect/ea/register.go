package ea

import (
	"encoding/binary"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// ByteOrder of every message in the family.
func ByteOrder() binary.ByteOrder { return order }

// RegisterAll installs the handler set shared by the whole family.
// Dialects register their own extras afterwards.
func RegisterAll(reg *packet.Registry, d *dialect.Deps) {
	reg.Register(NewBeingHandler(d))
	reg.Register(NewPlayerHandler(d))
	reg.Register(NewChatHandler(d))
	reg.Register(NewFloorItemHandler(d))
	reg.Register(NewNpcHandler(d))
	reg.Register(NewBuySellHandler(d))
	reg.Register(NewTradeHandler(d))
	reg.Register(NewPartyHandler(d))
	reg.Register(NewGuildHandler(d))
	reg.Register(NewAdminHandler(d))
	reg.Register(NewInventoryHandler(d))
	reg.Register(NewSkillHandler(d))
}
