// Package manaserv speaks the ManaServ protocol: big-endian fields,
// explicit length framing, pixel positions and 16-bit being ids. The
// message set is split between the game server (GPMSG/PGMSG) and the
// chat server (CPMSG/PCMSG).
package manaserv

import (
	"encoding/binary"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net"
	"github.com/manago/client/internal/net/packet"
)

type Dialect struct {
	d   *dialect.Deps
	out *Outbound
}

func New(d *dialect.Deps) *Dialect {
	return &Dialect{d: d, out: NewOutbound(d)}
}

func (*Dialect) Name() string { return "manaserv" }

func (*Dialect) ByteOrder() binary.ByteOrder { return order }

func (*Dialect) Framer() net.Framer { return net.ManaServFramer{} }

func (dl *Dialect) Register(reg *packet.Registry) {
	reg.Register(newGameHandler(dl.d))
	reg.Register(newBeingHandler(dl.d))
	reg.Register(newItemHandler(dl.d))
	reg.Register(newPlayerHandler(dl.d))
	reg.Register(newChatHandler(dl.d))
	reg.Register(newGuildHandler(dl.d))
	reg.Register(newNpcHandler(dl.d))
	reg.Register(newInventoryHandler(dl.d))
}

func (dl *Dialect) Outbound() dialect.Outbound { return dl.out }
