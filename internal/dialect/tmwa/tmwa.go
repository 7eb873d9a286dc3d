// Package tmwa is the tmwAthena dialect: the eAthena family plus the
// extensions The Mana World's server fork added, most notably quest
// variables.
package tmwa

import (
	"encoding/binary"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/dialect/ea"
	"github.com/manago/client/internal/net"
	"github.com/manago/client/internal/net/packet"
)

const (
	SMSG_QUEST_SET_VAR     = 0x0214
	SMSG_QUEST_PLAYER_VARS = 0x0215
)

type Dialect struct {
	d   *dialect.Deps
	out *ea.Outbound
}

func New(d *dialect.Deps) *Dialect {
	return &Dialect{d: d, out: ea.NewOutbound(d)}
}

func (*Dialect) Name() string { return "tmwathena" }

func (*Dialect) ByteOrder() binary.ByteOrder { return ea.ByteOrder() }

func (*Dialect) Framer() net.Framer {
	lengths := ea.LengthTable()
	lengths[SMSG_QUEST_SET_VAR] = 8
	lengths[SMSG_QUEST_PLAYER_VARS] = net.VarLen
	return net.NewAthenaFramer(lengths)
}

func (t *Dialect) Register(reg *packet.Registry) {
	ea.RegisterAll(reg, t.d)
	reg.Register(newQuestHandler(t.d))
}

func (t *Dialect) Outbound() dialect.Outbound { return t.out }
