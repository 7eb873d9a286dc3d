// Package legacy is the plain eAthena dialect spoken by older servers:
// the shared family message set with no fork extensions, and strings in
// a single-byte codepage instead of UTF-8.
package legacy

import (
	"encoding/binary"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/dialect/ea"
	"github.com/manago/client/internal/net"
	"github.com/manago/client/internal/net/packet"
)

type Dialect struct {
	d   *dialect.Deps
	out *ea.Outbound
}

func New(d *dialect.Deps) *Dialect {
	return &Dialect{d: d, out: ea.NewOutbound(d)}
}

func (*Dialect) Name() string { return "legacy" }

func (*Dialect) ByteOrder() binary.ByteOrder { return ea.ByteOrder() }

func (*Dialect) Framer() net.Framer {
	return net.NewAthenaFramer(ea.LengthTable())
}

func (l *Dialect) Register(reg *packet.Registry) {
	ea.RegisterAll(reg, l.d)
}

func (l *Dialect) Outbound() dialect.Outbound { return l.out }
