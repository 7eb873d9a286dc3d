package packet

import (
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
)

// Handler consumes the closed set of message ids it declares. Handle is
// called with a fresh Reader positioned after the message id and must not
// retain it.
type Handler interface {
	IDs() []uint16
	Handle(r *Reader)
}

// Registry maps message ids to handlers for one active dialect. Registries
// are built once at connect time and replaced wholesale on dialect switch;
// two dialects never share one.
type Registry struct {
	handlers map[uint16]Handler
	order    binary.ByteOrder
	dec      *encoding.Decoder
	log      *zap.Logger
}

func NewRegistry(order binary.ByteOrder, log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[uint16]Handler),
		order:    order,
		log:      log,
	}
}

// SetCharset installs a codepage decoder applied to strings of every
// dispatched message.
func (reg *Registry) SetCharset(dec *encoding.Decoder) {
	reg.dec = dec
}

// Register claims every id the handler declares. A second handler claiming
// an already-taken id is a wiring bug in the dialect table, caught at
// registry-build time.
func (reg *Registry) Register(h Handler) {
	for _, id := range h.IDs() {
		if _, taken := reg.handlers[id]; taken {
			panic(fmt.Sprintf("message id 0x%04x registered twice", id))
		}
		reg.handlers[id] = h
	}
}

// Handles reports whether any handler claims the given id.
func (reg *Registry) Handles(id uint16) bool {
	_, ok := reg.handlers[id]
	return ok
}

// Dispatch parses the message id and invokes the owning handler. Unknown ids
// are dropped silently; servers send dialect-specific messages not every
// client supports. A handler panic is recovered so one bad message cannot
// take down the connection.
func (reg *Registry) Dispatch(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("short message: %d bytes", len(data))
	}
	id := reg.order.Uint16(data)

	h, ok := reg.handlers[id]
	if !ok {
		reg.log.Debug("unhandled message", zap.Uint16("id", id), zap.Int("size", len(data)))
		return nil
	}

	r := NewReaderWithCharset(data, reg.order, reg.dec)
	return reg.safeCall(h, r, id)
}

func (reg *Registry) safeCall(h Handler, r *Reader, id uint16) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.Error("handler panic recovered",
				zap.Uint16("id", id),
				zap.Any("panic", rec),
			)
			err = fmt.Errorf("handler panic for message 0x%04x: %v", id, rec)
		}
	}()
	h.Handle(r)
	return nil
}
