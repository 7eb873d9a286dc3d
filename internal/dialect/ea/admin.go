package ea

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

// AdminHandler consumes the acks of GM requests. Whether the player may
// issue them is the server's call; the client just reports the result.
type AdminHandler struct {
	d *dialect.Deps
}

func NewAdminHandler(d *dialect.Deps) *AdminHandler { return &AdminHandler{d: d} }

func (h *AdminHandler) IDs() []uint16 {
	return []uint16{SMSG_ADMIN_KICK_ACK}
}

func (h *AdminHandler) Handle(r *packet.Reader) {
	id := r.ReadInt32()
	if r.Truncated() {
		return
	}
	if id == 0 {
		h.d.Notice(event.NoticeError, "Kick failed!")
	} else {
		h.d.Notice(event.NoticeServer, "Kick succeeded!")
	}
}
