package manaserv

import (
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
)

func errorText(code int) string {
	switch code {
	case errFailure:
		return "The request failed."
	case errNoLogin:
		return "You are not logged in."
	case errNoCharacterSelected:
		return "No character selected."
	case errInsufficientRights:
		return "Insufficient permissions."
	case errInvalidArgument:
		return "The server rejected the request."
	default:
		return "Unknown error."
	}
}

type gameHandler struct {
	d *dialect.Deps
}

func newGameHandler(d *dialect.Deps) *gameHandler { return &gameHandler{d: d} }

func (h *gameHandler) IDs() []uint16 {
	return []uint16{GPMSG_CONNECT_RESPONSE, GPMSG_DISCONNECT_RESPONSE}
}

func (h *gameHandler) Handle(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	switch r.ID() {
	case GPMSG_CONNECT_RESPONSE:
		if code != errOK {
			h.d.Notice(event.NoticeError, errorText(code))
			return
		}
		h.d.Log.Info("game server accepted the session token")
	case GPMSG_DISCONNECT_RESPONSE:
		if code != errOK {
			h.d.Notice(event.NoticeError, errorText(code))
		}
	}
}
