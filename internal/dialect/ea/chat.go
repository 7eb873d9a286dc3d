package ea

import (
	"fmt"
	"strings"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// ChatHandler feeds the chat surface and enforces player relations on
// inbound lines.
type ChatHandler struct {
	d *dialect.Deps
}

func NewChatHandler(d *dialect.Deps) *ChatHandler { return &ChatHandler{d: d} }

func (h *ChatHandler) IDs() []uint16 {
	return []uint16{
		SMSG_BEING_CHAT,
		SMSG_PLAYER_CHAT,
		SMSG_WHISPER,
		SMSG_WHISPER_RESPONSE,
		SMSG_GM_CHAT,
		SMSG_WHO_ANSWER,
	}
}

func (h *ChatHandler) Handle(r *packet.Reader) {
	switch r.ID() {
	case SMSG_BEING_CHAT:
		h.beingChat(r)
	case SMSG_PLAYER_CHAT:
		h.ownChat(r)
	case SMSG_WHISPER:
		h.whisper(r)
	case SMSG_WHISPER_RESPONSE:
		h.whisperResponse(r)
	case SMSG_GM_CHAT:
		h.gmChat(r)
	case SMSG_WHO_ANSWER:
		h.whoAnswer(r)
	}
}

// beingChat lines arrive as "Nick : message" with the nick prefix baked
// into the text.
func (h *ChatHandler) beingChat(r *packet.Reader) {
	length := r.ReadInt16()
	id := r.ReadInt32()
	text := r.ReadString(length - 8)
	if r.Truncated() {
		return
	}

	sender := ""
	if b := h.d.World.Being(id); b != nil {
		sender = b.Name
	}
	if nick, msg, ok := splitChatNick(text); ok {
		if sender == "" {
			sender = nick
		}
		text = msg
	}
	if sender != "" && !h.d.Relations.Permitted(sender, world.PermitSpeech) {
		return
	}
	event.Emit(h.d.Bus, event.ChatMessage{Source: event.ChatGeneral, Sender: sender, Text: text})
}

func (h *ChatHandler) ownChat(r *packet.Reader) {
	length := r.ReadInt16()
	text := r.ReadString(length - 4)
	if r.Truncated() {
		return
	}
	sender := ""
	if p := h.d.World.Player(); p != nil {
		sender = p.Name
	}
	if _, msg, ok := splitChatNick(text); ok {
		text = msg
	}
	event.Emit(h.d.Bus, event.ChatMessage{Source: event.ChatGeneral, Sender: sender, Text: text, Self: true})
}

func (h *ChatHandler) whisper(r *packet.Reader) {
	length := r.ReadInt16()
	nick := r.ReadString(24)
	text := r.ReadString(length - 28)
	if r.Truncated() {
		return
	}
	if !h.d.Relations.Permitted(nick, world.PermitWhisper) {
		return
	}
	event.Emit(h.d.Bus, event.ChatMessage{Source: event.ChatWhisper, Sender: nick, Text: text})
}

func (h *ChatHandler) whisperResponse(r *packet.Reader) {
	code := r.ReadInt8()
	if r.Truncated() {
		return
	}
	var errText string
	switch code {
	case 0:
		// delivered
	case 1:
		errText = "Whisper could not be sent, user is offline."
	case 2:
		errText = "Whisper could not be sent, ignored by user."
	default:
		errText = "Whisper could not be sent."
	}
	event.Emit(h.d.Bus, event.WhisperResult{Err: errText})
	if errText != "" {
		h.d.Notice(event.NoticeError, errText)
	}
}

func (h *ChatHandler) gmChat(r *packet.Reader) {
	length := r.ReadInt16()
	text := r.ReadString(length - 4)
	if r.Truncated() {
		return
	}
	h.d.Notice(event.NoticeGM, text)
}

func (h *ChatHandler) whoAnswer(r *packet.Reader) {
	count := r.ReadInt32()
	if r.Truncated() {
		return
	}
	event.Emit(h.d.Bus, event.OnlineCount{Count: count})
	h.d.Notice(event.NoticeServer, fmt.Sprintf("%d players are online.", count))
}

// splitChatNick peels the "Nick : " prefix servers bake into chat
// lines.
func splitChatNick(text string) (nick, msg string, ok bool) {
	i := strings.Index(text, " : ")
	if i < 0 {
		return "", text, false
	}
	return text[:i], text[i+3:], true
}
