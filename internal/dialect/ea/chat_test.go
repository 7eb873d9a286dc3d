package ea

import (
	"testing"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

func beingChatMsg(id int, text string) []byte {
	w := packet.NewWriter(SMSG_BEING_CHAT, order)
	w.WriteInt16(0)
	w.WriteInt32(id)
	w.WriteString(text, len(text))
	w.PatchLength()
	return w.Bytes()
}

func TestBeingChatSplitsNickPrefix(t *testing.T) {
	d, _, reg := newTestDeps(t)
	b, err := d.World.CreateBeing(50, world.ActorPlayer, 0)
	if err != nil {
		t.Fatal(err)
	}
	b.Name = "Orpheus"

	dispatch(t, reg, beingChatMsg(50, "Orpheus : hello there"))

	lines := collect[event.ChatMessage](d)
	if len(lines) != 1 {
		t.Fatalf("chat events = %v", lines)
	}
	if lines[0].Sender != "Orpheus" || lines[0].Text != "hello there" {
		t.Errorf("line = %+v", lines[0])
	}
	if lines[0].Self {
		t.Error("other player's line marked self")
	}
}

func TestBeingChatUnknownSenderUsesBakedNick(t *testing.T) {
	d, _, reg := newTestDeps(t)
	dispatch(t, reg, beingChatMsg(404, "Stranger : psst"))

	lines := collect[event.ChatMessage](d)
	if len(lines) != 1 || lines[0].Sender != "Stranger" || lines[0].Text != "psst" {
		t.Fatalf("chat events = %v", lines)
	}
}

func TestBeingChatIgnoredPlayerDropped(t *testing.T) {
	d, _, reg := newTestDeps(t)
	b, err := d.World.CreateBeing(50, world.ActorPlayer, 0)
	if err != nil {
		t.Fatal(err)
	}
	b.Name = "Loudmouth"
	d.Relations.Set("Loudmouth", world.RelationIgnored)

	dispatch(t, reg, beingChatMsg(50, "Loudmouth : buy my stuff"))

	if lines := collect[event.ChatMessage](d); len(lines) != 0 {
		t.Errorf("ignored player's line delivered: %v", lines)
	}
}

func TestWhisperDelivered(t *testing.T) {
	d, _, reg := newTestDeps(t)
	w := packet.NewWriter(SMSG_WHISPER, order)
	w.WriteInt16(0)
	w.WriteString("Calliope", 24)
	w.WriteString("meet me at the crossroads", 25)
	w.PatchLength()
	dispatch(t, reg, w.Bytes())

	lines := collect[event.ChatMessage](d)
	if len(lines) != 1 {
		t.Fatalf("chat events = %v", lines)
	}
	if lines[0].Source != event.ChatWhisper || lines[0].Sender != "Calliope" {
		t.Errorf("line = %+v", lines[0])
	}
	if lines[0].Text != "meet me at the crossroads" {
		t.Errorf("text = %q", lines[0].Text)
	}
}

func TestWhisperResponseCodes(t *testing.T) {
	tests := []struct {
		code    int
		wantErr bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{9, true},
	}
	for _, tt := range tests {
		d, _, reg := newTestDeps(t)
		w := packet.NewWriter(SMSG_WHISPER_RESPONSE, order)
		w.WriteInt8(tt.code)
		dispatch(t, reg, w.Bytes())

		results := collect[event.WhisperResult](d)
		if len(results) != 1 {
			t.Fatalf("code %d: results = %v", tt.code, results)
		}
		if got := results[0].Err != ""; got != tt.wantErr {
			t.Errorf("code %d: err %q, wantErr %v", tt.code, results[0].Err, tt.wantErr)
		}
	}
}

func TestGMChatSurfacesAsNotice(t *testing.T) {
	d, _, reg := newTestDeps(t)
	w := packet.NewWriter(SMSG_GM_CHAT, order)
	w.WriteInt16(0)
	w.WriteString("Server restart in 5 minutes", 27)
	w.PatchLength()
	dispatch(t, reg, w.Bytes())

	notes := collect[event.Notice](d)
	if len(notes) != 1 || notes[0].Kind != event.NoticeGM {
		t.Fatalf("notices = %v", notes)
	}
	if notes[0].Text != "Server restart in 5 minutes" {
		t.Errorf("text = %q", notes[0].Text)
	}
}
