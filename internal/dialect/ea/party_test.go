package ea

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/net/packet"
)

func settingsMsg(exp, item int) []byte {
	w := packet.NewWriter(SMSG_PARTY_SETTINGS, order)
	w.WriteInt16(exp)
	w.WriteInt16(item)
	return w.Bytes()
}

func TestPartySettingsCodes(t *testing.T) {
	tests := []struct {
		exp  int
		want string
	}{
		{0, "Experience sharing disabled."},
		{1, "Experience sharing enabled."},
		{0xffff, "Experience sharing not possible."},
	}
	for _, tt := range tests {
		d, _, reg := newTestDeps(t)
		dispatch(t, reg, settingsMsg(tt.exp, 0))

		got := collect[event.Notice](d)
		if len(got) != 1 || got[0].Text != tt.want {
			t.Errorf("exp %#x: notices = %v, want %q", tt.exp, got, tt.want)
		}
	}
}

func TestPartySettingsUnknownOptionLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	d, _, reg := newTestDeps(t)
	d.Log = zap.New(core)

	dispatch(t, reg, settingsMsg(5, 0))

	if got := collect[event.Notice](d); len(got) != 0 {
		t.Errorf("notices = %v, want none for an unknown option", got)
	}
	if logs.FilterMessage("unknown party exp option").Len() != 1 {
		t.Error("unknown option was not logged")
	}
}
