package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/data"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/dialect/ea"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

type sentLog struct {
	ws []*packet.Writer
}

func (s *sentLog) Send(w *packet.Writer)          { s.ws = append(s.ws, w) }
func (s *sentLog) SendChat(w *packet.Writer) bool { s.ws = append(s.ws, w); return true }

func newTestEngine(t *testing.T, script string) (*Engine, *sentLog, *world.Manager) {
	t.Helper()

	dir := t.TempDir()
	if script != "" {
		if err := os.WriteFile(filepath.Join(dir, "test.lua"), []byte(script), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	log := zap.NewNop()
	items, _ := data.LoadItemTable("")
	skills, _ := data.LoadSkillTable("")
	statuses, _ := data.LoadStatusEffectTable("")

	out := &sentLog{}
	d := &dialect.Deps{
		Log:       log,
		Bus:       event.NewBus(),
		World:     world.NewManager(log),
		Party:     world.NewParty(),
		Guilds:    world.NewGuildRegistry(),
		Relations: world.NewRelations(),
		QuestVars: world.NewQuestVars(),
		Out:       out,
		Items:     items,
		Skills:    skills,
		Statuses:  statuses,
	}

	e, err := NewEngine(dir, Bindings{
		Log:   log,
		Bus:   d.Bus,
		World: d.World,
		Out:   ea.NewOutbound(d),
	}, log)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(e.Close)
	return e, out, d.World
}

func TestRegisterCommandAndRun(t *testing.T) {
	e, out, w := newTestEngine(t, `
register_command("dance", function(args)
	client.emote(tonumber(args[1]) or 1)
end)
`)
	b, err := w.CreateBeing(100, world.ActorPlayer, 0)
	if err != nil {
		t.Fatal(err)
	}
	w.SetPlayer(b)

	if !e.Has("dance") {
		t.Fatal("dance not registered")
	}
	handled, err := e.Run("dance", []string{"3"})
	if err != nil {
		t.Fatal(err)
	}
	if !handled {
		t.Fatal("command not handled")
	}
	if len(out.ws) != 1 {
		t.Fatalf("sent %d packets, want 1", len(out.ws))
	}
}

func TestRunUnknownCommandFallsThrough(t *testing.T) {
	e, _, _ := newTestEngine(t, "")
	handled, err := e.Run("nosuch", nil)
	if err != nil {
		t.Fatal(err)
	}
	if handled {
		t.Fatal("unknown command reported as handled")
	}
}

func TestRunPropagatesScriptError(t *testing.T) {
	e, _, _ := newTestEngine(t, `
register_command("boom", function(args)
	error("on purpose")
end)
`)
	handled, err := e.Run("boom", nil)
	if !handled {
		t.Fatal("command not handled")
	}
	if err == nil {
		t.Fatal("script error not propagated")
	}
}

func TestCommandsSorted(t *testing.T) {
	e, _, _ := newTestEngine(t, `
register_command("zeta", function() end)
register_command("alpha", function() end)
`)
	got := e.Commands()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Fatalf("commands = %v", got)
	}
}

func TestClientSayUsesPlayerNick(t *testing.T) {
	e, out, w := newTestEngine(t, `
register_command("hello", function(args)
	client.say("hi there")
end)
`)
	b, err := w.CreateBeing(7, world.ActorPlayer, 0)
	if err != nil {
		t.Fatal(err)
	}
	b.Name = "Tester"
	w.SetPlayer(b)

	if _, err := e.Run("hello", nil); err != nil {
		t.Fatal(err)
	}
	if len(out.ws) != 1 {
		t.Fatalf("sent %d packets, want 1", len(out.ws))
	}
	if id := out.ws[0].ID(); id != ea.CMSG_CHAT_MESSAGE {
		t.Fatalf("packet id = %#04x", id)
	}
}

func TestClientPosition(t *testing.T) {
	e, _, w := newTestEngine(t, `
register_command("note", function(args)
	local x, y = client.position()
	client.notice(string.format("%d,%d", x, y))
end)
`)
	b, err := w.CreateBeing(7, world.ActorPlayer, 0)
	if err != nil {
		t.Fatal(err)
	}
	b.SetTilePosition(12, 34)
	w.SetPlayer(b)

	if _, err := e.Run("note", nil); err != nil {
		t.Fatal(err)
	}
}
