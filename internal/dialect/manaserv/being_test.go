package manaserv

import (
	"testing"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/data"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

type nullSender struct{}

func (nullSender) Send(*packet.Writer)          {}
func (nullSender) SendChat(*packet.Writer) bool { return true }

func newTestDialect(t *testing.T) (*dialect.Deps, *packet.Registry) {
	t.Helper()
	items, err := data.LoadItemTable("")
	if err != nil {
		t.Fatal(err)
	}
	skills, err := data.LoadSkillTable("")
	if err != nil {
		t.Fatal(err)
	}
	statuses, err := data.LoadStatusEffectTable("")
	if err != nil {
		t.Fatal(err)
	}
	d := &dialect.Deps{
		Log:               zap.NewNop(),
		Bus:               event.NewBus(),
		World:             world.NewManager(zap.NewNop()),
		Party:             world.NewParty(),
		Guilds:            world.NewGuildRegistry(),
		Relations:         world.NewRelations(),
		QuestVars:         world.NewQuestVars(),
		Out:               nullSender{},
		Items:             items,
		Skills:            skills,
		Statuses:          statuses,
		PositionTolerance: 48,
	}
	dl := New(d)
	reg := packet.NewRegistry(dl.ByteOrder(), zap.NewNop())
	dl.Register(reg)
	return d, reg
}

func dispatch(t *testing.T, reg *packet.Registry, data []byte) {
	t.Helper()
	if err := reg.Dispatch(data); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}

func enterMonsterMsg(id, subType, px, py int, name string) []byte {
	w := packet.NewWriter(GPMSG_BEING_ENTER, order)
	w.WriteInt8(objectMonster)
	w.WriteInt16(id)
	w.WriteInt8(actionStand)
	w.WriteInt16(px)
	w.WriteInt16(py)
	w.WriteInt8(int(world.DirDown))
	w.WriteInt16(subType)
	w.WriteString(name, -1)
	return w.Bytes()
}

func TestBeingEnterMonster(t *testing.T) {
	d, reg := newTestDialect(t)
	dispatch(t, reg, enterMonsterMsg(12, 4, 160, 96, "Maggot"))

	b := d.World.Being(12)
	if b == nil {
		t.Fatal("being 12 not created")
	}
	if b.ActorType() != world.ActorMonster || b.SubType() != 4 {
		t.Errorf("type = %v subtype = %d", b.ActorType(), b.SubType())
	}
	if b.Name != "Maggot" {
		t.Errorf("name = %q", b.Name)
	}
	if px, py := b.PixelPosition(); px != 160 || py != 96 {
		t.Errorf("position = (%v,%v), want (160,96)", px, py)
	}
}

func TestBeingEnterCharacterReadsLooks(t *testing.T) {
	d, reg := newTestDialect(t)
	w := packet.NewWriter(GPMSG_BEING_ENTER, order)
	w.WriteInt8(objectCharacter)
	w.WriteInt16(3)
	w.WriteInt8(actionStand)
	w.WriteInt16(64)
	w.WriteInt16(64)
	w.WriteInt8(int(world.DirUp))
	w.WriteString("Ishi", -1)
	w.WriteInt8(4) // hair style
	w.WriteInt8(2) // hair color
	w.WriteInt8(1) // female
	w.WriteInt8(1) // one look slot
	w.WriteInt8(2)
	w.WriteInt16(512)
	dispatch(t, reg, w.Bytes())

	b := d.World.Being(3)
	if b == nil {
		t.Fatal("character not created")
	}
	if b.Name != "Ishi" || b.Gender != world.GenderFemale {
		t.Errorf("name = %q gender = %v", b.Name, b.Gender)
	}
	if style, color := b.Hair(); style != 4 || color != 2 {
		t.Errorf("hair = (%d,%d)", style, color)
	}
	if got := b.Sprite(world.SpriteShoe + 2); got != 512 {
		t.Errorf("look slot = %d, want 512", got)
	}
	if b.Facing() != world.DirUp {
		t.Errorf("facing = %v", b.Facing())
	}
}

func TestBeingsMoveSetsDestinationAndSpeed(t *testing.T) {
	d, reg := newTestDialect(t)
	dispatch(t, reg, enterMonsterMsg(12, 4, 160, 96, "Maggot"))
	b := d.World.Being(12)

	w := packet.NewWriter(GPMSG_BEINGS_MOVE, order)
	w.WriteInt16(12)
	w.WriteInt8(movingPosition | movingDestination)
	w.WriteInt16(162)
	w.WriteInt16(96)
	w.WriteInt16(320)
	w.WriteInt16(96)
	w.WriteInt8(40) // 4 tiles per second
	dispatch(t, reg, w.Bytes())

	if b.Action() != world.ActionWalk {
		t.Errorf("action = %v, want walk", b.Action())
	}
	if dx, dy := b.Destination(); dx != 320 || dy != 96 {
		t.Errorf("destination = (%v,%v), want (320,96)", dx, dy)
	}
	if b.MoveSpeed() != 128 {
		t.Errorf("speed = %v, want 128", b.MoveSpeed())
	}
	// the small divergence stays below the tolerance
	if px, _ := b.PixelPosition(); px != 160 {
		t.Errorf("position snapped to %v within tolerance", px)
	}
}

func TestBeingsDamage(t *testing.T) {
	d, reg := newTestDialect(t)
	dispatch(t, reg, enterMonsterMsg(12, 4, 160, 96, "Maggot"))
	dispatch(t, reg, enterMonsterMsg(13, 4, 192, 96, "Maggot"))

	w := packet.NewWriter(GPMSG_BEINGS_DAMAGE, order)
	w.WriteInt16(12)
	w.WriteInt16(7)
	w.WriteInt16(13)
	w.WriteInt16(11)
	dispatch(t, reg, w.Bytes())

	var hits []event.DamageTaken
	event.Subscribe(d.Bus, func(ev event.DamageTaken) { hits = append(hits, ev) })
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()
	if len(hits) != 2 || hits[0].Amount != 7 || hits[1].Amount != 11 {
		t.Fatalf("damage events = %v", hits)
	}
}

func TestSaySkipsUnknownBeing(t *testing.T) {
	d, reg := newTestDialect(t)
	w := packet.NewWriter(GPMSG_SAY, order)
	w.WriteInt16(404)
	w.WriteString("boo", -1)
	dispatch(t, reg, w.Bytes())

	var lines []event.ChatMessage
	event.Subscribe(d.Bus, func(ev event.ChatMessage) { lines = append(lines, ev) })
	d.Bus.SwapBuffers()
	d.Bus.DispatchAll()
	if len(lines) != 0 {
		t.Errorf("chat events = %v", lines)
	}
}
