package manaserv

import (
	"testing"

	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

type sentLog struct {
	ws []*packet.Writer
}

func (s *sentLog) Send(w *packet.Writer)          { s.ws = append(s.ws, w) }
func (s *sentLog) SendChat(w *packet.Writer) bool { s.ws = append(s.ws, w); return true }

func TestWalkSendsPixelCenter(t *testing.T) {
	d, _ := newTestDialect(t)
	out := &sentLog{}
	d.Out = out

	NewOutbound(d).Walk(5, 3, world.DirDown)

	if len(out.ws) != 1 {
		t.Fatalf("sent %d packets, want 1", len(out.ws))
	}
	w := out.ws[0]
	if w.ID() != PGMSG_WALK {
		t.Fatalf("packet id = %#04x", w.ID())
	}
	r := packet.NewReader(w.Bytes(), order)
	px := r.ReadInt16()
	py := r.ReadInt16()
	if px != 5*world.TileSize+world.TileSize/2 || py != 3*world.TileSize+world.TileSize/2 {
		t.Errorf("walk target = (%d,%d), want tile center of (5,3)", px, py)
	}
}

func TestFloorItemKeyAvoidsBeingIDs(t *testing.T) {
	// x=0 keys must not land in the 16-bit being id range
	if key := floorItemKey(0, 96); key <= 0xffff {
		t.Fatalf("key %#x collides with being ids", key)
	}
	for _, pos := range [][2]int{{0, 0}, {0, 96}, {160, 96}, {32767, 32767}} {
		key := floorItemKey(pos[0], pos[1])
		px, py := floorItemPos(key)
		if px != pos[0] || py != pos[1] {
			t.Errorf("round trip (%d,%d) -> (%d,%d)", pos[0], pos[1], px, py)
		}
	}
}

func TestItemRemoveAtOriginKeepsBeing(t *testing.T) {
	d, reg := newTestDialect(t)
	// being whose id equals the y pixel of the vanishing item
	if _, err := d.World.CreateBeing(96, world.ActorMonster, 0); err != nil {
		t.Fatal(err)
	}

	w := packet.NewWriter(GPMSG_ITEM_APPEAR, order)
	w.WriteInt16(512)
	w.WriteInt16(0)
	w.WriteInt16(96)
	dispatch(t, reg, w.Bytes())

	w = packet.NewWriter(GPMSG_ITEMS, order)
	w.WriteInt16(0) // item gone
	w.WriteInt16(0)
	w.WriteInt16(96)
	dispatch(t, reg, w.Bytes())

	d.World.FlushScheduled()
	if d.World.Being(96) == nil {
		t.Fatal("being destroyed by a floor item removal at pixel x=0")
	}
	if d.World.FloorItem(floorItemKey(0, 96)) != nil {
		t.Fatal("floor item survived its removal")
	}
}

func TestPickUpEncodesItemPosition(t *testing.T) {
	d, _ := newTestDialect(t)
	out := &sentLog{}
	d.Out = out

	NewOutbound(d).PickUp(floorItemKey(160, 96))

	if len(out.ws) != 1 {
		t.Fatalf("sent %d packets, want 1", len(out.ws))
	}
	w := out.ws[0]
	if w.ID() != PGMSG_PICKUP {
		t.Fatalf("packet id = %#04x", w.ID())
	}
	r := packet.NewReader(w.Bytes(), order)
	if px, py := r.ReadInt16(), r.ReadInt16(); px != 160 || py != 96 {
		t.Errorf("pickup position = (%d,%d), want (160,96)", px, py)
	}
}
