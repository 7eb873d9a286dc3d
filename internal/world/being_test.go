package world

import (
	"testing"
	"time"
)

func TestMovementInterpolatesTowardDestination(t *testing.T) {
	b := newBeing(1, ActorPlayer, 0)
	b.SetTilePosition(0, 0)
	b.SetMoveSpeed(32) // one tile per second
	b.SetTileDestination(4, 0)

	if b.Action() != ActionWalk {
		t.Fatalf("action = %v after SetDestination, want walk", b.Action())
	}

	b.Logic(time.Second)
	px, _ := b.PixelPosition()
	if px != 48 { // started at tile center 16, one tile per second
		t.Fatalf("px = %v after 1s, want 48", px)
	}

	for i := 0; i < 10; i++ {
		b.Logic(time.Second)
	}
	px, py := b.PixelPosition()
	wantX, wantY := TileCenter(4, 0)
	if px != wantX || py != wantY {
		t.Fatalf("position = (%v,%v), want destination (%v,%v)", px, py, wantX, wantY)
	}
	if b.Action() != ActionStand {
		t.Fatalf("action = %v on arrival, want stand", b.Action())
	}
}

func TestDeadBeingDoesNotWalk(t *testing.T) {
	b := newBeing(2, ActorMonster, 1002)
	b.SetTilePosition(3, 3)
	b.SetAction(ActionDead)
	b.SetTileDestination(10, 3)

	b.Logic(time.Second)
	if x, y := b.TilePosition(); x != 3 || y != 3 {
		t.Fatalf("dead being moved to (%d,%d)", x, y)
	}
	if b.Action() != ActionDead {
		t.Fatalf("action = %v, want dead", b.Action())
	}
}

func TestReconcileSnapsOnlyBeyondTolerance(t *testing.T) {
	b := newBeing(3, ActorPlayer, 0)
	b.SetPosition(100, 100)

	if b.ReconcilePosition(120, 100, 48) {
		t.Fatal("snapped inside tolerance")
	}
	if px, _ := b.PixelPosition(); px != 100 {
		t.Fatalf("px = %v, local estimate should be kept", px)
	}

	if !b.ReconcilePosition(200, 100, 48) {
		t.Fatal("did not snap beyond tolerance")
	}
	if px, _ := b.PixelPosition(); px != 200 {
		t.Fatalf("px = %v after snap, want 200", px)
	}
}

func TestSetPositionCancelsStaleDestination(t *testing.T) {
	b := newBeing(4, ActorPlayer, 0)
	b.SetTilePosition(0, 0)
	b.SetTileDestination(10, 0)
	b.SetTilePosition(5, 5)

	b.Logic(time.Second)
	if x, y := b.TilePosition(); x != 5 || y != 5 {
		t.Fatalf("being walked to (%d,%d) after teleport", x, y)
	}
}

func TestFacingFollowsDominantAxis(t *testing.T) {
	b := newBeing(5, ActorPlayer, 0)
	b.SetTilePosition(5, 5)

	b.SetTileDestination(9, 6)
	if b.Facing() != DirRight {
		t.Fatalf("facing = %v, want right", b.Facing())
	}
	b.SetPosition(b.px, b.py)
	b.SetTileDestination(5, 1)
	if b.Facing() != DirUp {
		t.Fatalf("facing = %v, want up", b.Facing())
	}
}

func TestWalkDelayConversion(t *testing.T) {
	b := newBeing(6, ActorPlayer, 0)
	b.SetWalkDelay(150)
	if got := b.MoveSpeed(); got != float64(TileSize)*1000/150 {
		t.Fatalf("speed = %v for 150ms delay", got)
	}
	// zero delay falls back rather than dividing by zero
	b.SetWalkDelay(0)
	if got := b.MoveSpeed(); got != float64(TileSize)*1000/150 {
		t.Fatalf("speed = %v for zero delay, want 150ms default", got)
	}
}

func TestStatusEffectToggleReportsChange(t *testing.T) {
	b := newBeing(7, ActorPlayer, 0)
	if !b.SetStatusEffect(3, true) {
		t.Fatal("activating a new effect should report a change")
	}
	if b.SetStatusEffect(3, true) {
		t.Fatal("re-activating should not report a change")
	}
	if !b.HasStatusEffect(3) {
		t.Fatal("effect not active")
	}
	if !b.SetStatusEffect(3, false) {
		t.Fatal("deactivating should report a change")
	}
	if b.SetStatusEffect(3, false) {
		t.Fatal("re-deactivating should not report a change")
	}
}

func TestStunModeSwap(t *testing.T) {
	b := newBeing(8, ActorPlayer, 0)
	if prev, changed := b.SetStunMode(5); !changed || prev != 0 {
		t.Fatalf("first swap: prev=%d changed=%v", prev, changed)
	}
	if _, changed := b.SetStunMode(5); changed {
		t.Fatal("same mode should not report a change")
	}
	if prev, changed := b.SetStunMode(0); !changed || prev != 5 {
		t.Fatalf("clear swap: prev=%d changed=%v", prev, changed)
	}
}
