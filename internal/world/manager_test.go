package world

import (
	"testing"

	"go.uber.org/zap"
)

func newTestManager() *Manager {
	return NewManager(zap.NewNop())
}

func TestCreateBeingRejectsDuplicateID(t *testing.T) {
	m := newTestManager()
	if _, err := m.CreateBeing(100, ActorMonster, 1002); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := m.CreateBeing(100, ActorPlayer, 0); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
	if _, err := m.CreateFloorItem(100, 535, 1, 5, 5); err == nil {
		t.Fatal("expected duplicate id to be rejected for floor item")
	}
	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
}

func TestDestroyRemovesFromLookups(t *testing.T) {
	m := newTestManager()
	b, _ := m.CreateBeing(200, ActorNPC, 110)
	b.Name = "Sabine"
	b.SetTilePosition(10, 10)

	if !m.Destroy(200) {
		t.Fatal("destroy reported nothing removed")
	}
	if m.Being(200) != nil {
		t.Fatal("being still found by id after destroy")
	}
	if m.FindBeingByName("Sabine", ActorUnknown) != nil {
		t.Fatal("being still found by name after destroy")
	}
	if m.FindBeingAt(10, 10, ActorUnknown) != nil {
		t.Fatal("being still found by tile after destroy")
	}
	if m.Destroy(200) {
		t.Fatal("second destroy should be a no-op")
	}
}

func TestDestroyClearsTarget(t *testing.T) {
	m := newTestManager()
	b, _ := m.CreateBeing(300, ActorMonster, 1010)
	m.SetTarget(b)

	m.Destroy(300)
	if m.Target() != nil {
		t.Fatal("target not cleared when targeted being destroyed")
	}
}

func TestScheduledDestroyDeferredUntilFlush(t *testing.T) {
	m := newTestManager()
	m.CreateBeing(1, ActorMonster, 1002)
	m.CreateBeing(2, ActorMonster, 1003)

	m.ScheduleDestroy(1)
	if m.Being(1) == nil {
		t.Fatal("scheduled being removed before flush")
	}

	ids := m.FlushScheduled()
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("flushed ids = %v, want [1]", ids)
	}
	if m.Being(1) != nil {
		t.Fatal("scheduled being survived flush")
	}
	if m.Being(2) == nil {
		t.Fatal("unscheduled being removed by flush")
	}
	if got := m.FlushScheduled(); got != nil {
		t.Fatalf("second flush removed %v, want nothing", got)
	}
}

func TestClearPreservesLocalPlayer(t *testing.T) {
	m := newTestManager()
	player := newBeing(1, ActorPlayer, 0)
	player.Name = "Confused Tree"
	m.SetPlayer(player)
	m.CreateBeing(2, ActorMonster, 1002)
	npc, _ := m.CreateBeing(3, ActorNPC, 107)
	m.SetTarget(npc)

	m.Clear()

	if m.Count() != 1 {
		t.Fatalf("count = %d after clear, want 1", m.Count())
	}
	if m.Player() != player || m.Being(1) != player {
		t.Fatal("local player lost on clear")
	}
	if m.Target() != nil {
		t.Fatal("target survived clear")
	}
}

func TestPlayerCannotBeDestroyed(t *testing.T) {
	m := newTestManager()
	player := newBeing(7, ActorPlayer, 0)
	m.SetPlayer(player)

	if m.Destroy(7) {
		t.Fatal("destroy removed the local player")
	}
	if m.Being(7) != player {
		t.Fatal("local player missing after destroy attempt")
	}
}

func TestFindBeingAtMatchesNPCRowAbove(t *testing.T) {
	m := newTestManager()
	npc, _ := m.CreateBeing(10, ActorNPC, 322)
	npc.SetTilePosition(8, 9)
	mob, _ := m.CreateBeing(11, ActorMonster, 1002)
	mob.SetTilePosition(3, 4)

	if got := m.FindBeingAt(8, 9, ActorNPC); got != npc {
		t.Fatal("npc not found on its own tile")
	}
	if got := m.FindBeingAt(8, 8, ActorNPC); got != npc {
		t.Fatal("npc not found one row above its feet")
	}
	if got := m.FindBeingAt(3, 3, ActorMonster); got != nil {
		t.Fatal("monster matched a row above; only npcs overlap upward")
	}
	if got := m.FindBeingAt(3, 4, ActorUnknown); got != mob {
		t.Fatal("unknown type filter should match any being")
	}
}

func TestFindNearestLivingSkipsDead(t *testing.T) {
	m := newTestManager()
	near, _ := m.CreateBeing(20, ActorMonster, 1005)
	near.SetTilePosition(5, 5)
	near.SetAction(ActionDead)
	far, _ := m.CreateBeing(21, ActorMonster, 1005)
	far.SetTilePosition(9, 9)

	got := m.FindNearestLiving(5, 5, 20, ActorMonster, nil)
	if got != far {
		t.Fatalf("nearest = %v, want the living being", got)
	}
}

func TestFindNearestLivingHonorsRangeAndExclude(t *testing.T) {
	m := newTestManager()
	a, _ := m.CreateBeing(30, ActorMonster, 1002)
	a.SetTilePosition(2, 2)
	b, _ := m.CreateBeing(31, ActorMonster, 1002)
	b.SetTilePosition(4, 4)

	if got := m.FindNearestLiving(0, 0, 3, ActorMonster, nil); got != nil {
		t.Fatal("being beyond max distance returned")
	}
	if got := m.FindNearestLiving(0, 0, 20, ActorMonster, a); got != b {
		t.Fatal("excluded being returned")
	}
}

func TestFindBeingByNameIsCaseInsensitive(t *testing.T) {
	m := newTestManager()
	b, _ := m.CreateBeing(40, ActorPlayer, 0)
	b.Name = "Ishi"

	if got := m.FindBeingByName("ishi", ActorPlayer); got != b {
		t.Fatal("case-insensitive name lookup failed")
	}
	if got := m.FindBeingByName("Ishi", ActorMonster); got != nil {
		t.Fatal("type filter ignored in name lookup")
	}
}
