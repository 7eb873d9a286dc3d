package world

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Manager owns every actor known from the server. Creation is rejected
// for duplicate ids; destruction can be immediate or deferred to the
// end of the current logic tick so handlers iterating the set never
// see it mutate under them.
type Manager struct {
	log    *zap.Logger
	actors map[int]Actor

	player *Being
	target *Being

	scheduled map[int]struct{}
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{
		log:       log,
		actors:    make(map[int]Actor),
		scheduled: make(map[int]struct{}),
	}
}

// SetPlayer installs the local player being. The player survives map
// changes and Clear.
func (m *Manager) SetPlayer(b *Being) {
	if b != nil {
		m.actors[b.ActorID()] = b
	}
	m.player = b
}

// Player reports the local player, nil before login completes.
func (m *Manager) Player() *Being { return m.player }

// SetTarget changes the local player's target; nil clears it.
func (m *Manager) SetTarget(b *Being) { m.target = b }

// Target reports the local player's current target.
func (m *Manager) Target() *Being { return m.target }

// CreateBeing adds a new being. It fails when the id is already taken.
func (m *Manager) CreateBeing(id int, typ ActorType, subType int) (*Being, error) {
	if _, ok := m.actors[id]; ok {
		return nil, fmt.Errorf("actor %d already exists", id)
	}
	b := newBeing(id, typ, subType)
	m.actors[id] = b
	return b, nil
}

// CreateFloorItem adds a dropped item. It fails when the id is already
// taken.
func (m *Manager) CreateFloorItem(id, itemID, amount, tileX, tileY int) (*FloorItem, error) {
	if _, ok := m.actors[id]; ok {
		return nil, fmt.Errorf("actor %d already exists", id)
	}
	f := newFloorItem(id, itemID, amount, tileX, tileY)
	m.actors[id] = f
	return f, nil
}

// Actor looks up any actor by id.
func (m *Manager) Actor(id int) Actor { return m.actors[id] }

// Being looks up a being by id; nil when absent or when the id belongs
// to a floor item.
func (m *Manager) Being(id int) *Being {
	b, _ := m.actors[id].(*Being)
	return b
}

// FloorItem looks up a floor item by id.
func (m *Manager) FloorItem(id int) *FloorItem {
	f, _ := m.actors[id].(*FloorItem)
	return f
}

// Count reports the number of known actors.
func (m *Manager) Count() int { return len(m.actors) }

// Destroy removes an actor immediately. The player cannot be destroyed
// this way. It reports whether anything was removed.
func (m *Manager) Destroy(id int) bool {
	a, ok := m.actors[id]
	if !ok {
		return false
	}
	if m.player != nil && id == m.player.ActorID() {
		return false
	}
	delete(m.actors, id)
	delete(m.scheduled, id)
	if m.target != nil && m.target.ActorID() == id {
		m.target = nil
	}
	if b, ok := a.(*Being); ok && m.log != nil {
		m.log.Debug("being destroyed",
			zap.Int("id", id),
			zap.Stringer("type", b.ActorType()))
	}
	return true
}

// ScheduleDestroy marks an actor for removal at the end of the current
// logic tick.
func (m *Manager) ScheduleDestroy(id int) {
	if _, ok := m.actors[id]; ok {
		m.scheduled[id] = struct{}{}
	}
}

// FlushScheduled removes every actor marked by ScheduleDestroy and
// returns their ids.
func (m *Manager) FlushScheduled() []int {
	if len(m.scheduled) == 0 {
		return nil
	}
	ids := make([]int, 0, len(m.scheduled))
	for id := range m.scheduled {
		delete(m.scheduled, id)
		if m.Destroy(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clear removes every actor except the local player. Used on map
// change and disconnect.
func (m *Manager) Clear() {
	m.actors = make(map[int]Actor)
	m.scheduled = make(map[int]struct{})
	m.target = nil
	if m.player != nil {
		m.actors[m.player.ActorID()] = m.player
	}
}

// ForEachBeing calls fn for every being in the set. Mutating the set
// inside fn is not allowed; use ScheduleDestroy instead.
func (m *Manager) ForEachBeing(fn func(*Being)) {
	for _, a := range m.actors {
		if b, ok := a.(*Being); ok {
			fn(b)
		}
	}
}

// Logic advances movement for every being.
func (m *Manager) Logic(dt time.Duration) {
	m.ForEachBeing(func(b *Being) { b.Logic(dt) })
}

// FindBeingAt reports a being of the given type standing on the tile.
// NPC sprites overlap the tile above their feet, so NPC lookups also
// match one row up. ActorUnknown matches any type. Dead beings are
// skipped.
func (m *Manager) FindBeingAt(tileX, tileY int, typ ActorType) *Being {
	var found *Being
	m.ForEachBeing(func(b *Being) {
		if found != nil || !b.Alive() {
			return
		}
		if typ != ActorUnknown && b.ActorType() != typ {
			return
		}
		bx, by := b.TilePosition()
		if bx != tileX {
			return
		}
		if by == tileY || (b.ActorType() == ActorNPC && by == tileY+1) {
			found = b
		}
	})
	return found
}

// FindBeingByName reports a being by exact name, case-insensitive.
// ActorUnknown matches any type.
func (m *Manager) FindBeingByName(name string, typ ActorType) *Being {
	var found *Being
	m.ForEachBeing(func(b *Being) {
		if found != nil {
			return
		}
		if typ != ActorUnknown && b.ActorType() != typ {
			return
		}
		if strings.EqualFold(b.Name, name) {
			found = b
		}
	})
	return found
}

// FindNearestLiving reports the living being of the given type closest
// to the tile, by Manhattan distance, within maxDist tiles. exclude is
// skipped, as is the local player.
func (m *Manager) FindNearestLiving(tileX, tileY, maxDist int, typ ActorType, exclude *Being) *Being {
	best := maxDist + 1
	var found *Being
	m.ForEachBeing(func(b *Being) {
		if b == exclude || b == m.player || !b.Alive() {
			return
		}
		if typ != ActorUnknown && b.ActorType() != typ {
			return
		}
		bx, by := b.TilePosition()
		d := abs(bx-tileX) + abs(by-tileY)
		if d < best {
			best = d
			found = b
		}
	})
	return found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
