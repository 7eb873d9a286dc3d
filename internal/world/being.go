package world

import (
	"math"
	"time"
)

// Action is a being's current activity.
type Action int

const (
	ActionStand Action = iota
	ActionWalk
	ActionAttack
	ActionSit
	ActionDead
)

func (a Action) String() string {
	switch a {
	case ActionStand:
		return "stand"
	case ActionWalk:
		return "walk"
	case ActionAttack:
		return "attack"
	case ActionSit:
		return "sit"
	case ActionDead:
		return "dead"
	}
	return "stand"
}

// Gender of a player being, as reported by the server.
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

// Sprite slot indexes for equipment looks.
const (
	SpriteBase = iota
	SpriteShoe
	SpriteBottom
	SpriteTop
	SpriteMisc1
	SpriteMisc2
	SpriteHair
	SpriteHat
	SpriteCape
	SpriteGlove
	SpriteWeapon
	SpriteShield
	SpriteVectorSize
)

// Being is a mobile server-controlled entity: player, NPC, monster or
// portal. Position is tracked in pixels; the server speaks in tiles and
// handlers convert on the way in.
type Being struct {
	id      int
	typ     ActorType
	subType int

	Name      string
	Gender    Gender
	Level     int
	PartyName string
	GuildName string

	px, py     float64
	destX      float64
	destY      float64
	facing     Direction
	action     Action
	moveSpeed  float64 // pixels per second
	attackTime time.Duration

	stunMode  int
	statuses  map[int]bool
	sprites   [SpriteVectorSize]int
	hair      int
	hairColor int
}

func newBeing(id int, typ ActorType, subType int) *Being {
	return &Being{
		id:        id,
		typ:       typ,
		subType:   subType,
		facing:    DirDown,
		moveSpeed: defaultMoveSpeed,
		statuses:  make(map[int]bool),
	}
}

// defaultMoveSpeed matches a 150ms-per-tile walk delay.
const defaultMoveSpeed = float64(TileSize) * 1000 / 150

func (b *Being) ActorID() int         { return b.id }
func (b *Being) ActorType() ActorType { return b.typ }
func (b *Being) SubType() int         { return b.subType }

// TilePosition reports the tile under the being's pixel position.
func (b *Being) TilePosition() (int, int) {
	return int(b.px) / TileSize, int(b.py) / TileSize
}

// PixelPosition reports the exact pixel position.
func (b *Being) PixelPosition() (float64, float64) { return b.px, b.py }

// Destination reports the current movement target in pixels.
func (b *Being) Destination() (float64, float64) { return b.destX, b.destY }

func (b *Being) Action() Action    { return b.action }
func (b *Being) Facing() Direction { return b.facing }

// SetPosition teleports the being; the destination follows so the being
// does not start walking back to a stale target.
func (b *Being) SetPosition(px, py float64) {
	b.px, b.py = px, py
	b.destX, b.destY = px, py
	if b.action == ActionWalk {
		b.action = ActionStand
	}
}

// SetTilePosition teleports to a tile center.
func (b *Being) SetTilePosition(tileX, tileY int) {
	px, py := TileCenter(tileX, tileY)
	b.SetPosition(px, py)
}

// SetDestination starts movement toward a pixel target. Dead beings do
// not walk.
func (b *Being) SetDestination(px, py float64) {
	if b.action == ActionDead {
		return
	}
	b.destX, b.destY = px, py
	if px != b.px || py != b.py {
		b.faceToward(px, py)
		b.action = ActionWalk
	}
}

// SetTileDestination starts movement toward a tile center.
func (b *Being) SetTileDestination(tileX, tileY int) {
	px, py := TileCenter(tileX, tileY)
	b.SetDestination(px, py)
}

// ReconcilePosition snaps to the server-reported position when the
// local estimate has drifted beyond tolerance pixels, otherwise keeps
// the smoother local estimate.
func (b *Being) ReconcilePosition(px, py float64, tolerance float64) bool {
	dx := b.px - px
	dy := b.py - py
	if dx*dx+dy*dy <= tolerance*tolerance {
		return false
	}
	b.SetPosition(px, py)
	return true
}

// SetAction changes the activity state. Entering ActionDead cancels any
// movement in progress.
func (b *Being) SetAction(a Action) {
	b.action = a
	if a == ActionDead || a == ActionSit || a == ActionStand {
		b.destX, b.destY = b.px, b.py
	}
}

func (b *Being) SetFacing(d Direction) {
	if d != 0 {
		b.facing = d
	}
}

func (b *Being) faceToward(px, py float64) {
	dx := px - b.px
	dy := py - b.py
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			b.facing = DirRight
		} else {
			b.facing = DirLeft
		}
	} else if dy != 0 {
		if dy > 0 {
			b.facing = DirDown
		} else {
			b.facing = DirUp
		}
	}
}

// MoveSpeed reports pixels per second.
func (b *Being) MoveSpeed() float64 { return b.moveSpeed }

// SetMoveSpeed sets pixels per second; non-positive values keep the
// previous speed.
func (b *Being) SetMoveSpeed(pxPerSec float64) {
	if pxPerSec > 0 {
		b.moveSpeed = pxPerSec
	}
}

// SetWalkDelay sets speed from an Athena walk delay in milliseconds per
// tile. A zero delay falls back to the 150ms default.
func (b *Being) SetWalkDelay(msPerTile int) {
	if msPerTile <= 0 {
		msPerTile = 150
	}
	b.moveSpeed = float64(TileSize) * 1000 / float64(msPerTile)
}

// Logic advances interpolated movement by dt.
func (b *Being) Logic(dt time.Duration) {
	if b.action != ActionWalk {
		return
	}
	dx := b.destX - b.px
	dy := b.destY - b.py
	dist := math.Hypot(dx, dy)
	step := b.moveSpeed * dt.Seconds()
	if step >= dist || dist == 0 {
		b.px, b.py = b.destX, b.destY
		b.action = ActionStand
		return
	}
	b.px += dx / dist * step
	b.py += dy / dist * step
}

// Alive reports whether the being can act.
func (b *Being) Alive() bool { return b.action != ActionDead }

// StunMode is the exclusive stun-family status reported by the server.
func (b *Being) StunMode() int { return b.stunMode }

// SetStunMode swaps the stun-family status; it reports the previous
// mode so the caller can retire its effect.
func (b *Being) SetStunMode(mode int) (prev int, changed bool) {
	prev = b.stunMode
	if prev == mode {
		return prev, false
	}
	b.stunMode = mode
	return prev, true
}

// SetStatusEffect toggles one status effect; it reports whether the
// flag actually changed.
func (b *Being) SetStatusEffect(id int, active bool) bool {
	if b.statuses[id] == active {
		return false
	}
	if active {
		b.statuses[id] = true
	} else {
		delete(b.statuses, id)
	}
	return true
}

// HasStatusEffect reports whether the effect is active.
func (b *Being) HasStatusEffect(id int) bool { return b.statuses[id] }

// StatusEffects returns the ids of all active effects.
func (b *Being) StatusEffects() []int {
	out := make([]int, 0, len(b.statuses))
	for id := range b.statuses {
		out = append(out, id)
	}
	return out
}

// SetSprite changes one look slot.
func (b *Being) SetSprite(slot, id int) {
	if slot >= 0 && slot < SpriteVectorSize {
		b.sprites[slot] = id
	}
}

// Sprite reports one look slot.
func (b *Being) Sprite(slot int) int {
	if slot >= 0 && slot < SpriteVectorSize {
		return b.sprites[slot]
	}
	return 0
}

// SetHair updates the hair style and color pair.
func (b *Being) SetHair(style, color int) {
	b.hair = style
	b.hairColor = color
	b.sprites[SpriteHair] = style
}

// Hair reports the style and color pair.
func (b *Being) Hair() (style, color int) { return b.hair, b.hairColor }
