package world

// TileSize is the pixel edge of one map tile.
const TileSize = 32

// ActorType tags every world entity.
type ActorType int

const (
	ActorUnknown ActorType = iota
	ActorPlayer
	ActorNPC
	ActorMonster
	ActorFloorItem
	ActorPortal
)

func (t ActorType) String() string {
	switch t {
	case ActorPlayer:
		return "player"
	case ActorNPC:
		return "npc"
	case ActorMonster:
		return "monster"
	case ActorFloorItem:
		return "floor-item"
	case ActorPortal:
		return "portal"
	default:
		return "unknown"
	}
}

// Direction is a facing bitmask; cardinal values combine for diagonals.
type Direction uint8

const (
	DirDown Direction = 1 << iota
	DirLeft
	DirUp
	DirRight
)

// Actor is any entity owned by the Manager: beings and floor items.
type Actor interface {
	ActorID() int
	ActorType() ActorType
	TilePosition() (x, y int)
}

// TileCenter converts a tile coordinate to its pixel center.
func TileCenter(tileX, tileY int) (px, py float64) {
	return float64(tileX*TileSize + TileSize/2), float64(tileY*TileSize + TileSize/2)
}
