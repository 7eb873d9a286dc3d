package world

// FloorItem is an item lying on the map.
type FloorItem struct {
	id     int
	ItemID int
	Amount int
	tileX  int
	tileY  int
}

func newFloorItem(id, itemID, amount, tileX, tileY int) *FloorItem {
	return &FloorItem{id: id, ItemID: itemID, Amount: amount, tileX: tileX, tileY: tileY}
}

func (f *FloorItem) ActorID() int             { return f.id }
func (f *FloorItem) ActorType() ActorType     { return ActorFloorItem }
func (f *FloorItem) TilePosition() (int, int) { return f.tileX, f.tileY }
