package ea

import (
	"encoding/binary"

	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

var order = binary.LittleEndian

// MapLoaded acknowledges a map change so the server starts streaming
// beings.
func MapLoaded() *packet.Writer {
	return packet.NewWriter(CMSG_MAP_LOADED, order)
}

// RequestName asks for the name of a being seen without one.
func RequestName(id int) *packet.Writer {
	w := packet.NewWriter(CMSG_NAME_REQUEST, order)
	w.WriteInt32(id)
	return w
}

// TradeResponse builds the accept/refuse answer to a trade request.
func TradeResponse(accept bool) *packet.Writer {
	w := packet.NewWriter(CMSG_TRADE_RESPONSE, order)
	if accept {
		w.WriteInt8(3)
	} else {
		w.WriteInt8(4)
	}
	return w
}

// packDir folds a facing into the 2-bit direction of packed
// coordinates; diagonals collapse to their vertical component.
func packDir(d world.Direction) uint8 {
	switch {
	case d&world.DirUp != 0:
		return 2
	case d&world.DirRight != 0:
		return 3
	case d&world.DirLeft != 0:
		return 1
	default:
		return 0
	}
}

// dirToWire is the inverse of wireDirs.
func dirToWire(d world.Direction) int {
	for i, wd := range wireDirs {
		if wd == d {
			return i
		}
	}
	return int(packDir(d)) * 2
}

// Outbound builds the eAthena-family requests. Shared verbatim by the
// legacy and tmwAthena dialects.
type Outbound struct {
	d *dialect.Deps
}

func NewOutbound(d *dialect.Deps) *Outbound { return &Outbound{d: d} }

func (o *Outbound) EnterGame(accountID, charID, sessionA, sessionB int, token string, gender world.Gender) {
	w := packet.NewWriter(CMSG_MAP_SERVER_CONNECT, order)
	w.WriteInt32(accountID)
	w.WriteInt32(charID)
	w.WriteInt32(sessionA)
	w.WriteInt32(sessionB)
	if gender == world.GenderFemale {
		w.WriteInt8(0)
	} else {
		w.WriteInt8(1)
	}
	o.d.Out.Send(w)
}

func (o *Outbound) Ping(tick int) {
	w := packet.NewWriter(CMSG_MAP_PING, order)
	w.WriteInt32(tick)
	o.d.Out.Send(w)
}

func (o *Outbound) Walk(tileX, tileY int, dir world.Direction) {
	w := packet.NewWriter(CMSG_PLAYER_CHANGE_DEST, order)
	w.WriteCoordinates(tileX, tileY, packDir(dir))
	o.d.Out.Send(w)
}

// StopWalking has no wire form in this family; the server stops the
// player at the last acknowledged destination.
func (o *Outbound) StopWalking() {}

func (o *Outbound) SetDirection(dir world.Direction) {
	w := packet.NewWriter(CMSG_PLAYER_CHANGE_DIR, order)
	w.WriteInt16(0) // head direction
	w.WriteInt8(dirToWire(dir))
	o.d.Out.Send(w)
}

// player action codes for CMSG_PLAYER_ACTION
const (
	requestAttack     = 0
	requestSit        = 2
	requestStand      = 3
	requestKeepAttack = 7
)

func (o *Outbound) Attack(targetID int, keep bool) {
	w := packet.NewWriter(CMSG_PLAYER_ACTION, order)
	w.WriteInt32(targetID)
	if keep {
		w.WriteInt8(requestKeepAttack)
	} else {
		w.WriteInt8(requestAttack)
	}
	o.d.Out.Send(w)
}

func (o *Outbound) Sit(down bool) {
	w := packet.NewWriter(CMSG_PLAYER_ACTION, order)
	w.WriteInt32(0)
	if down {
		w.WriteInt8(requestSit)
	} else {
		w.WriteInt8(requestStand)
	}
	o.d.Out.Send(w)
}

func (o *Outbound) Respawn() {
	w := packet.NewWriter(CMSG_PLAYER_RESTART, order)
	w.WriteInt8(0)
	o.d.Out.Send(w)
}

func (o *Outbound) PickUp(floorItemID int) {
	w := packet.NewWriter(CMSG_ITEM_PICKUP, order)
	w.WriteInt32(floorItemID)
	o.d.Out.Send(w)
}

// Chat sends a public line. The server echoes it back with the "nick :
// text" prefix this builder bakes in.
func (o *Outbound) Chat(nick, text string) bool {
	full := nick + " : " + text
	w := packet.NewWriter(CMSG_CHAT_MESSAGE, order)
	w.WriteInt16(0)
	w.WriteString(full, len(full)+1)
	w.PatchLength()
	return o.d.Out.SendChat(w)
}

func (o *Outbound) Whisper(to, text string) bool {
	w := packet.NewWriter(CMSG_CHAT_WHISPER, order)
	w.WriteInt16(0)
	w.WriteString(to, 24)
	w.WriteString(text, len(text)+1)
	w.PatchLength()
	return o.d.Out.SendChat(w)
}

func (o *Outbound) TalkToNPC(npcID int) {
	w := packet.NewWriter(CMSG_NPC_TALK, order)
	w.WriteInt32(npcID)
	w.WriteInt8(0)
	o.d.Out.Send(w)
}

func (o *Outbound) NextDialog(npcID int) {
	w := packet.NewWriter(CMSG_NPC_NEXT_REQUEST, order)
	w.WriteInt32(npcID)
	o.d.Out.Send(w)
}

func (o *Outbound) CloseDialog(npcID int) {
	w := packet.NewWriter(CMSG_NPC_CLOSE_REQUEST, order)
	w.WriteInt32(npcID)
	o.d.Out.Send(w)
}

// SelectChoice answers a menu; choice counts from one.
func (o *Outbound) SelectChoice(npcID, choice int) {
	w := packet.NewWriter(CMSG_NPC_LIST_CHOICE, order)
	w.WriteInt32(npcID)
	w.WriteInt8(choice)
	o.d.Out.Send(w)
}

func (o *Outbound) IntegerInput(npcID, value int) {
	w := packet.NewWriter(CMSG_NPC_INT_RESPONSE, order)
	w.WriteInt32(npcID)
	w.WriteInt32(value)
	o.d.Out.Send(w)
}

func (o *Outbound) StringInput(npcID int, value string) {
	w := packet.NewWriter(CMSG_NPC_STR_RESPONSE, order)
	w.WriteInt16(0)
	w.WriteInt32(npcID)
	w.WriteString(value, len(value)+1)
	w.PatchLength()
	o.d.Out.Send(w)
}

func (o *Outbound) BuySellChoice(npcID int, buy bool) {
	w := packet.NewWriter(CMSG_NPC_BUY_SELL_REQUEST, order)
	w.WriteInt32(npcID)
	if buy {
		w.WriteInt8(0)
	} else {
		w.WriteInt8(1)
	}
	o.d.Out.Send(w)
}

func (o *Outbound) Buy(npcID, itemID, amount int) {
	w := packet.NewWriter(CMSG_NPC_BUY_REQUEST, order)
	w.WriteInt16(0)
	w.WriteInt16(amount)
	w.WriteInt16(itemID)
	w.PatchLength()
	o.d.Out.Send(w)
}

func (o *Outbound) Sell(slot, amount int) {
	w := packet.NewWriter(CMSG_NPC_SELL_REQUEST, order)
	w.WriteInt16(0)
	w.WriteInt16(slot)
	w.WriteInt16(amount)
	w.PatchLength()
	o.d.Out.Send(w)
}

func (o *Outbound) UseItem(slot, itemID int) {
	w := packet.NewWriter(CMSG_PLAYER_INVENTORY_USE, order)
	w.WriteInt16(slot)
	w.WriteInt32(itemID)
	o.d.Out.Send(w)
}

func (o *Outbound) EquipItem(slot int) {
	w := packet.NewWriter(CMSG_PLAYER_EQUIP, order)
	w.WriteInt16(slot)
	w.WriteInt16(0) // equip point, server decides
	o.d.Out.Send(w)
}

func (o *Outbound) UnequipItem(slot int) {
	w := packet.NewWriter(CMSG_PLAYER_UNEQUIP, order)
	w.WriteInt16(slot)
	o.d.Out.Send(w)
}

func (o *Outbound) DropItem(slot, amount int) {
	w := packet.NewWriter(CMSG_PLAYER_INVENTORY_DROP, order)
	w.WriteInt16(slot)
	w.WriteInt16(amount)
	o.d.Out.Send(w)
}

func (o *Outbound) UseSkill(skillID, level, targetID int) {
	w := packet.NewWriter(CMSG_SKILL_USE_BEING, order)
	w.WriteInt16(level)
	w.WriteInt16(skillID)
	w.WriteInt32(targetID)
	o.d.Out.Send(w)
}

func (o *Outbound) RequestTrade(beingID int) {
	w := packet.NewWriter(CMSG_TRADE_REQUEST, order)
	w.WriteInt32(beingID)
	o.d.Out.Send(w)
}

func (o *Outbound) RespondTrade(accept bool) {
	o.d.Out.Send(TradeResponse(accept))
}

func (o *Outbound) AddTradeItem(slot, amount int) {
	w := packet.NewWriter(CMSG_TRADE_ITEM_ADD_REQUEST, order)
	w.WriteInt16(slot)
	w.WriteInt32(amount)
	o.d.Out.Send(w)
}

// SetTradeGold uses slot zero, the money pseudo-slot.
func (o *Outbound) SetTradeGold(amount int) {
	w := packet.NewWriter(CMSG_TRADE_ITEM_ADD_REQUEST, order)
	w.WriteInt16(0)
	w.WriteInt32(amount)
	o.d.Out.Send(w)
}

func (o *Outbound) ConfirmTrade() {
	o.d.Out.Send(packet.NewWriter(CMSG_TRADE_ADD_COMPLETE, order))
}

func (o *Outbound) FinishTrade() {
	o.d.Out.Send(packet.NewWriter(CMSG_TRADE_OK, order))
}

func (o *Outbound) CancelTrade() {
	o.d.Out.Send(packet.NewWriter(CMSG_TRADE_CANCEL_REQUEST, order))
}

func (o *Outbound) CreateGuild(name string) {
	w := packet.NewWriter(CMSG_GUILD_CREATE, order)
	w.WriteInt32(0)
	w.WriteString(name, 24)
	o.d.Out.Send(w)
}

func (o *Outbound) InviteGuild(guildID int, name string) {
	b := o.d.World.FindBeingByName(name, world.ActorPlayer)
	if b == nil {
		return
	}
	w := packet.NewWriter(CMSG_GUILD_INVITE, order)
	w.WriteInt32(b.ActorID())
	w.WriteInt32(0)
	w.WriteInt32(0)
	o.d.Out.Send(w)
}

func (o *Outbound) RespondGuildInvite(accept bool) {
	w := packet.NewWriter(CMSG_GUILD_INVITE_REPLY, order)
	w.WriteInt32(o.d.GuildInviter)
	if accept {
		w.WriteInt8(1)
	} else {
		w.WriteInt8(0)
	}
	w.WriteInt8(0)
	w.WriteInt16(0)
	o.d.GuildInviter = 0
	o.d.Out.Send(w)
}

func (o *Outbound) LeaveGuild(guildID int) {
	id := 0
	if p := o.d.World.Player(); p != nil {
		id = p.ActorID()
	}
	w := packet.NewWriter(CMSG_GUILD_LEAVE, order)
	w.WriteInt32(guildID)
	w.WriteInt32(0)
	w.WriteInt32(id)
	w.WriteString("", 30)
	o.d.Out.Send(w)
}

// RequestGuildMembers has no wire form on this family; rosters never
// stream to the client.
func (o *Outbound) RequestGuildMembers(guildID int) {}

func (o *Outbound) CreateParty(name string) {
	w := packet.NewWriter(CMSG_PARTY_CREATE, order)
	w.WriteString(name, 24)
	o.d.Out.Send(w)
}

func (o *Outbound) InviteParty(beingID int, name string) {
	w := packet.NewWriter(CMSG_PARTY_INVITE, order)
	w.WriteInt32(beingID)
	o.d.Out.Send(w)
}

func (o *Outbound) RespondPartyInvite(accept bool) {
	w := packet.NewWriter(CMSG_PARTY_INVITED, order)
	w.WriteInt32(o.d.PartyInviter)
	if accept {
		w.WriteInt32(1)
	} else {
		w.WriteInt32(0)
	}
	o.d.PartyInviter = 0
	o.d.Out.Send(w)
}

func (o *Outbound) LeaveParty() {
	o.d.Out.Send(packet.NewWriter(CMSG_PARTY_LEAVE, order))
}

func (o *Outbound) PartyChat(text string) bool {
	w := packet.NewWriter(CMSG_PARTY_MESSAGE, order)
	w.WriteInt16(0)
	w.WriteString(text, len(text)+1)
	w.PatchLength()
	return o.d.Out.SendChat(w)
}

func (o *Outbound) RequestNameByID(beingID int) {
	o.d.Out.Send(RequestName(beingID))
}

func (o *Outbound) Emote(emoteID int) {
	w := packet.NewWriter(CMSG_EMOTE, order)
	w.WriteInt8(emoteID)
	o.d.Out.Send(w)
}

func (o *Outbound) RequestOnlineCount() {
	o.d.Out.Send(packet.NewWriter(CMSG_WHO_REQUEST, order))
}

func (o *Outbound) Announce(text string) {
	w := packet.NewWriter(CMSG_ADMIN_ANNOUNCE, order)
	w.WriteInt16(0)
	w.WriteString(text, len(text)+1)
	w.PatchLength()
	o.d.Out.Send(w)
}

func (o *Outbound) Kick(beingID int) {
	w := packet.NewWriter(CMSG_ADMIN_KICK, order)
	w.WriteInt32(beingID)
	o.d.Out.Send(w)
}
