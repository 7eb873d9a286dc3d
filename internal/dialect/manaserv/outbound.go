package manaserv

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

var order = binary.BigEndian

// LoginHash derives the credential hash the account server expects.
func LoginHash(username, password string) string {
	sum := sha256.Sum256([]byte(username + password))
	return hex.EncodeToString(sum[:])
}

// Outbound translates requests into ManaServ messages. This family moves
// in pixels and addresses beings with 16-bit ids; requests with no wire
// form here are dropped.
type Outbound struct {
	d *dialect.Deps
}

func NewOutbound(d *dialect.Deps) *Outbound { return &Outbound{d: d} }

func (o *Outbound) send(w *packet.Writer)          { o.d.Out.Send(w) }
func (o *Outbound) sendChat(w *packet.Writer) bool { return o.d.Out.SendChat(w) }

func (o *Outbound) EnterGame(accountID, charID, sessionA, sessionB int, token string, gender world.Gender) {
	w := packet.NewWriter(PGMSG_CONNECT, order)
	w.WriteString(token, 32)
	o.send(w)
}

func (o *Outbound) Ping(tick int) {}

func (o *Outbound) Walk(tileX, tileY int, dir world.Direction) {
	px, py := world.TileCenter(tileX, tileY)
	w := packet.NewWriter(PGMSG_WALK, order)
	w.WriteInt16(int(px))
	w.WriteInt16(int(py))
	o.send(w)
}

func (o *Outbound) StopWalking() {}

func (o *Outbound) SetDirection(dir world.Direction) {
	w := packet.NewWriter(PGMSG_DIRECTION_CHANGE, order)
	w.WriteInt8(int(dir))
	o.send(w)
}

func (o *Outbound) Attack(targetID int, keep bool) {
	w := packet.NewWriter(PGMSG_ATTACK, order)
	w.WriteInt16(targetID)
	o.send(w)
}

func (o *Outbound) Sit(down bool) {
	action := actionStand
	if down {
		action = actionSit
	}
	w := packet.NewWriter(PGMSG_ACTION_CHANGE, order)
	w.WriteInt8(action)
	o.send(w)
}

func (o *Outbound) Respawn() {
	o.send(packet.NewWriter(PGMSG_RESPAWN, order))
}

func (o *Outbound) PickUp(floorItemID int) {
	// the actor key packs the pixel position, see floorItemKey
	px, py := floorItemPos(floorItemID)
	w := packet.NewWriter(PGMSG_PICKUP, order)
	w.WriteInt16(px)
	w.WriteInt16(py)
	o.send(w)
}

func (o *Outbound) Chat(nick, text string) bool {
	w := packet.NewWriter(PGMSG_SAY, order)
	w.WriteString(text, -1)
	return o.sendChat(w)
}

func (o *Outbound) Whisper(to, text string) bool {
	w := packet.NewWriter(PCMSG_PRIVMSG, order)
	w.WriteString(to, -1)
	w.WriteString(text, -1)
	return o.sendChat(w)
}

func (o *Outbound) TalkToNPC(npcID int) {
	w := packet.NewWriter(PGMSG_NPC_TALK, order)
	w.WriteInt16(npcID)
	o.send(w)
}

func (o *Outbound) NextDialog(npcID int) {
	w := packet.NewWriter(PGMSG_NPC_TALK_NEXT, order)
	w.WriteInt16(npcID)
	o.send(w)
}

func (o *Outbound) CloseDialog(npcID int) {}

func (o *Outbound) SelectChoice(npcID, choice int) {
	w := packet.NewWriter(PGMSG_NPC_SELECT, order)
	w.WriteInt16(npcID)
	w.WriteInt8(choice)
	o.send(w)
}

func (o *Outbound) IntegerInput(npcID, value int) {
	w := packet.NewWriter(PGMSG_NPC_NUMBER, order)
	w.WriteInt16(npcID)
	w.WriteInt32(value)
	o.send(w)
}

func (o *Outbound) StringInput(npcID int, value string) {
	w := packet.NewWriter(PGMSG_NPC_STRING, order)
	w.WriteInt16(npcID)
	w.WriteString(value, -1)
	o.send(w)
}

func (o *Outbound) BuySellChoice(npcID int, buy bool) {}

func (o *Outbound) Buy(npcID, itemID, amount int) {
	w := packet.NewWriter(PGMSG_NPC_BUYSELL, order)
	w.WriteInt16(npcID)
	w.WriteInt16(itemID)
	w.WriteInt16(amount)
	o.send(w)
}

func (o *Outbound) Sell(slot, amount int) {
	w := packet.NewWriter(PGMSG_NPC_BUYSELL, order)
	w.WriteInt16(slot)
	w.WriteInt16(amount)
	o.send(w)
}

func (o *Outbound) UseItem(slot, itemID int) {
	w := packet.NewWriter(PGMSG_USE_ITEM, order)
	w.WriteInt8(slot)
	o.send(w)
}

func (o *Outbound) EquipItem(slot int) {
	w := packet.NewWriter(PGMSG_EQUIP, order)
	w.WriteInt8(slot)
	o.send(w)
}

func (o *Outbound) UnequipItem(slot int) {
	w := packet.NewWriter(PGMSG_UNEQUIP, order)
	w.WriteInt8(slot)
	o.send(w)
}

func (o *Outbound) DropItem(slot, amount int) {
	w := packet.NewWriter(PGMSG_DROP, order)
	w.WriteInt8(slot)
	w.WriteInt8(amount)
	o.send(w)
}

func (o *Outbound) UseSkill(skillID, level, targetID int) {}

func (o *Outbound) RequestTrade(beingID int) {
	o.d.Notice(event.NoticeError, "Trading is not available on this server.")
}

func (o *Outbound) RespondTrade(accept bool)      {}
func (o *Outbound) AddTradeItem(slot, amount int) {}
func (o *Outbound) SetTradeGold(amount int)       {}
func (o *Outbound) ConfirmTrade()                 {}
func (o *Outbound) FinishTrade()                  {}
func (o *Outbound) CancelTrade()                  {}

func (o *Outbound) CreateGuild(name string) {
	w := packet.NewWriter(PCMSG_GUILD_CREATE, order)
	w.WriteString(name, -1)
	o.send(w)
}

func (o *Outbound) InviteGuild(guildID int, name string) {
	w := packet.NewWriter(PCMSG_GUILD_INVITE, order)
	w.WriteInt16(guildID)
	w.WriteString(name, -1)
	o.send(w)
}

func (o *Outbound) RespondGuildInvite(accept bool) {
	id := o.d.GuildInviter
	o.d.GuildInviter = 0
	if !accept || id == 0 {
		return
	}
	w := packet.NewWriter(PCMSG_GUILD_ACCEPT, order)
	w.WriteInt16(id)
	o.send(w)
}

func (o *Outbound) LeaveGuild(guildID int) {
	w := packet.NewWriter(PCMSG_GUILD_QUIT, order)
	w.WriteInt16(guildID)
	o.send(w)
}

func (o *Outbound) RequestGuildMembers(guildID int) {
	w := packet.NewWriter(PCMSG_GUILD_GET_MEMBERS, order)
	w.WriteInt16(guildID)
	o.send(w)
}

func (o *Outbound) CreateParty(name string) {
	o.d.Notice(event.NoticeError, "Parties are not available on this server.")
}

func (o *Outbound) InviteParty(beingID int, name string) {}
func (o *Outbound) RespondPartyInvite(accept bool)       {}
func (o *Outbound) LeaveParty()                          {}

func (o *Outbound) PartyChat(text string) bool { return false }

func (o *Outbound) RequestNameByID(beingID int) {}

func (o *Outbound) Emote(emoteID int) {}

func (o *Outbound) RequestOnlineCount() {}

func (o *Outbound) Announce(text string) {
	w := packet.NewWriter(PCMSG_ANNOUNCE, order)
	w.WriteString(text, -1)
	o.send(w)
}

// Kick has no wire form here; GM removal goes through server commands.
func (o *Outbound) Kick(beingID int) {}
