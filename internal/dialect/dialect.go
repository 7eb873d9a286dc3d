// Package dialect defines the contract every server dialect fulfils:
// a framer for the TCP stream, a handler set for the inbound registry,
// and an outbound request surface the rest of the client drives.
package dialect

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/data"
	"github.com/manago/client/internal/net"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/world"
)

// Sender is the outbound half of the connection.
type Sender interface {
	Send(w *packet.Writer)
	SendChat(w *packet.Writer) bool
}

// Deps is everything a handler may touch. One value is shared by every
// handler of a dialect; all access happens on the game loop goroutine.
type Deps struct {
	Log       *zap.Logger
	Bus       *event.Bus
	World     *world.Manager
	Party     *world.Party
	Guilds    *world.GuildRegistry
	Relations *world.Relations
	QuestVars *world.QuestVars
	Out       Sender

	Items    *data.ItemTable
	Skills   *data.SkillTable
	Statuses *data.StatusEffectTable

	// Pixel divergence beyond which a server position overrides the
	// interpolated one.
	PositionTolerance float64

	// PartyInviter carries the being id of the latest party invitation
	// between the inbound handler and the outbound response.
	PartyInviter int

	// GuildInviter carries the guild id of the latest guild invitation
	// the same way.
	GuildInviter int
}

// Notice is the one-liner every handler reaches for on failure codes.
func (d *Deps) Notice(kind event.NoticeKind, text string) {
	event.Emit(d.Bus, event.Notice{Kind: kind, Text: text})
}

// Dialect binds one server protocol family.
type Dialect interface {
	Name() string
	ByteOrder() binary.ByteOrder
	Framer() net.Framer
	// Register installs every inbound handler into a fresh registry.
	Register(reg *packet.Registry)
	// Outbound returns the request surface bound to this dialect's
	// message ids.
	Outbound() Outbound
}

// Outbound is the dialect-independent request surface. Implementations
// translate each call into the dialect's wire messages; calls made in a
// state the server would reject are dropped by the server, not guarded
// here.
type Outbound interface {
	// EnterGame announces the character to the game server after the
	// account handshake.
	EnterGame(accountID, charID, sessionA, sessionB int, token string, gender world.Gender)
	Ping(tick int)

	Walk(tileX, tileY int, dir world.Direction)
	StopWalking()
	SetDirection(dir world.Direction)
	Attack(targetID int, keep bool)
	Sit(down bool)
	Respawn()
	PickUp(floorItemID int)

	Chat(nick, text string) bool
	Whisper(to, text string) bool

	TalkToNPC(npcID int)
	NextDialog(npcID int)
	CloseDialog(npcID int)
	SelectChoice(npcID, choice int)
	IntegerInput(npcID, value int)
	StringInput(npcID int, value string)

	BuySellChoice(npcID int, buy bool)
	Buy(npcID, itemID, amount int)
	Sell(slot, amount int)

	UseItem(slot, itemID int)
	EquipItem(slot int)
	UnequipItem(slot int)
	DropItem(slot, amount int)

	UseSkill(skillID, level, targetID int)

	RequestTrade(beingID int)
	RespondTrade(accept bool)
	AddTradeItem(slot, amount int)
	SetTradeGold(amount int)
	ConfirmTrade()
	FinishTrade()
	CancelTrade()

	CreateGuild(name string)
	InviteGuild(guildID int, name string)
	RespondGuildInvite(accept bool)
	LeaveGuild(guildID int)
	RequestGuildMembers(guildID int)

	CreateParty(name string)
	InviteParty(beingID int, name string)
	RespondPartyInvite(accept bool)
	LeaveParty()
	PartyChat(text string) bool

	RequestNameByID(beingID int)
	Emote(emoteID int)
	RequestOnlineCount()

	// GM requests. The server checks the privilege, not the client.
	Announce(text string)
	Kick(beingID int)
}
