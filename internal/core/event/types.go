package event

// Events published by the protocol core. UI and gameplay layers subscribe;
// nothing in this package depends on them.

// NoticeKind classifies a user-facing notice line for the chat surface.
type NoticeKind int

const (
	NoticeServer NoticeKind = iota
	NoticeError
	NoticeGM
)

// Notice is a short, user-visible line. Protocol failure codes are always
// surfaced this way, never as raw numbers.
type Notice struct {
	Kind NoticeKind
	Text string
}

type BeingSpawned struct {
	ID   int
	Name string
}

// BeingDied keeps the being around for its death animation; BeingRemoved
// means it is gone from the world set.
type BeingDied struct {
	ID int
}

type BeingRemoved struct {
	ID int
}

type BeingMoved struct {
	ID           int
	DestX, DestY int // pixels
}

type DamageTaken struct {
	VictimID   int
	AttackerID int // 0 when unknown
	Amount     int
}

// ChatSource tells the chat surface where to put a line.
type ChatSource int

const (
	ChatGeneral ChatSource = iota
	ChatWhisper
	ChatParty
	ChatChannel
)

type ChatMessage struct {
	Source  ChatSource
	Sender  string
	Text    string
	Channel int // channel id for ChatChannel, otherwise 0
	Self    bool
}

type WhisperResult struct {
	Recipient string
	Err       string // empty on success
}

// TradeState mirrors the trade window lifecycle.
type TradeState int

const (
	TradeIdle TradeState = iota
	TradeRequested
	TradeOpen
	TradeConfirmed
	TradeDone
	TradeCancelled
)

type TradeStateChanged struct {
	State   TradeState
	Partner string
}

type TradeItemAdded struct {
	ItemID   int
	Amount   int
	FromSelf bool
}

type TradeGoldAdded struct {
	Amount int
}

// PromptRequested models a question the UI must put to the player. The
// handler fires it and returns; the player's answer re-enters the core as an
// ordinary outgoing request.
type PromptKind int

const (
	PromptTradeRequest PromptKind = iota
	PromptPartyInvite
	PromptGuildInvite
)

type PromptRequested struct {
	Kind PromptKind
	From string
	Text string
}

type NpcDialog struct {
	NpcID int
	Text  string
}

// NpcDialogNext means the server waits for a "next" acknowledgement
// before it continues the dialog.
type NpcDialogNext struct {
	NpcID int
}

type NpcDialogClosed struct {
	NpcID int
}

type NpcChoice struct {
	NpcID   int
	Choices []string
}

// NpcInputRequested asks for a number (Numeric) or a string.
type NpcInputRequested struct {
	NpcID   int
	Numeric bool
}

type ShopOpened struct {
	NpcID int
}

type ShopListing struct {
	Buying bool
	Items  []ShopEntry
}

type ShopEntry struct {
	ItemID int
	Slot   int // inventory slot for sell listings
	Price  int
}

type PartyMemberUpdated struct {
	ID      int
	Name    string
	Map     string
	Leader  bool
	Online  bool
	Removed bool
}

type GuildMemberUpdated struct {
	GuildID int
	Name    string
	Online  bool
	Removed bool
}

type InventoryChanged struct {
	Slot   int
	ItemID int
	Amount int
	Equip  bool
}

type EquipmentChanged struct {
	Slot     int
	ItemID   int
	Equipped bool
}

type SkillsUpdated struct{}

type StatChanged struct {
	Stat  string
	Value int
}

type MapChanged struct {
	Map  string
	X, Y int // tiles
}

type QuestVarChanged struct {
	Key   int
	Value int
}

type StatusEffectChanged struct {
	BeingID  int
	EffectID int
	Active   bool
}

type OnlineCount struct {
	Count int
}
