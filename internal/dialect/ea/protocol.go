// Package ea implements the eAthena protocol family shared by the
// legacy and tmwAthena dialects: little-endian wire order, implicit
// framing driven by a per-message length table, and the message set
// both dialects inherit. Dialect packages add their own extras on top.
package ea

// Server to client.
const (
	SMSG_MAP_LOGIN_SUCCESS       = 0x0073
	SMSG_BEING_VISIBLE           = 0x0078
	SMSG_BEING_MOVE              = 0x007b
	SMSG_BEING_SPAWN             = 0x007c
	SMSG_BEING_REMOVE            = 0x0080
	SMSG_WALK_RESPONSE           = 0x0087
	SMSG_PLAYER_STOP             = 0x0088
	SMSG_BEING_ACTION            = 0x008a
	SMSG_BEING_CHAT              = 0x008d
	SMSG_PLAYER_CHAT             = 0x008e
	SMSG_PLAYER_WARP             = 0x0091
	SMSG_BEING_NAME_RESPONSE     = 0x0095
	SMSG_WHISPER                 = 0x0097
	SMSG_WHISPER_RESPONSE        = 0x0098
	SMSG_GM_CHAT                 = 0x009a
	SMSG_BEING_CHANGE_DIRECTION  = 0x009c
	SMSG_ITEM_VISIBLE            = 0x009d
	SMSG_ITEM_DROPPED            = 0x009e
	SMSG_PLAYER_INVENTORY_ADD    = 0x00a0
	SMSG_ITEM_REMOVE             = 0x00a1
	SMSG_PLAYER_EQUIPMENT        = 0x00a4
	SMSG_ITEM_USE_RESPONSE       = 0x00a8
	SMSG_PLAYER_EQUIP            = 0x00aa
	SMSG_PLAYER_UNEQUIP          = 0x00ac
	SMSG_PLAYER_INVENTORY_REMOVE = 0x00af
	SMSG_PLAYER_STAT_UPDATE_1    = 0x00b0
	SMSG_PLAYER_STAT_UPDATE_2    = 0x00b1
	SMSG_NPC_MESSAGE             = 0x00b4
	SMSG_NPC_NEXT                = 0x00b5
	SMSG_NPC_CLOSE               = 0x00b6
	SMSG_NPC_CHOICE              = 0x00b7
	SMSG_BEING_EMOTION           = 0x00c0
	SMSG_WHO_ANSWER              = 0x00c2
	SMSG_NPC_BUY_SELL_CHOICE     = 0x00c4
	SMSG_NPC_BUY                 = 0x00c6
	SMSG_NPC_SELL                = 0x00c7
	SMSG_NPC_BUY_RESPONSE        = 0x00ca
	SMSG_NPC_SELL_RESPONSE       = 0x00cb
	SMSG_ADMIN_KICK_ACK          = 0x00cd
	SMSG_TRADE_REQUEST           = 0x00e5
	SMSG_TRADE_RESPONSE          = 0x00e7
	SMSG_TRADE_ITEM_ADD          = 0x00e9
	SMSG_TRADE_ITEM_ADD_RESPONSE = 0x00ea
	SMSG_TRADE_OK                = 0x00ec
	SMSG_TRADE_CANCEL            = 0x00ee
	SMSG_TRADE_COMPLETE          = 0x00f0
	SMSG_PARTY_CREATE            = 0x00fa
	SMSG_PARTY_INFO              = 0x00fb
	SMSG_PARTY_INVITED           = 0x00fe
	SMSG_PARTY_SETTINGS          = 0x0101
	SMSG_PARTY_LEAVE             = 0x0105
	SMSG_PARTY_UPDATE_HP         = 0x0106
	SMSG_PARTY_UPDATE_COORDS     = 0x0107
	SMSG_PARTY_MESSAGE           = 0x0109
	SMSG_PLAYER_SKILLS           = 0x010f
	SMSG_SKILL_FAILED            = 0x0110
	SMSG_BEING_STATUS_CHANGE     = 0x0119
	SMSG_PLAYER_ATTACK_RANGE     = 0x013a
	SMSG_NPC_INT_INPUT           = 0x0142
	SMSG_BEING_RESURRECT         = 0x0148
	SMSG_GUILD_CREATE_RESPONSE   = 0x0167
	SMSG_GUILD_INVITE_ACK        = 0x0169
	SMSG_GUILD_INVITE            = 0x016a
	SMSG_GUILD_POSITION_INFO     = 0x016c
	SMSG_MAP_QUIT_RESPONSE       = 0x018b
	SMSG_PLAYER_GUILD_PARTY_INFO = 0x0195
	SMSG_BEING_STATUS_CHANGE_2   = 0x0196
	SMSG_BEING_SELFEFFECT        = 0x019b
	SMSG_NPC_STR_INPUT           = 0x01d4
	SMSG_PLAYER_INVENTORY        = 0x01ee
	SMSG_PLAYER_UPDATE_1         = 0x01d8
	SMSG_PLAYER_UPDATE_2         = 0x01d9
	SMSG_PLAYER_MOVE             = 0x01da
)

// Client to server.
const (
	CMSG_MAP_SERVER_CONNECT     = 0x0072
	CMSG_MAP_LOADED             = 0x007d
	CMSG_MAP_PING               = 0x007e
	CMSG_PLAYER_CHANGE_DEST     = 0x0085
	CMSG_PLAYER_ACTION          = 0x0089
	CMSG_CHAT_MESSAGE           = 0x008c
	CMSG_NPC_TALK               = 0x0090
	CMSG_PLAYER_CHANGE_DIR      = 0x009b
	CMSG_NAME_REQUEST           = 0x0094
	CMSG_CHAT_WHISPER           = 0x0096
	CMSG_ITEM_PICKUP            = 0x009f
	CMSG_PLAYER_INVENTORY_USE   = 0x00a7
	CMSG_PLAYER_INVENTORY_DROP  = 0x00a2
	CMSG_PLAYER_EQUIP           = 0x00a9
	CMSG_PLAYER_UNEQUIP         = 0x00ab
	CMSG_NPC_BUY_SELL_REQUEST   = 0x00c5
	CMSG_NPC_BUY_REQUEST        = 0x00c8
	CMSG_NPC_SELL_REQUEST       = 0x00c9
	CMSG_PLAYER_RESTART         = 0x00b2
	CMSG_NPC_LIST_CHOICE        = 0x00b8
	CMSG_NPC_NEXT_REQUEST       = 0x00b9
	CMSG_EMOTE                  = 0x00bf
	CMSG_WHO_REQUEST            = 0x00c1
	CMSG_TRADE_REQUEST          = 0x00e4
	CMSG_TRADE_RESPONSE         = 0x00e6
	CMSG_TRADE_ITEM_ADD_REQUEST = 0x00e8
	CMSG_TRADE_ADD_COMPLETE     = 0x00eb
	CMSG_TRADE_OK               = 0x00ef
	CMSG_TRADE_CANCEL_REQUEST   = 0x00ed
	CMSG_ADMIN_ANNOUNCE         = 0x0099
	CMSG_ADMIN_KICK             = 0x00cc
	CMSG_GUILD_LEAVE            = 0x0159
	CMSG_GUILD_CREATE           = 0x0165
	CMSG_GUILD_INVITE           = 0x0168
	CMSG_GUILD_INVITE_REPLY     = 0x016b
	CMSG_PARTY_CREATE           = 0x00f9
	CMSG_PARTY_INVITE           = 0x00fc
	CMSG_PARTY_INVITED          = 0x00ff
	CMSG_PARTY_LEAVE            = 0x0100
	CMSG_PARTY_MESSAGE          = 0x0108
	CMSG_SKILL_USE_BEING        = 0x0113
	CMSG_NPC_INT_RESPONSE       = 0x0143
	CMSG_NPC_CLOSE_REQUEST      = 0x0146
	CMSG_NPC_STR_RESPONSE       = 0x01d5
)

// lengths is the base eAthena message length table: total bytes on
// the wire per message id, VarLen for messages carrying their own
// length. Dialects copy and patch it.
func lengths() map[uint16]int {
	const variable = -1
	return map[uint16]int{
		SMSG_MAP_LOGIN_SUCCESS:       11,
		SMSG_BEING_VISIBLE:           54,
		SMSG_BEING_MOVE:              60,
		SMSG_BEING_SPAWN:             41,
		SMSG_BEING_REMOVE:            7,
		SMSG_WALK_RESPONSE:           12,
		SMSG_PLAYER_STOP:             10,
		SMSG_BEING_ACTION:            29,
		SMSG_BEING_CHAT:              variable,
		SMSG_PLAYER_CHAT:             variable,
		SMSG_PLAYER_WARP:             22,
		SMSG_BEING_NAME_RESPONSE:     30,
		SMSG_WHISPER:                 variable,
		SMSG_WHISPER_RESPONSE:        3,
		SMSG_GM_CHAT:                 variable,
		SMSG_BEING_CHANGE_DIRECTION:  9,
		SMSG_ITEM_VISIBLE:            17,
		SMSG_ITEM_DROPPED:            17,
		SMSG_PLAYER_INVENTORY_ADD:    23,
		SMSG_ITEM_REMOVE:             6,
		SMSG_PLAYER_EQUIPMENT:        variable,
		SMSG_ITEM_USE_RESPONSE:       7,
		SMSG_PLAYER_EQUIP:            7,
		SMSG_PLAYER_UNEQUIP:          7,
		SMSG_PLAYER_INVENTORY_REMOVE: 6,
		SMSG_PLAYER_STAT_UPDATE_1:    8,
		SMSG_PLAYER_STAT_UPDATE_2:    8,
		SMSG_NPC_MESSAGE:             variable,
		SMSG_NPC_NEXT:                6,
		SMSG_NPC_CLOSE:               6,
		SMSG_NPC_CHOICE:              variable,
		SMSG_BEING_EMOTION:           7,
		SMSG_WHO_ANSWER:              6,
		SMSG_NPC_BUY_SELL_CHOICE:     6,
		SMSG_NPC_BUY:                 variable,
		SMSG_NPC_SELL:                variable,
		SMSG_NPC_BUY_RESPONSE:        3,
		SMSG_NPC_SELL_RESPONSE:       3,
		SMSG_ADMIN_KICK_ACK:          6,
		SMSG_TRADE_REQUEST:           26,
		SMSG_TRADE_RESPONSE:          3,
		SMSG_TRADE_ITEM_ADD:          19,
		SMSG_TRADE_ITEM_ADD_RESPONSE: 7,
		SMSG_TRADE_OK:                3,
		SMSG_TRADE_CANCEL:            2,
		SMSG_TRADE_COMPLETE:          3,
		SMSG_PARTY_CREATE:            3,
		SMSG_PARTY_INFO:              variable,
		SMSG_PARTY_INVITED:           30,
		SMSG_PARTY_SETTINGS:          6,
		SMSG_PARTY_LEAVE:             31,
		SMSG_PARTY_UPDATE_HP:         10,
		SMSG_PARTY_UPDATE_COORDS:     10,
		SMSG_PARTY_MESSAGE:           variable,
		SMSG_PLAYER_SKILLS:           variable,
		SMSG_SKILL_FAILED:            10,
		SMSG_BEING_STATUS_CHANGE:     13,
		SMSG_PLAYER_ATTACK_RANGE:     4,
		SMSG_NPC_INT_INPUT:           6,
		SMSG_BEING_RESURRECT:         8,
		SMSG_GUILD_CREATE_RESPONSE:   3,
		SMSG_GUILD_INVITE_ACK:        3,
		SMSG_GUILD_INVITE:            30,
		SMSG_GUILD_POSITION_INFO:     43,
		SMSG_MAP_QUIT_RESPONSE:       4,
		SMSG_PLAYER_GUILD_PARTY_INFO: 102,
		SMSG_BEING_STATUS_CHANGE_2:   9,
		SMSG_BEING_SELFEFFECT:        10,
		SMSG_NPC_STR_INPUT:           6,
		SMSG_PLAYER_INVENTORY:        variable,
		SMSG_PLAYER_UPDATE_1:         54,
		SMSG_PLAYER_UPDATE_2:         53,
		SMSG_PLAYER_MOVE:             60,
	}
}

// LengthTable returns a fresh copy of the base table for a dialect to
// patch with its own entries.
func LengthTable() map[uint16]int {
	return lengths()
}
