package manaserv

// Client to game server.
const (
	PGMSG_CONNECT          = 0x0050
	PGMSG_DISCONNECT       = 0x0060
	PGMSG_PICKUP           = 0x0110
	PGMSG_DROP             = 0x0112
	PGMSG_EQUIP            = 0x0113
	PGMSG_UNEQUIP          = 0x0114
	PGMSG_WALK             = 0x0260
	PGMSG_ACTION_CHANGE    = 0x0270
	PGMSG_DIRECTION_CHANGE = 0x0272
	PGMSG_ATTACK           = 0x0290
	PGMSG_SAY              = 0x02a0
	PGMSG_NPC_TALK         = 0x02b2
	PGMSG_NPC_TALK_NEXT    = 0x02b3
	PGMSG_NPC_SELECT       = 0x02b4
	PGMSG_NPC_BUYSELL      = 0x02b7
	PGMSG_NPC_NUMBER       = 0x02c2
	PGMSG_NPC_STRING       = 0x02c3
	PGMSG_USE_ITEM         = 0x0300
	PGMSG_RESPAWN          = 0x0180
)

// Game server to client.
const (
	GPMSG_CONNECT_RESPONSE        = 0x0051
	GPMSG_DISCONNECT_RESPONSE     = 0x0061
	GPMSG_PLAYER_MAP_CHANGE       = 0x0100
	GPMSG_PLAYER_SERVER_CHANGE    = 0x0101
	GPMSG_PICKUP_RESPONSE         = 0x0111
	GPMSG_INVENTORY               = 0x0120
	GPMSG_INVENTORY_FULL          = 0x0121
	GPMSG_EQUIP                   = 0x0122
	GPMSG_PLAYER_ATTRIBUTE_CHANGE = 0x0130
	GPMSG_PLAYER_EXP_CHANGE       = 0x0140
	GPMSG_LEVELUP                 = 0x0150
	GPMSG_LEVEL_PROGRESS          = 0x0151
	GPMSG_BEING_ENTER             = 0x0200
	GPMSG_BEING_LEAVE             = 0x0201
	GPMSG_ITEM_APPEAR             = 0x0202
	GPMSG_BEING_LOOKS_CHANGE      = 0x0210
	GPMSG_BEING_ACTION_CHANGE     = 0x0271
	GPMSG_BEING_DIR_CHANGE        = 0x0273
	GPMSG_BEINGS_MOVE             = 0x0280
	GPMSG_ITEMS                   = 0x0281
	GPMSG_BEING_ATTACK            = 0x0291
	GPMSG_SAY                     = 0x02a1
	GPMSG_NPC_CHOICE              = 0x02b0
	GPMSG_NPC_MESSAGE             = 0x02b1
	GPMSG_NPC_ERROR               = 0x02b8
	GPMSG_NPC_CLOSE               = 0x02b9
	GPMSG_NPC_NUMBER              = 0x02c0
	GPMSG_NPC_STRING              = 0x02c1
	GPMSG_USE_RESPONSE            = 0x0301
	GPMSG_BEINGS_DAMAGE           = 0x0310
)

// Chat server to client.
const (
	CPMSG_GUILD_CREATE_RESPONSE         = 0x0351
	CPMSG_GUILD_INVITE_RESPONSE         = 0x0353
	CPMSG_GUILD_ACCEPT_RESPONSE         = 0x0355
	CPMSG_GUILD_GET_MEMBERS_RESPONSE    = 0x0357
	CPMSG_GUILD_UPDATE_LIST             = 0x0358
	CPMSG_GUILD_QUIT_RESPONSE           = 0x0361
	CPMSG_GUILD_PROMOTE_MEMBER_RESPONSE = 0x0366
	CPMSG_GUILD_INVITED                 = 0x0370
	CPMSG_GUILD_REJOIN                  = 0x0371
	CPMSG_ERROR                         = 0x0401
	CPMSG_ANNOUNCEMENT                  = 0x0402
	CPMSG_PRIVMSG                       = 0x0403
	CPMSG_PUBMSG                        = 0x0404
)

// Client to chat server.
const (
	PCMSG_GUILD_CREATE      = 0x0350
	PCMSG_GUILD_INVITE      = 0x0352
	PCMSG_GUILD_ACCEPT      = 0x0354
	PCMSG_GUILD_GET_MEMBERS = 0x0356
	PCMSG_GUILD_QUIT        = 0x0360
	PCMSG_CHAT              = 0x0410
	PCMSG_ANNOUNCE          = 0x0411
	PCMSG_PRIVMSG           = 0x0412
)

// Generic result codes.
const (
	errOK = iota
	errFailure
	errNoLogin
	errNoCharacterSelected
	errInsufficientRights
	errInvalidArgument
)

// Roster change codes in CPMSG_GUILD_UPDATE_LIST.
const (
	guildEventNew = iota
	guildEventLeft
	guildEventOnline
	guildEventOffline
)

// Movement flags in GPMSG_BEINGS_MOVE entries.
const (
	movingPosition    = 1
	movingDestination = 2
)

// Being types in GPMSG_BEING_ENTER.
const (
	objectItem = iota
	objectActor
	objectNPC
	objectMonster
	objectCharacter
	objectEffect
)

// Wire action codes.
const (
	actionStand = iota
	actionWalk
	actionAttack
	actionSit
	actionDead
	actionHurt
)
