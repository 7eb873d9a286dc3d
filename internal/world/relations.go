package world

import "strings"

// Relation classifies another player for chat and trade filtering.
type Relation int

const (
	RelationNeutral Relation = iota
	RelationFriend
	RelationDisregarded
	RelationIgnored
)

// Permission bits gate what another player is allowed to do to us.
type Permission uint8

const (
	PermitSpeech Permission = 1 << iota
	PermitWhisper
	PermitTrade
	PermitEmote
)

// PermitAll grants everything.
const PermitAll = PermitSpeech | PermitWhisper | PermitTrade | PermitEmote

var relationPermissions = map[Relation]Permission{
	RelationNeutral:     PermitAll,
	RelationFriend:      PermitAll,
	RelationDisregarded: PermitEmote,
	RelationIgnored:     0,
}

// Relations tracks the player's stance toward other players by name.
// Unknown names default to neutral.
type Relations struct {
	byName  map[string]Relation
	defPerm Permission
}

func NewRelations() *Relations {
	return &Relations{byName: make(map[string]Relation), defPerm: PermitAll}
}

// Set records a stance. RelationNeutral removes the entry.
func (r *Relations) Set(name string, rel Relation) {
	key := strings.ToLower(name)
	if rel == RelationNeutral {
		delete(r.byName, key)
		return
	}
	r.byName[key] = rel
}

// Get reports the stance toward a player.
func (r *Relations) Get(name string) Relation {
	return r.byName[strings.ToLower(name)]
}

// SetDefaultPermissions changes what unknown players may do.
func (r *Relations) SetDefaultPermissions(p Permission) { r.defPerm = p }

// Permitted reports whether the named player is allowed the action.
func (r *Relations) Permitted(name string, p Permission) bool {
	rel, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return r.defPerm&p == p
	}
	return relationPermissions[rel]&p == p
}

// Names reports every player with a non-neutral stance.
func (r *Relations) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}
