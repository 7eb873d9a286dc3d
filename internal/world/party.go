package world

// PartyMember is one roster entry of the player's party.
type PartyMember struct {
	ID     int
	Name   string
	Map    string
	Leader bool
	Online bool
	HP     int
	MaxHP  int
}

// Party is the local player's party roster.
type Party struct {
	Name    string
	members map[int]*PartyMember
}

func NewParty() *Party {
	return &Party{members: make(map[int]*PartyMember)}
}

// Upsert adds or updates a member and returns it.
func (p *Party) Upsert(id int, name string) *PartyMember {
	m, ok := p.members[id]
	if !ok {
		m = &PartyMember{ID: id, Name: name, Online: true}
		p.members[id] = m
	} else if name != "" {
		m.Name = name
	}
	return m
}

// Member looks up a roster entry by id.
func (p *Party) Member(id int) *PartyMember { return p.members[id] }

// MemberByName looks up a roster entry by exact name.
func (p *Party) MemberByName(name string) *PartyMember {
	for _, m := range p.members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Remove drops a member from the roster.
func (p *Party) Remove(id int) { delete(p.members, id) }

// Size reports the roster size.
func (p *Party) Size() int { return len(p.members) }

// Clear empties the roster, keeping the party name.
func (p *Party) Clear() { p.members = make(map[int]*PartyMember) }

// Leave empties the roster and forgets the party name.
func (p *Party) Leave() {
	p.Name = ""
	p.Clear()
}

// InParty reports whether the player currently belongs to a party.
func (p *Party) InParty() bool { return p.Name != "" }
