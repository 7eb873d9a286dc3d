package world

// GuildMember is one roster entry of a guild the player belongs to.
type GuildMember struct {
	ID     int
	Name   string
	Online bool
}

// Guild is a guild roster. ManaServ players can belong to several, so
// guilds are kept in a registry keyed by guild id.
type Guild struct {
	ID        int
	Name      string
	CanInvite bool
	members   map[int]*GuildMember
	nextLocal int
}

func NewGuild(id int, name string) *Guild {
	return &Guild{ID: id, Name: name, members: make(map[int]*GuildMember)}
}

// Upsert adds or updates a member and returns it.
func (g *Guild) Upsert(id int, name string) *GuildMember {
	m, ok := g.members[id]
	if !ok {
		m = &GuildMember{ID: id, Name: name}
		g.members[id] = m
	} else if name != "" {
		m.Name = name
	}
	return m
}

// Member looks up a roster entry by id.
func (g *Guild) Member(id int) *GuildMember { return g.members[id] }

// MemberByName looks up a roster entry by exact name.
func (g *Guild) MemberByName(name string) *GuildMember {
	for _, m := range g.members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// UpsertByName adds or finds a member on protocols that identify roster
// entries by name only. Locally assigned ids are negative so they can
// never shadow a server-assigned one.
func (g *Guild) UpsertByName(name string) *GuildMember {
	if m := g.MemberByName(name); m != nil {
		return m
	}
	g.nextLocal--
	m := &GuildMember{ID: g.nextLocal, Name: name}
	g.members[m.ID] = m
	return m
}

// Remove drops a member from the roster.
func (g *Guild) Remove(id int) { delete(g.members, id) }

// RemoveByName drops a member by exact name.
func (g *Guild) RemoveByName(name string) {
	if m := g.MemberByName(name); m != nil {
		delete(g.members, m.ID)
	}
}

// ClearMembers empties the roster before a full refresh.
func (g *Guild) ClearMembers() { g.members = make(map[int]*GuildMember) }

// Size reports the roster size.
func (g *Guild) Size() int { return len(g.members) }

// GuildRegistry tracks every guild the player belongs to.
type GuildRegistry struct {
	guilds map[int]*Guild
}

func NewGuildRegistry() *GuildRegistry {
	return &GuildRegistry{guilds: make(map[int]*Guild)}
}

// Join records membership in a guild, creating the roster if needed.
func (r *GuildRegistry) Join(id int, name string) *Guild {
	g, ok := r.guilds[id]
	if !ok {
		g = NewGuild(id, name)
		r.guilds[id] = g
	} else if name != "" {
		g.Name = name
	}
	return g
}

// Guild looks up a guild by id.
func (r *GuildRegistry) Guild(id int) *Guild { return r.guilds[id] }

// Quit forgets a guild.
func (r *GuildRegistry) Quit(id int) { delete(r.guilds, id) }

// Clear forgets every guild.
func (r *GuildRegistry) Clear() { r.guilds = make(map[int]*Guild) }

// Size reports how many guilds the player belongs to.
func (r *GuildRegistry) Size() int { return len(r.guilds) }
