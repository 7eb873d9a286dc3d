package client

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/world"
)

// Submit hands one line of user input to the logic goroutine. Safe to
// call from any goroutine; the line runs on the next tick.
func (s *Session) Submit(line string) {
	s.input <- line
}

// Execute runs one line of user input. Lines starting with "/" are
// commands, script-defined ones first; anything else is chat. Must be
// called on the logic goroutine only; other goroutines use Submit.
func (s *Session) Execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if !strings.HasPrefix(line, "/") {
		nick := ""
		if p := s.world.Player(); p != nil {
			nick = p.Name
		}
		if !s.Outbound().Chat(nick, line) {
			s.notice("You are sending messages too fast.")
		}
		return
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]

	if s.scripts != nil {
		handled, err := s.scripts.Run(name, args)
		if err != nil {
			s.log.Warn("script command failed", zap.String("command", name), zap.Error(err))
			s.notice(fmt.Sprintf("Command /%s failed.", name))
			return
		}
		if handled {
			return
		}
	}
	s.builtin(name, args)
}

func (s *Session) builtin(name string, args []string) {
	out := s.Outbound()
	switch name {
	case "w", "whisper":
		if len(args) < 2 {
			s.notice("Usage: /w <nick> <message>")
			return
		}
		if !out.Whisper(args[0], strings.Join(args[1:], " ")) {
			s.notice("You are sending messages too fast.")
		}
	case "p", "party":
		if len(args) == 0 {
			s.notice("Usage: /party <message>")
			return
		}
		if !out.PartyChat(strings.Join(args, " ")) {
			s.notice("You are sending messages too fast.")
		}
	case "createparty":
		if len(args) == 0 {
			s.notice("Usage: /createparty <name>")
			return
		}
		out.CreateParty(strings.Join(args, " "))
	case "invite":
		if len(args) == 0 {
			s.notice("Usage: /invite <nick>")
			return
		}
		id := 0
		if b := s.world.FindBeingByName(args[0], world.ActorPlayer); b != nil {
			id = b.ActorID()
		}
		out.InviteParty(id, args[0])
	case "leaveparty":
		out.LeaveParty()
	case "createguild":
		if len(args) == 0 {
			s.notice("Usage: /createguild <name>")
			return
		}
		out.CreateGuild(strings.Join(args, " "))
	case "announce":
		if len(args) == 0 {
			s.notice("Usage: /announce <message>")
			return
		}
		out.Announce(strings.Join(args, " "))
	case "kick":
		if len(args) == 0 {
			s.notice("Usage: /kick <nick>")
			return
		}
		b := s.world.FindBeingByName(args[0], world.ActorPlayer)
		if b == nil {
			s.notice(fmt.Sprintf("No one named %q in sight.", args[0]))
			return
		}
		out.Kick(b.ActorID())
	case "sit":
		out.Sit(true)
	case "stand":
		out.Sit(false)
	case "emote":
		if len(args) == 0 {
			return
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			s.notice("Usage: /emote <id>")
			return
		}
		out.Emote(id)
	case "attack":
		tgt := s.world.Target()
		if len(args) > 0 {
			tgt = s.world.FindBeingByName(args[0], world.ActorUnknown)
		}
		if tgt == nil {
			s.notice("Nothing to attack.")
			return
		}
		s.world.SetTarget(tgt)
		out.Attack(tgt.ActorID(), true)
	case "target":
		if len(args) == 0 {
			s.world.SetTarget(nil)
			return
		}
		tgt := s.world.FindBeingByName(args[0], world.ActorUnknown)
		if tgt == nil {
			s.notice(fmt.Sprintf("No one named %q in sight.", args[0]))
			return
		}
		s.world.SetTarget(tgt)
	case "who":
		out.RequestOnlineCount()
	case "where":
		p := s.world.Player()
		if p == nil {
			return
		}
		x, y := p.TilePosition()
		s.notice(fmt.Sprintf("Position: (%d, %d)", x, y))
	case "ignore", "unignore", "friend":
		if len(args) == 0 {
			s.notice(fmt.Sprintf("Usage: /%s <nick>", name))
			return
		}
		rel := map[string]world.Relation{
			"ignore":   world.RelationIgnored,
			"unignore": world.RelationNeutral,
			"friend":   world.RelationFriend,
		}[name]
		s.deps.Relations.Set(args[0], rel)
		s.notice(fmt.Sprintf("Relation for %s updated.", args[0]))
	case "help":
		cmds := []string{"announce", "attack", "createguild", "createparty",
			"emote", "friend", "help", "ignore", "invite", "kick",
			"leaveparty", "party", "sit", "stand", "target", "unignore",
			"w", "where", "who"}
		if s.scripts != nil {
			cmds = append(cmds, s.scripts.Commands()...)
		}
		s.notice("Commands: /" + strings.Join(cmds, " /"))
	default:
		s.notice(fmt.Sprintf("Unknown command /%s. Try /help.", name))
	}
}

func (s *Session) notice(text string) {
	event.Emit(s.bus, event.Notice{Kind: event.NoticeServer, Text: text})
}
