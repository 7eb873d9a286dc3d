// Package client wires one server session together: connection, dialect,
// message registry, world state and the per-tick system runner.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/manago/client/internal/config"
	"github.com/manago/client/internal/core/event"
	"github.com/manago/client/internal/core/system"
	"github.com/manago/client/internal/data"
	"github.com/manago/client/internal/dialect"
	"github.com/manago/client/internal/dialect/legacy"
	"github.com/manago/client/internal/dialect/manaserv"
	"github.com/manago/client/internal/dialect/tmwa"
	"github.com/manago/client/internal/net"
	"github.com/manago/client/internal/net/packet"
	"github.com/manago/client/internal/scripting"
	"github.com/manago/client/internal/world"
)

// Session is one connection to a game server. All mutable state is owned
// by the logic goroutine that calls Run; the network goroutines only touch
// the connection's queues.
type Session struct {
	cfg *config.Config
	log *zap.Logger

	bus    *event.Bus
	world  *world.Manager
	deps   *dialect.Deps
	dial   dialect.Dialect
	reg    *packet.Registry
	runner *system.Runner

	scripts *scripting.Engine
	conn    *net.Conn

	// input carries user command lines onto the logic goroutine; the
	// input system drains it each tick.
	input chan string
}

func New(cfg *config.Config, log *zap.Logger) (*Session, error) {
	items, err := data.LoadItemTable(cfg.Data.Items)
	if err != nil {
		return nil, err
	}
	skills, err := data.LoadSkillTable(cfg.Data.Skills)
	if err != nil {
		return nil, err
	}
	statuses, err := data.LoadStatusEffectTable(cfg.Data.StatusEffects)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		log:    log,
		bus:    event.NewBus(),
		world:  world.NewManager(log),
		runner: system.NewRunner(),
		input:  make(chan string, 16),
	}
	s.deps = &dialect.Deps{
		Log:               log,
		Bus:               s.bus,
		World:             s.world,
		Party:             world.NewParty(),
		Guilds:            world.NewGuildRegistry(),
		Relations:         world.NewRelations(),
		QuestVars:         world.NewQuestVars(),
		Out:               s,
		Items:             items,
		Skills:            skills,
		Statuses:          statuses,
		PositionTolerance: float64(cfg.Sync.PositionTolerance),
	}

	switch cfg.Server.Dialect {
	case "legacy":
		s.dial = legacy.New(s.deps)
	case "tmwathena":
		s.dial = tmwa.New(s.deps)
	case "manaserv":
		s.dial = manaserv.New(s.deps)
	default:
		return nil, fmt.Errorf("unknown dialect %q", cfg.Server.Dialect)
	}

	s.reg = packet.NewRegistry(s.dial.ByteOrder(), log)
	if cfg.Server.Dialect == "legacy" {
		cm, err := charsetByName(cfg.Server.Charset)
		if err != nil {
			return nil, err
		}
		s.reg.SetCharset(cm.NewDecoder())
	}
	s.dial.Register(s.reg)

	if cfg.Scripting.CommandsDir != "" {
		eng, err := scripting.NewEngine(cfg.Scripting.CommandsDir, scripting.Bindings{
			Log:   log,
			Bus:   s.bus,
			World: s.world,
			Out:   s.dial.Outbound(),
		}, log)
		if err != nil {
			return nil, err
		}
		s.scripts = eng
	}

	s.runner.Register(&inputSystem{s: s})
	s.runner.Register(&eventSystem{bus: s.bus})
	s.runner.Register(&movementSystem{world: s.world})
	s.runner.Register(&cleanupSystem{world: s.world})
	return s, nil
}

// charsetByName resolves a legacy-server codepage.
func charsetByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1251", "windows-1251":
		return charmap.Windows1251, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	case "koi8-r":
		return charmap.KOI8R, nil
	default:
		return nil, fmt.Errorf("unknown charset %q", name)
	}
}

// Connect dials the game server with the dialect's framer.
func (s *Session) Connect(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	conn, err := net.Dial(ctx, addr, s.dial.Framer(), net.Options{
		DialTimeout:  s.cfg.Network.DialTimeout,
		ReadTimeout:  s.cfg.Network.ReadTimeout,
		WriteTimeout: s.cfg.Network.WriteTimeout,
		InQueueSize:  s.cfg.Network.InQueueSize,
		OutQueueSize: s.cfg.Network.OutQueueSize,
		ChatPerSec:   s.cfg.Chat.MessagesPerSecond,
		ChatBurst:    s.cfg.Chat.Burst,
	}, s.log)
	if err != nil {
		return err
	}
	s.conn = conn
	s.log.Info("connected",
		zap.String("addr", addr),
		zap.String("dialect", s.dial.Name()),
	)
	return nil
}

// Run drives the logic loop until the context ends or the connection
// drops.
func (s *Session) Run(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("not connected")
	}
	ticker := time.NewTicker(s.cfg.Sync.TickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case <-s.conn.Done():
			s.reset()
			return fmt.Errorf("connection closed")
		case now := <-ticker.C:
			s.runner.Tick(now.Sub(last))
			last = now
		}
	}
}

// reset drops per-connection state so a reconnect starts clean.
func (s *Session) reset() {
	s.world.Clear()
	s.deps.Party.Clear()
	s.deps.Guilds.Clear()
	s.deps.QuestVars.Replace(nil)
	s.deps.PartyInviter = 0
	s.log.Info("session state reset")
}

func (s *Session) Close() {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.scripts != nil {
		s.scripts.Close()
	}
}

// Send implements dialect.Sender; messages before Connect are dropped.
func (s *Session) Send(w *packet.Writer) {
	if s.conn != nil {
		s.conn.Send(w)
	}
}

func (s *Session) SendChat(w *packet.Writer) bool {
	if s.conn == nil {
		return false
	}
	return s.conn.SendChat(w)
}

func (s *Session) Bus() *event.Bus            { return s.bus }
func (s *Session) World() *world.Manager      { return s.world }
func (s *Session) Outbound() dialect.Outbound { return s.dial.Outbound() }

// SetPlayer installs the local player being after character selection.
func (s *Session) SetPlayer(id int, name string) (*world.Being, error) {
	b, err := s.world.CreateBeing(id, world.ActorPlayer, 0)
	if err != nil {
		return nil, err
	}
	b.Name = name
	s.world.SetPlayer(b)
	return b, nil
}
