package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/manago/client/internal/client"
	"github.com/manago/client/internal/config"
	"github.com/manago/client/internal/core/event"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config.toml", "path to the client config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	s, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	registerConsole(s)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	log.Info("connected",
		zap.String("server", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		zap.String("dialect", cfg.Server.Dialect))

	go readInput(ctx, s)

	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// registerConsole prints chat and notices to stdout. A graphical frontend
// would subscribe to the same events instead.
func registerConsole(s *client.Session) {
	bus := s.Bus()
	event.Subscribe(bus, func(n event.Notice) {
		switch n.Kind {
		case event.NoticeError:
			fmt.Printf("!! %s\n", n.Text)
		case event.NoticeGM:
			fmt.Printf("[GM] %s\n", n.Text)
		default:
			fmt.Printf("** %s\n", n.Text)
		}
	})
	event.Subscribe(bus, func(m event.ChatMessage) {
		switch m.Source {
		case event.ChatWhisper:
			fmt.Printf("[%s whispers] %s\n", m.Sender, m.Text)
		case event.ChatParty:
			fmt.Printf("[Party] %s: %s\n", m.Sender, m.Text)
		case event.ChatChannel:
			fmt.Printf("[#%d] %s: %s\n", m.Channel, m.Sender, m.Text)
		default:
			fmt.Printf("%s: %s\n", m.Sender, m.Text)
		}
	})
	event.Subscribe(bus, func(p event.PromptRequested) {
		fmt.Printf("?? %s\n", p.Text)
	})
	event.Subscribe(bus, func(d event.NpcDialog) {
		fmt.Printf("[NPC %d] %s\n", d.NpcID, d.Text)
	})
	event.Subscribe(bus, func(c event.NpcChoice) {
		for i, choice := range c.Choices {
			fmt.Printf("[NPC %d]  %d) %s\n", c.NpcID, i+1, choice)
		}
	})
	event.Subscribe(bus, func(m event.MapChanged) {
		fmt.Printf("** Now on map %s (%d, %d)\n", m.Map, m.X, m.Y)
	})
}

// readInput queues stdin lines for the logic goroutine until EOF or
// context cancellation. Commands never run on this goroutine.
func readInput(ctx context.Context, s *client.Session) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		s.Submit(line)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
