package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Network   NetworkConfig   `toml:"network"`
	Sync      SyncConfig      `toml:"sync"`
	Chat      ChatConfig      `toml:"chat"`
	Logging   LoggingConfig   `toml:"logging"`
	Data      DataConfig      `toml:"data"`
	Scripting ScriptingConfig `toml:"scripting"`
}

type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Dialect string `toml:"dialect"` // "legacy", "tmwathena" or "manaserv"
	// Codepage for legacy-dialect strings; Athena-family servers predate
	// UTF-8 and emit a single-byte charset.
	Charset string `toml:"charset"`
}

type NetworkConfig struct {
	DialTimeout  time.Duration `toml:"dial_timeout"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	InQueueSize  int           `toml:"in_queue_size"`
	OutQueueSize int           `toml:"out_queue_size"`
}

type SyncConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	// PositionTolerance is the pixel divergence between the interpolated
	// and the server-declared position beyond which the client snaps. A
	// smoothing heuristic, not a protocol constant.
	PositionTolerance int `toml:"position_tolerance"`
}

type ChatConfig struct {
	// Outbound chat throttle; servers kick flooding clients.
	MessagesPerSecond float64 `toml:"messages_per_second"`
	Burst             int     `toml:"burst"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DataConfig struct {
	StatusEffects string `toml:"status_effects"`
	Items         string `toml:"items"`
	Skills        string `toml:"skills"`
}

type ScriptingConfig struct {
	CommandsDir string `toml:"commands_dir"` // empty disables Lua commands
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Dialect == "" {
		c.Server.Dialect = "tmwathena"
	}
	if c.Server.Charset == "" {
		c.Server.Charset = "latin1"
	}
	if c.Network.DialTimeout == 0 {
		c.Network.DialTimeout = 10 * time.Second
	}
	if c.Network.WriteTimeout == 0 {
		c.Network.WriteTimeout = 10 * time.Second
	}
	if c.Network.InQueueSize == 0 {
		c.Network.InQueueSize = 256
	}
	if c.Network.OutQueueSize == 0 {
		c.Network.OutQueueSize = 128
	}
	if c.Sync.TickRate == 0 {
		c.Sync.TickRate = 100 * time.Millisecond
	}
	if c.Sync.PositionTolerance == 0 {
		c.Sync.PositionTolerance = 48
	}
	if c.Chat.MessagesPerSecond == 0 {
		c.Chat.MessagesPerSecond = 2
	}
	if c.Chat.Burst == 0 {
		c.Chat.Burst = 4
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Dialect {
	case "legacy", "tmwathena", "manaserv":
	default:
		return fmt.Errorf("unknown server.dialect %q", c.Server.Dialect)
	}
	return nil
}
