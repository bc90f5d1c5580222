package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
)

const (
	defaultHost    = "0.0.0.0"
	defaultSSHPort = "2222"
	defaultHostKey = ".ssh/id_ed25519"
)

type Config struct {
	Host     string
	SSHPort  string
	HostKey  string
	LogLevel log.Level

	Game minesweeper.Config
	// Seed is nil unless SWEEPER_SEED is set.
	Seed *uint64
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.SSHPort)
}

func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Host:    getEnvOrDefault(getenv, "SWEEPER_HOST", defaultHost),
		SSHPort: getEnvOrDefault(getenv, "SWEEPER_SSH_PORT", defaultSSHPort),
		HostKey: getEnvOrDefault(getenv, "SWEEPER_HOST_KEY", defaultHostKey),
		Game:    minesweeper.DefaultConfig(),
	}

	level, err := log.ParseLevel(getEnvOrDefault(getenv, "SWEEPER_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("SWEEPER_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.Game.Size, err = intFromEnv(getenv, "SWEEPER_BOARD_SIZE", cfg.Game.Size); err != nil {
		return Config{}, err
	}
	if cfg.Game.Bombs, err = intFromEnv(getenv, "SWEEPER_BOMBS", cfg.Game.Bombs); err != nil {
		return Config{}, err
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, fmt.Errorf("game config: %w", err)
	}

	if raw := getenv("SWEEPER_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SWEEPER_SEED: %w", err)
		}
		cfg.Seed = &seed
	}
	return cfg, nil
}

// NewGenerator returns a seeded generator when a seed is configured.
func (c Config) NewGenerator() *minesweeper.Generator {
	if c.Seed != nil {
		return minesweeper.NewSeededGenerator(*c.Seed)
	}
	return minesweeper.NewGenerator(nil)
}

func intFromEnv(getenv func(string) string, key string, defaultVal int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getEnvOrDefault(getenv func(string) string, key, defaultVal string) string {
	if val := getenv(key); val != "" {
		return val
	}
	return defaultVal
}
