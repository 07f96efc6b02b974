package config

import (
	"log/slog"
	"os"
	"strconv"

	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/logging"
)

// Config holds all configuration for the arena demo
type Config struct {
	LogLevel   slog.Level
	Tree       TreeConfig
	Battle     BattleConfig
	Seed       int64  // 0 seeds from the clock
	RosterFile string // empty uses the built-in roster
}

// TreeConfig bounds the randomly generated skill tree
type TreeConfig struct {
	MaxDepth    int
	MaxChildren int
}

// BattleConfig holds battle simulator limits
type BattleConfig struct {
	MaxTurns int
}

// Default returns the configuration the demo runs with when nothing is set
func Default() *Config {
	return &Config{
		LogLevel: slog.LevelInfo,
		Tree: TreeConfig{
			MaxDepth:    3,
			MaxChildren: 2,
		},
		Battle: BattleConfig{
			MaxTurns: 50,
		},
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := Default()

	if raw := os.Getenv("ARENA_LOG_LEVEL"); raw != "" {
		level, err := logging.ParseLevel(raw)
		if err != nil {
			return nil, arenaerr.Wrap(arenaerr.InvalidArgument(err.Error()), "ARENA_LOG_LEVEL")
		}
		cfg.LogLevel = level
	}

	var err error
	if cfg.Tree.MaxDepth, err = getEnvAsIntOrDefault("ARENA_TREE_MAX_DEPTH", cfg.Tree.MaxDepth); err != nil {
		return nil, err
	}
	if cfg.Tree.MaxChildren, err = getEnvAsIntOrDefault("ARENA_TREE_MAX_CHILDREN", cfg.Tree.MaxChildren); err != nil {
		return nil, err
	}
	if cfg.Battle.MaxTurns, err = getEnvAsIntOrDefault("ARENA_MAX_TURNS", cfg.Battle.MaxTurns); err != nil {
		return nil, err
	}
	seed, err := getEnvAsIntOrDefault("ARENA_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.Seed = int64(seed)
	cfg.RosterFile = os.Getenv("ARENA_ROSTER_FILE")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects limits the tree generator and simulator cannot work with
func (c *Config) Validate() error {
	if c.Tree.MaxDepth < 1 {
		return arenaerr.InvalidArgumentf("tree max depth must be at least 1, got %d", c.Tree.MaxDepth)
	}
	if c.Tree.MaxChildren < 0 {
		return arenaerr.InvalidArgumentf("tree max children cannot be negative, got %d", c.Tree.MaxChildren)
	}
	if c.Battle.MaxTurns < 0 {
		return arenaerr.InvalidArgumentf("max turns cannot be negative, got %d", c.Battle.MaxTurns)
	}
	return nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, arenaerr.InvalidArgumentf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}
