package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-signals/pkg/signals"
)

// Config holds all configuration for the application
type Config struct {
	Signals    SignalsConfig
	Scoreboard ScoreboardConfig
}

// SignalsConfig holds signal hub configuration
type SignalsConfig struct {
	Diagnostics signals.DiagnosticsMode
}

// ScoreboardConfig holds the settings of the scoreboard example
type ScoreboardConfig struct {
	Rounds  int
	Players []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	diagnostics, err := signals.ParseDiagnosticsMode(os.Getenv("SIGNALS_DIAGNOSTICS"))
	if err != nil {
		return nil, fmt.Errorf("SIGNALS_DIAGNOSTICS: %w", err)
	}

	rounds, err := getEnvAsIntOrDefault("SCOREBOARD_ROUNDS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Signals: SignalsConfig{
			Diagnostics: diagnostics,
		},
		Scoreboard: ScoreboardConfig{
			Rounds:  rounds,
			Players: splitList(getEnvOrDefault("SCOREBOARD_PLAYERS", "alice,bob")),
		},
	}

	if cfg.Scoreboard.Rounds < 1 {
		return nil, fmt.Errorf("SCOREBOARD_ROUNDS must be at least 1, got %d", cfg.Scoreboard.Rounds)
	}
	if len(cfg.Scoreboard.Players) == 0 {
		return nil, fmt.Errorf("SCOREBOARD_PLAYERS must name at least one player")
	}

	return cfg, nil
}

// HubConfig builds the signal hub config for this configuration
func (c *Config) HubConfig() *signals.HubConfig {
	return &signals.HubConfig{
		Diagnostics: c.Signals.Diagnostics,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return intValue, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
