// Package config holds the bot process configuration, parsed from
// POKERBOT_-prefixed environment variables. The seed feeds the strategy RNG
// so a fixed seed reproduces a session decision-for-decision.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration.
type Config struct {
	// ServerURL is the websocket URL of the host engine.
	ServerURL string `envconfig:"SERVER_URL" default:"ws://localhost:8080/ws"`

	// BotID names this bot instance; empty means auto-generated.
	BotID string `envconfig:"BOT_ID"`

	// Game is the game to join on connect.
	Game string `envconfig:"GAME" default:"default"`

	// Seed seeds the strategy RNG; 0 means seed from the clock.
	Seed int64 `envconfig:"SEED"`

	// RangesFile optionally points at an HCL file overriding the built-in
	// pre-flop range tables.
	RangesFile string `envconfig:"RANGES_FILE"`
}

// FromEnv parses configuration from POKERBOT_* environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pokerbot", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
