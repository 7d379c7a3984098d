package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tiltcheck/pokerbot/bots/simple"
	"github.com/tiltcheck/pokerbot/bots/strategist"
	"github.com/tiltcheck/pokerbot/cmd/pokerbot/shared"
	"github.com/tiltcheck/pokerbot/config"
	"github.com/tiltcheck/pokerbot/engine"
	"github.com/tiltcheck/pokerbot/internal/randutil"
)

type PlayCmd struct {
	Bot      string `default:"strategist" help:"Bot type (strategist, simple)"`
	Server   string `help:"Websocket server URL (overrides POKERBOT_SERVER_URL)"`
	Game     string `help:"Game to join (overrides POKERBOT_GAME)"`
	Seed     int64  `help:"RNG seed for reproducible play (overrides POKERBOT_SEED)"`
	Ranges   string `help:"HCL file overriding the preflop range tables"`
	LogLevel string `default:"info" help:"Log level (debug|info|warn|error)"`
	LogJSON  bool   `help:"Output JSON logs instead of console format"`
}

func (c *PlayCmd) Run() error {
	var logger zerolog.Logger
	if c.LogJSON {
		logger = shared.SetupStructuredLogger(c.LogLevel)
	} else {
		logger = shared.SetupLogger(c.LogLevel)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if c.Server != "" {
		cfg.ServerURL = c.Server
	}
	if c.Game != "" {
		cfg.Game = c.Game
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Ranges != "" {
		cfg.RangesFile = c.Ranges
	}

	bot, name, err := buildBot(c.Bot, cfg, logger)
	if err != nil {
		return err
	}

	client := engine.NewClient(name, bot, logger, engine.WithGame(cfg.Game))
	if err := client.Connect(cfg.ServerURL); err != nil {
		return err
	}
	logger.Info().Str("server", cfg.ServerURL).Str("bot", c.Bot).Msg("connected")

	ctx := shared.SetupSignalHandler(logger)
	if err := client.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildBot(kind string, cfg *config.Config, logger zerolog.Logger) (engine.Bot, string, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Debug().Int64("seed", seed).Msg("rng seeded")

	name := cfg.BotID
	if name == "" {
		name = fmt.Sprintf("%s-%04d", kind, rng.IntN(10000))
	}

	switch kind {
	case "strategist":
		ranges, err := strategist.LoadRanges(cfg.RangesFile)
		if err != nil {
			return nil, "", err
		}
		return strategist.New(logger, rng, strategist.WithRanges(ranges)), name, nil
	case "simple":
		return simple.New(logger), name, nil
	default:
		return nil, "", fmt.Errorf("unknown bot: %s (available: strategist, simple)", kind)
	}
}
