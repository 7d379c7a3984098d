// Package simple provides a baseline bot with no real decision-making: it
// opens the first round with a fixed raise, then checks or calls down. It
// serves as a reference implementation of the lifecycle contract and as a
// sparring partner for the strategist in local games.
package simple

import (
	"github.com/rs/zerolog"

	"github.com/tiltcheck/pokerbot/engine"
)

const openingRaise = 100

// Bot is the reference stub strategy.
type Bot struct {
	id     int
	logger zerolog.Logger
}

// New creates a simple bot.
func New(logger zerolog.Logger) *Bot {
	return &Bot{logger: logger}
}

// SetID assigns the player identifier.
func (b *Bot) SetID(playerID int) {
	b.id = playerID
}

// ID returns the player identifier.
func (b *Bot) ID() int {
	return b.id
}

// OnStart logs the setup; the stub keeps no session state.
func (b *Bot) OnStart(startingChips int, playerHands []string, blindAmount int, bigBlindID, smallBlindID int, allPlayers []int) {
	b.logger.Debug().
		Int("starting_chips", startingChips).
		Int("blind", blindAmount).
		Ints("players", allPlayers).
		Msg("game started")
}

// OnRoundStart is a no-op.
func (b *Bot) OnRoundStart(state *engine.RoundState, remainingChips int) {}

// GetAction opens the first round once, then checks when free and calls
// otherwise.
func (b *Bot) GetAction(state *engine.RoundState, remainingChips int) (engine.Action, int) {
	if !state.HasRaise() && state.RoundNum == 1 {
		return engine.Raise, openingRaise
	}

	if state.CurrentBet == 0 {
		return engine.Check, 0
	}

	return engine.Call, state.AmountToCall(b.id)
}

// OnEndRound is a no-op.
func (b *Bot) OnEndRound(state *engine.RoundState, remainingChips int) {}

// OnEndGame logs the final score.
func (b *Bot) OnEndGame(state *engine.RoundState, score float64, allScores map[string]float64, revealedHands map[string][]string) {
	b.logger.Debug().Float64("score", score).Msg("game over")
}
