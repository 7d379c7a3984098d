// Package strategist implements the strategic decision core: a bot that
// weighs hand strength, board texture, position and pot economics to pick a
// betting action. The policy is a hand-crafted heuristic, not a solver; its
// one source of randomness (the bluff frequency) comes from an injectable
// RNG so play is reproducible under a fixed seed.
package strategist

import (
	rand "math/rand/v2"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tiltcheck/pokerbot/engine"
	"github.com/tiltcheck/pokerbot/poker"
)

const (
	cbetPotFraction  = 0.66
	bluffPotFraction = 0.4
	bluffFrequency   = 0.4
	probePotFraction = 0.5
)

// Bot is the strategic agent. One instance owns the session state for one
// seat: the dealt hand, the pre-flop aggressor flag and the seat order.
type Bot struct {
	id     int
	logger zerolog.Logger
	rng    *rand.Rand
	ranges map[Position]RangeTable

	hand               []poker.Card
	playerIDs          []int
	isPreflopAggressor bool
}

// Option configures a Bot.
type Option func(*Bot)

// WithRanges replaces the built-in pre-flop range tables.
func WithRanges(ranges map[Position]RangeTable) Option {
	return func(b *Bot) {
		b.ranges = ranges
	}
}

// New creates a strategist bot. The RNG drives the bluff coin flip and must
// be per-instance; sharing one across seats couples their play.
func New(logger zerolog.Logger, rng *rand.Rand, opts ...Option) *Bot {
	b := &Bot{
		logger: logger,
		rng:    rng,
		ranges: DefaultRanges(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetID assigns the player identifier.
func (b *Bot) SetID(playerID int) {
	b.id = playerID
	b.logger = b.logger.With().Int("player_id", playerID).Logger()
}

// ID returns the player identifier.
func (b *Bot) ID() int {
	return b.id
}

// OnStart records the seat order and the bot's own hand, fixed for the
// lifetime of the deal.
func (b *Bot) OnStart(startingChips int, playerHands []string, blindAmount int, bigBlindID, smallBlindID int, allPlayers []int) {
	b.playerIDs = allPlayers
	b.hand = nil
	if len(playerHands) > 0 {
		b.hand = poker.ParseCards(strings.Fields(playerHands[0]))
	}

	b.logger.Debug().
		Str("hand", handText(b.hand)).
		Int("starting_chips", startingChips).
		Int("blind", blindAmount).
		Msg("game started")
}

// OnRoundStart resets the aggressor flag for the new betting round.
func (b *Bot) OnRoundStart(state *engine.RoundState, remainingChips int) {
	b.isPreflopAggressor = false
}

// GetAction converts the round snapshot into one legal action. It never
// fails: any unmatched branch folds.
func (b *Bot) GetAction(state *engine.RoundState, remainingChips int) (engine.Action, int) {
	toCall := state.AmountToCall(b.id)

	if state.IsPreflop() {
		return b.preflopAction(state, toCall)
	}

	community := poker.ParseCards(state.CommunityCards)
	rank, _ := poker.Evaluate(b.hand, community)
	category := poker.Categorize(rank, b.hand, community)
	pot := state.Pot

	b.logger.Debug().
		Str("round", state.Round).
		Str("rank", rank.String()).
		Str("category", category.String()).
		Int("pot", pot).
		Int("to_call", toCall).
		Msg("postflop spot")

	if toCall == 0 {
		return b.betOrCheck(state, category, pot)
	}
	return b.facingBet(state, category, community, pot, toCall)
}

// OnEndRound requires no state change; bookkeeping lives with the host.
func (b *Bot) OnEndRound(state *engine.RoundState, remainingChips int) {}

// OnEndGame requires no state change.
func (b *Bot) OnEndGame(state *engine.RoundState, score float64, allScores map[string]float64, revealedHands map[string][]string) {
	b.logger.Info().Float64("score", score).Msg("game over")
}

// preflopAction plays the position's range table: 3-bet or flat against a
// raise, open from the RFI range otherwise.
func (b *Bot) preflopAction(state *engine.RoundState, toCall int) (engine.Action, int) {
	position := ComputePosition(b.playerIDs, b.id, state.BigBlindPlayerID)
	table := b.ranges[position]

	if len(b.hand) != 2 {
		if toCall == 0 {
			return engine.Check, 0
		}
		return engine.Fold, 0
	}
	c1, c2 := b.hand[0], b.hand[1]

	if state.HasRaise() {
		if InRange(table.ThreeBet, c1, c2) {
			b.isPreflopAggressor = true
			return b.makeRaise(state, state.CurrentBet*3)
		}
		if InRange(table.Call, c1, c2) {
			return engine.Call, toCall
		}
		return engine.Fold, 0
	}

	if InRange(table.RFI, c1, c2) {
		b.isPreflopAggressor = true
		return b.makeRaise(state, int(float64(state.MinRaise)*2.5))
	}
	if toCall == 0 {
		return engine.Check, 0
	}
	return engine.Fold, 0
}

// betOrCheck handles the nothing-owed spot. The pre-flop aggressor keeps the
// initiative with continuation bets and an occasional bluff; out of
// initiative the bot only bets medium-or-better hands.
func (b *Bot) betOrCheck(state *engine.RoundState, category poker.HandCategory, pot int) (engine.Action, int) {
	if b.isPreflopAggressor {
		if category >= poker.StrongMade || category == poker.StrongDraw {
			return b.makeRaise(state, int(float64(pot)*cbetPotFraction))
		}
		if category == poker.Air && b.rng.Float64() < bluffFrequency {
			return b.makeRaise(state, int(float64(pot)*bluffPotFraction))
		}
		return engine.Check, 0
	}

	if category >= poker.MediumMade {
		return b.makeRaise(state, int(float64(pot)*probePotFraction))
	}
	return engine.Check, 0
}

// facingBet weighs the charge against hand strength: monsters raise, strong
// hands call, draws call when the estimated equity beats the pot odds, weak
// made hands call only a cheap price, everything else folds.
func (b *Bot) facingBet(state *engine.RoundState, category poker.HandCategory, community []poker.Card, pot, toCall int) (engine.Action, int) {
	potOdds := 0.0
	if pot+toCall > 0 {
		potOdds = float64(toCall) / float64(pot+toCall)
	}

	if category == poker.Monster {
		return b.makeRaise(state, int(float64(pot)*1.5)+toCall)
	}
	if category >= poker.StrongMade {
		return engine.Call, toCall
	}
	if category == poker.StrongDraw {
		equity := poker.EstimateDrawEquity(b.hand, community)
		if equity > potOdds {
			return engine.Call, toCall
		}
	}
	if category >= poker.WeakMade && float64(toCall) <= float64(pot)*0.5 {
		return engine.Call, toCall
	}
	return engine.Fold, 0
}

// makeRaise clamps the target to the legal raise bounds before returning it.
func (b *Bot) makeRaise(state *engine.RoundState, amount int) (engine.Action, int) {
	if amount < state.MinRaise {
		amount = state.MinRaise
	}
	if amount > state.MaxRaise {
		amount = state.MaxRaise
	}
	return engine.Raise, amount
}

func handText(hand []poker.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
