// Package engine defines the surface between a bot and the host game
// engine: the lifecycle contract every strategy implements, the round-state
// snapshot the host populates, and a websocket client that shuttles
// messages between the two. The host owns turn sequencing and chip
// accounting; everything here is call-and-return.
package engine

import "strconv"

// Action is a betting action returned to the host.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

// String returns the wire representation of the action. The host uses the
// same capitalized form in RoundState.PlayerActions.
func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	default:
		return "Fold"
	}
}

// RoundState is the host's per-decision snapshot of the table. Fields are
// populated by the host; bots only read them.
type RoundState struct {
	Round              string            `json:"round"`
	RoundNum           int               `json:"round_num"`
	CommunityCards     []string          `json:"community_cards"`
	Pot                int               `json:"pot"`
	CurrentBet         int               `json:"current_bet"`
	MinRaise           int               `json:"min_raise"`
	MaxRaise           int               `json:"max_raise"`
	PlayerBets         map[string]int    `json:"player_bets"`
	PlayerActions      map[string]string `json:"player_actions"`
	BigBlindPlayerID   int               `json:"big_blind_player_id"`
	SmallBlindPlayerID int               `json:"small_blind_player_id"`
}

// IsPreflop reports whether the snapshot is from the pre-flop betting round.
func (rs *RoundState) IsPreflop() bool {
	return rs.Round == "Preflop"
}

// AmountToCall returns what the player still owes against the current bet.
// A missing posted-bet entry counts as nothing posted, so the full current
// bet is owed.
func (rs *RoundState) AmountToCall(playerID int) int {
	return rs.CurrentBet - rs.PlayerBets[strconv.Itoa(playerID)]
}

// HasRaise reports whether any player has raised this round.
func (rs *RoundState) HasRaise() bool {
	for _, action := range rs.PlayerActions {
		if action == "Raise" {
			return true
		}
	}
	return false
}
