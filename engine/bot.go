package engine

// Bot is the capability contract between the host engine and a strategy.
// The host calls exactly one method at a time and blocks on its result, so
// implementations must never block or spawn work. A Bot instance owns the
// session state for one seat; simulating several seats in one process needs
// one instance each.
//
// No method returns an error: a missed action forfeits the hand, so
// strategies degrade to a legal default (fold) rather than fail.
type Bot interface {
	// SetID assigns the player identifier before the game starts.
	SetID(playerID int)

	// ID returns the assigned player identifier.
	ID() int

	// OnStart is called once per game with the starting stack, the dealt
	// hands (the bot's own hand is the first entry, cards separated by
	// spaces), the blind amount, the blind seat identifiers and the seat
	// order.
	OnStart(startingChips int, playerHands []string, blindAmount int, bigBlindID, smallBlindID int, allPlayers []int)

	// OnRoundStart is called once per deal, before the pre-flop betting.
	// A round spans a whole deal; RoundState.Round names the street within
	// it.
	OnRoundStart(state *RoundState, remainingChips int)

	// GetAction is the decision entry point. Amount is 0 for fold/check,
	// the call amount for call, and a chip count within the state's
	// [MinRaise, MaxRaise] bounds for raise.
	GetAction(state *RoundState, remainingChips int) (Action, int)

	// OnEndRound is called when the deal resolves.
	OnEndRound(state *RoundState, remainingChips int)

	// OnEndGame is called once when the game finishes with the bot's score,
	// all final scores and the revealed hands of players still active.
	OnEndGame(state *RoundState, score float64, allScores map[string]float64, revealedHands map[string][]string)
}
