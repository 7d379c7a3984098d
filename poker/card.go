// Package poker implements the combinatorial core of the agent: the card
// model, hand evaluation with tie-break kickers, strategic hand
// categorization, and draw-equity estimation. It performs no I/O and never
// fails: malformed input degrades to sentinel values the rest of the
// package tolerates.
package poker

// Rank values used throughout the package. Cards carry 2-14 with the ace
// high; SentinelRank marks a card parsed from malformed input.
const (
	SentinelRank = 0
	Ten          = 10
	Jack         = 11
	Queen        = 12
	King         = 13
	Ace          = 14
)

// Card is a single playing card. The zero value is the sentinel card.
// Immutable once constructed.
type Card struct {
	rank int
	suit byte
}

// NewCard creates a card from a rank (2-14) and a suit character.
func NewCard(rank int, suit byte) Card {
	return Card{rank: rank, suit: suit}
}

// ParseCard parses strings like "Ah", "Td" or "2c". It never fails:
// malformed or empty input yields a sentinel card (rank 0) that sorts last
// and contributes nothing to hand groupings.
func ParseCard(s string) Card {
	if len(s) < 2 {
		return Card{}
	}

	suit := s[len(s)-1]
	rankStr := s[:len(s)-1]

	var rank int
	switch rankStr {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = int(rankStr[0] - '0')
	case "10":
		rank = Ten
	default:
		return Card{suit: suit}
	}

	return Card{rank: rank, suit: suit}
}

// ParseCards parses a slice of card strings, sentinel cards included.
func ParseCards(strs []string) []Card {
	cards := make([]Card, len(strs))
	for i, s := range strs {
		cards[i] = ParseCard(s)
	}
	return cards
}

// Rank returns the card's rank (2-14, or 0 for the sentinel).
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the card's suit character.
func (c Card) Suit() byte {
	return c.suit
}

// Valid reports whether the card carries a playable rank.
func (c Card) Valid() bool {
	return c.rank >= 2 && c.rank <= Ace
}

// String renders the card back to its two-character form ("Ah", "Td").
// Sentinel cards render empty.
func (c Card) String() string {
	if !c.Valid() {
		return ""
	}
	return rankString(c.rank) + string(c.suit)
}

func rankString(rank int) string {
	switch rank {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return string(byte('0' + rank))
	}
}
