package strategist

import (
	"strings"

	"github.com/tiltcheck/pokerbot/poker"
)

// RangeTable holds the three shorthand token lists consulted pre-flop: open
// raises (RFI), re-raises against an opener (ThreeBet) and flat calls.
type RangeTable struct {
	RFI      []string
	ThreeBet []string
	Call     []string
}

// DefaultRanges returns the built-in position-indexed range tables. The
// result is built once per agent and never mutated afterwards.
func DefaultRanges() map[Position]RangeTable {
	return map[Position]RangeTable{
		Early: {
			RFI:      []string{"77+", "ATs+", "KJs+", "QJs", "JTs", "T9s", "AJo+", "KQo"},
			ThreeBet: []string{"TT+", "AQs+", "AKo"},
			Call:     []string{"22-99", "AJs", "ATs", "KQs"},
		},
		Middle: {
			RFI:      []string{"55+", "A8s+", "K9s+", "QTs+", "JTs", "T9s", "A9o+", "KTo+", "QJo"},
			ThreeBet: []string{"99+", "ATs+", "KJs+", "AQo+"},
			Call:     []string{"22-88", "A9s", "KTs", "QTs"},
		},
		Late: {
			RFI:      []string{"22+", "A2s+", "K7s+", "Q8s+", "J8s+", "T8s+", "A2o+", "K9o+", "QTo+", "JTo"},
			ThreeBet: []string{"88+", "A8s+", "K9s+", "AQo+", "KQo"},
			Call:     []string{"22-77", "A2s-A7s", "JTs", "QTs"},
		},
		Blinds: {
			RFI:      []string{"33+", "A2s+", "K8s+", "Q9s+", "J9s+", "A7o+", "KTo+"},
			ThreeBet: []string{"99+", "AJs+", "AQo+"},
			Call:     []string{"22-88", "A2s-ATs", "KJs+", "QTs+"},
		},
	}
}

// InRange reports whether the two hole cards match any token in the list.
// Matching is first-match-wins. The grammar:
//
//	"77"    pair token, prefix match on the canonical hand string
//	"99+"   any pocket pair at or above the rank
//	"ATs+"  suited hands sharing the first rank, second rank at or above
//	"AJo+"  same for offsuit hands
//	"QJs"   exact canonical hand string
//
// Tokens outside the grammar (dash ranges like "22-99") never match.
func InRange(tokens []string, c1, c2 poker.Card) bool {
	high, low := c1, c2
	if low.Rank() > high.Rank() {
		high, low = low, high
	}
	handStr := HandString(c1, c2)

	for _, token := range tokens {
		if len(token) == 2 {
			if strings.HasPrefix(handStr, token) {
				return true
			}
			continue
		}

		if strings.HasSuffix(token, "+") {
			baseRank := rankFromChar(token[1])
			switch {
			case len(token) == 3 && token[0] == token[1]:
				if high.Rank() == low.Rank() && high.Rank() >= baseRank {
					return true
				}
			case strings.HasSuffix(token, "s+") && strings.HasSuffix(handStr, "s"):
				if handStr[0] == token[0] && low.Rank() >= baseRank {
					return true
				}
			case strings.HasSuffix(token, "o+") && strings.HasSuffix(handStr, "o"):
				if handStr[0] == token[0] && low.Rank() >= baseRank {
					return true
				}
			}
			continue
		}

		if token == handStr {
			return true
		}
	}
	return false
}

// HandString normalizes two hole cards to shorthand: higher rank first,
// suffix "s" when suited, "o" when offsuit, no suffix for pairs.
func HandString(c1, c2 poker.Card) string {
	high, low := c1, c2
	if low.Rank() > high.Rank() {
		high, low = low, high
	}

	r1 := rankChar(high.Rank())
	r2 := rankChar(low.Rank())
	if high.Rank() == low.Rank() {
		return r1 + r2
	}
	if high.Suit() == low.Suit() {
		return r1 + r2 + "s"
	}
	return r1 + r2 + "o"
}

func rankChar(rank int) string {
	switch rank {
	case poker.Ten:
		return "T"
	case poker.Jack:
		return "J"
	case poker.Queen:
		return "Q"
	case poker.King:
		return "K"
	case poker.Ace:
		return "A"
	default:
		return string(byte('0' + rank))
	}
}

func rankFromChar(c byte) int {
	switch c {
	case 'T':
		return poker.Ten
	case 'J':
		return poker.Jack
	case 'Q':
		return poker.Queen
	case 'K':
		return poker.King
	case 'A':
		return poker.Ace
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '0')
	default:
		return 0
	}
}
