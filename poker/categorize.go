package poker

import "sort"

// HandCategory is the strategic strength scale the decision policy consumes.
// The weights are deliberate: weak draws (0.5) compare strictly between air
// and strong draws without ever reaching a made-hand tier, so threshold
// checks like ">= MediumMade" stay correct.
type HandCategory float64

const (
	Air        HandCategory = 0
	WeakDraw   HandCategory = 0.5
	StrongDraw HandCategory = 1
	WeakMade   HandCategory = 2
	MediumMade HandCategory = 3
	StrongMade HandCategory = 4
	Monster    HandCategory = 5
)

// String returns the category name.
func (hc HandCategory) String() string {
	switch hc {
	case Air:
		return "Air"
	case WeakDraw:
		return "Weak Draw"
	case StrongDraw:
		return "Strong Draw"
	case WeakMade:
		return "Weak Made"
	case MediumMade:
		return "Medium Made"
	case StrongMade:
		return "Strong Made"
	case Monster:
		return "Monster"
	default:
		return "Unknown"
	}
}

// Categorize maps an evaluated hand plus the raw hole and community cards to
// a strategic category. The checks form a priority cascade: monster and
// strong-made checks first, then the short-board draw heuristic, then the
// pair refinement; the first matching rule wins.
//
// Draw detection only runs when fewer than five playable cards exist, so a
// flush or straight draw on a complete board with no made hand falls through
// to Air. That boundary is deliberate; draws are weighed pre-resolution only.
func Categorize(rank HandRank, hole, community []Card) HandCategory {
	if rank >= FullHouse {
		return Monster
	}
	if rank == ThreeOfAKind && isPocketPair(hole) {
		// A set: trips built from a pocket pair.
		return Monster
	}
	if rank >= TwoPair {
		return StrongMade
	}

	combined := validCards(hole, community)

	if len(combined) < 5 {
		if _, n := dominantSuit(combined); n == 4 {
			return StrongDraw
		}
		if hasRankWindow(combined, 4) {
			return StrongDraw
		}
	}

	if rank == Pair {
		return categorizePair(combined, hole, community)
	}

	return Air
}

// categorizePair refines a one-pair hand by where the pair came from: top
// pair with a hole card, any other hole-card pair, or a pair on the board.
func categorizePair(combined, hole, community []Card) HandCategory {
	counts := map[int]int{}
	for _, c := range combined {
		counts[c.Rank()]++
	}

	pairRank := 0
	for r, n := range counts {
		if n == 2 {
			pairRank = r
			break
		}
	}

	inHole := false
	for _, c := range hole {
		if c.Valid() && c.Rank() == pairRank {
			inHole = true
			break
		}
	}

	boardHigh := 0
	for _, c := range community {
		if c.Valid() && c.Rank() > boardHigh {
			boardHigh = c.Rank()
		}
	}

	switch {
	case inHole && pairRank >= boardHigh:
		return StrongMade
	case inHole:
		return MediumMade
	default:
		return WeakMade
	}
}

func isPocketPair(hole []Card) bool {
	return len(hole) == 2 && hole[0].Valid() && hole[0].Rank() == hole[1].Rank()
}

// validCards merges hole and community cards, dropping sentinels.
func validCards(hole, community []Card) []Card {
	cards := make([]Card, 0, len(hole)+len(community))
	for _, c := range hole {
		if c.Valid() {
			cards = append(cards, c)
		}
	}
	for _, c := range community {
		if c.Valid() {
			cards = append(cards, c)
		}
	}
	return cards
}

// dominantSuit returns the most frequent suit and its count.
func dominantSuit(cards []Card) (byte, int) {
	counts := map[byte]int{}
	var best byte
	bestN := 0
	for _, c := range cards {
		counts[c.Suit()]++
		if counts[c.Suit()] > bestN {
			best, bestN = c.Suit(), counts[c.Suit()]
		}
	}
	return best, bestN
}

// hasRankWindow reports whether any four unique ranks span at most maxSpan,
// the straight-draw candidate test.
func hasRankWindow(cards []Card, maxSpan int) bool {
	unique := uniqueRanks(cards)
	for i := 0; i+3 < len(unique); i++ {
		if unique[i+3]-unique[i] <= maxSpan {
			return true
		}
	}
	return false
}

// uniqueRanks returns the distinct ranks in ascending order.
func uniqueRanks(cards []Card) []int {
	seen := map[int]bool{}
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		if !seen[c.Rank()] {
			seen[c.Rank()] = true
			ranks = append(ranks, c.Rank())
		}
	}
	sort.Ints(ranks)
	return ranks
}
