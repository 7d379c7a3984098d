package poker

import (
	"slices"
	"sort"
)

// HandRank enumerates the categories of poker hands ordered from weakest to
// strongest. Comparison between hands is by rank first, then by the kicker
// sequence returned alongside it.
type HandRank int

const (
	HighCard HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	switch hr {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluate finds the best 5-card ranking available from the hole cards plus
// 0, 3, 4 or 5 community cards. With five or more cards every 5-card subset
// is scored and the best (rank, kickers) pair kept; with fewer cards a
// restricted evaluator detects pair-type groupings only, since straights and
// flushes need five cards. Sentinel cards are dropped before evaluation.
func Evaluate(hole, community []Card) (HandRank, []int) {
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

	sort.Slice(cards, func(i, j int) bool { return cards[i].Rank() > cards[j].Rank() })

	if len(cards) < 5 {
		return evaluatePartial(cards)
	}

	bestRank := HighCard
	var bestKickers []int
	combo := make([]Card, 5)

	forEachSubset(len(cards), 5, func(idx []int) {
		for i, ci := range idx {
			combo[i] = cards[ci]
		}
		rank, kickers := evaluateFive(combo)
		if bestKickers == nil || rank > bestRank ||
			(rank == bestRank && CompareKickers(kickers, bestKickers) > 0) {
			bestRank = rank
			bestKickers = kickers
		}
	})

	return bestRank, bestKickers
}

// CompareKickers compares two kicker sequences lexicographically, most
// significant rank first. It returns 1 if a is stronger, -1 if b is, 0 on a
// full tie.
func CompareKickers(a, b []int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// forEachSubset calls fn with every k-element index combination of [0, n).
func forEachSubset(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// evaluatePartial handles fewer than five cards, where only pair-type
// groupings are possible. Kickers are all ranks in descending order.
func evaluatePartial(cards []Card) (HandRank, []int) {
	kickers := make([]int, len(cards))
	counts := map[int]int{}
	for i, c := range cards {
		kickers[i] = c.Rank()
		counts[c.Rank()]++
	}

	rank := HighCard
	for _, n := range counts {
		switch {
		case n >= 4:
			return FourOfAKind, kickers
		case n == 3 && rank < ThreeOfAKind:
			rank = ThreeOfAKind
		case n == 2 && rank < Pair:
			rank = Pair
		}
	}
	return rank, kickers
}

// evaluateFive scores exactly five cards.
func evaluateFive(cards []Card) (HandRank, []int) {
	ranks := make([]int, 5)
	counts := map[int]int{}
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank()
		counts[c.Rank()]++
		if c.Suit() != cards[0].Suit() {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	straight, straightRanks := straightKickers(ranks, counts)

	if straight && flush {
		return StraightFlush, straightRanks
	}

	// Grouped ranks ordered by (count desc, rank desc) break ties for every
	// paired hand; one sort covers quads through one pair.
	grouped := make([]int, 0, len(counts))
	for r := range counts {
		grouped = append(grouped, r)
	}
	sort.Slice(grouped, func(i, j int) bool {
		if counts[grouped[i]] != counts[grouped[j]] {
			return counts[grouped[i]] > counts[grouped[j]]
		}
		return grouped[i] > grouped[j]
	})

	switch {
	case counts[grouped[0]] == 4:
		return FourOfAKind, grouped
	case counts[grouped[0]] == 3 && len(grouped) == 2:
		return FullHouse, grouped
	case flush:
		return Flush, ranks
	case straight:
		return Straight, straightRanks
	case counts[grouped[0]] == 3:
		return ThreeOfAKind, grouped
	case counts[grouped[0]] == 2 && counts[grouped[1]] == 2:
		return TwoPair, grouped
	case counts[grouped[0]] == 2:
		return Pair, grouped
	default:
		return HighCard, ranks
	}
}

// straightKickers reports whether five ranks form a straight and returns the
// descending run used for tie-breaks. The wheel {A,2,3,4,5} is the one
// straight where the ace plays low, represented as [5,4,3,2,1] so it ranks
// strictly below a six-high straight.
func straightKickers(ranksDesc []int, counts map[int]int) (bool, []int) {
	if len(counts) != 5 {
		return false, nil
	}

	if slices.Equal(ranksDesc, []int{Ace, 5, 4, 3, 2}) {
		return true, []int{5, 4, 3, 2, 1}
	}

	for i := 1; i < len(ranksDesc); i++ {
		if ranksDesc[i-1]-ranksDesc[i] != 1 {
			return false, nil
		}
	}
	return true, ranksDesc
}
