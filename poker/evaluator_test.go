package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"

	"github.com/tiltcheck/pokerbot/internal/randutil"
)

func cards(strs ...string) []Card {
	return ParseCards(strs)
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name        string
		hole        []string
		community   []string
		wantRank    HandRank
		wantKickers []int
	}{
		{
			name:        "set of aces",
			hole:        []string{"Ah", "Ad"},
			community:   []string{"Ac", "Kd", "2s"},
			wantRank:    ThreeOfAKind,
			wantKickers: []int{14, 13, 2},
		},
		{
			name:        "wheel straight",
			hole:        []string{"Ah", "2d"},
			community:   []string{"3c", "4s", "5h"},
			wantRank:    Straight,
			wantKickers: []int{5, 4, 3, 2, 1},
		},
		{
			name:        "six high straight",
			hole:        []string{"2h", "3d"},
			community:   []string{"4c", "5s", "6h"},
			wantRank:    Straight,
			wantKickers: []int{6, 5, 4, 3, 2},
		},
		{
			name:        "broadway",
			hole:        []string{"Ah", "Kd"},
			community:   []string{"Qc", "Js", "Th"},
			wantRank:    Straight,
			wantKickers: []int{14, 13, 12, 11, 10},
		},
		{
			name:        "flush",
			hole:        []string{"Ah", "7h"},
			community:   []string{"2h", "9h", "Kh"},
			wantRank:    Flush,
			wantKickers: []int{14, 13, 9, 7, 2},
		},
		{
			name:        "full house kings over aces",
			hole:        []string{"Ah", "Ad"},
			community:   []string{"Ks", "Kh", "Kc"},
			wantRank:    FullHouse,
			wantKickers: []int{13, 14},
		},
		{
			name:        "quad sevens",
			hole:        []string{"7h", "7d"},
			community:   []string{"7c", "7s", "2h"},
			wantRank:    FourOfAKind,
			wantKickers: []int{7, 2},
		},
		{
			name:        "aces up",
			hole:        []string{"Ah", "Kd"},
			community:   []string{"As", "Kh", "2c"},
			wantRank:    TwoPair,
			wantKickers: []int{14, 13, 2},
		},
		{
			name:        "pocket aces unimproved",
			hole:        []string{"Ah", "Ad"},
			community:   []string{"Kc", "7s", "2h"},
			wantRank:    Pair,
			wantKickers: []int{14, 13, 7, 2},
		},
		{
			name:        "ace high",
			hole:        []string{"Ah", "Kd"},
			community:   []string{"9c", "5s", "2h"},
			wantRank:    HighCard,
			wantKickers: []int{14, 13, 9, 5, 2},
		},
		{
			name:        "steel wheel",
			hole:        []string{"Ah", "2h"},
			community:   []string{"3h", "4h", "5h"},
			wantRank:    StraightFlush,
			wantKickers: []int{5, 4, 3, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, kickers := Evaluate(cards(tt.hole...), cards(tt.community...))
			if rank != tt.wantRank {
				t.Errorf("rank = %v, want %v", rank, tt.wantRank)
			}
			if CompareKickers(kickers, tt.wantKickers) != 0 || len(kickers) != len(tt.wantKickers) {
				t.Errorf("kickers = %v, want %v", kickers, tt.wantKickers)
			}
		})
	}
}

func TestWheelRanksBelowSixHighStraight(t *testing.T) {
	wheelRank, wheelKickers := Evaluate(cards("Ah", "2d"), cards("3c", "4s", "5h"))
	sixRank, sixKickers := Evaluate(cards("2h", "3d"), cards("4c", "5s", "6h"))

	if wheelRank != sixRank {
		t.Fatalf("both hands should be straights: %v vs %v", wheelRank, sixRank)
	}
	if CompareKickers(wheelKickers, sixKickers) != -1 {
		t.Errorf("wheel %v should rank below six-high %v", wheelKickers, sixKickers)
	}
}

func TestEvaluateSevenCards(t *testing.T) {
	// The pocket pair is a decoy: the best five of seven is the straight flush.
	rank, kickers := Evaluate(cards("9h", "8h"), cards("7h", "6h", "5h", "Ad", "As"))
	if rank != StraightFlush {
		t.Fatalf("rank = %v, want %v", rank, StraightFlush)
	}
	if CompareKickers(kickers, []int{9, 8, 7, 6, 5}) != 0 {
		t.Errorf("kickers = %v, want [9 8 7 6 5]", kickers)
	}
}

func TestEvaluatePartial(t *testing.T) {
	tests := []struct {
		name        string
		hole        []string
		community   []string
		wantRank    HandRank
		wantKickers []int
	}{
		{"pocket pair preflop", []string{"Ah", "Ad"}, nil, Pair, []int{14, 14}},
		{"unpaired preflop", []string{"Kd", "Ah"}, nil, HighCard, []int{14, 13}},
		{"trips with sentinels dropped", []string{"Ah", "Ad"}, []string{"??", "Ac", ""}, ThreeOfAKind, []int{14, 14, 14}},
		{"four valid cards", []string{"Qh", "Qd"}, []string{"Qc", "2s"}, ThreeOfAKind, []int{12, 12, 12, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, kickers := Evaluate(cards(tt.hole...), cards(tt.community...))
			if rank != tt.wantRank {
				t.Errorf("rank = %v, want %v", rank, tt.wantRank)
			}
			if CompareKickers(kickers, tt.wantKickers) != 0 || len(kickers) != len(tt.wantKickers) {
				t.Errorf("kickers = %v, want %v", kickers, tt.wantKickers)
			}
		})
	}
}

func TestEvaluatePicksBestSubset(t *testing.T) {
	rng := randutil.New(7)
	for trial := 0; trial < 50; trial++ {
		deck := NewDeck(rng)
		seven := deck.Deal(7)

		bestRank, bestKickers := Evaluate(seven[:2], seven[2:])

		forEachSubset(7, 5, func(idx []int) {
			combo := make([]Card, 5)
			for i, ci := range idx {
				combo[i] = seven[ci]
			}
			rank, kickers := evaluateFive(combo)
			if rank > bestRank || (rank == bestRank && CompareKickers(kickers, bestKickers) > 0) {
				t.Fatalf("subset %v beats chosen best: %v %v > %v %v",
					combo, rank, kickers, bestRank, bestKickers)
			}
		})
	}
}

// compareHands orders two evaluated hands: rank first, kickers second.
func compareHands(r1 HandRank, k1 []int, r2 HandRank, k2 []int) int {
	if r1 != r2 {
		if r1 > r2 {
			return 1
		}
		return -1
	}
	return CompareKickers(k1, k2)
}

func toOracle(c Card) ph.Card {
	var s ph.Suit
	switch c.Suit() {
	case 'c':
		s = ph.Club
	case 'd':
		s = ph.Diamond
	case 'h':
		s = ph.Heart
	default:
		s = ph.Spade
	}
	r := ph.Rank(c.Rank())
	if c.Rank() == Ace {
		r = ph.Rank(1)
	}
	card, _ := ph.MakeCard(s, r)
	return card
}

func oracleEval7(seven []Card) int16 {
	var a7 [7]ph.Card
	for i, c := range seven {
		a7[i] = toOracle(c)
	}
	return ph.Eval7(&a7)
}

// TestEvaluateAgainstReferenceLibrary cross-checks the full ordering of
// Evaluate against an independent evaluator on random seven-card deals. The
// orientation of the library's score scale is derived from a fixed anchor
// pair rather than assumed.
func TestEvaluateAgainstReferenceLibrary(t *testing.T) {
	royal := append(cards("Ah", "Kh"), cards("Qh", "Jh", "Th", "2c", "3d")...)
	weak := append(cards("2h", "3s"), cards("4d", "5c", "7h", "8d", "9s")...)
	dir := 1
	if oracleEval7(royal) < oracleEval7(weak) {
		dir = -1
	}

	rng := randutil.New(42)
	for trial := 0; trial < 200; trial++ {
		deck := NewDeck(rng)
		a := deck.Deal(7)
		b := deck.Deal(7)

		ra, ka := Evaluate(a[:2], a[2:])
		rb, kb := Evaluate(b[:2], b[2:])
		mine := compareHands(ra, ka, rb, kb)

		oa, ob := oracleEval7(a), oracleEval7(b)
		oracle := 0
		if oa > ob {
			oracle = dir
		} else if oa < ob {
			oracle = -dir
		}

		if mine != oracle {
			t.Fatalf("ordering disagrees with reference on %v vs %v: mine=%d oracle=%d (%v %v vs %v %v)",
				a, b, mine, oracle, ra, ka, rb, kb)
		}
	}
}

func TestCompareKickers(t *testing.T) {
	tests := []struct {
		a, b []int
		want int
	}{
		{[]int{14, 13}, []int{14, 12}, 1},
		{[]int{14, 12}, []int{14, 13}, -1},
		{[]int{9, 9, 5}, []int{9, 9, 5}, 0},
		{[]int{5, 4, 3, 2, 1}, []int{6, 5, 4, 3, 2}, -1},
	}
	for _, tt := range tests {
		if got := CompareKickers(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareKickers(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
