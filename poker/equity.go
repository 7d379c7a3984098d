package poker

// EstimateDrawEquity approximates the chance a drawing hand completes by the
// remaining card reveals, using the outs rule of thumb: nine outs for a
// four-flush, eight for an open-ended straight draw, four for a gutshot,
// multiplied by four with two cards to come (flop) or two with one card to
// come, divided by 100. This is the standard approximation, not exact
// combinatorial equity; callers must not treat it as such.
func EstimateDrawEquity(hole, community []Card) float64 {
	combined := validCards(hole, community)

	outs := 0
	if _, n := dominantSuit(combined); n == 4 {
		outs = 9
	}

	unique := uniqueRanks(combined)
	if openEnded(unique) {
		outs = max(outs, 8)
	} else if gutshot(unique) {
		outs = max(outs, 4)
	}

	multiplier := 2
	if communityCount(community) == 3 {
		multiplier = 4
	}
	return float64(outs*multiplier) / 100
}

// openEnded reports a four-rank window spanning exactly three, four
// consecutive ranks open at both ends.
func openEnded(unique []int) bool {
	for i := 0; i+3 < len(unique); i++ {
		if unique[i+3]-unique[i] == 3 {
			return true
		}
	}
	return false
}

// gutshot reports a four-rank window spanning exactly four, one missing
// inner card.
func gutshot(unique []int) bool {
	for i := 0; i+3 < len(unique); i++ {
		if unique[i+3]-unique[i] == 4 {
			return true
		}
	}
	return false
}

func communityCount(community []Card) int {
	n := 0
	for _, c := range community {
		if c.Valid() {
			n++
		}
	}
	return n
}
