package strategist

// Position buckets a seat by its pre-flop acting order.
type Position int

const (
	Early Position = iota
	Middle
	Late
	Blinds
)

// String returns the position name.
func (p Position) String() string {
	switch p {
	case Early:
		return "Early"
	case Middle:
		return "Middle"
	case Late:
		return "Late"
	case Blinds:
		return "Blinds"
	default:
		return "Unknown"
	}
}

// ComputePosition derives the seat's position from its distance to the big
// blind, modulo table size. Short tables and failed lookups default to Late,
// the least restrictive bucket, rather than failing the decision.
func ComputePosition(playerIDs []int, selfID, bigBlindID int) Position {
	count := len(playerIDs)
	if count <= 3 {
		return Late
	}

	selfIdx := indexOf(playerIDs, selfID)
	bbIdx := indexOf(playerIDs, bigBlindID)
	if selfIdx < 0 || bbIdx < 0 {
		return Late
	}

	relative := (selfIdx - bbIdx + count) % count
	switch relative {
	case count - 1, count - 2:
		return Blinds
	case count - 3, count - 4:
		// Button and cutoff.
		return Late
	case count - 5:
		return Middle
	default:
		return Early
	}
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
