package strategist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePositionSixSeats(t *testing.T) {
	// Seats 0-5, big blind in seat 0: offsets from the big blind map to
	// Early(0), Middle(1), Late(2,3), Blinds(4,5).
	players := []int{0, 1, 2, 3, 4, 5}
	want := map[int]Position{
		0: Early,
		1: Middle,
		2: Late,
		3: Late,
		4: Blinds,
		5: Blinds,
	}
	for seat, pos := range want {
		assert.Equal(t, pos, ComputePosition(players, seat, 0), "seat %d", seat)
	}
}

func TestComputePositionWrapsAroundTable(t *testing.T) {
	players := []int{10, 20, 30, 40, 50, 60}
	// Big blind in the last seat; the seat right before it is the small blind.
	assert.Equal(t, Blinds, ComputePosition(players, 50, 60))
	assert.Equal(t, Early, ComputePosition(players, 60, 60))
	assert.Equal(t, Middle, ComputePosition(players, 10, 60))
}

func TestComputePositionShortTable(t *testing.T) {
	assert.Equal(t, Late, ComputePosition([]int{1, 2}, 1, 2))
	assert.Equal(t, Late, ComputePosition([]int{1, 2, 3}, 3, 1))
}

func TestComputePositionLookupFailure(t *testing.T) {
	players := []int{0, 1, 2, 3, 4, 5}
	assert.Equal(t, Late, ComputePosition(players, 99, 0), "unknown self")
	assert.Equal(t, Late, ComputePosition(players, 0, 99), "unknown big blind")
}
