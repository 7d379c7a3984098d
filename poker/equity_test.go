package poker

import (
	"math"
	"testing"
)

func TestEstimateDrawEquity(t *testing.T) {
	tests := []struct {
		name      string
		hole      []string
		community []string
		want      float64
	}{
		{"flush draw on flop", []string{"Ah", "Kh"}, []string{"Qh", "2h", "9c"}, 0.36},
		{"flush draw on turn", []string{"Ah", "Kh"}, []string{"Qh", "2h", "9c", "3d"}, 0.18},
		{"open ended on flop", []string{"9h", "8d"}, []string{"7c", "6s", "2h"}, 0.32},
		{"gutshot on flop", []string{"9h", "8d"}, []string{"6c", "5s", "Kh"}, 0.16},
		{"combo draw counts flush outs", []string{"9h", "8h"}, []string{"7h", "6h", "2c"}, 0.36},
		{"no draw", []string{"Ah", "2d"}, []string{"7c", "9s", "Kh"}, 0},
		{"preflop has no countable outs", []string{"Ah", "Kh"}, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDrawEquity(cards(tt.hole...), cards(tt.community...))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("equity = %v, want %v", got, tt.want)
			}
		})
	}
}

// The doubled multiplier applies only when exactly three community cards are
// valid; sentinel board cards do not count toward that three.
func TestEstimateDrawEquityMultiplierBoundary(t *testing.T) {
	flop := EstimateDrawEquity(cards("Ah", "Kh"), cards("Qh", "2h", "9c"))
	short := EstimateDrawEquity(cards("Ah", "Kh"), cards("Qh", "2h", "??"))
	if flop != 2*short {
		t.Errorf("flop equity %v should be double the short-board %v", flop, short)
	}
}
