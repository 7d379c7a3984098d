package poker

import "testing"

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRank int
		wantSuit byte
	}{
		{"ace of hearts", "Ah", 14, 'h'},
		{"king of diamonds", "Kd", 13, 'd'},
		{"queen of spades", "Qs", 12, 's'},
		{"jack of clubs", "Jc", 11, 'c'},
		{"ten of diamonds", "Td", 10, 'd'},
		{"ten as two digits", "10d", 10, 'd'},
		{"nine of clubs", "9c", 9, 'c'},
		{"two of clubs", "2c", 2, 'c'},
		{"empty string", "", 0, 0},
		{"single char", "A", 0, 0},
		{"bad rank", "Xh", 0, 'h'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCard(tt.input)
			if c.Rank() != tt.wantRank {
				t.Errorf("ParseCard(%q).Rank() = %d, want %d", tt.input, c.Rank(), tt.wantRank)
			}
			if c.Suit() != tt.wantSuit {
				t.Errorf("ParseCard(%q).Suit() = %c, want %c", tt.input, c.Suit(), tt.wantSuit)
			}
		})
	}
}

func TestCardRoundTrip(t *testing.T) {
	// Every valid card must survive format-then-parse unchanged.
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			parsed := ParseCard(c.String())
			if parsed != c {
				t.Errorf("round trip %s: got rank %d suit %c", c, parsed.Rank(), parsed.Suit())
			}
		}
	}
}

func TestSentinelCard(t *testing.T) {
	c := ParseCard("garbage")
	if c.Valid() {
		t.Errorf("expected sentinel card to be invalid")
	}
	if c.String() != "" {
		t.Errorf("sentinel card renders %q, want empty", c.String())
	}
}

func TestParseCards(t *testing.T) {
	cards := ParseCards([]string{"Ah", "", "2c"})
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	if cards[0].Rank() != 14 || cards[2].Rank() != 2 {
		t.Errorf("unexpected ranks: %d, %d", cards[0].Rank(), cards[2].Rank())
	}
	if cards[1].Valid() {
		t.Errorf("expected middle card to be sentinel")
	}
}
