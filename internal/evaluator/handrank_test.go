package evaluator

import (
	"testing"

	"github.com/lox/holdem-rooms/internal/deck"
)

func TestHandRankCompareCategoryOrder(t *testing.T) {
	royalFlush := Evaluate7(deck.MustParseCards("AsKsQsJsTs9h8h"))
	fourOfAKind := Evaluate7(deck.MustParseCards("AsAhAdAcKs2h3h"))
	highCard := Evaluate7(deck.MustParseCards("AsKhQd9s7c5h3h"))

	if royalFlush.Compare(fourOfAKind) <= 0 {
		t.Errorf("straight flush should beat four of a kind")
	}
	if fourOfAKind.Compare(highCard) <= 0 {
		t.Errorf("four of a kind should beat high card")
	}
	if royalFlush.Compare(royalFlush) != 0 {
		t.Errorf("identical hands should tie")
	}
}

func TestHandRankStringAndCategory(t *testing.T) {
	tests := []struct {
		cards    string
		category Category
		name     string
	}{
		{"AsKsQsJsTs9h8h", StraightFlush, "Straight Flush"},
		{"9s8s7s6s5s4h3h", StraightFlush, "Straight Flush"},
		{"AsAhAdAcKs2h3h", Quads, "Four of a Kind"},
		{"AsAhAdKsKh2h3h", FullHouse, "Full House"},
		{"AsKsQs9s7s4h3h", Flush, "Flush"},
		{"AsKhQdJsTs9h8h", Straight, "Straight"},
		{"AsAhAdKsQh2h3h", Trips, "Three of a Kind"},
		{"AsAhKdKsQh2h3h", TwoPair, "Two Pair"},
		{"AsAhKdQs9h2h3h", OnePair, "One Pair"},
		{"AsKhQd9s7c5h3h", HighCard, "High Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := Evaluate7(deck.MustParseCards(tt.cards))
			if rank.Category != tt.category {
				t.Errorf("expected category %v, got %v", tt.category, rank.Category)
			}
			if got := rank.Category.String(); got != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, got)
			}
		})
	}
}

func TestHandRankPairKickers(t *testing.T) {
	aces := Evaluate7(deck.MustParseCards("AsAhKdQs9c7h5h"))
	kings := Evaluate7(deck.MustParseCards("KsKhAdQs9c7h5h"))
	nines := Evaluate7(deck.MustParseCards("9s9hKdQsAc7h5h"))

	for _, r := range []HandRank{aces, kings, nines} {
		if r.Category != OnePair {
			t.Errorf("expected one pair, got %v", r.Category)
		}
	}
	if aces.Kickers[0] != 14 {
		t.Errorf("aces pair rank should be 14, got %d", aces.Kickers[0])
	}
	if kings.Kickers[0] != 13 {
		t.Errorf("kings pair rank should be 13, got %d", kings.Kickers[0])
	}
	if nines.Kickers[0] != 9 {
		t.Errorf("nines pair rank should be 9, got %d", nines.Kickers[0])
	}
}

func TestHandRankHighCardKickers(t *testing.T) {
	aceHigh := Evaluate7(deck.MustParseCards("AsKhQd9s7c5h3h"))
	kingHigh := Evaluate7(deck.MustParseCards("KsQhJd9s7c5h3h"))
	queenHigh := Evaluate7(deck.MustParseCards("QsJhTd9s7c5h3h"))

	if aceHigh.Kickers[0] != 14 {
		t.Errorf("expected A high, got %d", aceHigh.Kickers[0])
	}
	if kingHigh.Kickers[0] != 13 {
		t.Errorf("expected K high, got %d", kingHigh.Kickers[0])
	}
	if queenHigh.Kickers[0] != 12 {
		t.Errorf("expected Q high, got %d", queenHigh.Kickers[0])
	}
}

func TestHandRankKickerComparisonWithinCategory(t *testing.T) {
	strong := Evaluate7(deck.MustParseCards("AsKhQd9s7c5h3h")) // A-K-Q-9-7
	weak := Evaluate7(deck.MustParseCards("AsKhQd9s6c5h3h"))   // A-K-Q-9-6

	if strong.Category != HighCard || weak.Category != HighCard {
		t.Errorf("both hands should be high card")
	}
	if strong.Compare(weak) <= 0 {
		t.Errorf("A-K-Q-9-7 should beat A-K-Q-9-6")
	}
}

func TestWheelStraightLosesToSixHigh(t *testing.T) {
	wheel := Evaluate7(deck.MustParseCards("AsKs2h3h4h5c9d"))
	sixHigh := Evaluate7(deck.MustParseCards("2h3h4h5c6dKsQs"))

	if wheel.Category != Straight || sixHigh.Category != Straight {
		t.Fatalf("expected both hands to be straights, got %v and %v", wheel.Category, sixHigh.Category)
	}
	if wheel.Kickers[0] != 5 {
		t.Errorf("wheel high card should be 5, got %d", wheel.Kickers[0])
	}
	if wheel.Compare(sixHigh) >= 0 {
		t.Errorf("wheel (5-high) should lose to 6-high straight")
	}
}
