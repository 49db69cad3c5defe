package evaluator

import (
	"testing"

	"github.com/lox/holdem-rooms/internal/deck"
)

func eval5(s string) HandRank {
	var hand [5]deck.Card
	copy(hand[:], deck.MustParseCards(s))
	return Evaluate5(hand)
}

func TestEvaluate5Categories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		high     int
	}{
		{"royal flush", "AsKsQsJsTs", StraightFlush, 14},
		{"straight flush", "9h8h7h6h5h", StraightFlush, 9},
		{"four of a kind", "AsAhAdAcKs", Quads, 14},
		{"full house", "KsKhKdQcQs", FullHouse, 13},
		{"flush", "AcJc9c7c5c", Flush, 14},
		{"straight", "Ts9h8d7c6s", Straight, 10},
		{"wheel straight", "As5h4d3c2s", Straight, 5},
		{"three of a kind", "JsJhJd9c7s", Trips, 11},
		{"two pair", "AsAh8d8c5s", TwoPair, 14},
		{"one pair", "KsKhJd9c7s", OnePair, 13},
		{"high card", "AsJh9d7c5s", HighCard, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := eval5(tt.cards)
			if rank.Category != tt.category {
				t.Errorf("expected category %v, got %v", tt.category, rank.Category)
			}
			if rank.Kickers[0] != tt.high {
				t.Errorf("expected top kicker %d, got %d", tt.high, rank.Kickers[0])
			}
		})
	}
}

func TestHandComparisonAcrossCategories(t *testing.T) {
	royalFlush := eval5("AsKsQsJsTs")
	straightFlushLower := eval5("9h8h7h6h5h")
	if royalFlush.Compare(straightFlushLower) <= 0 {
		t.Error("ace-high straight flush should beat nine-high straight flush")
	}

	aceHigh := eval5("AsJh9d7c5s")
	kingHigh := eval5("KsJh9d7c5h")
	if aceHigh.Compare(kingHigh) <= 0 {
		t.Error("ace high should beat king high")
	}
}

func TestEvaluate7FindsBestOfSeven(t *testing.T) {
	// 7 cards containing a royal flush plus dead cards.
	cards := deck.MustParseCards("AsAhKsKhQsJsTs")
	rank := Evaluate7(cards)
	if rank.Category != StraightFlush || rank.Kickers[0] != 14 {
		t.Errorf("expected royal flush from 7 cards, got %v", rank)
	}
}

func TestEvaluate7PermutationInvariant(t *testing.T) {
	a := deck.MustParseCards("AhKdQsJc9h7d2s")
	b := deck.MustParseCards("2sAh9h7dKdJcQs")

	ra := Evaluate7(a)
	rb := Evaluate7(b)
	if ra.Compare(rb) != 0 {
		t.Errorf("reordering the same 7 cards changed the result: %v vs %v", ra, rb)
	}
}

func TestEvaluate7MonotonicOverAnyFiveSubset(t *testing.T) {
	cards := deck.MustParseCards("AsAhKsKhQsJsTs")
	best := Evaluate7(cards)

	forEachCombination(len(cards), 5, func(idx []int) {
		var hand [5]deck.Card
		for i, j := range idx {
			hand[i] = cards[j]
		}
		sub := Evaluate5(hand)
		if best.Compare(sub) < 0 {
			t.Fatalf("best7 %v is weaker than a 5-subset %v", best, sub)
		}
	})
}

func TestQuadsOnBoardKickerDecides(t *testing.T) {
	// Board provides quads; kicker decides among non-tied opponents. The
	// second hand's best kicker is its king, not its queen.
	a := Evaluate7(deck.MustParseCards("AsKh2s2h2d2c9h"))
	b := Evaluate7(deck.MustParseCards("QsKh2s2h2d2c9h"))
	if a.Compare(b) <= 0 {
		t.Error("ace kicker should beat king kicker with identical quads")
	}
}
