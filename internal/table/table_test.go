package table

import (
	"testing"

	"github.com/lox/holdem-rooms/internal/deck"
	"github.com/lox/holdem-rooms/internal/randutil"
	"github.com/stretchr/testify/require"
)

func newDeckForTest(seed int64) *deck.Deck {
	return deck.NewDeckWithRand(randutil.New(seed))
}

func TestHeadsUpBlinds(t *testing.T) {
	tb := New("t1", 6, 5, 10)
	_, err := tb.Sit("u1", 1000)
	require.NoError(t, err)
	_, err = tb.Sit("u2", 1000)
	require.NoError(t, err)

	require.NoError(t, tb.StartHand(newDeckForTest(1)))

	require.Equal(t, 15, tb.Pot)
	require.Equal(t, 10, tb.RoundBet)
	require.Equal(t, StreetPreflop, tb.Street)

	sbIdx := tb.nextFrom(tb.DealerIdx, (*Seat).Eligible)
	require.Equal(t, tb.Seats[sbIdx].UserID, tb.Seats[tb.ToActIdx].UserID)
}

func TestPairKickerTiebreak(t *testing.T) {
	// The board pairs aces for both players; a's queen kicker beats b's jack.
	tb := New("t2", 6, 5, 10)
	tb.Seats[0] = Seat{UserID: "a", Stack: 1000, TotalContrib: 100, HoleDealt: true,
		Hole: [2]deck.Card{{Suit: deck.Diamonds, Rank: deck.Queen}, {Suit: deck.Clubs, Rank: deck.Three}}}
	tb.Seats[1] = Seat{UserID: "b", Stack: 1000, TotalContrib: 100, HoleDealt: true,
		Hole: [2]deck.Card{{Suit: deck.Diamonds, Rank: deck.Jack}, {Suit: deck.Clubs, Rank: deck.Four}}}
	tb.Board = deck.MustParseCards("AhAdKc7c2s")
	tb.Pot = 200
	tb.Street = StreetShowdown

	payouts := tb.ShowdownAndPayout()
	require.Equal(t, 200, payouts[0])
	require.Equal(t, 0, payouts[1])
}

func TestThreeWaySidePot(t *testing.T) {
	tb := New("t3", 6, 5, 10)
	tb.Seats[0] = Seat{UserID: "a", Stack: 0, TotalContrib: 50, HoleDealt: true,
		Hole: [2]deck.Card{{Suit: deck.Clubs, Rank: deck.Two}, {Suit: deck.Clubs, Rank: deck.Three}}, IsAllIn: true}
	tb.Seats[1] = Seat{UserID: "b", Stack: 900, TotalContrib: 100, HoleDealt: true,
		Hole: [2]deck.Card{{Suit: deck.Clubs, Rank: deck.Seven}, {Suit: deck.Diamonds, Rank: deck.Seven}}}
	tb.Seats[2] = Seat{UserID: "c", Stack: 900, TotalContrib: 100, HoleDealt: true,
		Hole: [2]deck.Card{{Suit: deck.Clubs, Rank: deck.Eight}, {Suit: deck.Diamonds, Rank: deck.Eight}}}
	tb.Board = deck.MustParseCards("2h5sJdQcKh")
	tb.Pot = 250
	tb.Street = StreetShowdown

	payouts := tb.ShowdownAndPayout()
	require.Equal(t, 250, payouts[2])
	require.Equal(t, 0, payouts[0])
	require.Equal(t, 0, payouts[1])
}

func TestFoldToOne(t *testing.T) {
	tb := New("t4", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	require.NoError(t, tb.StartHand(newDeckForTest(2)))

	actor := tb.Seats[tb.ToActIdx].UserID
	res, err := tb.ApplyAction(actor, tb.HandID, ActionFold, 0)
	require.NoError(t, err)
	require.Equal(t, HandEnded, res.Outcome)
	require.Equal(t, StreetNone, tb.Street)
}

func TestApplyActionRejectsWrongTurn(t *testing.T) {
	tb := New("t5", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	require.NoError(t, tb.StartHand(newDeckForTest(3)))

	notActor := "u1"
	if tb.Seats[tb.ToActIdx].UserID == "u1" {
		notActor = "u2"
	}
	_, err := tb.ApplyAction(notActor, tb.HandID, ActionCheck, 0)
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestApplyActionRejectsStaleHandID(t *testing.T) {
	tb := New("t6", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	require.NoError(t, tb.StartHand(newDeckForTest(4)))

	actor := tb.Seats[tb.ToActIdx].UserID
	_, err := tb.ApplyAction(actor, "not-the-hand-id", ActionCall, 0)
	require.ErrorIs(t, err, ErrStaleHand)
}

func TestNextStreetResetsRoundState(t *testing.T) {
	tb := New("t7", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	require.NoError(t, tb.StartHand(newDeckForTest(5)))

	// Both players call/check preflop to close the street.
	for tb.bettingClosed() == false {
		actor := tb.Seats[tb.ToActIdx].UserID
		toCall := tb.RoundBet - tb.Seats[tb.ToActIdx].RoundContrib
		kind := ActionCheck
		if toCall > 0 {
			kind = ActionCall
		}
		res, err := tb.ApplyAction(actor, tb.HandID, kind, 0)
		require.NoError(t, err)
		if res.Outcome != Continue {
			break
		}
	}
	require.NoError(t, tb.NextStreet())
	require.Equal(t, StreetFlop, tb.Street)
	require.Equal(t, 0, tb.RoundBet)
	require.Len(t, tb.Board, 3)
	for _, s := range tb.Seats {
		if s.Occupied() {
			require.Equal(t, 0, s.RoundContrib)
			require.False(t, s.ActedInRound)
		}
	}
}

func TestApplyActionRejectsRaiseActorCannotCoverCall(t *testing.T) {
	tb := New("t9", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	_, _ = tb.Sit("u3", 20)
	require.NoError(t, tb.StartHand(newDeckForTest(7)))

	// Dealer (u1) opens with a large raise, u2 folds, leaving the short
	// stack u3 facing a to_call far larger than its remaining stack.
	require.Equal(t, "u1", tb.Seats[tb.ToActIdx].UserID)
	_, err := tb.ApplyAction("u1", tb.HandID, ActionRaise, 500)
	require.NoError(t, err)

	require.Equal(t, "u2", tb.Seats[tb.ToActIdx].UserID)
	_, err = tb.ApplyAction("u2", tb.HandID, ActionFold, 0)
	require.NoError(t, err)

	require.Equal(t, "u3", tb.Seats[tb.ToActIdx].UserID)
	preRoundBet := tb.RoundBet
	_, err = tb.ApplyAction("u3", tb.HandID, ActionRaise, 10)
	require.ErrorIs(t, err, ErrRaiseExceedsStack)
	require.Equal(t, preRoundBet, tb.RoundBet, "a rejected raise must not mutate round_bet")
}

func TestSidePotConservation(t *testing.T) {
	seats := []Seat{
		{UserID: "a", TotalContrib: 50},
		{UserID: "b", TotalContrib: 100},
		{UserID: "c", TotalContrib: 100},
	}
	layers := BuildSidePots(seats)
	total := 0
	for _, l := range layers {
		total += l.Amount
	}
	require.Equal(t, 250, total)
}

func TestSnapshotRedactsOtherSeatsHoleCards(t *testing.T) {
	tb := New("t8", 6, 5, 10)
	_, _ = tb.Sit("u1", 1000)
	_, _ = tb.Sit("u2", 1000)
	require.NoError(t, tb.StartHand(newDeckForTest(6)))

	snap := tb.BuildSnapshot()
	view := snap.For("u1")
	for _, s := range view.Seats {
		if s.UserID != "" && s.UserID != "u1" {
			require.Nil(t, s.Hole, "other seat's hole cards must be redacted")
		}
		if s.UserID == "u1" {
			require.Len(t, s.Hole, 2)
		}
	}
}
