package analysis

import (
	"testing"

	"euchre/internal/domain"
)

// playDeal fabricates a mid-deal state: spades trump, one trick played
// (9S led and taken by the right bower), the rest of the pack unseen.
func playDeal(t *testing.T, hand *domain.Hand) *domain.DealState {
	t.Helper()
	ctx := domain.NewCtx(domain.Spades)
	played := []domain.Card{
		{Rank: domain.Nine, Suit: domain.Spades},
		{Rank: domain.Jack, Suit: domain.Spades},
	}
	unplayed := make(map[domain.Suit]map[domain.Card]bool)
	playedBySuit := make(map[domain.Suit][]domain.Card)
	for _, s := range domain.Suits {
		unplayed[s] = make(map[domain.Card]bool)
		playedBySuit[s] = nil
	}
	for _, c := range domain.Pack() {
		unplayed[c.EffSuit(ctx)][c] = true
	}
	for _, c := range played {
		delete(unplayed[c.EffSuit(ctx)], c)
		playedBySuit[c.EffSuit(ctx)] = append(playedBySuit[c.EffSuit(ctx)], c)
	}
	contract := domain.Bid{Suit: domain.Spades}
	return &domain.DealState{
		Pos:            0,
		Hand:           hand,
		Contract:       &contract,
		CallerPos:      0,
		PlayedBySuit:   playedBySuit,
		UnplayedBySuit: unplayed,
		Player:         domain.PlayerState{},
	}
}

func TestTrumpAccounting(t *testing.T) {
	hand := domain.NewHand([]domain.Card{
		{Rank: domain.Ace, Suit: domain.Spades},
		{Rank: domain.Jack, Suit: domain.Clubs},
		{Rank: domain.Ace, Suit: domain.Hearts},
	})
	pa := NewPlayAnalysis(playDeal(t, hand))

	if got := len(pa.TrumpsPlayed()); got != 2 {
		t.Errorf("trumps played = %d, want 2", got)
	}
	// 7 trump total (6 spades + left bower); 2 seen leaves 5 unplayed.
	if got := len(pa.TrumpsUnplayed()); got != 5 {
		t.Errorf("trumps unplayed = %d, want 5", got)
	}
	// Of those, AS and JC (left) are in hand, 3 missing.
	missing := pa.TrumpsMissing()
	if len(missing) != 3 {
		t.Fatalf("trumps missing = %v, want 3 cards", missing)
	}
	for i := 1; i < len(missing); i++ {
		ctx := domain.NewCtx(domain.Spades)
		if missing[i-1].EffLevel(ctx, false) < missing[i].EffLevel(ctx, false) {
			t.Errorf("missing trumps not descending: %v", missing)
		}
	}
}

func TestSuitWinnersAndMyWinners(t *testing.T) {
	hand := domain.NewHand([]domain.Card{
		{Rank: domain.Ace, Suit: domain.Hearts},
		{Rank: domain.King, Suit: domain.Diamonds},
		{Rank: domain.Nine, Suit: domain.Clubs},
	})
	pa := NewPlayAnalysis(playDeal(t, hand))

	winners := pa.SuitWinners()
	if w := winners[domain.Hearts]; w == nil || *w != (domain.Card{Rank: domain.Ace, Suit: domain.Hearts}) {
		t.Errorf("hearts winner = %v, want AH", w)
	}
	// Right bower is gone; the left bower still heads trump, in dealt form.
	if w := winners[domain.Spades]; w == nil || *w != (domain.Card{Rank: domain.Jack, Suit: domain.Clubs}) {
		t.Errorf("spades winner = %v, want JC", w)
	}

	// AH is the only held non-trump suit winner (AD still out for diamonds).
	mine := pa.MyWinners()
	if len(mine) != 1 || mine[0] != (domain.Card{Rank: domain.Ace, Suit: domain.Hearts}) {
		t.Errorf("my winners = %v, want [AH]", mine)
	}
}

func TestFollowCards(t *testing.T) {
	hand := domain.NewHand([]domain.Card{
		{Rank: domain.Jack, Suit: domain.Clubs},
		{Rank: domain.Ten, Suit: domain.Clubs},
		{Rank: domain.Ace, Suit: domain.Hearts},
	})
	pa := NewPlayAnalysis(playDeal(t, hand))

	// Clubs lead: JC plays as trump (left bower), so only 10C follows.
	follows := pa.FollowCards(domain.Card{Rank: domain.King, Suit: domain.Clubs})
	if len(follows) != 1 || follows[0] != (domain.Card{Rank: domain.Ten, Suit: domain.Clubs}) {
		t.Errorf("follow cards = %v, want [10C]", follows)
	}

	// Trump lead: JC must follow.
	follows = pa.FollowCards(domain.Card{Rank: domain.King, Suit: domain.Spades})
	if len(follows) != 1 || follows[0] != (domain.Card{Rank: domain.Jack, Suit: domain.Clubs}) {
		t.Errorf("follow cards = %v, want [JC]", follows)
	}
}
