package domain

import "testing"

func play(t *testing.T, trick *Trick, pos int, c Card) bool {
	t.Helper()
	return trick.PlayCard(pos, &c)
}

func TestTrickWinnerTracking(t *testing.T) {
	trick := NewTrick(NewCtx(Spades))

	if !play(t, trick, 1, Card{Ten, Hearts}) {
		t.Fatal("lead should take the trick")
	}
	if play(t, trick, 2, Card{Nine, Hearts}) {
		t.Error("lower follow should not take the trick")
	}
	if !play(t, trick, 3, Card{Ace, Hearts}) {
		t.Error("higher follow should take the trick")
	}
	if !play(t, trick, 0, Card{Nine, Spades}) {
		t.Error("trump should take the trick")
	}

	if trick.WinningPos() != 0 {
		t.Errorf("winning pos = %d, want 0", trick.WinningPos())
	}
	if *trick.WinningCard() != (Card{Nine, Spades}) {
		t.Errorf("winning card = %s", *trick.WinningCard())
	}
	if !trick.LeadTrumped() {
		t.Error("lead should be marked trumped")
	}
	if len(trick.Plays()) != 4 {
		t.Errorf("plays = %d, want 4", len(trick.Plays()))
	}
}

func TestTrickSitOut(t *testing.T) {
	trick := NewTrick(NewCtx(Spades))
	if trick.PlayCard(1, nil) {
		t.Error("a sit-out never takes the trick")
	}
	if trick.CardAt(1) != nil {
		t.Error("sit-out should leave no card")
	}
	play(t, trick, 2, Card{Ace, Clubs})
	if trick.WinningPos() != 2 {
		t.Errorf("winning pos = %d, want 2", trick.WinningPos())
	}
	// The seat already acted, even without a card.
	expectLogicPanic(t, func() {
		c := Card{Nine, Clubs}
		trick.PlayCard(1, &c)
	})
}

func TestTrickPlayedTwice(t *testing.T) {
	trick := NewTrick(NewCtx(Spades))
	play(t, trick, 0, Card{Ten, Hearts})
	expectLogicPanic(t, func() {
		c := Card{Nine, Hearts}
		trick.PlayCard(0, &c)
	})
}

func TestLeadTrumpedOnTrumpLead(t *testing.T) {
	trick := NewTrick(NewCtx(Spades))
	play(t, trick, 0, Card{Nine, Spades})
	play(t, trick, 1, Card{Ace, Spades})
	if trick.LeadTrumped() {
		t.Error("a trump lead is never trumped")
	}
}

func TestBidPredicates(t *testing.T) {
	if !PassBid.IsPass(false) || !PassBid.IsPass(true) {
		t.Error("PassBid should pass either way")
	}
	if NullBid.IsPass(false) {
		t.Error("NullBid passes only when nulls are included")
	}
	if !NullBid.IsPass(true) {
		t.Error("NullBid should count as a pass with includeNull")
	}
	if !DefendAloneBid.IsDefend() || !DefendAloneBid.Alone {
		t.Error("DefendAloneBid should defend alone")
	}
	if (Bid{Suit: Hearts, Alone: true}).IsPass(true) {
		t.Error("a real call is not a pass")
	}
}
