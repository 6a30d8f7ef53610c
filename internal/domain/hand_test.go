package domain

import "testing"

func testHand() *Hand {
	return NewHand([]Card{
		{King, Diamonds},
		{Queen, Diamonds},
		{Ace, Clubs},
		{Jack, Diamonds},
		{Jack, Hearts},
	})
}

func TestCardsBySuit(t *testing.T) {
	hand := testHand()
	ctx := NewCtx(Diamonds)

	bySuit := hand.CardsBySuit(ctx, false)
	if len(bySuit) != len(Suits) {
		t.Fatalf("expected an entry per suit, got %d", len(bySuit))
	}
	if got := len(bySuit[Diamonds]); got != 4 {
		t.Errorf("trump cards = %d, want 4 (both bowers fold in)", got)
	}
	if got := len(bySuit[Hearts]); got != 0 {
		t.Errorf("hearts = %d, want void", got)
	}
	if got := len(bySuit[Spades]); got != 0 {
		t.Errorf("spades = %d, want void", got)
	}
	if got := len(bySuit[Clubs]); got != 1 {
		t.Errorf("clubs = %d, want 1", got)
	}

	// Descending effective level within the trump group.
	trump := bySuit[Diamonds]
	for i := 1; i < len(trump); i++ {
		if trump[i-1].EffLevel(ctx, false) < trump[i].EffLevel(ctx, false) {
			t.Fatalf("trump group not descending: %v", trump)
		}
	}
	if trump[0] != (Card{Jack, Diamonds}) {
		t.Errorf("strongest trump = %s, want JD", trump[0])
	}

	withBowers := hand.CardsBySuit(ctx, true)
	if withBowers[Diamonds][0] != (Card{Right, Diamonds}) {
		t.Errorf("bower translation missing, got %s", withBowers[Diamonds][0])
	}
}

func TestRemove(t *testing.T) {
	hand := testHand()
	hand.Remove(Card{Ace, Clubs})
	if hand.Len() != 4 || hand.Contains(Card{Ace, Clubs}) {
		t.Fatalf("remove failed: %s", hand)
	}
	expectLogicPanic(t, func() {
		hand.Remove(Card{Ace, Clubs})
	})
}

func TestCanPlayFollowsSuit(t *testing.T) {
	hand := testHand()
	ctx := NewCtx(Diamonds)
	trick := NewTrick(ctx)
	lead := Card{Ace, Spades}
	trick.PlayCard(0, &lead)

	// Void in spades, so everything is playable.
	playable := hand.PlayableCards(trick)
	if len(playable) != hand.Len() {
		t.Fatalf("void in lead suit should free the whole hand, got %v", playable)
	}

	ctx2 := NewCtx(Diamonds)
	trick2 := NewTrick(ctx2)
	lead2 := Card{Nine, Clubs}
	trick2.PlayCard(0, &lead2)
	playable2 := hand.PlayableCards(trick2)
	if len(playable2) != 1 || playable2[0] != (Card{Ace, Clubs}) {
		t.Fatalf("must follow clubs with AC, got %v", playable2)
	}

	// The left bower follows a trump lead.
	ctx3 := NewCtx(Hearts)
	trick3 := NewTrick(ctx3)
	lead3 := Card{Nine, Hearts}
	trick3.PlayCard(0, &lead3)
	mustFollow := NewHand([]Card{{Jack, Diamonds}, {Ace, Spades}})
	playable3 := mustFollow.PlayableCards(trick3)
	if len(playable3) != 1 || playable3[0] != (Card{Jack, Diamonds}) {
		t.Fatalf("left bower must follow trump, got %v", playable3)
	}
}

func TestCanPlayOpenLead(t *testing.T) {
	hand := testHand()
	trick := NewTrick(NewCtx(Diamonds))
	for _, c := range hand.Cards() {
		if !hand.CanPlay(c, trick) {
			t.Errorf("any card should be playable on an open lead, %s was not", c)
		}
	}
}
