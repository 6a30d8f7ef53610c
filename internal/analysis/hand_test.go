package analysis

import (
	"math"
	"testing"

	"euchre/internal/domain"
)

// Classic strong diamonds holding: both bowers, K-Q of trump, off-ace.
func strongHand() *domain.Hand {
	return domain.NewHand([]domain.Card{
		{Rank: domain.King, Suit: domain.Diamonds},
		{Rank: domain.Queen, Suit: domain.Diamonds},
		{Rank: domain.Ace, Suit: domain.Clubs},
		{Rank: domain.Jack, Suit: domain.Diamonds},
		{Rank: domain.Jack, Suit: domain.Hearts},
	})
}

func TestHandAnalysisViews(t *testing.T) {
	ha := NewHandAnalysis(strongHand())
	trump := domain.Diamonds

	trumps := ha.TrumpCards(trump)
	if len(trumps) != 4 {
		t.Fatalf("trump cards = %d, want 4 (both bowers fold in)", len(trumps))
	}
	if trumps[0].Rank != domain.Right || trumps[1].Rank != domain.Left {
		t.Errorf("trump cards not led by bowers: %v", trumps)
	}

	bowers := ha.Bowers(trump)
	if len(bowers) != 2 {
		t.Errorf("bowers = %d, want 2", len(bowers))
	}

	offAces := ha.OffAces(trump)
	if len(offAces) != 1 || offAces[0].Suit != domain.Clubs {
		t.Errorf("off aces = %v, want ace of clubs", offAces)
	}

	voids := ha.Voids(trump)
	wantVoid := map[domain.Suit]bool{domain.Hearts: true, domain.Spades: true}
	if len(voids) != 2 || !wantVoid[voids[0]] || !wantVoid[voids[1]] {
		t.Errorf("voids = %v, want hearts and spades", voids)
	}

	singles := ha.SingletonCards(trump)
	if len(singles) != 1 || singles[0] != (domain.Card{Rank: domain.Ace, Suit: domain.Clubs}) {
		t.Errorf("singletons = %v, want [AC]", singles)
	}

	green := ha.GreenSuitCards(trump)
	if len(green[0]) != 1 || len(green[1]) != 0 {
		t.Errorf("green suits = %v, want clubs holding first", green)
	}
}

func TestCardsByLevelOffset(t *testing.T) {
	ha := NewHandAnalysis(strongHand())
	byLevel := ha.CardsByLevel(domain.Diamonds, true)
	// All four trump first, then the lone club.
	if byLevel[len(byLevel)-1] != (domain.Card{Rank: domain.Ace, Suit: domain.Clubs}) {
		t.Errorf("offset sort should put the off-suit ace last: %v", byLevel)
	}
	if byLevel[0] != (domain.Card{Rank: domain.Jack, Suit: domain.Diamonds}) {
		t.Errorf("offset sort should put the right bower first: %v", byLevel)
	}
}

func TestSuitStrengthBounds(t *testing.T) {
	sa, err := NewSmartAnalysis(strongHand(), DefaultSmartParams())
	if err != nil {
		t.Fatal(err)
	}
	for _, trump := range domain.Suits {
		for _, suit := range domain.Suits {
			v := sa.SuitStrength(suit, trump)
			if v < 0 || v > 1 {
				t.Errorf("suit strength %s under %s = %f, outside [0,1]", suit, trump, v)
			}
		}
	}
}

func TestHandStrength(t *testing.T) {
	sa, err := NewSmartAnalysis(strongHand(), DefaultSmartParams())
	if err != nil {
		t.Fatal(err)
	}
	strength, comps := sa.HandStrengthDetail(domain.Diamonds)

	// trump 20/24*40, clubs 10/16*10, 4 trump -> .8*20,
	// one off-ace -> .2*15, two useful voids -> .7*15
	want := 20.0/24.0*40 + 10.0/16.0*10 + 0.8*20 + 0.2*15 + 0.7*15
	if math.Abs(strength-want) > 1e-9 {
		t.Errorf("hand strength = %f, want %f", strength, want)
	}

	var sum float64
	for _, c := range comps {
		sum += c.Value
		if c.Value != c.Raw*c.Coeff {
			t.Errorf("%s value %f != raw %f * coeff %f", c.Name, c.Value, c.Raw, c.Coeff)
		}
	}
	if math.Abs(sum-strength) > 1e-9 {
		t.Errorf("components sum to %f, strength %f", sum, strength)
	}
}

func TestVoidsCappedByTrumpCount(t *testing.T) {
	// Two voids but only one trump, so only zero extra voids count.
	hand := domain.NewHand([]domain.Card{
		{Rank: domain.Nine, Suit: domain.Diamonds},
		{Rank: domain.Ace, Suit: domain.Clubs},
		{Rank: domain.King, Suit: domain.Clubs},
		{Rank: domain.Queen, Suit: domain.Clubs},
		{Rank: domain.Ten, Suit: domain.Clubs},
	})
	sa, err := NewSmartAnalysis(hand, DefaultSmartParams())
	if err != nil {
		t.Fatal(err)
	}
	_, comps := sa.HandStrengthDetail(domain.Diamonds)
	for _, c := range comps {
		if c.Name == "voids_score" && c.Raw != 0 {
			t.Errorf("voids raw = %f, want 0 with a single trump", c.Raw)
		}
	}
}

func TestSmartParamsValidate(t *testing.T) {
	params := DefaultSmartParams()
	params.TrumpValues = params.TrumpValues[:5]
	if _, err := NewSmartAnalysis(strongHand(), params); err == nil {
		t.Fatal("expected an error for a short trump_values table")
	}
}
