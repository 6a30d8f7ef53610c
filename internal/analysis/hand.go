// Package analysis provides trump-relative evaluations of euchre hands,
// used by strategies for bidding and card play.
package analysis

import (
	"sort"

	"euchre/internal/domain"
)

// HandAnalysis extracts useful views of a hand under candidate trump suits.
// Views are memoized per trump suit, so one instance can serve the whole
// bidding process; build a fresh instance once the hand changes.
type HandAnalysis struct {
	hand      *domain.Hand
	ctxs      map[domain.Suit]*domain.Ctx
	suitCards map[domain.Suit]map[domain.Suit][]domain.Card
}

func NewHandAnalysis(hand *domain.Hand) *HandAnalysis {
	return &HandAnalysis{
		hand:      hand,
		ctxs:      make(map[domain.Suit]*domain.Ctx, len(domain.Suits)),
		suitCards: make(map[domain.Suit]map[domain.Suit][]domain.Card, len(domain.Suits)),
	}
}

func (a *HandAnalysis) Hand() *domain.Hand { return a.hand }

func (a *HandAnalysis) ctx(trump domain.Suit) *domain.Ctx {
	if c, ok := a.ctxs[trump]; ok {
		return c
	}
	c := domain.NewCtx(trump)
	a.ctxs[trump] = c
	return c
}

// SuitCards groups the hand by effective suit with jacks translated into
// bowers, descending level within each suit.
func (a *HandAnalysis) SuitCards(trump domain.Suit) map[domain.Suit][]domain.Card {
	if sc, ok := a.suitCards[trump]; ok {
		return sc
	}
	sc := a.hand.CardsBySuit(a.ctx(trump), true)
	a.suitCards[trump] = sc
	return sc
}

// TrumpCards returns the trump holding, descending.
func (a *HandAnalysis) TrumpCards(trump domain.Suit) []domain.Card {
	return a.SuitCards(trump)[trump]
}

// NextSuitCards returns the next-suit holding, descending.
func (a *HandAnalysis) NextSuitCards(trump domain.Suit) []domain.Card {
	return a.SuitCards(trump)[trump.Next()]
}

// GreenSuitCards returns the off-color holdings, longer suit first.
func (a *HandAnalysis) GreenSuitCards(trump domain.Suit) [2][]domain.Card {
	green := trump.Green()
	sc := a.SuitCards(trump)
	first, second := sc[green[0]], sc[green[1]]
	if len(second) > len(first) {
		first, second = second, first
	}
	return [2][]domain.Card{first, second}
}

// OffAces returns the non-trump aces, in no particular order.
func (a *HandAnalysis) OffAces(trump domain.Suit) []domain.Card {
	var aces []domain.Card
	for _, c := range a.hand.Cards() {
		if c.Rank == domain.Ace && c.Suit != trump {
			aces = append(aces, c)
		}
	}
	return aces
}

// Bowers returns the held bowers, right before left.
func (a *HandAnalysis) Bowers(trump domain.Suit) []domain.Card {
	var bowers []domain.Card
	for _, c := range a.TrumpCards(trump) {
		if c.Rank == domain.Right || c.Rank == domain.Left {
			bowers = append(bowers, c)
		}
	}
	return bowers
}

// Voids returns the suits with no effective holding, trump included if
// empty.
func (a *HandAnalysis) Voids(trump domain.Suit) []domain.Suit {
	var voids []domain.Suit
	for _, s := range domain.Suits {
		if len(a.SuitCards(trump)[s]) == 0 {
			voids = append(voids, s)
		}
	}
	return voids
}

// SingletonCards returns the lone card of each one-card suit.
func (a *HandAnalysis) SingletonCards(trump domain.Suit) []domain.Card {
	var singles []domain.Card
	for _, s := range domain.Suits {
		if cards := a.SuitCards(trump)[s]; len(cards) == 1 {
			singles = append(singles, cards[0])
		}
	}
	return singles
}

// CardsByLevel returns the hand sorted by descending effective level.
// Jacks keep their dealt form, so results are directly playable;
// offsetTrump sorts all trump above all plain-suit cards.
func (a *HandAnalysis) CardsByLevel(trump domain.Suit, offsetTrump bool) []domain.Card {
	ctx := a.ctx(trump)
	cards := make([]domain.Card, len(a.hand.Cards()))
	copy(cards, a.hand.Cards())
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].EffLevel(ctx, offsetTrump) > cards[j].EffLevel(ctx, offsetTrump)
	})
	return cards
}
