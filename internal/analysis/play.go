package analysis

import (
	"sort"

	"euchre/internal/domain"
)

// PlayAnalysis evaluates a hand during trick play, where the trump suit is
// fixed by the contract. It wraps HandAnalysis for the hand views and adds
// functions over the cards seen and unseen in the deal so far. Build one
// per play decision; the underlying hand shrinks as cards are played.
type PlayAnalysis struct {
	deal *domain.DealState
	ctx  *domain.Ctx
	ha   *HandAnalysis
}

func NewPlayAnalysis(deal *domain.DealState) *PlayAnalysis {
	return &PlayAnalysis{
		deal: deal,
		ctx:  domain.NewCtx(deal.Contract.Suit),
		ha:   NewHandAnalysis(deal.Hand),
	}
}

func (p *PlayAnalysis) Trump() domain.Suit { return p.ctx.Trump() }

func (p *PlayAnalysis) SuitCards() map[domain.Suit][]domain.Card {
	return p.ha.SuitCards(p.Trump())
}

func (p *PlayAnalysis) TrumpCards() []domain.Card { return p.ha.TrumpCards(p.Trump()) }

func (p *PlayAnalysis) NextSuitCards() []domain.Card { return p.ha.NextSuitCards(p.Trump()) }

func (p *PlayAnalysis) GreenSuitCards() [2][]domain.Card { return p.ha.GreenSuitCards(p.Trump()) }

func (p *PlayAnalysis) OffAces() []domain.Card { return p.ha.OffAces(p.Trump()) }

func (p *PlayAnalysis) Bowers() []domain.Card { return p.ha.Bowers(p.Trump()) }

func (p *PlayAnalysis) SingletonCards() []domain.Card { return p.ha.SingletonCards(p.Trump()) }

func (p *PlayAnalysis) CardsByLevel(offsetTrump bool) []domain.Card {
	return p.ha.CardsByLevel(p.Trump(), offsetTrump)
}

// FollowCards returns the hand cards following the lead card's effective
// suit, descending. Jacks keep their dealt form, so results are directly
// playable.
func (p *PlayAnalysis) FollowCards(lead domain.Card) []domain.Card {
	leadSuit := lead.EffSuit(p.ctx)
	return p.deal.Hand.CardsBySuit(p.ctx, false)[leadSuit]
}

// UnplayedBySuit returns the cards not yet seen in play, by effective suit,
// descending within each suit. Jacks keep their dealt form.
func (p *PlayAnalysis) UnplayedBySuit() map[domain.Suit][]domain.Card {
	out := make(map[domain.Suit][]domain.Card, len(p.deal.UnplayedBySuit))
	for suit, set := range p.deal.UnplayedBySuit {
		cards := make([]domain.Card, 0, len(set))
		for c := range set {
			cards = append(cards, c)
		}
		sort.Slice(cards, func(i, j int) bool {
			ci, cj := cards[i], cards[j]
			li, lj := ci.EffLevel(p.ctx, false), cj.EffLevel(p.ctx, false)
			if li != lj {
				return li > lj
			}
			return ci.SortKey() < cj.SortKey()
		})
		out[suit] = cards
	}
	return out
}

// SuitWinners returns the highest outstanding card per suit, nil once a
// suit is exhausted.
func (p *PlayAnalysis) SuitWinners() map[domain.Suit]*domain.Card {
	winners := make(map[domain.Suit]*domain.Card, len(domain.Suits))
	for suit, cards := range p.UnplayedBySuit() {
		if len(cards) == 0 {
			winners[suit] = nil
			continue
		}
		c := cards[0]
		winners[suit] = &c
	}
	return winners
}

// MyWinners returns the non-trump suit winners held in the hand, sorted by
// ascending effective level so the cheapest winner comes first.
func (p *PlayAnalysis) MyWinners() []domain.Card {
	var winners []domain.Card
	for suit, card := range p.SuitWinners() {
		if card == nil || suit == p.Trump() {
			continue
		}
		if p.deal.Hand.Contains(*card) {
			winners = append(winners, *card)
		}
	}
	sort.Slice(winners, func(i, j int) bool {
		return winners[i].EffLevel(p.ctx, false) < winners[j].EffLevel(p.ctx, false)
	})
	return winners
}

// TrumpsPlayed returns the trump cards seen in play so far, in bower form,
// unsorted.
func (p *PlayAnalysis) TrumpsPlayed() []domain.Card {
	played := p.deal.PlayedBySuit[p.Trump()]
	out := make([]domain.Card, len(played))
	for i, c := range played {
		out[i] = c.EffCard(p.ctx)
	}
	return out
}

// TrumpsUnplayed returns the trump cards not yet seen, in bower form,
// unsorted.
func (p *PlayAnalysis) TrumpsUnplayed() []domain.Card {
	set := p.deal.UnplayedBySuit[p.Trump()]
	out := make([]domain.Card, 0, len(set))
	for c := range set {
		out = append(out, c.EffCard(p.ctx))
	}
	return out
}

// TrumpsMissing returns the unseen trump cards outside the hand, the ones
// still to account for, descending.
func (p *PlayAnalysis) TrumpsMissing() []domain.Card {
	mine := make(map[domain.Card]bool)
	for _, c := range p.TrumpCards() {
		mine[c] = true
	}
	var missing []domain.Card
	for _, c := range p.TrumpsUnplayed() {
		if !mine[c] {
			missing = append(missing, c)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].EffLevel(p.ctx, false) > missing[j].EffLevel(p.ctx, false)
	})
	return missing
}
