package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"euchre/internal/analysis"
	"euchre/internal/domain"
)

// PlayPlan tags persist in the seat's scratch state across tricks and
// steer tactic execution.
type PlayPlan string

const (
	DrawTrump     PlayPlan = "Draw_Trump"
	PreserveTrump PlayPlan = "Preserve_Trump"
)

// playCtx is built for every play decision: the deal context, the play
// analysis, and the persisted play plan.
type playCtx struct {
	deal  *domain.DealState
	trick *domain.Trick
	valid []domain.Card

	plan       map[PlayPlan]bool
	an         *analysis.PlayAnalysis
	trumpCards []domain.Card
	singletons []domain.Card
	rng        *rand.Rand
}

func newPlayCtx(deal *domain.DealState, trick *domain.Trick, valid []domain.Card, rng *rand.Rand) *playCtx {
	plan, ok := deal.Player["play_plan"].(map[PlayPlan]bool)
	if !ok {
		plan = make(map[PlayPlan]bool)
		deal.Player["play_plan"] = plan
	}
	an := analysis.NewPlayAnalysis(deal)
	return &playCtx{
		deal:       deal,
		trick:      trick,
		valid:      valid,
		plan:       plan,
		an:         an,
		trumpCards: an.TrumpCards(),
		singletons: an.SingletonCards(),
		rng:        rng,
	}
}

func (p *playCtx) choice(cards []domain.Card) *domain.Card {
	c := cards[p.rng.Intn(len(cards))]
	return &c
}

func ref(c domain.Card) *domain.Card { return &c }

// A tactic returns the card to play when it applies, nil to fall through
// to the next rule.
type tactic func(*playCtx) *domain.Card

var playTactics = map[string]tactic{
	"lead_last_card":           (*playCtx).leadLastCard,
	"next_call_lead":           (*playCtx).nextCallLead,
	"draw_trump":               (*playCtx).drawTrump,
	"lead_off_ace":             (*playCtx).leadOffAce,
	"lead_to_partner_call":     (*playCtx).leadToPartnerCall,
	"lead_to_create_void":      (*playCtx).leadToCreateVoid,
	"lead_suit_winner":         (*playCtx).leadSuitWinner,
	"lead_low_non_trump":       (*playCtx).leadLowNonTrump,
	"lead_low_from_long_suit":  (*playCtx).leadLowFromLongSuit,
	"lead_random_card":         (*playCtx).leadRandomCard,
	"play_last_card":           (*playCtx).playLastCard,
	"follow_suit_low":          (*playCtx).followSuitLow,
	"throw_off_to_create_void": (*playCtx).throwOffToCreateVoid,
	"throw_off_low":            (*playCtx).throwOffLow,
	"play_low_trump":           (*playCtx).playLowTrump,
	"follow_suit_high":         (*playCtx).followSuitHigh,
	"trump_low":                (*playCtx).trumpLow,
	"play_random_card":         (*playCtx).playRandomCard,
}

func resolveRuleset(name string, ruleNames []string) ([]tactic, error) {
	rules := make([]tactic, len(ruleNames))
	for i, rn := range ruleNames {
		rule, ok := playTactics[rn]
		if !ok {
			return nil, fmt.Errorf("unknown tactic %q in ruleset %q", rn, name)
		}
		rules[i] = rule
	}
	return rules, nil
}

// All other lead tactics degenerate into this for the final card.
func (p *playCtx) leadLastCard() *domain.Card {
	if p.deal.Hand.Len() == 1 {
		return ref(p.deal.Hand.Cards()[0])
	}
	return nil
}

// On a next call, hit partner's likely bower with a small trump, or lead
// the ace from a right-ace holding; with a weak trump top, try the long
// green suit instead.
func (p *playCtx) nextCallLead() *domain.Card {
	if !p.deal.IsNextCall() || len(p.trumpCards) == 0 {
		return nil
	}
	if len(p.an.Bowers()) == 0 {
		p.plan[PreserveTrump] = true
		return ref(p.trumpCards[len(p.trumpCards)-1])
	}
	if len(p.trumpCards) > 1 {
		if p.trumpCards[0].Rank == domain.Right && p.trumpCards[1].Rank == domain.Ace {
			p.plan[DrawTrump] = true
			return ref(p.trumpCards[1])
		}
		if p.trumpCards[0].Level() < domain.Ace.Level() {
			green := p.an.GreenSuitCards()
			if len(green[0]) > 0 {
				p.plan[DrawTrump] = true
				return ref(green[0][len(green[0])-1])
			}
		}
	}
	return nil
}

// Draw trump as the caller while opposing trump is outstanding.
func (p *playCtx) drawTrump() *domain.Card {
	if !p.deal.IsCaller() || len(p.an.TrumpsMissing()) == 0 {
		return nil
	}
	if p.plan[DrawTrump] {
		if len(p.trumpCards) > 2 {
			return ref(p.trumpCards[0])
		}
		if len(p.trumpCards) == 2 {
			delete(p.plan, DrawTrump)
			return ref(p.trumpCards[0])
		}
		return nil
	}
	if len(p.trumpCards) >= 3 {
		p.plan[DrawTrump] = true
		return ref(p.trumpCards[0])
	}
	return nil
}

func (p *playCtx) leadOffAce() *domain.Card {
	offAces := p.an.OffAces()
	switch len(offAces) {
	case 0:
		return nil
	case 1:
		return ref(offAces[0])
	}
	return p.choice(offAces)
}

// No trump seen yet with partner as caller: feed partner's call.
func (p *playCtx) leadToPartnerCall() *domain.Card {
	if !p.deal.IsPartnerCaller() {
		return nil
	}
	if len(p.trumpCards) == 0 || len(p.an.TrumpsPlayed()) > 0 {
		return nil
	}
	if len(p.an.Bowers()) > 0 {
		return ref(p.trumpCards[0])
	}
	if len(p.trumpCards) > 1 {
		return ref(p.trumpCards[len(p.trumpCards)-1])
	}
	if len(p.singletons) == 1 {
		return ref(p.singletons[0])
	}
	if len(p.singletons) > 1 {
		return p.choice(p.singletons)
	}
	return nil
}

func (p *playCtx) leadToCreateVoid() *domain.Card {
	if len(p.trumpCards) == 0 || len(p.singletons) == 0 {
		return nil
	}
	if len(p.singletons) == 1 {
		return ref(p.singletons[0])
	}
	return p.choice(p.singletons)
}

// Lead a sure winner: cheapest early in the deal, best later.
func (p *playCtx) leadSuitWinner() *domain.Card {
	winners := p.an.MyWinners()
	if len(winners) == 0 {
		return nil
	}
	if p.deal.TrickNum() <= 3 {
		return ref(winners[0])
	}
	return ref(winners[len(winners)-1])
}

func (p *playCtx) leadLowNonTrump() *domain.Card {
	if len(p.trumpCards) == 0 || len(p.trumpCards) >= p.deal.Hand.Len() {
		return nil
	}
	byLevel := p.an.CardsByLevel(true)
	return ref(byLevel[len(byLevel)-1])
}

// Always returns a card, so it can terminate a ruleset.
func (p *playCtx) leadLowFromLongSuit() *domain.Card {
	groups := sortSuitsByLength(p.an.SuitCards())
	return ref(groups[0][0])
}

// Always returns a card, so it can terminate a ruleset.
func (p *playCtx) leadRandomCard() *domain.Card {
	return p.choice(p.valid)
}

func (p *playCtx) playLastCard() *domain.Card {
	return p.leadLastCard()
}

func (p *playCtx) leadCard() *domain.Card {
	plays := p.trick.Plays()
	if len(plays) == 0 {
		return nil
	}
	return ref(plays[0].Card)
}

func (p *playCtx) followSuitLow() *domain.Card {
	lead := p.leadCard()
	if lead == nil {
		return nil
	}
	follow := p.an.FollowCards(*lead)
	if len(follow) == 0 {
		return nil
	}
	return ref(follow[len(follow)-1])
}

// Create a void while ducking; only matters when holding back trump.
func (p *playCtx) throwOffToCreateVoid() *domain.Card {
	if len(p.trumpCards) == 0 || len(p.singletons) == 0 {
		return nil
	}
	if len(p.singletons) == 1 {
		return ref(p.singletons[0])
	}
	singles := make([]domain.Card, len(p.singletons))
	copy(singles, p.singletons)
	ctx := p.trick.Ctx()
	sort.SliceStable(singles, func(i, j int) bool {
		return singles[i].EffLevel(ctx, false) > singles[j].EffLevel(ctx, false)
	})
	return ref(singles[len(singles)-1])
}

func (p *playCtx) throwOffLow() *domain.Card {
	if len(p.trumpCards) >= p.deal.Hand.Len() {
		return nil
	}
	byLevel := p.an.CardsByLevel(true)
	return ref(byLevel[len(byLevel)-1])
}

// Only trump remains.
func (p *playCtx) playLowTrump() *domain.Card {
	if len(p.trumpCards) == 0 || len(p.trumpCards) != p.deal.Hand.Len() {
		return nil
	}
	return ref(p.trumpCards[len(p.trumpCards)-1])
}

// Follow suit, high if that can take the trick, low otherwise.
func (p *playCtx) followSuitHigh() *domain.Card {
	lead := p.leadCard()
	if lead == nil {
		return nil
	}
	follow := p.an.FollowCards(*lead)
	if len(follow) == 0 {
		return nil
	}
	if p.deal.LeadTrumped() {
		return ref(follow[len(follow)-1])
	}
	if follow[0].Beats(*p.trick.WinningCard(), p.trick.Ctx()) {
		if p.deal.PlaySeq() == 3 {
			// Last to act, take the trick as cheaply as possible.
			for i := len(follow) - 1; i >= 0; i-- {
				if follow[i].Beats(*p.trick.WinningCard(), p.trick.Ctx()) {
					return ref(follow[i])
				}
			}
		}
		return ref(follow[0])
	}
	return ref(follow[len(follow)-1])
}

// Trump in to take the trick, keeping the boss trump back when possible.
func (p *playCtx) trumpLow() *domain.Card {
	if len(p.trumpCards) == 0 {
		return nil
	}
	if p.deal.LeadTrumped() {
		if !p.trumpCards[0].Beats(*p.trick.WinningCard(), p.trick.Ctx()) {
			return nil
		}
		if p.deal.PlaySeq() == 3 {
			for i := len(p.trumpCards) - 1; i >= 0; i-- {
				if p.trumpCards[i].Beats(*p.trick.WinningCard(), p.trick.Ctx()) {
					return ref(p.trumpCards[i])
				}
			}
		}
		return ref(p.trumpCards[0])
	}
	if len(p.trumpCards) > 1 {
		return ref(p.trumpCards[len(p.trumpCards)-1])
	}
	highTrump := p.an.SuitWinners()[p.an.Trump()]
	if highTrump == nil {
		panic(domain.LogicErrf("no outstanding trump while holding %s", p.trumpCards[0]))
	}
	if !p.trumpCards[0].SameAs(*highTrump, p.trick.Ctx()) {
		return ref(p.trumpCards[0])
	}
	return nil
}

// Always returns a card, so it can terminate a ruleset.
func (p *playCtx) playRandomCard() *domain.Card {
	return p.choice(p.valid)
}
