package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"euchre/internal/analysis"
	"euchre/internal/domain"
)

// SmartParams configure the rule-based strategy. The bid tables are
// indexed by overall bid position (0-7 across both rounds, higher for the
// defend poll); the turn card tables by rank and by seat.
type SmartParams struct {
	Seed int64 `yaml:"seed"`

	HandAnalysis *analysis.SmartParams `yaml:"hand_analysis"`

	TurnCardValue  []float64 `yaml:"turn_card_value"`
	TurnCardCoeff  []float64 `yaml:"turn_card_coeff"`
	BidThresh      []float64 `yaml:"bid_thresh"`
	AloneMargin    []float64 `yaml:"alone_margin"`
	DefAloneThresh []float64 `yaml:"def_alone_thresh"`

	InitLead    []string `yaml:"init_lead"`
	SubseqLead  []string `yaml:"subseq_lead"`
	PartWinning []string `yaml:"part_winning"`
	OppWinning  []string `yaml:"opp_winning"`
}

// DefaultSmartParams returns the baseline bidding tables and play
// rulesets.
func DefaultSmartParams() SmartParams {
	return SmartParams{
		TurnCardValue:  []float64{10, 15, 0, 20, 25, 30, 0, 50},
		TurnCardCoeff:  []float64{25, 25, 25, 25},
		BidThresh:      []float64{35, 35, 35, 35, 35, 35, 35, 35},
		AloneMargin:    []float64{10, 10, 10, 10, 10, 10, 10, 10},
		DefAloneThresh: []float64{35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35},
		InitLead: []string{
			"next_call_lead",
			"draw_trump",
			"lead_off_ace",
			"lead_to_partner_call",
			"lead_to_create_void",
			"lead_low_from_long_suit",
		},
		SubseqLead: []string{
			"lead_last_card",
			"draw_trump",
			"lead_to_partner_call",
			"lead_off_ace",
			"lead_suit_winner",
			"lead_to_create_void",
			"lead_low_non_trump",
			"lead_low_from_long_suit",
		},
		PartWinning: []string{
			"play_last_card",
			"follow_suit_low",
			"throw_off_to_create_void",
			"throw_off_low",
			"play_low_trump",
			"play_random_card",
		},
		OppWinning: []string{
			"play_last_card",
			"follow_suit_high",
			"trump_low",
			"throw_off_to_create_void",
			"throw_off_low",
			"play_random_card",
		},
	}
}

// Smart is the rule-based strategy: weighted hand strength scored against
// per-position thresholds for bidding, and ordered tactic rulesets for
// card play.
type Smart struct {
	params         SmartParams
	analysisParams analysis.SmartParams
	rng            *rand.Rand

	initLead    []tactic
	subseqLead  []tactic
	partWinning []tactic
	oppWinning  []tactic
}

// NewSmart validates the parameter tables and resolves the play rulesets.
// Empty tables and rulesets fall back to the defaults.
func NewSmart(params SmartParams) (*Smart, error) {
	def := DefaultSmartParams()
	fill := func(dst *[]float64, src []float64) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&params.TurnCardValue, def.TurnCardValue)
	fill(&params.TurnCardCoeff, def.TurnCardCoeff)
	fill(&params.BidThresh, def.BidThresh)
	fill(&params.AloneMargin, def.AloneMargin)
	fill(&params.DefAloneThresh, def.DefAloneThresh)
	if len(params.InitLead) == 0 {
		params.InitLead = def.InitLead
	}
	if len(params.SubseqLead) == 0 {
		params.SubseqLead = def.SubseqLead
	}
	if len(params.PartWinning) == 0 {
		params.PartWinning = def.PartWinning
	}
	if len(params.OppWinning) == 0 {
		params.OppWinning = def.OppWinning
	}

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"turn_card_value", len(params.TurnCardValue), len(domain.AllRanks)},
		{"turn_card_coeff", len(params.TurnCardCoeff), domain.NumPlayers},
		{"bid_thresh", len(params.BidThresh), 2 * domain.NumPlayers},
		{"alone_margin", len(params.AloneMargin), 2 * domain.NumPlayers},
		{"def_alone_thresh", len(params.DefAloneThresh), 11},
	}
	for _, c := range checks {
		if c.got != c.want {
			return nil, fmt.Errorf("%s has %d entries, want %d", c.name, c.got, c.want)
		}
	}

	analysisParams := analysis.DefaultSmartParams()
	if params.HandAnalysis != nil {
		analysisParams = *params.HandAnalysis
	}
	if err := analysisParams.Validate(); err != nil {
		return nil, fmt.Errorf("hand_analysis: %w", err)
	}

	s := &Smart{
		params:         params,
		analysisParams: analysisParams,
		rng:            rand.New(rand.NewSource(params.Seed)),
	}
	var err error
	if s.initLead, err = resolveRuleset("init_lead", params.InitLead); err != nil {
		return nil, err
	}
	if s.subseqLead, err = resolveRuleset("subseq_lead", params.SubseqLead); err != nil {
		return nil, err
	}
	if s.partWinning, err = resolveRuleset("part_winning", params.PartWinning); err != nil {
		return nil, err
	}
	if s.oppWinning, err = resolveRuleset("opp_winning", params.OppWinning); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Smart) analyze(hand *domain.Hand) *analysis.SmartAnalysis {
	sa, err := analysis.NewSmartAnalysis(hand, s.analysisParams)
	if err != nil {
		// params were validated at construction
		panic(domain.LogicErrf("analysis params invalidated: %v", err))
	}
	return sa
}

// turnStrength is the strength contribution of the turn card, scaled like
// the hand strength score. Positive when partner deals, negative when an
// opponent does; only meaningful for round-1 bidding from a non-dealer
// seat.
func (s *Smart) turnStrength(deal *domain.DealState, bidPos int) float64 {
	ctx := domain.NewCtx(deal.TurnCard.Suit)
	rank := deal.TurnCard.EffCard(ctx).Rank

	var avail float64
	for _, v := range s.params.TurnCardValue {
		avail += v
	}
	value := s.params.TurnCardValue[rank] / avail
	strength := value * s.params.TurnCardCoeff[bidPos]
	if deal.IsPartnerDealer() {
		return strength
	}
	return -strength
}

func (s *Smart) Bid(deal *domain.DealState, defend bool) domain.Bid {
	bidPos := deal.BidPos()
	turnSuit := deal.TurnCard.Suit

	if defend {
		if deal.IsPartnerCaller() {
			// shouldn't normally be polled, but just in case
			return domain.NullBid
		}
		strength := s.analyze(deal.Hand).HandStrength(deal.Contract.Suit)
		alone := strength > s.params.DefAloneThresh[bidPos]
		return domain.Bid{Suit: domain.DefendSuit, Alone: alone}
	}

	bidSuit := domain.PassSuit
	var strength, threshMargin float64

	if deal.BidRound() == 1 {
		if deal.IsDealer() {
			// Evaluate the pickup against every possible discard.
			best := domain.Card{}
			bestStrength := -1.0
			for _, card := range deal.Hand.Cards() {
				tmp := deal.Hand.Copy()
				tmp.Remove(card)
				tmp.Append(*deal.TurnCard)
				if v := s.analyze(tmp).HandStrength(turnSuit); v > bestStrength {
					best, bestStrength = card, v
				}
			}
			if bestStrength > s.params.BidThresh[bidPos] {
				strength = bestStrength
				threshMargin = strength - s.params.BidThresh[bidPos]
				bidSuit = turnSuit
				deal.Player["discard"] = best
			}
		} else {
			strength = s.analyze(deal.Hand).HandStrength(turnSuit)
			strength += s.turnStrength(deal, bidPos)
			if strength > s.params.BidThresh[bidPos] {
				threshMargin = strength - s.params.BidThresh[bidPos]
				bidSuit = turnSuit
			}
		}
	} else {
		sa := s.analyze(deal.Hand)
		for _, suit := range domain.Suits {
			if suit == turnSuit {
				continue
			}
			if v := sa.HandStrength(suit); v > s.params.BidThresh[bidPos] {
				strength = v
				threshMargin = v - s.params.BidThresh[bidPos]
				bidSuit = suit
				break
			}
		}
	}

	if bidSuit == domain.PassSuit {
		return domain.PassBid
	}
	deal.Player["strength"] = strength
	deal.Player["thresh_margin"] = threshMargin
	alone := threshMargin > s.params.AloneMargin[bidPos]
	return domain.Bid{Suit: bidSuit, Alone: alone}
}

func (s *Smart) Discard(deal *domain.DealState) domain.Card {
	if !deal.Hand.Contains(*deal.TurnCard) {
		panic(domain.LogicErrf("turn card %s not in hand for discard", *deal.TurnCard))
	}
	turnSuit := deal.TurnCard.Suit

	// The best discard may have been computed while bidding.
	if d, ok := deal.Player["discard"]; ok {
		discard := d.(domain.Card)
		if !deal.Hand.Contains(discard) {
			panic(domain.LogicErrf("%s not available to discard in hand (%s)", discard, deal.Hand))
		}
		return discard
	}

	best := domain.Card{}
	bestStrength := -1.0
	for _, card := range deal.Hand.Cards() {
		tmp := deal.Hand.Copy()
		tmp.Remove(card)
		if v := s.analyze(tmp).HandStrength(turnSuit); v > bestStrength {
			best, bestStrength = card, v
		}
	}
	return best
}

func (s *Smart) PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card {
	var rules []tactic
	if deal.PlaySeq() == 0 {
		if deal.TrickNum() == 1 {
			rules = s.initLead
		} else {
			rules = s.subseqLead
		}
	} else if deal.PartnerWinning() {
		rules = s.partWinning
	} else {
		rules = s.oppWinning
	}

	pc := newPlayCtx(deal, trick, validPlays, s.rng)
	for _, rule := range rules {
		if card := rule(pc); card != nil {
			return card.RealCard(trick.Ctx())
		}
	}
	panic(domain.LogicErrf("ruleset did not produce a card to play"))
}

func (s *Smart) Notify(deal *domain.DealState, notice Notice) {}

// sortSuitsByLength returns the suit groups in descending length, stable
// over suit order.
func sortSuitsByLength(suitCards map[domain.Suit][]domain.Card) [][]domain.Card {
	groups := make([][]domain.Card, 0, len(domain.Suits))
	for _, s := range domain.Suits {
		groups = append(groups, suitCards[s])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i]) > len(groups[j])
	})
	return groups
}
