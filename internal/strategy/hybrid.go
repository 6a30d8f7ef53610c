package strategy

import "euchre/internal/domain"

// HybridParams name the configured strategies to delegate each aspect to.
// An empty discard strategy falls back to the bidding strategy.
type HybridParams struct {
	BidStrategy     string `yaml:"bid_strategy"`
	DiscardStrategy string `yaml:"discard_strategy"`
	PlayStrategy    string `yaml:"play_strategy"`
}

// Hybrid mixes other strategies: one for bidding, one for the discard,
// one for card play.
type Hybrid struct {
	bid     Strategy
	discard Strategy
	play    Strategy
}

// NewHybrid wires the delegates directly; a nil discard delegates to bid.
func NewHybrid(bid, discard, play Strategy) *Hybrid {
	if discard == nil {
		discard = bid
	}
	return &Hybrid{bid: bid, discard: discard, play: play}
}

func (s *Hybrid) Bid(deal *domain.DealState, defend bool) domain.Bid {
	return s.bid.Bid(deal, defend)
}

func (s *Hybrid) Discard(deal *domain.DealState) domain.Card {
	return s.discard.Discard(deal)
}

func (s *Hybrid) PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card {
	return s.play.PlayCard(deal, trick, validPlays)
}

func (s *Hybrid) Notify(deal *domain.DealState, notice Notice) {
	s.bid.Notify(deal, notice)
	if s.discard != s.bid {
		s.discard.Notify(deal, notice)
	}
	if s.play != s.bid && s.play != s.discard {
		s.play.Notify(deal, notice)
	}
}
