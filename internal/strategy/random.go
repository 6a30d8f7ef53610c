package strategy

import (
	"math/rand"

	"euchre/internal/domain"
)

// RandomParams configure the random strategy; a fixed seed makes its whole
// decision stream reproducible.
type RandomParams struct {
	Seed int64 `yaml:"seed"`
}

// Random bids and plays by dice roll. It anchors the low end of strategy
// comparisons and exercises every engine path in testing.
type Random struct {
	rng *rand.Rand
}

func NewRandom(params RandomParams) *Random {
	return &Random{rng: rand.New(rand.NewSource(params.Seed))}
}

func (s *Random) Bid(deal *domain.DealState, defend bool) domain.Bid {
	if defend {
		alone := s.rng.Float64() < 0.10
		return domain.Bid{Suit: domain.DefendSuit, Alone: alone}
	}

	// Later seats bid with increasing probability; the last bid position
	// (8th) would bid at 1/1 if it ever came with a stick-the-dealer rule.
	bidNum := len(deal.Bids)
	if s.rng.Float64() >= 1/float64(9-bidNum) {
		return domain.PassBid
	}
	if deal.BidRound() == 1 {
		alone := s.rng.Float64() < 0.10
		return domain.Bid{Suit: deal.TurnCard.Suit, Alone: alone}
	}
	alone := s.rng.Float64() < 0.20
	biddable := make([]domain.Suit, 0, 3)
	for _, suit := range domain.Suits {
		if suit != deal.TurnCard.Suit {
			biddable = append(biddable, suit)
		}
	}
	return domain.Bid{Suit: biddable[s.rng.Intn(len(biddable))], Alone: alone}
}

func (s *Random) Discard(deal *domain.DealState) domain.Card {
	cards := deal.Hand.Cards()
	return cards[s.rng.Intn(len(cards))]
}

func (s *Random) PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card {
	return validPlays[s.rng.Intn(len(validPlays))]
}

func (s *Random) Notify(deal *domain.DealState, notice Notice) {}
