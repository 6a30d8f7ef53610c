package strategy

import (
	"euchre/internal/analysis"
	"euchre/internal/domain"
)

// Aggressive play switches for the simple strategy; a bitfield so the
// behaviors combine.
const (
	// AggressiveThirdSeat plays high pre-emptively from the third seat
	// even when partner is winning.
	AggressiveThirdSeat = 0x01
	// AggressiveTakeHigh takes tricks high from the second or third seat
	// instead of with the cheapest winner.
	AggressiveTakeHigh = 0x02
)

// SimpleParams configure the simple strategy.
type SimpleParams struct {
	Aggressive int `yaml:"aggressive"`
}

// Simple is the minimum logic for passable play: trump-count bidding and
// duck-or-take trick play, with optional aggressive switches.
type Simple struct {
	aggressive int
}

func NewSimple(params SimpleParams) *Simple {
	return &Simple{aggressive: params.Aggressive}
}

func (s *Simple) Bid(deal *domain.DealState, defend bool) domain.Bid {
	an := analysis.NewHandAnalysis(deal.Hand)
	turnSuit := deal.TurnCard.Suit

	if defend {
		// Defend alone with four trump, or three trump and an off-ace.
		numTrump := len(an.TrumpCards(deal.Contract.Suit))
		offAces := an.OffAces(deal.Contract.Suit)
		alone := numTrump >= 4 || (numTrump == 3 && len(offAces) > 0)
		return domain.Bid{Suit: domain.DefendSuit, Alone: alone}
	}

	bidSuit := domain.PassSuit
	var numTrump, numBowers int
	var offAces []domain.Card

	if deal.BidRound() == 1 {
		numTrump = len(an.TrumpCards(turnSuit))
		offAces = an.OffAces(turnSuit)
		numBowers = len(an.Bowers(turnSuit))
		if deal.IsDealer() {
			// The turn card is ours after the pickup.
			numTrump++
			if deal.TurnCard.Rank == domain.Jack {
				numBowers++
			}
			if numTrump >= 2 && len(offAces) > 0 {
				bidSuit = turnSuit
			}
		} else if numTrump >= 3 && (len(offAces) > 0 || numBowers > 0) {
			bidSuit = turnSuit
		}
	} else {
		for _, suit := range domain.Suits {
			if suit == turnSuit {
				continue
			}
			numTrump = len(an.TrumpCards(suit))
			offAces = an.OffAces(suit)
			numBowers = len(an.Bowers(suit))
			if numTrump >= 3 && (len(offAces) > 0 || numBowers > 0) {
				bidSuit = suit
				break
			}
		}
	}

	if bidSuit == domain.PassSuit {
		return domain.PassBid
	}
	alone := (numTrump >= 4 && numBowers > 0) ||
		(numTrump == 3 && numBowers > 0 && len(offAces) > 0)
	return domain.Bid{Suit: bidSuit, Alone: alone}
}

func (s *Simple) Discard(deal *domain.DealState) domain.Card {
	an := analysis.NewPlayAnalysis(deal)
	byLevel := an.CardsByLevel(true)
	return byLevel[len(byLevel)-1]
}

func (s *Simple) PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card {
	an := analysis.NewPlayAnalysis(deal)
	byLevel := an.CardsByLevel(true)

	// Lead the highest card.
	if deal.PlaySeq() == 0 {
		for _, card := range byLevel {
			if containsCard(validPlays, card) {
				return card
			}
		}
		panic(domain.ImplErrf("no valid card to play"))
	}

	plays := trick.Plays()
	followCards := an.FollowCards(plays[0].Card)

	cards := followCards
	if len(cards) == 0 {
		cards = byLevel
	}

	if deal.PartnerWinning() {
		// Duck under partner, unless playing high from the third seat.
		if s.aggressive&AggressiveThirdSeat != 0 && deal.PlaySeq() == 2 {
			for _, card := range cards {
				if containsCard(validPlays, card) {
					return card
				}
			}
		} else {
			for i := len(cards) - 1; i >= 0; i-- {
				if containsCard(validPlays, cards[i]) {
					return cards[i]
				}
			}
		}
		panic(domain.ImplErrf("no valid card to play"))
	}

	// Opponents winning: take the trick if possible, low unless set to
	// take high from an early seat (the fourth seat always takes low).
	takeHigh := s.aggressive&AggressiveTakeHigh != 0 && deal.PlaySeq() < 3
	if takeHigh {
		for _, card := range cards {
			if containsCard(validPlays, card) && card.Beats(*trick.WinningCard(), trick.Ctx()) {
				return card
			}
		}
	} else {
		for i := len(cards) - 1; i >= 0; i-- {
			if containsCard(validPlays, cards[i]) && cards[i].Beats(*trick.WinningCard(), trick.Ctx()) {
				return cards[i]
			}
		}
	}
	// Can't take, so duck or slough off.
	for i := len(cards) - 1; i >= 0; i-- {
		if containsCard(validPlays, cards[i]) {
			return cards[i]
		}
	}
	panic(domain.ImplErrf("no valid card to play"))
}

func (s *Simple) Notify(deal *domain.DealState, notice Notice) {}
