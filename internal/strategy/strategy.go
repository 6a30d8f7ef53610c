// Package strategy implements the pluggable seat strategies: bidding, the
// dealer discard, and trick play. Concrete strategies are instantiated by
// name from configuration through New.
package strategy

import "euchre/internal/domain"

// Notice informs a strategy of a deal milestone.
type Notice int

const (
	// DealComplete fires after scoring, before the next deal starts.
	DealComplete Notice = iota
)

func (n Notice) String() string {
	if n == DealComplete {
		return "deal complete"
	}
	return "unknown notice"
}

// Strategy decides bids, the dealer discard, and card plays for one seat.
// In PlayCard, jacks in validPlays keep their dealt form, and the returned
// card must too; implementations working in bower form translate back with
// RealCard.
type Strategy interface {
	// Bid is polled in bidding order; with defend set, the only question
	// is whether to defend alone against a lone caller.
	Bid(deal *domain.DealState, defend bool) domain.Bid
	// Discard picks the dealer's throwaway; the turn card has already
	// been added to the hand.
	Discard(deal *domain.DealState) domain.Card
	// PlayCard picks one of validPlays for the current trick.
	PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card
	// Notify reports deal milestones; most strategies ignore it.
	Notify(deal *domain.DealState, notice Notice)
}

func containsCard(cards []domain.Card, card domain.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
