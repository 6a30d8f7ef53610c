package domain

import "fmt"

// Bid is a strategy's bidding decision. Pseudo-suits encode a pass, the
// placeholder recorded for a lone defender's partner, and defend-alone
// itself.
type Bid struct {
	Suit  Suit
	Alone bool
}

var (
	PassBid        = Bid{Suit: PassSuit}
	NullBid        = Bid{Suit: NullSuit}
	DefendAloneBid = Bid{Suit: DefendSuit, Alone: true}
)

// IsPass reports whether the bid declines to call; with includeNull, the
// partner placeholder counts as a pass too.
func (b Bid) IsPass(includeNull bool) bool {
	if includeNull {
		return b.Suit == PassSuit || b.Suit == NullSuit
	}
	return b.Suit == PassSuit
}

// IsDefend reports whether the bid declares a lone defense.
func (b Bid) IsDefend() bool { return b.Suit == DefendSuit }

func (b Bid) String() string {
	if b.Alone && b.Suit.Valid() {
		return fmt.Sprintf("%s alone", b.Suit)
	}
	return b.Suit.String()
}
