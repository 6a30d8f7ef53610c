package domain

import (
	"math/rand"
	"sort"
)

const (
	// NumPlayers is fixed; euchre is a four-seat partnership game.
	NumPlayers = 4
	// HandSize cards per seat, leaving the turn card plus the buries.
	HandSize = 5
	// NumTricks per deal.
	NumTricks = 5
	// DeckSize is six ranks across four suits.
	DeckSize = 24
)

// Pack returns the full euchre pack in sort order, nine through ace of each
// suit.
func Pack() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range DealtRanks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// NewDeck returns a freshly shuffled pack using the caller's RNG, so deals
// are reproducible under a fixed seed.
func NewDeck(rng *rand.Rand) []Card {
	cards := Pack()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// SortCards orders cards in place by ascending sort key.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].SortKey() < cards[j].SortKey()
	})
}
