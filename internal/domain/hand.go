package domain

import (
	"sort"
	"strings"
)

// Hand is the ordered set of cards held by one seat.
type Hand struct {
	cards []Card
}

// NewHand copies the given cards into a hand.
func NewHand(cards []Card) *Hand {
	h := &Hand{cards: make([]Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// Cards returns the backing slice; callers must not modify it.
func (h *Hand) Cards() []Card { return h.cards }

func (h *Hand) Len() int { return len(h.cards) }

// Copy returns an independent hand with the same cards.
func (h *Hand) Copy() *Hand { return NewHand(h.cards) }

// CopySorted returns an independent hand in sort-key order.
func (h *Hand) CopySorted() *Hand {
	c := h.Copy()
	SortCards(c.cards)
	return c
}

func (h *Hand) Contains(card Card) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Append adds a card to the hand.
func (h *Hand) Append(card Card) {
	h.cards = append(h.cards, card)
}

// Remove takes a card out of the hand; removing an absent card is a
// contract violation.
func (h *Hand) Remove(card Card) {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return
		}
	}
	panic(logicErrf("card %s not in hand %s", card, h))
}

// CardsBySuit groups the hand by effective suit, with an entry for every
// suit so voids show as empty slices. Groups are ordered by descending
// effective level. With useBowers, jacks are translated to their bower
// form.
func (h *Hand) CardsBySuit(ctx *Ctx, useBowers bool) map[Suit][]Card {
	bySuit := make(map[Suit][]Card, len(Suits))
	for _, s := range Suits {
		bySuit[s] = []Card{}
	}
	for _, c := range h.cards {
		card := c
		if useBowers {
			card = c.EffCard(ctx)
		}
		s := c.EffSuit(ctx)
		bySuit[s] = append(bySuit[s], card)
	}
	for _, s := range Suits {
		cards := bySuit[s]
		sort.Slice(cards, func(i, j int) bool {
			return cards[i].EffLevel(ctx, false) > cards[j].EffLevel(ctx, false)
		})
	}
	return bySuit
}

// CanPlay reports whether the card is a legal play to the trick: anything
// on a lead, otherwise the lead suit must be followed when possible.
func (h *Hand) CanPlay(card Card, trick *Trick) bool {
	if !h.Contains(card) {
		panic(logicErrf("card %s not in hand %s", card, h))
	}
	if !trick.Ctx().HasLead() {
		return true
	}
	leadSuit := trick.Ctx().LeadSuit()
	if card.EffSuit(trick.Ctx()) == leadSuit {
		return true
	}
	for _, c := range h.cards {
		if c.EffSuit(trick.Ctx()) == leadSuit {
			return false
		}
	}
	return true
}

// PlayableCards returns the legal plays for the trick, in hand order.
func (h *Hand) PlayableCards(trick *Trick) []Card {
	playable := make([]Card, 0, len(h.cards))
	for _, c := range h.cards {
		if h.CanPlay(c, trick) {
			playable = append(playable, c)
		}
	}
	return playable
}

func (h *Hand) String() string {
	tags := make([]string, len(h.cards))
	for i, c := range h.cards {
		tags[i] = c.String()
	}
	return strings.Join(tags, " ")
}
