package domain

import "fmt"

// Suit identifies one of the four suits. Bidding uses pseudo-suits, kept
// negative so they can never collide with real suit arithmetic.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	PassSuit   Suit = -1
	NullSuit   Suit = -2
	DefendSuit Suit = -3
)

// Suits lists the real suits in index order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

var (
	suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}
	suitTags  = [...]string{"C", "D", "H", "S"}
)

func (s Suit) Valid() bool { return s >= Clubs && s <= Spades }

// Next returns the same-color companion suit.
func (s Suit) Next() Suit {
	if !s.Valid() {
		panic(logicErrf("next suit undefined for %s", s))
	}
	return s ^ 0x03
}

// Green returns the two off-color suits.
func (s Suit) Green() [2]Suit {
	if !s.Valid() {
		panic(logicErrf("green suits undefined for %s", s))
	}
	return [2]Suit{s ^ 0x01, s ^ 0x02}
}

func (s Suit) String() string {
	switch s {
	case PassSuit:
		return "pass"
	case NullSuit:
		return "null"
	case DefendSuit:
		return "defend"
	}
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", int8(s))
	}
	return suitNames[s]
}

// Tag returns the one-letter suit abbreviation.
func (s Suit) Tag() string {
	if !s.Valid() {
		panic(logicErrf("no tag for %s", s))
	}
	return suitTags[s]
}

// Rank identifies a card rank. Left and Right are the bower ranks a jack
// assumes under trump; they never appear in a dealt pack.
type Rank int8

const (
	Nine Rank = iota
	Ten
	Jack
	Queen
	King
	Ace
	Left
	Right
)

// DealtRanks lists the ranks present in the pack, lowest first.
var DealtRanks = [...]Rank{Nine, Ten, Jack, Queen, King, Ace}

// AllRanks includes the bower ranks; its length is the offset that lifts
// trump levels above every plain suit.
var AllRanks = [...]Rank{Nine, Ten, Jack, Queen, King, Ace, Left, Right}

var (
	rankNames = [...]string{"nine", "ten", "jack", "queen", "king", "ace", "left bower", "right bower"}
	rankTags  = [...]string{"9", "10", "J", "Q", "K", "A", "L", "R"}
)

func (r Rank) Valid() bool { return r >= Nine && r <= Right }

// Level is the intra-suit strength, nine=1 through ace=6, left=7, right=8.
func (r Rank) Level() int {
	if !r.Valid() {
		panic(logicErrf("level undefined for %s", r))
	}
	return int(r) + 1
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rank(%d)", int8(r))
	}
	return rankNames[r]
}

// Tag returns the short rank abbreviation.
func (r Rank) Tag() string {
	if !r.Valid() {
		panic(logicErrf("no tag for %s", r))
	}
	return rankTags[r]
}

// Card is a value type; cards compare and hash by rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// Level is the trump-agnostic strength of the card.
func (c Card) Level() int { return c.Rank.Level() }

// SortKey orders cards suit-major, low ranks first.
func (c Card) SortKey() int {
	return int(c.Suit)*len(AllRanks) + int(c.Rank) + 1
}

func (c Card) String() string { return c.Rank.Tag() + c.Suit.Tag() }

// ParseCard reads a card from its tag form, e.g. "JD" or "10S". Bower
// ranks are not parseable; they exist only relative to a trump suit.
func ParseCard(tag string) (Card, error) {
	if len(tag) < 2 {
		return Card{}, fmt.Errorf("bad card tag '%s'", tag)
	}
	rankTag, suitTag := tag[:len(tag)-1], tag[len(tag)-1:]
	card := Card{Rank: -1, Suit: -1}
	for _, r := range DealtRanks {
		if rankTags[r] == rankTag {
			card.Rank = r
			break
		}
	}
	for _, s := range Suits {
		if suitTags[s] == suitTag {
			card.Suit = s
			break
		}
	}
	if card.Rank < 0 || card.Suit < 0 {
		return Card{}, fmt.Errorf("bad card tag '%s'", tag)
	}
	return card, nil
}

// FindBower returns the card a bower rank maps back to under the given
// trump suit.
func FindBower(r Rank, trump Suit) Card {
	switch r {
	case Right:
		return Card{Rank: Jack, Suit: trump}
	case Left:
		return Card{Rank: Jack, Suit: trump.Next()}
	}
	panic(logicErrf("%s is not a bower rank", r))
}
