package domain

// Seats are numbered from the dealer's left, so the dealer always sits at
// position 3 and partners differ by the 0x02 bit.
const DealerPos = 3

// Partner returns the seat across the table.
func Partner(pos int) int { return pos ^ 0x02 }

// TeamIdx maps a seat to its side, 0 or 1.
func TeamIdx(pos int) int { return pos & 0x01 }

// OpposingTeam flips a side index.
func OpposingTeam(team int) int { return team ^ 0x01 }

// PlayerState is per-strategy scratch storage; it survives across the
// calls a single seat receives within one deal.
type PlayerState map[string]any

// DealState is the snapshot of a deal as seen from one seat, handed to
// strategies for every decision. The engine shares its live structures
// here; strategies must treat everything but Player as read-only.
type DealState struct {
	Pos      int
	Hand     *Hand
	TurnCard *Card

	Bids    []Bid
	DefBids []Bid
	Tricks  []*Trick

	Contract  *Bid
	CallerPos int
	GoAlone   bool
	DefAlone  bool
	DefPos    int

	PlayedBySuit   map[Suit][]Card
	UnplayedBySuit map[Suit]map[Card]bool

	TricksWon [2]int
	Points    [2]int

	Player PlayerState

	// Ctx is nil until a contract is established.
	Ctx *Ctx
}

// BidRound is 1 while the turn suit is on offer, 2 afterward.
func (ds *DealState) BidRound() int {
	return len(ds.Bids)/NumPlayers + 1
}

// BidPos is the overall bidding position 0-7 across both rounds.
func (ds *DealState) BidPos() int {
	return ds.Pos + len(ds.Bids)/NumPlayers*NumPlayers
}

func (ds *DealState) IsDealer() bool { return ds.Pos == DealerPos }

func (ds *DealState) IsPartnerDealer() bool { return ds.Pos == Partner(DealerPos) }

func (ds *DealState) IsCaller() bool {
	return ds.Contract != nil && ds.Pos == ds.CallerPos
}

func (ds *DealState) IsPartnerCaller() bool {
	return ds.Contract != nil && Partner(ds.Pos) == ds.CallerPos
}

// IsNextCall reports a round-2 call of the turn card's companion suit from
// the first bid position, the classic "next" call.
func (ds *DealState) IsNextCall() bool {
	if ds.Contract == nil {
		panic(logicErrf("cannot call before playing phase"))
	}
	return ds.Contract.Suit == ds.TurnCard.Suit.Next() && len(ds.Bids) == 5
}

// IsReverseNext reports a round-2 call of an off-color suit from the
// second bid position.
func (ds *DealState) IsReverseNext() bool {
	if ds.Contract == nil {
		panic(logicErrf("cannot call before playing phase"))
	}
	green := ds.TurnCard.Suit.Green()
	return (ds.Contract.Suit == green[0] || ds.Contract.Suit == green[1]) &&
		len(ds.Bids) == 6
}

// MyTeam is the side index for this seat.
func (ds *DealState) MyTeam() int { return TeamIdx(ds.Pos) }

// CurTrick is the trick currently being played.
func (ds *DealState) CurTrick() *Trick {
	if len(ds.Tricks) == 0 {
		panic(logicErrf("no tricks started"))
	}
	return ds.Tricks[len(ds.Tricks)-1]
}

// TrickNum is 1-based, counting the current trick.
func (ds *DealState) TrickNum() int { return len(ds.Tricks) }

// PlaySeq is the number of cards already on the current trick.
func (ds *DealState) PlaySeq() int { return len(ds.CurTrick().Plays()) }

// PartnerWinning reports whether this seat's partner holds the current
// trick.
func (ds *DealState) PartnerWinning() bool {
	return ds.CurTrick().WinningPos() == Partner(ds.Pos)
}

// LeadTrumped reports whether the current trick's plain-suit lead has been
// trumped.
func (ds *DealState) LeadTrumped() bool { return ds.CurTrick().LeadTrumped() }

// MyTricksWon is the trick count for this seat's side.
func (ds *DealState) MyTricksWon() int { return ds.TricksWon[ds.MyTeam()] }

// MyPoints is the running game score for this seat's side.
func (ds *DealState) MyPoints() int { return ds.Points[ds.MyTeam()] }
