package game

import (
	"euchre/internal/domain"
	"euchre/internal/strategy"
)

// DealPhase tracks the lifecycle of a deal.
type DealPhase int

const (
	PhaseNew DealPhase = iota
	PhaseBidding
	PhasePassed
	PhaseContract
	PhasePlaying
	PhaseScored
)

// DealResult flags how a played deal came out, from the caller's side
// except for the defend flags.
type DealResult struct {
	Made     bool
	AllFive  bool
	Euchred  bool
	GoAlone  bool
	DefAlone bool
}

// HandCards is the number of cards dealt to each seat.
const HandCards = 5

// Deal runs one deal from the shuffled deck through bidding, trick play,
// and scoring. Positions are deal-relative: 0 bids first, 3 is the
// dealer; teams are pos&0x01.
type Deal struct {
	players  [domain.NumPlayers]*Player
	deck     []domain.Card
	hands    [domain.NumPlayers]*domain.Hand
	turnCard domain.Card
	buries   []domain.Card

	bids      []domain.Bid
	contract  *domain.Bid
	callerPos int
	goAlone   bool
	defAlone  bool
	defPos    int
	discard   *domain.Card

	ctx    *domain.Ctx
	tricks []*domain.Trick

	tricksWon [2]int
	points    [2]int
	result    DealResult
	scored    bool

	states         [domain.NumPlayers]*domain.DealState
	playedBySuit   map[domain.Suit][]domain.Card
	unplayedBySuit map[domain.Suit]map[domain.Card]bool
}

// NewDeal seats the players around a shuffled deck. gameScore is the
// running game score by deal-relative team, surfaced to strategies.
func NewDeal(players [domain.NumPlayers]*Player, deck []domain.Card, gameScore [2]int) *Deal {
	d := &Deal{
		players:   players,
		deck:      deck,
		callerPos: -1,
		defPos:    -1,
	}
	for pos := range d.states {
		d.states[pos] = &domain.DealState{
			Pos:    pos,
			Points: gameScore,
			Player: domain.PlayerState{},
		}
	}
	return d
}

// state refreshes and returns the snapshot handed to the seat's strategy.
// The Player scratch map persists across calls for the whole deal.
func (d *Deal) state(pos int) *domain.DealState {
	ds := d.states[pos]
	ds.Hand = d.hands[pos]
	ds.TurnCard = &d.turnCard
	ds.Bids = d.bids
	ds.Tricks = d.tricks
	ds.Contract = d.contract
	ds.CallerPos = d.callerPos
	ds.GoAlone = d.goAlone
	ds.DefAlone = d.defAlone
	ds.DefPos = d.defPos
	ds.PlayedBySuit = d.playedBySuit
	ds.UnplayedBySuit = d.unplayedBySuit
	ds.TricksWon = d.tricksWon
	ds.Ctx = d.ctx
	return ds
}

// DealCards distributes the deck: five cards to each seat round-robin,
// the turn card, and the three buries.
func (d *Deal) DealCards() {
	if len(d.deck) != len(domain.Pack()) {
		panic(domain.LogicErrf("deck has %d cards", len(d.deck)))
	}
	dealt := domain.NumPlayers * HandCards
	for pos := 0; pos < domain.NumPlayers; pos++ {
		cards := make([]domain.Card, 0, HandCards)
		for i := pos; i < dealt; i += domain.NumPlayers {
			cards = append(cards, d.deck[i])
		}
		d.hands[pos] = domain.NewHand(cards)
	}
	d.turnCard = d.deck[dealt]
	d.buries = append(d.buries, d.deck[dealt+1:]...)
}

// IsPassed reports whether all eight bids declined the deal.
func (d *Deal) IsPassed() bool {
	return d.contract != nil && d.contract.Suit == domain.PassSuit
}

// DoBidding polls the seats in order: round 1 offers the turn suit only
// (the dealer picking up and discarding on a call), round 2 any other
// suit. A lone call then polls the opposing seats for a lone defense.
// Returns the contract, or a pass bid for a thrown-in deal.
func (d *Deal) DoBidding() domain.Bid {
	if d.hands[0] == nil {
		panic(domain.LogicErrf("bidding before cards are dealt"))
	}
	if d.contract != nil {
		panic(domain.LogicErrf("bidding already complete"))
	}

	// round 1
	for pos := 0; pos < domain.NumPlayers; pos++ {
		bid := d.players[pos].Strategy.Bid(d.state(pos), false)
		d.bids = append(d.bids, bid)
		if bid.IsPass(false) {
			continue
		}
		if bid.Suit != d.turnCard.Suit {
			panic(domain.ImplErrf("bad first round bid %s from %s", bid, d.players[pos]))
		}
		d.setContract(pos, bid)
		d.dealerPickup()
		break
	}

	if d.contract == nil {
		// turn it over
		d.buries = append(d.buries, d.turnCard)

		// round 2
		for pos := 0; pos < domain.NumPlayers; pos++ {
			bid := d.players[pos].Strategy.Bid(d.state(pos), false)
			d.bids = append(d.bids, bid)
			if bid.IsPass(false) {
				continue
			}
			if !bid.Suit.Valid() || bid.Suit == d.turnCard.Suit {
				panic(domain.ImplErrf("bad second round bid %s from %s", bid, d.players[pos]))
			}
			d.setContract(pos, bid)
			break
		}
	}

	if d.contract == nil {
		pass := domain.PassBid
		d.contract = &pass
		return pass
	}

	d.ctx = domain.NewCtx(d.contract.Suit)
	d.initCardTracking()

	if d.goAlone {
		d.pollDefenders()
	}
	return *d.contract
}

func (d *Deal) setContract(pos int, bid domain.Bid) {
	contract := domain.Bid{Suit: bid.Suit, Alone: bid.Alone}
	d.contract = &contract
	d.callerPos = pos
	d.goAlone = bid.Alone
}

// dealerPickup adds the turn card to the dealer's hand and buries the
// discard the dealer's strategy picks.
func (d *Deal) dealerPickup() {
	dealer := domain.DealerPos
	d.hands[dealer].Append(d.turnCard)
	discard := d.players[dealer].Strategy.Discard(d.state(dealer))
	if !d.hands[dealer].Contains(discard) {
		panic(domain.ImplErrf("bad discard %s from %s", discard, d.players[dealer]))
	}
	d.hands[dealer].Remove(discard)
	d.buries = append(d.buries, discard)
	d.discard = &discard
}

// pollDefenders asks the lone caller's opponents whether they defend
// alone. The caller's partner records a null placeholder without being
// polled; a declared lone defense cuts the poll short.
func (d *Deal) pollDefenders() {
	for i := 1; i < domain.NumPlayers; i++ {
		pos := (d.callerPos + i) % domain.NumPlayers
		var bid domain.Bid
		if pos == domain.Partner(d.callerPos) {
			bid = domain.NullBid
		} else {
			bid = d.players[pos].Strategy.Bid(d.state(pos), true)
		}
		d.bids = append(d.bids, bid)
		if bid.IsPass(true) {
			continue
		}
		if !bid.IsDefend() {
			panic(domain.ImplErrf("bad defender bid %s from %s", bid, d.players[pos]))
		}
		d.defAlone = bid.Alone
		d.defPos = pos
		if bid.Alone {
			break
		}
	}
}

func (d *Deal) initCardTracking() {
	d.playedBySuit = make(map[domain.Suit][]domain.Card, len(domain.Suits))
	d.unplayedBySuit = make(map[domain.Suit]map[domain.Card]bool, len(domain.Suits))
	for _, s := range domain.Suits {
		d.playedBySuit[s] = nil
		d.unplayedBySuit[s] = make(map[domain.Card]bool)
	}
	for _, c := range domain.Pack() {
		d.unplayedBySuit[c.EffSuit(d.ctx)][c] = true
	}
}

func (d *Deal) trackPlay(card domain.Card) {
	suit := card.EffSuit(d.ctx)
	d.playedBySuit[suit] = append(d.playedBySuit[suit], card)
	delete(d.unplayedBySuit[suit], card)
}

// sitsOut reports whether the seat's partner plays this deal alone.
func (d *Deal) sitsOut(pos int) bool {
	if d.goAlone && pos == domain.Partner(d.callerPos) {
		return true
	}
	return d.defAlone && pos == domain.Partner(d.defPos)
}

// PlayCards runs the five tricks and scores the deal. The winner of each
// trick leads the next; sit-out seats record nil plays.
func (d *Deal) PlayCards() {
	if d.contract == nil || d.IsPassed() {
		panic(domain.LogicErrf("no contract to play"))
	}
	if d.scored {
		panic(domain.LogicErrf("deal already played"))
	}

	leadPos := 0
	for trickNo := 0; trickNo < HandCards; trickNo++ {
		trick := domain.NewTrick(domain.NewCtx(d.contract.Suit))
		d.tricks = append(d.tricks, trick)
		for i := 0; i < domain.NumPlayers; i++ {
			pos := (leadPos + i) % domain.NumPlayers
			if d.sitsOut(pos) {
				trick.PlayCard(pos, nil)
				continue
			}
			valid := d.hands[pos].PlayableCards(trick)
			card := d.players[pos].Strategy.PlayCard(d.state(pos), trick, valid)
			if !d.hands[pos].Contains(card) || !d.hands[pos].CanPlay(card, trick) {
				panic(domain.ImplErrf("bad card %s played by %s", card, d.players[pos]))
			}
			d.hands[pos].Remove(card)
			trick.PlayCard(pos, &card)
			d.trackPlay(card)
		}
		winner := trick.WinningPos()
		d.tricksWon[domain.TeamIdx(winner)]++
		leadPos = winner
	}

	d.points, d.result = scoreDeal(d.tricksWon, domain.TeamIdx(d.callerPos), d.goAlone, d.defAlone)
	d.scored = true

	for pos, p := range d.players {
		p.Strategy.Notify(d.state(pos), strategy.DealComplete)
	}
}

// scoreDeal applies the scoring table: 1 for a simple make, 2 for a
// march, 4 for a lone march, 2 for a euchre, 4 for a lone defense that
// euchres.
func scoreDeal(tricksWon [2]int, callTeam int, goAlone, defAlone bool) ([2]int, DealResult) {
	defTeam := domain.OpposingTeam(callTeam)
	result := DealResult{GoAlone: goAlone, DefAlone: defAlone}
	var points [2]int

	switch {
	case tricksWon[callTeam] == HandCards:
		result.Made = true
		result.AllFive = true
		if goAlone {
			points[callTeam] = 4
		} else {
			points[callTeam] = 2
		}
	case tricksWon[callTeam] >= 3:
		result.Made = true
		points[callTeam] = 1
	default:
		result.Euchred = true
		if defAlone {
			points[defTeam] = 4
		} else {
			points[defTeam] = 2
		}
	}
	return points, result
}

// Phase reports where in its lifecycle the deal is.
func (d *Deal) Phase() DealPhase {
	switch {
	case len(d.bids) == 0:
		return PhaseNew
	case d.contract == nil:
		return PhaseBidding
	case d.IsPassed():
		return PhasePassed
	case len(d.tricks) == 0:
		return PhaseContract
	case !d.scored:
		return PhasePlaying
	}
	return PhaseScored
}

// TurnCard is the card turned for round-1 bidding.
func (d *Deal) TurnCard() domain.Card { return d.turnCard }

// Bids lists every bid polled, including defend placeholders.
func (d *Deal) Bids() []domain.Bid { return d.bids }

// Contract is the winning bid, nil before bidding completes.
func (d *Deal) Contract() *domain.Bid { return d.contract }

// CallerPos is the seat that called, -1 on a passed deal.
func (d *Deal) CallerPos() int { return d.callerPos }

// CallPos is the overall bid position of the call, 0-7 across both
// rounds.
func (d *Deal) CallPos() int {
	if d.contract == nil || d.IsPassed() {
		panic(domain.LogicErrf("no call to locate"))
	}
	if d.discard != nil {
		return d.callerPos
	}
	return d.callerPos + domain.NumPlayers
}

// TricksWon is the trick count by deal-relative team.
func (d *Deal) TricksWon() [2]int { return d.tricksWon }

// Points is the deal score by deal-relative team, zero until scored.
func (d *Deal) Points() [2]int { return d.points }

// Result reports the outcome flags of a scored deal.
func (d *Deal) Result() DealResult {
	if !d.scored {
		panic(domain.LogicErrf("deal not scored"))
	}
	return d.result
}
