package domain

// Play records one card placed on a trick by a seat.
type Play struct {
	Pos  int
	Card Card
}

// Trick tracks the plays to a single trick and the current winner. The
// first real card played becomes the lead for the trick's context.
type Trick struct {
	ctx         *Ctx
	plays       []Play
	cards       [NumPlayers]*Card
	played      [NumPlayers]bool
	winningCard *Card
	winningPos  int
}

// NewTrick starts an empty trick under the given trump context. The
// context must not carry a lead yet.
func NewTrick(ctx *Ctx) *Trick {
	ctx.checkTrump()
	if ctx.HasLead() {
		panic(logicErrf("context for a new trick already has lead %s", ctx.Lead()))
	}
	return &Trick{ctx: ctx, winningPos: -1}
}

func (t *Trick) Ctx() *Ctx { return t.ctx }

// Plays returns the real plays in order; sit-outs are not included.
func (t *Trick) Plays() []Play { return t.plays }

// CardAt returns the card a seat played, or nil for a sit-out or a seat
// that has not played yet.
func (t *Trick) CardAt(pos int) *Card { return t.cards[pos] }

// WinningCard is the strongest card played so far, nil on an empty trick.
func (t *Trick) WinningCard() *Card { return t.winningCard }

// WinningPos is the seat holding the trick, -1 on an empty trick.
func (t *Trick) WinningPos() int { return t.winningPos }

// PlayCard adds a card for the seat and reports whether it took the lead
// of the trick. A nil card records a sit-out, used for the partner of a
// lone caller. Playing twice from one seat is a contract violation.
func (t *Trick) PlayCard(pos int, card *Card) bool {
	if pos < 0 || pos >= NumPlayers {
		panic(logicErrf("invalid position %d", pos))
	}
	if t.played[pos] {
		panic(logicErrf("position %d played twice", pos))
	}
	t.played[pos] = true
	if card == nil {
		return false
	}
	c := *card
	t.plays = append(t.plays, Play{Pos: pos, Card: c})
	t.cards[pos] = &c
	if t.winningCard == nil {
		t.ctx.SetLead(c)
		t.winningCard = &c
		t.winningPos = pos
		return true
	}
	if c.Beats(*t.winningCard, t.ctx) {
		t.winningCard = &c
		t.winningPos = pos
		return true
	}
	return false
}

// LeadTrumped reports whether a plain-suit lead has been beaten by trump.
func (t *Trick) LeadTrumped() bool {
	if !t.ctx.HasLead() {
		return false
	}
	lead := t.ctx.Lead()
	if lead.EffSuit(t.ctx) == t.ctx.Trump() {
		return false
	}
	return t.winningCard.EffSuit(t.ctx) == t.ctx.Trump()
}
