package domain

// Ctx carries the trump suit and the lead card for trump-relative card
// operations. Trump is fixed at construction; the lead is set once per
// trick and cleared only by building a fresh context.
type Ctx struct {
	trump Suit
	lead  *Card
}

// NewCtx builds a context for the given trump suit.
func NewCtx(trump Suit) *Ctx {
	if !trump.Valid() {
		panic(logicErrf("cannot set trump to %s", trump))
	}
	return &Ctx{trump: trump}
}

func (x *Ctx) checkTrump() {
	if x == nil || !x.trump.Valid() {
		panic(logicErrf("trump suit not set"))
	}
}

// Trump returns the trump suit.
func (x *Ctx) Trump() Suit {
	x.checkTrump()
	return x.trump
}

// NextSuit is trump's same-color companion.
func (x *Ctx) NextSuit() Suit {
	return x.Trump().Next()
}

// GreenSuits are the two off-color suits relative to trump.
func (x *Ctx) GreenSuits() [2]Suit {
	return x.Trump().Green()
}

// SetLead records the card led to the current trick. Setting it twice is a
// contract violation.
func (x *Ctx) SetLead(card Card) {
	x.checkTrump()
	if x.lead != nil {
		panic(logicErrf("lead card already set to %s", *x.lead))
	}
	x.lead = &card
}

// HasLead reports whether a lead card has been recorded.
func (x *Ctx) HasLead() bool { return x != nil && x.lead != nil }

// Lead returns the card led to the current trick.
func (x *Ctx) Lead() Card {
	x.checkTrump()
	if x.lead == nil {
		panic(logicErrf("lead card not set"))
	}
	return *x.lead
}

// LeadSuit is the effective suit of the lead card.
func (x *Ctx) LeadSuit() Suit {
	lead := x.Lead()
	return lead.EffSuit(x)
}

// IsRight reports whether c is the jack of trump.
func (c Card) IsRight(ctx *Ctx) bool {
	trump := ctx.Trump()
	return c.Rank == Jack && c.Suit == trump
}

// IsLeft reports whether c is the jack of the next suit.
func (c Card) IsLeft(ctx *Ctx) bool {
	trump := ctx.Trump()
	return c.Rank == Jack && c.Suit == trump.Next()
}

// IsBower reports whether c is either bower under trump.
func (c Card) IsBower(ctx *Ctx) bool {
	return c.IsRight(ctx) || c.IsLeft(ctx)
}

// EffSuit returns the suit the card plays as, folding the left bower into
// trump.
func (c Card) EffSuit(ctx *Ctx) Suit {
	if c.IsLeft(ctx) {
		return ctx.Trump()
	}
	return c.Suit
}

// EffLevel is the card's strength under trump. Bowers report the bower
// levels; offsetTrump lifts every trump card above all plain-suit cards.
func (c Card) EffLevel(ctx *Ctx, offsetTrump bool) int {
	var lvl int
	switch {
	case c.IsRight(ctx):
		lvl = Right.Level()
	case c.IsLeft(ctx):
		lvl = Left.Level()
	default:
		lvl = c.Rank.Level()
	}
	if offsetTrump && c.EffSuit(ctx) == ctx.Trump() {
		lvl += len(AllRanks)
	}
	return lvl
}

// EffCard translates a trump-suit or next-suit jack into its bower form;
// all other cards pass through.
func (c Card) EffCard(ctx *Ctx) Card {
	switch {
	case c.IsRight(ctx):
		return Card{Rank: Right, Suit: ctx.Trump()}
	case c.IsLeft(ctx):
		return Card{Rank: Left, Suit: ctx.Trump()}
	}
	return c
}

// RealCard undoes bower translation back to the dealt jack.
func (c Card) RealCard(ctx *Ctx) Card {
	switch c.Rank {
	case Right, Left:
		return FindBower(c.Rank, ctx.Trump())
	}
	return c
}

// SameAs reports whether two cards are identical modulo bower translation.
func (c Card) SameAs(other Card, ctx *Ctx) bool {
	return c.EffCard(ctx) == other.EffCard(ctx)
}

// Beats reports whether c wins over other, with other already on the table.
// The result is undefined, and the call panics, when neither card follows
// the lead nor is trump.
func (c Card) Beats(other Card, ctx *Ctx) bool {
	lead := ctx.LeadSuit()
	cs, os := c.EffSuit(ctx), other.EffSuit(ctx)
	switch {
	case cs == os:
		return c.EffLevel(ctx, false) > other.EffLevel(ctx, false)
	case cs == ctx.Trump():
		return true
	case os == ctx.Trump():
		return false
	case cs == lead:
		return true
	case os == lead:
		return false
	}
	panic(logicErrf("cannot compare %s and %s, neither follows the lead nor is trump", c, other))
}
