package game

import (
	"fmt"
	"io"
	"math/rand"

	"euchre/internal/domain"
)

// NumTeams is fixed for a single table.
const NumTeams = 2

// GamePoints is the score that ends a game.
const GamePoints = 10

// Game plays deals between two teams until one reaches GamePoints. The
// dealer rotates every deal; passed deals rotate without scoring.
type Game struct {
	teams [NumTeams]*Team
	rng   *rand.Rand

	deals  []*Deal
	score  [NumTeams]int
	stats  [NumTeams]*StatCounts
	winner int
}

// NewGame seats the teams with the given RNG driving the deck shuffles
// and the flip for deal.
func NewGame(teams [NumTeams]*Team, rng *rand.Rand) *Game {
	g := &Game{teams: teams, rng: rng, winner: -1}
	for i := range g.stats {
		g.stats[i] = &StatCounts{}
	}
	return g
}

// teamAt maps a seat to its team index; seats alternate teams.
func teamAt(seat int) int { return domain.TeamIdx(seat) }

// Play runs the game to completion.
func (g *Game) Play() {
	// seat order tm0-plA, tm1-plA, tm0-plB, tm1-plB, so partners face
	// each other and TeamIdx works on seat numbers
	var seats [domain.NumPlayers]*Player
	for n := 0; n < TeamPlayers; n++ {
		for i, t := range g.teams {
			seats[n*NumTeams+i] = t.Players[n]
		}
	}

	// flip for deal
	dealerSeat := g.rng.Intn(domain.NumPlayers)

	for g.score[0] < GamePoints && g.score[1] < GamePoints {
		bidderSeat := (dealerSeat + 1) % domain.NumPlayers

		// rotate so the seat left of the dealer bids first
		var players [domain.NumPlayers]*Player
		var gameScore [2]int
		for pos := 0; pos < domain.NumPlayers; pos++ {
			players[pos] = seats[(bidderSeat+pos)%domain.NumPlayers]
		}
		gameScore[0] = g.score[teamAt(bidderSeat)]
		gameScore[1] = g.score[teamAt(bidderSeat+1)]

		deal := NewDeal(players, domain.NewDeck(g.rng), gameScore)
		g.deals = append(g.deals, deal)

		deal.DealCards()
		deal.DoBidding()
		if !deal.IsPassed() {
			deal.PlayCards()
		}
		g.tabulate(deal, bidderSeat)

		dealerSeat = (dealerSeat + 1) % domain.NumPlayers
	}

	for i, score := range g.score {
		if score >= GamePoints {
			g.winner = i
			break
		}
	}
	if g.winner < 0 {
		panic(domain.LogicErrf("game over without a winner"))
	}
}

// tabulate folds one finished deal into the game score and stats.
// bidderSeat anchors the deal-relative positions back to seats.
func (g *Game) tabulate(deal *Deal, bidderSeat int) {
	// deal-relative team t sat at seats of global team:
	globalTeam := func(dealTeam int) int {
		return teamAt(bidderSeat + dealTeam)
	}

	if deal.IsPassed() {
		for t := 0; t < NumTeams; t++ {
			g.stats[t].Incr(DealsTotal, 0, 1)
			g.stats[t].Incr(DealsPassed, 0, 1)
		}
		return
	}

	points := deal.Points()
	tricksWon := deal.TricksWon()
	for dt := 0; dt < NumTeams; dt++ {
		gt := globalTeam(dt)
		g.score[gt] += points[dt]
		g.stats[gt].Incr(DealsTotal, 0, 1)
		g.stats[gt].Incr(DealsPlayed, 0, 1)
		g.stats[gt].Incr(Tricks, 0, tricksWon[dt])
		g.stats[gt].Incr(Points, 0, points[dt])
	}

	callTeam := globalTeam(domain.TeamIdx(deal.CallerPos()))
	defTeam := domain.OpposingTeam(callTeam)
	callPos := deal.CallPos()
	result := deal.Result()

	callIncr := func(stat GameStat) { g.stats[callTeam].Incr(stat, callPos, 1) }
	defIncr := func(stat GameStat) { g.stats[defTeam].Incr(stat, callPos, 1) }

	callIncr(Calls)
	defIncr(Defenses)

	if result.GoAlone {
		callIncr(LonersCalled)
		defIncr(DefLoners)
		if result.DefAlone {
			defIncr(DefAlones)
		}
	} else {
		callIncr(NLCalls)
	}

	if result.Made {
		callIncr(CallsMade)
		defIncr(DefLosses)
		if result.GoAlone {
			if result.AllFive {
				callIncr(CallsAllFive)
				callIncr(LonersMade)
				defIncr(DefLonerLosses)
				if result.DefAlone {
					defIncr(DefAloneLosses)
				}
			} else {
				callIncr(LonersFailed)
				defIncr(DefLonerStops)
				if result.DefAlone {
					defIncr(DefAloneStops)
				}
			}
		} else {
			callIncr(NLCallsMade)
			if result.AllFive {
				callIncr(CallsAllFive)
				callIncr(NLCallsAllFive)
			}
		}
	} else {
		callIncr(CallsEuchred)
		defIncr(DefEuchres)
		if result.GoAlone {
			callIncr(LonersEuchred)
			defIncr(DefLonerEuchres)
			if result.DefAlone {
				defIncr(DefAloneEuchres)
			}
		} else {
			callIncr(NLCallsEuchred)
		}
	}
}

// Teams returns the seated teams.
func (g *Game) Teams() [NumTeams]*Team { return g.teams }

// Score is the final (or running) game score by team.
func (g *Game) Score() [NumTeams]int { return g.score }

// Stats is the per-team stat tally.
func (g *Game) Stats() [NumTeams]*StatCounts { return g.stats }

// Deals lists the deals played, in order.
func (g *Game) Deals() []*Deal { return g.deals }

// Winner is the winning team index, -1 before the game ends.
func (g *Game) Winner() int { return g.winner }

// PrintScore writes the game score and winner.
func (g *Game) PrintScore(w io.Writer) {
	fmt.Fprintln(w, "Game Score:")
	for i, t := range g.teams {
		fmt.Fprintf(w, "  %s: %d\n", t.Name, g.score[i])
	}
	if g.winner >= 0 {
		fmt.Fprintf(w, "Game Winner:\n  %s\n", g.teams[g.winner])
	}
}

// PrintStats writes the full stat tally.
func (g *Game) PrintStats(w io.Writer) {
	fmt.Fprintln(w, "Game Stats:")
	for i, t := range g.teams {
		fmt.Fprintf(w, "  %s:\n", t.Name)
		for s := GameStat(0); s < NumGameStats; s++ {
			fmt.Fprintf(w, "    %-24s %8d\n", s.String()+":", g.stats[i].Counts[s])
		}
	}
}
