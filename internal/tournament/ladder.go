package tournament

import (
	"euchre/internal/game"
	"euchre/internal/store"
)

// ChallengeLadder ranks teams on a ladder and runs challenges from the
// bottom up: each rung challenges the one above it in a best-of series,
// swapping positions when the challenger wins. The ladder is seeded from
// current Elo ratings unless the config asks for roster order.
type ChallengeLadder struct {
	*base
	ladder  []string
	history [][]string
}

func NewChallengeLadder(name string, teams []*game.Team, params Params, ratings store.Store) (*ChallengeLadder, error) {
	b, err := newBase(name, teams, params, ratings)
	if err != nil {
		return nil, err
	}
	if b.params.RoundMatches <= 0 {
		b.params.RoundMatches = 1
	}
	cl := &ChallengeLadder{base: b}
	if params.Seeded || params.ResetElo {
		cl.ladder = append(cl.ladder, b.order...)
	} else {
		for _, tr := range b.standings.Ratings.Sorted() {
			cl.ladder = append(cl.ladder, tr.Name)
		}
	}
	cl.recordLadder()
	return cl, nil
}

func (cl *ChallengeLadder) recordLadder() {
	rungs := make([]string, len(cl.ladder))
	copy(rungs, cl.ladder)
	cl.history = append(cl.history, rungs)
}

func (cl *ChallengeLadder) Play() error {
	for pass := 0; pass < cl.params.Passes; pass++ {
		for round := 0; round < len(cl.ladder)-1; round++ {
			chal := len(cl.ladder) - round - 1
			roundStart := len(cl.passMatches)
			if cl.challenge(chal) {
				cl.ladder[chal], cl.ladder[chal-1] = cl.ladder[chal-1], cl.ladder[chal]
			}
			cl.endRound(roundStart)
		}
		cl.endPass()
		cl.recordLadder()
		cl.printf("Pass %d of %d complete\n", pass+1, cl.params.Passes)
	}

	cl.results = make([]string, len(cl.ladder))
	copy(cl.results, cl.ladder)
	cl.winner = []string{cl.ladder[0]}
	return cl.standings.Ratings.Persist()
}

// challenge runs the best-of series between the rung at chal and the one
// above it, reporting whether the challenger took the series.
func (cl *ChallengeLadder) challenge(chal int) bool {
	challenger, defender := cl.ladder[chal], cl.ladder[chal-1]
	var wins [2]int
	for wins[0] < cl.params.RoundMatches && wins[1] < cl.params.RoundMatches {
		result := cl.playMatch(challenger, defender)
		wins[result.Winner]++
	}
	return wins[0] > wins[1]
}

// Ladder reports the current rung order, top first.
func (cl *ChallengeLadder) Ladder() []string {
	rungs := make([]string, len(cl.ladder))
	copy(rungs, cl.ladder)
	return rungs
}

// History reports the ladder after each pass, starting with the seeding.
func (cl *ChallengeLadder) History() [][]string { return cl.history }

// Leaderboard ranks all teams by wins and Elo points, which may differ
// from the ladder order.
func (cl *ChallengeLadder) Leaderboard() []LBEntry {
	return cl.leaderboard(cl.order)
}
