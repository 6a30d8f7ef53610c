package tournament

import (
	"math"

	"euchre/internal/game"
	"euchre/internal/store"
)

// byeSlot marks the empty seat added to odd-sized fields.
const byeSlot = ""

// RoundRobin plays every remaining team against every other once per
// pass, scheduling rounds with the circle method. Odd team counts get a
// bye slot. With elim_pct set, the bottom of the leaderboard is cut
// every elim_passes passes until too few teams remain to cut.
type RoundRobin struct {
	*base
	active  []string
	elimNum int
}

func NewRoundRobin(name string, teams []*game.Team, params Params, ratings store.Store) (*RoundRobin, error) {
	b, err := newBase(name, teams, params, ratings)
	if err != nil {
		return nil, err
	}
	rr := &RoundRobin{base: b}
	rr.active = append(rr.active, b.order...)
	if params.ElimPct > 0 {
		rr.elimNum = int(math.Round(float64(len(b.order)) * float64(params.ElimPct) / 100))
		if rr.elimNum < 1 {
			rr.elimNum = 1
		}
		if params.ElimPasses <= 0 {
			rr.params.ElimPasses = 1
		}
	}
	return rr, nil
}

// matchups builds the full pass schedule: one shuffled field, first slot
// fixed, tail rotated between rounds.
func (rr *RoundRobin) matchups() [][][2]string {
	field := make([]string, len(rr.active))
	copy(field, rr.active)
	if len(field)%2 != 0 {
		field = append(field, byeSlot)
	}
	rr.rng.Shuffle(len(field), func(i, j int) {
		field[i], field[j] = field[j], field[i]
	})

	n := len(field) / 2
	rounds := make([][][2]string, 0, len(field)-1)
	for round := 0; round < len(field)-1; round++ {
		pairs := make([][2]string, 0, n)
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]string{field[i], field[len(field)-1-i]})
		}
		rounds = append(rounds, pairs)
		// rotate all but the fixed head
		tail := field[1:]
		last := tail[len(tail)-1]
		copy(tail[1:], tail[:len(tail)-1])
		tail[0] = last
	}
	return rounds
}

func (rr *RoundRobin) Play() error {
	for pass := 0; pass < rr.params.Passes; pass++ {
		for _, round := range rr.matchups() {
			roundStart := len(rr.passMatches)
			for _, pair := range round {
				if pair[0] == byeSlot || pair[1] == byeSlot {
					continue
				}
				rr.playMatch(pair[0], pair[1])
			}
			rr.endRound(roundStart)
		}
		rr.endPass()
		rr.printf("Pass %d of %d complete\n", pass+1, rr.params.Passes)

		if rr.elimNum > 0 &&
			(pass+1)%rr.params.ElimPasses == 0 &&
			len(rr.active) >= rr.elimNum*2 {
			rr.eliminate()
		}
	}

	final := rr.Leaderboard()
	rr.results = nil
	for _, row := range final {
		rr.results = append(rr.results, row.Team)
	}
	rr.winner = nil
	for _, row := range final {
		if row.Wins == final[0].Wins && row.EloPts == final[0].EloPts {
			rr.winner = append(rr.winner, row.Team)
		}
	}
	return rr.standings.Ratings.Persist()
}

// eliminate drops the bottom elimNum teams from the remaining field.
func (rr *RoundRobin) eliminate() {
	rows := rr.leaderboard(rr.active)
	cut := make(map[string]bool, rr.elimNum)
	for _, row := range rows[len(rows)-rr.elimNum:] {
		cut[row.Team] = true
		rr.printf("Eliminating %s\n", row.Team)
	}
	remaining := rr.active[:0]
	for _, name := range rr.active {
		if !cut[name] {
			remaining = append(remaining, name)
		}
	}
	rr.active = remaining
}

// Remaining lists the teams still in contention, in roster order.
func (rr *RoundRobin) Remaining() []string { return rr.active }

// Leaderboard ranks the teams still in contention.
func (rr *RoundRobin) Leaderboard() []LBEntry {
	return rr.leaderboard(rr.active)
}
