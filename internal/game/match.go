package game

import (
	"fmt"
	"io"
	"math/rand"

	"euchre/internal/domain"
)

// DefaultMatchGames is the number of game wins that takes a match.
const DefaultMatchGames = 2

// MatchCounts extends the summed game stats with match-level counters.
type MatchCounts struct {
	GamesPlayed int
	GamesWon    int
	StatCounts
}

// Match plays games between two teams until one wins matchGames of them.
type Match struct {
	teams      [NumTeams]*Team
	matchGames int
	rng        *rand.Rand

	games  []*Game
	score  [NumTeams]int
	stats  [NumTeams]*MatchCounts
	winner int
}

// NewMatch sets up a match; matchGames <= 0 selects the default.
func NewMatch(teams [NumTeams]*Team, matchGames int, rng *rand.Rand) *Match {
	if matchGames <= 0 {
		matchGames = DefaultMatchGames
	}
	m := &Match{teams: teams, matchGames: matchGames, rng: rng, winner: -1}
	for i := range m.stats {
		m.stats[i] = &MatchCounts{}
	}
	return m
}

// Play runs games until one team reaches the match total.
func (m *Match) Play() {
	for m.score[0] < m.matchGames && m.score[1] < m.matchGames {
		game := NewGame(m.teams, m.rng)
		m.games = append(m.games, game)
		game.Play()
		m.tabulate(game)
	}

	for i, score := range m.score {
		if score >= m.matchGames {
			m.winner = i
			break
		}
	}
	if m.winner < 0 {
		panic(domain.LogicErrf("match over without a winner"))
	}
}

func (m *Match) tabulate(game *Game) {
	for i := range m.teams {
		m.stats[i].GamesPlayed++
		if i == game.Winner() {
			m.score[i]++
			m.stats[i].GamesWon++
		}
		m.stats[i].Merge(game.Stats()[i])
	}
}

// Teams returns the seated teams.
func (m *Match) Teams() [NumTeams]*Team { return m.teams }

// Score is the match score in games by team.
func (m *Match) Score() [NumTeams]int { return m.score }

// Stats is the per-team tally across all games.
func (m *Match) Stats() [NumTeams]*MatchCounts { return m.stats }

// Games lists the games played, in order.
func (m *Match) Games() []*Game { return m.games }

// Winner is the winning team index, -1 before the match ends.
func (m *Match) Winner() int { return m.winner }

// PrintScore writes the match score and winner.
func (m *Match) PrintScore(w io.Writer) {
	fmt.Fprintln(w, "Match Score:")
	for i, t := range m.teams {
		fmt.Fprintf(w, "  %s: %d\n", t.Name, m.score[i])
	}
	if m.winner >= 0 {
		fmt.Fprintf(w, "Match Winner:\n  %s\n", m.teams[m.winner])
	}
}

// PrintStats writes the full stat tally.
func (m *Match) PrintStats(w io.Writer) {
	fmt.Fprintln(w, "Match Stats:")
	for i, t := range m.teams {
		fmt.Fprintf(w, "  %s:\n", t.Name)
		fmt.Fprintf(w, "    %-24s %8d\n", "Games Played:", m.stats[i].GamesPlayed)
		fmt.Fprintf(w, "    %-24s %8d\n", "Games Won:", m.stats[i].GamesWon)
		for s := GameStat(0); s < NumGameStats; s++ {
			fmt.Fprintf(w, "    %-24s %8d\n", s.String()+":", m.stats[i].Counts[s])
		}
	}
}
