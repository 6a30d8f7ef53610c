// Package tournament runs multi-team competitions over the match engine:
// round robins with optional elimination, and challenge ladders. Elo
// ratings are updated per configured unit and persisted at the end.
package tournament

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"euchre/internal/config"
	"euchre/internal/elo"
	"euchre/internal/game"
	"euchre/internal/store"
)

// Format types recognized in the tournaments config section.
const (
	TypeRoundRobin      = "round_robin"
	TypeChallengeLadder = "challenge_ladder"
)

// Elo update units.
const (
	UpdateMatch = "match"
	UpdateRound = "round"
	UpdatePass  = "pass"
)

const DefaultEloDB = "elo_rating.json"

// Params configure a tournament; zero values select defaults. Formats
// ignore the knobs that do not apply to them.
type Params struct {
	MatchGames   int   `yaml:"match_games"`
	Passes       int   `yaml:"passes"`
	RoundMatches int   `yaml:"round_matches"`
	ElimPasses   int   `yaml:"elim_passes"`
	ElimPct      int   `yaml:"elim_pct"`
	Seeded       bool  `yaml:"seeded"`
	ResetElo     bool  `yaml:"reset_elo"`
	Seed         int64 `yaml:"seed"`

	EloUpdate string         `yaml:"elo_update"`
	EloDB     string         `yaml:"elo_db"`
	EloParams map[string]any `yaml:"elo_params"`

	// SnapshotDB, when set, receives a run-state snapshot after every
	// pass so an interrupted run can still be inspected.
	SnapshotDB string `yaml:"snapshot_db"`
}

// Format is a runnable tournament.
type Format interface {
	Name() string
	Play() error
	Winner() []string
	Results() []string
	Leaderboard() []LBEntry
	Standings() *Standings
}

// New instantiates the configured tournament by name. The optional
// overrides layer on top of base_tourn_params and the tournament's own
// tourn_params. A nil ratings store selects the elo_db file.
func New(name string, cfg *config.Config, overrides map[string]any, ratings store.Store) (Format, error) {
	entry, err := cfg.Tournament(name)
	if err != nil {
		return nil, err
	}
	baseParams, err := cfg.BaseTournParams()
	if err != nil {
		return nil, err
	}
	var params Params
	if err := config.DecodeParams(&params, baseParams, entry.Params, overrides); err != nil {
		return nil, fmt.Errorf("bad params for tournament '%s': %w", name, err)
	}
	if len(entry.Teams) < 2 {
		return nil, config.Errorf("tournament '%s' needs at least two teams", name)
	}

	teams := make([]*game.Team, 0, len(entry.Teams))
	for _, teamName := range entry.Teams {
		team, err := game.NewTeam(teamName, cfg)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	switch entry.TournType {
	case TypeRoundRobin:
		return NewRoundRobin(name, teams, params, ratings)
	case TypeChallengeLadder:
		return NewChallengeLadder(name, teams, params, ratings)
	}
	return nil, config.Errorf("unknown tourn_type '%s' for tournament '%s'", entry.TournType, name)
}

// TournCounts layers the match-play counters over the summed match stats.
type TournCounts struct {
	MatchesPlayed int
	MatchesWon    int
	game.MatchCounts
}

// TeamScore is the primary standing: match wins, plus fractional Elo
// points (game-score share per match) as the tiebreaker.
type TeamScore struct {
	Wins   int
	EloPts float64
}

// Standings is the shared tabulation state every format maintains.
type Standings struct {
	Order   []string
	Score   map[string]*TeamScore
	Stats   map[string]*TournCounts
	Ratings *elo.Ratings
}

// base is the shared runner embedded by the concrete formats.
type base struct {
	name   string
	teams  map[string]*game.Team
	order  []string
	params Params
	rng    *rand.Rand

	standings   Standings
	passMatches []elo.MatchResult
	snapshots   store.Store
	passesDone  int
	winner      []string
	results     []string
	out         io.Writer
}

func newBase(name string, teams []*game.Team, params Params, ratingStore store.Store) (*base, error) {
	if params.MatchGames <= 0 {
		params.MatchGames = game.DefaultMatchGames
	}
	if params.Passes <= 0 {
		params.Passes = 1
	}
	if params.EloUpdate == "" {
		params.EloUpdate = UpdatePass
	}
	switch params.EloUpdate {
	case UpdateMatch, UpdateRound, UpdatePass:
	default:
		return nil, config.Errorf("unknown elo_update unit '%s'", params.EloUpdate)
	}
	if params.EloDB == "" {
		params.EloDB = DefaultEloDB
	}
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	b := &base{
		name:   name,
		teams:  make(map[string]*game.Team, len(teams)),
		params: params,
		rng:    rand.New(rand.NewSource(params.Seed)),
		standings: Standings{
			Score: make(map[string]*TeamScore, len(teams)),
			Stats: make(map[string]*TournCounts, len(teams)),
		},
	}
	for _, t := range teams {
		if _, dup := b.teams[t.Name]; dup {
			return nil, config.Errorf("duplicate team '%s'", t.Name)
		}
		b.teams[t.Name] = t
		b.order = append(b.order, t.Name)
		b.standings.Score[t.Name] = &TeamScore{}
		b.standings.Stats[t.Name] = &TournCounts{}
	}
	if len(b.order) < 2 {
		return nil, config.Errorf("at least two teams must be specified")
	}
	b.standings.Order = b.order

	var eloParams elo.Params
	if err := config.DecodeParams(&eloParams, params.EloParams); err != nil {
		return nil, fmt.Errorf("bad elo_params: %w", err)
	}
	eloParams.ResetRatings = params.ResetElo
	if ratingStore == nil {
		ratingStore = store.NewFileStore(params.EloDB, false)
	}
	ratings, err := elo.NewRatings(b.order, eloParams, ratingStore)
	if err != nil {
		return nil, err
	}
	b.standings.Ratings = ratings
	if params.SnapshotDB != "" {
		b.snapshots = store.NewFileStore(params.SnapshotDB, true)
	}
	return b, nil
}

// SetSnapshotStore redirects per-pass run snapshots, replacing the
// snapshot_db file.
func (b *base) SetSnapshotStore(st store.Store) { b.snapshots = st }

func (b *base) Name() string          { return b.name }
func (b *base) Winner() []string      { return b.winner }
func (b *base) Results() []string     { return b.results }
func (b *base) Standings() *Standings { return &b.standings }

// SetOutput directs progress reporting; nil silences it.
func (b *base) SetOutput(w io.Writer) { b.out = w }

func (b *base) printf(format string, args ...any) {
	if b.out != nil {
		fmt.Fprintf(b.out, format, args...)
	}
}

// playMatch runs one match between the named teams and folds the result
// into the standings.
func (b *base) playMatch(home, away string) elo.MatchResult {
	match := game.NewMatch(
		[game.NumTeams]*game.Team{b.teams[home], b.teams[away]},
		b.params.MatchGames, b.rng)
	match.Play()

	names := [2]string{home, away}
	score := match.Score()
	total := float64(score[0] + score[1])
	for i, name := range names {
		stats := b.standings.Stats[name]
		stats.MatchesPlayed++
		stats.GamesPlayed += match.Stats()[i].GamesPlayed
		stats.GamesWon += match.Stats()[i].GamesWon
		stats.StatCounts.Merge(&match.Stats()[i].StatCounts)

		b.standings.Score[name].EloPts += float64(score[i]) / total
		if i == match.Winner() {
			stats.MatchesWon++
			b.standings.Score[name].Wins++
		}
	}

	result := elo.MatchResult{Teams: names, Score: score, Winner: match.Winner()}
	b.passMatches = append(b.passMatches, result)
	if b.params.EloUpdate == UpdateMatch {
		b.standings.Ratings.UpdateSequential([]elo.MatchResult{result})
	}
	return result
}

// endRound applies round-level Elo updates over the matches played since
// roundStart (an index into the current pass's matches).
func (b *base) endRound(roundStart int) {
	if b.params.EloUpdate == UpdateRound {
		b.standings.Ratings.UpdateCollective(b.passMatches[roundStart:])
	}
}

// endPass applies pass-level Elo updates, resets the pass match list and
// snapshots the run state.
func (b *base) endPass() {
	if b.params.EloUpdate == UpdatePass {
		b.standings.Ratings.UpdateCollective(b.passMatches)
	}
	b.passMatches = nil
	b.passesDone++
	if err := b.snapshot(); err != nil {
		b.printf("snapshot failed: %v\n", err)
	}
}

type runSnapshot struct {
	Tournament  string                  `json:"tournament"`
	PassesDone  int                     `json:"passes_done"`
	Leaderboard []LBEntry               `json:"leaderboard"`
	Ratings     []elo.TeamRating        `json:"ratings"`
	Stats       map[string]*TournCounts `json:"stats"`
}

// snapshot writes the current run state, keyed by tournament name. Races
// between concurrent runs are last-writer-wins, same as the rating store.
func (b *base) snapshot() error {
	if b.snapshots == nil {
		return nil
	}
	snap := runSnapshot{
		Tournament:  b.name,
		PassesDone:  b.passesDone,
		Leaderboard: b.leaderboard(b.order),
		Ratings:     b.standings.Ratings.Sorted(),
		Stats:       b.standings.Stats,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return b.snapshots.Put(b.name, raw)
}

// LBEntry is one leaderboard row.
type LBEntry struct {
	Team    string
	Matches int
	Wins    int
	Losses  int
	WinPct  float64
	EloPts  float64
	Rating  float64
}

// leaderboard computes rows for the given teams, ordered by wins with Elo
// points breaking ties.
func (b *base) leaderboard(teams []string) []LBEntry {
	rows := make([]LBEntry, 0, len(teams))
	for _, name := range teams {
		stats := b.standings.Stats[name]
		score := b.standings.Score[name]
		row := LBEntry{
			Team:    name,
			Matches: stats.MatchesPlayed,
			Wins:    score.Wins,
			Losses:  stats.MatchesPlayed - score.Wins,
			EloPts:  score.EloPts,
		}
		if row.Matches > 0 {
			row.WinPct = float64(row.Wins) / float64(row.Matches) * 100
		}
		if rating, ok := b.standings.Ratings.Rating(name); ok {
			row.Rating = rating
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].EloPts > rows[j].EloPts
	})
	return rows
}

// PrintLeaderboard writes the current leaderboard.
func PrintLeaderboard(w io.Writer, label string, rows []LBEntry) {
	if label != "" {
		label += " "
	}
	fmt.Fprintf(w, "%sLeaderboard:\n", label)
	fmt.Fprintf(w, "  %-24s %8s %8s %8s %8s %10s\n",
		"Team", "Wins", "Losses", "Win %", "Elo Pts", "Elo Rating")
	for _, row := range rows {
		fmt.Fprintf(w, "  %-24s %8d %8d %8.1f %8.2f %10.1f\n",
			row.Team, row.Wins, row.Losses, row.WinPct, row.EloPts, row.Rating)
	}
}
