package game

import (
	"math/rand"
	"testing"

	"euchre/internal/config"
)

func testTeams(t *testing.T) [NumTeams]*Team {
	t.Helper()
	cfg, err := config.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadBytes([]byte(config.BaseConfig)); err != nil {
		t.Fatal(err)
	}
	var teams [NumTeams]*Team
	for i, name := range []string{"Random Team", "Simple Team"} {
		team, err := NewTeam(name, cfg)
		if err != nil {
			t.Fatal(err)
		}
		teams[i] = team
	}
	return teams
}

func TestTeamFromConfig(t *testing.T) {
	team := testTeams(t)[1]
	if team.StrategyName != "Simple" {
		t.Errorf("strategy name = %q, want Simple", team.StrategyName)
	}
	wantNames := []string{"Simple Team - Player A", "Simple Team - Player B"}
	for i, p := range team.Players {
		if p.Name != wantNames[i] {
			t.Errorf("player %d name = %q, want %q", i, p.Name, wantNames[i])
		}
	}

	t.Run("unknown team", func(t *testing.T) {
		cfg, err := config.New()
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.LoadBytes([]byte(config.BaseConfig)); err != nil {
			t.Fatal(err)
		}
		if _, err := NewTeam("No Such Team", cfg); err == nil {
			t.Error("unknown team must error")
		}
	})
}

func TestGamePlay(t *testing.T) {
	game := NewGame(testTeams(t), rand.New(rand.NewSource(3)))
	game.Play()

	if game.Winner() < 0 {
		t.Fatal("game finished without a winner")
	}
	score := game.Score()
	if score[game.Winner()] < GamePoints {
		t.Errorf("winner score = %d, want >= %d", score[game.Winner()], GamePoints)
	}
	loser := 1 - game.Winner()
	if score[loser] >= GamePoints {
		t.Errorf("loser score = %d, want < %d", score[loser], GamePoints)
	}

	stats := game.Stats()
	if stats[0].Counts[DealsTotal] != stats[1].Counts[DealsTotal] {
		t.Errorf("deal totals differ: %d vs %d",
			stats[0].Counts[DealsTotal], stats[1].Counts[DealsTotal])
	}
	for i, sc := range stats {
		if got := sc.Counts[CallsMade] + sc.Counts[CallsEuchred]; got != sc.Counts[Calls] {
			t.Errorf("team %d: made %d + euchred %d != calls %d",
				i, sc.Counts[CallsMade], sc.Counts[CallsEuchred], sc.Counts[Calls])
		}
		if got := sc.Counts[DealsPlayed] + sc.Counts[DealsPassed]; got != sc.Counts[DealsTotal] {
			t.Errorf("team %d: played %d + passed %d != total %d",
				i, sc.Counts[DealsPlayed], sc.Counts[DealsPassed], sc.Counts[DealsTotal])
		}
		if sc.Counts[Points] != score[i] {
			t.Errorf("team %d: points stat %d != score %d", i, sc.Counts[Points], score[i])
		}
		var posCalls int
		for _, n := range sc.PosCounts[Calls] {
			posCalls += n
		}
		if posCalls != sc.Counts[Calls] {
			t.Errorf("team %d: positional calls %d != calls %d", i, posCalls, sc.Counts[Calls])
		}
	}
	if stats[0].Counts[Calls]+stats[1].Counts[Calls] != stats[0].Counts[DealsPlayed] {
		t.Errorf("calls %d+%d != deals played %d",
			stats[0].Counts[Calls], stats[1].Counts[Calls], stats[0].Counts[DealsPlayed])
	}
}

func TestGameReproducible(t *testing.T) {
	run := func() [NumTeams]int {
		game := NewGame(testTeams(t), rand.New(rand.NewSource(11)))
		game.Play()
		return game.Score()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("seeded games diverge: %v vs %v", a, b)
	}
}

func TestMatchPlay(t *testing.T) {
	match := NewMatch(testTeams(t), 2, rand.New(rand.NewSource(5)))
	match.Play()

	if match.Winner() < 0 {
		t.Fatal("match finished without a winner")
	}
	score := match.Score()
	if score[match.Winner()] != 2 {
		t.Errorf("winner games = %d, want 2", score[match.Winner()])
	}

	stats := match.Stats()
	gamesPlayed := len(match.Games())
	for i, mc := range stats {
		if mc.GamesPlayed != gamesPlayed {
			t.Errorf("team %d games played = %d, want %d", i, mc.GamesPlayed, gamesPlayed)
		}
	}
	if stats[0].GamesWon+stats[1].GamesWon != gamesPlayed {
		t.Errorf("games won %d+%d != games played %d",
			stats[0].GamesWon, stats[1].GamesWon, gamesPlayed)
	}

	var summed [NumGameStats]int
	for _, g := range match.Games() {
		summed[DealsTotal] += g.Stats()[0].Counts[DealsTotal]
	}
	if stats[0].Counts[DealsTotal] != summed[DealsTotal] {
		t.Errorf("match deal total %d != summed game totals %d",
			stats[0].Counts[DealsTotal], summed[DealsTotal])
	}
}
