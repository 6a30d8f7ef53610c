// Package main provides the euchsim CLI for running euchre games,
// matches and tournaments from configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"euchre/internal/config"
	"euchre/internal/game"
	"euchre/internal/tournament"
)

// CLI flags
var (
	configPaths string
	profile     string
	tournName   string
	matchTeams  string
	gameTeams   string
	seed        int64
	showStats   bool
	csvPath     string
	csvPos      bool
	eloDB       string
	listNames   bool
)

func init() {
	flag.StringVar(&configPaths, "config", "", "Comma-separated config files (default: embedded base config)")
	flag.StringVar(&profile, "profile", "", "Config profile to activate")
	flag.StringVar(&tournName, "tournament", "", "Run the named tournament")
	flag.StringVar(&matchTeams, "match", "", "Run a match between two comma-separated team names")
	flag.StringVar(&gameTeams, "game", "", "Run a single game between two comma-separated team names")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.BoolVar(&showStats, "stats", false, "Print the full stats breakdown")
	flag.StringVar(&csvPath, "csv", "", "Write tournament stats to a CSV file")
	flag.BoolVar(&csvPos, "pos", false, "Break CSV stats out by call position")
	flag.StringVar(&eloDB, "elo-db", "", "Override the Elo ratings file")
	flag.BoolVar(&listNames, "list", false, "List configured teams and tournaments")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("euchsim: ")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch {
	case listNames:
		err = list(cfg)
	case tournName != "":
		err = runTournament(cfg)
	case matchTeams != "":
		err = runMatch(cfg, matchTeams, true)
	case gameTeams != "":
		err = runMatch(cfg, gameTeams, false)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	var paths []string
	if configPaths != "" {
		paths = strings.Split(configPaths, ",")
	}
	if err := config.LoadDefault(paths...); err != nil {
		return nil, err
	}
	cfg := config.Default()
	if profile != "" {
		if err := cfg.SetProfile(profile); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func list(cfg *config.Config) error {
	teams, err := cfg.TeamNames()
	if err != nil {
		return err
	}
	fmt.Println("Teams:")
	for _, name := range teams {
		fmt.Printf("  %s\n", name)
	}
	tourns, err := cfg.TournamentNames()
	if err != nil {
		return err
	}
	fmt.Println("Tournaments:")
	for _, name := range tourns {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func runTournament(cfg *config.Config) error {
	overrides := map[string]any{"seed": seed}
	if eloDB != "" {
		overrides["elo_db"] = eloDB
	}
	tourn, err := tournament.New(tournName, cfg, overrides, nil)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := tourn.Play(); err != nil {
		return err
	}
	fmt.Printf("Tournament %s finished in %v\n", tourn.Name(), time.Since(start).Round(time.Millisecond))

	tournament.PrintLeaderboard(os.Stdout, "Final", tourn.Leaderboard())
	fmt.Printf("Winner: %s\n", strings.Join(tourn.Winner(), ", "))

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := tournament.WriteCSV(f, tourn.Standings(), csvPos); err != nil {
			return err
		}
		fmt.Printf("Stats written to %s\n", csvPath)
	}
	return nil
}

func runMatch(cfg *config.Config, names string, fullMatch bool) error {
	parts := strings.Split(names, ",")
	if len(parts) != 2 {
		return fmt.Errorf("expected two comma-separated team names, got '%s'", names)
	}
	var teams [game.NumTeams]*game.Team
	for i, name := range parts {
		team, err := game.NewTeam(strings.TrimSpace(name), cfg)
		if err != nil {
			return err
		}
		teams[i] = team
	}

	rng := rand.New(rand.NewSource(seed))
	if fullMatch {
		match := game.NewMatch(teams, 0, rng)
		match.Play()
		match.PrintScore(os.Stdout)
		if showStats {
			match.PrintStats(os.Stdout)
		}
	} else {
		g := game.NewGame(teams, rng)
		g.Play()
		g.PrintScore(os.Stdout)
		if showStats {
			g.PrintStats(os.Stdout)
		}
	}
	return nil
}
