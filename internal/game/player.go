// Package game runs the engine proper: deals, games to 10 points, and
// multi-game matches between two-player teams.
package game

import (
	"fmt"

	"euchre/internal/config"
	"euchre/internal/strategy"
)

// Player is one seated strategy.
type Player struct {
	Name     string
	Strategy strategy.Strategy
}

func NewPlayer(name string, strat strategy.Strategy) *Player {
	return &Player{Name: name, Strategy: strat}
}

func (p *Player) String() string { return p.Name }

// TeamPlayers is the number of players per team.
const TeamPlayers = 2

// MixedStrategy labels a team whose players run different strategies.
const MixedStrategy = "mixed strategy"

var playerIDs = [TeamPlayers]string{"Player A", "Player B"}

// Team is a partnership of two players. Teams built from configuration
// share one configured strategy; hand-assembled teams may mix.
type Team struct {
	Name string
	// StrategyName is the configured strategy name (or type) for
	// reporting, not the strategy instance itself.
	StrategyName string
	Players      [TeamPlayers]*Player
}

// NewTeam builds a configured team: both players get a fresh instance of
// the team's configured strategy.
func NewTeam(name string, cfg *config.Config) (*Team, error) {
	entry, err := cfg.Team(name)
	if err != nil {
		return nil, err
	}
	t := &Team{Name: name, StrategyName: entry.Strategy}
	for i, id := range playerIDs {
		strat, err := strategy.New(entry.Strategy, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build team '%s': %w", name, err)
		}
		t.Players[i] = NewPlayer(fmt.Sprintf("%s - %s", name, id), strat)
	}
	return t, nil
}

// NewTeamFromPlayers assembles a team from existing players; an empty name
// is generated from the player names.
func NewTeamFromPlayers(name string, players [TeamPlayers]*Player) *Team {
	if name == "" {
		name = players[0].Name + "/" + players[1].Name
	}
	strategyName := MixedStrategy
	if fmt.Sprintf("%T", players[0].Strategy) == fmt.Sprintf("%T", players[1].Strategy) {
		strategyName = fmt.Sprintf("%T", players[0].Strategy)
	}
	return &Team{Name: name, StrategyName: strategyName, Players: players}
}

func (t *Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.StrategyName)
}
