package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"euchre/internal/analysis"
	"euchre/internal/config"
	"euchre/internal/domain"
	"euchre/internal/tournament"

	"github.com/heroiclabs/nakama-common/runtime"
)

type handStrengthRequest struct {
	Hand []string `json:"hand"`
}

type suitStrength struct {
	Suit     string  `json:"suit"`
	Strength float64 `json:"strength"`
}

type handStrengthResponse struct {
	Strengths []suitStrength `json:"strengths"`
	Best      suitStrength   `json:"best"`
}

// RpcHandStrengthFn scores a five-card hand for every candidate trump
// suit using the default smart analysis tables.
//
// Payload: {"hand": ["KD", "QD", "AC", "JD", "JH"]}
// Returns: per-suit strengths plus the strongest suit.
func RpcHandStrengthFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req handStrengthRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("bad payload: %w", err)
	}
	if len(req.Hand) != 5 {
		return "", fmt.Errorf("hand must contain 5 cards, got %d", len(req.Hand))
	}

	cards := make([]domain.Card, 0, len(req.Hand))
	for _, tag := range req.Hand {
		card, err := domain.ParseCard(tag)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}

	anl, err := analysis.NewSmartAnalysis(domain.NewHand(cards), analysis.DefaultSmartParams())
	if err != nil {
		return "", err
	}

	var resp handStrengthResponse
	for _, suit := range domain.Suits {
		entry := suitStrength{Suit: suit.String(), Strength: anl.HandStrength(suit)}
		resp.Strengths = append(resp.Strengths, entry)
		if entry.Strength > resp.Best.Strength {
			resp.Best = entry
		}
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type runTournamentRequest struct {
	Tournament string         `json:"tournament"`
	Params     map[string]any `json:"params"`
}

type runTournamentResponse struct {
	Winner      []string             `json:"winner"`
	Results     []string             `json:"results"`
	Leaderboard []tournament.LBEntry `json:"leaderboard"`
}

// RpcRunTournamentFn runs a tournament from the loaded configuration,
// with Elo ratings backed by Nakama storage.
//
// Payload: {"tournament": "demo_round_robin", "params": {...overrides}}
// Returns: winner, finishing order and the leaderboard.
func RpcRunTournamentFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req runTournamentRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("bad payload: %w", err)
	}
	if req.Tournament == "" {
		return "", fmt.Errorf("tournament name is required")
	}

	ratings := BindRatingStore(ctx, NewNakamaRatingStore(nk))
	tourn, err := tournament.New(req.Tournament, config.Default(), req.Params, ratings)
	if err != nil {
		logger.Error("RpcRunTournament: failed to build %s: %v", req.Tournament, err)
		return "", err
	}

	logger.Info("RpcRunTournament: running %s", req.Tournament)
	if err := tourn.Play(); err != nil {
		logger.Error("RpcRunTournament: %s failed: %v", req.Tournament, err)
		return "", err
	}

	resp := runTournamentResponse{
		Winner:      tourn.Winner(),
		Results:     tourn.Results(),
		Leaderboard: tourn.Leaderboard(),
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type teamRating struct {
	Team   string  `json:"team"`
	Rating float64 `json:"rating"`
}

// RpcEloRatingsFn returns every stored Elo rating, strongest first.
//
// Payload: unused.
// Returns: [{"team": ..., "rating": ...}, ...]
func RpcEloRatingsFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	rs := NewNakamaRatingStore(nk)
	teams, err := rs.RatedTeams(ctx)
	if err != nil {
		return "", err
	}

	ratings := make([]teamRating, 0, len(teams))
	for _, team := range teams {
		raw, found, err := rs.GetRating(ctx, team)
		if err != nil {
			return "", err
		}
		if !found {
			continue
		}
		var rating float64
		if err := json.Unmarshal(raw, &rating); err != nil {
			return "", fmt.Errorf("bad rating record for %s: %w", team, err)
		}
		ratings = append(ratings, teamRating{Team: team, Rating: rating})
	}
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].Team < ratings[j].Team
	})

	out, err := json.Marshal(ratings)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
