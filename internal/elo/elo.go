// Package elo maintains Elo ratings for teams across tournament play.
package elo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"euchre/internal/store"
)

const (
	DefaultInitRating = 1500.0
	DefaultDValue     = 400.0
	DefaultKFactor    = 24.0
)

// Params configure a rating pool; zero values select the defaults.
type Params struct {
	ResetRatings bool    `yaml:"reset_ratings"`
	UseMargin    bool    `yaml:"use_margin"`
	InitRating   float64 `yaml:"init_rating"`
	DValue       float64 `yaml:"d_value"`
	KFactor      float64 `yaml:"k_factor"`
}

// MatchResult is the slice of a match the rating math needs.
type MatchResult struct {
	Teams  [2]string
	Score  [2]int
	Winner int
}

// TeamRating pairs a team with its current rating.
type TeamRating struct {
	Name   string
	Rating float64
}

// Ratings is a pool of team ratings with per-update history. Updates are
// in-memory until Persist.
type Ratings struct {
	params  Params
	store   store.Store
	ratings map[string]float64
	// one entry per update; nil marks an update the team sat out
	history map[string][]*float64
}

// NewRatings seeds the pool for the given teams, loading stored ratings
// unless a reset is requested.
func NewRatings(teams []string, params Params, st store.Store) (*Ratings, error) {
	if params.InitRating == 0 {
		params.InitRating = DefaultInitRating
	}
	if params.DValue == 0 {
		params.DValue = DefaultDValue
	}
	if params.KFactor == 0 {
		params.KFactor = DefaultKFactor
	}

	e := &Ratings{
		params:  params,
		store:   st,
		ratings: make(map[string]float64, len(teams)),
		history: make(map[string][]*float64, len(teams)),
	}
	for _, name := range teams {
		rating := params.InitRating
		if !params.ResetRatings && st != nil {
			stored, ok, err := st.Get(name)
			if err != nil {
				return nil, fmt.Errorf("failed to load rating for '%s': %w", name, err)
			}
			if ok {
				if err := json.Unmarshal(stored, &rating); err != nil {
					return nil, fmt.Errorf("bad stored rating for '%s': %w", name, err)
				}
			}
		}
		e.ratings[name] = rating
		seed := rating
		e.history[name] = []*float64{&seed}
	}
	return e, nil
}

// Rating returns the current rating for a team.
func (e *Ratings) Rating(name string) (float64, bool) {
	r, ok := e.ratings[name]
	return r, ok
}

// History returns the rating after each update; nil entries mark updates
// the team did not play in.
func (e *Ratings) History(name string) []*float64 {
	return e.history[name]
}

// Sorted returns the pool ordered by rating, best first.
func (e *Ratings) Sorted() []TeamRating {
	out := make([]TeamRating, 0, len(e.ratings))
	for name, rating := range e.ratings {
		out = append(out, TeamRating{Name: name, Rating: rating})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (e *Ratings) check(name string) {
	if _, ok := e.ratings[name]; !ok {
		panic(fmt.Sprintf("team '%s' not in rating pool", name))
	}
}

// actualScore is 0-1 from the losing side's perspective per team.
func (e *Ratings) actualScore(m MatchResult, i int) float64 {
	if e.params.UseMargin {
		return float64(m.Score[i]) / float64(m.Score[0]+m.Score[1])
	}
	if m.Winner == i {
		return 1
	}
	return 0
}

// UpdateSequential applies the matches one at a time, each seeing the
// ratings as updated by the previous. The right mode when no team plays
// twice within the batch.
func (e *Ratings) UpdateSequential(matches []MatchResult) {
	for _, m := range matches {
		var q [2]float64
		for i, name := range m.Teams {
			e.check(name)
			q[i] = math.Pow(10, e.ratings[name]/e.params.DValue)
		}
		for i, name := range m.Teams {
			expected := q[i] / (q[0] + q[1])
			delta := e.params.KFactor * (e.actualScore(m, i) - expected)
			e.ratings[name] += delta
			updated := e.ratings[name]
			e.history[name] = append(e.history[name], &updated)
		}
	}
}

// UpdateCollective sums expected and actual scores against the batch-start
// ratings and applies one delta per team. Teams in the pool that played no
// match get a nil history entry.
func (e *Ratings) UpdateCollective(matches []MatchResult) {
	active := make(map[string]bool)
	expected := make(map[string]float64)
	actual := make(map[string]float64)

	for _, m := range matches {
		var q [2]float64
		for i, name := range m.Teams {
			e.check(name)
			active[name] = true
			q[i] = math.Pow(10, e.ratings[name]/e.params.DValue)
		}
		for i, name := range m.Teams {
			expected[name] += q[i] / (q[0] + q[1])
			actual[name] += e.actualScore(m, i)
		}
	}

	for name := range e.ratings {
		if !active[name] {
			e.history[name] = append(e.history[name], nil)
			continue
		}
		delta := e.params.KFactor * (actual[name] - expected[name])
		e.ratings[name] += delta
		updated := e.ratings[name]
		e.history[name] = append(e.history[name], &updated)
	}
}

// Persist writes the current ratings back to the store, overwriting the
// stored values for this pool's teams only.
func (e *Ratings) Persist() error {
	if e.store == nil {
		return fmt.Errorf("no rating store configured")
	}
	for name, rating := range e.ratings {
		value, err := json.Marshal(rating)
		if err != nil {
			return fmt.Errorf("failed to marshal rating for '%s': %w", name, err)
		}
		if err := e.store.Put(name, value); err != nil {
			return fmt.Errorf("failed to persist rating for '%s': %w", name, err)
		}
	}
	return nil
}
