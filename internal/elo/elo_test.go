package elo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euchre/internal/store"
)

func newPool(t *testing.T, params Params, teams ...string) *Ratings {
	t.Helper()
	e, err := NewRatings(teams, params, nil)
	require.NoError(t, err)
	return e
}

func TestSequentialUpdate(t *testing.T) {
	e := newPool(t, Params{}, "Alpha", "Beta")
	e.UpdateSequential([]MatchResult{
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 1}, Winner: 0},
	})

	alpha, _ := e.Rating("Alpha")
	beta, _ := e.Rating("Beta")

	// equal inbound ratings: expected 0.5, winner gains K/2
	assert.InDelta(t, 1500+DefaultKFactor/2, alpha, 1e-9)
	assert.InDelta(t, 1500-DefaultKFactor/2, beta, 1e-9)
	assert.InDelta(t, 3000, alpha+beta, 1e-9, "ratings must stay zero-sum")
}

func TestSequentialChaining(t *testing.T) {
	e := newPool(t, Params{}, "Alpha", "Beta")
	matches := []MatchResult{
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 0}, Winner: 0},
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 0}, Winner: 0},
	}
	e.UpdateSequential(matches)

	// the second win is against an already-lowered Beta, so it pays less
	hist := e.History("Alpha")
	require.Len(t, hist, 3)
	first := *hist[1] - *hist[0]
	second := *hist[2] - *hist[1]
	assert.Less(t, second, first)
}

func TestCollectiveUpdate(t *testing.T) {
	e := newPool(t, Params{}, "Alpha", "Beta", "Gamma")
	matches := []MatchResult{
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 1}, Winner: 0},
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 1}, Winner: 0},
	}
	e.UpdateCollective(matches)

	alpha, _ := e.Rating("Alpha")
	beta, _ := e.Rating("Beta")

	// both matches priced at the batch-start ratings: two K/2 gains
	assert.InDelta(t, 1500+DefaultKFactor, alpha, 1e-9)
	assert.InDelta(t, 1500-DefaultKFactor, beta, 1e-9)

	t.Run("idle team gets nil history entry", func(t *testing.T) {
		gamma, _ := e.Rating("Gamma")
		assert.Equal(t, 1500.0, gamma)
		hist := e.History("Gamma")
		require.Len(t, hist, 2)
		assert.Nil(t, hist[1])
	})

	t.Run("diverges from sequential", func(t *testing.T) {
		seq := newPool(t, Params{}, "Alpha", "Beta")
		seq.UpdateSequential(matches)
		seqAlpha, _ := seq.Rating("Alpha")
		assert.Greater(t, alpha, seqAlpha,
			"collective repricing must not discount the repeat win")
	})
}

func TestMarginScoring(t *testing.T) {
	e := newPool(t, Params{UseMargin: true}, "Alpha", "Beta")
	e.UpdateSequential([]MatchResult{
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{2, 1}, Winner: 0},
	})
	alpha, _ := e.Rating("Alpha")
	// actual 2/3 against expected 1/2
	assert.InDelta(t, 1500+DefaultKFactor*(2.0/3.0-0.5), alpha, 1e-9)
}

func TestSortedOrder(t *testing.T) {
	e := newPool(t, Params{}, "Alpha", "Beta", "Gamma")
	e.UpdateSequential([]MatchResult{
		{Teams: [2]string{"Beta", "Gamma"}, Score: [2]int{2, 0}, Winner: 0},
	})
	sorted := e.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Beta", sorted[0].Name)
	assert.Equal(t, "Gamma", sorted[2].Name)
}

func TestPersistence(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Put("Alpha", json.RawMessage(`1600`)))

	e, err := NewRatings([]string{"Alpha", "Beta"}, Params{}, st)
	require.NoError(t, err)

	alpha, _ := e.Rating("Alpha")
	assert.Equal(t, 1600.0, alpha, "stored rating must be loaded")
	beta, _ := e.Rating("Beta")
	assert.Equal(t, 1500.0, beta, "unknown team starts at the initial rating")

	e.UpdateSequential([]MatchResult{
		{Teams: [2]string{"Alpha", "Beta"}, Score: [2]int{0, 2}, Winner: 1},
	})
	require.NoError(t, e.Persist())

	reloaded, err := NewRatings([]string{"Alpha"}, Params{}, st)
	require.NoError(t, err)
	stored, _ := reloaded.Rating("Alpha")
	assert.Less(t, stored, 1600.0)

	t.Run("reset ignores the store", func(t *testing.T) {
		fresh, err := NewRatings([]string{"Alpha"}, Params{ResetRatings: true}, st)
		require.NoError(t, err)
		r, _ := fresh.Rating("Alpha")
		assert.Equal(t, 1500.0, r)
	})
}
