package analysis

import (
	"fmt"

	"euchre/internal/domain"
)

// ScoringCoeff weights the hand strength components. The coefficients need
// not sum to 100, but specifying them that way keeps the relative weights
// easy to read.
type ScoringCoeff struct {
	TrumpScore    float64 `yaml:"trump_score"`
	MaxSuitScore  float64 `yaml:"max_suit_score"`
	NumTrumpScore float64 `yaml:"num_trump_score"`
	OffAcesScore  float64 `yaml:"off_aces_score"`
	VoidsScore    float64 `yaml:"voids_score"`
}

// SmartParams configure the weighted hand scorer. The value tables are
// indexed by rank (trump values cover the bower slots; the jack slot is
// dead since jacks are promoted) or by count.
type SmartParams struct {
	TrumpValues    []float64    `yaml:"trump_values"`
	SuitValues     []float64    `yaml:"suit_values"`
	NumTrumpScores []float64    `yaml:"num_trump_scores"`
	OffAcesScores  []float64    `yaml:"off_aces_scores"`
	VoidsScores    []float64    `yaml:"voids_scores"`
	ScoringCoeff   ScoringCoeff `yaml:"scoring_coeff"`
}

// DefaultSmartParams returns the baseline scoring tables.
func DefaultSmartParams() SmartParams {
	return SmartParams{
		TrumpValues:    []float64{0, 0, 0, 1, 2, 4, 7, 10},
		SuitValues:     []float64{0, 0, 0, 1, 5, 10},
		NumTrumpScores: []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0},
		OffAcesScores:  []float64{0.0, 0.2, 0.5, 1.0},
		VoidsScores:    []float64{0.0, 0.3, 0.7, 1.0},
		ScoringCoeff: ScoringCoeff{
			TrumpScore:    40,
			MaxSuitScore:  10,
			NumTrumpScore: 20,
			OffAcesScore:  15,
			VoidsScore:    15,
		},
	}
}

// Validate checks the table lengths against their index domains.
func (p SmartParams) Validate() error {
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"trump_values", len(p.TrumpValues), len(domain.AllRanks)},
		{"suit_values", len(p.SuitValues), len(domain.DealtRanks)},
		{"num_trump_scores", len(p.NumTrumpScores), domain.HandSize + 1},
		{"off_aces_scores", len(p.OffAcesScores), 4},
		{"voids_scores", len(p.VoidsScores), 4},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%s has %d entries, want %d", c.name, c.got, c.want)
		}
	}
	return nil
}

// StrengthComp records one component's contribution to a hand strength
// score.
type StrengthComp struct {
	Name  string
	Raw   float64
	Coeff float64
	Value float64
}

// SmartAnalysis scores hands against candidate trump suits for bidding.
type SmartAnalysis struct {
	*HandAnalysis
	params SmartParams
}

// NewSmartAnalysis wraps the hand with the given scoring tables.
func NewSmartAnalysis(hand *domain.Hand, params SmartParams) (*SmartAnalysis, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis params: %w", err)
	}
	return &SmartAnalysis{HandAnalysis: NewHandAnalysis(hand), params: params}, nil
}

func (a *SmartAnalysis) Params() SmartParams { return a.params }

// SuitStrength is the holding's value in the suit, normalized to the total
// points available for it. Jacks are evaluated in bower form.
func (a *SmartAnalysis) SuitStrength(suit, trump domain.Suit) float64 {
	values := a.params.SuitValues
	if suit == trump {
		values = a.params.TrumpValues
	}
	var total, avail float64
	for _, v := range values {
		avail += v
	}
	for _, c := range a.SuitCards(trump)[suit] {
		total += values[c.Rank]
	}
	return total / avail
}

// HandStrength is the overall weighted score for the hand under the
// candidate trump suit.
func (a *SmartAnalysis) HandStrength(trump domain.Suit) float64 {
	strength, _ := a.HandStrengthDetail(trump)
	return strength
}

// HandStrengthDetail also reports the per-component contributions, in a
// stable order.
func (a *SmartAnalysis) HandStrengthDetail(trump domain.Suit) (float64, []StrengthComp) {
	var trumpScore float64
	maxSuitScore := 0.0
	for _, s := range domain.Suits {
		if s == trump {
			trumpScore = a.SuitStrength(s, trump)
			continue
		}
		if v := a.SuitStrength(s, trump); v > maxSuitScore {
			maxSuitScore = v
		}
	}

	numTrump := len(a.TrumpCards(trump))
	numTrumpScore := a.params.NumTrumpScores[numTrump]
	offAcesScore := a.params.OffAcesScores[len(a.OffAces(trump))]

	voids := 0
	for _, s := range a.Voids(trump) {
		if s != trump {
			voids++
		}
	}
	// Useful voids are capped by the trump count.
	voids = max(min(voids, numTrump-1), 0)
	voidsScore := a.params.VoidsScores[voids]

	coeff := a.params.ScoringCoeff
	comps := []StrengthComp{
		{Name: "trump_score", Raw: trumpScore, Coeff: coeff.TrumpScore},
		{Name: "max_suit_score", Raw: maxSuitScore, Coeff: coeff.MaxSuitScore},
		{Name: "num_trump_score", Raw: numTrumpScore, Coeff: coeff.NumTrumpScore},
		{Name: "off_aces_score", Raw: offAcesScore, Coeff: coeff.OffAcesScore},
		{Name: "voids_score", Raw: voidsScore, Coeff: coeff.VoidsScore},
	}
	var strength float64
	for i := range comps {
		comps[i].Value = comps[i].Raw * comps[i].Coeff
		strength += comps[i].Value
	}
	return strength, comps
}
