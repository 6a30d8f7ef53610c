package game

import (
	"math/rand"
	"testing"

	"euchre/internal/domain"
	"euchre/internal/strategy"
)

func randomPlayers(t *testing.T, seed int64) [domain.NumPlayers]*Player {
	t.Helper()
	var players [domain.NumPlayers]*Player
	for i := range players {
		s := strategy.NewRandom(strategy.RandomParams{Seed: seed + int64(i)})
		players[i] = NewPlayer(string(rune('A'+i)), s)
	}
	return players
}

func TestDealCardsPartition(t *testing.T) {
	deal := NewDeal(randomPlayers(t, 1), domain.NewDeck(rand.New(rand.NewSource(1))), [2]int{})
	deal.DealCards()

	seen := make(map[domain.Card]int)
	for _, h := range deal.hands {
		if h.Len() != HandCards {
			t.Fatalf("hand has %d cards, want %d", h.Len(), HandCards)
		}
		for _, c := range h.Cards() {
			seen[c]++
		}
	}
	seen[deal.TurnCard()]++
	if len(deal.buries) != 3 {
		t.Fatalf("buries = %d, want 3", len(deal.buries))
	}
	for _, c := range deal.buries {
		seen[c]++
	}
	if len(seen) != len(domain.Pack()) {
		t.Fatalf("deal covers %d distinct cards, want %d", len(seen), len(domain.Pack()))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("card %s dealt %d times", c, n)
		}
	}
}

func TestScoreDeal(t *testing.T) {
	tests := []struct {
		name       string
		tricksWon  [2]int
		callTeam   int
		goAlone    bool
		defAlone   bool
		wantPoints [2]int
		want       DealResult
	}{
		{
			name:       "simple make",
			tricksWon:  [2]int{3, 2},
			wantPoints: [2]int{1, 0},
			want:       DealResult{Made: true},
		},
		{
			name:       "march",
			tricksWon:  [2]int{5, 0},
			wantPoints: [2]int{2, 0},
			want:       DealResult{Made: true, AllFive: true},
		},
		{
			name:       "lone march",
			tricksWon:  [2]int{5, 0},
			goAlone:    true,
			wantPoints: [2]int{4, 0},
			want:       DealResult{Made: true, AllFive: true, GoAlone: true},
		},
		{
			name:       "loner stopped short",
			tricksWon:  [2]int{4, 1},
			goAlone:    true,
			wantPoints: [2]int{1, 0},
			want:       DealResult{Made: true, GoAlone: true},
		},
		{
			name:       "euchre",
			tricksWon:  [2]int{2, 3},
			wantPoints: [2]int{0, 2},
			want:       DealResult{Euchred: true},
		},
		{
			name:       "lone defense euchre",
			tricksWon:  [2]int{1, 4},
			goAlone:    true,
			defAlone:   true,
			wantPoints: [2]int{0, 4},
			want:       DealResult{Euchred: true, GoAlone: true, DefAlone: true},
		},
		{
			name:       "second team calls and makes",
			tricksWon:  [2]int{1, 4},
			callTeam:   1,
			wantPoints: [2]int{0, 1},
			want:       DealResult{Made: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, result := scoreDeal(tt.tricksWon, tt.callTeam, tt.goAlone, tt.defAlone)
			if points != tt.wantPoints {
				t.Errorf("points = %v, want %v", points, tt.wantPoints)
			}
			if result != tt.want {
				t.Errorf("result = %+v, want %+v", result, tt.want)
			}
		})
	}
}

// loneCaller orders up alone from the first seat and plays mechanically.
type loneCaller struct{}

func (loneCaller) Bid(deal *domain.DealState, defend bool) domain.Bid {
	if defend {
		return domain.Bid{Suit: domain.DefendSuit}
	}
	if deal.Pos == 0 && deal.BidRound() == 1 {
		return domain.Bid{Suit: deal.TurnCard.Suit, Alone: true}
	}
	return domain.PassBid
}

func (loneCaller) Discard(deal *domain.DealState) domain.Card {
	return deal.Hand.Cards()[0]
}

func (loneCaller) PlayCard(deal *domain.DealState, trick *domain.Trick, valid []domain.Card) domain.Card {
	return valid[0]
}

func (loneCaller) Notify(*domain.DealState, strategy.Notice) {}

func TestLonerPartnerSitsOut(t *testing.T) {
	var players [domain.NumPlayers]*Player
	for i := range players {
		players[i] = NewPlayer(string(rune('A'+i)), loneCaller{})
	}
	deal := NewDeal(players, domain.NewDeck(rand.New(rand.NewSource(7))), [2]int{})
	deal.DealCards()
	contract := deal.DoBidding()
	if contract.Suit != deal.TurnCard().Suit || !contract.Alone {
		t.Fatalf("contract = %s, want lone order of the turn suit", contract)
	}

	bids := deal.Bids()
	// 1 call + 3 defend-poll entries, the partner slot recorded as null
	if len(bids) != 4 {
		t.Fatalf("bids = %d entries, want 4", len(bids))
	}
	partnerBidIdx := 1 + 1 // caller pos 0, partner pos 2 is second polled
	if bids[partnerBidIdx] != domain.NullBid {
		t.Errorf("partner bid = %s, want the null placeholder", bids[partnerBidIdx])
	}

	deal.PlayCards()
	for i, trick := range deal.tricks {
		if got := len(trick.Plays()); got != 3 {
			t.Errorf("trick %d has %d plays, want 3 with the partner out", i+1, got)
		}
		if trick.CardAt(domain.Partner(0)) != nil {
			t.Errorf("trick %d records a card for the sit-out seat", i+1)
		}
	}
	if deal.Phase() != PhaseScored {
		t.Errorf("phase = %v, want scored", deal.Phase())
	}
	if got := deal.CallPos(); got != 0 {
		t.Errorf("call pos = %d, want 0", got)
	}
}

func TestDealReproducible(t *testing.T) {
	run := func() ([2]int, []domain.Bid) {
		deal := NewDeal(randomPlayers(t, 42), domain.NewDeck(rand.New(rand.NewSource(42))), [2]int{})
		deal.DealCards()
		deal.DoBidding()
		if !deal.IsPassed() {
			deal.PlayCards()
		}
		return deal.Points(), deal.Bids()
	}
	p1, b1 := run()
	p2, b2 := run()
	if p1 != p2 {
		t.Errorf("points differ between seeded runs: %v vs %v", p1, p2)
	}
	if len(b1) != len(b2) {
		t.Fatalf("bid counts differ: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Errorf("bid %d differs: %s vs %s", i, b1[i], b2[i])
		}
	}
}

func TestDealPointsConserved(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		deal := NewDeal(randomPlayers(t, int64(i)), domain.NewDeck(rng), [2]int{})
		deal.DealCards()
		deal.DoBidding()
		if deal.IsPassed() {
			continue
		}
		deal.PlayCards()

		tricksWon := deal.TricksWon()
		if tricksWon[0]+tricksWon[1] != HandCards {
			t.Fatalf("tricks won %v do not sum to %d", tricksWon, HandCards)
		}
		points := deal.Points()
		if points[0] > 0 && points[1] > 0 {
			t.Fatalf("both teams scored: %v", points)
		}
		total := points[0] + points[1]
		if total < 1 || total > 4 || total == 3 {
			t.Fatalf("deal scored %d points", total)
		}
	}
}
