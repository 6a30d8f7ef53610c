package strategy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/form3tech-oss/jwt-go"

	"euchre/internal/domain"
)

func remoteDealState() *domain.DealState {
	hand := domain.NewHand([]domain.Card{
		{Rank: domain.King, Suit: domain.Diamonds},
		{Rank: domain.Queen, Suit: domain.Diamonds},
		{Rank: domain.Ace, Suit: domain.Clubs},
		{Rank: domain.Jack, Suit: domain.Diamonds},
		{Rank: domain.Jack, Suit: domain.Hearts},
	})
	turn := domain.Card{Rank: domain.Nine, Suit: domain.Spades}
	return &domain.DealState{
		Pos:      0,
		Hand:     hand,
		TurnCard: &turn,
		Player:   domain.PlayerState{},
	}
}

func parseBearerClaims(t *testing.T, r *http.Request, secret string) jwt.MapClaims {
	t.Helper()

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		t.Fatalf("missing bearer token, got %q", auth)
	}
	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			t.Fatalf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("token claims not usable")
	}
	return claims
}

func TestRemoteRequestToken(t *testing.T) {
	const secret = "test-signing-key"
	var claims jwt.MapClaims

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims = parseBearerClaims(t, r, secret)
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		var req remoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Action != "bid" || len(req.Hand) != 5 {
			t.Errorf("request action %q with %d cards", req.Action, len(req.Hand))
		}
		suit := int(domain.Diamonds)
		json.NewEncoder(w).Encode(remoteResponse{Suit: &suit, Alone: true})
	}))
	defer server.Close()

	remote, err := NewRemote(RemoteParams{
		ServerURL:  server.URL,
		SigningKey: secret,
		Issuer:     "euchsim-test",
	})
	if err != nil {
		t.Fatal(err)
	}

	bid := remote.Bid(remoteDealState(), false)
	if bid.Suit != domain.Diamonds || !bid.Alone {
		t.Errorf("bid = %v, want diamonds alone", bid)
	}
	if err := remote.LastError(); err != nil {
		t.Errorf("successful exchange left an error: %v", err)
	}

	if claims["iss"] != "euchsim-test" {
		t.Errorf("iss claim = %v, want euchsim-test", claims["iss"])
	}
	if claims["sub"] != "euchre-strategy" {
		t.Errorf("sub claim = %v", claims["sub"])
	}
	for _, name := range []string{"iat", "exp"} {
		if _, ok := claims[name].(float64); !ok {
			t.Errorf("claim %s missing or not numeric: %v", name, claims[name])
		}
	}
}

func TestRemoteFallbacks(t *testing.T) {
	remote, err := NewRemote(RemoteParams{
		ServerURL:  "http://127.0.0.1:1", // nothing listens here
		SigningKey: "k",
		TimeoutMS:  50,
	})
	if err != nil {
		t.Fatal(err)
	}

	deal := remoteDealState()
	if bid := remote.Bid(deal, false); !bid.IsPass(false) {
		t.Errorf("unreachable server should pass, got %v", bid)
	}
	if remote.LastError() == nil {
		t.Error("fallback should record the request failure")
	}
	if bid := remote.Bid(deal, true); !bid.IsDefend() {
		t.Errorf("unreachable server should defend, got %v", bid)
	}
	if card := remote.Discard(deal); !deal.Hand.Contains(card) {
		t.Errorf("fallback discard %v not from hand", card)
	}
	valid := deal.Hand.Cards()[:2]
	if card := remote.PlayCard(deal, nil, valid); card != valid[0] {
		t.Errorf("fallback play = %v, want first valid card", card)
	}
}

func TestRemoteRejectsBadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		card := remoteCard{Rank: int(domain.Nine), Suit: int(domain.Spades)} // not in hand
		json.NewEncoder(w).Encode(remoteResponse{Card: &card})
	}))
	defer server.Close()

	remote, err := NewRemote(RemoteParams{ServerURL: server.URL, SigningKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	deal := remoteDealState()
	if card := remote.Discard(deal); !deal.Hand.Contains(card) {
		t.Errorf("discard %v not from hand despite rogue server", card)
	}

	if _, err := NewRemote(RemoteParams{SigningKey: "k"}); err == nil {
		t.Error("missing server_url should error")
	}
	if _, err := NewRemote(RemoteParams{ServerURL: "http://x"}); err == nil {
		t.Error("missing signing_key should error")
	}
}
