package strategy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/form3tech-oss/jwt-go"

	"euchre/internal/domain"
)

// RemoteParams configure the remote strategy adapter: the decision server
// endpoint and the shared secret for request signing.
type RemoteParams struct {
	ServerURL  string `yaml:"server_url"`
	SigningKey string `yaml:"signing_key"`
	Issuer     string `yaml:"issuer"`
	TimeoutMS  int    `yaml:"timeout_ms"`
}

const defaultRemoteTimeout = 2 * time.Second

// Remote delegates decisions to an external server over HTTP. Requests
// carry an HS256-signed bearer token. When the server is unreachable or
// returns garbage, the failure is logged and the strategy degrades to a
// safe local decision: pass the bid, discard or play the first legal
// card. LastError exposes the most recent failure.
type Remote struct {
	url     string
	key     []byte
	issuer  string
	client  *http.Client
	lastErr error
}

func NewRemote(params RemoteParams) (*Remote, error) {
	if params.ServerURL == "" {
		return nil, fmt.Errorf("server_url is required")
	}
	if params.SigningKey == "" {
		return nil, fmt.Errorf("signing_key is required")
	}
	timeout := defaultRemoteTimeout
	if params.TimeoutMS > 0 {
		timeout = time.Duration(params.TimeoutMS) * time.Millisecond
	}
	return &Remote{
		url:    params.ServerURL,
		key:    []byte(params.SigningKey),
		issuer: params.Issuer,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type remoteCard struct {
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

func toRemoteCard(c domain.Card) remoteCard {
	return remoteCard{Rank: int(c.Rank), Suit: int(c.Suit)}
}

func (rc remoteCard) card() domain.Card {
	return domain.Card{Rank: domain.Rank(rc.Rank), Suit: domain.Suit(rc.Suit)}
}

type remoteRequest struct {
	Action     string       `json:"action"`
	Pos        int          `json:"pos"`
	Defend     bool         `json:"defend,omitempty"`
	Hand       []remoteCard `json:"hand"`
	TurnCard   *remoteCard  `json:"turn_card,omitempty"`
	Bids       []int        `json:"bids,omitempty"`
	Contract   *int         `json:"contract,omitempty"`
	CallerPos  int          `json:"caller_pos"`
	TrickNum   int          `json:"trick_num,omitempty"`
	ValidPlays []remoteCard `json:"valid_plays,omitempty"`
	TricksWon  [2]int       `json:"tricks_won"`
	Points     [2]int       `json:"points"`
}

type remoteResponse struct {
	Suit  *int        `json:"suit,omitempty"`
	Alone bool        `json:"alone,omitempty"`
	Card  *remoteCard `json:"card,omitempty"`
}

// AuthToken mints the signed bearer token attached to every request.
func (s *Remote) AuthToken() (string, error) {
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": "euchre-strategy",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// LastError returns the most recent request failure, nil after a
// successful exchange.
func (s *Remote) LastError() error { return s.lastErr }

func (s *Remote) call(req remoteRequest) (*remoteResponse, error) {
	resp, err := s.exchange(req)
	if err != nil {
		s.lastErr = err
		log.Printf("remote strategy %s: %v", req.Action, err)
		return nil, err
	}
	s.lastErr = nil
	return resp, nil
}

func (s *Remote) exchange(req remoteRequest) (*remoteResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	token, err := s.AuthToken()
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("decision request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("decision server returned %s", resp.Status)
	}
	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func (s *Remote) request(deal *domain.DealState, action string, defend bool, validPlays []domain.Card) remoteRequest {
	req := remoteRequest{
		Action:    action,
		Pos:       deal.Pos,
		Defend:    defend,
		CallerPos: deal.CallerPos,
		TricksWon: deal.TricksWon,
		Points:    deal.Points,
	}
	for _, c := range deal.Hand.Cards() {
		req.Hand = append(req.Hand, toRemoteCard(c))
	}
	if deal.TurnCard != nil {
		tc := toRemoteCard(*deal.TurnCard)
		req.TurnCard = &tc
	}
	for _, b := range deal.Bids {
		req.Bids = append(req.Bids, int(b.Suit))
	}
	if deal.Contract != nil {
		suit := int(deal.Contract.Suit)
		req.Contract = &suit
		req.TrickNum = len(deal.Tricks)
	}
	for _, c := range validPlays {
		req.ValidPlays = append(req.ValidPlays, toRemoteCard(c))
	}
	return req
}

func (s *Remote) Bid(deal *domain.DealState, defend bool) domain.Bid {
	resp, err := s.call(s.request(deal, "bid", defend, nil))
	if err != nil || resp.Suit == nil {
		if defend {
			return domain.Bid{Suit: domain.DefendSuit}
		}
		return domain.PassBid
	}
	suit := domain.Suit(*resp.Suit)
	if defend {
		return domain.Bid{Suit: domain.DefendSuit, Alone: resp.Alone}
	}
	if !suit.Valid() {
		return domain.PassBid
	}
	return domain.Bid{Suit: suit, Alone: resp.Alone}
}

func (s *Remote) Discard(deal *domain.DealState) domain.Card {
	resp, err := s.call(s.request(deal, "discard", false, nil))
	if err == nil && resp.Card != nil {
		if card := resp.Card.card(); deal.Hand.Contains(card) {
			return card
		}
	}
	return deal.Hand.Cards()[0]
}

func (s *Remote) PlayCard(deal *domain.DealState, trick *domain.Trick, validPlays []domain.Card) domain.Card {
	resp, err := s.call(s.request(deal, "play", false, validPlays))
	if err == nil && resp.Card != nil {
		if card := resp.Card.card(); containsCard(validPlays, card) {
			return card
		}
	}
	return validPlays[0]
}

func (s *Remote) Notify(deal *domain.DealState, notice Notice) {
	req := s.request(deal, "notify", false, nil)
	req.Action = "notify:" + notice.String()
	// best effort; milestones are informational
	_, _ = s.call(req)
}
