package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"euchre/internal/ports"
)

func TestRpcHandStrength(t *testing.T) {
	payload := `{"hand": ["KD", "QD", "AC", "JD", "JH"]}`
	out, err := RpcHandStrengthFn(context.Background(), nil, nil, nil, payload)
	if err != nil {
		t.Fatal(err)
	}

	var resp handStrengthResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Strengths) != 4 {
		t.Fatalf("got %d suit strengths, want 4", len(resp.Strengths))
	}
	// both bowers plus K-Q of trump make diamonds the standout suit
	if resp.Best.Suit != "diamonds" {
		t.Errorf("best suit = %s, want diamonds", resp.Best.Suit)
	}
	for _, entry := range resp.Strengths {
		if entry.Strength < 0 {
			t.Errorf("%s strength negative: %f", entry.Suit, entry.Strength)
		}
		if entry.Suit == resp.Best.Suit && entry.Strength != resp.Best.Strength {
			t.Errorf("best strength %f disagrees with table %f",
				resp.Best.Strength, entry.Strength)
		}
	}
}

func TestRpcHandStrengthBadPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "so, about that hand"},
		{"short hand", `{"hand": ["KD", "QD"]}`},
		{"bad card", `{"hand": ["KD", "QD", "AC", "JD", "2X"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RpcHandStrengthFn(context.Background(), nil, nil, nil, tc.payload); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// fakeRatingStore is an in-memory ports.RatingStore.
type fakeRatingStore struct {
	data map[string]json.RawMessage
}

func (f *fakeRatingStore) GetRating(ctx context.Context, team string) (json.RawMessage, bool, error) {
	v, ok := f.data[team]
	return v, ok, nil
}

func (f *fakeRatingStore) PutRating(ctx context.Context, team string, value json.RawMessage) error {
	f.data[team] = value
	return nil
}

func (f *fakeRatingStore) RatedTeams(ctx context.Context) ([]string, error) {
	teams := make([]string, 0, len(f.data))
	for team := range f.data {
		teams = append(teams, team)
	}
	return teams, nil
}

var _ ports.RatingStore = (*fakeRatingStore)(nil)

func TestBindRatingStore(t *testing.T) {
	rs := &fakeRatingStore{data: map[string]json.RawMessage{}}
	bound := BindRatingStore(context.Background(), rs)

	if _, found, err := bound.Get("Alpha"); err != nil || found {
		t.Fatalf("empty store Get = found %v, err %v", found, err)
	}
	if err := bound.Put("Alpha", json.RawMessage("1525.5")); err != nil {
		t.Fatal(err)
	}
	raw, found, err := bound.Get("Alpha")
	if err != nil || !found {
		t.Fatalf("Get after Put = found %v, err %v", found, err)
	}
	var rating float64
	if err := json.Unmarshal(raw, &rating); err != nil || rating != 1525.5 {
		t.Errorf("stored rating = %v (err %v), want 1525.5", rating, err)
	}
	keys, err := bound.Keys()
	if err != nil || len(keys) != 1 || keys[0] != "Alpha" {
		t.Errorf("Keys = %v, %v", keys, err)
	}
}
