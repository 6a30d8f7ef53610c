package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"euchre/internal/ports"
	"euchre/internal/store"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaRatingStore implements ports.RatingStore on top of Nakama's
// storage engine. Ratings are system-owned objects, one per team, in a
// single collection.
type NakamaRatingStore struct {
	nk runtime.NakamaModule
}

// NewNakamaRatingStore creates a new rating store adapter.
func NewNakamaRatingStore(nk runtime.NakamaModule) *NakamaRatingStore {
	return &NakamaRatingStore{nk: nk}
}

// GetRating retrieves the stored rating record for a team.
func (a *NakamaRatingStore) GetRating(ctx context.Context, team string) (json.RawMessage, bool, error) {
	reads := []*runtime.StorageRead{
		{Collection: RatingsCollection, Key: team},
	}
	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read rating for %s: %w", team, err)
	}
	if len(objects) == 0 {
		return nil, false, nil
	}
	return json.RawMessage(objects[0].Value), true, nil
}

// PutRating stores or replaces the rating record for a team.
func (a *NakamaRatingStore) PutRating(ctx context.Context, team string, value json.RawMessage) error {
	writes := []*runtime.StorageWrite{
		{
			Collection:      RatingsCollection,
			Key:             team,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write rating for %s: %w", team, err)
	}
	return nil
}

// RatedTeams lists every team with a stored rating.
func (a *NakamaRatingStore) RatedTeams(ctx context.Context) ([]string, error) {
	teams := []string{}
	cursor := ""
	for {
		objects, next, err := a.nk.StorageList(ctx, "", "", RatingsCollection, 100, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to list ratings: %w", err)
		}
		for _, obj := range objects {
			teams = append(teams, obj.Key)
		}
		if next == "" {
			break
		}
		cursor = next
	}
	return teams, nil
}

var _ ports.RatingStore = (*NakamaRatingStore)(nil)

// boundRatingStore binds a request context to a RatingStore so it can
// serve the engine's context-free store interface.
type boundRatingStore struct {
	ctx context.Context
	rs  ports.RatingStore
}

// BindRatingStore adapts a RatingStore for engine components that expect
// a plain key-value store.
func BindRatingStore(ctx context.Context, rs ports.RatingStore) store.Store {
	return &boundRatingStore{ctx: ctx, rs: rs}
}

func (b *boundRatingStore) Get(key string) (json.RawMessage, bool, error) {
	return b.rs.GetRating(b.ctx, key)
}

func (b *boundRatingStore) Put(key string, value json.RawMessage) error {
	return b.rs.PutRating(b.ctx, key, value)
}

func (b *boundRatingStore) Keys() ([]string, error) {
	return b.rs.RatedTeams(b.ctx)
}
