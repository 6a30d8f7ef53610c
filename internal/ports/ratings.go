package ports

import (
	"context"
	"encoding/json"
)

// RatingStore defines the interface for persisting team ratings in an
// external backend.
type RatingStore interface {
	// GetRating retrieves the stored rating record for a team.
	// Returns found=false when the team has no stored rating.
	GetRating(ctx context.Context, team string) (json.RawMessage, bool, error)

	// PutRating stores or replaces the rating record for a team.
	PutRating(ctx context.Context, team string, value json.RawMessage) error

	// RatedTeams lists every team with a stored rating.
	RatedTeams(ctx context.Context) ([]string, error)
}
