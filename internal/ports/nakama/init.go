package nakama

import (
	"context"
	"database/sql"

	"euchre/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the simulation RPCs into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadDefault(); err != nil {
		return err
	}

	if err := initializer.RegisterRpc(RpcHandStrength, RpcHandStrengthFn); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcRunTournament, RpcRunTournamentFn); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcEloRatings, RpcEloRatingsFn); err != nil {
		return err
	}

	logger.Info("Euchre Go module loaded.")
	return nil
}
