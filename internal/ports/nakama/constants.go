package nakama

const (
	// RpcHandStrength scores a hand for every candidate trump suit.
	RpcHandStrength = "euchre_hand_strength"

	// RpcRunTournament runs a configured tournament and returns the
	// leaderboard.
	RpcRunTournament = "euchre_run_tournament"

	// RpcEloRatings returns the stored Elo ratings, strongest first.
	RpcEloRatings = "euchre_elo_ratings"

	// RatingsCollection is the storage collection holding one rating
	// object per team, owned by the system user.
	RatingsCollection = "euchre_ratings"
)
