package tournament

import "euchre/internal/game"

// CompStat is a percentage derived from two tabulated counters. The
// value is undefined when the denominator is zero.
type CompStat struct {
	Name string
	Num  game.GameStat
	Den  game.GameStat
}

// CompStats lists the derived stats in report order.
var CompStats = []CompStat{
	{"Deals Passed Pct", game.DealsPassed, game.DealsTotal},
	{"Call Pct", game.Calls, game.DealsPlayed},
	{"Call Make Pct", game.CallsMade, game.Calls},
	{"Call All 5 Pct", game.CallsAllFive, game.Calls},
	{"Call Euchred Pct", game.CallsEuchred, game.Calls},
	{"Loner Call Pct", game.LonersCalled, game.Calls},
	{"Loner Make Pct", game.LonersMade, game.LonersCalled},
	{"Loner Fail Pct", game.LonersFailed, game.LonersCalled},
	{"Loner Euchred Pct", game.LonersEuchred, game.LonersCalled},
	{"NL Call Pct", game.NLCalls, game.Calls},
	{"NL Call Make Pct", game.NLCallsMade, game.NLCalls},
	{"NL Call All 5 Pct", game.NLCallsAllFive, game.NLCalls},
	{"NL Call Euchred Pct", game.NLCallsEuchred, game.NLCalls},
	{"Defense Pct", game.Defenses, game.DealsPlayed},
	{"Defense Loss Pct", game.DefLosses, game.Defenses},
	{"Defense Euchre Pct", game.DefEuchres, game.Defenses},
	{"Def Loner Pct", game.DefLoners, game.Defenses},
	{"Def Loner Loss Pct", game.DefLonerLosses, game.DefLoners},
	{"Def Loner Stop Pct", game.DefLonerStops, game.DefLoners},
	{"Def Loner Euchre Pct", game.DefLonerEuchres, game.DefLoners},
	{"Def Alone Pct", game.DefAlones, game.DefLoners},
	{"Def Alone Loss Pct", game.DefAloneLosses, game.DefAlones},
	{"Def Alone Stop Pct", game.DefAloneStops, game.DefAlones},
	{"Def Alone Euchre Pct", game.DefAloneEuchres, game.DefAlones},
}

func pct(num, den int) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return float64(num) / float64(den) * 100, true
}

// Pct computes the stat over a team's tally.
func (cs CompStat) Pct(sc *game.StatCounts) (float64, bool) {
	return pct(sc.Counts[cs.Num], sc.Counts[cs.Den])
}

// PosPct computes the stat for one call position. Both underlying
// counters must be positional.
func (cs CompStat) PosPct(sc *game.StatCounts, pos int) (float64, bool) {
	return pct(sc.PosCounts[cs.Num][pos], sc.PosCounts[cs.Den][pos])
}

// Positional reports whether the stat can be broken out by call position.
func (cs CompStat) Positional() bool {
	return cs.Num.Positional() && cs.Den.Positional()
}

// MatchWinPct and GameWinPct cover the counters above the game level.
func MatchWinPct(tc *TournCounts) (float64, bool) {
	return pct(tc.MatchesWon, tc.MatchesPlayed)
}

func GameWinPct(tc *TournCounts) (float64, bool) {
	return pct(tc.GamesWon, tc.GamesPlayed)
}
