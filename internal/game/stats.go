package game

// GameStat is one tabulated counter. Caller stats and defender stats are
// credited to the calling and defending teams respectively; the
// positional stats are additionally broken out by call position.
type GameStat int

const (
	DealsTotal GameStat = iota
	DealsPlayed
	DealsPassed
	Tricks
	Points
	// caller stats
	Calls
	CallsMade
	CallsAllFive
	CallsEuchred
	LonersCalled
	LonersMade
	LonersFailed
	LonersEuchred
	NLCalls
	NLCallsMade
	NLCallsAllFive
	NLCallsEuchred
	// defender stats
	Defenses
	DefLosses
	DefEuchres
	DefLoners
	DefLonerLosses
	DefLonerStops
	DefLonerEuchres
	DefAlones
	DefAloneLosses
	DefAloneStops
	DefAloneEuchres

	NumGameStats
)

var gameStatNames = [NumGameStats]string{
	"Total Deals",
	"Deals Played",
	"Deals Passed",
	"Tricks",
	"Points",
	"Calls",
	"Calls Made",
	"Calls Made All 5",
	"Calls Euchred",
	"Loners Called",
	"Loners Made",
	"Loners Failed",
	"Loners Euchred",
	"NL Calls",
	"NL Calls Made",
	"NL Calls Made All 5",
	"NL Calls Euchred",
	"Defenses",
	"Defense Losses",
	"Defense Euchres",
	"Defend Loners",
	"Defend Loner Losses",
	"Defend Loner Stops",
	"Defend Loner Euchres",
	"Defenses Alone",
	"Defend Alone Losses",
	"Defend Alone Stops",
	"Defend Alone Euchres",
}

func (s GameStat) String() string {
	if s < 0 || s >= NumGameStats {
		return "unknown stat"
	}
	return gameStatNames[s]
}

// Positional reports whether the stat is also tabulated by call position.
func (s GameStat) Positional() bool {
	return s > Points && s < NumGameStats
}

// NumCallPos is the number of call positions, both bid rounds combined.
const NumCallPos = 8

// StatCounts is a per-team tally of the game stats, with the positional
// breakout alongside.
type StatCounts struct {
	Counts    [NumGameStats]int
	PosCounts [NumGameStats][NumCallPos]int
}

// Incr bumps a stat, and its call-position slot when positional.
func (sc *StatCounts) Incr(stat GameStat, callPos, value int) {
	sc.Counts[stat] += value
	if stat.Positional() {
		sc.PosCounts[stat][callPos] += value
	}
}

// Merge accumulates another tally into this one.
func (sc *StatCounts) Merge(other *StatCounts) {
	for s := GameStat(0); s < NumGameStats; s++ {
		sc.Counts[s] += other.Counts[s]
		for p := 0; p < NumCallPos; p++ {
			sc.PosCounts[s][p] += other.PosCounts[s][p]
		}
	}
}
