package tournament

import (
	"encoding/csv"
	"fmt"
	"io"

	"euchre/internal/game"
)

// WriteCSV dumps the full stats table, one row per team: the match and
// game counters, every game stat, and the derived percentages. With
// positional set, positional stats are additionally broken out by call
// position (positions 0-3 for round one, 4-7 for round two). Undefined
// percentages are left empty.
func WriteCSV(w io.Writer, s *Standings, positional bool) error {
	cw := csv.NewWriter(w)

	header := []string{"Team", "Matches Played", "Matches Won",
		"Games Played", "Games Won"}
	for stat := game.GameStat(0); stat < game.NumGameStats; stat++ {
		header = append(header, stat.String())
		if positional && stat.Positional() {
			for pos := 0; pos < game.NumCallPos; pos++ {
				header = append(header, fmt.Sprintf("%s (Pos %d)", stat, pos))
			}
		}
	}
	header = append(header, "Match Win Pct", "Game Win Pct")
	for _, cs := range CompStats {
		header = append(header, cs.Name)
		if positional && cs.Positional() {
			for pos := 0; pos < game.NumCallPos; pos++ {
				header = append(header, fmt.Sprintf("%s (Pos %d)", cs.Name, pos))
			}
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	fmtPct := func(val float64, ok bool) string {
		if !ok {
			return ""
		}
		return fmt.Sprintf("%.2f", val)
	}

	for _, name := range s.Order {
		tc := s.Stats[name]
		row := []string{name,
			fmt.Sprint(tc.MatchesPlayed), fmt.Sprint(tc.MatchesWon),
			fmt.Sprint(tc.GamesPlayed), fmt.Sprint(tc.GamesWon)}
		for stat := game.GameStat(0); stat < game.NumGameStats; stat++ {
			row = append(row, fmt.Sprint(tc.Counts[stat]))
			if positional && stat.Positional() {
				for pos := 0; pos < game.NumCallPos; pos++ {
					row = append(row, fmt.Sprint(tc.PosCounts[stat][pos]))
				}
			}
		}
		row = append(row, fmtPct(MatchWinPct(tc)), fmtPct(GameWinPct(tc)))
		for _, cs := range CompStats {
			row = append(row, fmtPct(cs.Pct(&tc.StatCounts)))
			if positional && cs.Positional() {
				for pos := 0; pos < game.NumCallPos; pos++ {
					row = append(row, fmtPct(cs.PosPct(&tc.StatCounts, pos)))
				}
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
