package cmd

import (
	"fmt"
	"io"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rosterCmd lists the teams scouted at the event
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the teams in the dataset",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadEngine(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		if err := writeRoster(cmd.OutOrStdout(), s, outputFormat); err != nil {
			logrus.Fatalf("Failed to write roster: %v", err)
		}
	},
}

type rosterEntry struct {
	Team    int `json:"team"`
	Matches int `json:"matches"`
}

func writeRoster(w io.Writer, s *stats.CalculatedStats, format string) error {
	roster := s.Dataset().TeamRoster()
	entries := make([]rosterEntry, len(roster))
	for i, team := range roster {
		entries[i] = rosterEntry{Team: team, Matches: s.MatchesPlayed(team)}
	}
	if format == formatJSON {
		return writeJSON(w, entries)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TEAM\tMATCHES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%d\n", e.Team, e.Matches)
	}
	return tw.Flush()
}
