package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/Mahadih534/FalconVis/stats/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var teamQuantile float64 // Event quantile used as each metric's threshold

// teamCmd prints one team's metric card
var teamCmd = &cobra.Command{
	Use:   "team <number>",
	Short: "Show a team's metrics against the rest of the event",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		team, err := parseTeam(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := validateQuantile(teamQuantile); err != nil {
			logrus.Fatalf("%v", err)
		}
		s, err := loadEngine(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		if s.MatchesPlayed(team) == 0 {
			logrus.Warnf("Team %d has no scouted matches; all metrics are 0", team)
		}
		if err := writeTeam(cmd.OutOrStdout(), s, team, teamQuantile, outputFormat); err != nil {
			logrus.Fatalf("Failed to write team card: %v", err)
		}
	},
}

// validateQuantile rejects thresholds outside [0, 1], including NaN.
func validateQuantile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("--quantile must be within [0, 1], got %v", q)
	}
	return nil
}

type teamReport struct {
	Team          int                `json:"team"`
	MatchesPlayed int                `json:"matches_played"`
	Quantile      float64            `json:"quantile"`
	Metrics       []report.Metric    `json:"metrics"`
	Points        stats.Distribution `json:"points"`
	Notes         []string           `json:"notes"`
}

func writeTeam(w io.Writer, s *stats.CalculatedStats, team int, quantile float64, format string) error {
	r := teamReport{
		Team:          team,
		MatchesPlayed: s.MatchesPlayed(team),
		Quantile:      quantile,
		Metrics:       report.TeamCard(s, team, quantile),
		Points:        s.PointsDistribution(team, stats.PhaseAll),
		Notes:         s.Dataset().NotesForTeam(team),
	}
	if format == formatJSON {
		return writeJSON(w, r)
	}

	fmt.Fprintf(w, "Team %d (%d matches)\n\n", r.Team, r.MatchesPlayed)
	tw := newTable(w)
	fmt.Fprintf(tw, "METRIC\tVALUE\tP%.0f\t\n", quantile*100)
	for _, m := range r.Metrics {
		mark := ""
		if m.AboveThreshold() {
			mark = "+"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, round1(m.Value), round1(m.Threshold), mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nPoints per match: min %s  median %s  max %s  IQR %s\n",
		round1(r.Points.Min), round1(r.Points.Median), round1(r.Points.Max), round1(r.Points.IQR))
	if len(r.Notes) > 0 {
		fmt.Fprintln(w, "\nNotes:")
		for _, n := range r.Notes {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}
	return nil
}

func init() {
	teamCmd.Flags().Float64Var(&teamQuantile, "quantile", 0.5, "Event quantile used as the threshold for each metric")
}
