package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd reports categorical values that no criteria table can score
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check categorical fields against the criteria tables",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadEngine(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		findings := stats.Lint(s.Dataset(), s.Game())
		if err := writeFindings(cmd.OutOrStdout(), findings, outputFormat); err != nil {
			logrus.Fatalf("Failed to write findings: %v", err)
		}
		if len(findings) > 0 {
			os.Exit(1)
		}
	},
}

type findingReport struct {
	MatchKey string `json:"match_key"`
	Team     int    `json:"team"`
	Field    string `json:"field"`
	Criteria string `json:"criteria"`
	Value    any    `json:"value"`
}

func writeFindings(w io.Writer, findings []stats.Finding, format string) error {
	if format == formatJSON {
		out := make([]findingReport, len(findings))
		for i, f := range findings {
			out[i] = findingReport{
				MatchKey: f.MatchKey,
				Team:     f.Team,
				Field:    f.Field,
				Criteria: f.Err.Criteria,
				Value:    f.Err.Value,
			}
		}
		return writeJSON(w, out)
	}
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "No unmappable values.")
		return err
	}
	for _, f := range findings {
		fmt.Fprintln(w, f.String())
	}
	_, err := fmt.Fprintf(w, "%d unmappable values (scored as 0)\n", len(findings))
	return err
}
