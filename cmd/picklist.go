package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/Mahadih534/FalconVis/stats/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var picklistFields []string // Metric names; first one sorts

// picklistCmd ranks every team by the requested metrics
var picklistCmd = &cobra.Command{
	Use:   "picklist",
	Short: "Rank teams for alliance selection",
	Long:  "Rank teams for alliance selection. Valid fields: " + strings.Join(report.MetricNames(), ", "),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadEngine(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		fields := picklistFields
		if !cmd.Flags().Changed("fields") {
			fields = s.Game().PicklistFields
		}
		if err := writePicklist(cmd.OutOrStdout(), s, fields, outputFormat); err != nil {
			logrus.Fatalf("Failed to build picklist: %v", err)
		}
	},
}

type picklistReport struct {
	Fields []string             `json:"fields"`
	Rows   []report.PicklistRow `json:"rows"`
}

func writePicklist(w io.Writer, s *stats.CalculatedStats, fields []string, format string) error {
	rows, err := report.Picklist(s, fields)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(w, picklistReport{Fields: fields, Rows: rows})
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "RANK\tTEAM\t%s\n", strings.ToUpper(strings.Join(fields, "\t")))
	for i, row := range rows {
		cells := make([]string, len(row.Values))
		for j, v := range row.Values {
			cells[j] = round1(v)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i+1, row.Team, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func init() {
	picklistCmd.Flags().StringSliceVar(&picklistFields, "fields", nil, "Metrics to show, comma-separated (default: picklist_fields from the game config)")
}
