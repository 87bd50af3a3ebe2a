package cmd

import (
	"context"
	"fmt"

	"github.com/Mahadih534/FalconVis/stats/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbPath string // SQLite database receiving imported submissions

// importCmd copies a JSON or CSV export into the SQLite submissions store
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON or CSV export into a SQLite database",
	Run: func(cmd *cobra.Command, args []string) {
		n, err := runImport(cmd.Context(), dataPath, dbPath, eventKey)
		if err != nil {
			logrus.Fatalf("Import failed: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s (event %s)\n", n, dbPath, eventKey)
	},
}

// runImport validates the export as a dataset before writing any rows.
func runImport(ctx context.Context, from, to, event string) (int, error) {
	if from == "" || to == "" {
		return 0, fmt.Errorf("--data and --db are required")
	}
	if event == "" {
		return 0, fmt.Errorf("--event is required")
	}
	ds, err := source.Load(ctx, from, "")
	if err != nil {
		return 0, err
	}
	db, err := source.OpenSQLite(ctx, to)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	if err := source.InitSQLite(ctx, db); err != nil {
		return 0, err
	}
	if err := source.SaveSQLite(ctx, db, event, ds.Records()); err != nil {
		return 0, err
	}
	return ds.Len(), nil
}

func init() {
	importCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to write (created if missing)")
}
