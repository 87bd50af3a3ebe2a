package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// round1 formats a metric the way the dashboard shows it.
func round1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
