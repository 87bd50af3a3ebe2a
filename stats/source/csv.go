package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Mahadih534/FalconVis/stats"
)

// LoadCSV reads a header row followed by one row per team per match. Cells are
// kept as text and coerced by the engine; empty cells are treated as absent.
func LoadCSV(r io.Reader) ([]stats.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s (empty file)", ErrMissingColumn, stats.FieldMatchKey)
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for _, col := range stats.RequiredFields {
		if !slices.Contains(header, col) {
			return nil, fmt.Errorf("CSV header: %w: %s", ErrMissingColumn, col)
		}
	}

	var records []stats.Record
	for line := 2; ; line++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		row := make(map[string]any, len(header))
		for i, col := range header {
			row[col] = nil
			if v := strings.TrimSpace(cells[i]); v != "" {
				row[col] = v
			}
		}
		rec, err := structural(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for k, v := range rec.Fields {
			if v == nil {
				delete(rec.Fields, k)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
