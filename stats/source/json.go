package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mahadih534/FalconVis/stats"
)

// LoadJSON reads an array of objects, one per team per match. Every object
// must carry MatchKey and TeamNumber; a blank TeamNumber is kept as an
// unattributed row.
func LoadJSON(r io.Reader) ([]stats.Record, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	records := make([]stats.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := structural(row)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
