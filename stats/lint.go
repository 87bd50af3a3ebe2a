package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Finding is one categorical value that no criteria table can score.
type Finding struct {
	MatchKey string
	Team     int
	Field    string
	Err      *UnmappableValueError
}

func (f Finding) String() string {
	return fmt.Sprintf("%s team %d %s: %v", f.MatchKey, f.Team, f.Field, f.Err)
}

// Lint checks every categorical field of every teamed record against its
// criteria table. Absent values are not findings; aggregations already treat
// them as 0. Findings follow dataset order, then field name.
func Lint(ds *Dataset, game *GameConfig) []Finding {
	if game == nil {
		game = DefaultGameConfig()
	}
	tables := game.CategoricalFields()
	fields := make([]string, 0, len(tables))
	for f := range tables {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var findings []Finding
	for _, r := range ds.records {
		if !r.HasTeam() {
			continue
		}
		for _, field := range fields {
			v, ok := r.Value(field)
			if !ok {
				continue
			}
			if s, isText := v.(string); isText && strings.TrimSpace(s) == "" {
				continue
			}
			_, err := tables[field].Strict(v)
			var unmappable *UnmappableValueError
			if errors.As(err, &unmappable) {
				findings = append(findings, Finding{
					MatchKey: r.MatchKey,
					Team:     r.TeamNumber,
					Field:    field,
					Err:      unmappable,
				})
			}
		}
	}
	return findings
}
