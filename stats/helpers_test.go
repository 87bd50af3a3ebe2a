package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// rec builds a record the way a loader would.
func rec(matchKey string, team int, fields map[string]any) Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return Record{MatchKey: matchKey, TeamNumber: team, Fields: fields}
}

func mustDataset(t *testing.T, records ...Record) *Dataset {
	t.Helper()
	ds, err := NewDataset(records)
	require.NoError(t, err)
	return ds
}

// teleopSpeakerMatches gives team one record per value, each scoring only
// teleop speaker notes (2 points apiece under the default game).
func teleopSpeakerMatches(team int, firstMatch int, notes ...int) []Record {
	out := make([]Record, len(notes))
	for i, n := range notes {
		out[i] = rec(fmt.Sprintf("2024vaash_qm%d", firstMatch+i), team, map[string]any{
			FieldTeleopSpeaker: n,
		})
	}
	return out
}

// eventDataset is the three-team event used across engine tests. Teleop
// points per match: team 100 [10 20 30], team 200 [4 10 16], team 300
// [20 30 40], so the averages are 20, 10 and 30.
func eventDataset(t *testing.T) *Dataset {
	t.Helper()
	var records []Record
	records = append(records, teleopSpeakerMatches(100, 1, 5, 10, 15)...)
	records = append(records, teleopSpeakerMatches(200, 1, 2, 5, 8)...)
	records = append(records, teleopSpeakerMatches(300, 1, 10, 15, 20)...)
	return mustDataset(t, records...)
}
