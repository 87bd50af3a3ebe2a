package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureJSON = filepath.Join("..", "testdata", "event.json")

// useFlags points the persistent flags at a dataset for one test.
func useFlags(t *testing.T, data, event, game string) {
	t.Helper()
	oldData, oldEvent, oldGame := dataPath, eventKey, gamePath
	dataPath, eventKey, gamePath = data, event, game
	t.Cleanup(func() { dataPath, eventKey, gamePath = oldData, oldEvent, oldGame })
}

func fixtureEngine(t *testing.T) *stats.CalculatedStats {
	t.Helper()
	useFlags(t, fixtureJSON, "", "")
	s, err := loadEngine(context.Background())
	require.NoError(t, err)
	return s
}

func TestLoadEngine_RequiresData(t *testing.T) {
	useFlags(t, "", "", "")
	_, err := loadEngine(context.Background())
	assert.Error(t, err)
}

func TestLoadEngine_GameConfig(t *testing.T) {
	// GIVEN the shipped defaults.yaml
	useFlags(t, fixtureJSON, "", filepath.Join("..", "defaults.yaml"))

	// WHEN loaded
	s, err := loadEngine(context.Background())

	// THEN the rules match the built-in ones
	require.NoError(t, err)
	assert.Equal(t, stats.DefaultGameConfig(), s.Game())

	useFlags(t, fixtureJSON, "", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err = loadEngine(context.Background())
	assert.Error(t, err)
}

func TestWriteRoster(t *testing.T) {
	s := fixtureEngine(t)

	var buf bytes.Buffer
	require.NoError(t, writeRoster(&buf, s, formatJSON))
	var got []rosterEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []rosterEntry{{100, 3}, {200, 3}, {300, 3}}, got)

	buf.Reset()
	require.NoError(t, writeRoster(&buf, s, formatText))
	assert.Contains(t, buf.String(), "TEAM")
	assert.Contains(t, buf.String(), "300")
}

func TestWriteTeam(t *testing.T) {
	s := fixtureEngine(t)

	// WHEN team 100's card is written as JSON
	var buf bytes.Buffer
	require.NoError(t, writeTeam(&buf, s, 100, 0.5, formatJSON))

	// THEN it carries the metrics, distribution and notes
	var got teamReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.MatchesPlayed)
	require.NotEmpty(t, got.Metrics)
	assert.Equal(t, "Average Points Contributed", got.Metrics[0].Name)
	assert.InDelta(t, 38.0, got.Metrics[0].Value, 1e-9)
	assert.Equal(t, 59.0, got.Points.Max)
	assert.Equal(t, []string{"slow start", "best match yet"}, got.Notes)

	buf.Reset()
	require.NoError(t, writeTeam(&buf, s, 100, 0.5, formatText))
	assert.Contains(t, buf.String(), "Team 100 (3 matches)")
	assert.Contains(t, buf.String(), "P50")
	assert.Contains(t, buf.String(), "  - best match yet")
}

func TestWriteTeam_UnknownTeam(t *testing.T) {
	s := fixtureEngine(t)

	var buf bytes.Buffer
	require.NoError(t, writeTeam(&buf, s, 9999, 0.5, formatJSON))
	var got teamReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Zero(t, got.MatchesPlayed)
	for _, m := range got.Metrics {
		assert.Zero(t, m.Value, m.Name)
	}
}

func TestWritePrediction(t *testing.T) {
	s := fixtureEngine(t)

	var buf bytes.Buffer
	require.NoError(t, writePrediction(&buf, s, []int{300}, []int{200}, formatJSON))

	var got predictionReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Greater(t, got.Red.WinProbability, got.Blue.WinProbability)
	assert.InDelta(t, 1.0, got.Red.WinProbability+got.Blue.WinProbability, 1e-9)
	assert.InDelta(t, got.Red.Mean*1.06, got.Red.PredictedScore, 1e-9)
	assert.Equal(t, []int{300}, got.Red.Breakdown.FastestCyclers)

	buf.Reset()
	require.NoError(t, writePrediction(&buf, s, []int{100, 300}, []int{200}, formatText))
	assert.Contains(t, buf.String(), "Red [100 300]")
	assert.Contains(t, buf.String(), "Chance of co-op bonus")
}

func TestWritePicklist(t *testing.T) {
	s := fixtureEngine(t)

	// teleop cycles average 34/3, 16/3 and 49/3
	var buf bytes.Buffer
	require.NoError(t, writePicklist(&buf, s, s.Game().PicklistFields, formatJSON))
	var got picklistReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Rows, 3)
	assert.Equal(t, []int{300, 100, 200}, []int{got.Rows[0].Team, got.Rows[1].Team, got.Rows[2].Team})

	err := writePicklist(&buf, s, []string{"Vibes"}, formatText)
	assert.Error(t, err)
}

func TestWriteFindings(t *testing.T) {
	s := fixtureEngine(t)

	// GIVEN the fixture is clean
	var buf bytes.Buffer
	findings := stats.Lint(s.Dataset(), s.Game())
	require.Empty(t, findings)
	require.NoError(t, writeFindings(&buf, findings, formatText))
	assert.Contains(t, buf.String(), "No unmappable values")

	// WHEN a finding exists
	buf.Reset()
	f := stats.Finding{MatchKey: "qm1", Team: 100, Field: stats.FieldClimbStatus,
		Err: &stats.UnmappableValueError{Criteria: "climb", Value: "Hang"}}
	require.NoError(t, writeFindings(&buf, []stats.Finding{f}, formatJSON))

	// THEN it is reported with its criteria table
	var got []findingReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "climb", got[0].Criteria)
	assert.Equal(t, "Hang", got[0].Value)
}

func TestRunImport_ThenLoadFromSQLite(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "scouting.db")

	n, err := runImport(ctx, fixtureJSON, db, "2024vaash")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	useFlags(t, db, "2024vaash", "")
	s, err := loadEngine(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200, 300}, s.Dataset().TeamRoster())
	assert.Equal(t, []float64{20, 35, 59}, s.PointsContributedByMatch(100, stats.PhaseAll))

	_, err = runImport(ctx, fixtureJSON, db, "")
	assert.Error(t, err)
}

func TestParseTeams(t *testing.T) {
	got, err := parseTeams("254, frc1678,,4099")
	require.NoError(t, err)
	assert.Equal(t, []int{254, 1678, 4099}, got)

	for _, bad := range []string{"", ",", "254,abc", "0"} {
		_, err := parseTeams(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateQuantile(t *testing.T) {
	for _, q := range []float64{0, 0.5, 1} {
		assert.NoError(t, validateQuantile(q), q)
	}
	for _, q := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		assert.Error(t, validateQuantile(q), q)
	}
}
