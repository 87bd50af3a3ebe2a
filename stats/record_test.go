package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchNumber(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"2024vaash_qm12", 12},
		{"2024vaash_qm1", 1},
		// Playoff keys keep only the match digit; the level is dropped.
		{"2024chcmp_sf3m1", 1},
		{"qm7", 7},
		{"42", 42},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := ParseMatchNumber(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewDataset_PlayoffKeysSortWithQualifiers(t *testing.T) {
	// GIVEN a playoff row listed before two qualification rows
	ds := mustDataset(t,
		rec("2024vaash_sf1m1", 100, nil),
		rec("2024vaash_qm2", 100, nil),
		rec("2024vaash_qm1", 200, nil),
	)

	// WHEN the dataset orders by match number
	var keys []string
	for _, r := range ds.Records() {
		keys = append(keys, r.MatchKey)
	}

	// THEN sf1m1 shares match number 1 with qm1 and keeps its input position
	assert.Equal(t, []string{"2024vaash_sf1m1", "2024vaash_qm1", "2024vaash_qm2"}, keys)
}

func TestParseMatchNumber_NoDigits_ReturnsErrMalformedMatchKey(t *testing.T) {
	for _, key := range []string{"", "practice", "qm"} {
		_, err := ParseMatchNumber(key)
		assert.True(t, errors.Is(err, ErrMalformedMatchKey), "key %q", key)
	}
}

func TestParseTeamNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"nil is blank", nil, 0},
		{"empty string is blank", "", 0},
		{"whitespace is blank", "  ", 0},
		{"int", 4099, 4099},
		{"float64 from JSON", 4099.0, 4099},
		{"numeric string", "4099", 4099},
		{"TBA key", "frc4099", 4099},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTeamNumber(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTeamNumber_RejectsNonIntegers(t *testing.T) {
	for _, in := range []any{"team", 12.5, -3, "-3", true} {
		_, err := ParseTeamNumber(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestRecord_Number(t *testing.T) {
	// GIVEN a record with numeric values in the shapes loaders produce
	r := rec("2024vaash_qm1", 100, map[string]any{
		"a": 3,
		"b": "4.5",
		"c": true,
		"d": "n/a",
		"e": nil,
	})

	// THEN coercible values come back as float64
	for field, want := range map[string]float64{"a": 3, "b": 4.5, "c": 1} {
		got, err := r.Number(field)
		require.NoError(t, err, field)
		assert.Equal(t, want, got, field)
	}

	// AND absent or unusable values are a MissingFieldError
	for _, field := range []string{"d", "e", "missing"} {
		_, err := r.Number(field)
		var missing *MissingFieldError
		require.True(t, errors.As(err, &missing), field)
		assert.Equal(t, field, missing.Field)
		assert.Equal(t, 100, missing.Team)
	}
}

func TestRecord_StructuralFields(t *testing.T) {
	r := Record{MatchKey: "2024vaash_qm3", MatchNumber: 3, TeamNumber: 254}

	v, ok := r.Value(FieldTeamNumber)
	assert.True(t, ok)
	assert.Equal(t, 254, v)
	n, err := r.Number(FieldMatchNumber)
	require.NoError(t, err)
	assert.Equal(t, 3.0, n)
	assert.Equal(t, "2024vaash_qm3", r.Text(FieldMatchKey))

	blank := Record{MatchKey: "2024vaash_qm3"}
	_, ok = blank.Value(FieldTeamNumber)
	assert.False(t, ok)
	assert.False(t, blank.HasTeam())
}

func TestRecord_Text(t *testing.T) {
	r := rec("qm1", 1, map[string]any{FieldNotes: "  fast cycler ", "n": 3})
	assert.Equal(t, "fast cycler", r.Text(FieldNotes))
	assert.Equal(t, "3", r.Text("n"))
	assert.Equal(t, "", r.Text("missing"))
}
