package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset_OrdersByMatchNumberStably(t *testing.T) {
	// GIVEN records supplied out of match order, with qm2 rows in input order
	ds := mustDataset(t,
		rec("2024vaash_qm10", 100, nil),
		rec("2024vaash_qm2", 300, nil),
		rec("2024vaash_qm2", 100, nil),
		rec("2024vaash_qm1", 200, nil),
	)

	// WHEN all records are read back
	got := ds.Records()

	// THEN they follow match number, not lexical key order
	var order []string
	for _, r := range got {
		order = append(order, r.MatchKey)
	}
	assert.Equal(t, []string{"2024vaash_qm1", "2024vaash_qm2", "2024vaash_qm2", "2024vaash_qm10"}, order)
	assert.Equal(t, 300, got[1].TeamNumber)
	assert.Equal(t, 100, got[2].TeamNumber)
	assert.Equal(t, 10, got[3].MatchNumber)
}

func TestNewDataset_MalformedMatchKey_FailsFast(t *testing.T) {
	_, err := NewDataset([]Record{rec("2024vaash_qm1", 1, nil), rec("practice", 2, nil)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedMatchKey))
	assert.Contains(t, err.Error(), "record 1")
}

func TestNewDataset_DuplicateMatchTeam_Fails(t *testing.T) {
	_, err := NewDataset([]Record{rec("qm1", 100, nil), rec("qm1", 100, nil)})
	assert.True(t, errors.Is(err, ErrDuplicateRecord))
}

func TestNewDataset_BlankTeamsMayRepeat(t *testing.T) {
	ds := mustDataset(t, rec("qm1", 0, nil), rec("qm1", 0, nil))
	assert.Equal(t, 2, ds.Len())
	assert.Empty(t, ds.TeamRoster())
}

func TestNewDataset_DoesNotAliasInput(t *testing.T) {
	input := []Record{rec("qm2", 1, nil), rec("qm1", 2, nil)}
	ds := mustDataset(t, input...)

	input[0].TeamNumber = 99
	assert.Equal(t, []int{1, 2}, ds.TeamRoster())

	out := ds.Records()
	out[0].TeamNumber = 42
	assert.Equal(t, 2, ds.Records()[0].TeamNumber)
}

func TestRecordsForTeam(t *testing.T) {
	ds := mustDataset(t,
		rec("qm3", 100, nil),
		rec("qm1", 100, nil),
		rec("qm2", 200, nil),
	)

	got := ds.RecordsForTeam(100)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].MatchNumber)
	assert.Equal(t, 3, got[1].MatchNumber)
}

func TestRecordsForTeam_AbsentTeam_ReturnsEmpty(t *testing.T) {
	ds := mustDataset(t, rec("qm1", 100, nil), rec("qm1", 0, nil))

	for _, team := range []int{999, 0, -1} {
		got := ds.RecordsForTeam(team)
		assert.NotNil(t, got, "team %d", team)
		assert.Empty(t, got, "team %d", team)
	}
}

func TestTeamRoster_SortedDistinctWithoutBlanks(t *testing.T) {
	ds := mustDataset(t,
		rec("qm1", 4099, nil),
		rec("qm1", 0, nil),
		rec("qm2", 254, nil),
		rec("qm3", 4099, nil),
		rec("qm3", 1678, nil),
	)
	assert.Equal(t, []int{254, 1678, 4099}, ds.TeamRoster())
}

func TestNotesForTeam(t *testing.T) {
	ds := mustDataset(t,
		rec("qm2", 100, map[string]any{FieldNotes: "tipped in endgame"}),
		rec("qm1", 100, map[string]any{FieldNotes: "  "}),
		rec("qm3", 100, map[string]any{FieldNotes: "great auto"}),
		rec("qm3", 200, map[string]any{FieldNotes: "not ours"}),
	)
	assert.Equal(t, []string{"tipped in endgame", "great auto"}, ds.NotesForTeam(100))
	assert.Empty(t, ds.NotesForTeam(300))
}
