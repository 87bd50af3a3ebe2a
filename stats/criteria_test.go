package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_Score_CanonicalisesRawShapes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"int one", 1, 1},
		{"float one", 1.0, 1},
		{"numeric string", "1", 1},
		{"numeric string with decimals", "1.0", 1},
		{"upper-case text", "TRUE", 1},
		{"padded text", " false ", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BooleanCriteria.Score(tc.value)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCriteria_Score_MissReportsNotOK(t *testing.T) {
	// GIVEN values that the climb table does not know
	for _, v := range []any{nil, "", "Hang", 3} {
		// WHEN looked up
		score, ok := ClimbPoints.Score(v)

		// THEN the lookup misses and ScoreOrZero degrades to 0
		assert.False(t, ok, "value %v", v)
		assert.Zero(t, score)
		assert.Zero(t, ClimbPoints.ScoreOrZero(v))
	}
}

func TestCriteria_NamedTables(t *testing.T) {
	assert.Equal(t, 10.0, ClimbPoints.ScoreOrZero("Engage"))
	assert.Equal(t, 6.0, ClimbPoints.ScoreOrZero("Dock"))
	assert.Equal(t, 2.0, ClimbPoints.ScoreOrZero("Park"))
	assert.Equal(t, 5.0, DriverRatingCriteria.ScoreOrZero("Very Fluid"))
	assert.Equal(t, 1.0, DriverRatingCriteria.ScoreOrZero("Very Poor"))
	assert.Equal(t, 3.0, DefenseTimeCriteria.ScoreOrZero("Sometimes"))
	assert.Equal(t, 4.0, BasicRatingCriteria.ScoreOrZero("Good"))
	assert.Equal(t, 100.0, MobilityCriteria.ScoreOrZero(true))
	assert.Equal(t, 0.0, MobilityCriteria.ScoreOrZero(0))
}

func TestCriteria_Strict_ReturnsUnmappableValueError(t *testing.T) {
	_, err := DriverRatingCriteria.Strict("Blazing")
	require.Error(t, err)

	var unmappable *UnmappableValueError
	require.True(t, errors.As(err, &unmappable))
	assert.Equal(t, "driver_rating", unmappable.Criteria)
	assert.Equal(t, "Blazing", unmappable.Value)

	score, err := DriverRatingCriteria.Strict("Fluid")
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
}

func TestCriteriaByName(t *testing.T) {
	for _, name := range CriteriaNames() {
		c, ok := CriteriaByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
		assert.NotEmpty(t, c.Keys())
	}
	_, ok := CriteriaByName("nope")
	assert.False(t, ok)
}

func TestNewCriteria_CollapsesEquivalentKeys(t *testing.T) {
	c := NewCriteria("custom", map[any]float64{1: 7, "x": 3})
	assert.Equal(t, []string{"1", "x"}, c.Keys())
	assert.Equal(t, 7.0, c.ScoreOrZero("1"))
	assert.Equal(t, 7.0, c.ScoreOrZero(1.0))
}

func TestCriteria_ZeroValueScoresNothing(t *testing.T) {
	var c Criteria
	_, ok := c.Score("anything")
	assert.False(t, ok)
}
