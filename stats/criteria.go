package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Criteria maps raw categorical observations to numeric scores.
// A Criteria is immutable; the zero value scores nothing.
type Criteria struct {
	name   string
	scores map[string]float64
}

// NewCriteria builds a Criteria from raw keys. Keys are canonicalised the same
// way looked-up values are, so 1, 1.0 and "1" collapse to one entry.
func NewCriteria(name string, scores map[any]float64) Criteria {
	c := Criteria{name: name, scores: make(map[string]float64, len(scores))}
	for k, v := range scores {
		if key, ok := criteriaKey(k); ok {
			c.scores[key] = v
		}
	}
	return c
}

// Criteria tables shared by the whole process.
var (
	BooleanCriteria = NewCriteria("boolean", map[any]float64{
		0: 0, "false": 0, false: 0,
		1: 1, "true": 1, true: 1,
	})

	// MobilityCriteria scores leaving the starting zone as a percentage.
	MobilityCriteria = NewCriteria("mobility", map[any]float64{
		0: 0, "false": 0, false: 0,
		1: 100, "true": 100, true: 100,
	})

	ClimbPoints = NewCriteria("climb", map[any]float64{
		"Park":   2,
		"Dock":   6,
		"Engage": 10,
	})

	DriverRatingCriteria = NewCriteria("driver_rating", map[any]float64{
		"Very Fluid": 5,
		"Fluid":      4,
		"Average":    3,
		"Poor":       2,
		"Very Poor":  1,
	})

	DefenseTimeCriteria = NewCriteria("defense_time", map[any]float64{
		"Very Often": 5,
		"Often":      4,
		"Sometimes":  3,
		"Rarely":     2,
		"Never":      1,
	})

	BasicRatingCriteria = NewCriteria("basic_rating", map[any]float64{
		"Very Good": 5,
		"Good":      4,
		"Okay":      3,
		"Poor":      2,
		"Very Poor": 1,
	})
)

var namedCriteria = map[string]Criteria{
	BooleanCriteria.name:      BooleanCriteria,
	MobilityCriteria.name:     MobilityCriteria,
	ClimbPoints.name:          ClimbPoints,
	DriverRatingCriteria.name: DriverRatingCriteria,
	DefenseTimeCriteria.name:  DefenseTimeCriteria,
	BasicRatingCriteria.name:  BasicRatingCriteria,
}

// CriteriaByName resolves one of the shared tables by its name.
func CriteriaByName(name string) (Criteria, bool) {
	c, ok := namedCriteria[name]
	return c, ok
}

// CriteriaNames lists the names accepted by CriteriaByName, sorted.
func CriteriaNames() []string {
	names := make([]string, 0, len(namedCriteria))
	for name := range namedCriteria {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the table name.
func (c Criteria) Name() string { return c.name }

// Keys returns the canonical keys of the table, sorted.
func (c Criteria) Keys() []string {
	keys := make([]string, 0, len(c.scores))
	for k := range c.scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Score looks up v. ok is false for nil and for values missing from the table.
func (c Criteria) Score(v any) (score float64, ok bool) {
	key, ok := criteriaKey(v)
	if !ok {
		return 0, false
	}
	score, ok = c.scores[key]
	return score, ok
}

// ScoreOrZero looks up v and treats a miss as 0.
func (c Criteria) ScoreOrZero(v any) float64 {
	score, _ := c.Score(v)
	return score
}

// Strict looks up v and reports a miss as *UnmappableValueError.
func (c Criteria) Strict(v any) (float64, error) {
	score, ok := c.Score(v)
	if !ok {
		return 0, &UnmappableValueError{Criteria: c.name, Value: v}
	}
	return score, nil
}

// criteriaKey canonicalises a raw value for lookup: bools and boolean-looking
// strings become "true"/"false", integral numbers their decimal form.
func criteriaKey(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return "", false
		}
		if strings.EqualFold(s, "true") || strings.EqualFold(s, "false") {
			return strings.ToLower(s), true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return floatKey(f), true
		}
		return s, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case float32:
		return floatKey(float64(x)), true
	case float64:
		return floatKey(x), true
	default:
		return fmt.Sprint(x), true
	}
}

func floatKey(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
