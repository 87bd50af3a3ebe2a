package stats

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Record is one team's observed performance in one match.
type Record struct {
	MatchKey    string
	MatchNumber int // derived from MatchKey by NewDataset
	TeamNumber  int // 0 when the source left the team blank
	Fields      map[string]any
}

// HasTeam reports whether the record names a team.
func (r Record) HasTeam() bool {
	return r.TeamNumber > 0
}

// Value returns the raw value of field. Structural fields are answered from
// the record itself.
func (r Record) Value(field string) (any, bool) {
	switch field {
	case FieldMatchKey:
		return r.MatchKey, true
	case FieldMatchNumber:
		return r.MatchNumber, true
	case FieldTeamNumber:
		if !r.HasTeam() {
			return nil, false
		}
		return r.TeamNumber, true
	}
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Number returns field as a float64. Absent, blank and non-numeric values are
// reported as *MissingFieldError.
func (r Record) Number(field string) (float64, error) {
	v, ok := r.Value(field)
	if ok {
		if f, ok := numericValue(v); ok {
			return f, nil
		}
	}
	return 0, &MissingFieldError{Field: field, MatchKey: r.MatchKey, Team: r.TeamNumber}
}

// Text returns field as trimmed text, or "" when absent.
func (r Record) Text(field string) string {
	v, ok := r.Value(field)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(v)
}

// numericValue coerces the value shapes produced by JSON, CSV and SQL sources.
func numericValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		switch strings.ToLower(s) {
		case "true":
			return 1, true
		case "false":
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var matchNumberPattern = regexp.MustCompile(`(\d+)\D*$`)

// ParseMatchNumber extracts the match number from a key such as
// "2024vaash_qm12" (12). The last run of digits wins so that the event year is
// never mistaken for the match number. The competition level is not encoded:
// playoff keys such as "2024vaash_sf1m1" yield 1 and sort alongside qm1, so
// datasets mixing qualification and playoff matches are not ordered by level.
func ParseMatchNumber(matchKey string) (int, error) {
	m := matchNumberPattern.FindStringSubmatch(matchKey)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMatchKey, matchKey)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedMatchKey, matchKey, err)
	}
	return n, nil
}

// ParseTeamNumber converts a raw team value to a team number. Blank values
// yield 0 with no error; "frc4099" style keys are accepted.
func ParseTeamNumber(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case bool:
		return 0, fmt.Errorf("team number %v is not an integer", x)
	case string:
		s := strings.TrimSpace(x)
		s = strings.TrimPrefix(strings.ToLower(s), "frc")
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("team number %q is not an integer", x)
		}
		if n < 0 {
			return 0, fmt.Errorf("team number %d is negative", n)
		}
		return n, nil
	default:
		f, ok := numericValue(v)
		if !ok || f != math.Trunc(f) {
			return 0, fmt.Errorf("team number %v is not an integer", v)
		}
		if f < 0 {
			return 0, fmt.Errorf("team number %v is negative", v)
		}
		return int(f), nil
	}
}
