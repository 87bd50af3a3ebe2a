package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMatchKey is returned by NewDataset when a match key carries no
	// match number.
	ErrMalformedMatchKey = errors.New("malformed match key")

	// ErrDuplicateRecord is returned by NewDataset when two records share a
	// (match key, team number) pair.
	ErrDuplicateRecord = errors.New("duplicate record")
)

// MissingFieldError reports a record without a usable value for a field.
// Aggregations absorb it as a zero contribution.
type MissingFieldError struct {
	Field    string
	MatchKey string
	Team     int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("match %s team %d: missing field %q", e.MatchKey, e.Team, e.Field)
}

// UnmappableValueError reports a categorical value absent from a criteria table.
type UnmappableValueError struct {
	Criteria string
	Value    any
}

func (e *UnmappableValueError) Error() string {
	return fmt.Sprintf("criteria %s: no score for value %v", e.Criteria, e.Value)
}
