package stats

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Dataset is the match-ordered collection of records for one event.
// It is immutable after NewDataset returns.
type Dataset struct {
	records []Record
	byTeam  map[int][]Record
	roster  []int
}

// NewDataset parses match numbers, orders records by match number (stable, so
// rows of the same match keep their input order) and indexes them by team.
// Unparseable match keys and duplicate (match, team) pairs fail construction.
func NewDataset(records []Record) (*Dataset, error) {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	type rowKey struct {
		match string
		team  int
	}
	seen := make(map[rowKey]bool, len(sorted))
	for i := range sorted {
		n, err := ParseMatchNumber(sorted[i].MatchKey)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		sorted[i].MatchNumber = n
		if !sorted[i].HasTeam() {
			continue
		}
		k := rowKey{match: sorted[i].MatchKey, team: sorted[i].TeamNumber}
		if seen[k] {
			return nil, fmt.Errorf("%w: match %s team %d", ErrDuplicateRecord, k.match, k.team)
		}
		seen[k] = true
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchNumber < sorted[j].MatchNumber
	})

	ds := &Dataset{
		records: sorted,
		byTeam:  make(map[int][]Record),
	}
	blank := 0
	for _, r := range sorted {
		if !r.HasTeam() {
			blank++
			continue
		}
		ds.byTeam[r.TeamNumber] = append(ds.byTeam[r.TeamNumber], r)
	}
	ds.roster = make([]int, 0, len(ds.byTeam))
	for team := range ds.byTeam {
		ds.roster = append(ds.roster, team)
	}
	sort.Ints(ds.roster)

	if blank > 0 {
		logrus.Debugf("dataset: %d records without a team number excluded from team views", blank)
	}
	return ds, nil
}

// Len returns the number of records, including rows without a team.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in match order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// RecordsForTeam returns the team's records in match order. Unknown teams
// yield an empty slice.
func (d *Dataset) RecordsForTeam(team int) []Record {
	rows := d.byTeam[team]
	out := make([]Record, len(rows))
	copy(out, rows)
	return out
}

// TeamRoster returns the distinct team numbers present, ascending. Rows with a
// blank team are never part of the roster.
func (d *Dataset) TeamRoster() []int {
	out := make([]int, len(d.roster))
	copy(out, d.roster)
	return out
}

// NotesForTeam returns the team's non-empty free-text notes in match order.
func (d *Dataset) NotesForTeam(team int) []string {
	var notes []string
	for _, r := range d.byTeam[team] {
		if n := r.Text(FieldNotes); n != "" {
			notes = append(notes, n)
		}
	}
	return notes
}

// teamRecords is the non-copying view used inside the package.
func (d *Dataset) teamRecords(team int) []Record {
	return d.byTeam[team]
}
