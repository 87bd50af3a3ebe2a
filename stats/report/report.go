// Package report composes engine metrics into the views a scouting lead
// reads: a per-team card ranked against the event, and a sortable picklist.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mahadih534/FalconVis/stats"
)

// Metric is one team value shown against the event-wide threshold.
type Metric struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	// Inverted marks metrics where lower is better.
	Inverted bool `json:"inverted"`
}

// AboveThreshold reports whether the value beats the threshold: strictly
// greater, or strictly less when the metric is inverted.
func (m Metric) AboveThreshold() bool {
	if m.Inverted {
		return m.Value < m.Threshold
	}
	return m.Value > m.Threshold
}

type namedMetric struct {
	name     string
	fn       stats.MetricFunc
	inverted bool
}

// catalogue is in team card display order.
var catalogue = []namedMetric{
	{"Average Points Contributed", func(s *stats.CalculatedStats, team int) float64 {
		return s.AveragePointsContributed(team, stats.PhaseAll)
	}, false},
	{"Average Auto Cycles", func(s *stats.CalculatedStats, team int) float64 {
		return s.AverageCycles(team, stats.PhaseAuto)
	}, false},
	{"Average Teleop Cycles", func(s *stats.CalculatedStats, team int) float64 {
		return s.AverageCycles(team, stats.PhaseTeleop)
	}, false},
	{"IQR of Points Contributed", func(s *stats.CalculatedStats, team int) float64 {
		return stats.CalculateIQR(s.PointsContributedByMatch(team, stats.PhaseAll))
	}, true},
	{"Average Driver Rating", (*stats.CalculatedStats).AverageDriverRating, false},
	{"Average Counter Defense Skill", (*stats.CalculatedStats).AverageCounterDefenseSkill, false},
	{"Leave Rate", (*stats.CalculatedStats).LeaveRate, false},
	{"Disables", (*stats.CalculatedStats).DisableCount, true},
}

// MetricNames lists the names accepted by Picklist, in team card order.
func MetricNames() []string {
	names := make([]string, len(catalogue))
	for i, m := range catalogue {
		names[i] = m.name
	}
	return names
}

func lookup(name string) (namedMetric, bool) {
	for _, m := range catalogue {
		if strings.EqualFold(m.name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return namedMetric{}, false
}

// TeamCard evaluates every catalogue metric for team, each with the event
// quantile of the same metric as its threshold.
func TeamCard(s *stats.CalculatedStats, team int, quantile float64) []Metric {
	card := make([]Metric, len(catalogue))
	for i, m := range catalogue {
		card[i] = Metric{
			Name:      m.name,
			Value:     m.fn(s, team),
			Threshold: s.QuantileStat(quantile, m.fn),
			Inverted:  m.inverted,
		}
	}
	return card
}

// PicklistRow is one team with the requested metric values, in field order.
type PicklistRow struct {
	Team   int       `json:"team"`
	Values []float64 `json:"values"`
}

// Picklist evaluates fields for every roster team and sorts the rows by the
// first field, highest first (lowest first for inverted metrics). Ties keep
// team number order.
func Picklist(s *stats.CalculatedStats, fields []string) ([]PicklistRow, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("picklist: no fields requested; valid: %s", strings.Join(MetricNames(), ", "))
	}
	metrics := make([]namedMetric, len(fields))
	for i, f := range fields {
		m, ok := lookup(f)
		if !ok {
			return nil, fmt.Errorf("picklist: unknown field %q; valid: %s", f, strings.Join(MetricNames(), ", "))
		}
		metrics[i] = m
	}

	roster := s.Dataset().TeamRoster()
	rows := make([]PicklistRow, len(roster))
	for i, team := range roster {
		values := make([]float64, len(metrics))
		for j, m := range metrics {
			values[j] = m.fn(s, team)
		}
		rows[i] = PicklistRow{Team: team, Values: values}
	}

	first := metrics[0]
	sort.SliceStable(rows, func(i, j int) bool {
		if first.inverted {
			return rows[i].Values[0] < rows[j].Values[0]
		}
		return rows[i].Values[0] > rows[j].Values[0]
	})
	return rows, nil
}
