package predict

import (
	"sort"

	"github.com/Mahadih534/FalconVis/stats"
)

// TeamSummary is one team's line in an alliance breakdown.
type TeamSummary struct {
	Team                int
	AveragePoints       float64
	AverageTeleopCycles float64
	DriverRating        float64
	CounterDefenseSkill float64
}

// DefenseIndex is driver rating over counter-defense skill: a team that drives
// well but struggles against defense gains the most from being defended. 0
// when the team has no counter-defense rating.
func (t TeamSummary) DefenseIndex() float64 {
	if t.CounterDefenseSkill == 0 {
		return 0
	}
	return t.DriverRating / t.CounterDefenseSkill
}

// AllianceBreakdown summarises one alliance for match planning.
type AllianceBreakdown struct {
	Teams []TeamSummary
	// FastestCyclers orders the teams by average teleop cycles, fastest first.
	FastestCyclers []int
	// BestToDefend is the team with the highest DefenseIndex, or 0 when no
	// team has ratings to compare.
	BestToDefend int
	CoopChance   float64
}

// Breakdown builds the alliance summary from engine metrics.
func Breakdown(s *stats.CalculatedStats, teams []int) AllianceBreakdown {
	b := AllianceBreakdown{
		Teams:          make([]TeamSummary, len(teams)),
		FastestCyclers: append([]int(nil), teams...),
		CoopChance:     s.CoopBonusChance(teams...),
	}
	cycles := make(map[int]float64, len(teams))
	bestIndex := 0.0
	for i, team := range teams {
		ts := TeamSummary{
			Team:                team,
			AveragePoints:       s.AveragePointsContributed(team, stats.PhaseAll),
			AverageTeleopCycles: s.AverageCycles(team, stats.PhaseTeleop),
			DriverRating:        s.AverageDriverRating(team),
			CounterDefenseSkill: s.AverageCounterDefenseSkill(team),
		}
		b.Teams[i] = ts
		cycles[team] = ts.AverageTeleopCycles
		if idx := ts.DefenseIndex(); idx > bestIndex {
			bestIndex = idx
			b.BestToDefend = team
		}
	}
	sort.SliceStable(b.FastestCyclers, func(i, j int) bool {
		return cycles[b.FastestCyclers[i]] > cycles[b.FastestCyclers[j]]
	})
	return b
}
