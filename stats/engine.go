package stats

import (
	"github.com/sirupsen/logrus"
)

// MetricFunc computes one number for a team. It is how QuantileStat ranks a
// team against the rest of the event.
type MetricFunc func(s *CalculatedStats, team int) float64

// Option applies a configuration option to CalculatedStats.
type Option func(*CalculatedStats)

// WithGame sets the scoring rules. A nil config keeps the default.
func WithGame(g *GameConfig) Option {
	return func(s *CalculatedStats) {
		if g != nil {
			s.game = g
		}
	}
}

// CalculatedStats aggregates a Dataset into per-team and per-event metrics.
// It only reads its dataset and configuration, so one instance may serve
// concurrent callers.
type CalculatedStats struct {
	data    *Dataset
	game    *GameConfig
	endgame Criteria
}

// New builds an engine over ds. A nil dataset behaves like an empty one.
func New(ds *Dataset, opts ...Option) *CalculatedStats {
	if ds == nil {
		ds, _ = NewDataset(nil)
	}
	s := &CalculatedStats{
		data: ds,
		game: DefaultGameConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.endgame, _ = CriteriaByName(s.game.Endgame.Criteria)
	return s
}

// Dataset returns the dataset the engine reads.
func (s *CalculatedStats) Dataset() *Dataset { return s.data }

// Game returns the scoring rules in use. Callers must not modify it.
func (s *CalculatedStats) Game() *GameConfig { return s.game }

// MatchesPlayed returns the number of records for team.
func (s *CalculatedStats) MatchesPlayed(team int) int {
	return len(s.data.teamRecords(team))
}

// CyclesByMatch counts the team's scoring actions in each match for the phase.
// PhaseAll covers auto and teleop; the endgame has no cycles.
func (s *CalculatedStats) CyclesByMatch(team int, phase Phase) []float64 {
	return s.byMatch(team, func(r Record) float64 {
		return s.countMatching(r, phase, func(ScoringElement) bool { return true })
	})
}

// PointsContributedByMatch converts each match's actions and outcomes into
// points. PhaseAll sums auto, teleop and endgame.
func (s *CalculatedStats) PointsContributedByMatch(team int, phase Phase) []float64 {
	return s.byMatch(team, func(r Record) float64 {
		return s.matchPoints(r, phase)
	})
}

// AverageCycles is the mean of CyclesByMatch, 0 without matches.
func (s *CalculatedStats) AverageCycles(team int, phase Phase) float64 {
	return CalculateMean(s.CyclesByMatch(team, phase))
}

// AveragePointsContributed is the mean of PointsContributedByMatch, 0 without
// matches.
func (s *CalculatedStats) AveragePointsContributed(team int, phase Phase) float64 {
	return CalculateMean(s.PointsContributedByMatch(team, phase))
}

// AverageCyclesForStructure is the mean per-match count at one scoring
// location. structure matches either an element's structure label or its
// field name.
func (s *CalculatedStats) AverageCyclesForStructure(team int, phase Phase, structure string) float64 {
	return CalculateMean(s.byMatch(team, func(r Record) float64 {
		return s.countMatching(r, phase, func(e ScoringElement) bool {
			return e.Structure == structure || e.Field == structure
		})
	}))
}

// AverageCyclesForHeight is the mean per-match count at one scoring height.
func (s *CalculatedStats) AverageCyclesForHeight(team int, phase Phase, height string) float64 {
	return CalculateMean(s.byMatch(team, func(r Record) float64 {
		return s.countMatching(r, phase, func(e ScoringElement) bool {
			return e.Height != "" && e.Height == height
		})
	}))
}

// CumulativeStat sums the criteria score of field over the team's matches.
// Values missing from c contribute 0.
func (s *CalculatedStats) CumulativeStat(team int, field string, c Criteria) float64 {
	total := 0.0
	for _, r := range s.data.teamRecords(team) {
		total += s.criteriaScore(r, field, c)
	}
	return total
}

// AverageStat is CumulativeStat divided by the number of matches played.
func (s *CalculatedStats) AverageStat(team int, field string, c Criteria) float64 {
	return safeDivide(s.CumulativeStat(team, field, c), float64(s.MatchesPlayed(team)))
}

// QuantileStat evaluates metric for every team in the roster and returns the
// q-th quantile of the results. The population is rebuilt on every call.
func (s *CalculatedStats) QuantileStat(q float64, metric MetricFunc) float64 {
	roster := s.data.TeamRoster()
	if len(roster) == 0 {
		return 0
	}
	values := make([]float64, len(roster))
	for i, team := range roster {
		values[i] = metric(s, team)
	}
	return CalculatePercentile(values, q)
}

// AverageDriverRating is the mean driver rating on a 1-5 scale.
func (s *CalculatedStats) AverageDriverRating(team int) float64 {
	return s.AverageStat(team, FieldDriverRating, DriverRatingCriteria)
}

// AverageCounterDefenseSkill is the mean skill at playing through defense.
func (s *CalculatedStats) AverageCounterDefenseSkill(team int) float64 {
	return s.AverageStat(team, FieldCounterDefenseSkill, BasicRatingCriteria)
}

// AverageDefenseSkill is the mean rating of the team's own defense.
func (s *CalculatedStats) AverageDefenseSkill(team int) float64 {
	return s.AverageStat(team, FieldDefenseSkill, BasicRatingCriteria)
}

// AverageDefenseTime is the mean share of the match spent defending, scored
// by DefenseTimeCriteria.
func (s *CalculatedStats) AverageDefenseTime(team int) float64 {
	return s.AverageStat(team, FieldDefenseTime, DefenseTimeCriteria)
}

// LeaveRate is the percentage of matches in which the robot left its
// starting zone in auto.
func (s *CalculatedStats) LeaveRate(team int) float64 {
	return s.AverageStat(team, FieldAutoLeave, MobilityCriteria)
}

// DisableCount is the number of matches in which the robot was disabled.
func (s *CalculatedStats) DisableCount(team int) float64 {
	return s.CumulativeStat(team, FieldDisabled, BooleanCriteria)
}

// PointsDistribution summarises PointsContributedByMatch.
func (s *CalculatedStats) PointsDistribution(team int, phase Phase) Distribution {
	return NewDistribution(s.PointsContributedByMatch(team, phase))
}

func (s *CalculatedStats) byMatch(team int, fn func(Record) float64) []float64 {
	records := s.data.teamRecords(team)
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = fn(r)
	}
	return out
}

// countMatching sums the counts of the phase's scoring elements accepted by
// keep. PhaseAll walks auto then teleop.
func (s *CalculatedStats) countMatching(r Record, phase Phase, keep func(ScoringElement) bool) float64 {
	if phase == PhaseAll {
		return s.countMatching(r, PhaseAuto, keep) + s.countMatching(r, PhaseTeleop, keep)
	}
	rules := s.game.phase(phase)
	if rules == nil {
		return 0
	}
	total := 0.0
	for _, e := range rules.Scoring {
		if keep(e) {
			total += s.count(r, e.Field)
		}
	}
	return total
}

func (s *CalculatedStats) matchPoints(r Record, phase Phase) float64 {
	switch phase {
	case PhaseAll:
		return s.matchPoints(r, PhaseAuto) + s.matchPoints(r, PhaseTeleop) + s.matchPoints(r, PhaseEndgame)
	case PhaseEndgame:
		if s.game.Endgame.Field == "" {
			return 0
		}
		return s.criteriaScore(r, s.game.Endgame.Field, s.endgame)
	}
	rules := s.game.phase(phase)
	if rules == nil {
		return 0
	}
	total := 0.0
	for _, e := range rules.Scoring {
		total += s.count(r, e.Field) * e.Points
	}
	for _, b := range rules.Bonuses {
		c, _ := CriteriaByName(b.Criteria)
		total += s.criteriaScore(r, b.Field, c) * b.Points
	}
	return total
}

// count reads a per-match action count. Missing, malformed and negative
// values count as 0.
func (s *CalculatedStats) count(r Record, field string) float64 {
	n, err := r.Number(field)
	if err != nil {
		logrus.Debugf("stats: %v; counting as 0", err)
		return 0
	}
	if n < 0 {
		logrus.Debugf("stats: match %s team %d: negative %s=%v; counting as 0", r.MatchKey, r.TeamNumber, field, n)
		return 0
	}
	return n
}

func (s *CalculatedStats) criteriaScore(r Record, field string, c Criteria) float64 {
	v, ok := r.Value(field)
	if !ok {
		return 0
	}
	score, ok := c.Score(v)
	if !ok {
		logrus.Debugf("stats: match %s team %d: %s=%v not in criteria %s; scoring 0", r.MatchKey, r.TeamNumber, field, v, c.Name())
		return 0
	}
	return score
}
