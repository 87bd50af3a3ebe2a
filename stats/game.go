package stats

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig describes how a season's observations turn into points and
// cycles. Loaded from YAML via LoadGameConfig(path).
type GameConfig struct {
	Season          int          `yaml:"season"`
	AverageFoulRate float64      `yaml:"average_foul_rate"`
	Auto            PhaseScoring `yaml:"auto"`
	Teleop          PhaseScoring `yaml:"teleop"`
	Endgame         EndgameSpec  `yaml:"endgame"`
	Coop            CoopSpec     `yaml:"coop"`
	PicklistFields  []string     `yaml:"picklist_fields,omitempty"`
}

// PhaseScoring lists the scoring locations and bonuses of one phase.
type PhaseScoring struct {
	Scoring []ScoringElement `yaml:"scoring"`
	Bonuses []BonusElement   `yaml:"bonuses,omitempty"`
}

// ScoringElement is a counted field: each unit is one cycle worth Points.
type ScoringElement struct {
	Field     string  `yaml:"field"`
	Structure string  `yaml:"structure"`
	Height    string  `yaml:"height,omitempty"`
	Points    float64 `yaml:"points"`
}

// BonusElement awards Points times the criteria score of Field. It adds points
// but no cycles (leaving the starting zone, for example).
type BonusElement struct {
	Field    string  `yaml:"field"`
	Criteria string  `yaml:"criteria"`
	Points   float64 `yaml:"points"`
}

// EndgameSpec maps the categorical endgame outcome to points.
type EndgameSpec struct {
	Field    string `yaml:"field"`
	Criteria string `yaml:"criteria"`
}

// CoopSpec is the cooperative-bonus rule: the summed Fields of a match must
// reach Threshold.
type CoopSpec struct {
	Fields    []string `yaml:"fields"`
	Threshold float64  `yaml:"threshold"`
}

// DefaultGameConfig returns the 2024 configuration.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Season:          2024,
		AverageFoulRate: 1.06,
		Auto: PhaseScoring{
			Scoring: []ScoringElement{
				{Field: FieldAutoSpeaker, Structure: "speaker", Points: 5},
				{Field: FieldAutoAmp, Structure: "amp", Points: 2},
			},
			Bonuses: []BonusElement{
				{Field: FieldAutoLeave, Criteria: BooleanCriteria.Name(), Points: 2},
			},
		},
		Teleop: PhaseScoring{
			Scoring: []ScoringElement{
				{Field: FieldTeleopSpeaker, Structure: "speaker", Points: 2},
				{Field: FieldTeleopAmp, Structure: "amp", Points: 1},
				{Field: FieldTeleopTrap, Structure: "trap", Points: 5},
			},
		},
		Endgame: EndgameSpec{Field: FieldClimbStatus, Criteria: ClimbPoints.Name()},
		Coop: CoopSpec{
			Fields:    []string{FieldAutoAmp, FieldTeleopAmp},
			Threshold: 1,
		},
		PicklistFields: []string{"Average Teleop Cycles", "Average Auto Cycles"},
	}
}

// LoadGameConfig reads and validates a YAML game configuration.
// Unrecognized keys (typos) are rejected.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game config: %w", err)
	}
	var cfg GameConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating game config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all fields in the configuration are usable.
func (g *GameConfig) Validate() error {
	if err := validateFinite("average_foul_rate", g.AverageFoulRate); err != nil {
		return err
	}
	if g.AverageFoulRate < 0 {
		return fmt.Errorf("average_foul_rate must be non-negative, got %f", g.AverageFoulRate)
	}
	if err := g.Auto.validate("auto"); err != nil {
		return err
	}
	if err := g.Teleop.validate("teleop"); err != nil {
		return err
	}
	if g.Endgame.Field != "" {
		if _, ok := CriteriaByName(g.Endgame.Criteria); !ok {
			return fmt.Errorf("endgame: unknown criteria %q; valid: %v", g.Endgame.Criteria, CriteriaNames())
		}
	}
	if len(g.Coop.Fields) > 0 && g.Coop.Threshold < 1 {
		return fmt.Errorf("coop: threshold must be at least 1, got %f", g.Coop.Threshold)
	}
	for i, f := range g.Coop.Fields {
		if f == "" {
			return fmt.Errorf("coop.fields[%d]: field name required", i)
		}
	}
	return nil
}

func (p *PhaseScoring) validate(prefix string) error {
	for i, e := range p.Scoring {
		at := fmt.Sprintf("%s.scoring[%d]", prefix, i)
		if e.Field == "" {
			return fmt.Errorf("%s: field name required", at)
		}
		if err := validateFinite(at+".points", e.Points); err != nil {
			return err
		}
		if e.Points < 0 {
			return fmt.Errorf("%s: points must be non-negative, got %f", at, e.Points)
		}
	}
	for i, b := range p.Bonuses {
		at := fmt.Sprintf("%s.bonuses[%d]", prefix, i)
		if b.Field == "" {
			return fmt.Errorf("%s: field name required", at)
		}
		if _, ok := CriteriaByName(b.Criteria); !ok {
			return fmt.Errorf("%s: unknown criteria %q; valid: %v", at, b.Criteria, CriteriaNames())
		}
		if err := validateFinite(at+".points", b.Points); err != nil {
			return err
		}
		if b.Points < 0 {
			return fmt.Errorf("%s: points must be non-negative, got %f", at, b.Points)
		}
	}
	return nil
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	return nil
}

// phase returns the scoring rules for a single phase; PhaseAll and
// PhaseEndgame have none.
func (g *GameConfig) phase(p Phase) *PhaseScoring {
	switch p {
	case PhaseAuto:
		return &g.Auto
	case PhaseTeleop:
		return &g.Teleop
	default:
		return nil
	}
}

// CategoricalFields maps each criteria-scored field in the configuration to
// its criteria table. Used by Lint.
func (g *GameConfig) CategoricalFields() map[string]Criteria {
	out := map[string]Criteria{
		FieldDriverRating:        DriverRatingCriteria,
		FieldDefenseTime:         DefenseTimeCriteria,
		FieldDefenseSkill:        BasicRatingCriteria,
		FieldCounterDefenseSkill: BasicRatingCriteria,
		FieldDisabled:            BooleanCriteria,
	}
	for _, b := range append(append([]BonusElement{}, g.Auto.Bonuses...), g.Teleop.Bonuses...) {
		if c, ok := CriteriaByName(b.Criteria); ok {
			out[b.Field] = c
		}
	}
	if g.Endgame.Field != "" {
		if c, ok := CriteriaByName(g.Endgame.Criteria); ok {
			out[g.Endgame.Field] = c
		}
	}
	return out
}
