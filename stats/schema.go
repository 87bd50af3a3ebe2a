package stats

import (
	"fmt"
	"strings"
)

// Field names used by the scouting app export. Loaders and the engine agree on
// these exactly.
const (
	FieldMatchKey    = "MatchKey"
	FieldMatchNumber = "MatchNumber"
	FieldTeamNumber  = "TeamNumber"

	FieldAutoSpeaker = "AutoSpeaker"
	FieldAutoAmp     = "AutoAmp"
	FieldAutoLeave   = "AutoLeave"

	FieldTeleopSpeaker = "TeleopSpeaker"
	FieldTeleopAmp     = "TeleopAmp"
	FieldTeleopTrap    = "TeleopTrap"

	FieldParked      = "Parked"
	FieldClimbStatus = "ClimbStatus"
	FieldHarmonized  = "Harmonized"
	FieldClimbSpeed  = "ClimbSpeed"

	FieldDriverRating        = "DriverRating"
	FieldDefenseTime         = "DefenseTime"
	FieldDefenseSkill        = "DefenseSkill"
	FieldCounterDefenseSkill = "CounterDefenseSkill"
	FieldDisabled            = "Disabled"

	FieldNotes = "Notes"
)

// RequiredFields are the structural columns every source must provide.
var RequiredFields = []string{FieldMatchKey, FieldTeamNumber}

// Phase selects a temporal segment of a match.
type Phase int

const (
	PhaseAll Phase = iota
	PhaseAuto
	PhaseTeleop
	PhaseEndgame
)

func (p Phase) String() string {
	switch p {
	case PhaseAll:
		return "all"
	case PhaseAuto:
		return "auto"
	case PhaseTeleop:
		return "teleop"
	case PhaseEndgame:
		return "endgame"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase maps a case-insensitive name ("all", "auto", "teleop", "endgame")
// to a Phase.
func ParsePhase(name string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return PhaseAll, nil
	case "auto", "autonomous":
		return PhaseAuto, nil
	case "teleop":
		return PhaseTeleop, nil
	case "endgame":
		return PhaseEndgame, nil
	default:
		return PhaseAll, fmt.Errorf("unknown phase %q; valid: all, auto, teleop, endgame", name)
	}
}
