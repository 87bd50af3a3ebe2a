package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/Mahadih534/FalconVis/stats/source"
	"github.com/sirupsen/logrus"
)

// loadGame returns the game rules at path, or the built-in rules when path is
// empty.
func loadGame(path string) (*stats.GameConfig, error) {
	if path == "" {
		return stats.DefaultGameConfig(), nil
	}
	game, err := stats.LoadGameConfig(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Using %d game rules from %s", game.Season, path)
	return game, nil
}

// loadEngine reads the dataset and game rules named by the persistent flags.
func loadEngine(ctx context.Context) (*stats.CalculatedStats, error) {
	if dataPath == "" {
		return nil, fmt.Errorf("--data is required")
	}
	game, err := loadGame(gamePath)
	if err != nil {
		return nil, err
	}
	ds, err := source.Load(ctx, dataPath, eventKey)
	if err != nil {
		return nil, err
	}
	return stats.New(ds, stats.WithGame(game)), nil
}

// parseTeams parses a comma-separated alliance such as "254,1678,frc4099".
func parseTeams(list string) ([]int, error) {
	var teams []int
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		team, err := parseTeam(part)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no teams in %q", list)
	}
	return teams, nil
}

func parseTeam(arg string) (int, error) {
	team, err := stats.ParseTeamNumber(arg)
	if err != nil {
		return 0, err
	}
	if team == 0 {
		return 0, fmt.Errorf("team number %q is not positive", arg)
	}
	return team, nil
}
