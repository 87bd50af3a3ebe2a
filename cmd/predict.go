package cmd

import (
	"fmt"
	"io"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/Mahadih534/FalconVis/stats/predict"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	redAlliance  string // Comma-separated red alliance teams
	blueAlliance string // Comma-separated blue alliance teams
)

// predictCmd estimates the outcome of a red vs. blue match
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict win probabilities and scores for a match",
	Run: func(cmd *cobra.Command, args []string) {
		red, err := parseTeams(redAlliance)
		if err != nil {
			logrus.Fatalf("Invalid --red: %v", err)
		}
		blue, err := parseTeams(blueAlliance)
		if err != nil {
			logrus.Fatalf("Invalid --blue: %v", err)
		}
		s, err := loadEngine(cmd.Context())
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}
		if err := writePrediction(cmd.OutOrStdout(), s, red, blue, outputFormat); err != nil {
			logrus.Fatalf("Failed to write prediction: %v", err)
		}
	},
}

type allianceReport struct {
	Teams          []int                     `json:"teams"`
	Mean           float64                   `json:"mean"`
	StdDev         float64                   `json:"std_dev"`
	PredictedScore float64                   `json:"predicted_score"`
	WinProbability float64                   `json:"win_probability"`
	Breakdown      predict.AllianceBreakdown `json:"breakdown"`
}

type predictionReport struct {
	Red  allianceReport `json:"red"`
	Blue allianceReport `json:"blue"`
}

func writePrediction(w io.Writer, s *stats.CalculatedStats, red, blue []int, format string) error {
	p := predict.New(s, predict.WithFoulRate(s.Game().AverageFoulRate))
	o := p.Predict(red, blue)
	logrus.Debugf("Differential N(%.2f, %.2f)", o.Differential.Mu, o.Differential.Sigma)

	r := predictionReport{
		Red: allianceReport{
			Teams:          o.Red.Teams,
			Mean:           o.Red.Mean,
			StdDev:         o.Red.StdDev,
			PredictedScore: o.RedPredictedScore,
			WinProbability: o.RedWinProbability,
			Breakdown:      predict.Breakdown(s, red),
		},
		Blue: allianceReport{
			Teams:          o.Blue.Teams,
			Mean:           o.Blue.Mean,
			StdDev:         o.Blue.StdDev,
			PredictedScore: o.BluePredictedScore,
			WinProbability: o.BlueWinProbability,
			Breakdown:      predict.Breakdown(s, blue),
		},
	}
	if format == formatJSON {
		return writeJSON(w, r)
	}

	for _, a := range []struct {
		name string
		r    allianceReport
	}{{"Red", r.Red}, {"Blue", r.Blue}} {
		fmt.Fprintf(w, "%s %v: %s to win, predicted score %s (mean %s, sd %s)\n",
			a.name, a.r.Teams, percent(a.r.WinProbability), round1(a.r.PredictedScore), round1(a.r.Mean), round1(a.r.StdDev))
	}
	for _, a := range []struct {
		name string
		b    predict.AllianceBreakdown
	}{{"Red", r.Red.Breakdown}, {"Blue", r.Blue.Breakdown}} {
		fmt.Fprintf(w, "\n%s alliance\n", a.name)
		tw := newTable(w)
		fmt.Fprintln(tw, "TEAM\tAVG POINTS\tTELEOP CYCLES\tDRIVER\tCOUNTER-DEFENSE")
		for _, t := range a.b.Teams {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.Team, round1(t.AveragePoints), round1(t.AverageTeleopCycles),
				round1(t.DriverRating), round1(t.CounterDefenseSkill))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Fastest cyclers: %v\n", a.b.FastestCyclers)
		if a.b.BestToDefend != 0 {
			fmt.Fprintf(w, "Best to defend: %d\n", a.b.BestToDefend)
		}
		fmt.Fprintf(w, "Chance of co-op bonus: %s\n", percent(a.b.CoopChance))
	}
	return nil
}

func init() {
	predictCmd.Flags().StringVar(&redAlliance, "red", "", "Red alliance teams, comma-separated")
	predictCmd.Flags().StringVar(&blueAlliance, "blue", "", "Blue alliance teams, comma-separated")
}
