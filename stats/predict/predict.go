// Package predict estimates match outcomes from per-team scoring
// distributions. Each alliance is the sum of independent team distributions;
// the red-minus-blue differential is modelled as a Normal and integrated on
// either side of zero.
package predict

import (
	"math"

	"github.com/Mahadih534/FalconVis/stats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// FallbackStdDev is the differential spread used when neither mean nor
	// variance carries any information.
	FallbackStdDev = 0.5

	// DefaultFoulRate scales predicted scores for points awarded from fouls.
	DefaultFoulRate = 1.06

	// tailSigmas bounds the integration range; the Normal density underflows
	// float64 well before 40 standard deviations.
	tailSigmas = 40
	// legendreNodes is the number of Gauss-Legendre nodes per one-sigma panel.
	legendreNodes = 16
)

// ScoringSource provides per-match point contributions for a team.
// *stats.CalculatedStats satisfies it.
type ScoringSource interface {
	PointsContributedByMatch(team int, phase stats.Phase) []float64
}

// Option applies a configuration option to a Predictor.
type Option func(*Predictor)

// WithFoulRate sets the multiplier applied to predicted scores. A rate of 0
// leaves scores unscaled.
func WithFoulRate(rate float64) Option {
	return func(p *Predictor) {
		p.foulRate = rate
	}
}

// Predictor turns team scoring histories into win probabilities.
// It holds no mutable state.
type Predictor struct {
	src      ScoringSource
	foulRate float64
}

// New creates a Predictor reading from src.
func New(src ScoringSource, opts ...Option) *Predictor {
	p := &Predictor{src: src, foulRate: DefaultFoulRate}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AllianceDistribution is the summed scoring distribution of an alliance.
type AllianceDistribution struct {
	Teams     []int
	TeamMeans []float64
	Mean      float64
	Variance  float64
	StdDev    float64
}

// Outcome is the result of one prediction.
type Outcome struct {
	Red          AllianceDistribution
	Blue         AllianceDistribution
	Differential distuv.Normal // red minus blue

	// The probabilities come from separate integrations and need not sum to
	// exactly 1.
	RedWinProbability  float64
	BlueWinProbability float64

	RedPredictedScore  float64
	BluePredictedScore float64
}

// Predict computes win probabilities for red against blue. Teams with no
// recorded matches contribute mean 0 and variance 0.
func (p *Predictor) Predict(red, blue []int) Outcome {
	r := p.Alliance(red)
	b := p.Alliance(blue)

	mean := r.Mean - b.Mean
	sd := math.Sqrt(r.Variance + b.Variance)
	switch {
	case sd == 0 && mean != 0:
		sd = math.Abs(mean)
	case sd == 0:
		sd = FallbackStdDev
	}
	diff := distuv.Normal{Mu: mean, Sigma: sd}

	return Outcome{
		Red:                r,
		Blue:               b,
		Differential:       diff,
		RedWinProbability:  positiveMass(mean, sd),
		BlueWinProbability: positiveMass(-mean, sd),
		RedPredictedScore:  p.PredictedScore(r),
		BluePredictedScore: p.PredictedScore(b),
	}
}

// Alliance sums the scoring distributions of teams, assuming independence.
func (p *Predictor) Alliance(teams []int) AllianceDistribution {
	a := AllianceDistribution{
		Teams:     append([]int(nil), teams...),
		TeamMeans: make([]float64, len(teams)),
	}
	for i, team := range teams {
		mean, variance := stats.PopulationMeanVariance(p.src.PointsContributedByMatch(team, stats.PhaseAll))
		a.TeamMeans[i] = mean
		a.Mean += mean
		a.Variance += variance
	}
	a.StdDev = math.Sqrt(a.Variance)
	return a
}

// PredictedScore is the alliance mean scaled by the foul rate.
func (p *Predictor) PredictedScore(a AllianceDistribution) float64 {
	if p.foulRate == 0 {
		return a.Mean
	}
	return a.Mean * p.foulRate
}

// positiveMass integrates the Normal(mu, sigma) density over (0, +inf).
// Blue's probability is the same integral for the mirrored differential, so
// swapping alliances swaps the two results exactly.
func positiveMass(mu, sigma float64) float64 {
	density := distuv.Normal{Mu: mu, Sigma: sigma}
	lo := math.Max(0, mu-tailSigmas*sigma)
	hi := mu + tailSigmas*sigma
	if hi <= lo {
		return 0
	}
	panels := int(math.Min(math.Ceil((hi-lo)/sigma), 2*tailSigmas))
	if panels < 1 {
		panels = 1
	}
	width := (hi - lo) / float64(panels)
	total := 0.0
	for i := 0; i < panels; i++ {
		a := lo + float64(i)*width
		total += quad.Fixed(density.Prob, a, a+width, legendreNodes, quad.Legendre{}, 0)
	}
	return total
}
