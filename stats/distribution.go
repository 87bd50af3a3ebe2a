package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// IntOrFloat64 is the set of sample types the summary helpers accept.
type IntOrFloat64 interface {
	int | int64 | float64
}

func toFloats[T IntOrFloat64](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// CalculateMean returns the arithmetic mean, or 0 for an empty slice.
func CalculateMean[T IntOrFloat64](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(toFloats(values), nil)
}

// PopulationMeanVariance returns the mean and population (divide by n)
// variance, or zeros for an empty slice.
func PopulationMeanVariance(values []float64) (mean, variance float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.PopMeanVariance(values, nil)
}

// CalculatePercentile returns the q-th quantile (0 <= q <= 1) by linear
// interpolation between order statistics at rank q*(n-1). q is clamped to
// [0, 1] and NaN is treated as 0; an empty slice yields 0. The input is not
// modified.
func CalculatePercentile[T IntOrFloat64](values []T, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := toFloats(values)
	sort.Float64s(sorted)
	return percentile(sorted, q)
}

// CalculateIQR returns the interquartile range (Q3 - Q1) using the same
// interpolation as CalculatePercentile. Fewer than two values yield 0.
func CalculateIQR(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentile(sorted, 0.75) - percentile(sorted, 0.25)
}

// percentile computes the q-th quantile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	if math.IsNaN(q) {
		q = 0
	}
	q = math.Max(0, math.Min(1, q))
	rank := q * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Distribution summarises one team metric across matches.
type Distribution struct {
	Count  int
	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	IQR    float64
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, variance := PopulationMeanVariance(sorted)
	d := Distribution{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.5),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) >= 2 {
		d.IQR = d.Q3 - d.Q1
	}
	return d
}

// safeDivide returns num/den, or 0 when den is 0.
func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
