package stats

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/GriffinCanCode/ufloat"
)

var (
	ErrNoValues      = errors.New("no values")
	ErrTooFewSamples = errors.New("at least two samples required")
)

// Sum adds values left to right. An empty sum is 0+/-0.
func Sum(values ...ufloat.UFloat) ufloat.UFloat {
	return lo.Reduce(values, func(acc ufloat.UFloat, v ufloat.UFloat, _ int) ufloat.UFloat {
		return ufloat.Add(acc, v)
	}, ufloat.UFloat{})
}

// Product multiplies values left to right. An empty product is 1+/-0.
func Product(values ...ufloat.UFloat) ufloat.UFloat {
	if len(values) == 0 {
		return ufloat.Exact(1)
	}
	return lo.Reduce(values[1:], func(acc ufloat.UFloat, v ufloat.UFloat, _ int) ufloat.UFloat {
		return ufloat.Mul(acc, v)
	}, values[0])
}

// WeightedMean is the inverse-variance weighted mean of independent
// measurements of the same quantity. Its uncertainty is 1/sqrt(sum of weights).
func WeightedMean(values ...ufloat.UFloat) (ufloat.UFloat, error) {
	if len(values) == 0 {
		return ufloat.UFloat{}, fmt.Errorf("weighted mean: %w", ErrNoValues)
	}

	nominals := lo.Map(values, func(v ufloat.UFloat, _ int) float64 { return v.Nominal() })
	weights := lo.Map(values, func(v ufloat.UFloat, _ int) float64 { return 1 / v.Variance() })

	mean := stat.Mean(nominals, weights)
	return ufloat.New(mean, 1/gomath.Sqrt(floats.Sum(weights))), nil
}

// FromSamples estimates a measured value from repeated observations: the sample
// mean with the standard error of the mean as its uncertainty.
func FromSamples(xs []float64) (ufloat.UFloat, error) {
	if len(xs) < 2 {
		return ufloat.UFloat{}, fmt.Errorf("from samples: got %d: %w", len(xs), ErrTooFewSamples)
	}

	mean, std := stat.MeanStdDev(xs, nil)
	return ufloat.New(mean, stat.StdErr(std, float64(len(xs)))), nil
}

// Discrepancy is the distance between two nominal values in units of their
// combined uncertainty.
func Discrepancy(a, b ufloat.UFloat) float64 {
	d := ufloat.Sub(a, b)
	return gomath.Abs(d.Nominal() / d.Uncertainty())
}

// Agreement is the two-sided probability of observing at least the given
// discrepancy if a and b measure the same quantity.
func Agreement(a, b ufloat.UFloat) float64 {
	return 2 * distuv.UnitNormal.Survival(Discrepancy(a, b))
}

// Consistent reports whether a and b differ by at most k combined standard uncertainties.
func Consistent(a, b ufloat.UFloat, k float64) bool {
	return Discrepancy(a, b) <= k
}
