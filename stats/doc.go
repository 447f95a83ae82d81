// Package stats combines many measured values into one.
//
// This package is organized around three tasks:
//   - folds: Sum and Product apply the pairwise rules left to right
//   - estimation: WeightedMean (inverse-variance) and FromSamples (mean and standard error)
//   - comparison: Discrepancy, Agreement and Consistent test whether two values agree
//
// Built on gonum.org/v1/gonum/stat for the estimators and stat/distuv for the
// normal-distribution p-values.
//
// Example Usage:
//
//	best, err := stats.WeightedMean(ufloat.New(10.1, 0.2), ufloat.New(9.8, 0.3))
//	if err != nil {
//		return err
//	}
package stats
