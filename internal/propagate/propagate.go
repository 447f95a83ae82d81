// Package propagate holds the first-order propagation rules shared by every
// measured-value operation.
package propagate

import gomath "math"

// Quadrature combines two independent uncertainties as sqrt(a^2 + b^2).
func Quadrature(a, b float64) float64 {
	return gomath.Sqrt(a*a + b*b)
}

// Relative scales the quadrature sum of two fractional uncertainties by the result n.
func Relative(n, r1, r2 float64) float64 {
	return n * Quadrature(r1, r2)
}

// Linear is the first-order uncertainty of f(x) given f'(x) and the uncertainty of x.
func Linear(deriv, s float64) float64 {
	return gomath.Abs(deriv * s)
}
