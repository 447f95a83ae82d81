package ufloat

import "gonum.org/v1/gonum/floats/scalar"

// ApproxEqual reports whether nominal values and uncertainties of a and b are
// each equal within an absolute or relative tolerance tol.
func ApproxEqual(a, b UFloat, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a.n, b.n, tol, tol) &&
		scalar.EqualWithinAbsOrRel(a.s, b.s, tol, tol)
}
