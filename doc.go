// Package ufloat provides a measured value type that carries its standard uncertainty
// through arithmetic and common mathematical functions.
//
// Uncertainty is propagated to first order under the assumption that operands are
// statistically independent:
//   - Add, Sub: absolute uncertainties combine in quadrature
//   - Mul, Div: relative uncertainties combine in quadrature
//   - Sin, Cos, Tan, Log, Ln, Log10, Powf, Sqrt, Exp: |f'(n)| * s
//   - Erf, Erfc, Gamma, Lgamma: same rule, digamma from gonum.org/v1/gonum/mathext
//
// Invalid inputs are never rejected. Division by a zero nominal value, logarithms of
// non-positive numbers and similar cases produce NaN or Inf following IEEE 754.
//
// Example Usage:
//
//	length := ufloat.New(12.3, 0.2)
//	width := ufloat.New(4.1, 0.1)
//	area := length.Mul(width)
//	fmt.Println(area) // approximately 50.43+/-1.478
package ufloat
