package ufloat

import (
	gomath "math"
	"strconv"

	"go.uber.org/zap/zapcore"
)

// UFloat is a nominal value paired with its standard uncertainty.
// Operations never modify a UFloat; they return a new one.
type UFloat struct {
	n float64
	s float64
}

// New creates a measured value. Neither argument is validated.
func New(n, s float64) UFloat {
	return UFloat{n: n, s: s}
}

// Exact creates a value with zero uncertainty.
func Exact(n float64) UFloat {
	return UFloat{n: n}
}

// Nominal returns the best estimate.
func (u UFloat) Nominal() float64 {
	return u.n
}

// Uncertainty returns the standard uncertainty (one standard deviation).
func (u UFloat) Uncertainty() float64 {
	return u.s
}

// Variance returns the squared uncertainty.
func (u UFloat) Variance() float64 {
	return u.s * u.s
}

// RelativeUncertainty returns |s/n|. It is Inf or NaN when the nominal value is zero.
func (u UFloat) RelativeUncertainty() float64 {
	return gomath.Abs(u.fractional())
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (u UFloat) IsFinite() bool {
	return isFinite(u.n) && isFinite(u.s)
}

// fractional is the signed ratio s/n used by the product rules.
func (u UFloat) fractional() float64 {
	return u.s / u.n
}

// String renders the value as "<nominal>+/-<uncertainty>".
func (u UFloat) String() string {
	return formatFloat(u.n) + "+/-" + formatFloat(u.s)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (u UFloat) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("nominal", u.n)
	enc.AddFloat64("uncertainty", u.s)
	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func isFinite(x float64) bool {
	return !gomath.IsNaN(x) && !gomath.IsInf(x, 0)
}
