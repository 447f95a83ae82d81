package ufloat

import (
	gomath "math"

	"github.com/GriffinCanCode/ufloat/internal/propagate"
)

// Add returns a+b. Absolute uncertainties combine in quadrature.
func Add(a, b UFloat) UFloat {
	return New(a.n+b.n, propagate.Quadrature(a.s, b.s))
}

// Sub returns a-b. The uncertainty is the same as for Add.
func Sub(a, b UFloat) UFloat {
	return New(a.n-b.n, propagate.Quadrature(a.s, b.s))
}

// Mul returns a*b. Fractional uncertainties combine in quadrature and the
// result is scaled by the product, so its sign follows the product.
func Mul(a, b UFloat) UFloat {
	n := a.n * b.n
	return New(n, propagate.Relative(n, a.fractional(), b.fractional()))
}

// Div returns a/b using the same relative rule as Mul.
func Div(a, b UFloat) UFloat {
	n := a.n / b.n
	return New(n, propagate.Relative(n, a.fractional(), b.fractional()))
}

// Add returns u+v.
func (u UFloat) Add(v UFloat) UFloat { return Add(u, v) }

// Sub returns u-v.
func (u UFloat) Sub(v UFloat) UFloat { return Sub(u, v) }

// Mul returns u*v.
func (u UFloat) Mul(v UFloat) UFloat { return Mul(u, v) }

// Div returns u/v.
func (u UFloat) Div(v UFloat) UFloat { return Div(u, v) }

// Neg flips the sign of the nominal value.
func (u UFloat) Neg() UFloat {
	return New(-u.n, u.s)
}

// Scale multiplies by an exact constant.
func (u UFloat) Scale(k float64) UFloat {
	return New(k*u.n, gomath.Abs(k)*u.s)
}

// Shift adds an exact constant.
func (u UFloat) Shift(c float64) UFloat {
	return New(u.n+c, u.s)
}

// Abs returns the absolute nominal value with the same uncertainty.
func (u UFloat) Abs() UFloat {
	return New(gomath.Abs(u.n), u.s)
}
