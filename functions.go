package ufloat

import (
	gomath "math"

	"github.com/GriffinCanCode/ufloat/internal/propagate"
)

// Sin returns sin(u), u in radians.
func (u UFloat) Sin() UFloat {
	return New(gomath.Sin(u.n), propagate.Linear(gomath.Cos(u.n), u.s))
}

// Cos returns cos(u), u in radians.
func (u UFloat) Cos() UFloat {
	return New(gomath.Cos(u.n), propagate.Linear(gomath.Sin(u.n), u.s))
}

// Tan returns tan(u), u in radians.
func (u UFloat) Tan() UFloat {
	c := gomath.Cos(u.n)
	return New(gomath.Tan(u.n), propagate.Linear(1/(c*c), u.s))
}

// Log returns the logarithm of u in the given base.
// The uncertainty is s/(n*ln(base)) and keeps its sign.
func (u UFloat) Log(base float64) UFloat {
	lnBase := gomath.Log(base)
	return New(gomath.Log(u.n)/lnBase, u.s/(u.n*lnBase))
}

// Ln returns the natural logarithm of u.
func (u UFloat) Ln() UFloat {
	return u.Log(gomath.E)
}

// Log10 returns the base-10 logarithm of u.
func (u UFloat) Log10() UFloat {
	return u.Log(10)
}

// Powf raises u to an exact power p.
func (u UFloat) Powf(p float64) UFloat {
	return New(gomath.Pow(u.n, p), propagate.Linear(p*gomath.Pow(u.n, p-1), u.s))
}

// Sqrt is Powf(0.5).
func (u UFloat) Sqrt() UFloat {
	return u.Powf(0.5)
}

// Exp returns e^u. Since d/dx e^x = e^x the uncertainty is e^n * s.
func (u UFloat) Exp() UFloat {
	n := gomath.Exp(u.n)
	return New(n, n*u.s)
}
