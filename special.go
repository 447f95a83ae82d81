package ufloat

import (
	gomath "math"

	"github.com/GriffinCanCode/ufloat/internal/propagate"
	"gonum.org/v1/gonum/mathext"
)

// twoOverSqrtPi is the leading factor of d/dx erf(x).
const twoOverSqrtPi = 2 / gomath.SqrtPi

// Erf returns the error function of u.
func (u UFloat) Erf() UFloat {
	return New(gomath.Erf(u.n), propagate.Linear(twoOverSqrtPi*gomath.Exp(-u.n*u.n), u.s))
}

// Erfc returns the complementary error function of u.
func (u UFloat) Erfc() UFloat {
	return New(gomath.Erfc(u.n), propagate.Linear(twoOverSqrtPi*gomath.Exp(-u.n*u.n), u.s))
}

// Gamma returns Γ(u). The derivative is Γ(n)ψ(n).
func (u UFloat) Gamma() UFloat {
	g := gomath.Gamma(u.n)
	return New(g, propagate.Linear(g*mathext.Digamma(u.n), u.s))
}

// Lgamma returns ln|Γ(u)|. The derivative is ψ(n).
func (u UFloat) Lgamma() UFloat {
	lg, _ := gomath.Lgamma(u.n)
	return New(lg, propagate.Linear(mathext.Digamma(u.n), u.s))
}
