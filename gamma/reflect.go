// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gamma

import (
	"math"

	"github.com/ajroetker/go-gamma/internal/ddouble"
)

// LnPi is log(π).
const LnPi = 1.14472988584940017414342735135305871164729481291531

// piLo is π - float64(π).
const piLo = 1.2246467991473532e-16

// reflectExact is the bound on -x below which x·sin(πx)·Gamma(-x) cannot
// overflow.
const reflectExact = 170

// SinPi returns sin(πx).
//
// x is reduced exactly to |x| = n + f before multiplying by π, so the result
// keeps full relative precision near the zeros at the integers, where
// math.Sin(math.Pi*x) loses precision proportionally to |x|.
//
// Special cases are:
//
//	SinPi(±Inf) = NaN
//	SinPi(NaN) = NaN
//	SinPi(n) = ±0 for integer n
func SinPi(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return math.NaN()
	}
	y := math.Abs(x)
	n := math.Floor(y)
	f := y - n
	if f > 0.5 {
		f = 1 - f
	}
	// θ = π·f as a Double, then sin(θhi + θlo) ≈ sin(θhi) + cos(θhi)·θlo.
	theta := ddouble.AddFloat(ddouble.TwoProd(math.Pi, f), piLo*f)
	s := math.Sin(theta.Hi) + math.Cos(theta.Hi)*theta.Lo
	if math.Mod(n, 2) == 1 {
		s = -s
	}
	if x < 0 {
		s = -s
	}
	return s
}

// logGammaReflect returns lgamma(x) for non-integer x < -0.5 using
//
//	lgamma(x) = log(π) - lgamma(1-x) - log|sin(πx)|
//	          = log(π) - log|x·sin(πx)| - lgamma(-x)
//
// The second form avoids rounding 1-x. Gamma(-x) > 0, so the sign of
// Gamma(x) is the sign of sin(πx).
func logGammaReflect(x float64) (ddouble.Double, int) {
	s := SinPi(x)
	sign := 1
	if s < 0 {
		sign = -1
	}
	lg, _ := lookup(-x).logGamma(-x)
	l := ddouble.AddFloat(lg.Neg(), LnPi)
	return ddouble.AddFloat(l, -math.Log(math.Abs(x*s))), sign
}

// gammaReflect returns Gamma(x) for non-integer x < -0.5 as
//
//	Gamma(x) = -π / (x·sin(πx)·Gamma(-x))
//
// The denominator is accumulated as a Double and divided into π carried as
// a Double, leaving sin(πx) and Gamma(-x) as the only rounded inputs. For
// -x in [1.5, 20) Gamma(-x) also stays unrounded.
// Closer to MaxArg the division is split in two so that a huge Gamma(-x)
// drives the result into the subnormal range instead of overflowing the
// denominator, and once Gamma(-x) itself overflows the result is
// sign·exp(lgamma(x)).
func gammaReflect(x float64) float64 {
	switch {
	case -x < reflectExact:
		xs := ddouble.TwoProd(x, SinPi(x))
		var den ddouble.Double
		if -x >= 1.5 && -x < 20 {
			den = ddouble.Mul(xs, gammaShiftedDouble(-x))
		} else {
			den = ddouble.MulFloat(xs, lookup(-x).gamma(-x))
		}
		return ddouble.Div(ddouble.Double{Hi: -math.Pi, Lo: -piLo}, den).Float64()
	case -x < MaxArg:
		return (-math.Pi / (x * SinPi(x))) / lookup(-x).gamma(-x)
	}
	l, sign := logGammaReflect(x)
	return float64(sign) * ddouble.Exp(l)
}
