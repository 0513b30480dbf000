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
	"github.com/ajroetker/go-gamma/internal/poly"
)

// MaxArg is the largest x for which Gamma(x) is finite.
const MaxArg = 171.61447887182298

// hugeArg is where x-0.5 stops being exact; beyond it the leading terms are
// evaluated in plain float64 arithmetic, which is already relatively exact.
const hugeArg = 0x1p52

// stirlingCoeffs are B₂ₖ/(2k(2k-1)) for k = 1..8, in powers of 1/x².
// The series is asymptotic, so the term count is fixed: at x = 20 the first
// omitted term is below 1e-23.
var stirlingCoeffs = [...]float64{
	1.0 / 12,
	-1.0 / 360,
	1.0 / 1260,
	-1.0 / 1680,
	1.0 / 1188,
	-691.0 / 360360,
	1.0 / 156,
	-3617.0 / 122400,
}

// stirlingSeries returns Σ B₂ₖ/(2k(2k-1)·x^(2k-1)).
func stirlingSeries(x float64) float64 {
	return poly.Odd(1/x, stirlingCoeffs[:])
}

// logGammaStirling evaluates
//
//	lgamma(x) = (x-0.5)(log(x)-1) - 0.5 + ½log(2π) + Σ B₂ₖ/(2k(2k-1)·x^(2k-1))
//
// The product (x-0.5)(log(x)-1) carries the cancellation of
// (x-0.5)·log(x) - x; it is formed from a compensated log(x) and an exact
// x-0.5 in double-double arithmetic.
func logGammaStirling(x float64) (ddouble.Double, int) {
	if x >= hugeArg {
		lx := math.Log(x)
		return ddouble.New(x*(lx-1) - 0.5*lx + HalfLog2Pi), 1
	}
	xm := ddouble.TwoSum(x, -0.5)
	lx := ddouble.AddFloat(ddouble.Log(x), -1)
	r := ddouble.Mul(xm, lx)
	r = ddouble.AddFloat(r, HalfLog2Pi-0.5)
	return ddouble.AddFloat(r, stirlingSeries(x)), 1
}

func gammaStirling(x float64) float64 {
	if x > MaxArg {
		return math.Inf(1)
	}
	l, _ := logGammaStirling(x)
	return ddouble.Exp(l)
}
