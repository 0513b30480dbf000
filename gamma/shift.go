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

// shiftDown applies Gamma(x+1) = x·Gamma(x) until the argument lands in
// [1.5, 2.5). It returns the accumulated product P = (x-1)(x-2)...(x-n) and
// the reduced argument r = x-n, so that Gamma(x) = P·Gamma(r).
//
// x must be at least 1.5. Every factor x-k is exact because it keeps the
// binary grid of x, and P is carried as a Double.
func shiftDown(x float64) (ddouble.Double, float64) {
	n := math.Floor(x - 1.5)
	p := ddouble.New(1)
	for k := 1.0; k <= n; k++ {
		p = ddouble.MulFloat(p, x-k)
	}
	return p, x - n
}

// unitSeam is where unitLogGamma switches from lgamma1p to lgamma2p.
const unitSeam = 1.4

// unitLogGamma returns lgamma(x) for x in [0.5, 2.5). The seam lies below
// the minimum of Gamma at 1.4616.
func unitLogGamma(x float64) float64 {
	if x < unitSeam {
		return lgamma1p(x - 1)
	}
	return lgamma2p(x - 2)
}

func logGammaNearZero(x float64) (ddouble.Double, int) {
	l := ddouble.AddFloat(ddouble.Log(math.Abs(x)).Neg(), lgamma1p(x))
	if x < 0 {
		return l, -1
	}
	return l, 1
}

func gammaNearZero(x float64) float64 {
	return math.Exp(lgamma1p(x)) / x
}

func logGammaUnit(x float64) (ddouble.Double, int) {
	return ddouble.New(unitLogGamma(x)), 1
}

func gammaUnit(x float64) float64 {
	return math.Exp(unitLogGamma(x))
}

func logGammaShifted(x float64) (ddouble.Double, int) {
	p, r := shiftDown(x)
	return ddouble.AddFloat(ddouble.LogDouble(p), lgamma2p(r-2)), 1
}

func gammaShifted(x float64) float64 {
	return gammaShiftedDouble(x).Float64()
}

// gammaShiftedDouble returns Gamma(x) for x >= 1.5 before the final
// rounding.
func gammaShiftedDouble(x float64) ddouble.Double {
	p, r := shiftDown(x)
	return ddouble.MulFloat(p, math.Exp(lgamma2p(r-2)))
}
