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
	"math/big"

	"github.com/ajroetker/go-gamma/internal/poly"
)

// Euler is the Euler-Mascheroni constant γ.
const Euler = 0.57721566490153286060651209008240243104215933593992 // A001620

// unitTerms is the degree of the unit-interval series. For -0.6 <= z <= 0.5
// the first omitted term is below 1e-20.
const unitTerms = 40

// unitSeries holds the Taylor coefficients of lgamma(2+z) in ascending
// order starting at z¹:
//
//	lgamma(2+z) = (1-γ)z + Σ_{n>=2} (-1)^n (ζ(n)-1)/n zⁿ
//
// The table is computed once at package initialization and never written
// again.
var unitSeries = newUnitSeries()

func newUnitSeries() [unitTerms]float64 {
	var c [unitTerms]float64
	c[0] = 1 - Euler

	zeta := zetaMinusOne(unitTerms)
	for n := 2; n <= unitTerms; n++ {
		q := new(big.Float).SetPrec(zetaPrec).Quo(zeta[n], big.NewFloat(float64(n)))
		if n%2 == 1 {
			q.Neg(q)
		}
		c[n-1], _ = q.Float64()
	}
	return c
}

const (
	zetaPrec = 128
	zetaCut  = 64 // terms summed directly before the Euler-Maclaurin tail
)

// zetaMinusOne returns ζ(n)-1 for n = 2..nmax (indexed by n) to well beyond
// float64 precision.
//
// Σ_{m=2}^{M-1} m^-n is summed directly, smallest terms first, and
// Σ_{m>=M} m^-n is taken from the Euler-Maclaurin formula through the B₈
// term, whose remainder is below 1e-18 relative for M = 64.
func zetaMinusOne(nmax int) []*big.Float {
	newFloat := func() *big.Float { return new(big.Float).SetPrec(zetaPrec) }
	ratio := func(num, den int64) *big.Float {
		return newFloat().Quo(newFloat().SetInt64(num), newFloat().SetInt64(den))
	}

	inv := make([]*big.Float, zetaCut+1)
	pow := make([]*big.Float, zetaCut+1) // m^-n for the current n
	for m := 2; m <= zetaCut; m++ {
		inv[m] = ratio(1, int64(m))
		pow[m] = newFloat().Set(inv[m])
	}
	invM := inv[zetaCut]
	invM2 := newFloat().Mul(invM, invM)

	out := make([]*big.Float, nmax+1)
	for n := 2; n <= nmax; n++ {
		for m := 2; m <= zetaCut; m++ {
			pow[m].Mul(pow[m], inv[m])
		}

		sum := newFloat()
		for m := zetaCut - 1; m >= 2; m-- {
			sum.Add(sum, pow[m])
		}

		// Euler-Maclaurin tail with f(m) = m^-n evaluated at M = zetaCut.
		N := int64(n)
		fM := pow[zetaCut]
		terms := []*big.Float{
			newFloat().Quo(newFloat().Mul(fM, newFloat().SetInt64(zetaCut)), newFloat().SetInt64(N-1)),
			newFloat().Quo(fM, newFloat().SetInt64(2)),
			newFloat().Mul(newFloat().Mul(fM, invM), ratio(N, 12)),
			newFloat().Neg(newFloat().Mul(newFloat().Mul(fM, newFloat().Mul(invM, invM2)), ratio(N*(N+1)*(N+2), 720))),
		}
		invM5 := newFloat().Mul(invM, newFloat().Mul(invM2, invM2))
		terms = append(terms,
			newFloat().Mul(newFloat().Mul(fM, invM5), ratio(N*(N+1)*(N+2)*(N+3)*(N+4), 30240)),
			newFloat().Neg(newFloat().Mul(newFloat().Mul(fM, newFloat().Mul(invM5, invM2)), ratio(N*(N+1)*(N+2)*(N+3)*(N+4)*(N+5)*(N+6), 1209600))),
		)
		for i := len(terms) - 1; i >= 0; i-- {
			sum.Add(sum, terms[i])
		}
		out[n] = sum
	}
	return out
}

// lgamma2p returns lgamma(2+z) for -0.6 <= z <= 0.5.
//
// The series has no constant term, so lgamma(2) = 0 exactly and the result
// keeps full relative precision as z approaches 0.
func lgamma2p(z float64) float64 {
	return z * poly.Horner(z, unitSeries[:])
}

// lgamma1p returns lgamma(1+z) for |z| <= 0.5, using
// lgamma(1+z) = lgamma(2+z) - log1p(z).
func lgamma1p(z float64) float64 {
	return lgamma2p(z) - math.Log1p(z)
}
