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

package ddouble

import (
	"math"

	"github.com/ajroetker/go-gamma/internal/poly"
)

// ln2 split as in fdlibm: Ln2Hi has its low 32 bits clear, so k*Ln2Hi is
// exact for any binary exponent k.
const (
	Ln2Hi = 6.93147180369123816490e-01 /* 3fe62e42 fee00000 */
	Ln2Lo = 1.90821492927058770002e-10 /* 3dea39ef 35793c76 */
)

// atanhTail holds 1/(2j+3), the coefficients of (atanh(s) - s)/s³ in s².
// With |s| <= 0.1716 ten terms leave a truncation error below 1e-19.
var atanhTail = [...]float64{
	1.0 / 3,
	1.0 / 5,
	1.0 / 7,
	1.0 / 9,
	1.0 / 11,
	1.0 / 13,
	1.0 / 15,
	1.0 / 17,
	1.0 / 19,
	1.0 / 21,
}

// Log returns the natural logarithm of x as a Double.
//
// x is reduced to 2^k * (1+f) with 1+f in [√2/2, √2), and
// log(1+f) = 2*atanh(s) with s = f/(2+f). The quotient s is formed as a
// Double, k*ln2 is carried in two parts, and only the cubic and higher
// terms of the atanh series are evaluated in plain float64 arithmetic.
//
// Special cases are those of math.Log, returned with Lo = 0.
func Log(x float64) Double {
	if !(x > 0) || math.IsInf(x, 1) {
		return Double{Hi: math.Log(x)}
	}

	// reduce
	f1, ki := math.Frexp(x)
	if f1 < math.Sqrt2/2 {
		f1 *= 2
		ki--
	}
	f := f1 - 1
	k := float64(ki)

	// s = f / (2+f) with its remainder
	den := TwoSum(2, f)
	sh := f / den.Hi
	p := TwoProd(sh, den.Hi)
	sl := (((f - p.Hi) - p.Lo) - sh*den.Lo) / den.Hi

	tail := 2 * sh * sh * sh * poly.Horner(sh*sh, atanhTail[:])
	hi := TwoSum(k*Ln2Hi, 2*sh)
	return fastTwoSum(hi.Hi, hi.Lo+(2*sl+tail+k*Ln2Lo))
}

// LogDouble returns the natural logarithm of d.
func LogDouble(d Double) Double {
	l := Log(d.Hi)
	if d.Lo == 0 || math.IsInf(l.Hi, 0) || math.IsNaN(l.Hi) {
		return l
	}
	return AddFloat(l, d.Lo/d.Hi)
}
