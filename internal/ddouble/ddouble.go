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

// Package ddouble implements compensated ("double-double") arithmetic.
//
// A Double carries a value as the unevaluated sum Hi + Lo of two float64
// values with |Lo| <= ulp(Hi)/2, which gives about 106 bits of significand.
// The gamma evaluators use it wherever a rounding error in an intermediate
// result would otherwise be amplified, most notably before exponentiating a
// log-magnitude.
//
// Overflowing operations collapse to {±Inf, 0} so that Float64 never turns an
// infinite result into NaN.
package ddouble

import "math"

// Double is the unevaluated sum Hi + Lo.
type Double struct {
	Hi, Lo float64
}

// New returns x as a Double.
func New(x float64) Double {
	return Double{Hi: x}
}

// Float64 returns the nearest float64 to d.
func (d Double) Float64() float64 {
	return d.Hi + d.Lo
}

// Neg returns -d.
func (d Double) Neg() Double {
	return Double{Hi: -d.Hi, Lo: -d.Lo}
}

// TwoSum returns a+b exactly as a Double.
func TwoSum(a, b float64) Double {
	s := a + b
	if math.IsInf(s, 0) {
		return Double{Hi: s}
	}
	bb := s - a
	e := (a - (s - bb)) + (b - bb)
	return Double{Hi: s, Lo: e}
}

// fastTwoSum is TwoSum for |a| >= |b| (or a == 0).
func fastTwoSum(a, b float64) Double {
	s := a + b
	if math.IsInf(s, 0) {
		return Double{Hi: s}
	}
	return Double{Hi: s, Lo: b - (s - a)}
}

// TwoProd returns a*b exactly as a Double, barring underflow of the error
// term. The strategy is chosen once at startup; see CurrentMode.
func TwoProd(a, b float64) Double {
	if currentMode == ModeFMA {
		return twoProdFMA(a, b)
	}
	return twoProdSplit(a, b)
}

func twoProdFMA(a, b float64) Double {
	p := a * b
	if math.IsInf(p, 0) {
		return Double{Hi: p}
	}
	return Double{Hi: p, Lo: math.FMA(a, b, -p)}
}

const (
	splitter   = 1<<27 + 1
	splitLimit = 0x1p996 // splitter*a overflows above this
)

func split(a float64) (hi, lo float64) {
	// The conversions keep the compiler from fusing c-a into an FMA,
	// which would make hi exact instead of the rounded split.
	c := float64(splitter * a)
	hi = c - float64(c-a)
	lo = a - hi
	return hi, lo
}

func twoProdSplit(a, b float64) Double {
	p := a * b
	if math.IsInf(p, 0) {
		return Double{Hi: p}
	}
	if math.Abs(a) > splitLimit || math.Abs(b) > splitLimit {
		return Double{Hi: p, Lo: math.FMA(a, b, -p)}
	}
	ah, al := split(a)
	bh, bl := split(b)
	e := ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return Double{Hi: p, Lo: e}
}

// Add returns a+b.
func Add(a, b Double) Double {
	s := TwoSum(a.Hi, b.Hi)
	return fastTwoSum(s.Hi, s.Lo+(a.Lo+b.Lo))
}

// AddFloat returns a+b.
func AddFloat(a Double, b float64) Double {
	s := TwoSum(a.Hi, b)
	return fastTwoSum(s.Hi, s.Lo+a.Lo)
}

// Mul returns a*b.
func Mul(a, b Double) Double {
	p := TwoProd(a.Hi, b.Hi)
	return fastTwoSum(p.Hi, p.Lo+(a.Hi*b.Lo+a.Lo*b.Hi))
}

// MulFloat returns a*b.
func MulFloat(a Double, b float64) Double {
	p := TwoProd(a.Hi, b)
	return fastTwoSum(p.Hi, p.Lo+a.Lo*b)
}

// Div returns a/b.
func Div(a, b Double) Double {
	q := a.Hi / b.Hi
	if q == 0 || math.IsInf(q, 0) || math.IsNaN(q) {
		return Double{Hi: q}
	}
	// one correction step on the remainder a - q*b
	r := Add(a, MulFloat(b, q).Neg())
	return fastTwoSum(q, r.Hi/b.Hi)
}

// Limits of Exp: above expOverflow the result is +Inf, below expUnderflow
// it is 0.
const (
	expOverflow  = 7.09782712893383973096e+02  // log(MaxFloat64)
	expUnderflow = -7.45133219101941108420e+02 // log(2**-1075)
)

// Exp returns e^d rounded to float64.
//
// Only Hi goes through math.Exp; Lo enters as the first-order factor
// (1 + Lo), so a log-magnitude carried as a Double is exponentiated without
// the error amplification exp(x) suffers from a rounded argument.
//
// Hi is reduced to Hi = k·ln2 + r with |r| <= ln2/2 and the result is
// scaled by 2^k, so math.Exp only sees small arguments and the full range
// up to log(MaxFloat64) is usable on every platform. Some math.Exp
// implementations saturate to +Inf well below that.
func Exp(d Double) float64 {
	switch {
	case math.IsNaN(d.Hi):
		return d.Hi
	case d.Hi > expOverflow:
		return math.Inf(1)
	case d.Hi < expUnderflow:
		return 0
	}
	k := math.Round(d.Hi / math.Ln2)
	r := (d.Hi - k*Ln2Hi) - k*Ln2Lo
	e := math.Exp(r)
	return math.Ldexp(e+e*d.Lo, int(k))
}
