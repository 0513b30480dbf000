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

import "math"

// Gamma returns the Gamma function of x.
//
// Special cases are:
//
//	Gamma(+Inf) = +Inf
//	Gamma(x) = NaN for integer x <= 0, including ±0
//	Gamma(-Inf) = NaN
//	Gamma(NaN) = NaN
//
// Results beyond the float64 range are ±Inf (x > MaxArg) or underflow
// towards ±0 for large negative x.
func Gamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1) || isPole(x):
		return math.NaN()
	case math.IsInf(x, 1):
		return x
	}
	return lookup(x).gamma(x)
}

// LogGamma returns the natural logarithm of |Gamma(x)|.
//
// It stays finite far beyond MaxArg, where Gamma overflows.
// Special cases are those of LogGammaSigned.
func LogGamma(x float64) float64 {
	lgamma, _ := LogGammaSigned(x)
	return lgamma
}

// LogGammaSigned returns the natural logarithm of |Gamma(x)| and the sign
// (-1 or +1) of Gamma(x).
//
// Special cases are:
//
//	LogGammaSigned(+Inf) = +Inf, 1
//	LogGammaSigned(x) = NaN, 1 for integer x <= 0, including ±0
//	LogGammaSigned(-Inf) = NaN, 1
//	LogGammaSigned(NaN) = NaN, 1
func LogGammaSigned(x float64) (lgamma float64, sign int) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1) || isPole(x):
		return math.NaN(), 1
	case math.IsInf(x, 1):
		return x, 1
	}
	l, sign := lookup(x).logGamma(x)
	return l.Float64(), sign
}

// LogGammaSign is LogGammaSigned with the sign written to sign[0].
// A zero-length sign slice is left untouched.
func LogGammaSign(x float64, sign []int) float64 {
	lgamma, s := LogGammaSigned(x)
	if len(sign) > 0 {
		sign[0] = s
	}
	return lgamma
}

// LogGamma1p returns lgamma(1+x) for -0.5 <= x <= 1.5 without forming 1+x,
// and NaN outside that interval.
func LogGamma1p(x float64) float64 {
	switch {
	case !(x >= -0.5 && x <= 1.5):
		return math.NaN()
	case x < 0.5:
		return lgamma1p(x)
	}
	return lgamma2p(x - 1)
}

// InvGamma1pm1 returns 1/Gamma(1+x) - 1 for -0.5 <= x <= 1.5, and NaN
// outside that interval. The result keeps full relative precision where
// Gamma(1+x) is close to 1.
func InvGamma1pm1(x float64) float64 {
	return math.Expm1(-LogGamma1p(x))
}
