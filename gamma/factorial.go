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
)

// maxFactorial is the largest n whose factorial is finite in float64.
const maxFactorial = 170

// factorials[n] is n! correctly rounded to float64.
var factorials = newFactorials()

func newFactorials() [maxFactorial + 1]float64 {
	var t [maxFactorial + 1]float64
	f := big.NewInt(1)
	for n := range t {
		if n > 1 {
			f.Mul(f, big.NewInt(int64(n)))
		}
		t[n], _ = new(big.Float).SetInt(f).Float64()
	}
	return t
}

// Factorial returns n! correctly rounded.
//
// Special cases are:
//
//	Factorial(n) = +Inf for n > 170
//	Factorial(n) = NaN for n < 0
func Factorial(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n > maxFactorial:
		return math.Inf(1)
	}
	return factorials[n]
}

// LogFactorial returns log(n!). It is finite for every n >= 0 and NaN for
// n < 0.
func LogFactorial(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n <= maxFactorial:
		return math.Log(factorials[n])
	}
	return LogGamma(float64(n) + 1)
}
