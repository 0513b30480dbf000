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

// HalfLog2Pi is ½·log(2π).
const HalfLog2Pi = 0.91893853320467274178032973640561763986139747363778

// lanczosG is Godfrey's g = 607/128, chosen jointly with lanczosCoeffs.
const lanczosG = 607.0 / 128

// lanczosCoeffs are Godfrey's 15-term coefficients for g = 607/128.
var lanczosCoeffs = [...]float64{
	0.99999999999999709182,
	57.156235665862923517,
	-59.597960355475491248,
	14.136097974741747174,
	-0.49191381609762019978,
	.33994649984811888699e-4,
	.46523628927048575665e-4,
	-.98374475304879564677e-4,
	.15808870322491248884e-3,
	-.21026444172410488319e-3,
	.21743961811521264320e-3,
	-.16431810653676389022e-3,
	.84418223983852743293e-4,
	-.26190838401581408670e-4,
	.36899182659531622704e-5,
}

// lanczosSum returns A(x) = c₀ + Σ cᵢ/(x+i-1), summed from the smallest
// term.
func lanczosSum(x float64) float64 {
	sum := 0.0
	for i := len(lanczosCoeffs) - 1; i > 0; i-- {
		sum += lanczosCoeffs[i] / (x + float64(i-1))
	}
	return sum + lanczosCoeffs[0]
}

// logGammaLanczos evaluates
//
//	lgamma(x) = (x-0.5)·log(t) - t + ½log(2π) + log(A(x)),  t = x+g-0.5
//
// as (x-0.5)·(log(t)-1) - g + ½log(2π) + log(A(x)). t is formed exactly
// as a Double and x-0.5 is exact, so the only float64 roundings left are in
// A(x) and in the constant -g + ½log(2π).
func logGammaLanczos(x float64) (ddouble.Double, int) {
	t := ddouble.TwoSum(x, lanczosG-0.5)
	lt := ddouble.AddFloat(ddouble.LogDouble(t), -1)
	r := ddouble.MulFloat(lt, x-0.5)
	r = ddouble.AddFloat(r, HalfLog2Pi-lanczosG)
	return ddouble.AddFloat(r, math.Log(lanczosSum(x))), 1
}
