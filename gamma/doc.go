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

// Package gamma evaluates the Gamma function, log|Gamma| and the sign of
// Gamma for float64 arguments.
//
// The real line is split into regions, each with its own strategy:
//
//	(-Inf, -0.5)  reflection through Gamma(x)Gamma(1-x) = π/sin(πx)
//	[-0.5, 0.5)   Gamma(x) = Gamma(1+x)/x
//	[0.5, 2.5)    Taylor series of lgamma(1+z) and lgamma(2+z) in ζ(n)-1
//	[2.5, 8)      recurrence down to [1.5, 2.5)
//	[8, 20)       Lanczos approximation for lgamma, recurrence for Gamma
//	[20, Inf)     Stirling series
//
// Intermediate logarithms are carried in double-double arithmetic so that
// exponentiating them does not magnify rounding error. Gamma of a positive
// integer below 20 is correctly rounded.
//
// Results are not guaranteed to be correctly rounded, so between adjacent
// float64 arguments Gamma may step against the direction of the function
// by one ulp.
//
// Non-positive integers are poles: Gamma and LogGamma return NaN there and
// the reported sign is +1.
//
// All functions are safe for concurrent use.
package gamma
