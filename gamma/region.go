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

// region is one record of the dispatch table: the half-open interval
// [lo, hi) and the evaluation strategy used on it.
type region struct {
	name     string
	lo, hi   float64
	logGamma func(x float64) (ddouble.Double, int)
	gamma    func(x float64) float64
}

// regions tiles the real line in increasing order. Poles and non-finite
// arguments are filtered out before the table is consulted.
//
// It is filled in init rather than in its declaration because the
// reflection strategy dispatches back into the table.
var regions []region

func init() {
	regions = []region{
		{"reflection", math.Inf(-1), -0.5, logGammaReflect, gammaReflect},
		{"near-zero", -0.5, 0.5, logGammaNearZero, gammaNearZero},
		{"unit", 0.5, 2.5, logGammaUnit, gammaUnit},
		{"shifted", 2.5, 8, logGammaShifted, gammaShifted},
		{"moderate", 8, 20, logGammaLanczos, gammaShifted},
		{"large", 20, math.Inf(1), logGammaStirling, gammaStirling},
	}
}

// lookup returns the region containing the finite argument x.
func lookup(x float64) *region {
	for i := range regions {
		if x < regions[i].hi {
			return &regions[i]
		}
	}
	return &regions[len(regions)-1]
}

func isPole(x float64) bool {
	return x <= 0 && x == math.Trunc(x)
}

// RegionInfo describes one entry of the evaluation table.
type RegionInfo struct {
	Name   string
	Lo, Hi float64
}

// Regions returns the evaluation table in increasing order of Lo.
// Each region covers [Lo, Hi).
func Regions() []RegionInfo {
	out := make([]RegionInfo, len(regions))
	for i, r := range regions {
		out[i] = RegionInfo{Name: r.name, Lo: r.lo, Hi: r.hi}
	}
	return out
}

// RegionOf returns the name of the strategy that evaluates x: one of the
// Regions names, or "nan", "pole" or "inf" for the arguments handled before
// the table is consulted.
func RegionOf(x float64) string {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case isPole(x):
		return "pole"
	}
	return lookup(x).name
}
