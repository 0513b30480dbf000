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
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Mode identifies how TwoProd recovers the rounding error of a product.
type Mode int

const (
	// ModeSplit uses Dekker's algorithm: both operands are split into
	// 26-bit halves whose partial products are exact.
	ModeSplit Mode = iota

	// ModeFMA uses a single fused multiply-add.
	ModeFMA
)

func (m Mode) String() string {
	switch m {
	case ModeSplit:
		return "split"
	case ModeFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// NoFMAEnvVar names the environment variable that forces ModeSplit.
const NoFMAEnvVar = "GAMMA_NO_FMA"

var currentMode Mode

func init() {
	// Check if FMA is disabled via environment variable
	if NoFMAEnv() {
		currentMode = ModeSplit
		return
	}

	currentMode = detectMode()
}

// NoFMAEnv reports whether GAMMA_NO_FMA is set to a value other than "" or "0".
func NoFMAEnv() bool {
	v := os.Getenv(NoFMAEnvVar)
	return v != "" && v != "0"
}

func detectMode() Mode {
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasFMA {
			return ModeFMA
		}
	case "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		// Fused multiply-add is part of the base floating-point ISA.
		return ModeFMA
	}
	return ModeSplit
}

// CurrentMode returns the TwoProd strategy selected at startup.
func CurrentMode() Mode {
	return currentMode
}

// HasFMA reports whether TwoProd uses a hardware fused multiply-add.
func HasFMA() bool {
	return currentMode == ModeFMA
}

// SetMode switches the TwoProd strategy and returns the previous one.
// ModeFMA is accepted on every platform since math.FMA is always correct,
// only slower without hardware support. SetMode must not be called while
// other goroutines are evaluating.
func SetMode(m Mode) Mode {
	prev := currentMode
	currentMode = m
	return prev
}
