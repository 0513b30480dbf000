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
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel tuning parameters
const (
	// MinParallelLen is the slice length below which ParallelTransform runs
	// on the calling goroutine.
	MinParallelLen = 4096

	// ElemsPerStrip is the number of elements a worker takes from the queue
	// at a time.
	ElemsPerStrip = 1024
)

// ScalarFunc is a function of one float64, such as Gamma or LogGamma.
type ScalarFunc func(float64) float64

// Transform sets dst[i] = fn(src[i]) for i < min(len(dst), len(src)).
func Transform(dst, src []float64, fn ScalarFunc) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = fn(src[i])
	}
}

// ParallelTransform is Transform spread over GOMAXPROCS workers.
// The input is divided into strips of ElemsPerStrip elements handed out
// from a queue. fn must be safe for concurrent use; every function in this
// package is. All workers have exited when ParallelTransform returns.
func ParallelTransform(dst, src []float64, fn ScalarFunc) {
	n := min(len(dst), len(src))
	if n < MinParallelLen {
		Transform(dst[:n], src[:n], fn)
		return
	}

	numStrips := (n + ElemsPerStrip - 1) / ElemsPerStrip
	numWorkers := min(runtime.GOMAXPROCS(0), numStrips)

	work := make(chan int, numStrips)
	for strip := range numStrips {
		work <- strip
	}
	close(work)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for strip := range work {
				start := strip * ElemsPerStrip
				end := min(start+ElemsPerStrip, n)
				Transform(dst[start:end], src[start:end], fn)
			}
		})
	}
	wg.Wait()
}

// TransformContext is ParallelTransform with cancellation. Workers check
// ctx before each strip; on cancellation the remaining strips are skipped,
// dst is partially written and ctx.Err() is returned. If every strip ran the
// result is nil, even when ctx was cancelled after the last one started.
func TransformContext(ctx context.Context, dst, src []float64, fn ScalarFunc) error {
	n := min(len(dst), len(src))
	numStrips := (n + ElemsPerStrip - 1) / ElemsPerStrip

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	launched := 0
	for strip := range numStrips {
		if egCtx.Err() != nil {
			break
		}
		launched++
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := strip * ElemsPerStrip
			end := min(start+ElemsPerStrip, n)
			Transform(dst[start:end], src[start:end], fn)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if launched < numStrips {
		return ctx.Err()
	}
	return nil
}

// GammaSlice sets dst[i] = Gamma(src[i]).
func GammaSlice(dst, src []float64) {
	ParallelTransform(dst, src, Gamma)
}

// LogGammaSlice sets dst[i] = LogGamma(src[i]).
func LogGammaSlice(dst, src []float64) {
	ParallelTransform(dst, src, LogGamma)
}
