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

package main

import (
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ajroetker/go-gamma/gamma"
)

// maxTableRows bounds the output of a single table command.
const maxTableRows = 1 << 20

var errEmptyRange = errors.New("empty range")

type tableFlags struct {
	from, to, step float64
	log            bool
}

// points returns from, from+step, ... up to and including to.
func (f tableFlags) points() ([]float64, error) {
	switch {
	case math.IsNaN(f.from) || math.IsNaN(f.to) || math.IsInf(f.from, 0) || math.IsInf(f.to, 0):
		return nil, fmt.Errorf("bounds must be finite, got [%v, %v]", f.from, f.to)
	case !(f.step > 0) || math.IsInf(f.step, 0):
		return nil, fmt.Errorf("step must be positive and finite, got %v", f.step)
	case f.from > f.to:
		return nil, fmt.Errorf("from %v > to %v: %w", f.from, f.to, errEmptyRange)
	}
	n := math.Floor((f.to-f.from)/f.step) + 1
	if n > maxTableRows {
		return nil, fmt.Errorf("%v rows exceed the limit of %d", n, maxTableRows)
	}
	xs := make([]float64, int(n))
	for i := range xs {
		xs[i] = f.from + float64(i)*f.step
	}
	return xs, nil
}

func newTableCmd(a *app) *cobra.Command {
	var f tableFlags
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate Gamma or log|Gamma| over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := f.points()
			if err != nil {
				return fmt.Errorf("table: %w", err)
			}
			a.logger.Debug("table", zap.Int("rows", len(xs)), zap.Bool("log", f.log))

			ys := make([]float64, len(xs))
			fn, header := gamma.ScalarFunc(gamma.Gamma), "gamma"
			if f.log {
				fn, header = gamma.LogGamma, "log gamma"
			}
			if err := gamma.TransformContext(cmd.Context(), ys, xs, fn); err != nil {
				return fmt.Errorf("table: %w", err)
			}

			title := cases.Title(a.tag)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n", title.String("x"), title.String(header), title.String("region"))
			for i, x := range xs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.format(x), a.format(ys[i]), gamma.RegionOf(x))
			}
			return w.Flush()
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (f *tableFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.from, "from", 1, "First argument")
	fs.Float64Var(&f.to, "to", 10, "Last argument")
	fs.Float64Var(&f.step, "step", 1, "Increment between arguments")
	fs.BoolVar(&f.log, "log", false, "Tabulate log|Gamma(x)| instead of Gamma(x)")
}
