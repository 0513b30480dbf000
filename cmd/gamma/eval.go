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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-gamma/gamma"
)

// parseArgs converts positional arguments to float64.
func parseArgs(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		xs[i] = x
	}
	return xs, nil
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval x...",
		Short: "Print Gamma(x)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			for _, x := range xs {
				a.logger.Debug("eval", zap.Float64("x", x), zap.String("region", gamma.RegionOf(x)))
				a.println(cmd.OutOrStdout(), "Gamma(%s) = %s", a.format(x), a.format(gamma.Gamma(x)))
			}
			return nil
		},
	}
}

func newLogGammaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "lgamma x...",
		Aliases: []string{"log"},
		Short:   "Print log|Gamma(x)| and the sign of Gamma(x)",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseArgs(args)
			if err != nil {
				return err
			}
			for _, x := range xs {
				l, sign := gamma.LogGammaSigned(x)
				a.logger.Debug("lgamma", zap.Float64("x", x), zap.String("region", gamma.RegionOf(x)))
				a.println(cmd.OutOrStdout(), "LogGamma(%s) = %s sign %s", a.format(x), a.format(l), fmt.Sprintf("%+d", sign))
			}
			return nil
		},
	}
}
