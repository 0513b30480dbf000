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

	"github.com/ajroetker/go-gamma/gamma"
)

func newFactorialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial n...",
		Short: "Print n! and log(n!)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				a.println(cmd.OutOrStdout(), "%d! = %s log %s", n, a.formatInt(gamma.Factorial(n)), a.format(gamma.LogFactorial(n)))
			}
			return nil
		},
	}
}
