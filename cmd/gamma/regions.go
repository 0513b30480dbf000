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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/ajroetker/go-gamma/gamma"
	"github.com/ajroetker/go-gamma/internal/ddouble"
)

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the evaluation strategy table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cases.Title(a.tag)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Region\tFrom\tTo")
			for _, r := range gamma.Regions() {
				fmt.Fprintf(w, "%s\t[%s\t%s)\n", title.String(r.Name), a.format(r.Lo), a.format(r.Hi))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			a.println(cmd.OutOrStdout(), "TwoProd: %s", ddouble.CurrentMode())
			return nil
		},
	}
}
