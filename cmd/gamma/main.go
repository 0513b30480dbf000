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

// Command gamma evaluates the Gamma function from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-gamma/internal/ddouble"
)

// app holds the state shared by all subcommands.
type app struct {
	// Global flags
	verbose   bool
	lang      string
	precision int

	logger  *zap.Logger
	tag     language.Tag
	printer *message.Printer
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamma",
		Short: "Evaluate Gamma, log|Gamma| and factorials",
		Long: `gamma evaluates the Gamma function and its logarithm in float64
arithmetic, and shows which evaluation strategy covers each argument.

Non-positive integers are poles and print as NaN.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			tag, err := language.Parse(a.lang)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", a.lang, err)
			}
			if a.precision < 1 || a.precision > 17 {
				return fmt.Errorf("invalid --precision %d: must be between 1 and 17", a.precision)
			}
			a.tag = tag
			a.printer = message.NewPrinter(tag)

			a.logger.Debug("configured",
				zap.String("command", cmd.Name()),
				zap.Stringer("lang", tag),
				zap.Int("precision", a.precision),
				zap.Stringer("twoprod", ddouble.CurrentMode()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.lang, "lang", "en", "BCP 47 language tag for number formatting")
	rootCmd.PersistentFlags().IntVarP(&a.precision, "precision", "p", 17, "Significant digits to print")

	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newLogGammaCmd(a))
	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newRegionsCmd(a))
	rootCmd.AddCommand(newFactorialCmd(a))
	return rootCmd
}

// format renders v with the configured number of significant digits.
func (a *app) format(v float64) string {
	return strconv.FormatFloat(v, 'g', a.precision, 64)
}

// formatInt renders an integral value with the digit grouping of the
// configured language when it is exactly representable, and as a float
// otherwise.
func (a *app) formatInt(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) <= 1<<53 {
		return a.printer.Sprint(int64(v))
	}
	return a.format(v)
}

func (a *app) println(w io.Writer, format string, args ...any) {
	a.printer.Fprintf(w, format+"\n", args...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
