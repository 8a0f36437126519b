// Copyright 2025 Florian Zenker (flo@znkr.io)
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
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/godiffutils/diffutils/unifieddiff"
)

// newDiffCmd builds the "diff" subcommand. It accepts one or more <old> <new> file pairs ("-" for
// stdin) and prints a unified diff for each to stdout. When more than one pair is given, a failure
// diffing one pair doesn't stop the others: every per-pair error is collected with multierr and
// returned together once all pairs have been attempted.
func newDiffCmd(root *rootFlags) *cobra.Command {
	var engine string
	var hashOpt bool
	var context int

	cmd := &cobra.Command{
		Use:   "diff <old> <new> [<old> <new>]...",
		Short: "Diff one or more pairs of files and print a unified diff for each.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("expected an even number of file arguments (old new pairs), got %d", len(args))
			}

			cfg, logger, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cmd.Flags().Changed("engine") {
				cfg.Engine = engine
			}
			if cmd.Flags().Changed("hash-optimization") {
				cfg.HashOptimization = hashOpt
			}
			if cmd.Flags().Changed("context") {
				cfg.ContextSize = context
			}

			var errs error
			for i := 0; i < len(args); i += 2 {
				oldPath, newPath := args[i], args[i+1]
				if derr := runDiffPair(cmd.OutOrStdout(), logger, cfg, oldPath, newPath); derr != nil {
					logger.Warn("diffing pair failed", zap.String("old", oldPath), zap.String("new", newPath), zap.Error(derr))
					errs = multierr.Append(errs, fmt.Errorf("%s vs %s: %w", oldPath, newPath, derr))
				}
			}
			return errs
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "engine to use: reference, accelerated or auto (overrides the config file)")
	cmd.Flags().BoolVar(&hashOpt, "hash-optimization", false, "enable hash-based fast rejection (overrides the config file)")
	cmd.Flags().IntVar(&context, "context", 0, "number of context lines around each hunk (overrides the config file)")
	return cmd
}

func runDiffPair(w io.Writer, logger *zap.Logger, cfg *fileConfig, oldPath, newPath string) error {
	oldData, err := readFileOrStdin(oldPath)
	if err != nil {
		return err
	}
	newData, err := readFileOrStdin(newPath)
	if err != nil {
		return err
	}

	out, err := unifieddiff.UnifiedBytes(oldData, newData, oldPath, newPath, cfg.unifiedOptions()...)
	if err != nil {
		return err
	}
	logger.Debug("computed diff", zap.String("old", oldPath), zap.String("new", newPath), zap.Int("bytes", len(out)))
	_, err = w.Write(out)
	return err
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
