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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godiffutils/diffutils/internal/byteview"
	"github.com/godiffutils/diffutils/unifieddiff"
)

// newApplyCmd builds the "apply" subcommand: it reads a unified diff (the patch) and an original
// file, applies (or, with --reverse, restores) the patch, and writes the result to stdout.
func newApplyCmd(root *rootFlags) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "apply <original> <patch>",
		Short: "Apply or restore a unified diff against an original file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			originalPath, patchPath := args[0], args[1]
			originalData, err := readFileOrStdin(originalPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", originalPath, err)
			}
			patchData, err := readFileOrStdin(patchPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", patchPath, err)
			}

			res, err := unifieddiff.ParseBytes(patchData, cfg.parseOptions()...)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", patchPath, err)
			}
			for _, w := range res.Warnings {
				logger.Warn("lenient parse recovered from a format issue", zap.String("patch", patchPath), zap.String("detail", w.String()))
			}

			lines, _ := byteview.SplitLinesStripped(byteview.From(originalData))
			original := make([]string, len(lines))
			for i, l := range lines {
				original[i] = l.String()
			}

			eq := func(a, b string) bool { return a == b }
			var out []string
			if reverse {
				out, err = res.Patch.Restore(original, eq)
			} else {
				out, err = res.Patch.Apply(original, eq)
			}
			if err != nil {
				return fmt.Errorf("applying %s to %s: %w", patchPath, originalPath, err)
			}

			w := cmd.OutOrStdout()
			if len(out) > 0 {
				if _, err := io.WriteString(w, strings.Join(out, "\n")+"\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "restore the original from the revised file instead of applying forward")
	return cmd
}
