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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "difftool",
		Short:         "Compute and apply unified diffs over text files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindRootFlags(cmd.PersistentFlags(), flags)
	cmd.AddCommand(
		newDiffCmd(flags),
		newApplyCmd(flags),
	)
	return cmd
}

func bindRootFlags(fs *pflag.FlagSet, flags *rootFlags) {
	fs.StringVar(&flags.configPath, "config", "", "path to a YAML config file (default: search the working directory)")
	fs.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// setup loads the config file and builds a logger shared by a subcommand's RunE.
func setup(flags *rootFlags) (*fileConfig, *zap.Logger, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(os.Stderr, flags.logLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
