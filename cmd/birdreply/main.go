/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command birdreply classifies BIRD control-socket reply codes and shows how
// they map to HTTP and gRPC statuses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals holds what the persistent flags resolve to.
type globals struct {
	configFile string
	logLevel   string

	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:   "birdreply",
		Short: "birdreply classifies BIRD control protocol replies",
		Long: `birdreply decodes the four-digit reply codes of the BIRD routing daemon's
control socket into reply kinds, and shows the HTTP and gRPC statuses a
gateway would answer with.

The status rules can be adjusted with a TOML file passed via --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.configFile, "config", "", "mapper config file to load")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level to use (debug|info|warn|error)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(g.logLevel)
		if err != nil {
			return err
		}
		g.logger = logger
		return nil
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if g.logger != nil {
			_ = g.logger.Sync()
		}
	}

	cmd.AddCommand(classifyCmd(g))
	cmd.AddCommand(explainCmd(g))
	cmd.AddCommand(checkCmd(g))
	cmd.AddCommand(kindsCmd())

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a valid log level (one of debug|info|warn|error)", level)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// mapper builds the status mapper from the library defaults and, when
// --config is set, the rules of that file.
func (g *globals) mapper() (apis.Mapper, error) {
	if g.configFile == "" {
		return mapper.New()
	}
	cfg, err := mapper.LoadConfigFile(g.configFile)
	if err != nil {
		return nil, err
	}
	m, err := cfg.Mapper()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.configFile, err)
	}
	g.log().Debug("loaded mapper config",
		zap.String("file", g.configFile),
		zap.Int("defaults", len(cfg.Defaults)),
		zap.Int("overrides", len(cfg.Overrides)),
		zap.Int("prefixes", len(cfg.Prefixes)),
	)
	return m, nil
}

func (g *globals) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}
