// SPDX-License-Identifier: MIT

// Package cli implements the wayfind command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/internal/facility"
	"github.com/katalvlaran/wayfind/internal/observability"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// app carries the state resolved by the root command.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	session *facility.Session
	logger  *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "wayfind",
		Short:         "Multi-floor venue routing with live congestion",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./wayfind.yaml)")
	rootCmd.PersistentFlags().String("scenario", "", "scenario document to load instead of the built-in casino")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for random congestion (0 = clock)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override")
	_ = a.v.BindPFlag("scenario.path", rootCmd.PersistentFlags().Lookup("scenario"))
	_ = a.v.BindPFlag("congestion.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = a.v.BindPFlag("logger.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newRouteCmd(a),
		newPathsCmd(a),
		newReachCmd(a),
		newFloorsCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// init loads configuration, starts logging and opens the venue.
func (a *app) init(cmd *cobra.Command) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	observability.InitializeLogger(cfg.Logger)
	a.logger = observability.GetLogger()

	a.session, err = facility.Open(cfg, a.logger)
	if err != nil {
		return err
	}

	return nil
}

// parseTypes converts flag values to edge types.
func parseTypes(raw []string) ([]core.EdgeType, error) {
	out := make([]core.EdgeType, 0, len(raw))
	for _, s := range raw {
		t, err := core.ParseEdgeType(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Execute runs the command tree with ctx and reports failures on stderr.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	defer observability.Sync()

	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}
