package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libsigmacurve/node"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splinesigma",
		Short: "Build sigma schedules from spline curves",
		Long: `Build sigma schedules from spline curves.

A curve description is a json object with optional "control_points"
([{"x":0,"y":1},...]) and "samples" ([[0,1],...]) keys.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "yaml config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		NewRenderCommand(),
		NewJoinCommand(),
	)

	return cmd
}

func loadConfig() (*node.Config, error) {
	if configPath == "" {
		return node.DefaultConfig(), nil
	}

	cfg, err := node.LoadConfig(configPath)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load config %s", configPath)
	}

	return cfg, nil
}

func newLogger() l.Wrapper {
	if verbose {
		return l.NewConsoleLoggerWrapper()
	}

	return l.NewNopLoggerWrapper()
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "failed to encode output")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(d))

	return err
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, node.ErrOutOfRangeSteps) {
			fmt.Fprintln(os.Stderr, "steps must be within the configured range")
		}

		os.Exit(1)
	}
}
