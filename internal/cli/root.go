// Package cli wires the mstour command line: flags, configuration, logging
// and output around the mstour solver.
package cli

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mstour/config"
)

// Input holds the raw command-line flags before they are merged into a config.Config.
type Input struct {
	configPath     string
	random         int
	seed           int64
	savePoints     string
	twoOpt         bool
	twoOptMaxIters int
	output         string
	logLevel       string
	progress       bool
	verbose        bool
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the root command writing results to out.
func NewRootCommand(ctx context.Context, version string, out io.Writer) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:          "mstour [points file]",
		Short:        "Build an approximate Euclidean TSP tour from a minimum spanning tree.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunCommand(ctx, input, out),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	addFlags(rootCmd.Flags(), input)

	return rootCmd
}

func addFlags(fs *pflag.FlagSet, input *Input) {
	def := config.Default()
	fs.StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	fs.IntVarP(&input.random, "random", "r", 0, "generate N random points instead of reading a file")
	fs.Int64Var(&input.seed, "seed", 0, "seed for --random (0 selects a fixed default)")
	fs.StringVar(&input.savePoints, "save-points", "", "write the point set that was used to this file")
	fs.BoolVar(&input.twoOpt, "two-opt", false, "polish the tour with 2-opt")
	fs.IntVar(&input.twoOptMaxIters, "two-opt-iters", 0, "maximum accepted 2-opt moves (0 = unlimited)")
	fs.StringVarP(&input.output, "output", "o", def.Output, "output format: text or yaml")
	fs.StringVar(&input.logLevel, "log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&input.progress, "progress", false, "log every tour construction step")
	fs.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output (debug log level)")
}

// resolveConfig merges the optional config file with explicitly set flags
// and the positional points file. Flags win over the file.
func resolveConfig(fs *pflag.FlagSet, input *Input, args []string) (config.Config, error) {
	cfg := config.Default()
	if input.configPath != "" {
		var err error
		if cfg, err = config.Load(input.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if fs.Changed("random") {
		cfg.Random = input.random
	}
	if fs.Changed("seed") {
		cfg.Seed = input.seed
	}
	if fs.Changed("save-points") {
		cfg.SavePoints = input.savePoints
	}
	if fs.Changed("two-opt") {
		cfg.TwoOpt = input.twoOpt
	}
	if fs.Changed("two-opt-iters") {
		cfg.TwoOptMaxIters = input.twoOptMaxIters
		cfg.TwoOpt = true
	}
	if fs.Changed("output") {
		cfg.Output = input.output
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = input.logLevel
	}
	if fs.Changed("progress") {
		cfg.Progress = input.progress
	}
	if input.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}

	return cfg, cfg.Validate()
}
