// Package cmd implements the grant command-line interface, binding the
// flags _examples/original_source/src/io/cmdparse.h defines onto
// internal/driver.Options. Ported in shape (one flat command, one-letter
// shorthands, a required branching-mechanism choice) rather than split
// into cobra subcommands, since the source itself is a single-binary,
// flag-driven tool.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/benediktstufler/grant/internal/driver"
	"github.com/benediktstufler/grant/internal/rng"
	"github.com/benediktstufler/grant/pkg/config"
	apperrors "github.com/benediktstufler/grant/pkg/errors"
	"github.com/benediktstufler/grant/pkg/telemetry"
	"github.com/benediktstufler/grant/pkg/utils"
)

var (
	verbose bool
	logger  utils.Logger

	size    int
	num     int
	threads int
	seed    int64
	randgen string

	beta  float64
	gamma float64
	mu    float64

	outfile    string
	loopfile   string
	degfile    string
	heightfile string
	profile    string
	centfile   string

	inputfile string
	vertex    string

	configPath string

	telemetryShutdown telemetry.ShutdownFunc
)

var rootCmd = &cobra.Command{
	Use:   "grant",
	Short: "Simulate size-conditioned Galton-Watson random trees",
	Long: `grant simulates a critical Galton-Watson tree conditioned on its number
of vertices, using Devroye's rejection algorithm for the weighted
balls-in-boxes model, and can compute the degree profile, degree
sequence, height profile, closeness centrality and loop tree of the
resulting tree. It can also read a tree in from a graphml file instead
of simulating one.`,
	Example: `  # Simulate a critical power-law tree on 100k vertices
  grant --beta=2.5 --mu=1.0 --size=100000 --outfile=./tree.graphml --profile=./profile.txt

  # Simulate 50 independent samples, each to its own numbered file
  grant --beta=2.5 --mu=1.0 --size=1000 --num=50 --outfile='./tree%.graphml'

  # Load an existing tree and compute its closeness centrality
  grant --inputfile=./tree.graphml --centfile=./centrality.txt`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shutdown, err := telemetry.Init(context.Background())
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		telemetryShutdown = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			_ = telemetryShutdown(context.Background())
		}
		return nil
	},
	RunE: runGrant,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load defaults from a YAML config file (env fallback: GRANT_* variables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")

	rootCmd.Flags().IntVarP(&size, "size", "s", 1000, "Simulate a tree conditioned on having SIZE vertices")
	rootCmd.Flags().IntVarP(&num, "num", "N", 1, "Simulate NUM samples (requires a % placeholder in output filenames)")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Distribute the workload over THREADS threads (default: simulation.threads from the config, 1 unless set; number of CPUs if that is not positive)")
	rootCmd.Flags().Int64VarP(&seed, "seed", "S", 0, "Seed of the random generator in the first worker (default: current time)")
	rootCmd.Flags().StringVarP(&randgen, "randgen", "r", string(rng.Default), "Pseudo-random generator family to use (pcg, chacha8)")

	rootCmd.Flags().Float64VarP(&beta, "beta", "b", -1.0, "Power-law branching mechanism P(k) ~ k^-BETA (requires --mu)")
	rootCmd.Flags().Float64VarP(&gamma, "gamma", "g", -1.0, "Branching mechanism P(k) ~ 1/(k^2 ln(k+1)^GAMMA) (requires --mu)")
	rootCmd.Flags().Float64VarP(&mu, "mu", "m", -1.0, "Average offspring count for --beta or --gamma")

	rootCmd.Flags().StringVarP(&outfile, "outfile", "o", "", "Write the simulated tree in graphml format to OUTFILE")
	rootCmd.Flags().StringVarP(&loopfile, "loopfile", "l", "", "Write the tree's loop tree in graphml format to LOOPFILE")
	rootCmd.Flags().StringVarP(&degfile, "degfile", "d", "", "Write the depth-first-search degree sequence to DEGFILE")
	rootCmd.Flags().StringVar(&heightfile, "heightfile", "", "Write the height sequence to HEIGHTFILE")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "", "Write the vertex outdegree profile to PROFILE")
	rootCmd.Flags().StringVarP(&centfile, "centfile", "c", "", "Write each vertex's closeness centrality to CENTFILE")

	rootCmd.Flags().StringVarP(&inputfile, "inputfile", "i", "", "Read a connected graph from INPUTFILE instead of simulating one")
	rootCmd.Flags().StringVarP(&vertex, "vertex", "v", "", "Root vertex id to use with --inputfile")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if ec := apperrors.ExitCode(err); ec != 0 {
			os.Exit(ec)
		}
		os.Exit(1)
	}
}

func runGrant(cmd *cobra.Command, args []string) error {
	logLevel := utils.LevelInfo
	if verbose {
		logLevel = utils.LevelDebug
	}
	logger = utils.NewDefaultLogger(logLevel, os.Stdout)

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	logger.Info("grant: size=%d method=%v threads=%d", opts.Size, opts.Method, opts.Threads)

	_, span := otel.Tracer("grant").Start(context.Background(), "grant.run")
	defer span.End()

	if err := driver.Run(opts, logger); err != nil {
		span.RecordError(err)
		logger.Error("run failed: %v", err)
		return err
	}
	return nil
}

// buildOptions merges the explicit flags the user passed on this
// invocation with the layered file/env configuration pkg/config loads
// (GRANT_* environment variables, or a --config YAML file, or the
// built-in defaults if neither is present): a flag the user actually
// typed always wins, matching the teacher's own file-then-flags-then-env
// precedence in pkg/config.Load, just read back to front here since
// cobra's flags are the outermost layer instead of the innermost one.
func buildOptions() (driver.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return driver.Options{}, apperrors.Wrap(apperrors.CodeConfigError, "loading configuration", err)
	}

	effSize := size
	if !cmdFlagChanged("size") {
		effSize = cfg.Simulation.Size
	}
	effNum := num
	if !cmdFlagChanged("num") {
		effNum = cfg.Simulation.Num
	}
	effSeed := seed
	if !cmdFlagChanged("seed") {
		effSeed = cfg.Simulation.Seed
	}
	effRandgen := randgen
	if !cmdFlagChanged("randgen") && cfg.Simulation.RandGen != "" {
		effRandgen = cfg.Simulation.RandGen
	}
	effBeta, effGamma, effMu := beta, gamma, mu
	if !cmdFlagChanged("beta") && !cmdFlagChanged("gamma") {
		effBeta, effGamma, effMu = cfg.Simulation.Beta, cfg.Simulation.Gamma, cfg.Simulation.Mu
	}
	effInputfile := inputfile
	if !cmdFlagChanged("inputfile") && cfg.Simulation.InFile != "" {
		effInputfile = cfg.Simulation.InFile
	}
	effVertex := vertex
	if !cmdFlagChanged("vertex") && cfg.Simulation.Vertex != "" {
		effVertex = cfg.Simulation.Vertex
	}

	family := rng.Family(effRandgen)
	if !rng.Valid(string(family)) {
		return driver.Options{}, apperrors.New(apperrors.CodeConfigError, fmt.Sprintf("unknown --randgen value %q", effRandgen))
	}

	s := effSeed
	if s == 0 {
		s = time.Now().Unix()
	}

	nThreads := threads
	if cmdFlagChanged("threads") {
		if nThreads <= 0 {
			return driver.Options{}, apperrors.New(apperrors.CodeConfigError, "threads must be at least 1")
		}
	} else if cfg.Simulation.Threads > 0 {
		nThreads = cfg.Simulation.Threads
	} else {
		nThreads = defaultThreads()
	}

	if effNum <= 0 {
		return driver.Options{}, apperrors.New(apperrors.CodeConfigError, "num must be at least 1")
	}

	opts := driver.Options{
		Size:        effSize,
		Num:         effNum,
		Threads:     nThreads,
		Seed:        uint64(s),
		RandGen:     family,
		Prec:        cfg.Simulation.Precision,
		OutFile:     outputOpt(cmdFlagChanged("outfile"), outfile),
		LoopFile:    outputOpt(cmdFlagChanged("loopfile"), loopfile),
		DegFile:     outputOpt(cmdFlagChanged("degfile"), degfile),
		HeightFile:  outputOpt(cmdFlagChanged("heightfile"), heightfile),
		ProfileFile: outputOpt(cmdFlagChanged("profile"), profile),
		CentFile:    outputOpt(cmdFlagChanged("centfile"), centfile),
		InFile:      effInputfile,
		Vertex:      effVertex,
	}

	if effInputfile != "" {
		opts.Method = driver.MethodReadFile
		return opts, nil
	}
	opts.Method = driver.MethodSimulate

	switch {
	case effBeta > 0:
		opts.Law = driver.LawPowerLaw
		opts.Beta = effBeta
		opts.Mu = effMu
	case effGamma > 0:
		opts.Law = driver.LawCauchy
		opts.Gamma = effGamma
		opts.Mu = effMu
	default:
		return driver.Options{}, apperrors.New(apperrors.CodeConfigError,
			"please specify a branching mechanism and an output via --beta/--mu, --gamma/--mu, or --inputfile")
	}

	return opts, nil
}

func outputOpt(requested bool, path string) driver.OutputOpt {
	return driver.OutputOpt{Requested: requested, Path: path}
}

func cmdFlagChanged(name string) bool {
	f := rootCmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func defaultThreads() int {
	return runtime.NumCPU()
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
