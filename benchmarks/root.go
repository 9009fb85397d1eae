package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeu5/pagefault-sweep/paging"
	"github.com/zeu5/pagefault-sweep/types"
)

var (
	configFile string
	saveFile   string
	plotFile   string
	seed       uint64
	legacyHand bool
	progress   bool
	logLevel   string
	cpuprofile string
	memprofile string

	// the sweep configuration after merging the config file and the flags
	sweepConfig *types.SweepConfig
)

var errArgCount = errors.New("provide exactly two arguments: <n> <p>")

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "pagefault-sweep <n> <p>",
		Short: "Count second chance page faults of a random trace for every frame count in [4, p]",
		Long: "Generates a random page trace of length n (>= 16) over p (>= 8) pages and replays it with the\n" +
			"second chance replacement algorithm for 4..p frames. The page faults are written as csv.",
		Args:              sweepArgs,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			stopProfiling, err := startProfiling()
			if err != nil {
				return err
			}
			defer stopProfiling()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				select {
				case <-sigCh:
					log.Warn("interrupted, stopping the sweep")
				case <-ctx.Done():
				}
				cancel()
			}()

			return Sweep(ctx, sweepConfig)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Yaml file with default values for the flags")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", types.DefaultReportPath, "Save the page faults report to the specified file")
	rootCommand.PersistentFlags().StringVar(&plotFile, "plot", "", "Also plot the report to the specified png file")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed of the trace generator, 0 seeds from the clock")
	rootCommand.PersistentFlags().BoolVar(&legacyHand, "legacy-hand", false, "Keep one clock hand across all frame counts instead of one per frame count")
	rootCommand.PersistentFlags().BoolVar(&progress, "progress", false, "Print live progress of the sweep")
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCommand.PersistentFlags().StringVar(&cpuprofile, "cpuprofile", "", "Write a cpu profile to the specified file")
	rootCommand.PersistentFlags().StringVar(&memprofile, "memprofile", "", "Write a heap profile to the specified file")
	// adding the subcommands here
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// sweepArgs parses and validates the positional trace length and page count
func sweepArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errArgCount
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("n must be an integer, got %q", args[0])
	}
	p, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("p must be an integer, got %q", args[1])
	}
	if err := types.ValidateSweep(n, p); err != nil {
		return err
	}
	traceLength, pages = n, p
	return nil
}

var (
	traceLength int
	pages       int
)

// setup merges the config file with the flags and configures logging
func setup(cmd *cobra.Command, _ []string) error {
	cfg := types.DefaultSweepConfig()
	if configFile != "" {
		var err error
		if cfg, err = types.ReadSweepConfig(configFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("save") || configFile == "" {
		cfg.ReportPath = saveFile
	}
	if flags.Changed("plot") || configFile == "" {
		cfg.PlotPath = plotFile
	}
	if flags.Changed("seed") || configFile == "" {
		cfg.Seed = seed
	}
	if flags.Changed("legacy-hand") || configFile == "" {
		cfg.LegacyHand = legacyHand
	}
	if flags.Changed("progress") || configFile == "" {
		cfg.Progress = progress
	}
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	cfg.TraceLength = traceLength
	cfg.Pages = pages

	sweepConfig = cfg
	return setupLogging(cfg.LogLevel)
}

// Sweep generates the trace and runs the sweep, writing the report and the optional plot
func Sweep(ctx context.Context, cfg *types.SweepConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	traceSeed := paging.ClockSeed(cfg.Seed)
	log.WithFields(log.Fields{
		"n":           cfg.TraceLength,
		"p":           cfg.Pages,
		"seed":        traceSeed,
		"legacy_hand": cfg.LegacyHand,
	}).Info("starting sweep")

	trace := paging.NewSeededTraceGenerator(traceSeed).Generate(cfg.TraceLength, cfg.Pages)

	c := types.NewSweep(&types.ComparisonConfig{
		Trace:      trace,
		Pages:      cfg.Pages,
		LegacyHand: cfg.LegacyHand,
		Progress:   cfg.Progress,
	})
	c.AddAnalysis("report", types.CSVComparator(cfg.ReportPath))
	if cfg.PlotPath != "" {
		c.AddAnalysis("plot", types.PlotComparator(cfg.PlotPath))
	}
	c.AddAnalysis("stats", types.StatsComparator())

	_, err := c.Run(ctx)
	return err
}
