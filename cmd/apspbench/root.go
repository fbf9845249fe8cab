package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-apsp/apsp"
	"github.com/katalvlaran/lvlath-apsp/harness"
	"github.com/spf13/cobra"
)

// exitUsage is the exit code for wrong arity.
const exitUsage = 2

// commonFlags are shared by the root and sweep commands.
type commonFlags struct {
	logLevel  string
	logFormat string
	csvOut    string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	cmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "Log format: text or json.")
	cmd.PersistentFlags().StringVar(&f.csvOut, "csv-out", "", "Append each CSV row to this file as well.")
}

// logger builds the stderr logger selected by --log-level/--log-format.
func (f *commonFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid log-level %q: must be debug, info, warn or error", f.logLevel)}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(f.logFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid log-format %q: must be text or json", f.logFormat)}
	}
}

// newRootCmd returns the single-run command with the sweep subcommand attached.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		common    commonFlags
		seed      int64
		partition string
		header    bool
	)

	cmd := &cobra.Command{
		Use:   "apspbench <nodes> <density> <threads>",
		Short: "Benchmark parallel all-pairs shortest paths (Floyd–Warshall).",
		Long: `apspbench generates a random directed graph with <nodes> vertices and
round(<density>·n·(n-1)) edges (weights 1..100), relaxes it with <threads>
workers, and prints one table row and one CSV row:

  nodes, threads, density, total time, work time, overhead (seconds)

Arguments starting with "-" are read as flags; put "--" before the
positional arguments to pass a negative value:

  apspbench --seed 7 -- -5 0.5 2`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
				return &ExitError{Code: exitUsage}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseRunArgs(args)
			if err != nil {
				return err
			}
			cfg.Seed = seed
			if cfg.Partition, err = apsp.ParsePartition(partition); err != nil {
				return err
			}

			log, err := common.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			warnHost(cmd, log, cfg)

			res, err := harness.Run(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if header {
				if err := harness.WriteHeader(out); err != nil {
					return err
				}
			}
			if err := harness.WriteResult(out, res); err != nil {
				return err
			}
			if common.csvOut != "" {
				return harness.AppendCSV(common.csvOut, res)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	common.register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generator seed; 0 picks a time-based seed.")
	cmd.Flags().StringVar(&partition, "partition", apsp.PartitionBlocks.String(), "Row partitioning: blocks or rows.")
	cmd.Flags().BoolVar(&header, "header", false, "Print the table header before the row.")

	cmd.AddCommand(newSweepCmd(&common))

	return cmd
}

// parseRunArgs parses <nodes> <density> <threads>. A non-numeric argument is
// a fatal parse error.
func parseRunArgs(args []string) (harness.RunConfig, error) {
	nodes, err := strconv.Atoi(args[0])
	if err != nil {
		return harness.RunConfig{}, fmt.Errorf("invalid number of nodes %q: %w", args[0], err)
	}
	density, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return harness.RunConfig{}, fmt.Errorf("invalid density (0.0-1.0) %q: %w", args[1], err)
	}
	threads, err := strconv.Atoi(args[2])
	if err != nil {
		return harness.RunConfig{}, fmt.Errorf("invalid thread count %q: %w", args[2], err)
	}

	return harness.RunConfig{Nodes: nodes, Density: density, Workers: threads}, nil
}

// warnHost probes the host once and logs each distinct capacity warning for
// cfgs. A failed probe is only logged at debug.
func warnHost(cmd *cobra.Command, log *slog.Logger, cfgs ...harness.RunConfig) {
	host, err := harness.ProbeHost(cmd.Context())
	if err != nil {
		log.Debug("Host probe failed.", "error", err)
		return
	}
	seen := make(map[string]struct{})
	for _, cfg := range cfgs {
		for _, w := range host.Warnings(cfg) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			log.Warn("Timings may be misleading.", "reason", w)
		}
	}
}
