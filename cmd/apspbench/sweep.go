package main

import (
	"github.com/katalvlaran/lvlath-apsp/harness"
	"github.com/spf13/cobra"
)

// newSweepCmd runs every combination listed in a TOML sweep file, then
// prints a speedup/efficiency summary.
func newSweepCmd(common *commonFlags) *cobra.Command {
	var (
		configPath string
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "sweep --config <file.toml>",
		Short: "Run a parameter sweep described by a TOML file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := common.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sw, err := harness.LoadSweep(configPath)
			if err != nil {
				return err
			}
			warnHost(cmd, log, sw.Configs()...)

			out := cmd.OutOrStdout()
			if err := harness.WriteHeader(out); err != nil {
				return err
			}
			results, err := harness.RunSweep(cmd.Context(), sw, log, func(r harness.Result) error {
				if err := harness.WriteResult(out, r); err != nil {
					return err
				}
				if common.csvOut != "" {
					return harness.AppendCSV(common.csvOut, r)
				}
				return nil
			})
			if err != nil {
				return err
			}

			if !summary {
				return nil
			}
			if _, err := out.Write([]byte("\n")); err != nil {
				return err
			}
			return harness.WriteScaling(out, harness.Summarize(results))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the sweep TOML file.")
	cmd.Flags().BoolVar(&summary, "summary", true, "Print speedup and efficiency after the sweep.")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
