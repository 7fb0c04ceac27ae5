// Command collbench fills kit maps from a worker pool and reports how the
// tables grew.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llxisdsh/kit/internal/bench"
	"github.com/llxisdsh/kit/internal/logutil"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "collbench",
		Short:        "Hash map growth benchmark",
		SilenceUsage: true,
	}
	cmd.AddCommand(runCommand(), configCommand())
	return cmd
}

func runCommand() *cobra.Command {
	var (
		file  string
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark",
		Long:  "Fill one map per worker, delete a share of the keys and verify the rest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bench.LoadConfig(file)
			if err != nil {
				return err
			}
			logger, err := logutil.NewLogger(&cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := bench.Run(ctx, cfg, logger)
			if err != nil {
				logger.Error("bench failed", zap.Error(err))
				return err
			}
			report.Log(logger)
			if stats {
				for _, res := range report.Results {
					fmt.Fprintf(cmd.OutOrStdout(), "worker %d %s", res.Worker, res.Stats.ToString())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "config", "c", "", "TOML configuration file")
	cmd.Flags().BoolVar(&stats, "stats", false, "print the table statistics of every worker")
	return cmd
}

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.DefaultConfig()
			out, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

