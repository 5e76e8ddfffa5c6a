package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scheduler-simulator/api"
	"scheduler-simulator/config"
	"scheduler-simulator/internal/report"
	"scheduler-simulator/internal/requests"
	"scheduler-simulator/internal/responses"
)

var (
	flagConfig    string
	flagVerbose   bool
	flagPort      int
	flagInput     string
	flagAlgorithm string
	flagQuantum   int
	flagJSON      bool
	flagNoColor   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Simulate and compare cpu scheduling algorithms",
		Long: `Runs FCFS, SJF, Round Robin and Priority scheduling over a set of processes,
reports waiting, turnaround and throughput metrics for each, and recommends
the best performing algorithm.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(simulateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads an explicit --config file, or falls back to the shared
// config from the working directory.
func loadConfig() (*config.SchedulerConfig, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.GetSchedulerConfig()
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling http api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = flagPort
			}

			app := api.NewApp(cfg)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("starting scheduler api", "port", cfg.Port, "quantum", cfg.RoundRobinTimeQuantum)
				errCh <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				slog.Info("shutting down scheduler api")
				return app.Shutdown()
			}
		},
	}
	cmd.Flags().IntVar(&flagPort, "port", 9095, "Listen port (overrides config)")
	return cmd
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the algorithms over a process file and print the comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(flagInput)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			request, err := requests.ParseProcessFile(data)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algorithm") {
				request.Algorithm = flagAlgorithm
			}
			if cmd.Flags().Changed("quantum") {
				request.Quantum = &flagQuantum
			}

			processes, err := request.ToProcesses(cfg.MaxProcesses)
			if err != nil {
				return err
			}
			algorithms, err := request.Algorithms()
			if err != nil {
				return err
			}

			builder := report.NewBuilder(request.TimeQuantum(cfg.RoundRobinTimeQuantum), cfg.Policy())
			comparison, err := builder.Build(processes, algorithms...)
			if err != nil {
				return err
			}

			if flagJSON {
				out, err := json.MarshalIndent(responses.NewComparisonResponse(comparison, request.WithTimeline()), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			if flagNoColor {
				color.NoColor = true
			}
			report.Render(os.Stdout, comparison)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagInput, "input", "i", "", "Process file (json)")
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "all", "all, fcfs, sjf, round_robin or priority")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 2, "Round Robin time quantum (overrides config)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
