// Command simulator runs the multi-elevator dispatch simulation
// either as a one-shot CLI batch run or, with -http, as a long-running
// HTTP service exposing /v1/simulate, /health, /metrics, and /ws/ticks.
// Grounded on _examples/original_source/main.py's argparse-driven CLI
// (-i/-bf/-be/-ec flags, output_df.csv + metrics summary on stdout)
// and the teacher's cmd/server/main.go startup/shutdown sequencing
// (config load, logger init, signal-based graceful shutdown).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkaranasou/elevatorsim/internal/dispatcher"
	"github.com/mkaranasou/elevatorsim/internal/engine"
	"github.com/mkaranasou/elevatorsim/internal/factory"
	"github.com/mkaranasou/elevatorsim/internal/http"
	"github.com/mkaranasou/elevatorsim/internal/infra/config"
	"github.com/mkaranasou/elevatorsim/internal/infra/logging"
	"github.com/mkaranasou/elevatorsim/internal/ingest"
	"github.com/mkaranasou/elevatorsim/internal/report"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("shutdown signal received")
		cancel()
	}()

	if cfg.HTTPEnabled {
		runServer(ctx, cfg)
		return
	}

	if err := runBatch(ctx, cfg); err != nil {
		slog.Error("simulation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// applyFlags overlays the original CLI's -i/-bf/-be/-ec flags onto
// cfg, only where the flag was actually passed — unset flags fall
// back to whatever config.ParseEnv already populated from the
// environment, per SPEC_FULL.md's "CLI flags taking precedence when
// set".
func applyFlags(cfg *config.Config) {
	fs := flag.NewFlagSet("simulator", flag.ExitOnError)
	input := fs.String("i", cfg.InputCSVPath, "path to the call-request CSV file")
	floors := fs.Int("bf", cfg.NumberOfFloors, "number of floors in the building")
	elevators := fs.Int("be", cfg.NumberOfElevators, "number of elevators in the building")
	capacity := fs.Int("ec", cfg.MaxCapacityOfElevator, "capacity of each elevator, in passengers")
	httpMode := fs.Bool("http", cfg.HTTPEnabled, "serve over HTTP instead of running one batch simulation")
	_ = fs.Parse(os.Args[1:])

	cfg.InputCSVPath = *input
	cfg.NumberOfFloors = *floors
	cfg.NumberOfElevators = *elevators
	cfg.MaxCapacityOfElevator = *capacity
	cfg.HTTPEnabled = *httpMode
}

// runBatch loads requests, builds a fleet, runs the simulation to
// completion, and writes the elevator log, request log, and summary,
// mirroring main.py's run-once-then-print-metrics flow.
func runBatch(ctx context.Context, cfg *config.Config) error {
	file, err := os.Open(cfg.InputCSVPath)
	if err != nil {
		return fmt.Errorf("opening input csv: %w", err)
	}
	defer file.Close()

	requests, err := ingest.LoadCSV(file)
	if err != nil {
		return fmt.Errorf("loading call requests: %w", err)
	}

	fleet, err := factory.StandardElevatorFactory{}.CreateFleet(cfg)
	if err != nil {
		return fmt.Errorf("creating elevator fleet: %w", err)
	}

	eng := engine.New(fleet, requests, dispatcher.New())
	if err := eng.Run(ctx); err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	if err := writeCSV("elevator_log.csv", func(f *os.File) error {
		return report.WriteElevatorLog(f, eng.ElevatorLog())
	}); err != nil {
		return err
	}

	completed := eng.RequestLog()
	if err := writeCSV("request_log.csv", func(f *os.File) error {
		return report.WriteRequestLog(f, completed)
	}); err != nil {
		return err
	}

	summary := report.Summarize(completed)
	fmt.Printf("requests served: %d\n", len(completed))
	fmt.Printf("wait ticks  — min %d, max %d, mean %.2f\n", summary.MinWait, summary.MaxWait, summary.MeanWait)
	fmt.Printf("total ticks — min %d, max %d, mean %.2f\n", summary.MinTotal, summary.MaxTotal, summary.MeanTotal)

	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func runServer(ctx context.Context, cfg *config.Config) {
	server := http.NewServer(cfg)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("elevator simulator HTTP server starting", slog.Int("port", cfg.Port))
	if err := server.Start(); err != nil && err != nethttp.ErrServerClosed {
		slog.Error("http server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
