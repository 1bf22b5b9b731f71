// Command dormsim allocates a synthetic cohort with every strategy, prints a
// fairness comparison and a multi-trial simulation, and optionally serves the
// resulting Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dormalloc "github.com/javdevA/SmartDormCapstonePro"
	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/internal/sample"
	"github.com/javdevA/SmartDormCapstonePro/source"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (defaults apply when empty)")
	students := flag.Int("students", sample.DefaultStudents, "Number of synthetic students")
	trials := flag.Int("trials", 0, "Simulation trials (0 = configured value)")
	seed := flag.Uint64("seed", 0, "Seed for the synthetic cohort and simulation (0 = random)")
	serve := flag.Bool("serve", false, "Keep serving /metrics after the run until interrupted")
	flag.Parse()

	cfg := dormalloc.DefaultConfig()
	if *configPath != "" {
		loaded, err := dormalloc.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, err := logging.NewText(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, &cfg, logger, os.Stdout, *students, *trials, *serve); err != nil {
		logger.Fatal("dormsim failed", "error", err)
	}
}

func run(ctx context.Context, cfg *dormalloc.Config, logger types.Logger, out io.Writer, n, trials int, serve bool) error {
	opts := []dormalloc.Option{dormalloc.WithLogger(logger)}

	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, dormalloc.WithMetrics(metrics.NewPrometheus(reg, cfg.Metrics.Namespace)))

		srv := startMetricsServer(cfg.Metrics.Addr, reg, logger)
		defer shutdown(srv, logger)
	}

	engine, err := dormalloc.NewEngine(cfg, opts...)
	if err != nil {
		return err
	}

	cohortSeed := cfg.Seed
	if cohortSeed == 0 {
		cohortSeed = rand.Uint64()
	}
	students, dorms, err := sample.Load(rand.New(rand.NewPCG(cohortSeed, cohortSeed)), n)
	if err != nil {
		return fmt.Errorf("load sample: %w", err)
	}
	logger.Info("sample loaded",
		"students", len(students),
		"dorms", len(dorms),
		"capacity", engine.Capacity(dorms),
		"seed", cohortSeed,
	)

	rows, err := engine.Compare(ctx, students, dorms)
	if err != nil {
		return err
	}

	sim, err := engine.Simulate(ctx, students, dorms, trials)
	if err != nil {
		return err
	}

	if err := report(out, rows, sim, engine.SuggestRoommates(students)); err != nil {
		return err
	}

	// open an overflow dorm and place the default strategy's waitlist into it
	src := source.NewStatic(students, dorms)
	waiting := engine.Unallocated(cfg.Strategy, students)
	src.Update(students, append(dorms, dormalloc.Dorm{ID: "D6", Name: "Overflow Annex", Capacity: waiting}))
	if _, err := engine.ReallocateFrom(ctx, cfg.Strategy, src); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nWaitlist (%s): %d before overflow annex, %d after\n",
		cfg.Strategy.DisplayName(), waiting, engine.Unallocated(cfg.Strategy, students))

	if serve && reg != nil {
		logger.Info("serving metrics, press Ctrl+C to stop", "addr", cfg.Metrics.Addr)
		<-ctx.Done()
	}

	return nil
}

func report(out io.Writer, rows []dormalloc.Comparison, sim dormalloc.SimulationResult, pairs []dormalloc.RoommatePair) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tTOP1\tTOP3\tENVY\tASSIGNED\tUNALLOCATED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%d\t%d\t%d\n",
			r.Kind.DisplayName(), r.Top1Rate*100, r.Top3Rate*100, r.EnvyPairs, r.Assigned, r.Unallocated)
	}
	fmt.Fprintf(tw, "Simulation (%d trials)\t%.1f%%\t%.1f%%\t%.1f\t\t\n",
		sim.Trials, sim.AvgTop1*100, sim.AvgTop3*100, sim.AvgEnvyPairs)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, p := range pairs {
		fmt.Fprintf(out, "%s + %s: %d (%s)\n", p.First.Name, p.Second.Name, p.Score, p.Reason)
	}

	return nil
}

func startMetricsServer(addr string, reg *prometheus.Registry, logger types.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return srv
}

func shutdown(srv *http.Server, logger types.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("metrics server shutdown failed", "error", err)
	}
}
