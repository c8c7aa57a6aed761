package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	httpadapter "beacon/internal/adapters/http"
	"beacon/internal/adapters/natsnotify"
	pg "beacon/internal/adapters/postgres"
	"beacon/internal/config"
	"beacon/internal/jurisdiction"
	"beacon/internal/logging"
	"beacon/internal/metrics"
	"beacon/internal/ports"
	"beacon/internal/services/assessment"
	"beacon/internal/services/jurisdictions"
	"beacon/internal/workers/escalationsweep"
)

func main() {
	cfg, cfgErr := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat).With("env", cfg.Env)
	if cfgErr != nil {
		logger.Warn("running without case store", "reason", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, err := jurisdiction.NewStore(cfg.ProfilesDir, logger)
	if err != nil {
		return fmt.Errorf("load jurisdiction profiles: %w", err)
	}
	store.OnReload = func(_ *jurisdiction.Registry, err error) { m.ObserveProfileReload(err) }
	logger.Info("jurisdiction profiles loaded", "ids", store.Current().IDs())

	var (
		cases ports.CaseRepository
		db    *pg.DB
	)
	if cfg.DatabaseURL != "" {
		db, err = pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		applied, err := db.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		for _, r := range applied {
			logger.Info("migration applied", "source", r.Source.Path, "duration", r.Duration)
		}
		cases = db
	}

	var notifier ports.Notifier = escalationsweep.LogNotifier{Logger: logger}
	if cfg.NATSURL != "" {
		nc, err := natsnotify.Connect(cfg.NATSURL, "beacon", logger)
		if err != nil {
			return err
		}
		defer nc.Drain()
		notifier = natsnotify.New(nc, cfg.NATSSubjectPrefix, logger)
	}

	var (
		sweeper  *escalationsweep.Sweeper
		onDemand ports.EscalationSweeper
	)
	if db != nil {
		sweeper = &escalationsweep.Sweeper{Repo: db, Notifier: notifier, Metrics: m, Logger: logger}
		onDemand = sweeper
	}

	assessor := assessment.New(store, cases, m, logger)
	api := httpadapter.New(assessor, jurisdictions.New(store), onDemand, reg, logger)
	srv := &http.Server{
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", ln.Addr().String(), "max_conns", cfg.MaxConns)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if sweeper != nil && cfg.SweepWorkers > 0 {
		opts := escalationsweep.Options{
			Concurrency:  cfg.SweepWorkers,
			PollInterval: cfg.SweepInterval,
			Batch:        cfg.SweepBatch,
			Recheck:      cfg.SweepRecheck,
		}
		g.Go(func() error {
			logger.Info("escalation sweep started", "workers", opts.Concurrency, "interval", opts.PollInterval)
			escalationsweep.Run(gctx, db, sweeper, opts)
			return nil
		})
	}

	if cfg.ProfilesWatch {
		g.Go(func() error { return store.Watch(gctx) })
	}

	return g.Wait()
}
