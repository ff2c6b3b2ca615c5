package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "mesa-kpi/internal/adapter/http"
	"mesa-kpi/internal/adapter/memory"
	"mesa-kpi/internal/adapter/usecase"
	"mesa-kpi/internal/config"
	"mesa-kpi/internal/metrics"
	"mesa-kpi/internal/mockdata"
)

// main is the entry point of the KPI dashboard service. It loads
// configuration, generates the session's demo data, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	gen := mockdata.NewGenerator(mockdata.NewSource(cfg.Mock.Seed))
	repo := memory.NewSessionRepository(gen, memory.Options{
		DashboardDays: cfg.Mock.DashboardDays,
		OperationDays: cfg.Mock.OperationDays,
	}, time.Now)

	var (
		ucOpts []usecase.Option
		hOpts  []httpadapter.Option
	)
	if cfg.Metrics.Enabled {
		m := metrics.New(cfg.Metrics.Namespace)
		ucOpts = append(ucOpts, usecase.WithRecorder(m))
		hOpts = append(hOpts, httpadapter.WithMetrics(m, cfg.Metrics.Path))
	}
	svc := usecase.NewDashboardUseCase(repo, ucOpts...)

	handler := httpadapter.NewHandler(svc, logger, hOpts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.Bool("metrics", cfg.Metrics.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
