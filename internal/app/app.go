package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"news-summarizer-client/internal/domain/ports"
	"news-summarizer-client/internal/usecase"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	shutdownTimeout     = 5 * time.Second
)

// App ties the use cases to the process lifecycle.
type App struct {
	service     ports.NewsService
	demo        *usecase.Demo
	sweep       *usecase.CategorySweep
	reporter    ports.Reporter
	logger      ports.Logger
	schedule    string
	metricsAddr string
}

// Options holds the scheduler settings.
type Options struct {
	Schedule    string
	MetricsAddr string
}

// New constructs an App instance.
func New(
	service ports.NewsService,
	demo *usecase.Demo,
	sweep *usecase.CategorySweep,
	reporter ports.Reporter,
	logger ports.Logger,
	opts Options,
) *App {
	return &App{
		service:     service,
		demo:        demo,
		sweep:       sweep,
		reporter:    reporter,
		logger:      logger,
		schedule:    opts.Schedule,
		metricsAddr: opts.MetricsAddr,
	}
}

// Service exposes the API client for single-operation commands.
func (a *App) Service() ports.NewsService { return a.service }

// Sweep exposes the category sweep.
func (a *App) Sweep() *usecase.CategorySweep { return a.sweep }

// Once runs the demonstration and then the category sweep. The sweep runs
// even if the demonstration failed; the demonstration error is returned.
func (a *App) Once(ctx context.Context) error {
	demoErr := a.demo.Run(ctx)

	a.reporter.Blank(ctx)
	a.reporter.Line(ctx, "==================================================")
	a.reporter.Blank(ctx)

	a.sweep.Run(ctx)
	return demoErr
}

// Run sweeps once immediately and then according to the cron schedule until
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return fmt.Errorf("no schedule configured")
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(a.schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, scheduledRunTimeout)
		defer cancel()
		a.sweep.Run(runCtx)
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	var metricsSrv *http.Server
	if a.metricsAddr != "" {
		srv, err := a.serveMetrics(ctx)
		if err != nil {
			return err
		}
		metricsSrv = srv
	}

	a.logger.Info(ctx, "running first sweep immediately")
	a.sweep.Run(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	scheduler.Start()

	<-ctx.Done()
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(shutdownTimeout):
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error(shutdownCtx, "metrics server shutdown failed", "error", err)
		}
	}

	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) serveMetrics(ctx context.Context) (*http.Server, error) {
	ln, err := net.Listen("tcp", a.metricsAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", a.metricsAddr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(ctx, "metrics server stopped", "error", err)
		}
	}()
	a.logger.Info(ctx, "serving metrics", "addr", ln.Addr().String())
	return srv, nil
}
