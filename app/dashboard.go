package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/dashboard"
	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/metrics"
)

// dashboardAction serves the dashboard until interrupted.
func dashboardAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(cfg *config.Config, st *metrics.Store) error {
		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		defer stop()

		addr := cfg.DashboardAddr()

		fmt.Fprintln(
			config.Stdout,
			pterm.Info.Sprintf("Dashboard running at http://%s (press Ctrl-C to stop)", addr),
		)

		return newDashboard(st, nil).ListenAndServe(sigCtx, addr)
	})
}

// newDashboard builds the dashboard server with process metrics alongside
// the fitdeck gauges. /api/session only reports a workout when src is set.
func newDashboard(st *metrics.Store, src dashboard.SessionSource) *dashboard.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := []dashboard.Option{dashboard.WithRegistry(reg)}

	if src != nil {
		opts = append(opts, dashboard.WithSessions(src))
	}

	return dashboard.New(st, opts...)
}

// serveInBackground serves srv on addr while a workout runs. The returned
// function stops the server and waits for it to exit. Failures are logged
// since the terminal belongs to the timer.
func serveInBackground(srv *dashboard.Server, addr string) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		err := srv.ListenAndServe(ctx, addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(
				"dashboard stopped",
				slog.String("addr", addr),
				slog.Any("error", err),
			)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
