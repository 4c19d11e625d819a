// Package app implements the application layer for revwatch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.trai.ch/revwatch/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/revwatch/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Loop is the control loop driven by the application.
type Loop interface {
	Run(ctx context.Context, configPath string) error
	Wake()
}

// RunOptions configures a watch session.
type RunOptions struct {
	// ConfigPath is the configuration file; revwatch.yaml in the working directory when empty.
	ConfigPath string
	// MetricsAddr enables the Prometheus endpoint when set.
	MetricsAddr string
	// WatchConfig wakes the loop as soon as the configuration file changes.
	WatchConfig bool
}

// App represents the main application logic.
type App struct {
	loop     Loop
	loader   ports.ConfigLoader
	logger   ports.Logger
	metrics  http.Handler
	watcher  ports.Watcher
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loop Loop,
	loader ports.ConfigLoader,
	logger ports.Logger,
	metricsHandler http.Handler,
	w ports.Watcher,
) *App {
	return &App{
		loop:     loop,
		loader:   loader,
		logger:   logger,
		metrics:  metricsHandler,
		watcher:  w,
		debounce: watcher.DefaultDebounceWindow,
	}
}

// WithDebounce overrides the quiet period applied to configuration file changes.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// UseJSONLogs switches the logger to JSON output when it supports it.
func (a *App) UseJSONLogs(enabled bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enabled)
	}
}

// Run watches for new revisions until ctx is cancelled.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	path := configPath(opts.ConfigPath)

	g, gctx := errgroup.WithContext(ctx)

	if opts.WatchConfig {
		if err := a.watcher.Start(gctx, path); err != nil {
			return zerr.Wrap(err, "failed to watch configuration file")
		}
		g.Go(func() error {
			a.forwardChanges()
			return nil
		})
	}

	if opts.MetricsAddr != "" {
		a.logger.Info("serving metrics on " + opts.MetricsAddr + "/metrics")
		g.Go(func() error {
			return metrics.Serve(gctx, opts.MetricsAddr, a.metrics)
		})
	}

	g.Go(func() error {
		return a.loop.Run(gctx, path)
	})

	return g.Wait()
}

// forwardChanges wakes the loop once per burst of configuration file events.
// It returns when the watcher's event stream ends.
func (a *App) forwardChanges() {
	d := watcher.NewDebouncer(a.debounce, a.loop.Wake)
	defer d.Stop()
	defer func() { _ = a.watcher.Stop() }()

	for ev := range a.watcher.Events() {
		a.logger.Info("configuration file changed: " + ev.Path)
		d.Notify()
	}
}

// PrintConfig writes the resolved configuration snapshot and its validation result to w.
func (a *App) PrintConfig(path string, w io.Writer) error {
	cfg, err := a.loader.Load(configPath(path))
	if err != nil && !errors.Is(err, domain.ErrConfigInvalid) {
		return err
	}

	if _, werr := fmt.Fprint(w, cfg.String()); werr != nil {
		return zerr.Wrap(werr, "failed to print configuration")
	}
	if err != nil {
		return err
	}

	_, werr := fmt.Fprintln(w, "\nconfiguration is valid")
	return werr
}

func configPath(path string) string {
	if path == "" {
		return domain.ConfigFileName
	}
	return path
}
