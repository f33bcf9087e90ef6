package app

import (
	"context"
	"time"

	"postsdb/internal/reporter"
	"postsdb/pkg/api"
	"postsdb/pkg/banner"
	"postsdb/pkg/config"
	"postsdb/pkg/logger"
	"postsdb/pkg/store"
)

// App encapsulates the server components and lifecycle.
type App struct {
	eff       config.EffectiveConfigResult
	version   string
	commit    string
	buildDate string

	store *store.Store
	api   *api.API

	servers serverHandles
}

// New initializes resources that do not require a running context: logger,
// store, action table. Call Run to start serving and block until shutdown.
func New(eff config.EffectiveConfigResult, version, commit, buildDate string) (*App, error) {
	logger.InitWithLevel(eff.Config.Logging.Level)

	// validate effective config early and fail fast
	if err := validateConfig(eff); err != nil {
		return nil, err
	}

	st := store.New()
	a := &App{
		eff:       eff,
		version:   version,
		commit:    commit,
		buildDate: buildDate,
		store:     st,
		api:       api.New(st),
	}
	return a, nil
}

// Run starts the reporter (if enabled) and the HTTP server, and blocks
// until ctx is canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	a.printBanner()

	stopReporter, err := reporter.Start(ctx, a.eff.Config.Reporting, a.store)
	if err != nil {
		return err
	}
	defer stopReporter()

	errCh := a.startHTTP()

	select {
	case <-ctx.Done():
		a.stopHTTP(5 * time.Second)
		return nil
	case err := <-errCh:
		return err
	}
}

// printBanner prints the startup banner and build info.
func (a *App) printBanner() {
	verStr := a.version
	if a.commit != "none" {
		verStr += " (" + a.commit + ")"
	}
	if a.buildDate != "unknown" {
		verStr += " @ " + a.buildDate
	}
	banner.PrintWithEff(a.eff, verStr, a.api.Actions())
}
