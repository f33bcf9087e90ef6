package reporter

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"postsdb/pkg/config"
	"postsdb/pkg/logger"
	"postsdb/pkg/store"
)

// Start starts the store-stats reporter if enabled and returns a cancel
// func. The reporter only observes the store; posts are never purged, so
// the job is purely informational.
func Start(ctx context.Context, cfg config.ReportingConfig, st *store.Store) (context.CancelFunc, error) {
	if !cfg.Enabled {
		logger.Info("reporting_disabled")
		return func() {}, nil
	}

	cronExpr := cfg.Cron
	if cronExpr == "" {
		cronExpr = "*/5 * * * *"
	}
	if !gronx.IsValid(cronExpr) {
		logger.Error("reporting_invalid_cron", "cron", cfg.Cron)
		return nil, fmt.Errorf("invalid reporting cron expression: %s", cfg.Cron)
	}

	logger.Info("reporting_enabled", "cron", cronExpr)
	ctx2, cancel := context.WithCancel(ctx)
	go runScheduler(ctx2, st, cronExpr)
	return cancel, nil
}

// runScheduler uses gronx to compute the next tick for the configured cron
// expression and sleeps until that time.
func runScheduler(ctx context.Context, st *store.Store, cronExpr string) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("reporting_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Error("reporting_nexttick_failed", "cron", cronExpr, "error", err)
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				logger.Info("reporting_scheduler_stopping")
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			reportOnce(st)
		case <-ctx.Done():
			logger.Info("reporting_scheduler_stopping")
			return
		}
	}
}

func reportOnce(st *store.Store) {
	s := st.Stats()
	logger.Info("store_stats", "total", s.Total, "active", s.Active, "removed", s.Removed, "next_id", s.NextID)
}
