package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"planora.io/planora/internal/pkg/logger"
)

// Start starts background services: the River client begins consuming
// jobs.
func (a *Application) Start(ctx context.Context) error {
	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("river client started, jobs will now be consumed")
	}
	return nil
}

// Shutdown stops components in reverse order of startup: stop consuming
// jobs, drain worker pools, close database clients.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop river client", zap.Error(err))
		} else {
			logger.Info("river client stopped")
		}
	}

	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
