// Package app is the composition root: it wires configuration,
// database clients, worker pools, services, queue workers and the HTTP
// router, and owns their lifecycle.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"planora.io/planora/internal/account"
	"planora.io/planora/internal/api/handlers"
	"planora.io/planora/internal/config"
	"planora.io/planora/internal/guesttoken"
	"planora.io/planora/internal/infrastructure"
	"planora.io/planora/internal/jobs"
	"planora.io/planora/internal/media"
	"planora.io/planora/internal/notification"
	"planora.io/planora/internal/passwordreset"
	"planora.io/planora/internal/pkg/worker"
	"planora.io/planora/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools

	Events   *service.EventService
	Albums   *service.AlbumService
	Accounts *account.Service
}

// Bootstrap initializes all dependencies with manual wiring, in
// dependency order: infrastructure, channels and registries, services,
// queue workers, HTTP surface.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}
	if err := service.SeedAlbumTypes(ctx, db.EntClient); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed album types: %w", err)
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		OutboundPoolSize: cfg.Worker.OutboundPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	registry, err := notification.NewRegistry()
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init template registry: %w", err)
	}
	urls := notification.NewURLBuilder(cfg.Site.BaseURL, cfg.Site.RegisterURL)
	tokens := guesttoken.NewRegistry(db.EntClient)

	// TODO: swap the log channels for real ESP/SMS transports once
	// provider credentials land in config.
	emailCh := &notification.LogEmailChannel{From: cfg.Site.EmailFrom}
	smsCh := &notification.LogSMSChannel{}

	deliverer := notification.NewDeliverer(db.EntClient, registry, urls, tokens, emailCh, smsCh)
	processor := media.NewProcessor(db.EntClient)
	resets := passwordreset.NewService(db.EntClient, urls, emailCh, cfg.Security.ProcessSecret, cfg.Site.EmailFrom)

	workers := river.NewWorkers()
	if err := jobs.RegisterWorkers(workers, deliverer, processor, resets); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("register workers: %w", err)
	}
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	enqueuer := jobs.NewRiverEnqueuer(db.RiverClient)
	dispatcher := notification.NewDispatcher(enqueuer)

	events := service.NewEventService(db.EntClient, dispatcher, tokens, pools)
	catalog := service.NewAlbumTypeCatalog(db.EntClient, pools, cfg.Catalog.RefreshInterval)
	albums := service.NewAlbumService(db.EntClient, catalog)
	accounts := account.NewService(db.EntClient, dispatcher)

	server := handlers.NewServer(db.Pool, enqueuer, events, accounts, resets, cfg.Security.ProcessSecret)

	return &Application{
		Config:   cfg,
		Router:   newRouter(server),
		DB:       db,
		Pools:    pools,
		Events:   events,
		Albums:   albums,
		Accounts: accounts,
	}, nil
}
