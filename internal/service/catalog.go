// Package service holds the application services that tie persistence,
// change detection and notification dispatch together.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"planora.io/planora/ent"
	"planora.io/planora/ent/albumtype"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/pkg/worker"
)

// AlbumTypeCatalog caches the album type table by name. The table is
// seeded, small and nearly static, but it is read on every album
// operation, so lookups are served from memory and refreshed in the
// background once the snapshot goes stale.
type AlbumTypeCatalog struct {
	client *ent.Client
	pools  *worker.Pools
	ttl    time.Duration

	mu         sync.RWMutex
	byName     map[string]*ent.AlbumType
	loadedAt   time.Time
	refreshing bool
}

// NewAlbumTypeCatalog creates an empty catalog; the first lookup
// populates it.
func NewAlbumTypeCatalog(client *ent.Client, pools *worker.Pools, ttl time.Duration) *AlbumTypeCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AlbumTypeCatalog{
		client: client,
		pools:  pools,
		ttl:    ttl,
	}
}

// ByName resolves an album type. A stale snapshot still answers and a
// refresh is kicked off in the background; only an empty catalog blocks
// on the database.
func (c *AlbumTypeCatalog) ByName(ctx context.Context, name string) (*ent.AlbumType, error) {
	c.mu.RLock()
	at, ok := c.byName[name]
	stale := time.Since(c.loadedAt) > c.ttl
	empty := c.byName == nil
	c.mu.RUnlock()

	if empty {
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
		c.mu.RLock()
		at, ok = c.byName[name]
		c.mu.RUnlock()
	} else if stale {
		c.scheduleRefresh()
	}

	if !ok {
		return nil, errs.NotFound("ALBUM_TYPE_NOT_FOUND", fmt.Sprintf("no album type named %s", name))
	}
	return at, nil
}

func (c *AlbumTypeCatalog) refresh(ctx context.Context) error {
	rows, err := c.client.AlbumType.Query().
		Order(ent.Asc(albumtype.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load album types: %w", err)
	}

	byName := make(map[string]*ent.AlbumType, len(rows))
	for _, at := range rows {
		byName[at.Name] = at
	}

	c.mu.Lock()
	c.byName = byName
	c.loadedAt = time.Now()
	c.refreshing = false
	c.mu.Unlock()

	logger.Debug("album type catalog refreshed", zap.Int("types", len(rows)))
	return nil
}

// scheduleRefresh starts at most one background refresh at a time.
func (c *AlbumTypeCatalog) scheduleRefresh() {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return
	}
	c.refreshing = true
	c.mu.Unlock()

	err := c.pools.SubmitDetached("general", func(ctx context.Context) {
		if err := c.refresh(ctx); err != nil {
			logger.Error("album type catalog refresh failed", zap.Error(err))
			c.mu.Lock()
			c.refreshing = false
			c.mu.Unlock()
		}
	})
	if err != nil {
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
	}
}
