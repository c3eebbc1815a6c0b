// Package media finalizes album files once the external thumbnailing
// pipeline reports its results.
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planora.io/planora/ent"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/schema"
	"planora.io/planora/ent/thumbnail"
	"planora.io/planora/internal/pkg/logger"
)

// ThumbnailResult is one per-size artifact reported by the pipeline.
type ThumbnailResult struct {
	Size      int    `json:"size"`
	FileURL   string `json:"file_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int    `json:"size_bytes"`
}

// Processor applies pipeline callbacks to album files.
type Processor struct {
	client *ent.Client
}

// NewProcessor creates a finalize processor.
func NewProcessor(client *ent.Client) *Processor {
	return &Processor{client: client}
}

// FinalizeThumbnails records the reported artifacts for the file
// identified by its storage locator and flips the file to ACTIVE if it
// is still PROCESSING.
//
// The callback may arrive more than once, may carry a partial size set,
// and may race with itself: thumbnails upsert on (albumfile, size), the
// file row is locked for the duration, and the status flip only fires
// from PROCESSING. Replaying the same payload is a no-op. An unknown
// locator or an empty result list is logged and absorbed; the pipeline
// gains nothing from redelivering those.
func (p *Processor) FinalizeThumbnails(ctx context.Context, srcBucket, srcKey string, results []ThumbnailResult) error {
	if len(results) == 0 {
		logger.Warn("finalize callback with no thumbnail results",
			zap.String("bucket", srcBucket),
			zap.String("key", srcKey))
		return nil
	}

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin finalize tx: %w", err)
	}

	file, err := tx.AlbumFile.Query().
		Where(
			albumfile.BucketEQ(srcBucket),
			albumfile.ObjectKeyEQ(srcKey),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			logger.Warn("finalize callback for unknown storage locator",
				zap.String("bucket", srcBucket),
				zap.String("key", srcKey))
			return nil
		}
		return fmt.Errorf("lock album file %s/%s: %w", srcBucket, srcKey, err)
	}

	applied := 0
	for _, r := range results {
		if !knownSize(r.Size) {
			logger.Warn("skipping thumbnail result with unknown size",
				zap.String("albumfile_id", file.ID),
				zap.Int("size", r.Size))
			continue
		}
		if err := p.upsertThumbnail(ctx, tx, file.ID, r); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert thumbnail %s size %d: %w", file.ID, r.Size, err)
		}
		applied++
	}

	flipped := false
	if file.Status == albumfile.StatusPROCESSING {
		if err := tx.AlbumFile.UpdateOne(file).
			SetStatus(albumfile.StatusACTIVE).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("activate album file %s: %w", file.ID, err)
		}
		flipped = true
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize tx: %w", err)
	}

	logger.Info("album file finalized",
		zap.String("albumfile_id", file.ID),
		zap.Int("thumbnails", applied),
		zap.Bool("activated", flipped))
	return nil
}

func (p *Processor) upsertThumbnail(ctx context.Context, tx *ent.Tx, fileID string, r ThumbnailResult) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	return tx.Thumbnail.Create().
		SetID(id.String()).
		SetAlbumfileID(fileID).
		SetSizeType(r.Size).
		SetFileURL(r.FileURL).
		SetWidth(r.Width).
		SetHeight(r.Height).
		SetSizeBytes(r.SizeBytes).
		OnConflictColumns(thumbnail.FieldAlbumfileID, thumbnail.FieldSizeType).
		Update(func(u *ent.ThumbnailUpsert) {
			u.SetFileURL(r.FileURL)
			u.SetWidth(r.Width)
			u.SetHeight(r.Height)
			u.SetSizeBytes(r.SizeBytes)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
}

func knownSize(size int) bool {
	for _, s := range schema.ThumbnailSizes {
		if s == size {
			return true
		}
	}
	return false
}

// StaleProcessingCount counts files stuck in PROCESSING for longer than
// the given age. Exposed for operational monitoring; the pipeline owns
// failure handling, so nothing here transitions them.
func (p *Processor) StaleProcessingCount(ctx context.Context, olderThan time.Duration) (int, error) {
	return p.client.AlbumFile.Query().
		Where(
			albumfile.StatusEQ(albumfile.StatusPROCESSING),
			albumfile.CreatedAtLT(time.Now().Add(-olderThan)),
		).
		Count(ctx)
}
