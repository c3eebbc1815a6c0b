package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"planora.io/planora/internal/media"
	"planora.io/planora/internal/notification"
	"planora.io/planora/internal/passwordreset"
)

// RiverEnqueuer adapts the River client to the enqueue interfaces the
// services depend on.
type RiverEnqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewRiverEnqueuer wraps a River client.
func NewRiverEnqueuer(client *river.Client[pgx.Tx]) *RiverEnqueuer {
	return &RiverEnqueuer{client: client}
}

// EnqueueDelivery inserts one notification delivery job.
func (e *RiverEnqueuer) EnqueueDelivery(ctx context.Context, req notification.DeliveryRequest) error {
	_, err := e.client.Insert(ctx, DeliverNotificationArgs{DeliveryRequest: req}, nil)
	if err != nil {
		return fmt.Errorf("insert delivery job: %w", err)
	}
	return nil
}

// EnqueueThumbnailFinalize inserts one finalize job for a pipeline
// callback.
func (e *RiverEnqueuer) EnqueueThumbnailFinalize(ctx context.Context, srcBucket, srcKey string, results []media.ThumbnailResult) error {
	_, err := e.client.Insert(ctx, ThumbnailFinalizeArgs{
		SrcBucket: srcBucket,
		SrcKey:    srcKey,
		Results:   results,
	}, nil)
	if err != nil {
		return fmt.Errorf("insert thumbnail finalize job: %w", err)
	}
	return nil
}

// EnqueuePasswordResetEmail inserts one reset email job.
func (e *RiverEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, email string) error {
	_, err := e.client.Insert(ctx, PasswordResetEmailArgs{Email: email}, nil)
	if err != nil {
		return fmt.Errorf("insert password reset job: %w", err)
	}
	return nil
}

var _ notification.Enqueuer = (*RiverEnqueuer)(nil)

// RegisterWorkers registers every worker on the given registry.
func RegisterWorkers(registry *river.Workers, deliverer *notification.Deliverer, processor *media.Processor, resets *passwordreset.Service) error {
	if err := river.AddWorkerSafely(registry, NewDeliverNotificationWorker(deliverer)); err != nil {
		return fmt.Errorf("register delivery worker: %w", err)
	}
	if err := river.AddWorkerSafely(registry, NewThumbnailFinalizeWorker(processor)); err != nil {
		return fmt.Errorf("register finalize worker: %w", err)
	}
	if err := river.AddWorkerSafely(registry, NewPasswordResetEmailWorker(resets)); err != nil {
		return fmt.Errorf("register reset email worker: %w", err)
	}
	return nil
}
