// Package jobs defines the River job arguments and workers.
//
// Jobs carry small, self-describing payloads (ids and value types), are
// idempotent under redelivery, and report unrecoverable conditions with
// river.JobCancel so the queue retries only what retrying can fix.
package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"planora.io/planora/internal/notification"
	errs "planora.io/planora/internal/pkg/errors"
	"planora.io/planora/internal/pkg/logger"
)

// Queue names. Notification delivery and media finalization run on
// their own queues so a flood of one cannot starve the other.
const (
	QueueNotifications = "notifications"
	QueueMedia         = "media"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// DeliverNotificationArgs carries one per-recipient delivery request.
type DeliverNotificationArgs struct {
	notification.DeliveryRequest
}

// Kind returns the job kind identifier for notification delivery.
func (DeliverNotificationArgs) Kind() string { return "notification_deliver" }

// InsertOpts returns default insert options. ByArgs uniqueness over the
// in-flight states makes a dispatcher retry after a partial fan-out
// safe: recipients already queued dedupe instead of receiving twice.
// Finished states are excluded so that a later identical request, such
// as a second edit to the same event, still reaches the recipient.
func (DeliverNotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStatePending,
				rivertype.JobStateScheduled,
				rivertype.JobStateAvailable,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// DeliverNotificationWorker hands deliveries to the notification
// deliverer. Configuration failures, such as an unmapped template, are
// cancelled rather than retried.
type DeliverNotificationWorker struct {
	river.WorkerDefaults[DeliverNotificationArgs]
	deliverer *notification.Deliverer
}

// NewDeliverNotificationWorker creates the delivery worker.
func NewDeliverNotificationWorker(deliverer *notification.Deliverer) *DeliverNotificationWorker {
	return &DeliverNotificationWorker{deliverer: deliverer}
}

// Work delivers one notification.
func (w *DeliverNotificationWorker) Work(ctx context.Context, job *river.Job[DeliverNotificationArgs]) error {
	req := job.Args.DeliveryRequest

	logger.Debug("processing notification delivery",
		zap.String("type", string(req.Type)),
		zap.String("recipient_id", req.RecipientID),
		zap.Int("attempt", job.Attempt),
	)

	if err := w.deliverer.Deliver(ctx, req); err != nil {
		if errs.IsConfiguration(err) {
			return river.JobCancel(fmt.Errorf("deliver %s to %s: %w", req.Type, req.RecipientID, err))
		}
		return fmt.Errorf("deliver %s to %s: %w", req.Type, req.RecipientID, err)
	}
	return nil
}
