package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/pkg/logger"
)

// DeliveryRequest is the unit of work handed to the delivery queue:
// one notification type, one recipient, one subject.
type DeliveryRequest struct {
	Type        domain.NotificationType `json:"type"`
	SenderID    string                  `json:"sender_id"`
	RecipientID string                  `json:"recipient_id"`
	Subject     domain.SubjectRef       `json:"subject"`
}

// Enqueuer submits delivery requests for asynchronous processing. The
// implementation lives in the jobs package; the indirection keeps this
// package free of queue machinery.
type Enqueuer interface {
	EnqueueDelivery(ctx context.Context, req DeliveryRequest) error
}

// Dispatcher fans a notification intent out into one delivery request
// per recipient.
type Dispatcher struct {
	enqueuer Enqueuer
}

// NewDispatcher creates a dispatcher backed by the given queue.
func NewDispatcher(enqueuer Enqueuer) *Dispatcher {
	return &Dispatcher{enqueuer: enqueuer}
}

// Dispatch validates the intent and enqueues one delivery request per
// recipient. Enqueue failures are best-effort: a failure for one
// recipient does not stop the others, and the aggregate error reports
// how many were lost.
func (d *Dispatcher) Dispatch(ctx context.Context, intent domain.Intent) error {
	if err := intent.Validate(); err != nil {
		return fmt.Errorf("invalid notification intent: %w", err)
	}

	var failed int
	for _, recipientID := range intent.RecipientIDs {
		req := DeliveryRequest{
			Type:        intent.Type,
			SenderID:    intent.SenderID,
			RecipientID: recipientID,
			Subject:     intent.Subject,
		}
		if err := d.enqueuer.EnqueueDelivery(ctx, req); err != nil {
			failed++
			logger.Error("failed to enqueue notification delivery",
				zap.String("type", string(intent.Type)),
				zap.String("recipient_id", recipientID),
				zap.String("subject_kind", string(intent.Subject.Kind)),
				zap.String("subject_id", intent.Subject.ID),
				zap.Error(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to enqueue %d of %d deliveries for %s",
			failed, len(intent.RecipientIDs), intent.Type)
	}
	logger.Debug("notification dispatched",
		zap.String("type", string(intent.Type)),
		zap.Int("recipients", len(intent.RecipientIDs)))
	return nil
}
