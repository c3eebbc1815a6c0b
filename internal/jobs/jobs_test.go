package jobs

import (
	"testing"

	"github.com/riverqueue/river/rivertype"

	"planora.io/planora/internal/domain"
	"planora.io/planora/internal/notification"
)

func TestDeliverNotificationArgsKind(t *testing.T) {
	t.Parallel()

	if got := (DeliverNotificationArgs{}).Kind(); got != "notification_deliver" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_deliver")
	}
}

func TestDeliverNotificationArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (DeliverNotificationArgs{}).InsertOpts()
	if opts.Queue != QueueNotifications {
		t.Fatalf("Queue = %q, want %q", opts.Queue, QueueNotifications)
	}
	if opts.MaxAttempts != 5 {
		t.Fatalf("MaxAttempts = %d, want 5", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}

	// Dedupe must cover in-flight jobs only. A finished delivery in a
	// finalized state (e.g. completed, still retained) must not swallow
	// a later identical request for the same recipient.
	states := make(map[rivertype.JobState]bool, len(opts.UniqueOpts.ByState))
	for _, s := range opts.UniqueOpts.ByState {
		states[s] = true
	}
	for _, want := range []rivertype.JobState{
		rivertype.JobStatePending,
		rivertype.JobStateScheduled,
		rivertype.JobStateAvailable,
		rivertype.JobStateRunning,
		rivertype.JobStateRetryable,
	} {
		if !states[want] {
			t.Errorf("UniqueOpts.ByState missing %s", want)
		}
	}
	for _, finished := range []rivertype.JobState{
		rivertype.JobStateCompleted,
		rivertype.JobStateCancelled,
		rivertype.JobStateDiscarded,
	} {
		if states[finished] {
			t.Errorf("UniqueOpts.ByState must not include %s", finished)
		}
	}
}

func TestDeliverNotificationArgsCarryRequest(t *testing.T) {
	t.Parallel()

	req := notification.DeliveryRequest{
		Type:        domain.NotifyEventInvite,
		SenderID:    "host",
		RecipientID: "guest",
		Subject:     domain.EventRef("ev-1"),
	}
	args := DeliverNotificationArgs{DeliveryRequest: req}
	if args.RecipientID != "guest" || args.Subject.ID != "ev-1" {
		t.Fatalf("args did not carry request fields: %+v", args)
	}
}

func TestThumbnailFinalizeArgsKind(t *testing.T) {
	t.Parallel()

	if got := (ThumbnailFinalizeArgs{}).Kind(); got != "thumbnail_finalize" {
		t.Fatalf("Kind() = %q, want %q", got, "thumbnail_finalize")
	}
}

func TestThumbnailFinalizeArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (ThumbnailFinalizeArgs{}).InsertOpts()
	if opts.Queue != QueueMedia {
		t.Fatalf("Queue = %q, want %q", opts.Queue, QueueMedia)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestPasswordResetEmailArgsKind(t *testing.T) {
	t.Parallel()

	if got := (PasswordResetEmailArgs{}).Kind(); got != "password_reset_email" {
		t.Fatalf("Kind() = %q, want %q", got, "password_reset_email")
	}
}

func TestPasswordResetEmailArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (PasswordResetEmailArgs{}).InsertOpts()
	if opts.Queue != QueueNotifications {
		t.Fatalf("Queue = %q, want %q", opts.Queue, QueueNotifications)
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
}
