package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"planora.io/planora/internal/passwordreset"
	"planora.io/planora/internal/pkg/logger"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// PasswordResetEmailArgs carries the address a reset was requested for.
// The address is the raw user input; the service normalizes it.
type PasswordResetEmailArgs struct {
	Email string `json:"email"`
}

// Kind returns the job kind identifier for password reset email.
func (PasswordResetEmailArgs) Kind() string { return "password_reset_email" }

// InsertOpts returns default insert options. MaxAttempts stays low: the
// service throttles repeats itself, so hammering retries adds nothing.
func (PasswordResetEmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: 3,
	}
}

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// PasswordResetEmailWorker runs reset requests through the password
// reset service.
type PasswordResetEmailWorker struct {
	river.WorkerDefaults[PasswordResetEmailArgs]
	service *passwordreset.Service
}

// NewPasswordResetEmailWorker creates the reset email worker.
func NewPasswordResetEmailWorker(service *passwordreset.Service) *PasswordResetEmailWorker {
	return &PasswordResetEmailWorker{service: service}
}

// Work handles one reset request. A suppressed send (unknown address,
// throttle) completes the job; only a real failure retries.
func (w *PasswordResetEmailWorker) Work(ctx context.Context, job *river.Job[PasswordResetEmailArgs]) error {
	sent, err := w.service.RequestReset(ctx, job.Args.Email)
	if err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}
	logger.Debug("password reset job done", zap.Bool("sent", sent))
	return nil
}
