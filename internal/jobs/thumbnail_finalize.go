package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"planora.io/planora/internal/media"
	"planora.io/planora/internal/pkg/logger"
)

// ---------------------------------------------------------------------------
// Job Args
// ---------------------------------------------------------------------------

// ThumbnailFinalizeArgs carries one pipeline callback: the source
// object's storage locator plus the per-size artifacts produced for it.
type ThumbnailFinalizeArgs struct {
	SrcBucket string                  `json:"src_bucket"`
	SrcKey    string                  `json:"src_key"`
	Results   []media.ThumbnailResult `json:"thumbnail_results"`
}

// Kind returns the job kind identifier for thumbnail finalization.
func (ThumbnailFinalizeArgs) Kind() string { return "thumbnail_finalize" }

// InsertOpts returns default insert options. The webhook may redeliver
// the same callback; ByArgs uniqueness collapses identical payloads
// that are still pending, and the processor itself absorbs replays that
// already ran.
func (ThumbnailFinalizeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueMedia,
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}

// ---------------------------------------------------------------------------
// Worker
// ---------------------------------------------------------------------------

// ThumbnailFinalizeWorker applies pipeline callbacks through the media
// processor.
type ThumbnailFinalizeWorker struct {
	river.WorkerDefaults[ThumbnailFinalizeArgs]
	processor *media.Processor
}

// NewThumbnailFinalizeWorker creates the finalize worker.
func NewThumbnailFinalizeWorker(processor *media.Processor) *ThumbnailFinalizeWorker {
	return &ThumbnailFinalizeWorker{processor: processor}
}

// Work finalizes one album file.
func (w *ThumbnailFinalizeWorker) Work(ctx context.Context, job *river.Job[ThumbnailFinalizeArgs]) error {
	logger.Debug("processing thumbnail finalize",
		zap.String("bucket", job.Args.SrcBucket),
		zap.String("key", job.Args.SrcKey),
		zap.Int("results", len(job.Args.Results)),
		zap.Int("attempt", job.Attempt),
	)

	if err := w.processor.FinalizeThumbnails(ctx, job.Args.SrcBucket, job.Args.SrcKey, job.Args.Results); err != nil {
		return fmt.Errorf("finalize %s/%s: %w", job.Args.SrcBucket, job.Args.SrcKey, err)
	}
	return nil
}
