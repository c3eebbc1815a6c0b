package media

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora.io/planora/ent"
	"planora.io/planora/ent/albumfile"
	"planora.io/planora/ent/thumbnail"
	"planora.io/planora/internal/pkg/logger"
	"planora.io/planora/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedProcessingFile(t *testing.T, client *ent.Client, bucket, key string) *ent.AlbumFile {
	t.Helper()
	ctx := context.Background()

	owner := client.Account.Create().
		SetID("acc-" + key).
		SetName("Uploader").
		SaveX(ctx)

	return client.AlbumFile.Create().
		SetID("af-" + key).
		SetOwnerID(owner.ID).
		SetWidth(4000).
		SetHeight(3000).
		SetSizeBytes(1 << 20).
		SetBucket(bucket).
		SetObjectKey(key).
		SaveX(ctx)
}

func resultsForSizes(sizes ...int) []ThumbnailResult {
	out := make([]ThumbnailResult, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, ThumbnailResult{
			Size:      s,
			FileURL:   fmt.Sprintf("https://cdn.example/thumbs/%d.jpg", s),
			Width:     s,
			Height:    s * 3 / 4,
			SizeBytes: s * 100,
		})
	}
	return out
}

func TestFinalizeActivatesAndRecordsThumbnails(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_basic")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p1.jpg")
	require.Equal(t, albumfile.StatusPROCESSING, file.Status)

	err := p.FinalizeThumbnails(ctx, "media", "p1.jpg", resultsForSizes(48, 100, 144))
	require.NoError(t, err)

	file = client.AlbumFile.GetX(ctx, file.ID)
	assert.Equal(t, albumfile.StatusACTIVE, file.Status)

	count := client.Thumbnail.Query().
		Where(thumbnail.AlbumfileIDEQ(file.ID)).
		CountX(ctx)
	assert.Equal(t, 3, count)
}

func TestFinalizeReplayIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_replay")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p2.jpg")
	payload := resultsForSizes(48, 100, 144, 205, 320, 610, 960)

	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p2.jpg", payload))
	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p2.jpg", payload))

	count := client.Thumbnail.Query().
		Where(thumbnail.AlbumfileIDEQ(file.ID)).
		CountX(ctx)
	assert.Equal(t, 7, count, "replay must not duplicate thumbnails")

	file = client.AlbumFile.GetX(ctx, file.ID)
	assert.Equal(t, albumfile.StatusACTIVE, file.Status)
}

func TestFinalizeIncrementalSizesConverge(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_incremental")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p3.jpg")

	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p3.jpg", resultsForSizes(48, 100, 144)))
	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p3.jpg", resultsForSizes(205, 320, 610, 960)))

	count := client.Thumbnail.Query().
		Where(thumbnail.AlbumfileIDEQ(file.ID)).
		CountX(ctx)
	assert.Equal(t, 7, count)
}

func TestFinalizeOverwritesChangedArtifact(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_overwrite")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p4.jpg")

	first := resultsForSizes(320)
	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p4.jpg", first))

	second := resultsForSizes(320)
	second[0].FileURL = "https://cdn.example/thumbs/320-v2.jpg"
	second[0].SizeBytes = 999
	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p4.jpg", second))

	th := client.Thumbnail.Query().
		Where(
			thumbnail.AlbumfileIDEQ(file.ID),
			thumbnail.SizeTypeEQ(320),
		).
		OnlyX(ctx)
	assert.Equal(t, "https://cdn.example/thumbs/320-v2.jpg", th.FileURL)
	assert.Equal(t, 999, th.SizeBytes)
}

func TestFinalizeSkipsUnknownSizes(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_unknown_size")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p5.jpg")

	results := append(resultsForSizes(48), ThumbnailResult{
		Size:    333,
		FileURL: "https://cdn.example/thumbs/333.jpg",
	})
	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p5.jpg", results))

	count := client.Thumbnail.Query().
		Where(thumbnail.AlbumfileIDEQ(file.ID)).
		CountX(ctx)
	assert.Equal(t, 1, count)

	file = client.AlbumFile.GetX(ctx, file.ID)
	assert.Equal(t, albumfile.StatusACTIVE, file.Status)
}

func TestFinalizeUnknownLocatorIsAbsorbed(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_unknown_locator")
	p := NewProcessor(client)

	err := p.FinalizeThumbnails(context.Background(), "media", "nope.jpg", resultsForSizes(48))
	require.NoError(t, err, "unknown locator is not a retryable failure")
}

func TestFinalizeEmptyResultsLeaveFileProcessing(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_empty")
	ctx := context.Background()
	p := NewProcessor(client)

	file := seedProcessingFile(t, client, "media", "p6.jpg")

	require.NoError(t, p.FinalizeThumbnails(ctx, "media", "p6.jpg", nil))

	file = client.AlbumFile.GetX(ctx, file.ID)
	assert.Equal(t, albumfile.StatusPROCESSING, file.Status)
}

func TestStaleProcessingCount(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "finalize_stale")
	ctx := context.Background()
	p := NewProcessor(client)

	owner := client.Account.Create().
		SetID("acc-stale").
		SetName("Uploader").
		SaveX(ctx)
	client.AlbumFile.Create().
		SetID("af-old").
		SetOwnerID(owner.ID).
		SetWidth(100).
		SetHeight(100).
		SetSizeBytes(10).
		SetBucket("media").
		SetObjectKey("old.jpg").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		SaveX(ctx)

	seedProcessingFile(t, client, "media", "fresh.jpg")

	n, err := p.StaleProcessingCount(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
