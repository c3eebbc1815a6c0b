package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"planora.io/planora/internal/media"
	errs "planora.io/planora/internal/pkg/errors"
)

// ProcessSecretHeader authenticates machine-to-machine callbacks.
const ProcessSecretHeader = "X-Process-Secret"

type thumbnailCallback struct {
	SrcBucket string                  `json:"src_bucket" binding:"required"`
	SrcKey    string                  `json:"src_key" binding:"required"`
	Results   []media.ThumbnailResult `json:"thumbnail_results"`
}

// PostThumbnailCallback handles POST /hooks/thumbnails: the external
// pipeline reporting per-size artifacts for one source object. The
// payload is queued and the webhook acknowledges immediately; the
// pipeline's delivery guarantees end at the insert.
func (s *Server) PostThumbnailCallback(c *gin.Context) {
	secret := c.GetHeader(ProcessSecretHeader)
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.processSecret)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    "UNAUTHORIZED",
			"message": "invalid process secret",
		})
		return
	}

	var payload thumbnailCallback
	if err := c.ShouldBindJSON(&payload); err != nil {
		_ = c.Error(errs.BadRequest("PAYLOAD_INVALID", "malformed thumbnail callback"))
		return
	}

	if err := s.enqueuer.EnqueueThumbnailFinalize(c.Request.Context(), payload.SrcBucket, payload.SrcKey, payload.Results); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
