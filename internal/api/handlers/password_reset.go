package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "planora.io/planora/internal/pkg/errors"
)

type resetRequest struct {
	Email string `json:"email" binding:"required"`
}

// PostPasswordReset handles POST /password-resets. The response is 202
// regardless of whether the address exists; the lookup, throttle and
// send all happen in the queued job.
func (s *Server) PostPasswordReset(c *gin.Context) {
	var body resetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(errs.BadRequest("PAYLOAD_INVALID", "email is required"))
		return
	}

	if err := s.enqueuer.EnqueuePasswordResetEmail(c.Request.Context(), body.Email); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

type resetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// PostPasswordResetConfirm handles POST /password-resets/:resetID/confirm.
func (s *Server) PostPasswordResetConfirm(c *gin.Context) {
	var body resetConfirmRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(errs.BadRequest("PAYLOAD_INVALID", "token and new_password are required"))
		return
	}

	if err := s.resets.Consume(c.Request.Context(), c.Param("resetID"), body.Token, body.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password_changed"})
}

// GetValidateEmail handles GET /validate-email?t=..., the link inside
// a validation message.
func (s *Server) GetValidateEmail(c *gin.Context) {
	acct, err := s.accounts.ValidateEmail(c.Request.Context(), c.Query(tokenParam))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "validated",
		"account_id": acct.ID,
	})
}
