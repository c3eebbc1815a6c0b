package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora.io/planora/ent"
	errs "planora.io/planora/internal/pkg/errors"
)

// tokenParam is the query parameter carrying a guest access token.
const tokenParam = "t"

type rsvpResponse struct {
	EventID string `json:"event_id"`
	Name    string `json:"name,omitempty"`
	RSVP    string `json:"rsvp"`
}

func toRSVPResponse(g *ent.EventGuest) rsvpResponse {
	return rsvpResponse{
		EventID: g.EventID,
		Name:    g.Name,
		RSVP:    string(g.Rsvp),
	}
}

// GetGuestRSVP handles GET /events/:eventID/rsvp?t=...: a guest
// viewing their own RSVP through the tokenized link.
func (s *Server) GetGuestRSVP(c *gin.Context) {
	guest, err := s.events.GuestByToken(c.Request.Context(), c.Param("eventID"), c.Query(tokenParam))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toRSVPResponse(guest))
}

type rsvpUpdateRequest struct {
	RSVP string `json:"rsvp" binding:"required"`
}

// PutGuestRSVP handles PUT /events/:eventID/rsvp?t=...: a guest
// answering their invitation.
func (s *Server) PutGuestRSVP(c *gin.Context) {
	var body rsvpUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(errs.BadRequest("PAYLOAD_INVALID", "rsvp is required"))
		return
	}

	guest, err := s.events.UpdateRSVPByToken(c.Request.Context(), c.Param("eventID"), c.Query(tokenParam), body.RSVP)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toRSVPResponse(guest))
}
