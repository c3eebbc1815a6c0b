package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"planora.io/planora/internal/api/handlers"
	"planora.io/planora/internal/api/middleware"
	"planora.io/planora/internal/pkg/logger"
)

func newRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	// Tokenized guest links and the validation link are opened from
	// mail clients and the frontend origin alike.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)
	router.Any("/log/level", gin.WrapH(logger.LevelHandler()))

	router.POST("/hooks/thumbnails", server.PostThumbnailCallback)

	router.GET("/events/:eventID/rsvp", server.GetGuestRSVP)
	router.PUT("/events/:eventID/rsvp", server.PutGuestRSVP)

	router.GET("/validate-email", server.GetValidateEmail)
	router.POST("/password-resets", server.PostPasswordReset)
	router.POST("/password-resets/:resetID/confirm", server.PostPasswordResetConfirm)

	return router
}
