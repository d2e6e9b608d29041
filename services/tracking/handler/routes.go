package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/joglog/joglog/internal/pkg/middleware"
	"github.com/joglog/joglog/internal/pkg/models"
	httpHandler "github.com/joglog/joglog/services/tracking/handler/http"
	natsHandler "github.com/joglog/joglog/services/tracking/handler/nats"
)

// Handler coordinates all protocol handlers for the tracking service
type Handler struct {
	sessionHandler  *httpHandler.SessionHandler
	authHandler     *httpHandler.AuthHandler
	locationHandler *natsHandler.LocationHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	sessionHandler *httpHandler.SessionHandler,
	authHandler *httpHandler.AuthHandler,
	locationHandler *natsHandler.LocationHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		sessionHandler:  sessionHandler,
		authHandler:     authHandler,
		locationHandler: locationHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/auth/login", h.authHandler.Login)

	// Protected routes
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.POST("/sessions", h.sessionHandler.StartSession)
	v1.GET("/sessions", h.sessionHandler.ListSessions)
	v1.GET("/sessions/nearby", h.sessionHandler.ListNearby)
	v1.GET("/sessions/:id", h.sessionHandler.GetSession)
	v1.GET("/sessions/:id/route", h.sessionHandler.GetRoute)
	v1.POST("/sessions/:id/locations", h.sessionHandler.AddLocation)
	v1.POST("/sessions/:id/pause", h.sessionHandler.PauseSession)
	v1.POST("/sessions/:id/resume", h.sessionHandler.ResumeSession)
	v1.POST("/sessions/:id/stop", h.sessionHandler.StopSession)
}

// InitConsumers starts the NATS consumers
func (h *Handler) InitConsumers() error {
	return h.locationHandler.InitConsumers()
}
