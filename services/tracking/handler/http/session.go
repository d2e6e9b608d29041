package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/joglog/joglog/internal/pkg/logger"
	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/internal/utils"
	"github.com/joglog/joglog/services/tracking"
)

// SessionHandler handles HTTP requests for session tracking
type SessionHandler struct {
	trackingUC tracking.TrackingUC
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(trackingUC tracking.TrackingUC) *SessionHandler {
	return &SessionHandler{
		trackingUC: trackingUC,
	}
}

// StartSession handles session start requests
func (h *SessionHandler) StartSession(c echo.Context) error {
	session, err := h.trackingUC.StartSession(c.Request().Context())
	if err != nil {
		logger.Error("Failed to start session", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to start session")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Session started", session)
}

// AddLocation handles location sample submissions for a session
func (h *SessionHandler) AddLocation(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	var sample models.LocationSample
	if err := c.Bind(&sample); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	update := &models.LocationUpdate{
		SessionID: sessionID,
		Sample:    sample,
	}

	if err := h.trackingUC.AddSample(c.Request().Context(), update); err != nil {
		return h.mapSessionError(c, err, "Failed to record location")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Location recorded", nil)
}

// PauseSession handles session pause requests
func (h *SessionHandler) PauseSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	if err := h.trackingUC.PauseSession(c.Request().Context(), sessionID); err != nil {
		return h.mapSessionError(c, err, "Failed to pause session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session paused", nil)
}

// ResumeSession handles session resume requests
func (h *SessionHandler) ResumeSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	if err := h.trackingUC.ResumeSession(c.Request().Context(), sessionID); err != nil {
		return h.mapSessionError(c, err, "Failed to resume session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session resumed", nil)
}

// StopSession handles session stop requests
func (h *SessionHandler) StopSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	session, err := h.trackingUC.StopSession(c.Request().Context(), sessionID)
	if err != nil {
		return h.mapSessionError(c, err, "Failed to stop session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session stopped", session)
}

// GetSession handles session detail requests
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	detail, err := h.trackingUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return h.mapSessionError(c, err, "Failed to retrieve session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", detail)
}

// ListSessions handles session history requests
func (h *SessionHandler) ListSessions(c echo.Context) error {
	sessions, err := h.trackingUC.ListSessions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list sessions", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved", sessions)
}

// GetRoute handles route rendering requests, returning the stored
// route as speed-colored segments
func (h *SessionHandler) GetRoute(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	segments, err := h.trackingUC.GetRoute(c.Request().Context(), sessionID)
	if err != nil {
		return h.mapSessionError(c, err, "Failed to retrieve route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved", segments)
}

// ListNearby handles nearby-session queries
func (h *SessionHandler) ListNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	// Radius is optional; the use case applies the configured default
	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	sessions, err := h.trackingUC.ListNearby(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		logger.Error("Failed to list nearby sessions", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list nearby sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved", sessions)
}

// mapSessionError translates use case errors into HTTP responses
func (h *SessionHandler) mapSessionError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, tracking.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "Session not found")
	case errors.Is(err, tracking.ErrSessionNotActive):
		return utils.ConflictResponse(c, "Session is not active")
	case errors.Is(err, tracking.ErrSessionNotPaused):
		return utils.ConflictResponse(c, "Session is not paused")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, fallback)
	}
}
