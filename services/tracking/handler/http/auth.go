package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joglog/joglog/internal/pkg/logger"
	"github.com/joglog/joglog/internal/utils"
	"github.com/joglog/joglog/services/tracking"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	trackingUC tracking.TrackingUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(trackingUC tracking.TrackingUC) *AuthHandler {
	return &AuthHandler{
		trackingUC: trackingUC,
	}
}

// loginRequest is the login payload
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.trackingUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, tracking.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Failed to process login", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to process login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
