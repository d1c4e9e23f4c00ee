package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtotable/storefront/internal/logging"
	"github.com/farmtotable/storefront/internal/service"
	"github.com/farmtotable/storefront/internal/transport"
)

type AuthHTTP struct {
	Tokens *service.TokenService
}

// Login issues a signed access token for the given username. By
// contract this endpoint performs no password check.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.Tokens.CreateAccessToken(req.Username)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign access token")
	}

	l.Info("login_success", "username", req.Username)
	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: token})
}
