package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmtotable/storefront/internal/logging"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/service"
	"github.com/farmtotable/storefront/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("get_users_error", "status", 500, "reason", "cannot list users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list users")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("get_user_failed", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	user, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("get_user_failed", "status", 404, "reason", "user with this id does not exist")
			return echo.NewHTTPError(http.StatusNotFound, "user with this id does not exist")
		}
		l.Error("get_user_failed", "status", 500, "reason", "cannot get user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotAcknowledged) {
			l.Error("user_create_error", "status", 500, "reason", "store did not acknowledge", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create a new user")
		}
		l.Error("user_create_error", "status", 400, "reason", "insert failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to create a new user")
	}

	l.Info("create_user_success", "user_id", id.Hex())
	return c.JSON(http.StatusCreated, transport.CreatedResponse{ID: id.Hex()})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	var req transport.UserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.Replace(ctx, id, req); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			l.Warn("user_update_error", "status", 404, "reason", "cannot find user")
			return echo.NewHTTPError(http.StatusNotFound, "cannot find user with this id")
		case errors.Is(err, service.ErrNotModified):
			l.Warn("user_update_error", "status", 409, "reason", "nothing changed")
			return echo.NewHTTPError(http.StatusConflict, "user was not modified")
		default:
			l.Error("user_update_error", "status", 400, "reason", "update failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "failed to update the user")
		}
	}

	l.Info("update_user_success", "user_id", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"id": id.Hex()})
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("user_delete_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("user_delete_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("user_delete_error", "status", 400, "reason", "delete failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to delete the user")
	}

	l.Info("delete_user_success", "user_id", id.Hex())
	return c.NoContent(http.StatusAccepted)
}
