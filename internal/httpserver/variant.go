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

type VariantHTTP struct {
	Svc *service.VariantService
}

func (h *VariantHTTP) GetVariants(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "variant.get_variants")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("get_variants_error", "status", 500, "reason", "cannot list variants", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list product variants")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *VariantHTTP) GetVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "variant.get_variant")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("get_variant_failed", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	variant, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("get_variant_failed", "status", 404, "reason", "variant with this id does not exist")
			return echo.NewHTTPError(http.StatusNotFound, "variant with this id does not exist")
		}
		l.Error("get_variant_failed", "status", 500, "reason", "cannot get variant", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product variant")
	}

	return c.JSON(http.StatusOK, variant)
}

func (h *VariantHTTP) CreateVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "variant.create_variant")

	var req transport.CreateVariantRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("variant_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("variant_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			l.Warn("variant_create_error", "status", 400, "reason", "productId is not an ObjectID", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "productId is not a valid ObjectID")
		}
		if errors.Is(err, repo.ErrNotAcknowledged) {
			l.Error("variant_create_error", "status", 500, "reason", "store did not acknowledge", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create a new product variant")
		}
		l.Error("variant_create_error", "status", 400, "reason", "insert failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to create a new product variant")
	}

	l.Info("create_variant_success", "variant_id", id.Hex())
	return c.JSON(http.StatusCreated, transport.CreatedResponse{ID: id.Hex()})
}

func (h *VariantHTTP) UpdateVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "variant.update_variant")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("variant_update_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	var req transport.CreateVariantRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("variant_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("variant_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.Replace(ctx, id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			l.Warn("variant_update_error", "status", 400, "reason", "productId is not an ObjectID", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "productId is not a valid ObjectID")
		case errors.Is(err, repo.ErrNotFound):
			l.Warn("variant_update_error", "status", 404, "reason", "cannot find variant")
			return echo.NewHTTPError(http.StatusNotFound, "cannot find product variant with this id")
		case errors.Is(err, service.ErrNotModified):
			l.Warn("variant_update_error", "status", 409, "reason", "nothing changed")
			return echo.NewHTTPError(http.StatusConflict, "product variant was not modified")
		default:
			l.Error("variant_update_error", "status", 400, "reason", "update failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "failed to update the product variant")
		}
	}

	l.Info("update_variant_success", "variant_id", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"id": id.Hex()})
}

func (h *VariantHTTP) DeleteVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "variant.delete_variant")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("variant_delete_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("variant_delete_error", "status", 404, "reason", "variant not found")
			return echo.NewHTTPError(http.StatusNotFound, "product variant not found")
		}
		l.Error("variant_delete_error", "status", 400, "reason", "delete failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to delete the product variant")
	}

	l.Info("delete_variant_success", "variant_id", id.Hex())
	return c.NoContent(http.StatusAccepted)
}
