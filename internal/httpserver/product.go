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

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product with this id does not exist")
			return echo.NewHTTPError(http.StatusNotFound, "product with this id does not exist")
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotAcknowledged) {
			l.Error("product_create_error", "status", 500, "reason", "store did not acknowledge", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to create a new product")
		}
		l.Error("product_create_error", "status", 400, "reason", "transaction failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to create a new product")
	}

	l.Info("create_product_success", "product_id", id.Hex())
	return c.JSON(http.StatusCreated, transport.CreatedResponse{ID: id.Hex()})
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.Replace(ctx, id, req); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("product_update_error", "status", 404, "reason", "cannot find product")
			return echo.NewHTTPError(http.StatusNotFound, "cannot find product with this id")
		}
		l.Error("product_update_error", "status", 400, "reason", "transaction failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to update the product")
	}

	l.Info("update_product_success", "product_id", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"id": id.Hex()})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not an ObjectID", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a valid ObjectID")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 400, "reason", "transaction failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "failed to delete the product")
	}

	l.Info("delete_product_success", "product_id", id.Hex())
	return c.NoContent(http.StatusAccepted)
}
