package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/wishlist"
)

type WishlistHTTP struct {
	Wishlist *wishlist.Store
}

func (h *WishlistHTTP) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Wishlist.Items())
}

func (h *WishlistHTTP) Contains(c echo.Context) error {
	productID := c.Param("product_id")
	return c.JSON(http.StatusOK, map[string]any{
		"product_id":  productID,
		"in_wishlist": h.Wishlist.Contains(productID),
	})
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	var req wishlist.AddInput
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_wishlist_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	if err := h.Wishlist.Add(ctx, req); err != nil {
		l.Error("add_to_wishlist_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, h.Wishlist.Items())
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.remove")

	if err := h.Wishlist.Remove(ctx, c.Param("product_id")); err != nil {
		l.Error("remove_from_wishlist_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, h.Wishlist.Items())
}

func (h *WishlistHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.clear")

	if err := h.Wishlist.Clear(ctx); err != nil {
		l.Error("clear_wishlist_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	l.Info("wishlist cleared")
	return c.JSON(http.StatusOK, h.Wishlist.Items())
}
