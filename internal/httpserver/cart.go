package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/cart"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/resolver"
)

type CartHTTP struct {
	Cart        *cart.Store
	Resolver    *resolver.Resolver
	PreferLocal bool
}

type cartView struct {
	Items     any     `json:"items"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

func (h *CartHTTP) view() cartView {
	return cartView{
		Items:     h.Cart.Items(),
		ItemCount: h.Cart.ItemCount(),
		Total:     h.Cart.Total(),
	}
}

func (h *CartHTTP) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req cart.AddInput
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == "" || req.Quantity < 1 {
		l.Warn("add_to_cart_error", "status", 400)
		return echo.NewHTTPError(http.StatusBadRequest, "product_id and quantity>=1 required")
	}

	// Best-effort: fill the denormalized snapshot from the catalog and
	// flag obviously unavailable stock. The store itself does not
	// enforce stock levels.
	if p := h.Resolver.Get(ctx, req.ProductID, h.PreferLocal); p != nil {
		if req.Name == "" {
			req.Name = p.Name
		}
		if req.Price == 0 {
			req.Price = p.Price
		}
		if req.Image == "" {
			req.Image = p.Image
		}
		if p.StockCount < req.Quantity {
			l.Warn("add_to_cart_error", "status", 400, "reason", "insufficient stock", "product_id", req.ProductID)
			return echo.NewHTTPError(http.StatusBadRequest, "insufficient stock")
		}
	}

	if err := h.Cart.AddItem(ctx, req); err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("item added to cart", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusCreated, h.view())
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	productID := c.Param("product_id")
	if err := h.Cart.UpdateQuantity(ctx, productID, req.Quantity); err != nil {
		l.Error("update_quantity_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	if err := h.Cart.RemoveItem(ctx, c.Param("product_id")); err != nil {
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Cart.Clear(ctx); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	l.Info("cart cleared")
	return c.JSON(http.StatusOK, h.view())
}
