package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/jwtmiddleware"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/okorolenko/storefront/internal/order"
	"github.com/okorolenko/storefront/internal/repo"
)

type CheckoutHTTP struct {
	Orders *order.Assembler
	Repo   *repo.GormRepo
}

func (h *CheckoutHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.place_order")

	if h.Orders == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkout requires a configured persistence service")
	}

	userID := jwtmiddleware.UserID(c)

	var req struct {
		ShippingAddress models.ShippingAddress    `json:"shipping_address"`
		Payment         order.PaymentConfirmation `json:"payment"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ord, err := h.Orders.PlaceOrder(ctx, userID, req.ShippingAddress, req.Payment)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		l.Warn("checkout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	case errors.Is(err, order.ErrPartialFailure):
		l.Error("checkout_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	case err != nil:
		l.Error("checkout_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "order creation failed")
	}

	l.Info("checkout complete", "order_id", ord.ID)
	return c.JSON(http.StatusCreated, ord)
}

func (h *CheckoutHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.list_orders")

	if h.Repo == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "orders require a configured persistence service")
	}

	orders, err := h.Repo.ListOrders(ctx, jwtmiddleware.UserID(c))
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, orders)
}
