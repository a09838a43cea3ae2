package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/catalog"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/resolver"
	"github.com/okorolenko/storefront/internal/util"
)

type ProductHTTP struct {
	Resolver    *resolver.Resolver
	PreferLocal bool
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	opts := resolver.Options{
		ListOptions: catalog.ListOptions{
			Category: c.QueryParam("category"),
			Search:   c.QueryParam("search"),
			MinPrice: parseFloatParam(c.QueryParam("min_price")),
			MaxPrice: parseFloatParam(c.QueryParam("max_price")),
		},
		PreferLocal: h.PreferLocal || c.QueryParam("local") == "true",
	}

	if raw := c.QueryParam("limit"); raw != "" {
		opts.Limit = parseIntDefault(raw, 0)
	} else {
		page := parseIntDefault(c.QueryParam("page"), 1)
		size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
		opts.Offset, opts.Limit = util.Calculate(page, size)
	}

	items := h.Resolver.List(ctx, opts)

	l.Info("products listed", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) Featured(c echo.Context) error {
	ctx := c.Request().Context()
	limit := parseIntDefault(c.QueryParam("limit"), 8)
	return c.JSON(http.StatusOK, h.Resolver.Featured(ctx, limit))
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id := c.Param("id")
	p := h.Resolver.Get(ctx, id, h.PreferLocal)
	if p == nil {
		l.Warn("product not found", "product_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}
