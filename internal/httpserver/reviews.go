package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okorolenko/storefront/internal/jwtmiddleware"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/okorolenko/storefront/internal/repo"
)

type ReviewHTTP struct {
	Repo *repo.GormRepo
}

func (h *ReviewHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list")

	if h.Repo == nil {
		return c.JSON(http.StatusOK, []models.Review{})
	}

	reviews, err := h.Repo.ListProductReviews(ctx, c.Param("id"))
	if err != nil {
		l.Error("list_reviews_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	if h.Repo == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "reviews require a configured persistence service")
	}

	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := models.Review{
		ProductID: c.Param("id"),
		UserID:    jwtmiddleware.UserID(c),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.Repo.CreateReview(ctx, &review); err != nil {
		l.Error("create_review_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("review created", "product_id", review.ProductID, "rating", review.Rating)
	return c.JSON(http.StatusCreated, review)
}
