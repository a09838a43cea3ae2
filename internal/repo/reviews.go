package repo

import (
	"context"
	"math"

	"github.com/okorolenko/storefront/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) ListProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview inserts the review and folds the new average rating and
// review count back onto the product row.
func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recalculateRating(tx, review.ProductID)
	})
}

func recalculateRating(tx *gorm.DB, productID string) error {
	var reviews []models.Review
	if err := tx.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	var sum int
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{"rating": avg, "reviews_count": len(reviews)}).Error
}
