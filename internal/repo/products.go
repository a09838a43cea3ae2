package repo

import (
	"context"
	"errors"

	"github.com/okorolenko/storefront/internal/catalog"
	"github.com/okorolenko/storefront/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) ListProducts(ctx context.Context, opts catalog.ListOptions) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Order("created_at DESC")

	if opts.Category != "" && opts.Category != catalog.AllCategories {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if opts.MinPrice != nil {
		q = q.Where("price >= ?", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		q = q.Where("price <= ?", *opts.MaxPrice)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetProduct returns (nil, nil) when the id does not exist.
func (r *GormRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Order("rating DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}
