// Package repo is the gorm-backed client for the order/product
// persistence service.
package repo

import (
	"github.com/okorolenko/storefront/internal/models"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func (r *GormRepo) AutoMigrate() error {
	return r.DB.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	)
}
