package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolenko/storefront/internal/models"
	"gorm.io/gorm"
)

var ErrBadTransition = errors.New("invalid status transition")

// CreateOrder persists the order header only. Lines are submitted
// separately so a line failure leaves the header in place for the
// caller to reconcile.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Omit("Items").Create(order).Error
}

func (r *GormRepo) CreateOrderLines(ctx context.Context, orderID string, lines []models.OrderItem) error {
	for i := range lines {
		lines[i].OrderID = orderID
	}
	return r.DB.WithContext(ctx).Create(&lines).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus enforces the linear pending→paid→processing→
// shipped→delivered progression, with cancellation allowed from any
// pre-delivered state.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if !models.CanTransition(order.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, order.Status, status)
		}
		order.Status = status
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
