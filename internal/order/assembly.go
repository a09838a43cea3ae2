// Package order turns a cart snapshot plus shipping details and a
// payment confirmation into an order submission, and clears the cart
// once the submission succeeds.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolenko/storefront/internal/cart"
	"github.com/okorolenko/storefront/internal/events"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart rejects checkout with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderCreate means the order header was never created; the
	// whole checkout can be retried.
	ErrOrderCreate = errors.New("order creation failed")
	// ErrPartialFailure means the header exists but the line items do
	// not. No compensating rollback is attempted; the caller must
	// retry or reconcile against the returned order id.
	ErrPartialFailure = errors.New("order lines not persisted")
)

type Repo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderLines(ctx context.Context, orderID string, lines []models.OrderItem) error
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}

type Config struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
}

// PaymentConfirmation is the opaque result handed back by the external
// payment gateway. A non-empty reference means the charge went through.
type PaymentConfirmation struct {
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

func (p PaymentConfirmation) Confirmed() bool { return p.Reference != "" }

type Assembler struct {
	repo     Repo
	cart     *cart.Store
	producer *events.Producer
	cfg      Config
}

func New(repo Repo, c *cart.Store, producer *events.Producer, cfg Config) *Assembler {
	return &Assembler{repo: repo, cart: c, producer: producer, cfg: cfg}
}

// Total computes subtotal + tax + shipping for the given line items.
// Shipping is waived at or above the free-shipping threshold.
func (a *Assembler) Total(items []models.CartItem) float64 {
	subtotal := decimal.NewFromFloat(cart.Subtotal(items))
	tax := decimal.NewFromFloat(a.cfg.TaxRate)
	total := subtotal.Mul(decimal.NewFromInt(1).Add(tax))

	if a.cfg.ShippingFee > 0 && subtotal.LessThan(decimal.NewFromFloat(a.cfg.FreeShippingThreshold)) {
		total = total.Add(decimal.NewFromFloat(a.cfg.ShippingFee))
	}
	return total.Round(2).InexactFloat64()
}

// PlaceOrder submits the order header and one line per cart item as a
// single logical submission, then clears the cart. The header is
// created as "pending" and moved to "paid" when the payment
// confirmation is present.
func (a *Assembler) PlaceOrder(ctx context.Context, userID string, shipping models.ShippingAddress, payment PaymentConfirmation) (*models.Order, error) {
	snapshot := a.cart.Items()
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	l := logging.FromContext(ctx).With("user_id", userID)

	ord := &models.Order{
		UserID:          userID,
		TotalAmount:     a.Total(snapshot),
		Status:          models.OrderStatusPending,
		ShippingAddress: shipping,
	}
	if err := a.repo.CreateOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreate, err)
	}

	lines := make([]models.OrderItem, len(snapshot))
	for i, it := range snapshot {
		lines[i] = models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		}
	}
	if err := a.repo.CreateOrderLines(ctx, ord.ID, lines); err != nil {
		return nil, fmt.Errorf("%w: order %s: %v", ErrPartialFailure, ord.ID, err)
	}
	ord.Items = lines

	if payment.Confirmed() {
		updated, err := a.repo.UpdateOrderStatus(ctx, ord.ID, models.OrderStatusPaid)
		if err != nil {
			return nil, fmt.Errorf("%w: order %s: %v", ErrPartialFailure, ord.ID, err)
		}
		ord.Status = updated.Status
	}

	if err := a.cart.Clear(ctx); err != nil {
		// The order exists; a stale local cart is recoverable.
		l.Warn("cart clear after checkout failed", "order_id", ord.ID, "error", err)
	}

	event := map[string]any{
		"type":     "order_created",
		"order_id": ord.ID,
		"user_id":  userID,
		"total":    ord.TotalAmount,
		"status":   ord.Status,
	}
	if err := a.producer.PublishEvent(ctx, events.TopicOrders, userID, event); err != nil {
		l.Warn("order event publish failed", "order_id", ord.ID, "error", err)
	}

	l.Info("order placed", "order_id", ord.ID, "total", ord.TotalAmount, "items", len(lines))
	return ord, nil
}
