package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/okorolenko/storefront/internal/cart"
	"github.com/okorolenko/storefront/internal/kv"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	headerErr error
	linesErr  error
	statusErr error

	orders []models.Order
	lines  []models.OrderItem
}

func (f *fakeRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	if f.headerErr != nil {
		return f.headerErr
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeRepo) CreateOrderLines(ctx context.Context, orderID string, lines []models.OrderItem) error {
	if f.linesErr != nil {
		return f.linesErr
	}
	f.lines = append(f.lines, lines...)
	return nil
}

func (f *fakeRepo) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return &f.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func defaultConfig() Config {
	return Config{TaxRate: 0.08, ShippingFee: 0, FreeShippingThreshold: 50}
}

func seededCart(t *testing.T) *cart.Store {
	t.Helper()
	ctx := context.Background()
	c, err := cart.New(ctx, kv.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, c.AddItem(ctx, cart.AddInput{ProductID: "1", Name: "Headphones", Price: 79.99, Quantity: 2}))
	require.NoError(t, c.AddItem(ctx, cart.AddInput{ProductID: "2", Name: "Watch", Price: 249.99, Quantity: 1}))
	return c
}

func TestPlaceOrderHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	c := seededCart(t)
	a := New(repo, c, nil, defaultConfig())

	require.Equal(t, 409.97, c.Total())

	ord, err := a.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{City: "Austin"},
		PaymentConfirmation{Provider: "stripe", Reference: "pi_123"})
	require.NoError(t, err)

	require.Equal(t, 442.77, ord.TotalAmount)
	require.Equal(t, models.OrderStatusPaid, ord.Status)
	require.Equal(t, "user-1", ord.UserID)
	require.Len(t, repo.lines, 2)
	require.Equal(t, "1", repo.lines[0].ProductID)
	require.Equal(t, 2, repo.lines[0].Quantity)
	require.Equal(t, 79.99, repo.lines[0].UnitPrice)

	require.Empty(t, c.Items(), "cart must be cleared after a successful order")
}

func TestPlaceOrderWithoutConfirmationStaysPending(t *testing.T) {
	repo := &fakeRepo{}
	a := New(repo, seededCart(t), nil, defaultConfig())

	ord, err := a.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{}, PaymentConfirmation{})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, ord.Status)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	repo := &fakeRepo{}
	c, err := cart.New(context.Background(), kv.NewMemoryStore())
	require.NoError(t, err)
	a := New(repo, c, nil, defaultConfig())

	_, err = a.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{}, PaymentConfirmation{})
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Empty(t, repo.orders)
}

func TestPlaceOrderHeaderFailure(t *testing.T) {
	repo := &fakeRepo{headerErr: errors.New("connection refused")}
	c := seededCart(t)
	a := New(repo, c, nil, defaultConfig())

	_, err := a.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{}, PaymentConfirmation{})
	require.ErrorIs(t, err, ErrOrderCreate)
	require.Len(t, c.Items(), 2, "cart must survive a failed checkout")
}

func TestPlaceOrderLineFailureIsPartial(t *testing.T) {
	repo := &fakeRepo{linesErr: errors.New("connection reset")}
	c := seededCart(t)
	a := New(repo, c, nil, defaultConfig())

	_, err := a.PlaceOrder(context.Background(), "user-1", models.ShippingAddress{}, PaymentConfirmation{})
	require.ErrorIs(t, err, ErrPartialFailure)
	require.Len(t, repo.orders, 1, "header is left in place for reconciliation")
	require.Len(t, c.Items(), 2)
}

func TestTotalAppliesShippingBelowThreshold(t *testing.T) {
	a := New(&fakeRepo{}, nil, nil, Config{TaxRate: 0.08, ShippingFee: 5.99, FreeShippingThreshold: 50})

	cheap := []models.CartItem{{ProductID: "9", Price: 29.99, Quantity: 1}}
	require.Equal(t, 38.38, a.Total(cheap)) // 29.99*1.08 + 5.99

	big := []models.CartItem{{ProductID: "2", Price: 249.99, Quantity: 1}}
	require.Equal(t, 269.99, a.Total(big)) // free shipping at 50 and above
}
