// Package cart holds the items a user intends to purchase. The store
// is process-local and writes through to durable local storage after
// every successful mutation, so it survives restarts.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/okorolenko/storefront/internal/kv"
	"github.com/okorolenko/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu      sync.Mutex
	items   []models.CartItem
	storage kv.Store
}

// AddInput is the candidate line item. Stock availability is the
// caller's concern; the store only rejects non-positive quantities.
type AddInput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// New rehydrates the cart from durable storage when a snapshot exists.
func New(ctx context.Context, storage kv.Store) (*Store, error) {
	s := &Store{storage: storage}

	raw, ok, err := storage.Read(ctx, kv.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("rehydrate cart: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.items); err != nil {
			return nil, fmt.Errorf("rehydrate cart: %w", err)
		}
	}
	return s, nil
}

// AddItem merges into an existing line item for the same product, or
// inserts a new one. A quantity below 1 is a no-op.
func (s *Store) AddItem(ctx context.Context, in AddInput) error {
	if in.Quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == in.ProductID {
			s.items[i].Quantity += in.Quantity
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, models.CartItem{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		Quantity:  in.Quantity,
	})
	return s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID string) error {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity replaces the line item's quantity. Zero or negative
// removes the line item entirely.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID)
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist(ctx)
}

func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount sums quantities across line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total is recomputed from the line items on every read, never cached.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

// Subtotal sums unit price × quantity over the given line items using
// decimal arithmetic, rounded to cents.
func Subtotal(items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2).InexactFloat64()
}

func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	if err := s.storage.Write(ctx, kv.KeyCart, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
