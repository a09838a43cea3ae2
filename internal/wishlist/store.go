// Package wishlist keeps the saved-for-later set, independent of the
// cart, with the same write-through persistence discipline.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okorolenko/storefront/internal/kv"
	"github.com/okorolenko/storefront/internal/models"
)

type Store struct {
	mu      sync.Mutex
	items   []models.WishlistItem
	storage kv.Store
	now     func() time.Time
}

type AddInput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

func New(ctx context.Context, storage kv.Store) (*Store, error) {
	s := &Store{storage: storage, now: time.Now}

	raw, ok, err := storage.Read(ctx, kv.KeyWishlist)
	if err != nil {
		return nil, fmt.Errorf("rehydrate wishlist: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.items); err != nil {
			return nil, fmt.Errorf("rehydrate wishlist: %w", err)
		}
	}
	return s, nil
}

// Add is idempotent: a product already on the wishlist is left as is.
func (s *Store) Add(ctx context.Context, in AddInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == in.ProductID {
			return nil
		}
	}

	s.items = append(s.items, models.WishlistItem{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		AddedAt:   s.now().UTC(),
	})
	return s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist(ctx)
}

func (s *Store) Items() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.WishlistItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	if err := s.storage.Write(ctx, kv.KeyWishlist, raw); err != nil {
		return fmt.Errorf("persist wishlist: %w", err)
	}
	return nil
}
