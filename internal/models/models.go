package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is owned by the seller/admin surface; the cart and wishlist
// only ever read it.
type Product struct {
	ID            string    `gorm:"primaryKey"      json:"id"`
	Name          string    `gorm:"not null"        json:"name"`
	Description   string    `gorm:"not null"        json:"description"`
	Price         float64   `gorm:"not null"        json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	Image         string    `json:"image"`
	Images        []string  `gorm:"serializer:json" json:"images"`
	Features      []string  `gorm:"serializer:json" json:"features"`
	Category      string    `gorm:"index;not null"  json:"category"`
	Rating        float64   `json:"rating"`
	ReviewsCount  int       `json:"reviews_count"`
	StockCount    int       `json:"stock_count"`
	Seller        string    `json:"seller"`
	CreatedAt     time.Time `json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// CartItem carries a denormalized snapshot of the product's display
// fields so the cart still renders if the catalog row changes. It is
// persisted as JSON under the cart storage key, not as a table.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"added_at"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var statusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusPaid:       1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// CanTransition reports whether an order may move from one status to
// another: the linear successor, or cancellation before delivery.
func CanTransition(from, to string) bool {
	if to == OrderStatusCancelled {
		return from != OrderStatusDelivered && from != OrderStatusCancelled
	}
	fi, ok := statusRank[from]
	ti, ok2 := statusRank[to]
	return ok && ok2 && ti == fi+1
}

type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

type Order struct {
	ID              string          `gorm:"primaryKey"           json:"id"`
	UserID          string          `gorm:"index;not null"       json:"user_id"`
	TotalAmount     float64         `gorm:"not null"             json:"total_amount"`
	Status          string          `gorm:"not null"             json:"status"`
	ShippingAddress ShippingAddress `gorm:"serializer:json"      json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"   json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// OrderItem lines are immutable once the order is created.
type OrderItem struct {
	ID        string  `gorm:"primaryKey"     json:"id"`
	OrderID   string  `gorm:"index;not null" json:"order_id"`
	ProductID string  `gorm:"not null"       json:"product_id"`
	Quantity  int     `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice float64 `gorm:"not null"       json:"unit_price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

type Review struct {
	ID        string    `gorm:"primaryKey"     json:"id"`
	ProductID string    `gorm:"index;not null" json:"product_id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Rating    int       `gorm:"not null"       json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
