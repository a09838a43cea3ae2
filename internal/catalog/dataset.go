// Package catalog bundles the demo product dataset the resolver falls
// back to when no persistence service is configured or reachable.
package catalog

import (
	"sort"
	"strings"

	"github.com/okorolenko/storefront/internal/models"
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "All Categories"

var Categories = []string{
	AllCategories,
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports",
	"Beauty",
	"Books",
	"Toys",
}

// ListOptions mirrors the resolver's filter contract: all fields are
// optional and AND-combined.
type ListOptions struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Offset   int
	Limit    int
}

type Dataset struct {
	products []models.Product
}

func NewDataset() *Dataset {
	return &Dataset{products: demoProducts}
}

// Filter applies category, search, and price bounds in that order and
// truncates to Limit when set.
func (d *Dataset) Filter(opts ListOptions) []models.Product {
	return Apply(d.products, opts)
}

// Apply runs the filter semantics over an arbitrary product slice.
// The resolver reuses it to narrow results from other sources.
func Apply(products []models.Product, opts ListOptions) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if opts.Category != "" && opts.Category != AllCategories && p.Category != opts.Category {
			continue
		}
		if opts.Search != "" && !matchesSearch(p, opts.Search) {
			continue
		}
		if opts.MinPrice != nil && p.Price < *opts.MinPrice {
			continue
		}
		if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []models.Product{}
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

func matchesSearch(p models.Product, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// ByID returns nil when no product matches; absence is not an error.
func (d *Dataset) ByID(id string) *models.Product {
	for i := range d.products {
		if d.products[i].ID == id {
			p := d.products[i]
			return &p
		}
	}
	return nil
}

// Featured returns the top-rated products.
func (d *Dataset) Featured(limit int) []models.Product {
	out := make([]models.Product, len(d.products))
	copy(out, d.products)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

var demoProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Wireless Bluetooth Headphones",
		Price:         79.99,
		OriginalPrice: 99.99,
		Image:         "https://images.pexels.com/photos/3394658/pexels-photo-3394658.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/3394658/pexels-photo-3394658.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.5,
		ReviewsCount:  234,
		Category:      "Electronics",
		Description:   "Premium wireless Bluetooth headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
		Features:      []string{"Active Noise Cancellation", "30-hour battery life", "Wireless Bluetooth 5.0"},
		StockCount:    45,
		Seller:        "TechGear Pro",
	},
	{
		ID:            "2",
		Name:          "Smart Fitness Watch",
		Price:         249.99,
		OriginalPrice: 299.99,
		Image:         "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.7,
		ReviewsCount:  567,
		Category:      "Electronics",
		Description:   "Advanced fitness tracking smartwatch with heart rate monitoring, GPS, and smartphone integration.",
		Features:      []string{"Heart rate monitoring", "GPS tracking", "7-day battery life"},
		StockCount:    23,
		Seller:        "FitTech Solutions",
	},
	{
		ID:           "3",
		Name:         "Leather Backpack",
		Price:        129.99,
		Image:        "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:       []string{"https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:       4.3,
		ReviewsCount: 89,
		Category:     "Fashion",
		Description:  "Handcrafted genuine leather backpack perfect for work, travel, and everyday use.",
		Features:     []string{"Genuine leather construction", "Laptop compartment", "Adjustable straps"},
		StockCount:   15,
		Seller:       "Leather Craft Co",
	},
	{
		ID:            "4",
		Name:          "Portable Speaker",
		Price:         59.99,
		OriginalPrice: 79.99,
		Image:         "https://images.pexels.com/photos/1279813/pexels-photo-1279813.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/1279813/pexels-photo-1279813.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.4,
		ReviewsCount:  156,
		Category:      "Electronics",
		Description:   "Compact wireless speaker with powerful sound and long-lasting battery.",
		Features:      []string{"360-degree sound", "Waterproof design", "12-hour battery"},
		StockCount:    67,
		Seller:        "AudioMax",
	},
	{
		ID:           "5",
		Name:         "Yoga Mat Premium",
		Price:        39.99,
		Image:        "https://images.pexels.com/photos/4325484/pexels-photo-4325484.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:       []string{"https://images.pexels.com/photos/4325484/pexels-photo-4325484.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:       4.6,
		ReviewsCount: 203,
		Category:     "Sports",
		Description:  "Professional-grade yoga mat with superior grip and comfort for all fitness levels.",
		Features:     []string{"Non-slip surface", "Extra cushioning", "Eco-friendly materials"},
		StockCount:   32,
		Seller:       "ZenFit",
	},
	{
		ID:            "6",
		Name:          "Coffee Maker Deluxe",
		Price:         189.99,
		OriginalPrice: 229.99,
		Image:         "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.8,
		ReviewsCount:  342,
		Category:      "Home & Garden",
		Description:   "Professional coffee maker with programmable settings and thermal carafe.",
		Features:      []string{"Programmable brewing", "Thermal carafe", "Auto shut-off"},
		StockCount:    18,
		Seller:        "BrewMaster",
	},
	{
		ID:           "7",
		Name:         "Skincare Set",
		Price:        89.99,
		Image:        "https://images.pexels.com/photos/3685538/pexels-photo-3685538.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:       []string{"https://images.pexels.com/photos/3685538/pexels-photo-3685538.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:       4.5,
		ReviewsCount: 124,
		Category:     "Beauty",
		Description:  "Complete skincare routine with cleanser, toner, serum, and moisturizer.",
		Features:     []string{"Natural ingredients", "All skin types", "Dermatologist tested"},
		StockCount:   41,
		Seller:       "Pure Beauty",
	},
	{
		ID:            "8",
		Name:          "Gaming Keyboard",
		Price:         149.99,
		OriginalPrice: 199.99,
		Image:         "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.7,
		ReviewsCount:  289,
		Category:      "Electronics",
		Description:   "Mechanical gaming keyboard with RGB lighting and programmable keys.",
		Features:      []string{"Mechanical switches", "RGB backlighting", "Programmable macros"},
		StockCount:    29,
		Seller:        "GameTech Pro",
	},
	{
		ID:            "9",
		Name:          "Wireless Mouse",
		Price:         29.99,
		OriginalPrice: 39.99,
		Image:         "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.2,
		ReviewsCount:  156,
		Category:      "Electronics",
		Description:   "Ergonomic wireless mouse with precision tracking and long battery life.",
		Features:      []string{"Precision tracking", "Ergonomic design", "18-month battery"},
		StockCount:    78,
		Seller:        "TechAccessories",
	},
	{
		ID:            "10",
		Name:          "Running Shoes",
		Price:         89.99,
		OriginalPrice: 119.99,
		Image:         "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400",
		Images:        []string{"https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=800"},
		Rating:        4.6,
		ReviewsCount:  324,
		Category:      "Sports",
		Description:   "Lightweight running shoes with superior cushioning and breathable mesh upper.",
		Features:      []string{"Breathable mesh upper", "Responsive cushioning", "Durable outsole"},
		StockCount:    42,
		Seller:        "RunFast Athletics",
	},
}
