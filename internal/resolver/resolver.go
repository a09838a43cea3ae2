// Package resolver produces product listings from whichever source is
// available: the elasticsearch index (search queries only), the
// persistence service, or the bundled dataset. Remote failures are
// advisory; the caller always gets a filtered result.
package resolver

import (
	"context"

	"github.com/okorolenko/storefront/internal/catalog"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/models"
)

// ProductSource is the persistence-service side of the contract.
// GetProduct returns (nil, nil) for an absent id.
type ProductSource interface {
	ListProducts(ctx context.Context, opts catalog.ListOptions) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
}

type Searcher interface {
	Search(ctx context.Context, query string, size int) ([]models.Product, error)
}

type Options struct {
	catalog.ListOptions
	PreferLocal bool
}

type Resolver struct {
	remote ProductSource // nil when no persistence service is configured
	search Searcher      // nil when elasticsearch is not configured
	local  *catalog.Dataset
}

func New(remote ProductSource, search Searcher, local *catalog.Dataset) *Resolver {
	if local == nil {
		local = catalog.NewDataset()
	}
	if remote == nil {
		// Without a persistence service every query is answered from
		// the bundled dataset, so a search index would never be
		// consulted.
		search = nil
	}
	return &Resolver{remote: remote, search: search, local: local}
}

// List never returns an error: every remote failure falls through to
// the bundled dataset with the same filter semantics.
func (r *Resolver) List(ctx context.Context, opts Options) []models.Product {
	if opts.PreferLocal || r.remote == nil {
		return r.local.Filter(opts.ListOptions)
	}

	l := logging.FromContext(ctx)

	if opts.Search != "" && r.search != nil {
		// Fetch enough hits to cover the requested page: Apply still
		// filters and skips Offset locally after the index matched the
		// text.
		size := opts.Offset + opts.Limit
		if opts.Limit <= 0 {
			size = 50
		}
		hits, err := r.search.Search(ctx, opts.Search, size)
		if err == nil {
			narrowed := opts.ListOptions
			narrowed.Search = "" // the index already matched the text
			return catalog.Apply(hits, narrowed)
		}
		l.Warn("search index unavailable, trying persistence service", "error", err)
	}

	items, err := r.remote.ListProducts(ctx, opts.ListOptions)
	if err != nil {
		l.Warn("persistence service unavailable, serving bundled catalog", "error", err)
		return r.local.Filter(opts.ListOptions)
	}
	return items
}

// Get follows the same two-source contract keyed by id. A nil result
// means the product exists in neither source; that is not an error.
func (r *Resolver) Get(ctx context.Context, id string, preferLocal bool) *models.Product {
	if preferLocal || r.remote == nil {
		return r.local.ByID(id)
	}

	p, err := r.remote.GetProduct(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Warn("persistence service unavailable, serving bundled catalog",
			"product_id", id, "error", err)
		return r.local.ByID(id)
	}
	if p == nil {
		// A remote miss still consults the bundled dataset; only a
		// miss in both sources is absent.
		return r.local.ByID(id)
	}
	return p
}

// Featured lists the top-rated products, falling back like List.
func (r *Resolver) Featured(ctx context.Context, limit int) []models.Product {
	if limit <= 0 {
		limit = 8
	}
	if r.remote == nil {
		return r.local.Featured(limit)
	}
	items, err := r.remote.FeaturedProducts(ctx, limit)
	if err != nil {
		logging.FromContext(ctx).Warn("persistence service unavailable, serving bundled catalog", "error", err)
		return r.local.Featured(limit)
	}
	return items
}
